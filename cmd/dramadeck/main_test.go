package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProject(t *testing.T) (configPath, output string) {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"namelist.txt": "妈妈\nmom\n",
		"cnplot.txt":   "mom\n你好。\nmom\n再见\n",
		"enplot.txt":   "mom\nHello.\nmom\nBye\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	output = filepath.Join(dir, "main.tex")
	configPath = filepath.Join(dir, "config.yaml")
	cfg := "paths:\n" +
		"  names: " + filepath.Join(dir, "namelist.txt") + "\n" +
		"  native: " + filepath.Join(dir, "cnplot.txt") + "\n" +
		"  foreign: " + filepath.Join(dir, "enplot.txt") + "\n" +
		"  output: " + output + "\n" +
		"logging:\n  level: error\n"
	if err := os.WriteFile(configPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	return configPath, output
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	configPath, output := writeProject(t)

	if _, err := run(t, "build", "--config", configPath); err != nil {
		t.Fatalf("build error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "再见。&Bye. \\\\") {
		t.Errorf("deck content unexpected:\n%s", data)
	}
}

func TestBuildCommandOutputOverride(t *testing.T) {
	configPath, output := writeProject(t)
	docx := filepath.Join(filepath.Dir(output), "handout.docx")

	if _, err := run(t, "build", "-c", configPath, "--format", "docx", "-o", docx); err != nil {
		t.Fatalf("build error = %v", err)
	}
	if _, err := os.Stat(docx); err != nil {
		t.Errorf("handout not written: %v", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("configured output should not be written (stat error %v)", err)
	}
}

func TestSpeakersCommand(t *testing.T) {
	configPath, _ := writeProject(t)

	out, err := run(t, "speakers", "--config", configPath)
	if err != nil {
		t.Fatalf("speakers error = %v", err)
	}
	if !strings.Contains(out, "妈妈") || !strings.Contains(out, "mom") {
		t.Errorf("speakers output missing names:\n%s", out)
	}
}

func TestInspectCommand(t *testing.T) {
	configPath, output := writeProject(t)

	out, err := run(t, "inspect", "--config", configPath)
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	if !strings.Contains(out, "total") {
		t.Errorf("inspect output missing total row:\n%s", out)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("inspect should not write the deck (stat error %v)", err)
	}
}

func TestInspectRows(t *testing.T) {
	_, rows := inspectRows(nil)
	if len(rows) != 1 || rows[0][3] != "0" {
		t.Errorf("inspectRows(nil) = %q", rows)
	}
}
