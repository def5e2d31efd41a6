package speaker

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    []Name
		wantErr error
	}{
		{
			name:  "single pair",
			lines: []string{"妈妈", "mom"},
			want:  []Name{{Native: "妈妈", Foreign: "mom"}},
		},
		{
			name:  "blank lines ignored",
			lines: []string{"", "妈妈", "", "Mom", "爸爸", "Dad", ""},
			want:  []Name{{Native: "妈妈", Foreign: "Mom"}, {Native: "爸爸", Foreign: "Dad"}},
		},
		{
			name:  "empty directory",
			lines: nil,
			want:  []Name{},
		},
		{
			name:    "unterminated pair",
			lines:   []string{"妈妈", "mom", "爸爸"},
			wantErr: ErrMalformedDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := Load(tt.lines, Options{})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := dir.Names(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Names() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsSpeakerLine(t *testing.T) {
	dir, err := Load([]string{"妈妈", "Mom", "爸爸", "dad"}, Options{})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		line string
		want bool
	}{
		{"mom", true},
		{"MOM", true},
		{"Dad", true},
		{"  dad ", true},
		{"妈妈", false},
		{"mom:", false},
		{"", false},
		{"Hello.", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := dir.IsSpeakerLine(tt.line); got != tt.want {
				t.Errorf("IsSpeakerLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestMatchNativeNames(t *testing.T) {
	dir, err := Load([]string{"妈妈", "mom"}, Options{MatchNativeNames: true})
	if err != nil {
		t.Fatal(err)
	}

	name, ok := dir.Resolve("妈妈")
	if !ok {
		t.Fatal("Resolve(妈妈) not found with MatchNativeNames")
	}
	if name.Foreign != "mom" {
		t.Errorf("Resolve(妈妈).Foreign = %q, want mom", name.Foreign)
	}
}

func TestResolveFirstEntryWins(t *testing.T) {
	dir, err := Load([]string{"妈妈", "mom", "母亲", "Mom"}, Options{})
	if err != nil {
		t.Fatal(err)
	}

	name, ok := dir.Resolve("MOM")
	if !ok {
		t.Fatal("Resolve(MOM) not found")
	}
	if name.Native != "妈妈" {
		t.Errorf("Resolve(MOM).Native = %q, want 妈妈", name.Native)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "namelist.txt")
	if err := os.WriteFile(path, []byte("妈妈\r\nmom\r\n"), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err := LoadFile(path, Options{})
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !dir.IsSpeakerLine("mom") {
		t.Error("IsSpeakerLine(mom) = false after LoadFile")
	}
}
