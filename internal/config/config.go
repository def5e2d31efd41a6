package config

import "fmt"

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Speakers    SpeakersConfig    `yaml:"speakers"`
	Output      OutputConfig      `yaml:"output"`
	Compile     CompileConfig     `yaml:"compile"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Watch       WatchConfig       `yaml:"watch"`
}

type PathsConfig struct {
	Names   string `yaml:"names"`
	Native  string `yaml:"native"`
	Foreign string `yaml:"foreign"`
	Output  string `yaml:"output"`
}

type ChunkingConfig struct {
	Native  ChunkRuleConfig `yaml:"native"`
	Foreign ChunkRuleConfig `yaml:"foreign"`
}

// ChunkRuleConfig bounds the chunks of one language. Terminal is appended to
// clauses that do not already end in punctuation.
type ChunkRuleConfig struct {
	MaxChars int    `yaml:"max_chars"`
	Terminal string `yaml:"terminal"`
}

type SpeakersConfig struct {
	// MatchNativeNames also recognises native-language names as speaker lines.
	MatchNativeNames bool `yaml:"match_native_names"`
	// Strict rejects aligned turns whose markers resolve to different speakers.
	Strict bool `yaml:"strict"`
}

type OutputConfig struct {
	Format   string         `yaml:"format"`
	Template TemplateConfig `yaml:"template"`
}

// TemplateConfig overrides literals of the beamer template. Empty fields keep
// the built-in value.
type TemplateConfig struct {
	Prologue        string `yaml:"prologue"`
	Frame           string `yaml:"frame"`
	FrameEnd        string `yaml:"frame_end"`
	Epilogue        string `yaml:"epilogue"`
	ColumnSeparator string `yaml:"column_separator"`
	EndOfRow        string `yaml:"end_of_row"`
}

type CompileConfig struct {
	Enabled bool     `yaml:"enabled"`
	Binary  string   `yaml:"binary"`
	Args    []string `yaml:"args"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

const (
	FormatBeamer = "beamer"
	FormatDocx   = "docx"
)

// Default returns the configuration the deck generator has always used:
// fixed input names in the working directory and main.tex as output.
func Default() *Config {
	cfg := &Config{}
	// Validate only fills defaults on an empty config.
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Paths.Names == "" {
		c.Paths.Names = "namelist.txt"
	}
	if c.Paths.Native == "" {
		c.Paths.Native = "cnplot.txt"
	}
	if c.Paths.Foreign == "" {
		c.Paths.Foreign = "enplot.txt"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "main.tex"
	}

	if c.Chunking.Native.MaxChars < 0 {
		return fmt.Errorf("chunking.native.max_chars must be positive")
	}
	if c.Chunking.Foreign.MaxChars < 0 {
		return fmt.Errorf("chunking.foreign.max_chars must be positive")
	}
	if c.Chunking.Native.MaxChars == 0 {
		c.Chunking.Native.MaxChars = 30
	}
	if c.Chunking.Native.Terminal == "" {
		c.Chunking.Native.Terminal = "。"
	}
	if c.Chunking.Foreign.MaxChars == 0 {
		c.Chunking.Foreign.MaxChars = 200
	}
	if c.Chunking.Foreign.Terminal == "" {
		c.Chunking.Foreign.Terminal = ". "
	}

	if c.Output.Format == "" {
		c.Output.Format = FormatBeamer
	}
	if c.Output.Format != FormatBeamer && c.Output.Format != FormatDocx {
		return fmt.Errorf("output.format %q is not supported", c.Output.Format)
	}
	if c.Compile.Enabled && c.Output.Format != FormatBeamer {
		return fmt.Errorf("compile.enabled requires output.format %q", FormatBeamer)
	}
	if c.Compile.Binary == "" {
		c.Compile.Binary = "xelatex"
	}
	if c.Compile.Args == nil {
		c.Compile.Args = []string{"-interaction=nonstopmode"}
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 4
	}
	if c.Watch.DebounceMS <= 0 {
		c.Watch.DebounceMS = 500
	}

	return nil
}
