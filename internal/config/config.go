// Package config handles build configuration loading and management.
package config

// Config holds all build settings.
type Config struct {
	Compiler CompilerConfig `yaml:"compiler"`
	Paths    PathsConfig    `yaml:"paths"`
	Build    BuildConfig    `yaml:"build"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CompilerConfig describes the external shader compiler.
type CompilerConfig struct {
	Path       string   `yaml:"path"`        // Executable name or path
	Flags      []string `yaml:"flags"`       // Fixed flags before the source path
	OutputFlag string   `yaml:"output_flag"` // Flag introducing the output path
}

// PathsConfig holds the source and output roots.
type PathsConfig struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
}

// BuildConfig holds batch settings.
type BuildConfig struct {
	Manifest     string `yaml:"manifest"`      // YAML shader list; empty uses the built-in table
	Stage        string `yaml:"stage"`         // Only compile this stage (e.g. "frag")
	DryRun       bool   `yaml:"dry_run"`       // Print commands without running them
	FailOnError  bool   `yaml:"fail_on_error"` // Exit non-zero when any shader fails
	StrictStages bool   `yaml:"strict_stages"` // Skip sources without a stage extension
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Compiler: CompilerConfig{
			Path:       "glslangValidator",
			Flags:      []string{"--aml", "-V"},
			OutputFlag: "-o",
		},
		Paths: PathsConfig{
			Source: "Source",
			Output: "Bin",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
