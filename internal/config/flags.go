package config

import "flag"

var (
	flagConfig        = flag.String("config", "", "Path to config file")
	flagDebug         = flag.Bool("debug", false, "Enable debug logging")
	flagCompiler      = flag.String("compiler", "", "Shader compiler executable")
	flagSource        = flag.String("src", "", "Shader source directory")
	flagOutput        = flag.String("out", "", "Compiled SPIR-V output directory")
	flagManifest      = flag.String("manifest", "", "YAML shader manifest (default: built-in list)")
	flagStage         = flag.String("stage", "", "Only compile shaders of this stage (vert, frag, comp, geom, tesc, tese)")
	flagDryRun        = flag.Bool("dry-run", false, "Print compiler commands without running them")
	flagFailOnError   = flag.Bool("fail-on-error", false, "Exit with status 1 if any shader fails to compile")
	flagStrict        = flag.Bool("strict", false, "Skip sources without a recognized stage extension")
	flagWriteConfig   = flag.String("write-config", "", "Write the effective config to this path and exit")
	flagSaveConfig    = flag.Bool("save-config", false, "Write the effective config to the user config file and exit")
	flagWriteManifest = flag.String("write-manifest", "", "Write the shader list as a manifest to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config target, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// SaveConfigRequested reports whether --save-config was given.
func SaveConfigRequested() bool {
	return *flagSaveConfig
}

// WriteManifestPath returns the --write-manifest target, if any.
func WriteManifestPath() string {
	return *flagWriteManifest
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagCompiler != "" {
		cfg.Compiler.Path = *flagCompiler
	}
	if *flagSource != "" {
		cfg.Paths.Source = *flagSource
	}
	if *flagOutput != "" {
		cfg.Paths.Output = *flagOutput
	}
	if *flagManifest != "" {
		cfg.Build.Manifest = *flagManifest
	}
	if *flagStage != "" {
		cfg.Build.Stage = *flagStage
	}
	if *flagDryRun {
		cfg.Build.DryRun = true
	}
	if *flagFailOnError {
		cfg.Build.FailOnError = true
	}
	if *flagStrict {
		cfg.Build.StrictStages = true
	}
}
