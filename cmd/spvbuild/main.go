// spvbuild compiles a project's GLSL shaders to SPIR-V by running an
// external compiler once per declared shader.
//
// With no arguments it compiles the built-in shader list from ./Source into ./Bin.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/spvbuild/internal/config"
	"github.com/Faultbox/spvbuild/internal/logger"
	"github.com/Faultbox/spvbuild/internal/shader"
	"github.com/Faultbox/spvbuild/internal/shaderc"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("build failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger.Sugar.Debugf("Config: %+v", cfg)

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		logger.Info("config written", zap.String("path", path))
		return nil
	}
	if config.SaveConfigRequested() {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Info("config saved", zap.String("path", config.ConfigFile()))
		return nil
	}

	reg, err := loadRegistry(cfg.Build)
	if err != nil {
		return err
	}

	if path := config.WriteManifestPath(); path != "" {
		if err := shader.SaveManifest(path, reg); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
		logger.Info("manifest written", zap.String("path", path), zap.Int("shaders", reg.Len()))
		return nil
	}

	logger.Debug("shader list loaded",
		zap.String("manifest", cfg.Build.Manifest),
		zap.String("stage", cfg.Build.Stage),
		zap.Int("shaders", reg.Len()))
	if reg.Len() == 0 {
		logger.Warn("no shaders to compile")
		return nil
	}

	driver := newDriver(cfg)
	summary, err := driver.Run(reg)
	if err != nil {
		return err
	}

	logger.Info("shaders processed",
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped))
	if summary.Failed > 0 {
		logger.Warn("some shaders failed to compile", zap.Error(summary.Err()))
	}
	return nil
}

// loadRegistry returns the manifest's shaders, or the built-in list when no
// manifest is configured, narrowed to one stage if requested.
func loadRegistry(b config.BuildConfig) (*shader.Registry, error) {
	reg := shader.Default()
	if b.Manifest != "" {
		var err error
		if reg, err = shader.LoadManifest(b.Manifest); err != nil {
			return nil, fmt.Errorf("loading manifest: %w", err)
		}
	}

	if b.Stage != "" {
		stage, err := shader.ParseStage(b.Stage)
		if err != nil {
			return nil, err
		}
		reg = reg.Filter(stage)
	}
	return reg, nil
}

func newDriver(cfg *config.Config) *shaderc.Driver {
	d := shaderc.NewDriver(cfg.Paths.Source, cfg.Paths.Output, logger.Named("shaderc"))
	d.Compiler = shaderc.Compiler{
		Path:       cfg.Compiler.Path,
		Flags:      cfg.Compiler.Flags,
		OutputFlag: cfg.Compiler.OutputFlag,
	}
	d.DryRun = cfg.Build.DryRun
	d.StrictStages = cfg.Build.StrictStages
	if cfg.Build.FailOnError {
		d.Policy = shaderc.ReportFailures
	}
	return d
}
