package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/spvbuild/internal/config"
	"github.com/Faultbox/spvbuild/internal/logger"
	"github.com/Faultbox/spvbuild/internal/shader"
	"github.com/Faultbox/spvbuild/internal/shaderc"
)

func TestLoadRegistryDefault(t *testing.T) {
	reg, err := loadRegistry(config.BuildConfig{})
	require.NoError(t, err)
	assert.Equal(t, shader.Default().Len(), reg.Len())
}

func TestLoadRegistryStage(t *testing.T) {
	reg, err := loadRegistry(config.BuildConfig{Stage: "geom"})
	require.NoError(t, err)

	var outputs []string
	for _, d := range reg.Descriptors() {
		outputs = append(outputs, d.OutputFilename())
	}
	assert.Equal(t, []string{"Particles.geom.spv", "ParticleTrail.geom.spv"}, outputs)
}

func TestLoadRegistryBadStage(t *testing.T) {
	_, err := loadRegistry(config.BuildConfig{Stage: "mesh"})
	assert.Error(t, err)
}

func TestLoadRegistryManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shaders.yaml")
	require.NoError(t, shader.SaveManifest(path, shader.NewRegistry(
		shader.New("Sky", "Sky.frag"),
		shader.New("Sky", "Sky.vert"),
	)))

	reg, err := loadRegistry(config.BuildConfig{Manifest: path, Stage: "vert"})
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())
	assert.Equal(t, "Sky.vert.spv", reg.Descriptors()[0].OutputFilename())
}

func TestLoadRegistryMissingManifest(t *testing.T) {
	_, err := loadRegistry(config.BuildConfig{Manifest: filepath.Join(t.TempDir(), "none.yaml")})
	assert.Error(t, err)
}

func TestNewDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Compiler.Path = "glslc"
	cfg.Build.FailOnError = true
	cfg.Build.DryRun = true

	d := newDriver(cfg)
	assert.Equal(t, "glslc", d.Compiler.Path)
	assert.Equal(t, []string{"--aml", "-V"}, d.Compiler.Flags)
	assert.Equal(t, "Source", d.SourceRoot)
	assert.Equal(t, "Bin", d.OutputRoot)
	assert.Equal(t, shaderc.ReportFailures, d.Policy)
	assert.True(t, d.DryRun)
	assert.False(t, d.StrictStages)
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func TestRunEmptyShaderList(t *testing.T) {
	logs := observeLogs(t)
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, shader.SaveManifest(path, shader.NewRegistry()))

	cfg := config.Default()
	cfg.Build.Manifest = path
	cfg.Paths.Output = filepath.Join(t.TempDir(), "Bin")

	require.NoError(t, run(cfg))
	assert.Equal(t, 1, logs.FilterMessage("no shaders to compile").Len())
	assert.Equal(t, 1, logs.FilterMessage("shader list loaded").Len())
}

func TestRunDryRun(t *testing.T) {
	logs := observeLogs(t)

	cfg := config.Default()
	cfg.Build.DryRun = true
	cfg.Build.Stage = "geom"
	cfg.Paths.Output = filepath.Join(t.TempDir(), "Bin")

	require.NoError(t, run(cfg))

	processed := logs.FilterMessage("shaders processed").All()
	require.Len(t, processed, 1)
	assert.Equal(t, int64(2), processed[0].ContextMap()["skipped"])
	assert.Zero(t, logs.FilterMessage("some shaders failed to compile").Len())
}
