package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	opts := Default()
	assert.True(t, opts.Server)
	assert.Equal(t, DefaultPort, opts.Port)
	assert.Equal(t, ModeFull, opts.Mode)
	assert.Empty(t, opts.SourcePath)
}

func TestEnvFallbacksFillUnsetValues(t *testing.T) {
	t.Setenv(EnvSourcePath, "/srv/app")
	t.Setenv(EnvPort, "9000")
	t.Setenv(EnvMode, "simple")
	t.Setenv(EnvEditor, "vscode")

	opts := Default().WithEnvFallbacks()
	assert.Equal(t, "/srv/app", opts.SourcePath)
	assert.Equal(t, 9000, opts.Port)
	assert.Equal(t, ModeSimple, opts.Mode)
	assert.Equal(t, "vscode", opts.Editor)
}

func TestExplicitValuesBeatEnv(t *testing.T) {
	t.Setenv(EnvSourcePath, "/srv/env")
	t.Setenv(EnvPort, "9000")
	t.Setenv(EnvMode, "simple")

	// Mode carries no set marker here, so the default-looking "full" still
	// yields to the env override; the non-default port does not.
	opts := Options{SourcePath: "/srv/flag", Port: 7001, Mode: ModeFull}
	opts = opts.WithEnvFallbacks()
	assert.Equal(t, "/srv/flag", opts.SourcePath)
	assert.Equal(t, 7001, opts.Port)
	assert.Equal(t, ModeSimple, opts.Mode)
}

func TestSetMarkersKeepDefaultValuedFlags(t *testing.T) {
	t.Setenv(EnvPort, "9000")
	t.Setenv(EnvMode, "simple")

	opts := Options{
		Port: DefaultPort, PortSet: true,
		Mode: ModeFull, ModeSet: true,
	}.WithEnvFallbacks()
	assert.Equal(t, DefaultPort, opts.Port, "an explicit --port equal to the default must beat the env")
	assert.Equal(t, ModeFull, opts.Mode, "an explicit --mode equal to the default must beat the env")
}

func TestInvalidEnvValuesIgnored(t *testing.T) {
	t.Setenv(EnvPort, "not-a-port")
	t.Setenv(EnvMode, "fancy")

	opts := Default().WithEnvFallbacks()
	assert.Equal(t, DefaultPort, opts.Port)
	assert.Equal(t, ModeFull, opts.Mode, "unrecognized mode tokens normalize to full")
}

func TestZeroPortFallsBackToDefault(t *testing.T) {
	opts := Options{}.WithEnvFallbacks()
	assert.Equal(t, DefaultPort, opts.Port)
	assert.Equal(t, ModeFull, opts.Mode)
}
