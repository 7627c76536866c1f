// Package config resolves the options an embedding collaborator can set.
// Precedence: explicit flags, then environment fallbacks, then defaults.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort = 8124

	ModeFull   = "full"
	ModeSimple = "simple"
)

// Environment fallback variables, lowest precedence, consulted only when no
// explicit value arrived.
const (
	EnvSourcePath = "UILENS_SOURCE_PATH"
	EnvPort       = "UILENS_PORT"
	EnvMode       = "UILENS_MODE"
	EnvEditor     = "UILENS_EDITOR"
)

// Options are the recognized embedding options.
type Options struct {
	// Server enables the file-resolution channel.
	Server bool
	// SourcePath is the explicit project root; highest precedence.
	SourcePath string
	// Port the channel listens on.
	Port int
	// Mode is the display mode token: "full" or "simple".
	Mode string
	// Editor is the editor-selection override for launching collaborators.
	Editor string
	// Output is a build-tool target-asset hint; accepted for compatibility,
	// irrelevant to the core.
	Output string

	// PortSet and ModeSet mark values the caller set explicitly. Without
	// them a flag equal to the default is indistinguishable from unset and
	// would lose to the environment fallback.
	PortSet bool
	ModeSet bool
}

// Default returns the documented defaults.
func Default() Options {
	return Options{
		Server: true,
		Port:   DefaultPort,
		Mode:   ModeFull,
	}
}

// LoadEnv reads a .env file when present; missing files are fine.
func LoadEnv() {
	_ = godotenv.Load()
}

// WithEnvFallbacks fills any option still at its zero/default value from
// the environment.
func (o Options) WithEnvFallbacks() Options {
	if o.SourcePath == "" {
		o.SourcePath = strings.TrimSpace(os.Getenv(EnvSourcePath))
	}
	if !o.PortSet && (o.Port == 0 || o.Port == DefaultPort) {
		if raw := strings.TrimSpace(os.Getenv(EnvPort)); raw != "" {
			if port, err := strconv.Atoi(raw); err == nil && port > 0 {
				o.Port = port
			}
		}
	}
	if o.Port == 0 {
		o.Port = DefaultPort
	}
	if !o.ModeSet && (o.Mode == "" || o.Mode == ModeFull) {
		if raw := strings.TrimSpace(os.Getenv(EnvMode)); raw != "" {
			o.Mode = raw
		}
	}
	if o.Mode != ModeSimple {
		o.Mode = ModeFull
	}
	if o.Editor == "" {
		o.Editor = strings.TrimSpace(os.Getenv(EnvEditor))
	}
	return o
}
