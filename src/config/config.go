// Package config provides configuration management for the vcsnumber build step.
package config

import (
	"fmt"
	"os"
)

// Environment variables TeamCity supplies to every build step.
const (
	BuildNumberVar = "BUILD_NUMBER"
	ConfigNameVar  = "TEAMCITY_BUILDCONF_NAME"
)

// Config holds the values the build step needs. It is populated once at
// process entry so the core packages never read ambient state.
type Config struct {
	// BuildNumber is the configuration's CI-assigned build number, e.g. "7.3.0.1337".
	BuildNumber string
	// ConfigName is the human-readable build configuration name.
	ConfigName string
	// WorkDir is where dependency number files are read from and the own
	// number file is written to.
	WorkDir string
}

// ConfigurationError reports a required environment variable that is missing
// or empty. It is fatal; the step cannot compute a build number without it.
type ConfigurationError struct {
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s not set in environment variables", e.Variable)
}

// LoadFromEnv loads configuration from the TeamCity-provided environment
// variables. WorkDir defaults to the current directory, which TeamCity sets
// to the configuration's workspace.
func LoadFromEnv() (*Config, error) {
	buildNumber := os.Getenv(BuildNumberVar)
	if buildNumber == "" {
		return nil, &ConfigurationError{Variable: BuildNumberVar}
	}
	configName := os.Getenv(ConfigNameVar)
	if configName == "" {
		return nil, &ConfigurationError{Variable: ConfigNameVar}
	}

	return &Config{
		BuildNumber: buildNumber,
		ConfigName:  configName,
		WorkDir:     ".",
	}, nil
}
