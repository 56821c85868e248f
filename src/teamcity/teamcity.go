// Package teamcity emits TeamCity service messages and persists the
// per-configuration vcs number file consumed by downstream configurations.
package teamcity

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// BuildNumberMessage formats the service message that tells TeamCity to
// update its displayed build number. TeamCity pattern-matches this literal
// syntax, brackets and quotes included; any deviation is silently ignored.
func BuildNumberMessage(buildNumber string) string {
	return fmt.Sprintf("##teamcity[buildNumber '%s']", buildNumber)
}

// SanitizeConfigName makes a configuration name filesystem-safe.
// Configuration names may contain spaces, e.g. "RulesEngine - static".
func SanitizeConfigName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// VCSNumberFileName returns the artifact file name for a configuration.
func VCSNumberFileName(configName string) string {
	return fmt.Sprintf("vcsnumber_%s.txt", SanitizeConfigName(configName))
}

// WriteVCSNumberFile writes the configuration's final vcs number to its
// artifact file in dir, overwriting any file from a previous run. It returns
// the path written.
func WriteVCSNumberFile(dir, configName string, vcs int) (string, error) {
	path := filepath.Join(dir, VCSNumberFileName(configName))
	if err := os.WriteFile(path, []byte(strconv.Itoa(vcs)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
