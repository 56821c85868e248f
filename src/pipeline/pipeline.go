// Package pipeline composes the build number computation: read the own
// number, aggregate the dependency numbers, take the maximum, then report
// and persist the result.
package pipeline

import (
	"fmt"
	"io"

	"vcsnumber/src/buildnumber"
	"vcsnumber/src/config"
	"vcsnumber/src/deps"
	"vcsnumber/src/logger"
	"vcsnumber/src/teamcity"
)

// Result describes a completed run.
type Result struct {
	// BuildNumber is the full build number announced to TeamCity.
	BuildNumber string
	// VCSNumber is the value persisted for downstream configurations.
	VCSNumber int
	// File is the path of the persisted number file.
	File string
}

// FinalVCSNumber computes the vcs number this build should carry:
// max(own vcs number, largest dependency vcs number). On a tie the own
// value is kept.
func FinalVCSNumber(ownBuildNumber string, src deps.Source) (int, error) {
	own, err := buildnumber.VCSNumber(ownBuildNumber)
	if err != nil {
		return 0, err
	}
	dep, err := deps.Largest(src)
	if err != nil {
		return 0, err
	}
	if dep > own {
		return dep, nil
	}
	return own, nil
}

// BuildNumber computes the full build number to report: the own build number
// with the final vcs number substituted into its trailing component.
func BuildNumber(ownBuildNumber string, src deps.Source) (string, error) {
	final, err := FinalVCSNumber(ownBuildNumber, src)
	if err != nil {
		return "", err
	}
	return buildnumber.WithVCSNumber(ownBuildNumber, final)
}

// Run executes one build step: compute the build number, announce it on out
// (TeamCity scans stdout for the service message), then persist the vcs
// number for downstream configurations. The first error aborts the run with
// nothing written; a malformed input must never silently produce a lower
// build number.
func Run(cfg *config.Config, src deps.Source, out io.Writer, log logger.Logger) (*Result, error) {
	number, err := BuildNumber(cfg.BuildNumber, src)
	if err != nil {
		return nil, err
	}
	log.Debug("computed build number %s (own number %s)", number, cfg.BuildNumber)

	if _, err := fmt.Fprintln(out, teamcity.BuildNumberMessage(number)); err != nil {
		return nil, err
	}

	vcs, err := buildnumber.VCSNumber(number)
	if err != nil {
		return nil, err
	}
	path, err := teamcity.WriteVCSNumberFile(cfg.WorkDir, cfg.ConfigName, vcs)
	if err != nil {
		return nil, err
	}
	log.Debug("wrote %s", path)

	return &Result{BuildNumber: number, VCSNumber: vcs, File: path}, nil
}
