// Package buildnumber parses and rewrites TeamCity build number strings.
//
// A build number is a string of dot-separated non-negative integers, e.g.
// "7.3.0.1337". The last component is the vcs number, conventionally the
// version control revision count; everything before it is the branch number.
package buildnumber

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The trailing digit run, replaced when a new vcs number is injected.
var vcsSuffix = regexp.MustCompile(`\d+$`)

// FormatError reports a string that does not end with a vcs number. The
// message embeds the offending input so the operator can find the broken
// configuration from the build log alone.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("Check the build number format in your TeamCity configuration. %s is not a valid build number, it needs to end with the vcs number.", e.Input)
}

// VCSNumber extracts the trailing vcs number from a build number string.
func VCSNumber(buildNumber string) (int, error) {
	parts := strings.Split(buildNumber, ".")
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || n < 0 {
		return 0, &FormatError{Input: buildNumber}
	}
	return n, nil
}

// BranchNumber returns the dotted prefix of a build number, excluding the
// trailing vcs number. Empty for single-component input.
func BranchNumber(buildNumber string) string {
	parts := strings.Split(buildNumber, ".")
	return strings.Join(parts[:len(parts)-1], ".")
}

// WithVCSNumber returns a copy of buildNumber with the trailing digit run
// replaced by vcs. Only the trailing run is substituted, so digits in the
// branch number are never touched.
func WithVCSNumber(buildNumber string, vcs int) (string, error) {
	if !vcsSuffix.MatchString(buildNumber) {
		return "", &FormatError{Input: buildNumber}
	}
	return vcsSuffix.ReplaceAllString(buildNumber, strconv.Itoa(vcs)), nil
}

// ParseVCSNumber parses a bare vcs number. Dependency number files store
// the already-extracted integer, not a full dotted build number.
func ParseVCSNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, &FormatError{Input: s}
	}
	return n, nil
}
