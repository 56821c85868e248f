// Package deps aggregates the vcs numbers reported by upstream build
// configurations. TeamCity's artifact dependencies copy each upstream
// configuration's vcsnumber_<name>.txt into the working directory before
// this step runs, so the files present define the dependency graph.
package deps

import (
	"fmt"
	"os"
	"path/filepath"

	"vcsnumber/src/buildnumber"
)

// FilePattern matches the per-configuration number files written by the
// persister and transferred between pipeline stages.
const FilePattern = "vcsnumber*.txt"

// Source enumerates the vcs numbers reported by upstream configurations.
type Source interface {
	VCSNumbers() ([]int, error)
}

// FileSource reads dependency numbers from vcsnumber*.txt files in Dir.
type FileSource struct {
	Dir string
}

// VCSNumbers parses every matching file's entire contents as a bare integer.
func (s *FileSource) VCSNumbers() ([]int, error) {
	matches, err := filepath.Glob(filepath.Join(s.Dir, FilePattern))
	if err != nil {
		return nil, err
	}

	numbers := make([]int, 0, len(matches))
	for _, name := range matches {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		n, err := buildnumber.ParseVCSNumber(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(name), err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// Largest returns the maximum vcs number the source reports, or 0 when the
// configuration has no dependencies. The baseline is intentional: a
// configuration's own number always dominates it.
func Largest(src Source) (int, error) {
	numbers, err := src.VCSNumbers()
	if err != nil {
		return 0, err
	}

	largest := 0
	for _, n := range numbers {
		if n > largest {
			largest = n
		}
	}
	return largest, nil
}
