package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// WriteArtifacts writes every artifact of res into dir using the run's
// conventional file names and returns the written paths, sorted.
func WriteArtifacts(dir string, res *Result) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(res.Artifacts))
	for format, data := range res.Artifacts {
		path := filepath.Join(dir, res.Run.Filename(format))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths, nil
}
