// Package render turns computed aggregates into static PNG artifacts:
// a six-panel chart grid and an optional word cloud. Filenames are fixed
// and overwritten on every run.
package render

import (
	"errors"
	"fmt"
	"os"
)

const (
	// ChartsFile is the composite six-panel overview image.
	ChartsFile = "eda_visualizations.png"
	// WordCloudFile is the word-cloud image (full variant only).
	WordCloudFile = "wordcloud.png"
)

// ErrRender marks any failure to produce or write an image artifact.
var ErrRender = errors.New("render failure")

// writeArtifact writes data to a temp file and atomically renames it
// into place, so a failed run never leaves a truncated image behind.
func writeArtifact(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write temp file: %v", ErrRender, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: atomic rename: %v", ErrRender, err)
	}
	return nil
}
