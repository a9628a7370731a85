// Package document serializes a batch of records into the seed document
package document

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/dexseed/internal/entities/dex"
	"github.com/KirkDiggler/dexseed/internal/errors"
)

// Supported output formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists every supported format
var Formats = []string{FormatYAML, FormatJSON}

// Writer serializes records in order as one document
type Writer interface {
	Write(w io.Writer, records []*dex.Record) error
}

// New returns the writer for format
func New(format string) (Writer, error) {
	switch strings.ToLower(format) {
	case FormatYAML:
		return NewYAML(), nil
	case FormatJSON:
		return NewJSON(), nil
	default:
		return nil, errors.InvalidArgumentf("unsupported format %q", format).
			WithMeta("allowed", Formats)
	}
}

// FormatForPath guesses the format from the file extension, falling back
// to YAML
func FormatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// WriteFile writes records to path. The document is written to a temporary
// file in the same directory and renamed into place, so an interrupted run
// never leaves a truncated document behind.
func WriteFile(path string, writer Writer, records []*dex.Record) error {
	if path == "" {
		return errors.InvalidArgument("output path is required")
	}
	if writer == nil {
		return errors.InvalidArgument("writer is required")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file in %s", dir)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := writer.Write(tmp, records); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", tmpName)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.Wrapf(err, "failed to set permissions on %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "failed to move document to %s", path)
	}

	return nil
}
