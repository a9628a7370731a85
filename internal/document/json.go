package document

import (
	"encoding/json"
	"io"

	"github.com/KirkDiggler/dexseed/internal/entities/dex"
	"github.com/KirkDiggler/dexseed/internal/errors"
)

type jsonWriter struct {
	indent string
}

// NewJSON returns an indented JSON array writer
func NewJSON() Writer {
	return &jsonWriter{indent: "    "}
}

func (j *jsonWriter) Write(w io.Writer, records []*dex.Record) error {
	if records == nil {
		records = []*dex.Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", j.indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return errors.Wrap(err, "failed to write json")
	}
	return nil
}
