package document

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dexseed/internal/entities/dex"
	"github.com/KirkDiggler/dexseed/internal/errors"
)

// flowKeys are rendered inline so each record stays compact for editing
var flowKeys = map[string]bool{
	"Type":      true,
	"Old":       true,
	"New":       true,
	"Evolution": true,
	"Learnset":  true,
	"Vanilla":   true,
	"Updated":   true,
	"Changes":   true,
}

type yamlWriter struct {
	indent int
}

// NewYAML returns a block-style YAML writer with inline flow groups
func NewYAML() Writer {
	return &yamlWriter{indent: 2}
}

func (y *yamlWriter) Write(w io.Writer, records []*dex.Record) error {
	if records == nil {
		records = []*dex.Record{}
	}

	var node yaml.Node
	if err := node.Encode(records); err != nil {
		return errors.Wrap(err, "failed to encode records")
	}
	applyFlowStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(y.indent)
	if err := enc.Encode(&node); err != nil {
		return errors.Wrap(err, "failed to write yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "failed to flush yaml")
	}
	return nil
}

func applyFlowStyle(node *yaml.Node) {
	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			applyFlowStyle(child)
		}
	case yaml.MappingNode:
		// Content alternates key, value
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if flowKeys[key.Value] {
				value.Style = yaml.FlowStyle
				continue
			}
			applyFlowStyle(value)
		}
	}
}
