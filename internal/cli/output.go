package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/enumstatus/pkg/status"
)

// Output formats.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validOutput(format string) bool {
	switch format {
	case outputText, outputJSON, outputYAML:
		return true
	}
	return false
}

// declarationRow is the rendered form of one declared variant.
type declarationRow struct {
	Type     string `json:"type" yaml:"type"`
	Variant  string `json:"variant" yaml:"variant"`
	Message  string `json:"message" yaml:"message"`
	Kind     string `json:"kind" yaml:"kind"`
	KindType string `json:"kind_type" yaml:"kind_type"`
}

func newDeclarationRow(v status.Variant, d status.Declaration) declarationRow {
	return declarationRow{
		Type:     v.Type,
		Variant:  v.Name,
		Message:  d.Message,
		Kind:     d.Kind.String(),
		KindType: d.Kind.TypeName(),
	}
}

// render writes v as JSON or YAML, or calls text with a tab-aligned writer.
func render(w io.Writer, format string, v any, text func(tw *tabwriter.Writer)) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputText:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		text(tw)
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
