package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/wordsim/internal/domain"
)

// Supported encodings of a render request.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encode writes req to w in the given format.
func Encode(w io.Writer, req domain.RenderRequest, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(req); err != nil {
			return fmt.Errorf("encode render request as json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(req); err != nil {
			return fmt.Errorf("encode render request as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode render request as yaml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("report format %q: %w", format, domain.ErrInvalidInput)
}

// Extension returns the file extension for format.
func Extension(format string) string {
	if strings.EqualFold(format, FormatYAML) {
		return ".yaml"
	}
	return ".json"
}
