package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/facet-dev/facet/internal/review"
)

// JSONWriter writes results as indented JSON.
type JSONWriter struct{}

// Write marshals the result to JSON.
func (jw *JSONWriter) Write(w io.Writer, result *review.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
