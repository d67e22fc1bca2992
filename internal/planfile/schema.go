// Package planfile reads and writes degree plans in the JSON interchange
// format shared with the plan extraction pipeline. Field names are the wire
// contract and stay in Spanish for compatibility.
package planfile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CourseRecord is one course entry of a plan document, keyed by course code
// in the enclosing mapping.
type CourseRecord struct {
	Nombre   string   `json:"nombre"`
	Creditos int      `json:"creditos"`
	Prerreqs []string `json:"prerreqs"`
	Coreqs   []string `json:"coreqs"`
	Estado   int      `json:"estado"` // 0 not started, 1 in progress, 2 completed; absent means 0
	Semestre *int     `json:"semestre"`
}

// Records maps course code to its record.
type Records map[string]CourseRecord

// Parse decodes a plan JSON document.
func Parse(data []byte) (Records, error) {
	var records Records
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing plan document: %w", err)
	}
	return records, nil
}

// Encode renders records as indented JSON with stable key order and
// unescaped UTF-8 (course names carry accents).
func Encode(records Records) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encoding plan document: %w", err)
	}
	return buf.Bytes(), nil
}
