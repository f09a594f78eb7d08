// Package export writes a field's element list, multiplication table and
// inverse table to files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Davincible/fieldcalc/pkg/galois"
	"sigs.k8s.io/yaml"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

// ParseFormat accepts a format name, case-insensitively. "yml" and "htm"
// are aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported export format '%s'", s)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer export format from '%s'", path)
	}
	return ParseFormat(ext)
}

// ElementView is an element in both of its display forms.
type ElementView struct {
	String string `json:"string"`
	Vector []int  `json:"vector"`
}

// InverseView is one row of the inverse table.
type InverseView struct {
	Element string `json:"element"`
	Inverse string `json:"inverse"`
}

// Table is the serializable view of an initialized field.
type Table struct {
	Field    galois.Summary `json:"field"`
	Elements []ElementView  `json:"elements"`
	Products [][]string     `json:"products"`
	Inverses []InverseView  `json:"inverses"`
}

// NewTable collects the display view of f. Products[i][j] is the canonical
// string of Elements[i] * Elements[j].
func NewTable(f *galois.Field) *Table {
	elements := f.Elements()
	mul := f.MulTable()

	t := &Table{
		Field:    f.Summary(),
		Elements: make([]ElementView, len(elements)),
		Products: make([][]string, len(elements)),
	}
	for i, e := range elements {
		t.Elements[i] = ElementView{String: e.String(), Vector: append([]int(nil), e...)}
		row := make([]string, len(elements))
		for j := range elements {
			row[j] = mul.At(i, j).String()
		}
		t.Products[i] = row
	}
	for _, pair := range f.InvTable().Pairs() {
		t.Inverses = append(t.Inverses, InverseView{
			Element: pair.Element.String(),
			Inverse: pair.Inverse.String(),
		})
	}
	return t
}

// Write encodes the table of f to w.
func Write(w io.Writer, f *galois.Field, format Format) error {
	t := NewTable(f)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		data, err := yaml.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatCSV:
		return writeCSV(w, t)
	case FormatHTML:
		return writeHTML(w, f)
	default:
		return fmt.Errorf("unsupported export format '%s'", format)
	}
}

// WriteFile writes the table of f to path, creating parent directories.
func WriteFile(path string, f *galois.Field, format Format) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := Write(file, f, format); err != nil {
		return err
	}
	return file.Close()
}

// writeCSV writes the multiplication table with a header row and column of
// canonical element strings.
func writeCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(t.Elements)+1)
	header = append(header, "*")
	for _, e := range t.Elements {
		header = append(header, e.String)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	for i, e := range t.Elements {
		record := append([]string{e.String}, t.Products[i]...)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
