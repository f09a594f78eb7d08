package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Davincible/fieldcalc/pkg/galois"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func gf4(t *testing.T) *galois.Field {
	t.Helper()
	f, err := galois.NewField(2, 2, "1+x+x^2")
	require.NoError(t, err)
	return f
}

func TestNewTable(t *testing.T) {
	tbl := NewTable(gf4(t))

	assert.Equal(t, 4, tbl.Field.Order)
	assert.Equal(t, []ElementView{
		{String: "0", Vector: []int{0, 0}},
		{String: "x", Vector: []int{0, 1}},
		{String: "1", Vector: []int{1, 0}},
		{String: "1 + x", Vector: []int{1, 1}},
	}, tbl.Elements)

	want := [][]string{
		{"0", "0", "0", "0"},
		{"0", "1 + x", "x", "1"},
		{"0", "x", "1", "1 + x"},
		{"0", "1", "1 + x", "x"},
	}
	if diff := cmp.Diff(want, tbl.Products); diff != "" {
		t.Errorf("products mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []InverseView{
		{Element: "x", Inverse: "1 + x"},
		{Element: "1", Inverse: "1"},
		{Element: "1 + x", Inverse: "x"},
	}, tbl.Inverses)
}

func TestWriteJSONAndYAML(t *testing.T) {
	f := gf4(t)
	want := NewTable(f)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f, FormatJSON))
	var fromJSON Table
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, *want, fromJSON)

	buf.Reset()
	require.NoError(t, Write(&buf, f, FormatYAML))
	var fromYAML Table
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, *want, fromYAML)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, gf4(t), FormatCSV))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, []string{"*", "0", "x", "1", "1 + x"}, records[0])
	assert.Equal(t, []string{"x", "0", "1 + x", "x", "1"}, records[2])
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, gf4(t), FormatHTML))

	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Multiplication table of GF(2^2)")
	assert.Contains(t, out, "heatmap")
}

func TestWriteUnsupported(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, gf4(t), Format("xml")))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "gf4.json")
	require.NoError(t, WriteFile(path, gf4(t), FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var tbl Table
	require.NoError(t, json.Unmarshal(data, &tbl))
	assert.Equal(t, "1 + x + x^2", tbl.Field.Modulus)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
		err   bool
	}{
		{"json", FormatJSON, false},
		{" YAML ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"csv", FormatCSV, false},
		{"htm", FormatHTML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := FormatFromPath("/tmp/table.html")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, got)

	_, err = FormatFromPath("/tmp/table")
	assert.Error(t, err)
}
