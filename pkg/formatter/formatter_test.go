package formatter

import (
	"strings"
	"testing"

	"s3ls/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Splits rendered output into header, separator and data rows (cells split on whitespace)
func parseTable(t *testing.T, out string) (header []string, rows [][]string) {
	t.Helper()

	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	require.GreaterOrEqual(t, len(lines), 2, "expected at least a header and a separator:\n%s", out)

	assert.Empty(t, strings.Trim(lines[1], "- "), "second line should be the header rule: %q", lines[1])

	header = strings.Fields(lines[0])
	for _, l := range lines[2:] {
		rows = append(rows, strings.Fields(l))
	}
	return header, rows
}

func TestTable_AlignsColumns(t *testing.T) {
	tbl := NewTable([]string{"Type", "Name"})
	tbl.AddRow([]string{"Bucket", "a"})
	tbl.AddRow([]string{"Bucket", "a-much-longer-name"})

	out := tbl.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	// The second column starts at the same offset on every line
	col := strings.Index(lines[0], "Name")
	require.Greater(t, col, len("Type"))
	assert.Equal(t, col, strings.Index(lines[2], "a"))
	assert.Equal(t, col, strings.Index(lines[3], "a-much-longer-name"))

	assert.NotContains(t, out, "|")
	assert.NotContains(t, out, "+")
}

func TestTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", NewTable(nil).String())
}

func TestFormatBucketList(t *testing.T) {
	f := NewStorageFormatter()

	header, rows := parseTable(t, f.FormatBucketList([]storage.Bucket{{Name: "alpha"}, {Name: "beta"}}))

	assert.Equal(t, []string{"Type", "Name"}, header)
	assert.Equal(t, [][]string{
		{"Bucket", "alpha"},
		{"Bucket", "beta"},
	}, rows)
}

func TestFormatBucketList_Empty(t *testing.T) {
	header, rows := parseTable(t, NewStorageFormatter().FormatBucketList(nil))

	assert.Equal(t, []string{"Type", "Name"}, header)
	assert.Empty(t, rows)
}

func TestFormatObjectList(t *testing.T) {
	f := NewStorageFormatter()

	out := f.FormatObjectList(storage.ObjectList{
		Bucket:         "data",
		Prefix:         "logs/",
		CommonPrefixes: []string{"logs/"},
		Keys:           []string{"logs/", "logs/a.txt"},
	})
	header, rows := parseTable(t, out)

	assert.Equal(t, []string{"Type", "Bucket", "Key"}, header)
	assert.Equal(t, [][]string{
		{"Folder", "data", "logs/"},
		{"File", "data", "logs/a.txt"},
	}, rows)
}

func TestFormatObjectList_ControlCharactersInKeys(t *testing.T) {
	out := NewStorageFormatter().FormatObjectList(storage.ObjectList{
		Bucket: "data",
		Keys:   []string{"a\tb", "logs/tab\there", "two\nlines", "x\x1b[31mred\x1b[m", "plain"},
	})

	assert.NotContains(t, out, "\t")
	assert.NotContains(t, out, "\x1b")

	header, rows := parseTable(t, out)
	assert.Equal(t, []string{"Type", "Bucket", "Key"}, header)
	assert.Equal(t, [][]string{
		{"File", "data", `a\tb`},
		{"File", "data", `logs/tab\there`},
		{"File", "data", `two\nlines`},
		{"File", "data", `x\x1b[31mred\x1b[m`},
		{"File", "data", "plain"},
	}, rows)
}

func TestTable_EscapedCellsKeepAlignment(t *testing.T) {
	tbl := NewTable([]string{"Key", "Type"})
	tbl.AddRow([]string{"x\x1b[31mred", "File"})
	tbl.AddRow([]string{"plain", "File"})

	lines := strings.Split(strings.TrimRight(tbl.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	col := strings.Index(lines[0], "Type")
	assert.Equal(t, col, strings.Index(lines[2], "File"))
	assert.Equal(t, col, strings.Index(lines[3], "File"))
}

func TestEscapeControl(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain/key.txt", "plain/key.txt"},
		{"a\tb", `a\tb`},
		{"a\nb\r", `a\nb\r`},
		{"\x1b[m", `\x1b[m`},
		{"\x7f", `\x7f`},
		{"naïve/日本", "naïve/日本"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeControl(tt.in), "%q", tt.in)
	}
}
