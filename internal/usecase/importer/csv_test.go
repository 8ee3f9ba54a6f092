package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_SimpleDocument(t *testing.T) {
	rows, err := Parse(strings.NewReader("name,qty\nWidget,5\nGadget,2\n"))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Widget", rows[0]["name"])
	require.Equal(t, "5", rows[0]["qty"])
	require.Equal(t, "Gadget", rows[1]["name"])
	require.Equal(t, "2", rows[1]["qty"])
}

func TestParse_HeaderOnly(t *testing.T) {
	rows, err := Parse(strings.NewReader("name,qty\n"))

	require.NoError(t, err)
	require.Len(t, rows, 0)
}

func TestParse_EmptyInput(t *testing.T) {
	rows, err := Parse(strings.NewReader(""))

	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Len(t, rows, 0)
}

func TestParse_QuotedFieldWithComma(t *testing.T) {
	rows, err := Parse(strings.NewReader("name,price\n\"Widget, Deluxe\",19.99\n"))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Widget, Deluxe", rows[0]["name"])
	require.Equal(t, "19.99", rows[0]["price"])
}

func TestParse_QuotedFieldWithNewline(t *testing.T) {
	rows, err := Parse(strings.NewReader("name,description\nWidget,\"line one\nline two\"\n"))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "line one\nline two", rows[0]["description"])
}

func TestParse_EscapedQuotes(t *testing.T) {
	rows, err := Parse(strings.NewReader("name\n\"say \"\"hi\"\"\"\n"))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, `say "hi"`, rows[0]["name"])
}

func TestParse_ShortRecordPadded(t *testing.T) {
	rows, err := Parse(strings.NewReader("name,qty,price\nWidget,5\n"))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Widget", rows[0]["name"])
	require.Equal(t, "5", rows[0]["qty"])
	require.Equal(t, "", rows[0]["price"])
}

func TestParse_LongRecordTruncated(t *testing.T) {
	rows, err := Parse(strings.NewReader("name,qty\nWidget,5,extra\n"))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 2)
	require.Equal(t, "Widget", rows[0]["name"])
	require.Equal(t, "5", rows[0]["qty"])
}

func TestParse_SkipsBlankLines(t *testing.T) {
	rows, err := Parse(strings.NewReader("name,qty\nWidget,5\n\nGadget,2\n"))

	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestParse_TrimsHeaderWhitespace(t *testing.T) {
	rows, err := Parse(strings.NewReader(" name , qty \nWidget,5\n"))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Widget", rows[0]["name"])
	require.Equal(t, "5", rows[0]["qty"])
}

func TestParseLegacy_SimpleDocument(t *testing.T) {
	rows := ParseLegacy("name,qty\nWidget,5\nGadget,2")

	require.Len(t, rows, 2)
	require.Equal(t, "Widget", rows[0]["name"])
	require.Equal(t, "2", rows[1]["qty"])
}

func TestParseLegacy_StripsQuotes(t *testing.T) {
	rows := ParseLegacy("\"name\",\"qty\"\n\"Widget\",\"5\"")

	require.Len(t, rows, 1)
	require.Equal(t, "Widget", rows[0]["name"])
	require.Equal(t, "5", rows[0]["qty"])
}

func TestParseLegacy_QuotedCommaCorruptsAlignment(t *testing.T) {
	// The old splitter breaks on every comma, quoted or not. A feed built
	// against that behavior counts on it.
	rows := ParseLegacy("name,price\n\"Widget, Deluxe\",19.99")

	require.Len(t, rows, 1)
	require.Equal(t, "Widget", rows[0]["name"])
	require.Equal(t, " Deluxe", rows[0]["price"])
}

func TestParseLegacy_CRLFInput(t *testing.T) {
	rows := ParseLegacy("name,qty\r\nWidget,5\r\n")

	require.Len(t, rows, 1)
	require.Equal(t, "Widget", rows[0]["name"])
}

func TestParseLegacy_EmptyInput(t *testing.T) {
	rows := ParseLegacy("")

	require.NotNil(t, rows)
	require.Len(t, rows, 0)
}
