package constraintsfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinfile/internal/adapters/constraintsfile"
	"go.trai.ch/pinfile/internal/core/domain"
)

func TestParse_SimplePin(t *testing.T) {
	doc, err := constraintsfile.Parse([]byte("torch==2.5.1\n"))
	require.NoError(t, err)
	require.Len(t, doc.Lines, 1)

	e, ok := doc.Lines[0].(*domain.Entry)
	require.True(t, ok, "expected an entry line")
	assert.Equal(t, "torch", e.Name)
	assert.Equal(t, domain.OpEqual, e.Op)
	assert.Equal(t, "2.5.1", e.Version)
	assert.Empty(t, e.Marker)
	assert.Empty(t, e.Comment)
	assert.Equal(t, 1, e.Pos())
}

func TestParse_EnvironmentMarker(t *testing.T) {
	doc, err := constraintsfile.Parse([]byte("onnxruntime<1.20 ; python_full_version < '3.10'\n"))
	require.NoError(t, err)
	require.Len(t, doc.Lines, 1)

	e, ok := doc.Lines[0].(*domain.Entry)
	require.True(t, ok, "expected an entry line")
	assert.Equal(t, "onnxruntime", e.Name)
	assert.Equal(t, domain.OpLess, e.Op)
	assert.Equal(t, "1.20", e.Version)
	assert.Equal(t, "python_full_version < '3.10'", e.Marker)
	assert.Empty(t, e.Comment)
}

func TestParse_InlineComment(t *testing.T) {
	doc, err := constraintsfile.Parse([]byte("pytorch-lightning>=2.4.0  # https://example.com/advisory\n"))
	require.NoError(t, err)

	e, ok := doc.Lines[0].(*domain.Entry)
	require.True(t, ok, "expected an entry line")
	assert.Equal(t, "pytorch-lightning", e.Name)
	assert.Equal(t, domain.OpGreaterEqual, e.Op)
	assert.Equal(t, "2.4.0", e.Version)
	assert.Equal(t, "https://example.com/advisory", e.Comment)
}

func TestParse_MarkerAndComment(t *testing.T) {
	doc, err := constraintsfile.Parse([]byte("numpy~=1.26.0 ; sys_platform == 'linux' # abi stability\n"))
	require.NoError(t, err)

	e, ok := doc.Lines[0].(*domain.Entry)
	require.True(t, ok, "expected an entry line")
	assert.Equal(t, domain.OpCompatible, e.Op)
	assert.Equal(t, "1.26.0", e.Version)
	assert.Equal(t, "sys_platform == 'linux'", e.Marker)
	assert.Equal(t, "abi stability", e.Comment)
}

func TestParse_HashInsideQuotedMarkerIsNotAComment(t *testing.T) {
	doc, err := constraintsfile.Parse([]byte("demo==1.0 ; extra == 'a#b'\n"))
	require.NoError(t, err)

	e, ok := doc.Lines[0].(*domain.Entry)
	require.True(t, ok, "expected an entry line")
	assert.Equal(t, "extra == 'a#b'", e.Marker)
	assert.Empty(t, e.Comment)
}

func TestParse_Operators(t *testing.T) {
	tests := []struct {
		line     string
		expected domain.Operator
	}{
		{"a==1", domain.OpEqual},
		{"a!=1", domain.OpNotEqual},
		{"a>=1", domain.OpGreaterEqual},
		{"a<=1", domain.OpLessEqual},
		{"a~=1.0", domain.OpCompatible},
		{"a>1", domain.OpGreater},
		{"a<1", domain.OpLess},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			doc, err := constraintsfile.Parse([]byte(tt.line))
			require.NoError(t, err)
			e, ok := doc.Lines[0].(*domain.Entry)
			require.True(t, ok, "expected an entry line")
			assert.Equal(t, tt.expected, e.Op)
		})
	}
}

func TestParse_WhitespaceAroundFieldsIsNotSemantic(t *testing.T) {
	doc, err := constraintsfile.Parse([]byte("  torch == 2.5.1 \n"))
	require.NoError(t, err)

	e, ok := doc.Lines[0].(*domain.Entry)
	require.True(t, ok, "expected an entry line")
	assert.Equal(t, "torch", e.Name)
	assert.Equal(t, "2.5.1", e.Version)
}

func TestParse_FullLineComment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain comment",
			input:    "# pinned for CVE-2024-0001\n",
			expected: "pinned for CVE-2024-0001",
		},
		{
			name:     "indented comment",
			input:    "   # indented\n",
			expected: "indented",
		},
		{
			name:     "bare hash",
			input:    "#\n",
			expected: "",
		},
		{
			name:     "comment that looks like an entry",
			input:    "# torch==2.5.1\n",
			expected: "torch==2.5.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := constraintsfile.Parse([]byte(tt.input))
			require.NoError(t, err)
			require.Len(t, doc.Lines, 1)

			c, ok := doc.Lines[0].(*domain.Comment)
			require.True(t, ok, "expected a comment line, got %T", doc.Lines[0])
			assert.Equal(t, tt.expected, c.Text)
			assert.Empty(t, doc.Entries(), "comments contribute nothing to the constraint set")
		})
	}
}

func TestParse_BlankLinesPreserved(t *testing.T) {
	input := "torch==2.5.1\n\n  \nnumpy>=1.26\n"
	doc, err := constraintsfile.Parse([]byte(input))
	require.NoError(t, err)
	require.Len(t, doc.Lines, 4)

	b1, ok := doc.Lines[1].(*domain.Blank)
	require.True(t, ok, "expected a blank line")
	assert.Equal(t, "", b1.Raw)
	assert.Equal(t, 2, b1.Pos())

	b2, ok := doc.Lines[2].(*domain.Blank)
	require.True(t, ok, "expected a blank line")
	assert.Equal(t, "  ", b2.Raw)

	out := constraintsfile.Serialize(doc)
	assert.Equal(t, input, string(out), "blank lines keep their original position and text")
}

func TestParse_TrailingNewlineDoesNotAddABlank(t *testing.T) {
	with, err := constraintsfile.Parse([]byte("torch==2.5.1\n"))
	require.NoError(t, err)
	without, err := constraintsfile.Parse([]byte("torch==2.5.1"))
	require.NoError(t, err)
	assert.Equal(t, len(with.Lines), len(without.Lines))
}

func TestParse_DuplicateMarkerQualifiedEntriesRetained(t *testing.T) {
	input := "onnxruntime<1.20 ; python_full_version < '3.10'\n" +
		"onnxruntime>=1.20 ; python_full_version >= '3.10'\n"
	doc, err := constraintsfile.Parse([]byte(input))
	require.NoError(t, err)

	entries := doc.EntriesFor("onnxruntime")
	require.Len(t, entries, 2, "entries with disjoint markers must both be retained")
	assert.Empty(t, doc.DuplicatePins())
}

func TestParse_MalformedLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "no operator",
			input:    "just some words\n",
			expected: domain.ErrUnknownOperator,
		},
		{
			name:     "single equals is not an operator",
			input:    "torch=2.5.1\n",
			expected: domain.ErrUnknownOperator,
		},
		{
			name:     "missing package name",
			input:    "==2.5.1\n",
			expected: domain.ErrEmptyPackageName,
		},
		{
			name:     "missing version",
			input:    "torch==\n",
			expected: domain.ErrEmptyVersion,
		},
		{
			name:     "version with embedded whitespace",
			input:    "torch==2.5 .1\n",
			expected: domain.ErrMalformedEntry,
		},
		{
			name:     "empty marker after separator",
			input:    "torch==2.5.1 ;\n",
			expected: domain.ErrEmptyMarker,
		},
		{
			name:     "name with illegal characters",
			input:    "tor ch==2.5.1\n",
			expected: domain.ErrInvalidPackageName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := constraintsfile.Parse([]byte(tt.input))
			require.Error(t, err)
			require.ErrorIs(t, err, tt.expected)
			assert.Nil(t, doc, "a malformed file must not yield a partial document")
		})
	}
}

func TestParse_MalformedLineAbortsWholeParse(t *testing.T) {
	input := "torch==2.5.1\nbroken line\nnumpy>=1.26\n"
	doc, err := constraintsfile.Parse([]byte(input))
	require.ErrorIs(t, err, domain.ErrUnknownOperator)
	assert.Nil(t, doc)
}

func TestParse_EmptyInput(t *testing.T) {
	doc, err := constraintsfile.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Lines)
}

func TestParse_CRLFInput(t *testing.T) {
	doc, err := constraintsfile.Parse([]byte("torch==2.5.1\r\nnumpy>=1.26\r\n"))
	require.NoError(t, err)
	require.Len(t, doc.Lines, 2)

	e, ok := doc.Lines[0].(*domain.Entry)
	require.True(t, ok, "expected an entry line")
	assert.Equal(t, "2.5.1", e.Version)
}
