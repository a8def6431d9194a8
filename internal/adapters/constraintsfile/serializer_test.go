package constraintsfile_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinfile/internal/adapters/constraintsfile"
	"go.trai.ch/pinfile/internal/core/domain"
)

func TestSerialize_CanonicalSpacing(t *testing.T) {
	input := "" +
		"# production pins\n" +
		"\n" +
		"torch == 2.5.1\n" +
		"onnxruntime<1.20;python_full_version < '3.10'\n" +
		"pytorch-lightning>=2.4.0 #https://example.com/advisory\n"

	doc, err := constraintsfile.Parse([]byte(input))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "canonical", constraintsfile.Serialize(doc))
}

func TestSerialize_EntryForms(t *testing.T) {
	tests := []struct {
		name     string
		entry    *domain.Entry
		expected string
	}{
		{
			name:     "bare pin",
			entry:    &domain.Entry{Name: "torch", Op: domain.OpEqual, Version: "2.5.1"},
			expected: "torch==2.5.1\n",
		},
		{
			name:     "with marker",
			entry:    &domain.Entry{Name: "onnxruntime", Op: domain.OpLess, Version: "1.20", Marker: "python_full_version < '3.10'"},
			expected: "onnxruntime<1.20 ; python_full_version < '3.10'\n",
		},
		{
			name:     "with comment",
			entry:    &domain.Entry{Name: "numpy", Op: domain.OpGreaterEqual, Version: "1.26", Comment: "abi floor"},
			expected: "numpy>=1.26  # abi floor\n",
		},
		{
			name: "with marker and comment",
			entry: &domain.Entry{
				Name: "scipy", Op: domain.OpCompatible, Version: "1.14.0",
				Marker: "sys_platform == 'linux'", Comment: "wheels only",
			},
			expected: "scipy~=1.14.0 ; sys_platform == 'linux'  # wheels only\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &domain.Document{Lines: []domain.Line{tt.entry}}
			assert.Equal(t, tt.expected, string(constraintsfile.Serialize(doc)))
		})
	}
}

func TestSerialize_CommentAndBlankForms(t *testing.T) {
	doc := &domain.Document{
		Lines: []domain.Line{
			&domain.Comment{Text: "heading"},
			&domain.Comment{},
			&domain.Blank{Raw: "   "},
		},
	}
	assert.Equal(t, "# heading\n#\n   \n", string(constraintsfile.Serialize(doc)))
}

// Serialization must satisfy parse(serialize(parse(text))) == parse(text)
// for any well-formed text.
func TestRoundTripIdempotence(t *testing.T) {
	inputs := []string{
		"torch==2.5.1\n",
		"# full line comment\n",
		"\n",
		"  \t\n",
		"onnxruntime<1.20 ; python_full_version < '3.10'\n",
		"pytorch-lightning>=2.4.0  # https://example.com/advisory\n",
		"# header\n\ntorch == 2.5.1\nnumpy>=1.26 ;python_version >= '3.9'# note\n\n",
		"demo==1.0 ; extra == 'a#b'\n",
		"a!=1\nb~=2.0\nc<=3\nd>4\n",
	}

	for _, input := range inputs {
		doc1, err := constraintsfile.Parse([]byte(input))
		require.NoError(t, err, "input %q", input)

		out := constraintsfile.Serialize(doc1)
		doc2, err := constraintsfile.Parse(out)
		require.NoError(t, err, "serialized form of %q must re-parse", input)
		require.Equal(t, doc1, doc2, "round trip of %q", input)

		// A second pass is byte-stable: the canonical form is a fixed point.
		assert.Equal(t, out, constraintsfile.Serialize(doc2), "input %q", input)
	}
}
