package constraintsfile

import (
	"strings"

	"go.trai.ch/pinfile/internal/core/domain"
)

// Serialize renders a document back to its textual form with canonical
// spacing. Comments and blank lines are reproduced at their original
// positions so that serialization stays diff-friendly. Serialize is the
// inverse of Parse: re-parsing the output yields a structurally equal
// document.
func Serialize(doc *domain.Document) []byte {
	var b strings.Builder
	for _, line := range doc.Lines {
		switch l := line.(type) {
		case *domain.Entry:
			writeEntry(&b, l)
		case *domain.Comment:
			if l.Text == "" {
				b.WriteString("#")
			} else {
				b.WriteString("# ")
				b.WriteString(l.Text)
			}
		case *domain.Blank:
			b.WriteString(l.Raw)
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func writeEntry(b *strings.Builder, e *domain.Entry) {
	b.WriteString(e.Name)
	b.WriteString(string(e.Op))
	b.WriteString(e.Version)
	if e.Marker != "" {
		b.WriteString(" ; ")
		b.WriteString(e.Marker)
	}
	if e.Comment != "" {
		b.WriteString("  # ")
		b.WriteString(e.Comment)
	}
}
