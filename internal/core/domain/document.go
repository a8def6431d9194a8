package domain

// Line is a single physical line of a constraints document.
// A document is an ordered sequence of lines; the order is preserved
// through parse and serialize so that diffs stay stable.
type Line interface {
	// Pos returns the 1-based line number of the line in its source text.
	// Lines constructed programmatically report 0.
	Pos() int
}

// Comment is a full-line comment. The leading '#' and surrounding
// whitespace are stripped; only the comment text is kept.
type Comment struct {
	Text   string
	LineNo int
}

// Pos returns the 1-based source line number.
func (c *Comment) Pos() int { return c.LineNo }

// Blank is an empty or whitespace-only line. The original text is kept
// verbatim so serialization reproduces the file layout exactly.
type Blank struct {
	Raw    string
	LineNo int
}

// Pos returns the 1-based source line number.
func (b *Blank) Pos() int { return b.LineNo }

// Document is a parsed constraints file: an ordered sequence of entries,
// comments and blank lines.
type Document struct {
	Lines []Line
}

// Entries returns the constraint entries of the document in file order,
// skipping comments and blanks.
func (d *Document) Entries() []*Entry {
	var entries []*Entry
	for _, line := range d.Lines {
		if e, ok := line.(*Entry); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// EntriesFor returns all entries whose canonical package name matches the
// given name. A package may legally appear several times with different
// environment markers, so the result can hold more than one entry.
func (d *Document) EntriesFor(name string) []*Entry {
	canonical := CanonicalName(name)
	var entries []*Entry
	for _, e := range d.Entries() {
		if e.Canonical() == canonical {
			entries = append(entries, e)
		}
	}
	return entries
}

// DuplicatePins returns groups of entries that share both a canonical
// package name and an environment marker. Entries for the same package
// under different markers are legitimate and are not reported; two pins
// for the same package under the same marker are almost certainly an
// authoring mistake, even though only the external resolver can tell
// whether they conflict.
func (d *Document) DuplicatePins() [][]*Entry {
	type key struct {
		name   InternedString
		marker string
	}
	groups := make(map[key][]*Entry)
	var order []key
	for _, e := range d.Entries() {
		k := key{name: e.Canonical(), marker: e.Marker}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], e)
	}

	var dupes [][]*Entry
	for _, k := range order {
		if len(groups[k]) > 1 {
			dupes = append(dupes, groups[k])
		}
	}
	return dupes
}
