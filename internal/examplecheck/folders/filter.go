// Package folders extracts the distinct top-level folders under a prefix
// from a delimited list of slash-separated paths.
package folders

import "strings"

const (
	DefaultPrefix    = "examples"
	DefaultDelimiter = "   "
	PathSeparator    = "/"
)

// Observer is called once per entry, before the entry is matched against
// the prefix.
type Observer func(index int, entry string, segments []string)

type Filter struct {
	Prefix    string
	Delimiter string
	Observer  Observer
}

// New returns a Filter for prefix and delimiter, falling back to the
// defaults for empty values.
func New(prefix, delimiter string) *Filter {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return &Filter{Prefix: prefix, Delimiter: delimiter}
}

// Split breaks the combined input into entries on the literal delimiter.
func Split(raw, delimiter string) []string {
	return strings.Split(raw, delimiter)
}

// Run splits raw on the filter's delimiter and collects folders from the
// resulting entries.
func (f *Filter) Run(raw string) (*FolderList, error) {
	return f.Folders(Split(raw, f.Delimiter))
}

// Folders takes the second segment of every entry whose first segment
// equals the prefix. An entry that matches but has no second segment
// aborts the pass with a *SegmentError.
func (f *Filter) Folders(entries []string) (*FolderList, error) {
	list := NewFolderList()
	for i, entry := range entries {
		segments := strings.Split(entry, PathSeparator)
		if f.Observer != nil {
			f.Observer(i, entry, segments)
		}
		if segments[0] != f.Prefix {
			continue
		}
		if len(segments) < 2 {
			return nil, &SegmentError{Index: i, Entry: entry, Segments: len(segments)}
		}
		list.Add(segments[1])
	}
	return list, nil
}
