package folders

import (
	"encoding/json"
	"fmt"
)

// FolderList is an insertion-ordered set of folder names.
type FolderList struct {
	names []string
	seen  map[string]struct{}
}

func NewFolderList() *FolderList {
	return &FolderList{seen: make(map[string]struct{})}
}

// Add appends name unless it is already present. It reports whether the
// list changed.
func (l *FolderList) Add(name string) bool {
	if _, ok := l.seen[name]; ok {
		return false
	}
	l.seen[name] = struct{}{}
	l.names = append(l.names, name)
	return true
}

func (l *FolderList) Len() int {
	return len(l.names)
}

// Names returns a copy of the folder names in first-seen order.
func (l *FolderList) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

func (l *FolderList) String() string {
	return fmt.Sprint(l.names)
}

func (l *FolderList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Names())
}

func (l *FolderList) MarshalYAML() (any, error) {
	return l.Names(), nil
}
