package folders

import (
	"errors"
	"fmt"
)

// ErrMissingSegment is matched by every [SegmentError].
var ErrMissingSegment = errors.New("entry has no folder segment after prefix")

// SegmentError reports an entry whose first segment matched the prefix but
// which has no second segment to take a folder name from.
type SegmentError struct {
	Index    int
	Entry    string
	Segments int
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("entry %d (%q): segment index 1 out of range with %d segment(s)", e.Index, e.Entry, e.Segments)
}

func (e *SegmentError) Is(target error) bool {
	return target == ErrMissingSegment
}
