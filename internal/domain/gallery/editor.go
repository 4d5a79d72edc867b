package gallery

import "errors"

// DefaultMaxImages caps how many images one artwork may carry.
const DefaultMaxImages = 10

// ErrCapacityExceeded is returned by Append when the resulting collection
// would exceed the configured maximum. The input list is left untouched.
var ErrCapacityExceeded = errors.New("image limit reached")

// Attachment is one image reference in an artwork's ordered collection. The
// editor never owns image bytes, only the stored image ID.
type Attachment struct {
	ImageID     string  `json:"image_id"`
	SortOrder   int     `json:"sort_order"`
	IsMain      bool    `json:"is_main"`
	Attribution *string `json:"attribution,omitempty"`
}

// Every operation below is pure: it returns a freshly built list and never
// mutates its input. Each one ends with a single normalize pass over the whole
// list, so a partially applied mutation can never leave gaps in the sort
// order or break the one-primary rule.

// Append adds newly uploaded attachments at the end. All-or-nothing: if the
// result would exceed max (DefaultMaxImages when max <= 0), the original list
// is returned unchanged together with ErrCapacityExceeded.
func Append(list []Attachment, items []Attachment, max int) ([]Attachment, error) {
	if max <= 0 {
		max = DefaultMaxImages
	}
	if len(list)+len(items) > max {
		return list, ErrCapacityExceeded
	}
	next := make([]Attachment, 0, len(list)+len(items))
	next = append(next, list...)
	for _, it := range items {
		it.IsMain = false // primary never moves on append to a non-empty list
		next = append(next, it)
	}
	return Normalize(next), nil
}

// Remove deletes the item at index. Out-of-range indices are ignored. If the
// removed item was primary, the item left at position 0 becomes primary.
func Remove(list []Attachment, index int) []Attachment {
	if index < 0 || index >= len(list) {
		return Normalize(list)
	}
	next := make([]Attachment, 0, len(list)-1)
	next = append(next, list[:index]...)
	next = append(next, list[index+1:]...)
	return Normalize(next)
}

// Reorder moves the item at from to position to, shifting the items in
// between by one (list-move, not swap). Primary status follows the item, not
// the position. Out-of-range indices make this a no-op.
func Reorder(list []Attachment, from, to int) []Attachment {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return Normalize(list)
	}
	next := make([]Attachment, 0, len(list))
	next = append(next, list[:from]...)
	next = append(next, list[from+1:]...)
	moved := list[from]
	next = append(next[:to], append([]Attachment{moved}, next[to:]...)...)
	return Normalize(next)
}

// SetPrimary marks the item at index as the collection's single primary
// image. Out-of-range indices and empty lists are ignored.
func SetPrimary(list []Attachment, index int) []Attachment {
	next := Normalize(list)
	if index < 0 || index >= len(next) {
		return next
	}
	for i := range next {
		next[i].IsMain = i == index
	}
	return next
}

// SetAttribution replaces the attribution text of one item. Empty text is
// normalized to nil. Out-of-range indices are ignored.
func SetAttribution(list []Attachment, index int, text string) []Attachment {
	next := Normalize(list)
	if index < 0 || index >= len(next) {
		return next
	}
	if text == "" {
		next[index].Attribution = nil
	} else {
		t := text
		next[index].Attribution = &t
	}
	return next
}

// Normalize rewrites sort orders to the dense sequence 0..n-1 in list order
// and repairs the primary invariant: exactly one primary item on a non-empty
// list, defaulting to position 0 when none is set, keeping only the first
// when several are.
func Normalize(list []Attachment) []Attachment {
	next := make([]Attachment, len(list))
	copy(next, list)

	seenMain := false
	for i := range next {
		next[i].SortOrder = i
		if next[i].IsMain {
			if seenMain {
				next[i].IsMain = false
			}
			seenMain = true
		}
	}
	if !seenMain && len(next) > 0 {
		next[0].IsMain = true
	}
	return next
}
