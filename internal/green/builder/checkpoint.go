package builder

// Checkpoint is an opaque position marker captured by Builder.Checkpoint
// and later consumed by Builder.StartNodeAt to retroactively wrap a prefix
// of the children buffer in a new node. The zero Checkpoint is never
// produced by Checkpoint() and is always rejected by StartNodeAt, which
// lets a caller use the zero value as an explicit "no checkpoint" marker
// in its own bookkeeping.
type Checkpoint struct {
	// index is children-buffer-length-at-capture plus one, so that the
	// legitimate checkpoint at position 0 (nothing built yet) is
	// distinguishable from an unset Checkpoint{}.
	index uint32
}

func (c Checkpoint) valid() bool { return c.index != 0 }

// collapse records the half-open, 0-based range of the children buffer
// that one finish_node call replaced with a single interned node. A
// Checkpoint whose captured position falls strictly inside a later
// collapse no longer points at a real boundary and must be rejected by
// StartNodeAt even though its raw index may coincidentally be back in
// range.
type collapse struct {
	start, end int
}
