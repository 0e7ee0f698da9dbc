package puid

// Allocator hands out custom PUIDs from a strictly increasing sequence.
// The sequence is scoped to one merge run: the caller creates one Allocator,
// threads it through every document, and discards it afterwards. The next
// index never resets between documents, which guarantees global sequential
// uniqueness of the allocated PUIDs.
type Allocator struct {
	prefix string
	next   int
}

// NewAllocator returns an allocator whose first PUID is
// "<prefix>/<startIndex>".
func NewAllocator(prefix string, startIndex int) *Allocator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Allocator{prefix: prefix, next: startIndex}
}

// Prefix returns the namespace new PUIDs are allocated under.
func (a *Allocator) Prefix() string {
	return a.prefix
}

// Next returns the next PUID in the sequence and advances it.
func (a *Allocator) Next() PUID {
	p := PUID{Authority: a.prefix, Number: a.next}
	a.next++
	return p
}
