package domain

// DefaultContextWindow is the default capacity of the context buffer.
const DefaultContextWindow = 5

// ContextBuffer is a bounded FIFO history of normalised past queries.
// Appending at capacity evicts the oldest entry. It is owned by a single
// query processor instance and is not safe for concurrent mutation.
type ContextBuffer struct {
	entries  []string
	capacity int
}

// NewContextBuffer creates a buffer with the given capacity.
// Non-positive capacities fall back to DefaultContextWindow.
func NewContextBuffer(capacity int) *ContextBuffer {
	if capacity <= 0 {
		capacity = DefaultContextWindow
	}
	return &ContextBuffer{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Append adds a normalised query to the tail, evicting the head entry
// once the buffer is full.
func (b *ContextBuffer) Append(query string) {
	if len(b.entries) == b.capacity {
		copy(b.entries, b.entries[1:])
		b.entries = b.entries[:len(b.entries)-1]
	}
	b.entries = append(b.entries, query)
}

// Snapshot returns a copy of the buffer contents, oldest first.
func (b *ContextBuffer) Snapshot() []string {
	out := make([]string, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of buffered entries.
func (b *ContextBuffer) Len() int {
	return len(b.entries)
}

// Capacity returns the configured maximum size.
func (b *ContextBuffer) Capacity() int {
	return b.capacity
}

// Clear removes all entries.
func (b *ContextBuffer) Clear() {
	b.entries = b.entries[:0]
}
