package event

// Queue is a bounded single-tick message queue
// Thread-Safety: none, owned by the tick goroutine
//   - Push: appends until capacity, newest message dropped when full
//   - Read: per-consumer cursor, each consumer sees every message once
//   - Drain: end of tick, all messages discarded
type Queue[T any] struct {
	buf     []T
	limit   int
	base    uint64 // Sequence number of buf[0]
	dropped uint64
}

// Cursor tracks a consumer position in a queue
// Zero value reads from the oldest pending message
type Cursor struct {
	next uint64
}

// NewQueue creates a queue holding at most limit messages per tick
func NewQueue[T any](limit int) *Queue[T] {
	if limit < 1 {
		limit = 1
	}
	return &Queue[T]{
		buf:   make([]T, 0, limit),
		limit: limit,
	}
}

// Push appends msg, returns false and counts a drop when full
func (q *Queue[T]) Push(msg T) bool {
	if len(q.buf) >= q.limit {
		q.dropped++
		return false
	}
	q.buf = append(q.buf, msg)
	return true
}

// Read returns messages not yet seen by c and advances it
// The slice aliases the queue buffer and is valid until Drain
func (q *Queue[T]) Read(c *Cursor) []T {
	if c.next < q.base {
		c.next = q.base
	}
	start := int(c.next - q.base)
	if start >= len(q.buf) {
		return nil
	}
	c.next = q.base + uint64(len(q.buf))
	return q.buf[start:]
}

// Len returns pending message count
func (q *Queue[T]) Len() int {
	return len(q.buf)
}

// Drain discards all pending messages
// Outstanding cursors skip forward on their next Read
func (q *Queue[T]) Drain() {
	clear(q.buf)
	q.base += uint64(len(q.buf))
	q.buf = q.buf[:0]
}

// Dropped returns the number of messages rejected since creation
func (q *Queue[T]) Dropped() uint64 {
	return q.dropped
}
