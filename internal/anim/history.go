package anim

// Record is one settle or boundary event kept in a History.
type Record struct {
	Seq   uint64
	Event Event
	Index int // node that finished its step
	Dir   int // chain direction after the event
}

// History keeps the last N records in a ring buffer.
type History struct {
	buffer    []Record
	nextIndex int
	count     int
	seq       uint64
}

func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{buffer: make([]Record, size)}
}

// Add stores a record, overwriting the oldest once the buffer is full.
func (h *History) Add(ev Event, index, dir int) {
	h.seq++
	h.buffer[h.nextIndex] = Record{Seq: h.seq, Event: ev, Index: index, Dir: dir}
	h.nextIndex++
	if h.nextIndex >= len(h.buffer) {
		h.nextIndex = 0
	}
	if h.count < len(h.buffer) {
		h.count++
	}
}

// Len is the number of records currently held.
func (h *History) Len() int { return h.count }

// Snapshot returns up to the last n records, oldest first.
func (h *History) Snapshot(n int) []Record {
	if n > h.count {
		n = h.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]Record, n)
	// walk backwards from the newest record
	idx := h.nextIndex - 1
	for i := n - 1; i >= 0; i-- {
		if idx < 0 {
			idx = len(h.buffer) - 1
		}
		out[i] = h.buffer[idx]
		idx--
	}
	return out
}
