package debugui

// history is a fixed-size ring of plot samples.
type history struct {
	samples []float32
	next    int
	filled  bool
	ordered []float32
}

func newHistory(size int) *history {
	if size <= 0 {
		panic("history size must be positive")
	}
	return &history{
		samples: make([]float32, size),
		ordered: make([]float32, size),
	}
}

func (h *history) push(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.filled = true
	}
}

func (h *history) count() int {
	if h.filled {
		return len(h.samples)
	}
	return h.next
}

// oldestFirst returns the recorded samples in insertion order. The slice is
// reused by the next call.
func (h *history) oldestFirst() []float32 {
	n := h.count()
	out := h.ordered[:n]
	if !h.filled {
		copy(out, h.samples[:n])
		return out
	}
	k := copy(out, h.samples[h.next:])
	copy(out[k:], h.samples[:h.next])
	return out
}

func (h *history) average() float32 {
	n := h.count()
	if n == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.oldestFirst() {
		sum += v
	}
	return sum / float32(n)
}

func (h *history) last() float32 {
	if h.count() == 0 {
		return 0
	}
	return h.samples[(h.next-1+len(h.samples))%len(h.samples)]
}
