package history

// History is the ordered list of clipboard entries, oldest first.
// Duplicates are allowed.
type History []string

func (h History) Len() int { return len(h) }

// Push appends text as the newest entry.
func (h *History) Push(text string) {
	*h = append(*h, text)
}

// Pop removes and returns the newest entry.
func (h *History) Pop() (string, bool) {
	n := len(*h)
	if n == 0 {
		return "", false
	}
	last := (*h)[n-1]
	*h = (*h)[:n-1]
	return last, true
}

func (h History) Peek() (string, bool) {
	if len(h) == 0 {
		return "", false
	}
	return h[len(h)-1], true
}

// Remove deletes the entry at index i, keeping the order of the rest.
func (h *History) Remove(i int) bool {
	if i < 0 || i >= len(*h) {
		return false
	}
	*h = append((*h)[:i], (*h)[i+1:]...)
	return true
}

// Clone returns a copy that does not share backing storage with h.
func (h History) Clone() History {
	if h == nil {
		return nil
	}
	out := make(History, len(h))
	copy(out, h)
	return out
}

func (h History) Equal(other History) bool {
	if len(h) != len(other) {
		return false
	}
	for i := range h {
		if h[i] != other[i] {
			return false
		}
	}
	return true
}
