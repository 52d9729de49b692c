package etoalium

// History is the in-app stand-in for the browser's URL history: a stack of
// visited paths. Paths are stored as given; decoding happens on navigation.
type History struct {
	entries []string
}

// Push records path as the current entry. Pushing the current path again
// is ignored.
func (h *History) Push(path string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == path {
		return
	}
	h.entries = append(h.entries, path)
}

// Back drops the current entry and returns the previous one. It reports
// false when there is nothing to go back to.
func (h *History) Back() (string, bool) {
	if len(h.entries) < 2 {
		return "", false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.entries[len(h.entries)-1], true
}

// Current returns the current path, or "" before the first Push.
func (h *History) Current() string {
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }
