package filter

import "strings"

// Selection is an ordered set of tag or category values. The zero
// value is an empty selection. Selections are treated as values: Toggle
// returns a new Selection and leaves the receiver untouched.
type Selection []string

// Toggle removes v if it is selected and otherwise inserts it at its place in
// order, the first-seen ordering of every selectable value. Values missing
// from order go last. For selections built against the same order, toggling
// a value twice gives back the same values in the same order.
func (s Selection) Toggle(v string, order []string) Selection {
	if s.Contains(v) {
		out := make(Selection, 0, len(s))
		for _, x := range s {
			if x != v {
				out = append(out, x)
			}
		}
		return out
	}

	rank := func(x string) int {
		for i, o := range order {
			if o == x {
				return i
			}
		}
		return len(order)
	}

	at := len(s)
	rv := rank(v)
	for i, x := range s {
		if rank(x) > rv {
			at = i
			break
		}
	}

	out := make(Selection, 0, len(s)+1)
	out = append(out, s[:at]...)
	out = append(out, v)
	return append(out, s[at:]...)
}

func (s Selection) Contains(v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// ContainsAny reports whether at least one of vs is selected.
func (s Selection) ContainsAny(vs []string) bool {
	for _, v := range vs {
		if s.Contains(v) {
			return true
		}
	}
	return false
}

func (s Selection) Empty() bool { return len(s) == 0 }

// Label renders the selection for a status line; empty means everything.
func (s Selection) Label() string {
	if s.Empty() {
		return "All"
	}
	return strings.Join(s, ", ")
}
