package collection

// At returns the element at index i if it exists.
func At[S ~[]E, E any](s S, i int) (E, bool) {
	if i < 0 || i >= len(s) {
		var zero E
		return zero, false
	}
	return s[i], true
}

// ContainsAll reports whether every element of other is present in s.
func ContainsAll[E comparable](s, other []E) bool {
	if len(other) == 0 {
		return true
	}

	set := make(map[E]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	for _, v := range other {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

// IsSame reports whether a and b hold the same elements, ignoring order and duplicates.
func IsSame[E comparable](a, b []E) bool {
	return ContainsAll(a, b) && ContainsAll(b, a)
}
