package batcher

// stripe is a fixed-capacity buffer. It is NOT thread-safe.
type stripe[T any] struct {
	data []T
	cap  int
}

func newStripe[T any](capacity int) *stripe[T] {
	return &stripe[T]{
		data: make([]T, 0, capacity),
		cap:  capacity,
	}
}

// push appends item and reports whether the stripe is full.
func (s *stripe[T]) push(item T) bool {
	s.data = append(s.data, item)
	return len(s.data) >= s.cap
}

// take hands out the buffered items and starts a fresh slice,
// so the receiver owns what it got.
func (s *stripe[T]) take() []T {
	if len(s.data) == 0 {
		return nil
	}
	batch := s.data
	s.data = make([]T, 0, s.cap)
	return batch
}

func (s *stripe[T]) len() int {
	return len(s.data)
}
