package misc

import "sync/atomic"

// Sequence hands out unique uint64 IDs. The zero value is ready to use and
// safe for concurrent callers.
type Sequence struct {
	n atomic.Uint64
}

// Next returns the next ID, starting from 1.
func (s *Sequence) Next() uint64 {
	return s.n.Add(1)
}
