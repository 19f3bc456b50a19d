package dualstr

import "unsafe"

// view returns the bytes of s without copying. The result has cap == len
// and must not be modified unless s was owned and has just been consumed.
func (s Str) view() []byte {
	n := s.Len()
	if n == 0 && s.ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(s.ptr), n)
}

// consume marks s as moved out. Later reads panic with ErrConsumed.
func (s *Str) consume() {
	s.ptr = nil
	s.n = consumed
}
