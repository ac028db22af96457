package codec

// sliceWriter appends to a caller-owned, fixed-capacity byte slice. Writing
// past the end fails with ErrShortBuffer instead of growing; the stream
// codecs use it to honor the bounded-destination contract.
type sliceWriter struct {
	buf []byte
	n   int
}

func newSliceWriter(buf []byte) *sliceWriter {
	return &sliceWriter{buf: buf}
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > len(w.buf) {
		return 0, ErrShortBuffer
	}
	n := copy(w.buf[w.n:], p)
	w.n += n

	return n, nil
}

// Len returns the number of bytes written so far.
func (w *sliceWriter) Len() int {
	return w.n
}

// moveToDst adapts libraries with slice-returning APIs to the dst-buffer
// contract: when the library had to grow its buffer the result lands outside
// dst and is copied back.
func moveToDst(out, dst []byte) (int, error) {
	if len(out) > len(dst) {
		return 0, ErrShortBuffer
	}
	if len(out) > 0 && &out[0] != &dst[0] {
		copy(dst, out)
	}

	return len(out), nil
}
