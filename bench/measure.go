package bench

import (
	"fmt"
	"io"
	"time"
)

// Measurement records the byte positions reached on the input and output
// streams of one operation, together with its wall-clock duration.
type Measurement struct {
	InputLen  uint64
	OutputLen uint64
	Elapsed   time.Duration
}

// Ratio returns output bytes per input byte. Zero input yields zero.
func (m Measurement) Ratio() float64 {
	if m.InputLen == 0 {
		return 0
	}

	return float64(m.OutputLen) / float64(m.InputLen)
}

// InputThroughput returns input bytes consumed per second.
func (m Measurement) InputThroughput() float64 {
	s := m.Elapsed.Seconds()
	if s == 0 {
		return 0
	}

	return float64(m.InputLen) / s
}

// OutputThroughput returns output bytes produced per second.
func (m Measurement) OutputThroughput() float64 {
	s := m.Elapsed.Seconds()
	if s == 0 {
		return 0
	}

	return float64(m.OutputLen) / s
}

// String formats the measurement as "in => out (pct %)".
func (m Measurement) String() string {
	return fmt.Sprintf("%d => %d (%.1f %%)", m.InputLen, m.OutputLen, m.Ratio()*100)
}

// Measure runs op and reports the bytes that moved through in and out along
// with the elapsed wall-clock time. The counters must wrap the streams op
// operates on.
func Measure(in *CountingReader, out *CountingWriter, op func() error) (Measurement, error) {
	start := time.Now()
	err := op()
	elapsed := time.Since(start)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{
		InputLen:  in.BytesRead(),
		OutputLen: out.BytesWritten(),
		Elapsed:   elapsed,
	}, nil
}

// CountingReader counts the bytes read through it.
type CountingReader struct {
	r io.Reader
	n uint64
}

func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{r: r}
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += uint64(n)

	return n, err
}

// BytesRead returns the total number of bytes read so far.
func (c *CountingReader) BytesRead() uint64 {
	return c.n
}

// CountingWriter counts the bytes written through it. A nil destination
// discards everything, which makes it the decompression sink in benchmarks.
type CountingWriter struct {
	w io.Writer
	n uint64
}

func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// Discard returns a counting sink that drops everything written to it.
func Discard() *CountingWriter {
	return &CountingWriter{}
}

func (c *CountingWriter) Write(p []byte) (int, error) {
	if c.w == nil {
		c.n += uint64(len(p))
		return len(p), nil
	}

	n, err := c.w.Write(p)
	c.n += uint64(n)

	return n, err
}

// BytesWritten returns the total number of bytes written so far.
func (c *CountingWriter) BytesWritten() uint64 {
	return c.n
}
