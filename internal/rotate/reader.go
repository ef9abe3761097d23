package rotate

import (
	"io"

	"caesar/internal/rot"
)

type reader struct {
	r io.Reader
	n int
}

// NewReader returns a reader that shifts the letters read from r by n positions.
func NewReader(r io.Reader, n int) io.Reader {
	return &reader{r: r, n: rot.Normalize(n)}
}

func (r *reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	for i := range p[:n] {
		p[i] = shiftByte(p[i], r.n)
	}
	return n, err
}
