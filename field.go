package cafvis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Channel is one output of a field head indexed by [connection][component].
// Every component is a field space plane of rows x cols cells.  Scalar
// channels such as confidences and scales have a single component, regression
// channels have two (x, y) or six (x, y and four margins).
type Channel [][]*mat.Dense

// Field is the ordered list of channels produced by a CAF head.  The meaning
// of each position depends on whether the field is a training target or a
// model prediction.
type Field []Channel

// Scalars returns the first component of every connection in the channel
func (c Channel) Scalars() []*mat.Dense {

	planes := make([]*mat.Dense, len(c))

	for i, comps := range c {
		planes[i] = comps[0]
	}

	return planes
}

// Components returns the first n components of connection i.  It panics when
// the channel has fewer components, the same way slicing would.
func (c Channel) Components(i, n int) []*mat.Dense {
	return c[i][:n]
}

// Dims returns the field resolution of the channel
func (c Channel) Dims() (rows, cols int) {
	if len(c) == 0 || len(c[0]) == 0 {
		return 0, 0
	}
	return c[0][0].Dims()
}

// ChannelFromNCHW builds a Channel from a flat float32 output buffer laid out
// as NCHW where C is connections*components.
func ChannelFromNCHW(buf []float32, connections, components, rows, cols int) (Channel, error) {

	want := connections * components * rows * cols

	if len(buf) != want {
		return nil, fmt.Errorf("buffer has %d values, expected %d for shape [%d*%d, %d, %d]",
			len(buf), want, connections, components, rows, cols)
	}

	return newChannel(connections, components, rows, cols, func(idx int) float64 {
		return float64(buf[idx])
	}), nil
}

// newChannel allocates the channel planes and fills each cell from the value
// at the NCHW index of the source buffer
func newChannel(connections, components, rows, cols int, at func(idx int) float64) Channel {

	ch := make(Channel, connections)

	for n := 0; n < connections; n++ {
		ch[n] = make([]*mat.Dense, components)

		for k := 0; k < components; k++ {
			data := make([]float64, rows*cols)
			// index = ((n*K + k)*H + y)*W + x
			base := (n*components + k) * rows * cols

			for i := range data {
				data[i] = at(base + i)
			}

			ch[n][k] = mat.NewDense(rows, cols, data)
		}
	}

	return ch
}
