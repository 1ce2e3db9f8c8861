package cafvis

import (
	"fmt"

	"github.com/x448/float16"
)

var f16LookupTable [65536]float32

func init() {
	// precompute float16 lookup table for faster conversion to float32
	for i := range f16LookupTable {
		f16 := float16.Frombits(uint16(i))
		f16LookupTable[i] = f16.Float32()
	}
}

// ChannelFromFloat16 builds a Channel from a flat NCHW buffer of raw IEEE 754
// half precision values, as returned by NPUs that keep outputs in fp16
func ChannelFromFloat16(buf []uint16, connections, components, rows, cols int) (Channel, error) {

	want := connections * components * rows * cols

	if len(buf) != want {
		return nil, fmt.Errorf("buffer has %d values, expected %d for shape [%d*%d, %d, %d]",
			len(buf), want, connections, components, rows, cols)
	}

	return newChannel(connections, components, rows, cols, func(idx int) float64 {
		return float64(f16LookupTable[buf[idx]])
	}), nil
}
