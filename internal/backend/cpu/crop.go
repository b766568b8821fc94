package cpu

import (
	"fmt"

	"github.com/born-ml/cropnd/internal/tensor"
)

// copyDirection selects which side of the region copy is the window.
// The same traversal serves the forward extraction and the backward
// scatter; only the roles of the two buffers swap.
type copyDirection int

const (
	cropExtract copyDirection = iota // read the window out of the larger tensor
	cropScatter                      // write the window back into the larger tensor
)

// Crop extracts the contiguous sub-region of outShape size located at
// offsets within x.
//
// offsets holds one non-negative entry per dimension of x; outShape has
// the same rank as x. The window must fit inside x after applying the
// offsets — the layer validates this at reshape time, so Crop itself
// performs no per-dimension bounds checks.
//
// Example:
//
//	x := tensor.Randn[float32](tensor.Shape{1, 3, 5, 5}, backend)
//	y := backend.Crop(x.Raw(), []int{0, 0, 1, 1}, tensor.Shape{1, 3, 3, 3})
//	// y == x[:, :, 1:4, 1:4]
func (cpu *CPUBackend) Crop(x *tensor.RawTensor, offsets []int, outShape tensor.Shape) *tensor.RawTensor {
	ndim := len(x.Shape())
	if len(offsets) != ndim {
		panic(fmt.Sprintf("crop: %d offsets for %dD tensor", len(offsets), ndim))
	}
	if len(outShape) != ndim {
		panic(fmt.Sprintf("crop: output rank %d != input rank %d", len(outShape), ndim))
	}

	output, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("crop: failed to create output: %v", err))
	}

	copyRegion(output, x, offsets, cropExtract)
	return output
}

// CropBackward scatters gradOutput back into an inputShape-sized
// gradient tensor at offsets.
//
// The result is zero everywhere outside the cropped window and equals
// gradOutput inside it — the exact adjoint of Crop, since the forward
// pass discards every element outside the window.
func (cpu *CPUBackend) CropBackward(gradOutput *tensor.RawTensor, offsets []int, inputShape tensor.Shape) *tensor.RawTensor {
	ndim := len(inputShape)
	if len(offsets) != ndim {
		panic(fmt.Sprintf("crop backward: %d offsets for %dD tensor", len(offsets), ndim))
	}
	if len(gradOutput.Shape()) != ndim {
		panic(fmt.Sprintf("crop backward: gradient rank %d != input rank %d", len(gradOutput.Shape()), ndim))
	}

	gradInput, err := tensor.NewRaw(inputShape, gradOutput.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("crop backward: failed to create gradient: %v", err))
	}

	// Fresh allocations are already zeroed, but the buffer contract is
	// "zero outside the window" regardless of where the memory came from.
	gradInput.Zero()

	copyRegion(gradOutput, gradInput, offsets, cropScatter)
	return gradInput
}

// copyRegion moves the window-shaped sub-region located at offsets
// within the full tensor, between the two buffers.
//
// The traversal recurses outer-to-inner over the window's dimensions.
// At the last dimension the data for a fixed combination of outer
// indices is contiguous in row-major memory, so each leaf performs one
// bulk copy of window.Shape()[last] elements instead of copying
// element by element. The window side is addressed with the reduced
// (unshifted) indices, the full side with the same indices plus the
// per-dimension offsets.
//
// The copy works on raw bytes scaled by the element size, so every
// dtype moves through this single path. A rank-1 window reduces to a
// single bulk copy with no recursion.
func copyRegion(window, full *tensor.RawTensor, offsets []int, dir copyDirection) {
	winShape := window.Shape()
	winStrides := window.Strides()
	fullStrides := full.Strides()
	winData := window.Data()
	fullData := full.Data()
	elemSize := window.DType().Size()

	last := len(winShape) - 1

	// walk carries element offsets; bytes enter only at the leaf copy.
	var walk func(dim, winOff, fullOff int)
	walk = func(dim, winOff, fullOff int) {
		if dim == last {
			n := winShape[last] * elemSize
			w := winOff * elemSize
			f := (fullOff + offsets[last]) * elemSize
			if dir == cropExtract {
				copy(winData[w:w+n], fullData[f:f+n])
			} else {
				copy(fullData[f:f+n], winData[w:w+n])
			}
			return
		}
		for i := 0; i < winShape[dim]; i++ {
			walk(dim+1, winOff+i*winStrides[dim], fullOff+(i+offsets[dim])*fullStrides[dim])
		}
	}
	walk(0, 0, 0)
}
