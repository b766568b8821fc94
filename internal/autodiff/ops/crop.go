package ops

import (
	"github.com/born-ml/cropnd/internal/tensor"
)

// CropOp represents a crop operation that extracted an axis-aligned
// window from its input.
//
// Forward: output = Crop(input, offsets, outputShape)
//
// Backward:
//
//	Scatter gradOutput back into an input-shaped gradient at the same
//	offsets; every element outside the window receives zero, since the
//	forward pass discarded it.
//
// Example:
//
//	input:  [10, 20, 30, 40], offsets [1], window extent 2
//	output: [20, 30]
//	gradOutput: [dL/d20, dL/d30]
//	gradInput:  [0, dL/d20, dL/d30, 0]
type CropOp struct {
	input   *tensor.RawTensor // Input tensor the window was read from
	offsets []int             // Resolved per-dimension window offsets
	output  *tensor.RawTensor // Extracted window
}

// NewCropOp creates a new crop operation.
// offsets are the resolved per-dimension offsets used by the forward pass.
func NewCropOp(input *tensor.RawTensor, offsets []int, output *tensor.RawTensor) *CropOp {
	return &CropOp{
		input:   input,
		offsets: append([]int(nil), offsets...),
		output:  output,
	}
}

// Inputs returns the input tensor.
// Note: the reference tensor only shapes the window and never receives gradient.
func (op *CropOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *CropOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward computes the gradient for the input tensor.
//
// The backend zero-fills an input-shaped gradient and scatters
// gradOutput into the window at the recorded offsets — the exact
// adjoint of the forward extraction.
func (op *CropOp) Backward(gradOutput *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	gradInput := backend.CropBackward(gradOutput, op.offsets, op.input.Shape())
	return []*tensor.RawTensor{gradInput}
}
