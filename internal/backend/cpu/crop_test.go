package cpu

import (
	"testing"

	"github.com/born-ml/cropnd/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arange fills a raw float32 tensor with 0, 1, 2, ...
func arange(t *testing.T, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	data := raw.AsFloat32()
	for i := range data {
		data[i] = float32(i)
	}
	return raw
}

// TestCrop_WindowedRead checks that Crop is a pure windowed read: the
// output equals the source sub-block at offsets..offsets+outShape.
func TestCrop_WindowedRead(t *testing.T) {
	backend := New()

	src := arange(t, tensor.Shape{1, 3, 5, 5})
	offsets := []int{0, 0, 1, 1}
	outShape := tensor.Shape{1, 3, 3, 3}

	out := backend.Crop(src, offsets, outShape)
	require.True(t, out.Shape().Equal(outShape))

	srcData := src.AsFloat32()
	outData := out.AsFloat32()
	srcStrides := src.Strides()
	outStrides := out.Strides()

	// Reference loop: out[n,c,h,w] == src[n, c, h+1, w+1]
	for n := 0; n < 1; n++ {
		for c := 0; c < 3; c++ {
			for h := 0; h < 3; h++ {
				for w := 0; w < 3; w++ {
					outIdx := n*outStrides[0] + c*outStrides[1] + h*outStrides[2] + w*outStrides[3]
					srcIdx := n*srcStrides[0] + c*srcStrides[1] + (h+1)*srcStrides[2] + (w+1)*srcStrides[3]
					assert.Equal(t, srcData[srcIdx], outData[outIdx],
						"mismatch at [%d,%d,%d,%d]", n, c, h, w)
				}
			}
		}
	}
}

// TestCrop_Identity checks that a zero-offset crop to the full source
// shape is an identity copy.
func TestCrop_Identity(t *testing.T) {
	backend := New()

	src := arange(t, tensor.Shape{2, 3, 4})
	out := backend.Crop(src, []int{0, 0, 0}, tensor.Shape{2, 3, 4})

	assert.Equal(t, src.AsFloat32(), out.AsFloat32())
}

// TestCrop_Rank1 checks the degenerate case: a rank-1 crop is a single
// bulk copy.
func TestCrop_Rank1(t *testing.T) {
	backend := New()

	src := arange(t, tensor.Shape{10})
	out := backend.Crop(src, []int{3}, tensor.Shape{4})

	assert.Equal(t, []float32{3, 4, 5, 6}, out.AsFloat32())
}

// TestCrop_Int32 checks that non-float dtypes move through the same
// byte-level path.
func TestCrop_Int32(t *testing.T) {
	backend := New()

	src, err := tensor.NewRaw(tensor.Shape{2, 4}, tensor.Int32, tensor.CPU)
	require.NoError(t, err)
	data := src.AsInt32()
	for i := range data {
		data[i] = int32(10 * i)
	}

	out := backend.Crop(src, []int{1, 2}, tensor.Shape{1, 2})

	// Row 1, columns 2..3 of [[0,10,20,30],[40,50,60,70]]
	assert.Equal(t, []int32{60, 70}, out.AsInt32())
}

// TestCropBackward_Adjoint checks the adjoint property: the scattered
// gradient equals gradOutput inside the window and zero elsewhere.
func TestCropBackward_Adjoint(t *testing.T) {
	backend := New()

	gradOut := arange(t, tensor.Shape{1, 3, 3, 3})
	offsets := []int{0, 0, 1, 1}
	inShape := tensor.Shape{1, 3, 5, 5}

	gradIn := backend.CropBackward(gradOut, offsets, inShape)
	require.True(t, gradIn.Shape().Equal(inShape))

	inData := gradIn.AsFloat32()
	outData := gradOut.AsFloat32()
	inStrides := gradIn.Strides()
	outStrides := gradOut.Strides()

	for n := 0; n < 1; n++ {
		for c := 0; c < 3; c++ {
			for h := 0; h < 5; h++ {
				for w := 0; w < 5; w++ {
					inIdx := n*inStrides[0] + c*inStrides[1] + h*inStrides[2] + w*inStrides[3]
					inside := h >= 1 && h < 4 && w >= 1 && w < 4
					if inside {
						outIdx := n*outStrides[0] + c*outStrides[1] + (h-1)*outStrides[2] + (w-1)*outStrides[3]
						assert.Equal(t, outData[outIdx], inData[inIdx],
							"window mismatch at [%d,%d,%d,%d]", n, c, h, w)
					} else {
						assert.Zero(t, inData[inIdx],
							"expected zero outside window at [%d,%d,%d,%d]", n, c, h, w)
					}
				}
			}
		}
	}
}

// TestCropBackward_Sum checks that the scatter preserves gradient mass:
// nothing is duplicated or lost on the way back.
func TestCropBackward_Sum(t *testing.T) {
	backend := New()

	gradOut, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	for i := range gradOut.AsFloat32() {
		gradOut.AsFloat32()[i] = 1
	}

	gradIn := backend.CropBackward(gradOut, []int{1, 3}, tensor.Shape{4, 6})

	// Mass is preserved: the scatter writes exactly the window.
	var sum float32
	for _, v := range gradIn.AsFloat32() {
		sum += v
	}
	assert.Equal(t, float32(4), sum)
}

// TestCrop_RankMismatchPanics checks the programmer-error path.
func TestCrop_RankMismatchPanics(t *testing.T) {
	backend := New()
	src := arange(t, tensor.Shape{2, 3})

	assert.Panics(t, func() {
		backend.Crop(src, []int{0}, tensor.Shape{2, 3})
	})
	assert.Panics(t, func() {
		backend.Crop(src, []int{0, 0}, tensor.Shape{2})
	})
}
