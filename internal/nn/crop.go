package nn

import (
	"fmt"

	"github.com/born-ml/cropnd/internal/tensor"
)

// Crop extracts an axis-aligned contiguous window from its data input,
// sized by a second reference input.
//
// The layer takes two bottoms: the data tensor and a reference tensor
// of equal rank. Dimensions before axis pass through unchanged;
// dimensions at and after axis are cropped to the reference tensor's
// extents, starting at the configured per-dimension offsets.
//
// Configuration:
//   - axis: first dimension to crop. Negative values count from the
//     last dimension (-1 = last). Default 0.
//   - offset: zero, one, or rank-axis non-negative values. One value
//     broadcasts to every cropped dimension; rank-axis values are
//     assigned positionally starting at axis.
//
// Lifecycle mirrors the enclosing graph framework's: Setup validates
// static constraints once, Reshape resolves offsets and the output
// shape whenever input shapes change, Forward/Backward move data.
//
// Example:
//
//	backend := cpu.New()
//	crop := nn.NewCrop(2, []int{1, 1}, backend)
//	_, err := crop.Reshape([]tensor.Shape{{1, 3, 5, 5}, {1, 3, 3, 3}})
//	// output shape [1, 3, 3, 3]; Forward yields data[:, :, 1:4, 1:4]
type Crop[B tensor.Backend] struct {
	axis    int
	offset  []int
	backend B

	// Resolved per-shape state, replaced wholesale on each successful
	// Reshape. A failed Reshape leaves the previous state intact.
	resolved *resolvedCrop
}

// resolvedCrop is the outcome of one offset resolution: everything
// Forward and Backward need, recomputed from scratch on every Reshape.
type resolvedCrop struct {
	offsets  []int        // one entry per dimension, zero before axis
	inShape  tensor.Shape // data bottom's shape at resolution time
	outShape tensor.Shape // data shape before axis, reference shape after
}

// NewCrop creates a new crop layer.
//
// Parameters:
//   - axis: first cropped dimension, resolved against the data
//     tensor's rank at Setup/Reshape time (negative = from the end)
//   - offset: per-dimension crop offsets (see Crop)
//   - backend: backend for data movement
func NewCrop[B tensor.Backend](axis int, offset []int, backend B) *Crop[B] {
	return &Crop[B]{
		axis:    axis,
		offset:  append([]int(nil), offset...),
		backend: backend,
	}
}

// Setup validates the constraints that depend only on ranks and counts.
// Called once per graph construction; shape-dependent validation runs
// in Reshape.
func (c *Crop[B]) Setup(bottoms []tensor.Shape) error {
	if len(bottoms) != 2 {
		return &ConfigError{Check: CheckInputCount, Dim: -1,
			Details: fmt.Sprintf("expected 2 bottoms (data, reference), got %d", len(bottoms))}
	}

	data := bottoms[0]
	start, err := data.CanonicalAxis(c.axis)
	if err != nil {
		return &ConfigError{Check: CheckAxisRange, Dim: -1, Details: err.Error()}
	}

	if n := len(c.offset); n > 1 && start+n != len(data) {
		return &ConfigError{Check: CheckOffsetCount, Dim: -1,
			Details: fmt.Sprintf("%d offsets for %d dimensions after axis %d", n, len(data)-start, start)}
	}

	for i, v := range c.offset {
		if v < 0 {
			return &ConfigError{Check: CheckOffsetSign, Dim: -1,
				Details: fmt.Sprintf("offset[%d] = %d (must be >= 0)", i, v)}
		}
	}

	return nil
}

// Reshape resolves the per-dimension offsets and the output shape from
// the current bottom shapes.
//
// On success the layer's resolved state is replaced and the output
// shape is returned, for the caller to (re)allocate the top tensor.
// On failure the previous resolved state is left untouched.
func (c *Crop[B]) Reshape(bottoms []tensor.Shape) (tensor.Shape, error) {
	if len(bottoms) != 2 {
		return nil, &ConfigError{Check: CheckInputCount, Dim: -1,
			Details: fmt.Sprintf("expected 2 bottoms (data, reference), got %d", len(bottoms))}
	}

	offsets, outShape, err := resolveCrop(bottoms[0], bottoms[1], c.axis, c.offset)
	if err != nil {
		return nil, err
	}

	c.resolved = &resolvedCrop{
		offsets:  offsets,
		inShape:  bottoms[0].Clone(),
		outShape: outShape,
	}
	return outShape.Clone(), nil
}

// Forward extracts the cropped window from the data input.
//
// The output is a freshly allocated tensor of the resolved output
// shape, fully overwritten on every call. Panics if Reshape has not
// succeeded since construction — that is an invariant breach upstream,
// not a handled condition.
func (c *Crop[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	r := c.resolved
	if r == nil {
		panic("crop: Forward called before Reshape")
	}

	raw := c.backend.Crop(input.Raw(), r.offsets, r.outShape)
	return tensor.New[float32, B](raw, c.backend)
}

// Backward scatters the output gradient back to the data input.
//
// When propagate is false the layer contributes no gradient and
// returns nil, leaving the caller's buffers untouched. Otherwise the
// returned gradient has the data input's shape, equals gradOutput
// inside the cropped window, and is zero everywhere else — the exact
// adjoint of Forward.
func (c *Crop[B]) Backward(gradOutput *tensor.Tensor[float32, B], propagate bool) *tensor.Tensor[float32, B] {
	if !propagate {
		return nil
	}
	r := c.resolved
	if r == nil {
		panic("crop: Backward called before Reshape")
	}

	raw := c.backend.CropBackward(gradOutput.Raw(), r.offsets, r.inShape)
	return tensor.New[float32, B](raw, c.backend)
}

// Parameters returns all trainable parameters (empty for Crop).
func (c *Crop[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{}
}

// Axis returns the configured (unresolved) crop axis.
func (c *Crop[B]) Axis() int {
	return c.axis
}

// Offset returns a copy of the configured offset values.
func (c *Crop[B]) Offset() []int {
	return append([]int(nil), c.offset...)
}

// Offsets returns a copy of the resolved per-dimension offsets.
// Returns nil before the first successful Reshape.
func (c *Crop[B]) Offsets() []int {
	if c.resolved == nil {
		return nil
	}
	return append([]int(nil), c.resolved.offsets...)
}

// OutputShape returns a copy of the resolved output shape.
// Returns nil before the first successful Reshape.
func (c *Crop[B]) OutputShape() tensor.Shape {
	if c.resolved == nil {
		return nil
	}
	return c.resolved.outShape.Clone()
}

// String returns a string representation of the layer.
func (c *Crop[B]) String() string {
	return fmt.Sprintf("Crop(axis=%d, offset=%v)", c.axis, c.offset)
}

// resolveCrop derives the per-dimension offsets and the output shape
// from the two bottom shapes and the layer configuration.
//
// Offset semantics:
//   - no offsets: every cropped dimension starts at 0
//   - one offset: broadcast to every dimension at/after axis
//   - rank-axis offsets: assigned positionally starting at axis
//
// Every returned offset is zero before axis. For each dimension at or
// after axis the window must fit: data[i] - offset >= reference[i].
func resolveCrop(data, reference tensor.Shape, axis int, offset []int) ([]int, tensor.Shape, error) {
	rank := len(data)
	if len(reference) != rank {
		return nil, nil, &ConfigError{Check: CheckRankMatch, Dim: -1,
			Details: fmt.Sprintf("data rank %d != reference rank %d", rank, len(reference))}
	}

	start, err := data.CanonicalAxis(axis)
	if err != nil {
		return nil, nil, &ConfigError{Check: CheckAxisRange, Dim: -1, Details: err.Error()}
	}

	if n := len(offset); n > 1 && start+n != rank {
		return nil, nil, &ConfigError{Check: CheckOffsetCount, Dim: -1,
			Details: fmt.Sprintf("%d offsets for %d dimensions after axis %d", n, rank-start, start)}
	}

	for i, v := range offset {
		if v < 0 {
			return nil, nil, &ConfigError{Check: CheckOffsetSign, Dim: -1,
				Details: fmt.Sprintf("offset[%d] = %d (must be >= 0)", i, v)}
		}
	}

	offsets := make([]int, rank)
	outShape := data.Clone()

	for i := start; i < rank; i++ {
		cropOffset := 0
		switch len(offset) {
		case 0:
			// all cropped dimensions start at 0
		case 1:
			cropOffset = offset[0]
		default:
			cropOffset = offset[i-start]
		}

		if data[i]-cropOffset < reference[i] {
			return nil, nil, &ConfigError{Check: CheckWindowFit, Dim: i,
				Details: fmt.Sprintf("source extent %d minus offset %d is smaller than reference extent %d",
					data[i], cropOffset, reference[i])}
		}

		offsets[i] = cropOffset
		outShape[i] = reference[i]
	}

	return offsets, outShape, nil
}
