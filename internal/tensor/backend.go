package tensor

// Backend defines the interface compute backends must implement for
// the crop operator. Backends handle the actual data movement.
//
// Implementations:
//   - CPU: host-memory reference implementation
//   - GPU devices: allowed extension point; must match the CPU
//     results bit-for-bit under the same pre/post-conditions
type Backend interface {
	// Crop extracts the contiguous sub-region of outShape size located
	// at offsets within x, returning a freshly allocated tensor.
	// offsets must have one entry per dimension of x.
	Crop(x *RawTensor, offsets []int, outShape Shape) *RawTensor

	// CropBackward scatters gradOutput back into an inputShape-sized
	// gradient tensor at offsets, zero everywhere outside the window.
	// This is the exact adjoint of Crop.
	CropBackward(gradOutput *RawTensor, offsets []int, inputShape Shape) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
