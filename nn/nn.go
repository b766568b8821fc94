// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the crop layer consumed by an enclosing
// computation-graph framework.
//
// # Overview
//
// Crop extracts an axis-aligned contiguous window from a data tensor,
// sized by a second reference tensor. It generalizes 2D spatial
// cropping to an arbitrary, runtime-determined number of dimensions
// and provides the exact adjoint for backpropagation.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/cropnd/backend/cpu"
//	    "github.com/born-ml/cropnd/nn"
//	    "github.com/born-ml/cropnd/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    crop := nn.NewCrop(2, []int{1, 1}, backend)
//
//	    bottoms := []tensor.Shape{{1, 3, 5, 5}, {1, 3, 3, 3}}
//	    if err := crop.Setup(bottoms); err != nil { ... }
//	    outShape, err := crop.Reshape(bottoms) // [1, 3, 3, 3]
//
//	    output := crop.Forward(data)                  // data[:, :, 1:4, 1:4]
//	    gradIn := crop.Backward(gradOut, true)        // adjoint scatter
//	}
//
// Configuration errors (wrong bottom count, axis out of range,
// malformed offsets, window not fitting the source) surface as
// *ConfigError from Setup and Reshape; Forward and Backward have no
// error path.
package nn

import (
	"github.com/born-ml/cropnd/internal/nn"
	"github.com/born-ml/cropnd/internal/tensor"
)

// Crop extracts an axis-aligned contiguous window from its data input,
// sized by a reference input.
type Crop[B tensor.Backend] = nn.Crop[B]

// NewCrop creates a new crop layer.
//
// Example:
//
//	backend := cpu.New()
//	crop := nn.NewCrop(2, []int{1, 1}, backend)
func NewCrop[B tensor.Backend](axis int, offset []int, backend B) *Crop[B] {
	return nn.NewCrop(axis, offset, backend)
}

// Parameter represents a trainable parameter of a layer.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// ConfigError reports an invalid crop configuration detected at
// Setup or Reshape time.
type ConfigError = nn.ConfigError

// Violated-constraint names carried by ConfigError.
const (
	CheckInputCount  = nn.CheckInputCount
	CheckRankMatch   = nn.CheckRankMatch
	CheckAxisRange   = nn.CheckAxisRange
	CheckOffsetCount = nn.CheckOffsetCount
	CheckOffsetSign  = nn.CheckOffsetSign
	CheckWindowFit   = nn.CheckWindowFit
)
