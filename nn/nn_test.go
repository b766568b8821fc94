// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/born-ml/cropnd/backend/cpu"
	"github.com/born-ml/cropnd/nn"
	"github.com/born-ml/cropnd/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCrop_PublicAPI exercises the layer through the public facade the
// way an enclosing graph framework would.
func TestCrop_PublicAPI(t *testing.T) {
	backend := cpu.New()
	crop := nn.NewCrop(1, []int{2}, backend)

	bottoms := []tensor.Shape{{2, 8}, {2, 4}}
	require.NoError(t, crop.Setup(bottoms))

	outShape, err := crop.Reshape(bottoms)
	require.NoError(t, err)
	assert.True(t, outShape.Equal(tensor.Shape{2, 4}))

	input, err := tensor.FromSlice(
		[]float32{0, 1, 2, 3, 4, 5, 6, 7, 10, 11, 12, 13, 14, 15, 16, 17},
		tensor.Shape{2, 8}, backend)
	require.NoError(t, err)

	output := crop.Forward(input)
	assert.Equal(t, []float32{2, 3, 4, 5, 12, 13, 14, 15}, output.Data())

	gradIn := crop.Backward(tensor.Ones[float32](tensor.Shape{2, 4}, backend), true)
	assert.Equal(t, []float32{0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0}, gradIn.Data())
}

// TestCrop_PublicAPIErrors checks that configuration errors surface as
// *nn.ConfigError through the facade.
func TestCrop_PublicAPIErrors(t *testing.T) {
	backend := cpu.New()
	crop := nn.NewCrop(1, []int{5}, backend)

	_, err := crop.Reshape([]tensor.Shape{{2, 10, 10}, {2, 10, 10}})
	var cfgErr *nn.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, nn.CheckWindowFit, cfgErr.Check)
	assert.Equal(t, 1, cfgErr.Dim)
}
