// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/cropnd/internal/tensor"
)

// Backend defines the interface compute backends implement for the
// crop operator.
//
// Implementations:
//   - CPU: host-memory reference implementation
//   - GPU devices: extension point; must match CPU results bit-for-bit
type Backend = tensor.Backend
