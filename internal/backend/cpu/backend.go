// Package cpu implements the host-memory reference backend for the crop operator.
package cpu

import (
	"github.com/born-ml/cropnd/internal/tensor"
)

// CPUBackend implements the crop data movement on host memory.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}
