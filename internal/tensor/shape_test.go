package tensor

import "testing"

// TestShape_ComputeStrides tests row-major stride computation.
func TestShape_ComputeStrides(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  []int
	}{
		{"rank 1", Shape{5}, []int{1}},
		{"rank 2", Shape{3, 4}, []int{4, 1}},
		{"rank 4", Shape{1, 3, 5, 5}, []int{75, 25, 5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.shape.ComputeStrides()
			if len(got) != len(tt.want) {
				t.Fatalf("stride length: expected %d, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("stride[%d]: expected %d, got %d", i, tt.want[i], got[i])
				}
			}
		})
	}
}

// TestShape_CanonicalAxis tests negative-axis resolution.
func TestShape_CanonicalAxis(t *testing.T) {
	s := Shape{2, 3, 4}

	tests := []struct {
		axis    int
		want    int
		wantErr bool
	}{
		{0, 0, false},
		{2, 2, false},
		{-1, 2, false},
		{-3, 0, false},
		{3, 0, true},
		{-4, 0, true},
	}

	for _, tt := range tests {
		got, err := s.CanonicalAxis(tt.axis)
		if tt.wantErr {
			if err == nil {
				t.Errorf("axis %d: expected error, got %d", tt.axis, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("axis %d: unexpected error: %v", tt.axis, err)
			continue
		}
		if got != tt.want {
			t.Errorf("axis %d: expected %d, got %d", tt.axis, tt.want, got)
		}
	}
}

// TestShape_NumElements tests element counting including the scalar case.
func TestShape_NumElements(t *testing.T) {
	if got := (Shape{}).NumElements(); got != 1 {
		t.Errorf("scalar: expected 1, got %d", got)
	}
	if got := (Shape{2, 3, 4}).NumElements(); got != 24 {
		t.Errorf("expected 24, got %d", got)
	}
}

// TestShape_Validate tests dimension validation.
func TestShape_Validate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("expected error for zero dimension")
	}
	if err := (Shape{-1, 3}).Validate(); err == nil {
		t.Error("expected error for negative dimension")
	}
}

// TestRawTensor_Zero tests the gradient-baseline zero fill.
func TestRawTensor_Zero(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}

	data := raw.AsFloat32()
	for i := range data {
		data[i] = float32(i + 1)
	}

	raw.Zero()
	for i, v := range data {
		if v != 0 {
			t.Errorf("element %d: expected 0 after Zero, got %v", i, v)
		}
	}
}
