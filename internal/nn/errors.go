package nn

import "fmt"

// Violated-constraint names carried by ConfigError.
const (
	CheckInputCount  = "input_count"  // not exactly two bottom shapes
	CheckRankMatch   = "rank_match"   // data and reference ranks differ
	CheckAxisRange   = "axis_range"   // axis outside [0, rank)
	CheckOffsetCount = "offset_count" // offset count not 0, 1, or rank-axis
	CheckOffsetSign  = "offset_sign"  // negative offset value
	CheckWindowFit   = "window_fit"   // window exceeds source bounds
)

// ConfigError reports an invalid crop configuration.
//
// All configuration errors are detected eagerly at Setup/Reshape time;
// Forward and Backward assume a prior successful Reshape and have no
// error path. These are programmer errors, not transient failures, so
// there is no retry semantics.
type ConfigError struct {
	Check   string // Violated constraint (one of the Check* names)
	Dim     int    // Offending dimension index, -1 when not dimension-specific
	Details string // Additional details
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Dim >= 0 {
		return fmt.Sprintf("crop: %s: dimension %d: %s", e.Check, e.Dim, e.Details)
	}
	return fmt.Sprintf("crop: %s: %s", e.Check, e.Details)
}
