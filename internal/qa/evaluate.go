package qa

// Status is the outcome of a range check.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// Evaluate checks value against an inclusive range. A nil bound places no
// constraint on that side, so two nil bounds always pass.
func Evaluate(value float64, min, max *float64) Status {
	if min != nil && value < *min {
		return StatusFail
	}
	if max != nil && value > *max {
		return StatusFail
	}
	return StatusPass
}
