// Package entity contains the core business objects of the project.
package entity

// Plan is the subscription tier of a Business.
type Plan string

const (
	// PlanFree is assigned to every new Business.
	PlanFree Plan = "free"
)

// String returns the string representation of the Plan.
func (p Plan) String() string {
	return string(p)
}

// IsValid checks if the Plan is a valid value.
func (p Plan) IsValid() bool {
	switch p {
	case PlanFree:
		return true
	default:
		return false
	}
}
