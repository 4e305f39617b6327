package model

// Priority is a task priority level. The numeric values are part of the
// stored schema: 1 is the most urgent.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// Valid reports whether p is one of the known levels.
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// PriorityName renders an optional priority, mapping nil to "N/A".
// Out-of-range stored values render as "Unknown" rather than failing.
func PriorityName(p *Priority) string {
	if p == nil {
		return "N/A"
	}
	return p.String()
}
