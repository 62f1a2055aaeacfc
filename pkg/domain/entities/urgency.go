package entities

// UrgencyLevel classifies a work item's time pressure; lower is more urgent
type UrgencyLevel int

const (
	Critical UrgencyLevel = iota + 1
	Urgent
	Normal
	Low
)

// String method for UrgencyLevel enum
func (u UrgencyLevel) String() string {
	switch u {
	case Critical:
		return "Critical"
	case Urgent:
		return "Urgent"
	case Normal:
		return "Normal"
	case Low:
		return "Low"
	default:
		return "Unknown"
	}
}
