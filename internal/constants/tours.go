package constants

// Tours whose legs can be validated through the crew center
var Tours = []string{
	"Tiare IFR Tour",
	"World ATN Tour IFR",
	"Tamure Tour VFR",
	"Taura'a VFR Tour",
}

const (
	MinTourLeg = 1
	MaxTourLeg = 12
)

// IsKnownTour reports whether name is one of the configured tours
func IsKnownTour(name string) bool {
	for _, t := range Tours {
		if t == name {
			return true
		}
	}
	return false
}
