package window

const (
	MinPhase = 0.0
	MaxPhase = 1.0
)

func getPhaseLimits() (float64, float64) {
	return MinPhase, MaxPhase
}
