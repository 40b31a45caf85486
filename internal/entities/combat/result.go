package combat

import "math"

// LogEntry is one line of the causal log
type LogEntry struct {
	Tick   int    `json:"tick"`
	Actor  string `json:"actor"`
	Action string `json:"action"`

	Damage  float64 `json:"damage,omitempty"`
	Healing float64 `json:"healing,omitempty"`
	Shield  float64 `json:"shield,omitempty"`

	Energy       float64  `json:"energy"`
	MaxEnergy    float64  `json:"maxEnergy"`
	SkillPoints  int      `json:"sp"`
	Charge       int      `json:"charge"`
	HP           float64  `json:"hp"`
	MaxHP        float64  `json:"maxHp"`
	Toughness    float64  `json:"toughness"`
	MaxToughness float64  `json:"maxToughness"`
	ShieldValue  float64  `json:"shieldValue"`
	Effects      []string `json:"effects,omitempty"`
}

// ActorBreakdown is one actor's share of the totals
type ActorBreakdown struct {
	Index           int     `json:"index"`
	Name            string  `json:"name"`
	Spirit          bool    `json:"spirit,omitempty"`
	Damage          float64 `json:"damage"`
	Healing         float64 `json:"healing"`
	Shield          float64 `json:"shield"`
	HealingReceived float64 `json:"healingReceived"`
}

// Result is the snapshot a run produces
type Result struct {
	TotalDamage  float64          `json:"totalDamage"`
	TotalHealing float64          `json:"totalHealing"`
	TotalShield  float64          `json:"totalShield"`
	Breakdown    []ActorBreakdown `json:"breakdown"`
	HealingCV    float64          `json:"healingCv"`
	Ticks        int              `json:"ticks"`
	Log          []LogEntry       `json:"log"`
	// EventCounts tallies published combat events by type
	EventCounts map[string]int `json:"eventCounts,omitempty"`
}

// CoefficientOfVariation is the population standard deviation over the
// mean, 0 when the mean is 0
func CoefficientOfVariation(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	if mean == 0 {
		return 0
	}
	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sq/float64(len(values))) / mean
}
