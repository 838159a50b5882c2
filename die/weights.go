package die

// Horizons are the fixed wait windows, in days, scored by the engine.
var Horizons = []int{7, 14, 30, 60}

// Risk level thresholds (applied to the clamped score)
const (
	RiskScoreMediumThreshold = 30 // score < 30 = low
	RiskScoreHighThreshold   = 60 // score < 60 = medium, else high
)

// Output clamps
const (
	RiskScoreMin = 0
	RiskScoreMax = 100

	ProbabilityMin = 0.0
	ProbabilityMax = 0.9

	PriceChangeMin = -0.10
	PriceChangeMax = 0.15
)

// RiskWeights is the full additive scoring table for the per-horizon risk
// calculator. Every adjustment the calculator applies lives here so the
// formula stays auditable and tunable in one place.
type RiskWeights struct {
	// Pressure level
	PressureHighScore float64
	PressureHighProb  float64
	PressureMedScore  float64
	PressureMedProb   float64

	// Market velocity
	AcceleratingScore         float64
	AcceleratingProb          float64
	AcceleratingDriftPerMonth float64 // expected price change per 30 days
	DeceleratingScore         float64
	DeceleratingDriftPerMonth float64

	// Competing offers
	CompetingScore float64
	CompetingProb  float64

	// Historical blending
	ScenarioWindowDays int     // scenarios within horizon+window are comparable
	HistoricalWeight   float64 // weight on the average observed price drift
	QuickSaleScore     float64 // applied when a comparable sold within the horizon
	QuickSaleProb      float64

	// Price position
	BelowRangeScore float64
	BelowRangeProb  float64
	AboveRangeScore float64

	// Time horizon scaling
	TimeMultiplierCap     float64
	TimeMultiplierDivisor float64 // multiplier = min(cap, 1 + days/divisor)
}

// DefaultRiskWeights returns the production scoring table.
func DefaultRiskWeights() RiskWeights {
	return RiskWeights{
		PressureHighScore: 40,
		PressureHighProb:  0.30,
		PressureMedScore:  20,
		PressureMedProb:   0.15,

		AcceleratingScore:         30,
		AcceleratingProb:          0.25,
		AcceleratingDriftPerMonth: 0.03,
		DeceleratingScore:         -10,
		DeceleratingDriftPerMonth: -0.01,

		CompetingScore: 25,
		CompetingProb:  0.35,

		ScenarioWindowDays: 7,
		HistoricalWeight:   0.5,
		QuickSaleScore:     20,
		QuickSaleProb:      0.20,

		BelowRangeScore: -15,
		BelowRangeProb:  -0.10,
		AboveRangeScore: 10, // overpriced buys negotiating time, not urgency

		TimeMultiplierCap:     1.5,
		TimeMultiplierDivisor: 60,
	}
}

// Personalization thresholds
const (
	// StrictBudgetDriftThreshold forces act_now for strict-budget buyers
	// when the 7-day expected price change exceeds it
	StrictBudgetDriftThreshold = 0.02
)

// riskLevelForScore derives the risk bucket from a clamped score.
func riskLevelForScore(score float64) RiskLevel {
	switch {
	case score < RiskScoreMediumThreshold:
		return RiskLow
	case score < RiskScoreHighThreshold:
		return RiskMedium
	default:
		return RiskHigh
	}
}
