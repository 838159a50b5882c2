package die

import "math"

// CalculateHorizonRisk scores the risk of waiting the given number of days
// before committing to an offer. Adjustments from the weights table apply
// additively in a fixed order, the totals are scaled by the time horizon
// and clamped. Note the clamps flatten extremes: several factors pushing
// toward the ceiling saturate at 100/0.9 and stop distinguishing "bad"
// from "very bad".
//
// The only hard failures are structural: a horizon outside the fixed set,
// or a scenario with non-positive prices or negative days on market. An
// empty scenario slice simply omits the historical term.
func CalculateHorizonRisk(
	days int,
	pressure CurrentPressure,
	dynamics MarketDynamics,
	assessment PriceAssessment,
	scenarios []HistoricalScenario,
	weights RiskWeights,
) (RiskPoint, error) {
	if !validHorizon(days) {
		return RiskPoint{}, ErrInvalidHorizon
	}
	if err := validateScenarios(scenarios); err != nil {
		return RiskPoint{}, err
	}

	var riskScore, probabilityOfLoss, expectedPriceChange float64

	// Factor 1: current pressure
	switch pressure.Level {
	case PressureHigh:
		riskScore += weights.PressureHighScore
		probabilityOfLoss += weights.PressureHighProb
	case PressureMedium:
		riskScore += weights.PressureMedScore
		probabilityOfLoss += weights.PressureMedProb
	}

	// Factor 2: market velocity
	switch dynamics.Velocity {
	case VelocityAccelerating:
		riskScore += weights.AcceleratingScore
		probabilityOfLoss += weights.AcceleratingProb
		expectedPriceChange += weights.AcceleratingDriftPerMonth * (float64(days) / 30)
	case VelocityDecelerating:
		riskScore += weights.DeceleratingScore
		expectedPriceChange += weights.DeceleratingDriftPerMonth * (float64(days) / 30)
	}

	// Factor 3: competing offers
	if pressure.Signals.CompetingOffers {
		riskScore += weights.CompetingScore
		probabilityOfLoss += weights.CompetingProb
	}

	// Factor 4: historical scenarios from the zone
	similar := similarScenarios(scenarios, days, weights.ScenarioWindowDays, pressure.Signals.CompetingOffers)
	if len(similar) > 0 {
		expectedPriceChange += avgPriceChange(similar) * weights.HistoricalWeight

		// Comparables that sold within the horizon signal a fast market
		if soldWithin(similar, days) {
			riskScore += weights.QuickSaleScore
			probabilityOfLoss += weights.QuickSaleProb
		}
	}

	// Factor 5: asking price position
	switch assessment.AskingPriceStatus {
	case PriceBelowRange:
		riskScore += weights.BelowRangeScore
		probabilityOfLoss += weights.BelowRangeProb
	case PriceAboveRange:
		riskScore += weights.AboveRangeScore
	}

	// Factor 6: time horizon scaling (longer waits compound the risk)
	timeMultiplier := math.Min(weights.TimeMultiplierCap, 1+float64(days)/weights.TimeMultiplierDivisor)
	riskScore *= timeMultiplier
	probabilityOfLoss = math.Min(ProbabilityMax, probabilityOfLoss*timeMultiplier)

	probabilityOfLoss = clamp(probabilityOfLoss, ProbabilityMin, ProbabilityMax)
	expectedPriceChange = clamp(expectedPriceChange, PriceChangeMin, PriceChangeMax)

	// Round before deriving the level so the published score and bucket
	// can never disagree around a threshold
	score := int(math.Round(clamp(riskScore, RiskScoreMin, RiskScoreMax)))

	return RiskPoint{
		Days:                days,
		RiskLevel:           riskLevelForScore(float64(score)),
		RiskScore:           score,
		ProbabilityOfLoss:   round(probabilityOfLoss, 2),
		ExpectedPriceChange: round(expectedPriceChange, 3),
	}, nil
}

// BuildRiskCurve scores every fixed horizon in ascending order.
func BuildRiskCurve(
	pressure CurrentPressure,
	dynamics MarketDynamics,
	assessment PriceAssessment,
	scenarios []HistoricalScenario,
	weights RiskWeights,
) ([]RiskPoint, error) {
	curve := make([]RiskPoint, 0, len(Horizons))
	for _, days := range Horizons {
		point, err := CalculateHorizonRisk(days, pressure, dynamics, assessment, scenarios, weights)
		if err != nil {
			return nil, err
		}
		curve = append(curve, point)
	}
	return curve, nil
}

func validHorizon(days int) bool {
	for _, h := range Horizons {
		if days == h {
			return true
		}
	}
	return false
}

func validateScenarios(scenarios []HistoricalScenario) error {
	for _, s := range scenarios {
		if s.OriginalPrice <= 0 {
			return newInputError("originalPrice", "must be positive")
		}
		if s.SoldPrice <= 0 {
			return newInputError("soldPrice", "must be positive")
		}
		if s.DaysOnMarket < 0 {
			return newInputError("daysOnMarket", "must not be negative")
		}
	}
	return nil
}

// similarScenarios keeps scenarios that resolved within the horizon plus a
// tolerance window and match the current competition state.
func similarScenarios(scenarios []HistoricalScenario, days, window int, competing bool) []HistoricalScenario {
	var similar []HistoricalScenario
	for _, s := range scenarios {
		if s.DaysOnMarket <= days+window && s.HadCompetition == competing {
			similar = append(similar, s)
		}
	}
	return similar
}

func avgPriceChange(scenarios []HistoricalScenario) float64 {
	var sum float64
	for _, s := range scenarios {
		sum += (s.SoldPrice - s.OriginalPrice) / s.OriginalPrice
	}
	return sum / float64(len(scenarios))
}

func soldWithin(scenarios []HistoricalScenario, days int) bool {
	for _, s := range scenarios {
		if s.DaysOnMarket <= days {
			return true
		}
	}
	return false
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func round(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}
