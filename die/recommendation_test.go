package die

import "testing"

func curveWithLevels(level7, level14, level30, level60 RiskLevel) []RiskPoint {
	return []RiskPoint{
		{Days: 7, RiskLevel: level7},
		{Days: 14, RiskLevel: level14},
		{Days: 30, RiskLevel: level30},
		{Days: 60, RiskLevel: level60},
	}
}

func TestResolveRecommendation(t *testing.T) {
	tests := []struct {
		name     string
		curve    []RiskPoint
		pressure CurrentPressure
		dynamics MarketDynamics
		expected Recommendation
	}{
		{
			name:     "High pressure + accelerating always acts now",
			curve:    curveWithLevels(RiskLow, RiskLow, RiskLow, RiskLow),
			pressure: CurrentPressure{Level: PressureHigh},
			dynamics: MarketDynamics{Velocity: VelocityAccelerating},
			expected: ActNow,
		},
		{
			name:  "Competing offers override everything else",
			curve: curveWithLevels(RiskLow, RiskLow, RiskLow, RiskLow),
			pressure: CurrentPressure{
				Level:   PressureLow,
				Signals: PressureSignals{CompetingOffers: true},
			},
			dynamics: MarketDynamics{Velocity: VelocityDecelerating},
			expected: ActNow,
		},
		{
			name:     "High 7-day risk acts now",
			curve:    curveWithLevels(RiskHigh, RiskHigh, RiskMedium, RiskLow),
			pressure: CurrentPressure{Level: PressureMedium},
			dynamics: MarketDynamics{Velocity: VelocityStable},
			expected: ActNow,
		},
		{
			name:     "High 14-day risk waits short",
			curve:    curveWithLevels(RiskMedium, RiskHigh, RiskMedium, RiskLow),
			pressure: CurrentPressure{Level: PressureMedium},
			dynamics: MarketDynamics{Velocity: VelocityStable},
			expected: WaitShort,
		},
		{
			name:     "Medium 30-day risk waits medium",
			curve:    curveWithLevels(RiskLow, RiskLow, RiskMedium, RiskMedium),
			pressure: CurrentPressure{Level: PressureLow},
			dynamics: MarketDynamics{Velocity: VelocityStable},
			expected: WaitMedium,
		},
		{
			name:     "Nothing urgent waits long",
			curve:    curveWithLevels(RiskLow, RiskLow, RiskLow, RiskLow),
			pressure: CurrentPressure{Level: PressureLow},
			dynamics: MarketDynamics{Velocity: VelocityStable},
			expected: WaitLong,
		},
		{
			name:  "Competing offers beat a calm curve",
			curve: curveWithLevels(RiskLow, RiskLow, RiskMedium, RiskLow),
			pressure: CurrentPressure{
				Level:   PressureLow,
				Signals: PressureSignals{CompetingOffers: true},
			},
			dynamics: MarketDynamics{Velocity: VelocityStable},
			expected: ActNow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRecommendation(tt.curve, tt.pressure, tt.dynamics)
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestRecommendationRulesAreNamed(t *testing.T) {
	seen := make(map[string]bool)
	for _, rule := range recommendationRules {
		if rule.name == "" {
			t.Error("every cascade rule needs a name")
		}
		if seen[rule.name] {
			t.Errorf("duplicate rule name %q", rule.name)
		}
		seen[rule.name] = true
	}
}
