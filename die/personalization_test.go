package die

import (
	"reflect"
	"strings"
	"testing"
)

func baseWaitRisk(recommendation Recommendation, curve []RiskPoint) WaitRisk {
	return WaitRisk{
		RiskByDays:     curve,
		Recommendation: recommendation,
		Tradeoffs: Tradeoffs{
			Discipline:  "Esperar te permite evaluar mejor, negociar con más información y evitar decisiones apresuradas.",
			Probability: "Riesgo bajo (5%) de perder la oportunidad en 30 días.",
		},
	}
}

func TestPersonalizeWaitRiskNilProfile(t *testing.T) {
	base := baseWaitRisk(WaitLong, curveWithLevels(RiskLow, RiskLow, RiskLow, RiskLow))

	got := PersonalizeWaitRisk(base, nil)
	if !reflect.DeepEqual(got, base) {
		t.Error("nil profile must return the base result unchanged")
	}
}

func TestPersonalizeWaitRiskOverrides(t *testing.T) {
	tests := []struct {
		name     string
		base     Recommendation
		curve    []RiskPoint
		profile  UserDecisionProfile
		expected Recommendation
	}{
		{
			name:     "High urgency shortens wait_long",
			base:     WaitLong,
			curve:    curveWithLevels(RiskLow, RiskLow, RiskLow, RiskLow),
			profile:  UserDecisionProfile{Urgency: UrgencyHigh},
			expected: WaitShort,
		},
		{
			name:     "High urgency shortens wait_medium",
			base:     WaitMedium,
			curve:    curveWithLevels(RiskLow, RiskLow, RiskMedium, RiskLow),
			profile:  UserDecisionProfile{Urgency: UrgencyHigh},
			expected: WaitShort,
		},
		{
			name:     "Low urgency relaxes act_now when the week is calm",
			base:     ActNow,
			curve:    curveWithLevels(RiskMedium, RiskMedium, RiskLow, RiskLow),
			profile:  UserDecisionProfile{Urgency: UrgencyLow},
			expected: WaitShort,
		},
		{
			name:     "Low urgency cannot relax a high-risk week",
			base:     ActNow,
			curve:    curveWithLevels(RiskHigh, RiskMedium, RiskLow, RiskLow),
			profile:  UserDecisionProfile{Urgency: UrgencyLow},
			expected: ActNow,
		},
		{
			name:     "Conservative forces act_now on a high-risk week",
			base:     WaitShort,
			curve:    curveWithLevels(RiskHigh, RiskMedium, RiskLow, RiskLow),
			profile:  UserDecisionProfile{RiskTolerance: ToleranceConservative},
			expected: ActNow,
		},
		{
			name:     "Aggressive rides out a medium two-week risk",
			base:     ActNow,
			curve:    curveWithLevels(RiskMedium, RiskMedium, RiskLow, RiskLow),
			profile:  UserDecisionProfile{RiskTolerance: ToleranceAggressive},
			expected: WaitShort,
		},
		{
			name:     "Investor waits through a calm month",
			base:     ActNow,
			curve:    curveWithLevels(RiskMedium, RiskMedium, RiskLow, RiskLow),
			profile:  UserDecisionProfile{Objective: ObjectiveInvestment},
			expected: WaitMedium,
		},
		{
			name:     "Flipper never waits long",
			base:     WaitLong,
			curve:    curveWithLevels(RiskLow, RiskLow, RiskLow, RiskLow),
			profile:  UserDecisionProfile{Objective: ObjectiveFlip},
			expected: WaitMedium,
		},
		{
			name: "Strict budget cannot absorb near-term drift",
			base: WaitMedium,
			curve: []RiskPoint{
				{Days: 7, RiskLevel: RiskLow, ExpectedPriceChange: 0.03},
				{Days: 14, RiskLevel: RiskLow},
				{Days: 30, RiskLevel: RiskMedium},
				{Days: 60, RiskLevel: RiskMedium},
			},
			profile:  UserDecisionProfile{BudgetFlexibility: BudgetStrict},
			expected: ActNow,
		},
		{
			name:     "Flexible budget waits out a medium two-week risk",
			base:     ActNow,
			curve:    curveWithLevels(RiskMedium, RiskMedium, RiskLow, RiskLow),
			profile:  UserDecisionProfile{BudgetFlexibility: BudgetFlexible},
			expected: WaitShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PersonalizeWaitRisk(baseWaitRisk(tt.base, tt.curve), &tt.profile)
			if got.Recommendation != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got.Recommendation)
			}
		})
	}
}

func TestPersonalizeWaitRiskLastRuleWins(t *testing.T) {
	// High urgency turns wait_long into wait_short, then the flip objective
	// (reading the base recommendation) tightens to wait_medium
	profile := UserDecisionProfile{Urgency: UrgencyHigh, Objective: ObjectiveFlip}
	base := baseWaitRisk(WaitLong, curveWithLevels(RiskLow, RiskLow, RiskLow, RiskLow))

	got := PersonalizeWaitRisk(base, &profile)
	if got.Recommendation != WaitMedium {
		t.Errorf("expected wait_medium after flip override, got %s", got.Recommendation)
	}
}

func TestPersonalizeWaitRiskConservativeReadsAdjustedValue(t *testing.T) {
	// Low urgency cannot fire (7-day risk is high), so the running value
	// stays act_now and the conservative rule has nothing to force
	profile := UserDecisionProfile{Urgency: UrgencyLow, RiskTolerance: ToleranceConservative}
	base := baseWaitRisk(ActNow, curveWithLevels(RiskHigh, RiskMedium, RiskLow, RiskLow))

	got := PersonalizeWaitRisk(base, &profile)
	if got.Recommendation != ActNow {
		t.Errorf("expected act_now, got %s", got.Recommendation)
	}
}

func TestPersonalizeWaitRiskDoesNotMutateBase(t *testing.T) {
	base := baseWaitRisk(WaitLong, curveWithLevels(RiskLow, RiskLow, RiskLow, RiskLow))
	snapshot := baseWaitRisk(WaitLong, curveWithLevels(RiskLow, RiskLow, RiskLow, RiskLow))
	profile := UserDecisionProfile{Urgency: UrgencyHigh, Objective: ObjectiveInvestment}

	_ = PersonalizeWaitRisk(base, &profile)
	if !reflect.DeepEqual(base, snapshot) {
		t.Error("personalization mutated the base result")
	}
}

func TestOverrideRulesAreNamed(t *testing.T) {
	seen := make(map[string]bool)
	for _, rule := range overrideRules {
		if rule.name == "" {
			t.Error("every override rule needs a name")
		}
		if seen[rule.name] {
			t.Errorf("duplicate rule name %q", rule.name)
		}
		seen[rule.name] = true
	}
}

func TestPersonalizeTradeoffsAppendsOnly(t *testing.T) {
	base := baseWaitRisk(WaitLong, curveWithLevels(RiskLow, RiskLow, RiskLow, RiskLow))
	profile := UserDecisionProfile{
		Urgency:       UrgencyHigh,
		RiskTolerance: ToleranceConservative,
		Objective:     ObjectiveInvestment,
	}

	got := PersonalizeWaitRisk(base, &profile)

	if !strings.HasPrefix(got.Tradeoffs.Discipline, base.Tradeoffs.Discipline) {
		t.Error("discipline text lost its base content")
	}
	if !strings.HasPrefix(got.Tradeoffs.Probability, base.Tradeoffs.Probability) {
		t.Error("probability text lost its base content")
	}
	if !strings.Contains(got.Tradeoffs.Discipline, "Como inversor") {
		t.Error("missing investor flavor in discipline text")
	}
	if !strings.Contains(got.Tradeoffs.Probability, "urgencia alto") {
		t.Error("missing urgency flavor in probability text")
	}
	if !strings.Contains(got.Tradeoffs.Probability, "perfil conservador") {
		t.Error("missing risk-tolerance flavor in probability text")
	}
}
