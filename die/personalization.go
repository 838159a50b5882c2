package die

// overrideRule is one step of the profile personalization cascade. Rules run
// top to bottom with last-write-wins semantics: risk-tolerance and budget
// rules sit below urgency/objective rules because they are treated as harder
// constraints. Each predicate declares explicitly which recommendation
// snapshot it reads: the base engine output or the running adjusted value.
type overrideRule struct {
	name    string
	applies func(base, current Recommendation, w *WaitRisk, p *UserDecisionProfile) bool
	outcome Recommendation
}

var overrideRules = []overrideRule{
	{
		name: "high urgency shortens long waits",
		applies: func(base, _ Recommendation, _ *WaitRisk, p *UserDecisionProfile) bool {
			return p.Urgency == UrgencyHigh && (base == WaitLong || base == WaitMedium)
		},
		outcome: WaitShort,
	},
	{
		name: "low urgency relaxes act_now when the week is not high risk",
		applies: func(base, _ Recommendation, w *WaitRisk, p *UserDecisionProfile) bool {
			return p.Urgency == UrgencyLow && base == ActNow && pointLevel(w, 7) != RiskHigh
		},
		outcome: WaitShort,
	},
	{
		name: "conservative buyers never sit on a high-risk week",
		applies: func(_, current Recommendation, w *WaitRisk, p *UserDecisionProfile) bool {
			return p.RiskTolerance == ToleranceConservative && pointLevel(w, 7) == RiskHigh && current != ActNow
		},
		outcome: ActNow,
	},
	{
		name: "aggressive buyers ride out a medium two-week risk",
		applies: func(base, _ Recommendation, w *WaitRisk, p *UserDecisionProfile) bool {
			return p.RiskTolerance == ToleranceAggressive && base == ActNow && pointLevel(w, 14) == RiskMedium
		},
		outcome: WaitShort,
	},
	{
		name: "investors wait through a calm month",
		applies: func(_, current Recommendation, w *WaitRisk, p *UserDecisionProfile) bool {
			return p.Objective == ObjectiveInvestment && current == ActNow && pointLevel(w, 30) == RiskLow
		},
		outcome: WaitMedium,
	},
	{
		name: "flippers never wait long",
		applies: func(base, _ Recommendation, _ *WaitRisk, p *UserDecisionProfile) bool {
			return p.Objective == ObjectiveFlip && base == WaitLong
		},
		outcome: WaitMedium,
	},
	{
		name: "strict budgets cannot absorb near-term price drift",
		applies: func(_, current Recommendation, w *WaitRisk, p *UserDecisionProfile) bool {
			if p.BudgetFlexibility != BudgetStrict || current == ActNow {
				return false
			}
			point := w.Point(7)
			return point != nil && point.ExpectedPriceChange > StrictBudgetDriftThreshold
		},
		outcome: ActNow,
	},
	{
		name: "flexible budgets can wait out a medium two-week risk",
		applies: func(_, current Recommendation, w *WaitRisk, p *UserDecisionProfile) bool {
			return p.BudgetFlexibility == BudgetFlexible && current == ActNow && pointLevel(w, 14) == RiskMedium
		},
		outcome: WaitShort,
	},
}

// PersonalizeWaitRisk adapts a base wait-risk result to a buyer's decision
// profile. It is a pure transform: the base WaitRisk is never mutated and a
// nil profile (buyer never configured preferences) returns the input
// unchanged. The risk curve itself is never recomputed; only the
// recommendation and the trade-off wording change.
func PersonalizeWaitRisk(w WaitRisk, profile *UserDecisionProfile) WaitRisk {
	if profile == nil {
		return w
	}

	base := w.Recommendation
	current := base
	for _, rule := range overrideRules {
		if rule.applies(base, current, &w, profile) {
			current = rule.outcome
		}
	}

	return WaitRisk{
		RiskByDays:     append([]RiskPoint(nil), w.RiskByDays...),
		Recommendation: current,
		Tradeoffs:      personalizeTradeoffs(w.Tradeoffs, profile),
	}
}

// personalizeTradeoffs appends profile-flavored sentences to the base
// trade-off copy. The base text is always kept intact.
func personalizeTradeoffs(t Tradeoffs, profile *UserDecisionProfile) Tradeoffs {
	discipline := t.Discipline
	probability := t.Probability

	switch profile.Objective {
	case ObjectiveInvestment:
		discipline += " Como inversor, esperar puede permitirte encontrar mejores oportunidades de valor."
	case ObjectivePrimaryResidence:
		discipline += " Para tu residencia principal, considera tu necesidad de estabilidad y tiempo de búsqueda."
	}

	switch profile.Urgency {
	case UrgencyHigh:
		probability += " Dado tu nivel de urgencia alto, el tiempo es un factor crítico en tu decisión."
	case UrgencyLow:
		probability += " Con tu nivel de urgencia bajo, tienes más flexibilidad para esperar."
	}

	switch profile.RiskTolerance {
	case ToleranceConservative:
		probability += " Considerando tu perfil conservador, prioriza la seguridad sobre oportunidades."
	case ToleranceAggressive:
		discipline += " Con tu tolerancia al riesgo, puedes considerar estrategias más agresivas si el potencial es alto."
	}

	return Tradeoffs{
		Discipline:  discipline,
		Probability: probability,
	}
}

func pointLevel(w *WaitRisk, days int) RiskLevel {
	if point := w.Point(days); point != nil {
		return point.RiskLevel
	}
	return ""
}
