package die

// recommendationRule is one step of the recommendation cascade. Rules are
// evaluated top to bottom and the first match wins: urgent and competitive
// signals deliberately override the calmer time-horizon math.
type recommendationRule struct {
	name    string
	applies func(curve []RiskPoint, pressure CurrentPressure, dynamics MarketDynamics) bool
	outcome Recommendation
}

var recommendationRules = []recommendationRule{
	{
		name: "high pressure in an accelerating market",
		applies: func(_ []RiskPoint, p CurrentPressure, d MarketDynamics) bool {
			return p.Level == PressureHigh && d.Velocity == VelocityAccelerating
		},
		outcome: ActNow,
	},
	{
		name: "competing offers on the table",
		applies: func(_ []RiskPoint, p CurrentPressure, _ MarketDynamics) bool {
			return p.Signals.CompetingOffers
		},
		outcome: ActNow,
	},
	{
		name: "high risk within 7 days",
		applies: func(curve []RiskPoint, _ CurrentPressure, _ MarketDynamics) bool {
			return horizonLevel(curve, 7) == RiskHigh
		},
		outcome: ActNow,
	},
	{
		name: "high risk within 14 days",
		applies: func(curve []RiskPoint, _ CurrentPressure, _ MarketDynamics) bool {
			return horizonLevel(curve, 14) == RiskHigh
		},
		outcome: WaitShort,
	},
	{
		name: "medium risk within 30 days",
		applies: func(curve []RiskPoint, _ CurrentPressure, _ MarketDynamics) bool {
			return horizonLevel(curve, 30) == RiskMedium
		},
		outcome: WaitMedium,
	},
}

// ResolveRecommendation runs the rule cascade over the risk curve and the
// raw pressure/velocity inputs. When no rule fires the buyer can wait long.
func ResolveRecommendation(curve []RiskPoint, pressure CurrentPressure, dynamics MarketDynamics) Recommendation {
	for _, rule := range recommendationRules {
		if rule.applies(curve, pressure, dynamics) {
			return rule.outcome
		}
	}
	return WaitLong
}

func horizonLevel(curve []RiskPoint, days int) RiskLevel {
	for _, p := range curve {
		if p.Days == days {
			return p.RiskLevel
		}
	}
	return ""
}
