package die

import (
	"fmt"
	"math"
)

// NarrateTradeoffs renders the two-sided framing of the decision: what the
// buyer gains by waiting (discipline) against the chance of losing the
// listing (probability). The template is picked from a coarse bucket of
// pressure level and velocity; the cited probability comes from the horizon
// that matches the bucket's time frame.
func NarrateTradeoffs(curve []RiskPoint, pressure CurrentPressure, dynamics MarketDynamics) Tradeoffs {
	switch {
	case pressure.Level == PressureLow && dynamics.Velocity == VelocityStable:
		return Tradeoffs{
			Discipline: "Esperar te permite evaluar mejor, negociar con más información y evitar decisiones apresuradas.",
			Probability: citeProbability(curve, 30,
				"Riesgo bajo (%d%%) de perder la oportunidad en 30 días.",
				"Riesgo bajo de perder la oportunidad."),
		}
	case pressure.Level == PressureHigh || dynamics.Velocity == VelocityAccelerating:
		return Tradeoffs{
			Discipline: "Esperar puede darte más tiempo para evaluar, pero el mercado se mueve rápido.",
			Probability: citeProbability(curve, 7,
				"Riesgo alto (%d%%) de perder la oportunidad en 7 días debido a la competencia y velocidad del mercado.",
				"Riesgo alto de perder la oportunidad por competencia activa."),
		}
	default:
		return Tradeoffs{
			Discipline: "Esperar te da flexibilidad para negociar, pero hay competencia moderada.",
			Probability: citeProbability(curve, 14,
				"Riesgo moderado (%d%%) de perder la oportunidad en 14 días.",
				"Riesgo moderado de perder la oportunidad."),
		}
	}
}

// citeProbability fills the template with the horizon's loss probability as
// a whole percent, falling back to the plain template when the horizon is
// missing from the curve.
func citeProbability(curve []RiskPoint, days int, template, fallback string) string {
	for _, p := range curve {
		if p.Days == days {
			return fmt.Sprintf(template, int(math.Round(p.ProbabilityOfLoss*100)))
		}
	}
	return fallback
}
