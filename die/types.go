// Package die implements the pricewaze Decision Intelligence Engine: the
// wait-risk scoring core that estimates the downside of delaying a purchase
// decision by 7, 14, 30 or 60 days, derives a single recommendation, and
// adapts both to a buyer's decision profile.
//
// The package is a library-level computation: its only I/O is two injected
// read-only lookups (historical scenarios, decision profile). Everything
// downstream of those lookups is pure and deterministic.
package die

import "time"

// PressureLevel is the aggregated demand classification for a listing.
type PressureLevel string

// Pressure levels
const (
	PressureLow    PressureLevel = "low"
	PressureMedium PressureLevel = "medium"
	PressureHigh   PressureLevel = "high"
)

// Velocity is the trend direction of listing/sale activity in a zone.
type Velocity string

// Market velocities
const (
	VelocityAccelerating Velocity = "accelerating"
	VelocityStable       Velocity = "stable"
	VelocityDecelerating Velocity = "decelerating"
)

// PriceStatus classifies the asking price against the estimated fair range.
type PriceStatus string

// Asking price positions
const (
	PriceBelowRange  PriceStatus = "below_range"
	PriceWithinRange PriceStatus = "within_range"
	PriceAboveRange  PriceStatus = "above_range"
)

// RiskLevel buckets a risk score into low/medium/high.
type RiskLevel string

// Risk levels
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Recommendation is the single actionable outcome of a wait-risk analysis.
type Recommendation string

// Recommendations, ordered from most to least urgent
const (
	ActNow     Recommendation = "act_now"
	WaitShort  Recommendation = "wait_short"
	WaitMedium Recommendation = "wait_medium"
	WaitLong   Recommendation = "wait_long"
)

// PropertyContext identifies the subject listing. Immutable per invocation.
type PropertyContext struct {
	PropertyID string  `json:"property_id"`
	ZoneID     string  `json:"zone_id,omitempty"` // empty = no zone, no historical lookup
	Price      float64 `json:"price"`
	AreaM2     float64 `json:"area_m2"`
}

// MarketDynamics is the upstream velocity aggregate, supplied externally.
type MarketDynamics struct {
	Velocity            Velocity `json:"velocity"`
	RecentListingsCount int      `json:"recent_listings_count"`
}

// PressureSignals are the boolean demand signals behind the pressure level.
type PressureSignals struct {
	HighActivity    bool `json:"high_activity"`
	ManyVisits      bool `json:"many_visits"`
	CompetingOffers bool `json:"competing_offers"`
}

// CurrentPressure is the upstream demand aggregate, supplied externally.
type CurrentPressure struct {
	Level   PressureLevel   `json:"level"`
	Signals PressureSignals `json:"signals"`
}

// PriceAssessment is the upstream fair-value aggregate, supplied externally.
type PriceAssessment struct {
	AskingPriceStatus  PriceStatus `json:"asking_price_status"`
	EstimatedFairValue float64     `json:"estimated_fair_value"`
}

// HistoricalScenario is one observed past sale in the subject's zone, used
// to calibrate expected price drift while waiting.
type HistoricalScenario struct {
	DaysOnMarket   int     `json:"days_on_market"`
	SoldPrice      float64 `json:"sold_price"`
	OriginalPrice  float64 `json:"original_price"`
	HadCompetition bool    `json:"had_competition"`
}

// RiskPoint is the scored outcome of waiting one fixed horizon.
//
// RiskLevel is always derived from RiskScore: <30 low, <60 medium, else high.
type RiskPoint struct {
	Days                int       `json:"days"`
	RiskLevel           RiskLevel `json:"risk_level"`
	RiskScore           int       `json:"risk_score"`            // 0-100
	ProbabilityOfLoss   float64   `json:"probability_of_loss"`   // 0-0.9, 2 decimals
	ExpectedPriceChange float64   `json:"expected_price_change"` // -0.10 to 0.15, 3 decimals
}

// Tradeoffs is the two-sided plain-language framing of the decision:
// what patience buys versus what it risks.
type Tradeoffs struct {
	Discipline  string `json:"discipline"`
	Probability string `json:"probability"`
}

// WaitRisk is the full output of a wait-risk analysis. RiskByDays always
// holds the four fixed horizons in ascending order. Values are never mutated
// after construction; personalization produces a new WaitRisk.
type WaitRisk struct {
	RiskByDays     []RiskPoint    `json:"risk_by_days"`
	Recommendation Recommendation `json:"recommendation"`
	Tradeoffs      Tradeoffs      `json:"tradeoffs"`
}

// Point returns the risk point for the given horizon, or nil if absent.
func (w *WaitRisk) Point(days int) *RiskPoint {
	for i := range w.RiskByDays {
		if w.RiskByDays[i].Days == days {
			return &w.RiskByDays[i]
		}
	}
	return nil
}

// Urgency is how time-constrained the buyer is.
type Urgency string

// Urgency levels
const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// RiskTolerance is how much downside the buyer accepts.
type RiskTolerance string

// Risk tolerances
const (
	ToleranceConservative RiskTolerance = "conservative"
	ToleranceModerate     RiskTolerance = "moderate"
	ToleranceAggressive   RiskTolerance = "aggressive"
)

// Objective is what the buyer is purchasing for.
type Objective string

// Purchase objectives
const (
	ObjectivePrimaryResidence Objective = "primary_residence"
	ObjectiveInvestment       Objective = "investment"
	ObjectiveVacation         Objective = "vacation"
	ObjectiveFlip             Objective = "flip"
)

// BudgetFlexibility is how much room the buyer has above asking.
type BudgetFlexibility string

// Budget flexibilities
const (
	BudgetStrict   BudgetFlexibility = "strict"
	BudgetModerate BudgetFlexibility = "moderate"
	BudgetFlexible BudgetFlexibility = "flexible"
)

// UserDecisionProfile is a buyer's stored decision preferences. A nil
// profile means "never configured" and personalization is skipped entirely.
type UserDecisionProfile struct {
	UserID            string            `json:"user_id"`
	Urgency           Urgency           `json:"urgency"`
	RiskTolerance     RiskTolerance     `json:"risk_tolerance"`
	Objective         Objective         `json:"objective"`
	BudgetFlexibility BudgetFlexibility `json:"budget_flexibility"`
}

// DaysBetween returns the whole-day difference between two timestamps,
// floored. Used to derive days-on-market from listing timestamps.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
