package database

// Property lifecycle states
const (
	PropertyStatusActive    = "active"
	PropertyStatusReserved  = "reserved"
	PropertyStatusSold      = "sold"
	PropertyStatusWithdrawn = "withdrawn"
)

// Offer lifecycle states
const (
	OfferStatusPending   = "pending"
	OfferStatusCountered = "countered"
	OfferStatusAccepted  = "accepted"
	OfferStatusRejected  = "rejected"
	OfferStatusWithdrawn = "withdrawn"
	OfferStatusExpired   = "expired"
)

// CompetingOfferStatuses are the offer states that mark a listing as having
// had real competition. Rejected, withdrawn and expired offers do not count.
var CompetingOfferStatuses = []string{
	OfferStatusPending,
	OfferStatusCountered,
	OfferStatusAccepted,
}

// Query limits
const (
	// DefaultScenarioLimit caps how many sold comparables are pulled per
	// zone when building historical scenarios
	DefaultScenarioLimit = 20
)
