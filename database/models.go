package database

import (
	"time"

	"github.com/google/uuid"
)

// Property represents a marketplace listing. Sold listings in the same zone
// are the raw material for historical wait-risk scenarios.
//
// Key Fields:
//   - ZoneID: geographic zone the listing belongs to (nullable; listings
//     without a zone never contribute scenarios)
//   - Status: listing lifecycle state (active, reserved, sold, withdrawn)
//   - Price: current asking price; for sold listings this is the sold price
//   - CreatedAt/UpdatedAt: for sold listings the difference approximates
//     days on market
type Property struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ZoneID    *uuid.UUID `gorm:"type:uuid;index" json:"zone_id,omitempty"`
	Title     string     `gorm:"size:255" json:"title"`
	Status    string     `gorm:"size:20;index;not null" json:"status"`
	Price     float64    `gorm:"type:decimal(15,2);not null" json:"price"`
	AreaM2    float64    `gorm:"type:decimal(10,2)" json:"area_m2"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"index;not null" json:"updated_at"`
}

// TableName specifies the table name for Property
func (Property) TableName() string {
	return "pricewaze_properties"
}

// PropertyPriceHistory records every asking-price change for a listing.
// The earliest row per property is the original listing price.
type PropertyPriceHistory struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uuid.UUID `gorm:"type:uuid;index;not null" json:"property_id"`
	Price      float64   `gorm:"type:decimal(15,2);not null" json:"price"`
	ChangedAt  time.Time `gorm:"index;not null" json:"changed_at"`
}

// TableName specifies the table name for PropertyPriceHistory
func (PropertyPriceHistory) TableName() string {
	return "pricewaze_property_price_history"
}

// Offer represents a purchase offer on a listing. Offers in a live state
// (pending, countered, accepted) mark the listing as having had competition.
type Offer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID uuid.UUID `gorm:"type:uuid;index;not null" json:"property_id"`
	BuyerID    uuid.UUID `gorm:"type:uuid;index" json:"buyer_id"`
	Status     string    `gorm:"size:20;index;not null" json:"status"`
	Amount     float64   `gorm:"type:decimal(15,2)" json:"amount"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for Offer
func (Offer) TableName() string {
	return "pricewaze_offers"
}

// Profile holds a buyer's account row, including the four optional decision
// preference columns. All four unset means the buyer never configured a
// decision profile and personalization must be skipped.
type Profile struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DecisionUrgency           *string   `gorm:"size:20" json:"decision_urgency,omitempty"`
	DecisionRiskTolerance     *string   `gorm:"size:20" json:"decision_risk_tolerance,omitempty"`
	DecisionObjective         *string   `gorm:"size:30" json:"decision_objective,omitempty"`
	DecisionBudgetFlexibility *string   `gorm:"size:20" json:"decision_budget_flexibility,omitempty"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "pricewaze_profiles"
}
