// Package scenarios retrieves historical sale outcomes used to calibrate
// wait-risk scoring. For every recently sold listing in the subject's zone
// it reconstructs what happened: how long the listing sat on the market,
// how the price moved from first listing to sale, and whether competing
// offers were in play.
package scenarios

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pricewaze-decision-engine/database"
	"pricewaze-decision-engine/die"
)

// Repository handles historical scenario lookups
type Repository struct {
	db    *gorm.DB
	limit int
}

// NewRepository creates a new scenarios repository
func NewRepository(db *database.Database, limit int) *Repository {
	if limit <= 0 {
		limit = database.DefaultScenarioLimit
	}
	return &Repository{db: db.DB(), limit: limit}
}

// HistoricalScenarios returns up to the configured limit of sale outcomes
// from the given zone, excluding the subject property. Zero results is a
// normal, common case and never an error.
func (r *Repository) HistoricalScenarios(ctx context.Context, propertyID, zoneID string) ([]die.HistoricalScenario, error) {
	if zoneID == "" {
		return nil, nil
	}

	zone, err := uuid.Parse(zoneID)
	if err != nil {
		return nil, database.NewValidationErrorWithValue("zone_id", "not a valid uuid", zoneID)
	}
	subject, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, database.NewValidationErrorWithValue("property_id", "not a valid uuid", propertyID)
	}

	var sold []database.Property
	err = r.db.WithContext(ctx).
		Where("zone_id = ?", zone).
		Where("status = ?", database.PropertyStatusSold).
		Where("id <> ?", subject).
		Order("updated_at DESC").
		Limit(r.limit).
		Find(&sold).Error
	if err != nil {
		return nil, database.WrapDBError("HistoricalScenarios.sold", err)
	}
	if len(sold) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(sold))
	for _, p := range sold {
		ids = append(ids, p.ID)
	}

	var history []database.PropertyPriceHistory
	err = r.db.WithContext(ctx).
		Where("property_id IN ?", ids).
		Order("changed_at ASC").
		Find(&history).Error
	if err != nil {
		return nil, database.WrapDBError("HistoricalScenarios.priceHistory", err)
	}

	var offers []database.Offer
	err = r.db.WithContext(ctx).
		Where("property_id IN ?", ids).
		Where("status IN ?", database.CompetingOfferStatuses).
		Find(&offers).Error
	if err != nil {
		return nil, database.WrapDBError("HistoricalScenarios.offers", err)
	}

	return BuildScenarios(sold, history, offers), nil
}

// BuildScenarios maps raw listing rows into historical scenarios. The
// earliest recorded price is the original listing price (falling back to
// the sold price when no history exists), days on market is the whole-day
// span between creation and last update, and any live-state offer marks
// the sale as competitive.
func BuildScenarios(sold []database.Property, history []database.PropertyPriceHistory, offers []database.Offer) []die.HistoricalScenario {
	// history arrives ordered by changed_at ascending, so the first row
	// per property is the original price
	originalPrices := make(map[uuid.UUID]float64, len(sold))
	for _, h := range history {
		if _, seen := originalPrices[h.PropertyID]; !seen {
			originalPrices[h.PropertyID] = h.Price
		}
	}

	contested := make(map[uuid.UUID]bool, len(offers))
	for _, o := range offers {
		contested[o.PropertyID] = true
	}

	scenarios := make([]die.HistoricalScenario, 0, len(sold))
	for _, p := range sold {
		originalPrice, ok := originalPrices[p.ID]
		if !ok {
			originalPrice = p.Price
		}

		daysOnMarket := die.DaysBetween(p.CreatedAt, p.UpdatedAt)
		if daysOnMarket < 0 {
			daysOnMarket = 0
		}

		scenarios = append(scenarios, die.HistoricalScenario{
			DaysOnMarket:   daysOnMarket,
			SoldPrice:      p.Price,
			OriginalPrice:  originalPrice,
			HadCompetition: contested[p.ID],
		})
	}

	return scenarios
}
