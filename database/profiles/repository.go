// Package profiles loads buyer decision profiles for personalization.
package profiles

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pricewaze-decision-engine/database"
	"pricewaze-decision-engine/die"
)

// Repository handles decision profile lookups
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new profiles repository
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db.DB()}
}

// DecisionProfile returns the buyer's decision profile, or nil when the
// buyer never configured one. A missing profile row is not an error.
func (r *Repository) DecisionProfile(ctx context.Context, userID string) (*die.UserDecisionProfile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, database.NewValidationErrorWithValue("user_id", "not a valid uuid", userID)
	}

	var row database.Profile
	err = r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, database.WrapDBError("DecisionProfile", err)
	}

	return MapProfile(&row), nil
}

// MapProfile converts a profile row into a decision profile. When the buyer
// set none of the preference columns the mapping returns nil, an explicit
// "no personalization" signal, never silently defaulted. Individually unset
// fields in an otherwise configured profile fall back to the balanced
// defaults.
func MapProfile(row *database.Profile) *die.UserDecisionProfile {
	if row.DecisionUrgency == nil && row.DecisionRiskTolerance == nil &&
		row.DecisionObjective == nil && row.DecisionBudgetFlexibility == nil {
		return nil
	}

	return &die.UserDecisionProfile{
		UserID:            row.ID.String(),
		Urgency:           die.Urgency(fieldOrDefault(row.DecisionUrgency, string(die.UrgencyMedium))),
		RiskTolerance:     die.RiskTolerance(fieldOrDefault(row.DecisionRiskTolerance, string(die.ToleranceModerate))),
		Objective:         die.Objective(fieldOrDefault(row.DecisionObjective, string(die.ObjectivePrimaryResidence))),
		BudgetFlexibility: die.BudgetFlexibility(fieldOrDefault(row.DecisionBudgetFlexibility, string(die.BudgetModerate))),
	}
}

func fieldOrDefault(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}
