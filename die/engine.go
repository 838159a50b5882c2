package die

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"log"
)

// ScenarioProvider fetches historical sale outcomes for the subject's zone.
// Implementations must treat zero results as a normal, common case.
type ScenarioProvider interface {
	HistoricalScenarios(ctx context.Context, propertyID, zoneID string) ([]HistoricalScenario, error)
}

// ProfileProvider fetches a buyer's stored decision profile. A nil profile
// means the buyer never configured one and personalization is skipped.
type ProfileProvider interface {
	DecisionProfile(ctx context.Context, userID string) (*UserDecisionProfile, error)
}

// ResultCache memoizes base wait-risk results keyed by property and input
// hash. The engine never persists results; callers opt in to caching.
type ResultCache interface {
	GetResult(ctx context.Context, propertyID, inputHash string) (*WaitRisk, bool)
	SetResult(ctx context.Context, propertyID, inputHash string, result *WaitRisk) error
}

// Engine computes wait-risk analyses. The scoring itself is stateless;
// the engine only carries the injected lookups, the weights table and an
// optional result cache, so a single Engine is safe for concurrent use.
type Engine struct {
	scenarios ScenarioProvider
	profiles  ProfileProvider
	weights   RiskWeights
	cache     ResultCache
}

// NewEngine creates an engine with the production weights table. Either
// provider may be nil, in which case the corresponding lookup degrades to
// an empty result.
func NewEngine(scenarios ScenarioProvider, profiles ProfileProvider) *Engine {
	return &Engine{
		scenarios: scenarios,
		profiles:  profiles,
		weights:   DefaultRiskWeights(),
	}
}

// SetWeights overrides the scoring table
func (e *Engine) SetWeights(weights RiskWeights) {
	e.weights = weights
}

// SetCache enables result memoization
func (e *Engine) SetCache(cache ResultCache) {
	e.cache = cache
}

// ComputeWaitRisk runs the base, profile-agnostic computation: historical
// lookup, the four-horizon risk curve, the recommendation cascade and the
// trade-off narration. A failed historical lookup degrades to an empty
// scenario set; only structurally invalid scenario data fails the call.
func (e *Engine) ComputeWaitRisk(
	ctx context.Context,
	property PropertyContext,
	dynamics MarketDynamics,
	pressure CurrentPressure,
	assessment PriceAssessment,
) (*WaitRisk, error) {
	inputHash := inputFingerprint(property, dynamics, pressure, assessment)

	if e.cache != nil {
		if cached, ok := e.cache.GetResult(ctx, property.PropertyID, inputHash); ok {
			return cached, nil
		}
	}

	scenarios := e.fetchScenarios(ctx, property)

	curve, err := BuildRiskCurve(pressure, dynamics, assessment, scenarios, e.weights)
	if err != nil {
		return nil, fmt.Errorf("ComputeWaitRisk: %w", err)
	}

	result := &WaitRisk{
		RiskByDays:     curve,
		Recommendation: ResolveRecommendation(curve, pressure, dynamics),
		Tradeoffs:      NarrateTradeoffs(curve, pressure, dynamics),
	}

	if e.cache != nil {
		if err := e.cache.SetResult(ctx, property.PropertyID, inputHash, result); err != nil {
			log.Printf("⚠️  Failed to cache wait-risk result for %s: %v", property.PropertyID, err)
		}
	}

	return result, nil
}

// Analyze runs the full pipeline for one buyer: the base computation plus
// profile personalization. The profile lookup runs concurrently with the
// historical lookup since the two are independent.
func (e *Engine) Analyze(
	ctx context.Context,
	property PropertyContext,
	dynamics MarketDynamics,
	pressure CurrentPressure,
	assessment PriceAssessment,
	userID string,
) (*WaitRisk, error) {
	profileCh := make(chan *UserDecisionProfile, 1)
	go func() {
		profileCh <- e.fetchProfile(ctx, userID)
	}()

	base, err := e.ComputeWaitRisk(ctx, property, dynamics, pressure, assessment)
	if err != nil {
		return nil, err
	}

	personalized := PersonalizeWaitRisk(*base, <-profileCh)
	return &personalized, nil
}

// fetchScenarios degrades every failure to an empty scenario set: a missing
// zone or a broken lookup is a data-sparsity condition, not an error.
func (e *Engine) fetchScenarios(ctx context.Context, property PropertyContext) []HistoricalScenario {
	if e.scenarios == nil || property.ZoneID == "" {
		return nil
	}

	scenarios, err := e.scenarios.HistoricalScenarios(ctx, property.PropertyID, property.ZoneID)
	if err != nil {
		log.Printf("⚠️  Historical scenario lookup failed for %s: %v", property.PropertyID, err)
		return nil
	}
	return scenarios
}

// fetchProfile degrades every failure to a nil profile, which downstream
// means "skip personalization".
func (e *Engine) fetchProfile(ctx context.Context, userID string) *UserDecisionProfile {
	if e.profiles == nil || userID == "" {
		return nil
	}

	profile, err := e.profiles.DecisionProfile(ctx, userID)
	if err != nil {
		log.Printf("⚠️  Decision profile lookup failed for %s: %v", userID, err)
		return nil
	}
	return profile
}

// inputFingerprint hashes the full input tuple so cached results are only
// reused for bit-identical inputs.
func inputFingerprint(
	property PropertyContext,
	dynamics MarketDynamics,
	pressure CurrentPressure,
	assessment PriceAssessment,
) string {
	payload, err := json.Marshal(struct {
		Property   PropertyContext `json:"property"`
		Dynamics   MarketDynamics  `json:"dynamics"`
		Pressure   CurrentPressure `json:"pressure"`
		Assessment PriceAssessment `json:"assessment"`
	}{property, dynamics, pressure, assessment})
	if err != nil {
		return "unhashable"
	}
	return fmt.Sprintf("%x", md5.Sum(payload))
}
