// Package assist wires classification, extraction, and recommendation into
// the single query-to-answer pipeline used by the server, the CLI, and the
// REPL.
package assist

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/annai/internal/classify"
	"github.com/hyperjump/annai/internal/engine"
	"github.com/hyperjump/annai/internal/extract"
	"github.com/hyperjump/annai/internal/models"
	"github.com/hyperjump/annai/internal/store"
)

// Assistant answers travel queries against the current dataset snapshot.
// Safe for concurrent use.
type Assistant struct {
	store      *store.Store
	classifier *classify.Classifier
	extractor  *extract.Extractor
	engine     *engine.Engine
	logger     *zap.Logger
}

// New creates an Assistant. engineCfg and logger may be nil.
func New(st *store.Store, engineCfg *engine.Config, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{
		store:      st,
		classifier: classify.NewClassifier(logger.Named("classify")),
		extractor:  extract.NewExtractor(logger.Named("extract")),
		engine:     engine.NewEngine(engineCfg, logger.Named("engine")),
		logger:     logger,
	}
}

// Answer runs the full pipeline for one query: classify the domain, extract
// constraints, and recommend from the matching dataset. topN <= 0 means the
// engine default. Never fails; a query nothing matches yields an empty
// answer.
func (a *Assistant) Answer(query string, topN int) *models.Answer {
	snap := a.store.Snapshot()
	names := classify.CatalogNames{Hotels: snap.HotelNames, Vehicles: snap.VehicleNames}

	domain := a.classifier.Classify(query, names)
	cs := a.extractor.Extract(query, domain)

	ans := &models.Answer{
		ID:          uuid.NewString(),
		Query:       query,
		Domain:      domain,
		Constraints: cs,
	}
	switch domain {
	case models.DomainRestaurant:
		ans.Restaurants, ans.Alternatives = a.engine.RecommendRestaurants(&cs, snap.Restaurants, topN)
	case models.DomainHotel:
		ans.Hotels = a.engine.RecommendHotels(&cs, snap.Hotels, topN)
	case models.DomainVehicle:
		ans.Vehicles = a.engine.RecommendVehicles(&cs, snap.Vehicles, topN)
	}

	a.logger.Debug("query answered",
		zap.String("id", ans.ID),
		zap.String("domain", string(domain)),
		zap.String("intent", string(cs.Intent)),
		zap.Int("count", ans.Count()))
	return ans
}
