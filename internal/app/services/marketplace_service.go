package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/state"
	"github.com/yigit/campushub/internal/pkg/helpers"
	"github.com/yigit/campushub/internal/pkg/validation"
)

// MarketplaceService defines the interface for marketplace operations
type MarketplaceService interface {
	CreateListing(ctx context.Context, req *dto.CreateListingRequest) (*models.MarketplaceItem, error)
}

type marketplaceServiceImpl struct {
	state  *state.AppState
	logger zerolog.Logger
	ids    idSequence
}

// NewMarketplaceService creates a new MarketplaceService
func NewMarketplaceService(appState *state.AppState, logger zerolog.Logger) MarketplaceService {
	return &marketplaceServiceImpl{
		state:  appState,
		logger: logger.With().Str("service", "marketplace").Logger(),
	}
}

// CreateListing validates the listing form and appends the item with the
// current user as seller.
func (s *marketplaceServiceImpl) CreateListing(ctx context.Context, req *dto.CreateListingRequest) (*models.MarketplaceItem, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	seller := s.state.CurrentUser()
	now := s.state.Now()
	item := models.MarketplaceItem{
		ID:          s.ids.next("item", now),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Price:       *req.Price,
		Condition:   models.ItemCondition(req.Condition),
		Category:    req.Category,
		SellerID:    seller.ID,
		SellerName:  seller.Name,
		Location:    strings.TrimSpace(req.Location),
		Tags:        splitTags(req.Tags),
		PostedDate:  helpers.FormatDate(now),
		Views:       0,
	}

	if err := s.state.AddListing(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("title", item.Title).Msg("Failed to add listing")
		return nil, err
	}

	s.logger.Info().Str("itemID", item.ID).Str("category", item.Category).Msg("Listing created")
	return &item, nil
}

// splitTags turns comma separated input into trimmed, non-empty tags.
func splitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
