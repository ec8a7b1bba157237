package service

import "github.com/pathway-edu/website/internal/model"

// MarketService serves the fixed destination catalogue.
type MarketService struct {
	markets []model.Market
	bySlug  map[string]model.Market
}

func NewMarketService(markets []model.Market) *MarketService {
	bySlug := make(map[string]model.Market, len(markets))
	for _, m := range markets {
		bySlug[m.Slug()] = m
	}
	return &MarketService{
		markets: markets,
		bySlug:  bySlug,
	}
}

func (s *MarketService) All() []model.Market {
	return s.markets
}

func (s *MarketService) BySlug(slug string) (model.Market, bool) {
	m, ok := s.bySlug[model.Slugify(slug)]
	return m, ok
}
