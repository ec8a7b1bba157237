package pages

import (
	"context"

	"github.com/pathway-edu/website/internal/ctxkeys"
	"github.com/pathway-edu/website/internal/model"
)

const homeMarketCount = 6

type HomeData struct {
	Markets          []model.Market
	Testimonials     []model.Testimonial
	LatestBlogs      []*model.Blog
	BlogsFailed      bool
	Programmes       []*model.Programme
	ProgrammesFailed bool
}

func heroTagline(ctx context.Context) string {
	if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppTagline != "" {
		return cfg.AppTagline
	}
	return "Your journey to studying abroad starts here"
}

func teaserMarkets(markets []model.Market) []model.Market {
	if len(markets) > homeMarketCount {
		return markets[:homeMarketCount]
	}
	return markets
}
