package app

import (
	"context"
	"fmt"

	"github.com/pathway-edu/website/internal/cache"
	"github.com/pathway-edu/website/internal/config"
	"github.com/pathway-edu/website/internal/metrics"
	"github.com/pathway-edu/website/internal/model"
	"github.com/pathway-edu/website/internal/service"
	"github.com/pathway-edu/website/internal/storage"
	"github.com/pathway-edu/website/internal/upstream"
)

type App struct {
	Cfg                *config.Config
	Metrics            *metrics.Metrics
	Cache              *cache.RistrettoCache
	Upstream           *upstream.Client
	ContentService     *service.ContentService
	EmailService       *service.EmailService
	ApplicationService *service.ApplicationService
	FileService        *service.FileService
	MarketService      *service.MarketService
	LegalService       *service.LegalService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	m := metrics.New()

	// Upstream client, with an optional GET cache in front
	opts := []upstream.Option{upstream.WithMetrics(m)}
	var responseCache *cache.RistrettoCache
	if cfg.UpstreamCacheTTL > 0 {
		var err error
		responseCache, err = cache.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cache: %v", err)
		}
		opts = append(opts, upstream.WithCache(responseCache, cfg.UpstreamCacheTTL))
	}
	client := upstream.New(cfg.BaseAPIURL, cfg.UpstreamTimeout, opts...)

	// Storage
	fileStorage, err := storage.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.ResendAudienceID,
		cfg.ApplicationNotifyEmail,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)

	return &App{
		Cfg:                cfg,
		Metrics:            m,
		Cache:              responseCache,
		Upstream:           client,
		ContentService:     service.NewContentService(client),
		EmailService:       emailService,
		ApplicationService: service.NewApplicationService(client, emailService),
		FileService:        service.NewFileService(fileStorage),
		MarketService:      service.NewMarketService(model.Markets),
		LegalService:       service.NewLegalService(cfg.ContentPath, cfg.ContentReload),
	}, nil
}

func (a *App) Close() error {
	if a.Cache != nil {
		a.Cache.Close()
	}
	return nil
}
