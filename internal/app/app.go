package app

import (
	"fmt"

	"github.com/fardannozami/portfolio/internal/config"
	"github.com/fardannozami/portfolio/internal/hashnode"
	"github.com/fardannozami/portfolio/internal/service"
	"github.com/fardannozami/portfolio/internal/storage"
)

type App struct {
	Cfg            *config.Config
	Store          storage.Store
	ContentService *service.ContentService
	ProfileService *service.ProfileService
	SitemapService *service.SitemapService
	EmailService   *service.EmailService
}

func New(cfg *config.Config) (*App, error) {
	// Snapshot storage
	store, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Remote CMS fetcher
	fetcher := hashnode.NewClient(cfg.HashnodeEndpoint, cfg.HashnodeHost, cfg.FetchTimeout)

	// Services
	contentService := service.NewContentService(store, fetcher)
	profileService := service.NewProfileService()
	sitemapService := service.NewSitemapService(contentService, cfg.AppURL)
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.ContactEmail,
		cfg.ResendAudienceID,
		cfg.IsDevelopment(),
	)

	return &App{
		Cfg:            cfg,
		Store:          store,
		ContentService: contentService,
		ProfileService: profileService,
		SitemapService: sitemapService,
		EmailService:   emailService,
	}, nil
}
