package service

import (
	"context"
	"encoding/xml"
	"strings"
	"time"

	"github.com/fardannozami/portfolio/internal/model"
)

// publicRoutes are the static public routes included in the sitemap.
var publicRoutes = []struct {
	Path       string
	Priority   string
	ChangeFreq string
}{
	{"/", "1.0", "weekly"},
	{"/blog", "0.8", "daily"},
}

type SitemapService struct {
	content *ContentService
	baseURL string
}

func NewSitemapService(content *ContentService, baseURL string) *SitemapService {
	return &SitemapService{
		content: content,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// GenerateSitemap builds the sitemap from the static routes and every
// cached post, using the canonical root-level post paths.
func (s *SitemapService) GenerateSitemap(ctx context.Context) ([]byte, error) {
	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []model.SitemapURL{},
	}

	today := time.Now().Format("2006-01-02")
	for _, route := range publicRoutes {
		sitemap.URLs = append(sitemap.URLs, model.SitemapURL{
			Loc:        s.baseURL + route.Path,
			LastMod:    today,
			ChangeFreq: route.ChangeFreq,
			Priority:   route.Priority,
		})
	}

	for _, post := range s.content.Posts(ctx) {
		lastMod := today
		if !post.PublishedAt.IsZero() {
			lastMod = post.PublishedAt.Format("2006-01-02")
		}

		sitemap.URLs = append(sitemap.URLs, model.SitemapURL{
			Loc:        s.baseURL + "/" + post.Slug,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return []byte(xml.Header + string(output)), nil
}
