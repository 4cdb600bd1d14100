package service

import (
	"context"
	"log/slog"
	"math/rand"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fardannozami/portfolio/internal/model"
	"github.com/fardannozami/portfolio/internal/storage"
)

// legacyPathPrefix is the old blog path segment some inbound links still
// carry; lookups strip it and the handlers redirect to the canonical path.
const legacyPathPrefix = "blog/"

// Fetcher pulls live posts from the remote CMS. Implementations absorb
// their own failures and return empty results.
type Fetcher interface {
	AllPosts(ctx context.Context) []model.Post
	PostBySlug(ctx context.Context, slug string) *model.Post
}

// ContentService is the single read path for blog content and the single
// write path triggered by the refresh webhook. Reads never touch the
// remote CMS; they serve whatever snapshot exists, degrading to an empty
// collection.
type ContentService struct {
	store   storage.Store
	fetcher Fetcher
}

func NewContentService(store storage.Store, fetcher Fetcher) *ContentService {
	return &ContentService{
		store:   store,
		fetcher: fetcher,
	}
}

// Posts returns the cached collection sorted newest first. Posts with an
// unparseable date carry the zero timestamp and sort last. Ties keep the
// snapshot order.
func (s *ContentService) Posts(ctx context.Context) []model.Post {
	posts, err := s.store.Load(ctx)
	if err != nil {
		slog.Warn("content: snapshot unavailable, serving empty collection", "error", err)
		return []model.Post{}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts
}

// Post looks up a single cached post by slug. A legacy "blog/" path
// prefix is stripped before lookup. Returns nil when no post matches.
func (s *ContentService) Post(ctx context.Context, slug string) *model.Post {
	slug = NormalizeSlug(slug)
	for _, post := range s.Posts(ctx) {
		if post.Slug == slug {
			return &post
		}
	}
	return nil
}

// Refresh pulls fresh posts from the CMS and overwrites the snapshot.
// This is the only path that contacts the remote API; it is invoked by
// the webhook handler, never by a read.
func (s *ContentService) Refresh(ctx context.Context) error {
	posts := s.fetcher.AllPosts(ctx)

	location, err := s.store.Save(ctx, posts)
	if err != nil {
		return err
	}

	slog.Info("content: snapshot refreshed", "posts", len(posts), "location", location)
	return nil
}

// NormalizeSlug strips the legacy path prefix from an inbound slug.
func NormalizeSlug(slug string) string {
	return strings.TrimPrefix(slug, legacyPathPrefix)
}

// SeriesPosts returns the current post plus every same-series post from
// others, deduplicated by slug and sorted oldest first, since a series is
// read in publication order. Matching prefers series slugs when both
// sides have one, else falls back to the series name.
func SeriesPosts(current model.Post, others []model.Post) []model.Post {
	if current.Series == nil {
		return nil
	}

	var group []model.Post
	for _, post := range others {
		if post.Series == nil {
			continue
		}
		if current.Series.Slug != "" && post.Series.Slug != "" {
			if post.Series.Slug == current.Series.Slug {
				group = append(group, post)
			}
			continue
		}
		if post.Series.Name == current.Series.Name {
			group = append(group, post)
		}
	}
	group = append(group, current)

	seen := make(map[string]bool, len(group))
	unique := group[:0]
	for _, post := range group {
		if seen[post.Slug] {
			continue
		}
		seen[post.Slug] = true
		unique = append(unique, post)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].PublishedAt.Before(unique[j].PublishedAt)
	})
	return unique
}

// SeriesTitle returns the display name of a series, deriving one from the
// slug when the CMS sends an empty name.
func SeriesTitle(series *model.Series) string {
	if series == nil {
		return ""
	}
	if series.Name != "" {
		return series.Name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(series.Slug, "-", " "))
}

// RandomPosts picks up to n posts at random, for the related-posts
// section. The input slice is not modified.
func RandomPosts(posts []model.Post, n int) []model.Post {
	if len(posts) <= n {
		return posts
	}

	shuffled := make([]model.Post, len(posts))
	copy(shuffled, posts)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
