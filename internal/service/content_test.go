package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fardannozami/portfolio/internal/model"
)

type fakeStore struct {
	posts   []model.Post
	loadErr error
	saveErr error
	saves   int
}

func (s *fakeStore) Save(ctx context.Context, posts []model.Post) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.posts = posts
	s.saves++
	return "/tmp/posts.json", nil
}

func (s *fakeStore) Load(ctx context.Context) ([]model.Post, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]model.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

type fakeFetcher struct {
	posts []model.Post
}

func (f *fakeFetcher) AllPosts(ctx context.Context) []model.Post { return f.posts }

func (f *fakeFetcher) PostBySlug(ctx context.Context, slug string) *model.Post {
	for _, post := range f.posts {
		if post.Slug == slug {
			return &post
		}
	}
	return nil
}

func datedPost(slug string, published time.Time) model.Post {
	return model.Post{Slug: slug, Title: slug, PublishedAt: published}
}

func TestPostsSortedNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	store := &fakeStore{posts: []model.Post{
		datedPost("oldest", base),
		datedPost("undated", time.Time{}),
		datedPost("newest", base.AddDate(0, 2, 0)),
		datedPost("middle", base.AddDate(0, 1, 0)),
	}}
	svc := NewContentService(store, &fakeFetcher{})

	posts := svc.Posts(context.Background())

	got := make([]string, len(posts))
	for i, p := range posts {
		got[i] = p.Slug
	}
	want := []string{"newest", "middle", "oldest", "undated"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestPostsTiesKeepSnapshotOrder(t *testing.T) {
	same := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	store := &fakeStore{posts: []model.Post{
		datedPost("a", same),
		datedPost("b", same),
		datedPost("c", same),
	}}
	svc := NewContentService(store, &fakeFetcher{})

	posts := svc.Posts(context.Background())
	for i, slug := range []string{"a", "b", "c"} {
		if posts[i].Slug != slug {
			t.Fatalf("tie order changed: %+v", posts)
		}
	}
}

func TestPostsDegradesOnLoadError(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("disk gone")}
	svc := NewContentService(store, &fakeFetcher{})

	posts := svc.Posts(context.Background())
	if posts == nil {
		t.Fatal("expected an empty collection, got nil")
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %d", len(posts))
	}
}

func TestPostLookup(t *testing.T) {
	store := &fakeStore{posts: []model.Post{
		datedPost("hello-world", time.Now()),
	}}
	svc := NewContentService(store, &fakeFetcher{})
	ctx := context.Background()

	if post := svc.Post(ctx, "hello-world"); post == nil || post.Slug != "hello-world" {
		t.Errorf("direct lookup failed: %+v", post)
	}
	if post := svc.Post(ctx, "blog/hello-world"); post == nil {
		t.Error("legacy prefixed lookup failed")
	}
	if post := svc.Post(ctx, "missing"); post != nil {
		t.Errorf("expected nil for unknown slug, got %+v", post)
	}
}

func TestRefreshOverwritesSnapshot(t *testing.T) {
	store := &fakeStore{posts: []model.Post{datedPost("stale", time.Now())}}
	fetcher := &fakeFetcher{posts: []model.Post{
		datedPost("fresh-1", time.Now()),
		datedPost("fresh-2", time.Now()),
	}}
	svc := NewContentService(store, fetcher)
	ctx := context.Background()

	if err := svc.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("expected 1 save, got %d", store.saves)
	}
	if len(store.posts) != 2 {
		t.Fatalf("snapshot not replaced: %+v", store.posts)
	}

	// A refresh against unchanged upstream content is a no-op rewrite.
	if err := svc.Refresh(ctx); err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if len(store.posts) != 2 {
		t.Fatalf("repeat refresh changed the snapshot: %+v", store.posts)
	}
}

func TestRefreshPropagatesSaveError(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("bucket denied")}
	svc := NewContentService(store, &fakeFetcher{})

	if err := svc.Refresh(context.Background()); err == nil {
		t.Error("expected the save error to propagate")
	}
}

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"blog/my-post", "my-post"},
		{"my-post", "my-post"},
		{"blog/", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeSlug(tt.in); got != tt.want {
			t.Errorf("NormalizeSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func seriesPost(slug string, published time.Time, series *model.Series) model.Post {
	post := datedPost(slug, published)
	post.Series = series
	return post
}

func TestSeriesPosts(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	basics := &model.Series{Name: "Go Basics", Slug: "go-basics"}
	other := &model.Series{Name: "Other", Slug: "other"}

	current := seriesPost("part-2", base.AddDate(0, 0, 10), basics)
	others := []model.Post{
		seriesPost("part-3", base.AddDate(0, 0, 20), basics),
		seriesPost("unrelated", base, other),
		seriesPost("part-1", base, basics),
		datedPost("no-series", base),
	}

	group := SeriesPosts(current, others)

	got := make([]string, len(group))
	for i, p := range group {
		got[i] = p.Slug
	}
	want := []string{"part-1", "part-2", "part-3"}
	if len(got) != len(want) {
		t.Fatalf("group = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("group = %v, want %v", got, want)
		}
	}
}

func TestSeriesPostsNameFallback(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	current := seriesPost("a", base, &model.Series{Name: "Unsluggged"})
	others := []model.Post{
		seriesPost("b", base.AddDate(0, 0, 1), &model.Series{Name: "Unsluggged"}),
		seriesPost("c", base, &model.Series{Name: "Different"}),
	}

	group := SeriesPosts(current, others)
	if len(group) != 2 {
		t.Fatalf("expected name-based match, got %+v", group)
	}
}

func TestSeriesPostsDeduplicates(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	basics := &model.Series{Name: "Go Basics", Slug: "go-basics"}

	current := seriesPost("part-1", base, basics)
	others := []model.Post{current}

	group := SeriesPosts(current, others)
	if len(group) != 1 {
		t.Fatalf("expected deduplicated group, got %+v", group)
	}
}

func TestSeriesPostsWithoutSeries(t *testing.T) {
	if group := SeriesPosts(datedPost("solo", time.Now()), nil); group != nil {
		t.Errorf("expected nil for a post without a series, got %+v", group)
	}
}

func TestSeriesTitle(t *testing.T) {
	tests := []struct {
		name   string
		series *model.Series
		want   string
	}{
		{"nil series", nil, ""},
		{"explicit name", &model.Series{Name: "Go Basics", Slug: "go-basics"}, "Go Basics"},
		{"derived from slug", &model.Series{Slug: "advanced-go-patterns"}, "Advanced Go Patterns"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeriesTitle(tt.series); got != tt.want {
				t.Errorf("SeriesTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRandomPosts(t *testing.T) {
	posts := []model.Post{
		datedPost("a", time.Now()),
		datedPost("b", time.Now()),
		datedPost("c", time.Now()),
		datedPost("d", time.Now()),
	}

	picked := RandomPosts(posts, 3)
	if len(picked) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(picked))
	}

	slugs := map[string]bool{}
	for _, p := range picked {
		if slugs[p.Slug] {
			t.Fatalf("duplicate pick %q", p.Slug)
		}
		slugs[p.Slug] = true
	}

	if got := RandomPosts(posts, 10); len(got) != len(posts) {
		t.Errorf("expected all posts when n exceeds the pool, got %d", len(got))
	}
	if got := RandomPosts(nil, 3); len(got) != 0 {
		t.Errorf("expected none from an empty pool, got %d", len(got))
	}

	// The source order must survive the shuffle of the copy.
	for i, slug := range []string{"a", "b", "c", "d"} {
		if posts[i].Slug != slug {
			t.Fatalf("input slice was reordered: %+v", posts)
		}
	}
}
