package service

import (
	"fmt"
	"testing"

	"github.com/fardannozami/portfolio/internal/model"
)

func makePosts(n int) []model.Post {
	posts := make([]model.Post, n)
	for i := range posts {
		posts[i] = model.Post{Slug: fmt.Sprintf("post-%d", i), Title: fmt.Sprintf("Post %d", i)}
	}
	return posts
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		pageParam   string
		wantPage    int
		wantTotal   int
		wantCount   int
		wantFirstID string
	}{
		{"first page full", 25, "1", 1, 3, 10, "post-0"},
		{"middle page", 25, "2", 2, 3, 10, "post-10"},
		{"last page partial", 25, "3", 3, 3, 5, "post-20"},
		{"missing param defaults to first", 25, "", 1, 3, 10, "post-0"},
		{"garbage param defaults to first", 25, "abc", 1, 3, 10, "post-0"},
		{"zero clamps to first", 25, "0", 1, 3, 10, "post-0"},
		{"negative clamps to first", 25, "-2", 1, 3, 10, "post-0"},
		{"beyond range clamps to last", 25, "99", 3, 3, 5, "post-20"},
		{"exact multiple", 20, "2", 2, 2, 10, "post-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(makePosts(tt.total), tt.pageParam, DefaultPageSize)

			if page.CurrentPage != tt.wantPage {
				t.Errorf("CurrentPage = %d, want %d", page.CurrentPage, tt.wantPage)
			}
			if page.TotalPages != tt.wantTotal {
				t.Errorf("TotalPages = %d, want %d", page.TotalPages, tt.wantTotal)
			}
			if len(page.Posts) != tt.wantCount {
				t.Fatalf("len(Posts) = %d, want %d", len(page.Posts), tt.wantCount)
			}
			if page.Posts[0].Slug != tt.wantFirstID {
				t.Errorf("first slug = %q, want %q", page.Posts[0].Slug, tt.wantFirstID)
			}
			if page.TotalItems != tt.total {
				t.Errorf("TotalItems = %d, want %d", page.TotalItems, tt.total)
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate(nil, "5", DefaultPageSize)

	if page.CurrentPage != 1 || page.TotalPages != 1 {
		t.Errorf("empty listing pages = %d/%d, want 1/1", page.CurrentPage, page.TotalPages)
	}
	if len(page.Posts) != 0 {
		t.Errorf("expected no posts, got %d", len(page.Posts))
	}
	if page.TotalItems != 0 {
		t.Errorf("TotalItems = %d, want 0", page.TotalItems)
	}
}

func TestPaginateDefaultsPageSize(t *testing.T) {
	page := Paginate(makePosts(15), "1", 0)
	if page.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", page.PageSize, DefaultPageSize)
	}
	if len(page.Posts) != DefaultPageSize {
		t.Errorf("len(Posts) = %d, want %d", len(page.Posts), DefaultPageSize)
	}
}
