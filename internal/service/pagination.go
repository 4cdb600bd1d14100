package service

import (
	"strconv"

	"github.com/fardannozami/portfolio/internal/model"
)

// DefaultPageSize is the fixed listing page size.
const DefaultPageSize = 10

// Page is one slice of the post listing.
type Page struct {
	Posts       []model.Post `json:"posts"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	PageSize    int          `json:"pageSize"`
	TotalItems  int          `json:"totalItems"`
}

// Paginate slices posts for the page named by the raw query parameter.
// Non-numeric or missing parameters resolve to page 1; out-of-range pages
// are clamped into [1, totalPages].
func Paginate(posts []model.Post, pageParam string, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	requested, err := strconv.Atoi(pageParam)
	if err != nil || requested < 1 {
		requested = 1
	}

	totalPages := (len(posts) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if requested > totalPages {
		requested = totalPages
	}

	start := (requested - 1) * pageSize
	end := start + pageSize
	if start > len(posts) {
		start = len(posts)
	}
	if end > len(posts) {
		end = len(posts)
	}

	return Page{
		Posts:       posts[start:end],
		CurrentPage: requested,
		TotalPages:  totalPages,
		PageSize:    pageSize,
		TotalItems:  len(posts),
	}
}
