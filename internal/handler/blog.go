package handler

import (
	"net/http"

	"github.com/fardannozami/portfolio/internal/highlight"
	"github.com/fardannozami/portfolio/internal/markdown"
	"github.com/fardannozami/portfolio/internal/model"
	"github.com/fardannozami/portfolio/internal/service"
)

const relatedPostCount = 3

type BlogHandler struct {
	content *service.ContentService
}

func NewBlogHandler(content *service.ContentService) *BlogHandler {
	return &BlogHandler{content: content}
}

// listedPost is a post without its markdown body, for listings.
type listedPost struct {
	Slug     string        `json:"slug"`
	Title    string        `json:"title"`
	Excerpt  string        `json:"excerpt"`
	Date     string        `json:"date"`
	ReadTime string        `json:"readTime"`
	Tags     []string      `json:"tags"`
	Image    string        `json:"image,omitempty"`
	Series   *model.Series `json:"series,omitempty"`
}

// renderedBlock is a parsed markdown block plus, for code blocks, the
// highlighted HTML and the language color class.
type renderedBlock struct {
	markdown.Block
	Highlighted   string `json:"highlighted,omitempty"`
	LanguageClass string `json:"languageClass,omitempty"`
}

// ListPosts serves the paginated listing, newest first, page size 10.
// An empty cache degrades to an empty page, never an error.
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts := h.content.Posts(r.Context())
	page := service.Paginate(posts, r.URL.Query().Get("page"), service.DefaultPageSize)

	listed := make([]listedPost, 0, len(page.Posts))
	for _, post := range page.Posts {
		listed = append(listed, toListedPost(post))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"posts":       listed,
		"currentPage": page.CurrentPage,
		"totalPages":  page.TotalPages,
		"pageSize":    page.PageSize,
		"totalItems":  page.TotalItems,
	})
}

// ShowPost serves one post with its rendered body, series posts, and a
// few random related picks.
func (h *BlogHandler) ShowPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	post := h.content.Post(r.Context(), slug)
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	all := h.content.Posts(r.Context())

	others := make([]model.Post, 0, len(all))
	for _, p := range all {
		if p.Slug != post.Slug {
			others = append(others, p)
		}
	}

	series := service.SeriesPosts(*post, others)
	seriesListed := make([]listedPost, 0, len(series))
	for _, p := range series {
		seriesListed = append(seriesListed, toListedPost(p))
	}

	related := make([]listedPost, 0, relatedPostCount)
	for _, p := range service.RandomPosts(others, relatedPostCount) {
		related = append(related, toListedPost(p))
	}

	blocks := markdown.Parse(post.Content)

	writeJSON(w, http.StatusOK, map[string]any{
		"post":        toListedPost(*post),
		"blocks":      renderBlocks(blocks),
		"html":        markdown.RenderHTML(blocks, highlight.Highlight),
		"series":      seriesListed,
		"seriesTitle": service.SeriesTitle(post.Series),
		"related":     related,
	})
}

// RedirectLegacy permanently redirects old /blog/<slug> links to the
// canonical /<slug> path.
func (h *BlogHandler) RedirectLegacy(w http.ResponseWriter, r *http.Request) {
	slug := service.NormalizeSlug(r.PathValue("slug"))
	http.Redirect(w, r, "/"+slug, http.StatusMovedPermanently)
}

func toListedPost(post model.Post) listedPost {
	return listedPost{
		Slug:     post.Slug,
		Title:    post.Title,
		Excerpt:  post.Excerpt,
		Date:     post.Date,
		ReadTime: post.ReadTime,
		Tags:     post.Tags,
		Image:    post.Image,
		Series:   post.Series,
	}
}

func renderBlocks(blocks []markdown.Block) []renderedBlock {
	rendered := make([]renderedBlock, 0, len(blocks))
	for _, block := range blocks {
		rb := renderedBlock{Block: block}
		if block.Kind == markdown.KindCode {
			rb.Highlighted = highlight.Highlight(block.Code, block.Lang)
			rb.LanguageClass = highlight.LanguageClass(block.Lang)
		}
		rendered = append(rendered, rb)
	}
	return rendered
}
