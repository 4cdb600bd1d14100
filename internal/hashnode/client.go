// Package hashnode talks to the Hashnode GraphQL API and normalizes its
// post shape into the internal model. It is deliberately not a cache:
// every call fetches live data, and the snapshot layer sits above it.
package hashnode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fardannozami/portfolio/internal/model"
)

const (
	defaultReadTime = "5 min read"
	pageSize        = 100
)

type Client struct {
	endpoint   string
	host       string
	httpClient *http.Client
}

func NewClient(endpoint, host string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		host:       host,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// seriesFragment is the sub-selection that older publication schemas
// reject. Queries are issued with it first and retried without it when the
// API reports errors.
const seriesFragment = `
            series {
              name
              slug
            }`

func postsQuery(nonce string, includeSeries bool) string {
	series := ""
	if includeSeries {
		series = seriesFragment
	}
	return fmt.Sprintf(`
  query PublicationPosts($host: String!, $after: String) {
    _cacheBuster_%s: __typename
    publication(host: $host) {
      posts(first: %d, after: $after) {
        pageInfo {
          hasNextPage
          endCursor
        }
        edges {
          node {
            slug
            title
            brief
            publishedAt
            readTimeInMinutes
            tags { name }
            coverImage { url }
            content { markdown }%s
          }
        }
      }
    }
  }`, nonce, pageSize, series)
}

func postQuery(nonce string, includeSeries bool) string {
	series := ""
	if includeSeries {
		series = seriesFragment
	}
	return fmt.Sprintf(`
  query PublicationPost($host: String!, $slug: String!) {
    _cacheBuster_%s: __typename
    publication(host: $host) {
      post(slug: $slug) {
        slug
        title
        brief
        publishedAt
        readTimeInMinutes
        tags { name }
        coverImage { url }
        content { markdown }%s
      }
    }
  }`, nonce, series)
}

type apiPost struct {
	Slug              string `json:"slug"`
	Title             string `json:"title"`
	Brief             string `json:"brief"`
	PublishedAt       string `json:"publishedAt"`
	ReadTimeInMinutes *int   `json:"readTimeInMinutes"`
	Tags              []struct {
		Name string `json:"name"`
	} `json:"tags"`
	CoverImage *struct {
		URL string `json:"url"`
	} `json:"coverImage"`
	Content *struct {
		Markdown string `json:"markdown"`
	} `json:"content"`
	Series *struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"series"`
}

type postsResponse struct {
	Publication *struct {
		Posts *struct {
			PageInfo struct {
				HasNextPage bool   `json:"hasNextPage"`
				EndCursor   string `json:"endCursor"`
			} `json:"pageInfo"`
			Edges []struct {
				Node *apiPost `json:"node"`
			} `json:"edges"`
		} `json:"posts"`
	} `json:"publication"`
}

type postResponse struct {
	Publication *struct {
		Post *apiPost `json:"post"`
	} `json:"publication"`
}

// AllPosts fetches the first page of publication posts. Failures are
// logged and yield an empty slice; content is never critical to page
// availability. The first-page cap is a known limitation: when the API
// signals more pages, a warning is logged instead of paginating.
func (c *Client) AllPosts(ctx context.Context) []model.Post {
	var resp postsResponse
	err := c.fetchWithSeriesFallback(ctx, postsQuery, map[string]any{"host": c.host}, &resp)
	if err != nil {
		slog.Error("hashnode: failed to fetch posts", "error", err)
		return nil
	}

	if resp.Publication == nil || resp.Publication.Posts == nil {
		return nil
	}

	if resp.Publication.Posts.PageInfo.HasNextPage {
		slog.Warn("hashnode: publication has more posts than one page, snapshot is truncated",
			"page_size", pageSize)
	}

	var posts []model.Post
	for _, edge := range resp.Publication.Posts.Edges {
		post := normalize(edge.Node)
		if post == nil {
			continue
		}
		posts = append(posts, *post)
	}
	return posts
}

// PostBySlug fetches a single post. Returns nil when the post does not
// exist or the fetch fails.
func (c *Client) PostBySlug(ctx context.Context, slug string) *model.Post {
	var resp postResponse
	err := c.fetchWithSeriesFallback(ctx, postQuery, map[string]any{"host": c.host, "slug": slug}, &resp)
	if err != nil {
		slog.Error("hashnode: failed to fetch post", "slug", slug, "error", err)
		return nil
	}

	if resp.Publication == nil {
		return nil
	}
	return normalize(resp.Publication.Post)
}

type queryBuilder func(nonce string, includeSeries bool) string

func (c *Client) fetchWithSeriesFallback(ctx context.Context, build queryBuilder, variables map[string]any, out any) error {
	if c.host == "" {
		return errors.New("hashnode host not configured")
	}

	nonce := fmt.Sprint(time.Now().UnixMilli())

	err := c.request(ctx, build(nonce, true), variables, out)
	if err == nil {
		return nil
	}
	slog.Debug("hashnode: query with series failed, retrying without", "error", err)

	return c.request(ctx, build(nonce, false), variables, out)
}

func (c *Client) request(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Never reuse an HTTP-level cache; the snapshot layer is the only cache.
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	err = json.NewDecoder(resp.Body).Decode(&envelope)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return errors.New(strings.Join(messages, ", "))
	}

	if envelope.Data == nil {
		return errors.New("empty response data")
	}
	return json.Unmarshal(envelope.Data, out)
}

// normalize maps an API post into the internal shape. Records missing a
// slug or title are invalid and dropped; tags are filtered for empty
// names; excerpt and read time get their documented defaults.
func normalize(node *apiPost) *model.Post {
	if node == nil || node.Slug == "" || node.Title == "" {
		return nil
	}

	post := &model.Post{
		Slug:    node.Slug,
		Title:   node.Title,
		Excerpt: node.Brief,
		Date:    node.PublishedAt,
	}
	if post.Excerpt == "" {
		post.Excerpt = node.Title
	}
	if node.Content != nil {
		post.Content = node.Content.Markdown
	}
	if node.ReadTimeInMinutes != nil && *node.ReadTimeInMinutes > 0 {
		post.ReadTime = fmt.Sprintf("%d min read", *node.ReadTimeInMinutes)
	} else {
		post.ReadTime = defaultReadTime
	}
	for _, tag := range node.Tags {
		if tag.Name != "" {
			post.Tags = append(post.Tags, tag.Name)
		}
	}
	if node.CoverImage != nil {
		post.Image = node.CoverImage.URL
	}
	if node.Series != nil && node.Series.Name != "" {
		post.Series = &model.Series{Name: node.Series.Name, Slug: node.Series.Slug}
	}
	post.ParseDate()

	return post
}
