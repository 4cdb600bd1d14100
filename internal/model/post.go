package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Post is a single blog article as persisted in the snapshot document.
// The JSON tags define the snapshot wire format; PublishedAt is derived
// from Date at normalization time and never serialized.
type Post struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Date     string   `json:"date"`
	ReadTime string   `json:"readTime"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image,omitempty"`
	Series   *Series  `json:"series,omitempty"`

	PublishedAt time.Time `json:"-"`
}

// Series groups posts into an ordered reading sequence.
type Series struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// Validate enforces the minimal shape a post must have to be served.
// Records failing this are dropped at the fetch and load boundaries.
func (p Post) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Slug, validation.Required),
		validation.Field(&p.Title, validation.Required),
	)
}

// ParseDate resolves the publication timestamp from the raw date string.
// An unparseable date yields the zero time, which sorts after every valid
// timestamp in the newest-first listing and renders as an empty date.
func (p *Post) ParseDate() {
	if p.Date == "" {
		return
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		t, err := time.Parse(layout, p.Date)
		if err == nil {
			p.PublishedAt = t
			return
		}
	}
}
