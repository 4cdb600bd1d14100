package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fardannozami/portfolio/internal/model"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "posts.json")
	ctx := context.Background()

	saved := []model.Post{
		{
			Slug:     "first",
			Title:    "First",
			Excerpt:  "First",
			Content:  "# hello",
			Date:     "2024-03-01T10:00:00Z",
			ReadTime: "5 min read",
			Tags:     []string{"go"},
			Series:   &model.Series{Name: "Basics", Slug: "basics"},
		},
		{
			Slug:     "second",
			Title:    "Second",
			Excerpt:  "e",
			Date:     "2024-04-01T10:00:00Z",
			ReadTime: "3 min read",
		},
	}

	location, err := store.Save(ctx, saved)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if location == "" {
		t.Error("expected a snapshot location")
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(loaded))
	}
	for i := range loaded {
		if loaded[i].PublishedAt.IsZero() {
			t.Errorf("post %d: expected parsed publish time", i)
		}
		loaded[i].PublishedAt = saved[i].PublishedAt
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("round trip mismatch:\n got:  %+v\n want: %+v", loaded, saved)
	}
}

func TestLocalStoreSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewLocalStore(dir, "posts.json")

	if _, err := store.Save(context.Background(), nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "posts.json")); err != nil {
		t.Errorf("snapshot file missing: %v", err)
	}
}

func TestLocalStoreSaveNilIsEmptyArray(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "posts.json")

	if _, err := store.Save(context.Background(), nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "posts.json"))
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("snapshot is not a JSON array: %v", err)
	}
	if len(raw) != 0 {
		t.Errorf("expected empty array, got %d records", len(raw))
	}
}

func TestLocalStoreLoadMissingFile(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "posts.json")
	if _, err := store.Load(context.Background()); err == nil {
		t.Error("expected an error for a missing snapshot")
	}
}

func TestLocalStoreLoadMalformedSnapshot(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "posts.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewLocalStore(dir, "posts.json")
	if _, err := store.Load(context.Background()); err == nil {
		t.Error("expected an error for a malformed snapshot")
	}
}

func TestLocalStoreLoadDropsInvalidRecords(t *testing.T) {
	dir := t.TempDir()
	snapshot := `[
	  {"slug":"ok","title":"OK","excerpt":"e","date":"2024-01-01T00:00:00Z","readTime":"5 min read"},
	  {"slug":"","title":"missing slug"},
	  {"slug":"no-title","title":""}
	]`
	if err := os.WriteFile(filepath.Join(dir, "posts.json"), []byte(snapshot), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewLocalStore(dir, "posts.json")
	posts, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "ok" {
		t.Errorf("expected only the valid record, got %+v", posts)
	}
}

func TestLocalStoreSaveOverwrites(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "posts.json")
	ctx := context.Background()

	first := []model.Post{{Slug: "a", Title: "A"}}
	second := []model.Post{{Slug: "b", Title: "B"}}

	if _, err := store.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	posts, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 || posts[0].Slug != "b" {
		t.Errorf("expected the second snapshot to replace the first, got %+v", posts)
	}
}
