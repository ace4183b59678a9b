package showcase

import (
	"errors"
	"testing"
	"time"
)

func TestCacheServesStoreContent(t *testing.T) {
	s := testStore(t)
	c := NewContentCache(s, time.Minute)

	posts, err := c.ListBlogPosts()
	if err != nil {
		t.Fatalf("ListBlogPosts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}

	items, err := c.ListContent()
	if err != nil {
		t.Fatalf("ListContent: %v", err)
	}
	// Blogs first, then projects, each in collection order.
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].ItemType() != TypeBlog || items[2].ItemType() != TypeProject {
		t.Errorf("unexpected item order: %v, %v, %v", items[0].ItemType(), items[1].ItemType(), items[2].ItemType())
	}
}

func TestCacheSurvivesStoreClose(t *testing.T) {
	s := testStore(t)
	c := NewContentCache(s, time.Hour)

	if _, err := c.ListBlogPosts(); err != nil {
		t.Fatalf("warm up: %v", err)
	}
	s.Close()

	// Within the TTL the cache answers without touching the store.
	if _, err := c.ListTags(); err != nil {
		t.Errorf("cached read after close: %v", err)
	}
}

func TestCacheInvalidateForcesReload(t *testing.T) {
	s := testStore(t)
	c := NewContentCache(s, time.Hour)

	if _, err := c.ListBlogPosts(); err != nil {
		t.Fatalf("warm up: %v", err)
	}
	s.Close()
	c.Invalidate()

	if _, err := c.ListBlogPosts(); err == nil {
		t.Error("expected a reload error after Invalidate with a closed store")
	}
}

func TestCacheGetByID(t *testing.T) {
	s := testStore(t)
	c := NewContentCache(s, time.Minute)

	p, err := c.GetBlogPost("b1")
	if err != nil {
		t.Fatalf("GetBlogPost: %v", err)
	}
	if p.Title != "First" {
		t.Errorf("title = %q", p.Title)
	}
	if _, err := c.GetProject("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
