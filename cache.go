package showcase

import (
	"sync"
	"time"
)

// ContentCache fronts the ContentStore with a TTL so listing and tag-index
// queries do not hit SQLite on every request. Safe for concurrent use.
type ContentCache struct {
	mu       sync.RWMutex
	posts    []BlogPost
	projects []Project
	tags     []string
	fetched  time.Time
	ttl      time.Duration
	store    *ContentStore
}

// NewContentCache creates a ContentCache backed by the given store.
func NewContentCache(s *ContentStore, ttl time.Duration) *ContentCache {
	return &ContentCache{store: s, ttl: ttl}
}

func (c *ContentCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.projects = nil
	c.tags = nil
	c.mu.Unlock()
}

func (c *ContentCache) load() error {
	if c.valid() {
		return nil
	}
	posts, err := c.store.ListBlogPosts()
	if err != nil {
		return err
	}
	projects, err := c.store.ListProjects()
	if err != nil {
		return err
	}
	tags, err := c.store.ListTags()
	if err != nil {
		return err
	}
	c.posts = posts
	c.projects = projects
	c.tags = tags
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns the cached collections after ensuring the cache is
// fresh. It tries a read lock first; only takes a write lock if a reload is
// needed.
func (c *ContentCache) ensureLoaded() ([]BlogPost, []Project, []string, error) {
	c.mu.RLock()
	if c.valid() {
		posts, projects, tags := c.posts, c.projects, c.tags
		c.mu.RUnlock()
		return posts, projects, tags, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, nil, err
	}
	return c.posts, c.projects, c.tags, nil
}

// ListBlogPosts returns all blog posts in collection order.
func (c *ContentCache) ListBlogPosts() ([]BlogPost, error) {
	posts, _, _, err := c.ensureLoaded()
	return posts, err
}

// ListProjects returns all projects in collection order.
func (c *ContentCache) ListProjects() ([]Project, error) {
	_, projects, _, err := c.ensureLoaded()
	return projects, err
}

// ListContent returns the combined collection, blog posts first, each in
// collection order.
func (c *ContentCache) ListContent() ([]ContentItem, error) {
	posts, projects, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	items := make([]ContentItem, 0, len(posts)+len(projects))
	for _, p := range posts {
		items = append(items, p)
	}
	for _, p := range projects {
		items = append(items, p)
	}
	return items, nil
}

// ListTags returns the derived tag index.
func (c *ContentCache) ListTags() ([]string, error) {
	_, _, tags, err := c.ensureLoaded()
	return tags, err
}

// GetBlogPost returns a single blog post by id from the cache.
func (c *ContentCache) GetBlogPost(id string) (BlogPost, error) {
	posts, _, _, err := c.ensureLoaded()
	if err != nil {
		return BlogPost{}, err
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}

// GetProject returns a single project by id from the cache.
func (c *ContentCache) GetProject(id string) (Project, error) {
	_, projects, _, err := c.ensureLoaded()
	if err != nil {
		return Project{}, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, ErrNotFound
}
