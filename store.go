package showcase

import (
	"database/sql"
	"sort"
	"strings"
)

// ErrNotFound is returned when a requested content item does not exist.
var ErrNotFound = sql.ErrNoRows

// ContentStore holds the seed content collections in an in-memory SQLite
// database. The store is read-only after seeding; it exposes accessors for
// the two collections and the derived tag index.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore opens an in-memory SQLite database, creates the schema,
// and loads the given fixtures. The database lives and dies with the
// process; nothing is ever written to disk.
func NewContentStore(posts []BlogPost, projects []Project) (*ContentStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// A :memory: database exists per connection, so the pool must be
	// pinned to a single one.
	db.SetMaxOpenConns(1)
	s := &ContentStore{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.seed(posts, projects); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *ContentStore) Close() error {
	return s.db.Close()
}

func (s *ContentStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE blog_posts (
    seq INTEGER PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    excerpt TEXT NOT NULL,
    content TEXT NOT NULL,
    author TEXT NOT NULL,
    published_at TEXT NOT NULL,
    read_time INTEGER NOT NULL,
    tags TEXT NOT NULL,
    cover_image TEXT NOT NULL
);
CREATE TABLE projects (
    seq INTEGER PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    long_description TEXT NOT NULL,
    tech_stack TEXT NOT NULL,
    github_url TEXT NOT NULL,
    demo_url TEXT NOT NULL,
    images TEXT NOT NULL,
    completed_at TEXT NOT NULL
);
`)
	return err
}

// seed inserts the fixtures preserving collection order via seq, so that
// listings come back in the original order the stable sort depends on.
func (s *ContentStore) seed(posts []BlogPost, projects []Project) error {
	for i, p := range posts {
		_, err := s.db.Exec(`INSERT INTO blog_posts (seq, id, title, excerpt, content, author, published_at, read_time, tags, cover_image) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, p.ID, p.Title, p.Excerpt, p.Content, p.Author, p.PublishedAt, p.ReadTime, joinList(p.Tags), p.CoverImage)
		if err != nil {
			return err
		}
	}
	for i, p := range projects {
		_, err := s.db.Exec(`INSERT INTO projects (seq, id, title, description, long_description, tech_stack, github_url, demo_url, images, completed_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, p.ID, p.Title, p.Description, p.LongDescription, joinList(p.TechStack), p.GithubURL, p.DemoURL, joinList(p.Images), p.CompletedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListBlogPosts returns all blog posts in collection order.
func (s *ContentStore) ListBlogPosts() ([]BlogPost, error) {
	rows, err := s.db.Query(`SELECT id, title, excerpt, content, author, published_at, read_time, tags, cover_image FROM blog_posts ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListProjects returns all projects in collection order.
func (s *ContentStore) ListProjects() ([]Project, error) {
	rows, err := s.db.Query(`SELECT id, title, description, long_description, tech_stack, github_url, demo_url, images, completed_at FROM projects ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetBlogPost returns a single blog post by id, or ErrNotFound.
func (s *ContentStore) GetBlogPost(id string) (BlogPost, error) {
	row := s.db.QueryRow(`SELECT id, title, excerpt, content, author, published_at, read_time, tags, cover_image FROM blog_posts WHERE id = ?`, id)
	return scanBlogPost(row)
}

// GetProject returns a single project by id, or ErrNotFound.
func (s *ContentStore) GetProject(id string) (Project, error) {
	row := s.db.QueryRow(`SELECT id, title, description, long_description, tech_stack, github_url, demo_url, images, completed_at FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

// ListTags returns the derived tag index: the sorted, deduplicated union of
// every blog tag and project tech stack entry, original casing preserved.
func (s *ContentStore) ListTags() ([]string, error) {
	rows, err := s.db.Query(`SELECT tags FROM blog_posts UNION ALL SELECT tech_stack FROM projects`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		for _, t := range splitList(tags) {
			set[t] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	result := make([]string, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlogPost(row rowScanner) (BlogPost, error) {
	var p BlogPost
	var tags string
	if err := row.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Author, &p.PublishedAt, &p.ReadTime, &tags, &p.CoverImage); err != nil {
		return BlogPost{}, err
	}
	p.Tags = splitList(tags)
	p.Type = TypeBlog
	return p, nil
}

func scanProject(row rowScanner) (Project, error) {
	var p Project
	var stack, images string
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.LongDescription, &stack, &p.GithubURL, &p.DemoURL, &images, &p.CompletedAt); err != nil {
		return Project{}, err
	}
	p.TechStack = splitList(stack)
	p.Images = splitList(images)
	p.Type = TypeProject
	return p, nil
}

// joinList encodes a string slice as a delimited column value (e.g. ",go,web,").
func joinList(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return "," + strings.Join(vals, ",") + ","
}

// splitList decodes a delimited column value back into a slice.
func splitList(s string) []string {
	s = strings.Trim(s, ",")
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
