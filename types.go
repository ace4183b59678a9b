package showcase

// ContentType discriminates the two renderable content kinds. "all" is only
// valid inside SearchFilters.
type ContentType string

const (
	TypeBlog    ContentType = "blog"
	TypeProject ContentType = "project"
	TypeAll     ContentType = "all"
)

// BlogPost is a published article. Posts are immutable seed data; the Type
// field always carries TypeBlog so the discriminant survives JSON encoding.
type BlogPost struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Excerpt     string      `json:"excerpt"`
	Content     string      `json:"content"`
	Author      string      `json:"author"`
	PublishedAt string      `json:"publishedAt"`
	ReadTime    int         `json:"readTime"`
	Tags        []string    `json:"tags"`
	CoverImage  string      `json:"coverImage"`
	Type        ContentType `json:"type"`
}

// Project is a portfolio entry. Immutable seed data, like BlogPost.
type Project struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	LongDescription string      `json:"longDescription"`
	TechStack       []string    `json:"techStack"`
	GithubURL       string      `json:"githubUrl,omitempty"`
	DemoURL         string      `json:"demoUrl,omitempty"`
	Images          []string    `json:"images"`
	CompletedAt     string      `json:"completedAt"`
	Type            ContentType `json:"type"`
}

// ContentItem is the tagged union of BlogPost | Project. The unexported
// marker method seals the interface so every consumer can type-switch
// exhaustively over exactly two cases.
type ContentItem interface {
	ItemType() ContentType
	contentItem()
}

func (p BlogPost) ItemType() ContentType { return TypeBlog }
func (p BlogPost) contentItem()          {}

func (p Project) ItemType() ContentType { return TypeProject }
func (p Project) contentItem()          {}

// SearchFilters narrows a content listing. Zero value matches everything
// once Type defaults to TypeAll.
type SearchFilters struct {
	Query string
	Type  ContentType
	Tags  []string
}
