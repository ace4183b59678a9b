package showcase

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rudra/showcase/blocks"
)

// handleContent serves the cross-type listing: every blog post and project
// matching the query/type/tags criteria, sorted newest first.
func (a *App) handleContent(c echo.Context) error {
	items, err := a.Cache.ListContent()
	if err != nil {
		return err
	}
	f := SearchFilters{
		Query: c.QueryParam("q"),
		Type:  ContentType(c.QueryParam("type")),
		Tags:  FilterEmpty(strings.Split(c.QueryParam("tags"), ",")),
	}
	matched := Filter(items, f)
	sorted := SortByDateDesc(matched)
	if sorted == nil {
		sorted = []ContentItem{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items": sorted,
		"count": len(sorted),
	})
}

func (a *App) handleBlogs(c echo.Context) error {
	posts, err := a.Cache.ListBlogPosts()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"blogs": posts, "count": len(posts)})
}

// blogDetail is a blog post plus its body rendered into content blocks.
type blogDetail struct {
	BlogPost
	Blocks []blocks.Block `json:"blocks"`
}

func (a *App) handleBlog(c echo.Context) error {
	post, err := a.Cache.GetBlogPost(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Blog post not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"blog": blogDetail{
		BlogPost: post,
		Blocks:   blocks.Render(post.Content),
	}})
}

func (a *App) handleProjects(c echo.Context) error {
	projects, err := a.Cache.ListProjects()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"projects": projects, "count": len(projects)})
}

// projectDetail is a project plus its long description rendered into
// content blocks.
type projectDetail struct {
	Project
	Blocks []blocks.Block `json:"blocks"`
}

func (a *App) handleProject(c echo.Context) error {
	project, err := a.Cache.GetProject(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Project not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"project": projectDetail{
		Project: project,
		Blocks:  blocks.Render(project.LongDescription),
	}})
}

func (a *App) handleTags(c echo.Context) error {
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	if tags == nil {
		tags = []string{}
	}
	return c.JSON(http.StatusOK, echo.Map{"tags": tags})
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}
