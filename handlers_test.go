package showcase

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *App {
	t.Helper()
	app := New(SiteConfig{
		Name:          "Test Showcase",
		URL:           "http://test.local",
		SessionSecret: "test-secret",
	})
	require.NoError(t, app.setup())
	t.Cleanup(func() { app.Close() })
	return app
}

func doGET(app *App, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func TestContentEndpointListsEverything(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/api/content")

	require.Equal(t, http.StatusOK, rec.Code)
	body := jsonBody(t, rec)
	items := body["items"].([]any)
	assert.Equal(t, float64(len(items)), body["count"])
	assert.Equal(t, len(SeedBlogPosts())+len(SeedProjects()), len(items))

	// Newest first across both collections.
	var prev string
	for i, raw := range items {
		item := raw.(map[string]any)
		date, _ := item["publishedAt"].(string)
		if date == "" {
			date, _ = item["completedAt"].(string)
		}
		if i > 0 && date > prev {
			t.Errorf("item %d dated %s appears after %s", i, date, prev)
		}
		prev = date
	}
}

func TestContentEndpointTypeFilter(t *testing.T) {
	app := testApp(t)

	rec := doGET(app, "/api/content?type=blog")
	require.Equal(t, http.StatusOK, rec.Code)
	items := jsonBody(t, rec)["items"].([]any)
	require.Len(t, items, len(SeedBlogPosts()))
	for _, raw := range items {
		assert.Equal(t, "blog", raw.(map[string]any)["type"])
	}

	rec = doGET(app, "/api/content?type=project")
	items = jsonBody(t, rec)["items"].([]any)
	require.Len(t, items, len(SeedProjects()))
	for _, raw := range items {
		assert.Equal(t, "project", raw.(map[string]any)["type"])
	}
}

func TestContentEndpointQueryFilter(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/api/content?q=container+queries")

	require.Equal(t, http.StatusOK, rec.Code)
	items := jsonBody(t, rec)["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].(map[string]any)["id"])
}

func TestContentEndpointNoMatches(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/api/content?q=zzzznothing")

	require.Equal(t, http.StatusOK, rec.Code)
	body := jsonBody(t, rec)
	assert.Equal(t, float64(0), body["count"])
	// Empty result is a JSON array, not null.
	assert.Equal(t, []any{}, body["items"])
}

func TestContentEndpointTagsFilter(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/api/content?tags=TypeScript")

	require.Equal(t, http.StatusOK, rec.Code)
	items := jsonBody(t, rec)["items"].([]any)
	require.NotEmpty(t, items)
	for _, raw := range items {
		item := raw.(map[string]any)
		var tags []any
		if item["type"] == "blog" {
			tags = item["tags"].([]any)
		} else {
			tags = item["techStack"].([]any)
		}
		found := false
		for _, tag := range tags {
			if tag == "TypeScript" {
				found = true
			}
		}
		assert.True(t, found, "item %v does not carry the selected tag", item["id"])
	}
}

func TestBlogsEndpoint(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/api/blogs")

	require.Equal(t, http.StatusOK, rec.Code)
	body := jsonBody(t, rec)
	blogs := body["blogs"].([]any)
	assert.Len(t, blogs, len(SeedBlogPosts()))
	assert.Equal(t, float64(len(blogs)), body["count"])
}

func TestBlogDetailIncludesBlocks(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/api/blogs/1")

	require.Equal(t, http.StatusOK, rec.Code)
	blog := jsonBody(t, rec)["blog"].(map[string]any)
	assert.Equal(t, "1", blog["id"])

	renderedBlocks := blog["blocks"].([]any)
	require.NotEmpty(t, renderedBlocks)
	first := renderedBlocks[0].(map[string]any)
	assert.Equal(t, "heading", first["kind"])
	assert.Equal(t, float64(1), first["level"])
}

func TestBlogDetailNotFound(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/api/blogs/999")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Blog post not found", jsonBody(t, rec)["error"])
}

func TestProjectDetail(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/api/projects/p1")

	require.Equal(t, http.StatusOK, rec.Code)
	project := jsonBody(t, rec)["project"].(map[string]any)
	assert.Equal(t, "p1", project["id"])
	assert.NotEmpty(t, project["blocks"])

	rec = doGET(app, "/api/projects/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found", jsonBody(t, rec)["error"])
}

func TestTagsEndpointSortedAndDeduplicated(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/api/tags")

	require.Equal(t, http.StatusOK, rec.Code)
	raw := jsonBody(t, rec)["tags"].([]any)
	require.NotEmpty(t, raw)

	seen := make(map[string]bool)
	var prev string
	for i, v := range raw {
		tag := v.(string)
		assert.False(t, seen[tag], "duplicate tag %q", tag)
		seen[tag] = true
		if i > 0 && tag < prev {
			t.Errorf("tags out of order: %q before %q", prev, tag)
		}
		prev = tag
	}
}

func TestPlaceholderEndpoint(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/api/placeholder/120/80")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	// PNG magic bytes.
	assert.Equal(t, "\x89PNG", rec.Body.String()[:4])
}

func TestPlaceholderEndpointInvalidDimensions(t *testing.T) {
	app := testApp(t)
	for _, path := range []string{
		"/api/placeholder/abc/100",
		"/api/placeholder/100/0",
		"/api/placeholder/-5/100",
	} {
		rec := doGET(app, path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "path %s", path)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", jsonBody(t, rec)["status"])
}

func TestFeedEndpoint(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/feed.xml")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/rss+xml")
	assert.Contains(t, rec.Body.String(), "<rss")
	assert.Contains(t, rec.Body.String(), "http://test.local/blogs/1")
}

func TestSitemapEndpoint(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/sitemap.xml")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<urlset")
	assert.Contains(t, body, "http://test.local/projects/p1")
}

func TestRobotsEndpoint(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/robots.txt")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: http://test.local/sitemap.xml")
}

func TestUnknownRouteReturnsJSONError(t *testing.T) {
	app := testApp(t)
	rec := doGET(app, "/api/nope")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, jsonBody(t, rec)["error"])
}
