package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// registeredPaths collects every GET route path the app knows about.
// Registering routes never touches the services, so zero Deps is enough.
func registeredPaths(t *testing.T) map[string]bool {
	t.Helper()
	app := fiber.New()
	Register(app, Deps{})
	paths := map[string]bool{}
	for _, r := range app.GetRoutes() {
		if r.Method == fiber.MethodGet {
			paths[r.Path] = true
		}
	}
	return paths
}

func TestCategoryBrowseRoutesLiveUnderPosts(t *testing.T) {
	paths := registeredPaths(t)

	assert.True(t, paths["/api/posts/category-hierarchy/*"])
	assert.True(t, paths["/api/posts/category-all-blogs/:categorySlug"])
	assert.False(t, paths["/api/category-hierarchy/*"])
	assert.False(t, paths["/api/category-all-blogs/:categorySlug"])
}

func TestWebStoryReadRoutes(t *testing.T) {
	paths := registeredPaths(t)

	assert.True(t, paths["/api/web-stories/by-category"])
	assert.True(t, paths["/api/web-stories/:categorySlug/:slug"])
	assert.True(t, paths["/api/web-story-categories/:identifier"])
}
