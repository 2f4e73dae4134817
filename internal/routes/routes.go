// Package routes mounts the REST surface under /api. Static routes are
// registered before parameterized ones so /categories/filter is never
// swallowed by /categories/:identifier.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"fliquecms/internal/handlers"
	"fliquecms/internal/repository"
	"fliquecms/services"
)

type Deps struct {
	Categories *services.CategoryService
	Posts      *services.PostService
	Comments   *services.CommentService
	Media      *services.MediaService
	WebStories *services.WebStoryService

	TopicRepo     *repository.TopicRepository
	CategoryRepo  *repository.CategoryRepository
	TagRepo       *repository.TagRepository
	AuthorRepo    *repository.AuthorRepository
	AdRepo        *repository.AdRepository
	PlacementRepo *repository.PlacementRepository
}

func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")

	category := &handlers.CategoryHandler{Service: d.Categories}
	categories := api.Group("/categories")
	categories.Post("/", category.Create)
	categories.Get("/", category.List)
	categories.Get("/filter", category.Filter)
	categories.Get("/by-slug/:slug", category.GetBySlug)
	categories.Get("/:identifier", category.Get)
	categories.Put("/:id", category.Update)
	categories.Delete("/:id", category.Delete)

	post := &handlers.PostHandler{Service: d.Posts}
	posts := api.Group("/posts")
	posts.Post("/", post.Create)
	posts.Get("/", post.List)
	posts.Get("/post/*", post.GetByPath)
	posts.Get("/category/:categorySlug/topics", post.TopicsByCategory)
	posts.Get("/category/:categorySlug/topic/:topicId", post.ByCategoryAndTopic)
	posts.Get("/category/:categorySlug/:subcategorySlug/topics", post.TopicsByCategory)
	posts.Get("/category/:categorySlug/:subcategorySlug/topic/:topicId", post.ByCategoryAndTopic)
	posts.Get("/category/:categorySlug/:subcategorySlug", post.ByCategory)
	posts.Get("/category/:categorySlug", post.ByCategory)
	posts.Get("/category-all-blogs/:categorySlug", post.AllByCategory)
	posts.Get("/category-hierarchy/*", post.Hierarchy)
	posts.Get("/:identifier", post.Get)
	posts.Put("/:id", post.Update)
	posts.Delete("/:id", post.Delete)

	comment := &handlers.CommentHandler{Service: d.Comments}
	comments := api.Group("/comments")
	comments.Post("/", comment.Create)
	comments.Get("/", comment.List)
	comments.Post("/bulk", comment.BulkAction)
	comments.Get("/:id", comment.Get)
	comments.Put("/:id", comment.Update)
	comments.Delete("/:id", comment.Delete)

	topic := &handlers.TopicHandler{Topics: d.TopicRepo, Categories: d.CategoryRepo}
	topics := api.Group("/topics")
	topics.Post("/", topic.Create)
	topics.Get("/", topic.List)
	topics.Get("/category/:categoryId", topic.ListByCategory)
	topics.Get("/:id", topic.Get)
	topics.Put("/:id", topic.Update)
	topics.Delete("/:id", topic.Delete)

	tag := &handlers.TagHandler{Repo: d.TagRepo}
	tags := api.Group("/tags")
	tags.Post("/", tag.Create)
	tags.Get("/", tag.List)
	tags.Get("/:id", tag.Get)
	tags.Put("/:id", tag.Update)
	tags.Delete("/:id", tag.Delete)

	author := &handlers.AuthorHandler{Repo: d.AuthorRepo}
	authors := api.Group("/author")
	authors.Post("/", author.Create)
	authors.Get("/", author.List)
	authors.Get("/:id", author.Get)
	authors.Put("/:id", author.Update)
	authors.Delete("/:id", author.Delete)

	ad := &handlers.AdHandler{Repo: d.AdRepo}
	ads := api.Group("/ads")
	ads.Post("/", ad.Create)
	ads.Get("/", ad.List)
	ads.Get("/:id", ad.Get)
	ads.Put("/:id", ad.Update)
	ads.Delete("/:id", ad.Delete)

	placement := &handlers.PlacementHandler{Repo: d.PlacementRepo}
	placements := api.Group("/placement")
	placements.Post("/", placement.Create)
	placements.Get("/", placement.List)
	placements.Get("/:id", placement.Get)
	placements.Put("/:id", placement.Update)
	placements.Delete("/:id", placement.Delete)

	media := &handlers.MediaHandler{Service: d.Media}
	upload := api.Group("/upload")
	upload.Post("/", media.Upload)
	upload.Get("/", media.List)
	upload.Get("/:id", media.Get)
	upload.Put("/:id", media.Update)
	upload.Delete("/:id", media.Delete)

	webStory := &handlers.WebStoryHandler{Service: d.WebStories}
	stories := api.Group("/web-stories")
	stories.Post("/", webStory.Create)
	stories.Get("/", webStory.List)
	stories.Get("/by-category", webStory.ByCategory)
	stories.Get("/:categorySlug/:slug", webStory.GetByPath)
	stories.Get("/:identifier", webStory.Get)
	stories.Put("/:id", webStory.Update)
	stories.Delete("/:id", webStory.Delete)

	storyCategories := api.Group("/web-story-categories")
	storyCategories.Post("/", webStory.CreateCategory)
	storyCategories.Get("/", webStory.ListCategories)
	storyCategories.Get("/:identifier", webStory.GetCategory)
	storyCategories.Put("/:id", webStory.UpdateCategory)
	storyCategories.Delete("/:id", webStory.DeleteCategory)
}
