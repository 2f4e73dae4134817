package dto

import (
	"time"

	"fliquecms/model"
)

type CreatePostInput struct {
	Title            string            `json:"title"`
	Slug             string            `json:"slug"`
	ShortDescription string            `json:"shortDescription"`
	LongDescription  string            `json:"longDescription"`
	FeaturedImage    string            `json:"featuredImage"`
	FeaturedImageAlt string            `json:"featuredImageAlt"`
	BannerImage      string            `json:"bannerImage"`
	BannerImageAlt   string            `json:"bannerImageAlt"`
	MetaTitle        string            `json:"metaTitle"`
	MetaDescription  string            `json:"metaDescription"`
	MetaKeywords     []string          `json:"metaKeywords"`
	Author           string            `json:"author"`
	Components       []model.Component `json:"components"`
	CategoryID       string            `json:"categoryId"`
	TopicID          string            `json:"topicId"`
	PlacementTags    []string          `json:"Placement"`
	Features         []string          `json:"features"`
	Status           string            `json:"status"`
	PublishDate      *time.Time        `json:"publishDate"`
}

// UpdatePostInput uses pointers so a field can be told apart from its zero
// value; nil means "leave unchanged".
type UpdatePostInput struct {
	Title            *string            `json:"title"`
	Slug             *string            `json:"slug"`
	ShortDescription *string            `json:"shortDescription"`
	LongDescription  *string            `json:"longDescription"`
	FeaturedImage    *string            `json:"featuredImage"`
	FeaturedImageAlt *string            `json:"featuredImageAlt"`
	BannerImage      *string            `json:"bannerImage"`
	BannerImageAlt   *string            `json:"bannerImageAlt"`
	MetaTitle        *string            `json:"metaTitle"`
	MetaDescription  *string            `json:"metaDescription"`
	MetaKeywords     *[]string          `json:"metaKeywords"`
	Author           *string            `json:"author"`
	Components       *[]model.Component `json:"components"`
	CategoryID       *string            `json:"categoryId"`
	TopicID          *string            `json:"topicId"`
	PlacementTags    *[]string          `json:"Placement"`
	Features         *[]string          `json:"features"`
	Status           *string            `json:"status"`
	PublishDate      *time.Time         `json:"publishDate"`
}

// PostView is a post with its references resolved for the response body.
type PostView struct {
	model.Post
	CategoryDetail   *CategoryView `json:"categoryDetail,omitempty"`
	CategoryPathRefs []CategoryRef `json:"categoryPathRefs,omitempty"`
	TopicDetail      *model.Topic  `json:"topicDetail,omitempty"`
}

// TopicPosts groups a topic with the posts attached to it.
type TopicPosts struct {
	Topic model.Topic `json:"topic"`
	Blogs []PostView  `json:"blogs"`
}

// CategoryPosts is the grouped listing for one category: posts per topic plus
// the posts carrying no topic.
type CategoryPosts struct {
	CategoryInfo model.Category `json:"categoryInfo"`
	TopicBlogs   []TopicPosts   `json:"topicBlogs"`
	GeneralBlogs []PostView     `json:"generalBlogs"`
}

// CategoryHierarchy is the recursive category/topic/post tree.
type CategoryHierarchy struct {
	Category       CategoryRef          `json:"category"`
	TopiclessBlogs []PostView           `json:"topiclessBlogs"`
	TopicBlogs     []TopicPosts         `json:"topicBlogs"`
	Subcategories  []*CategoryHierarchy `json:"subcategories"`
}
