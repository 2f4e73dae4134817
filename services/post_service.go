package services

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/dto"
	"fliquecms/internal/apperr"
	"fliquecms/internal/repository"
	"fliquecms/internal/utils"
	"fliquecms/model"
)

const (
	maxShortDescription = 300
	maxMetaTitle        = 60
	maxMetaDescription  = 160
)

// PostService orchestrates the post lifecycle: slug and full-path derivation
// on create/update, lookups by id, slug or full category path, and the
// scheduled-to-published promotion the sweep drives.
type PostService struct {
	posts      *repository.PostRepository
	categories *repository.CategoryRepository
	topics     *repository.TopicRepository
	now        func() time.Time
}

func NewPostService(posts *repository.PostRepository, categories *repository.CategoryRepository, topics *repository.TopicRepository) *PostService {
	return &PostService{posts: posts, categories: categories, topics: topics, now: time.Now}
}

func (s *PostService) fetchCategory(ctx context.Context, id bson.ObjectID) (*model.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *PostService) Create(ctx context.Context, in dto.CreatePostInput) (*dto.PostView, error) {
	if in.Title == "" {
		return nil, apperr.New(apperr.Validation, "title is required")
	}
	categoryID, err := parseID(in.CategoryID, "categoryId")
	if err != nil {
		return nil, err
	}
	topicID, err := parseOptionalID(&in.TopicID, "topicId")
	if err != nil {
		return nil, err
	}
	if err := validatePostFields(in.ShortDescription, in.MetaTitle, in.MetaDescription, in.Components); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.PostDraft
	}
	if err := validateStatus(status, in.PublishDate); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	post := model.Post{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		LongDescription:  in.LongDescription,
		FeaturedImage:    in.FeaturedImage,
		FeaturedImageAlt: in.FeaturedImageAlt,
		BannerImage:      in.BannerImage,
		BannerImageAlt:   in.BannerImageAlt,
		MetaTitle:        in.MetaTitle,
		MetaDescription:  in.MetaDescription,
		MetaKeywords:     in.MetaKeywords,
		Author:           in.Author,
		Components:       in.Components,
		Category:         categoryID,
		PlacementTags:    in.PlacementTags,
		Topic:            topicID,
		Status:           status,
		PublishDate:      in.PublishDate,
		Features:         in.Features,
		UniqueIdentifier: utils.NewToken(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if post.Author == "" {
		post.Author = "Admin"
	}
	if post.PlacementTags == nil {
		post.PlacementTags = []string{}
	}

	base := in.Slug
	if base == "" {
		base = in.Title
	}
	if err := s.deriveSlugAndPath(ctx, &post, base); err != nil {
		return nil, err
	}

	saved, err := s.posts.Insert(ctx, post)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, saved)
}

// Update applies the provided fields. uniqueIdentifier is immutable and is
// never taken from input; a slug or category change recomputes the slug,
// categoryPath, fullPathSlug and displayedWithin together.
func (s *PostService) Update(ctx context.Context, idHex string, in dto.UpdatePostInput) (*dto.PostView, error) {
	id, err := parseID(idHex, "post id")
	if err != nil {
		return nil, err
	}
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&post.Title, in.Title)
	applyString(&post.ShortDescription, in.ShortDescription)
	applyString(&post.LongDescription, in.LongDescription)
	applyString(&post.FeaturedImage, in.FeaturedImage)
	applyString(&post.FeaturedImageAlt, in.FeaturedImageAlt)
	applyString(&post.BannerImage, in.BannerImage)
	applyString(&post.BannerImageAlt, in.BannerImageAlt)
	applyString(&post.MetaTitle, in.MetaTitle)
	applyString(&post.MetaDescription, in.MetaDescription)
	applyString(&post.Author, in.Author)
	if in.MetaKeywords != nil {
		post.MetaKeywords = *in.MetaKeywords
	}
	if in.Components != nil {
		post.Components = *in.Components
	}
	if in.PlacementTags != nil {
		post.PlacementTags = *in.PlacementTags
	}
	if in.Features != nil {
		post.Features = *in.Features
	}
	if in.PublishDate != nil {
		post.PublishDate = in.PublishDate
	}
	if in.Status != nil {
		if err := validateStatus(*in.Status, post.PublishDate); err != nil {
			return nil, err
		}
		post.Status = *in.Status
	}
	if in.TopicID != nil {
		topicID, err := parseOptionalID(in.TopicID, "topicId")
		if err != nil {
			return nil, err
		}
		post.Topic = topicID
	}
	if err := validatePostFields(post.ShortDescription, post.MetaTitle, post.MetaDescription, post.Components); err != nil {
		return nil, err
	}

	categoryChanged := false
	if in.CategoryID != nil {
		newCat, err := parseID(*in.CategoryID, "categoryId")
		if err != nil {
			return nil, err
		}
		if newCat != post.Category {
			post.Category = newCat
			categoryChanged = true
		}
	}

	if in.Slug != nil || categoryChanged {
		// incoming slugs from the editor carry the old token; strip it
		// so the immutable one is re-appended
		base := utils.StripToken(post.Slug)
		if in.Slug != nil {
			base = utils.StripToken(*in.Slug)
		}
		if err := s.deriveSlugAndPath(ctx, post, base); err != nil {
			return nil, err
		}
	}

	post.UpdatedAt = s.now().UTC()
	if err := s.posts.Replace(ctx, *post); err != nil {
		return nil, err
	}
	return s.view(ctx, *post)
}

// deriveSlugAndPath recomputes every derived field that depends on the slug
// or the category chain. A failed chain walk aborts the save; no partial
// path is ever persisted.
func (s *PostService) deriveSlugAndPath(ctx context.Context, post *model.Post, base string) error {
	slug := utils.MakeSlug(base, post.UniqueIdentifier)
	taken, err := s.posts.SlugTaken(ctx, slug, post.ID)
	if err != nil {
		return err
	}
	if taken {
		slug = utils.WithTimestamp(slug, s.now())
	}

	chain, err := ancestorChain(ctx, s.fetchCategory, post.Category)
	if err != nil {
		return err
	}

	post.Slug = slug
	post.CategoryPath = chainIDs(chain)
	post.FullPathSlug = composeFullPath(chain, slug)
	post.DisplayedWithin = displayedWithin(chain)
	return nil
}

func (s *PostService) Get(ctx context.Context, identifier string, includeDrafts bool) (*dto.PostView, error) {
	post, err := s.posts.FindByIdentifier(ctx, identifier, !includeDrafts)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *post)
}

func (s *PostService) List(ctx context.Context, status, categoryHex, topicHex string, includeDrafts bool) ([]dto.PostView, error) {
	category, err := parseOptionalID(&categoryHex, "category")
	if err != nil {
		return nil, err
	}
	topic, err := parseOptionalID(&topicHex, "topic")
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.List(ctx, status, category, topic, includeDrafts)
	if err != nil {
		return nil, err
	}
	return s.listViews(ctx, posts)
}

func (s *PostService) Delete(ctx context.Context, idHex string) error {
	id, err := parseID(idHex, "post id")
	if err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}

// ResolveByPath finds a post by its full category path plus slug, e.g.
// tech/ai/hello-world-a1b2c3d4. Each path segment must be a category slug
// nested under the previous one.
func (s *PostService) ResolveByPath(ctx context.Context, path string) (*dto.PostView, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 {
		return nil, apperr.New(apperr.NotFound, "category not found")
	}
	postSlug := segments[len(segments)-1]
	categorySlugs := segments[:len(segments)-1]

	category, err := s.walkCategoryPath(ctx, categorySlugs)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.FindBySlugAndCategory(ctx, postSlug, category.ID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *post)
}

func (s *PostService) walkCategoryPath(ctx context.Context, slugs []string) (*model.Category, error) {
	var current *model.Category
	var parent *bson.ObjectID
	for _, slug := range slugs {
		cat, err := s.categories.FindBySlugUnderParent(ctx, slug, parent)
		if err != nil {
			return nil, err
		}
		current = cat
		parent = &cat.ID
	}
	if current == nil {
		return nil, apperr.New(apperr.NotFound, "category not found")
	}
	return current, nil
}

// ByCategory lists the topicless non-draft posts of a category slug, or of a
// subcategory nested directly under it.
func (s *PostService) ByCategory(ctx context.Context, categorySlug, subcategorySlug string) ([]dto.PostView, error) {
	category, err := s.resolveCategoryPair(ctx, categorySlug, subcategorySlug, true)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.FindByCategory(ctx, category.ID, true)
	if err != nil {
		return nil, err
	}
	return s.listViews(ctx, posts)
}

// TopicsByCategory lists the topics attached to a category slug; a missing
// subcategory slug silently falls back to the parent, which is what the
// navigation frontend relies on.
func (s *PostService) TopicsByCategory(ctx context.Context, categorySlug, subcategorySlug string) ([]dto.TopicView, error) {
	category, err := s.resolveCategoryPair(ctx, categorySlug, subcategorySlug, false)
	if err != nil {
		return nil, err
	}
	topics, err := s.topics.FindByCategory(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	return s.topicViews(ctx, topics)
}

// ByCategoryAndTopic lists the published posts of a topic within a category
// (or its direct subcategory).
func (s *PostService) ByCategoryAndTopic(ctx context.Context, categorySlug, subcategorySlug, topicHex string) ([]dto.PostView, error) {
	topicID, err := parseID(topicHex, "topic id")
	if err != nil {
		return nil, err
	}
	category, err := s.resolveCategoryPair(ctx, categorySlug, subcategorySlug, true)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.FindByCategoryAndTopic(ctx, category.ID, topicID)
	if err != nil {
		return nil, err
	}
	return s.listViews(ctx, posts)
}

// AllByCategory returns every post of a category grouped by topic, with the
// topicless ones in a separate bucket.
func (s *PostService) AllByCategory(ctx context.Context, categorySlug string, includeDrafts bool) (*dto.CategoryPosts, error) {
	category, err := s.categories.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.FindAllByCategory(ctx, category.ID, includeDrafts)
	if err != nil {
		return nil, err
	}
	views, err := s.listViews(ctx, posts)
	if err != nil {
		return nil, err
	}

	out := &dto.CategoryPosts{
		CategoryInfo: *category,
		TopicBlogs:   []dto.TopicPosts{},
		GeneralBlogs: []dto.PostView{},
	}
	byTopic := map[bson.ObjectID]int{}
	for _, v := range views {
		if v.Topic == nil {
			out.GeneralBlogs = append(out.GeneralBlogs, v)
			continue
		}
		idx, ok := byTopic[*v.Topic]
		if !ok {
			topic, err := s.topics.FindByID(ctx, *v.Topic)
			if err != nil {
				if apperr.IsNotFound(err) {
					out.GeneralBlogs = append(out.GeneralBlogs, v)
					continue
				}
				return nil, err
			}
			out.TopicBlogs = append(out.TopicBlogs, dto.TopicPosts{Topic: *topic})
			idx = len(out.TopicBlogs) - 1
			byTopic[*v.Topic] = idx
		}
		out.TopicBlogs[idx].Blogs = append(out.TopicBlogs[idx].Blogs, v)
	}
	return out, nil
}

// Hierarchy materializes the category/topic/post tree starting from the
// first slug of the path. Traversal uses an explicit stack with a visited
// set so corrupted child links cannot recurse forever.
func (s *PostService) Hierarchy(ctx context.Context, path string) (*dto.CategoryHierarchy, error) {
	slugs := strings.Split(strings.Trim(path, "/"), "/")
	if len(slugs) == 0 || slugs[0] == "" {
		return nil, apperr.New(apperr.NotFound, "category not found")
	}
	root, err := s.categories.FindBySlug(ctx, slugs[0])
	if err != nil {
		return nil, err
	}

	visited := map[bson.ObjectID]bool{}

	type frame struct {
		cat  model.Category
		node *dto.CategoryHierarchy
	}
	rootNode := &dto.CategoryHierarchy{Category: dto.NewCategoryRef(*root)}
	stack := []frame{{cat: *root, node: rootNode}}
	visited[root.ID] = true

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := s.fillHierarchyNode(ctx, f.cat, f.node); err != nil {
			return nil, err
		}

		children, err := s.categories.FindChildren(ctx, f.cat.ID)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if visited[child.ID] {
				log.Printf("category hierarchy: skipping already-visited category %s", child.ID.Hex())
				continue
			}
			visited[child.ID] = true
			childNode := &dto.CategoryHierarchy{Category: dto.NewCategoryRef(child)}
			f.node.Subcategories = append(f.node.Subcategories, childNode)
			stack = append(stack, frame{cat: child, node: childNode})
		}
	}
	return rootNode, nil
}

func (s *PostService) fillHierarchyNode(ctx context.Context, cat model.Category, node *dto.CategoryHierarchy) error {
	topicless, err := s.posts.FindByCategory(ctx, cat.ID, true)
	if err != nil {
		return err
	}
	if node.TopiclessBlogs, err = s.listViews(ctx, topicless); err != nil {
		return err
	}

	node.TopicBlogs = []dto.TopicPosts{}
	topics, err := s.topics.FindByCategory(ctx, cat.ID)
	if err != nil {
		return err
	}
	for _, topic := range topics {
		posts, err := s.posts.FindByCategoryAndTopic(ctx, cat.ID, topic.ID)
		if err != nil {
			return err
		}
		views, err := s.listViews(ctx, posts)
		if err != nil {
			return err
		}
		node.TopicBlogs = append(node.TopicBlogs, dto.TopicPosts{Topic: topic, Blogs: views})
	}
	return nil
}

// PromoteScheduled publishes every scheduled post whose publish time has
// arrived. Failures are isolated per post: one bad document never blocks the
// rest of the sweep. Returns how many posts were promoted.
func (s *PostService) PromoteScheduled(ctx context.Context, now time.Time) (int, error) {
	due, err := s.posts.FindDueScheduled(ctx, now)
	if err != nil {
		return 0, err
	}

	promoted := 0
	for _, post := range due {
		ok, err := s.posts.Publish(ctx, post.ID, now)
		if err != nil {
			log.Printf("promote scheduled: post %s: %v", post.ID.Hex(), err)
			continue
		}
		if ok {
			promoted++
		}
	}
	return promoted, nil
}

func (s *PostService) resolveCategoryPair(ctx context.Context, categorySlug, subcategorySlug string, requireSub bool) (*model.Category, error) {
	category, err := s.categories.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	if subcategorySlug == "" {
		return category, nil
	}
	sub, err := s.categories.FindBySlugUnderParent(ctx, subcategorySlug, &category.ID)
	if err != nil {
		if apperr.IsNotFound(err) && !requireSub {
			return category, nil
		}
		return nil, err
	}
	return sub, nil
}

func validatePostFields(shortDescription, metaTitle, metaDescription string, components []model.Component) error {
	if len(shortDescription) > maxShortDescription {
		return apperr.Newf(apperr.Validation, "short description cannot exceed %d characters", maxShortDescription)
	}
	if len(metaTitle) > maxMetaTitle {
		return apperr.Newf(apperr.Validation, "meta title cannot exceed %d characters", maxMetaTitle)
	}
	if len(metaDescription) > maxMetaDescription {
		return apperr.Newf(apperr.Validation, "meta description cannot exceed %d characters", maxMetaDescription)
	}
	for _, c := range components {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateStatus(status string, publishDate *time.Time) error {
	switch status {
	case model.PostDraft, model.PostPublished:
		return nil
	case model.PostScheduled:
		if publishDate == nil {
			return apperr.New(apperr.Validation, "scheduled posts need a publishDate")
		}
		return nil
	default:
		return apperr.Newf(apperr.Validation, "invalid status %q", status)
	}
}

func (s *PostService) view(ctx context.Context, post model.Post) (*dto.PostView, error) {
	views, err := s.listViews(ctx, []model.Post{post})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// listViews resolves category and topic references for a batch of posts;
// categories are fetched in one round trip.
func (s *PostService) listViews(ctx context.Context, posts []model.Post) ([]dto.PostView, error) {
	var catIDs []bson.ObjectID
	for _, p := range posts {
		catIDs = append(catIDs, p.Category)
		catIDs = append(catIDs, p.CategoryPath...)
	}
	cats, err := s.categories.FindByIDs(ctx, catIDs)
	if err != nil {
		return nil, err
	}

	views := make([]dto.PostView, len(posts))
	for i, p := range posts {
		v := dto.PostView{Post: p}
		if c, ok := cats[p.Category]; ok {
			cv := dto.CategoryView{Category: c}
			if c.ParentCategory != nil {
				if parent, ok := cats[*c.ParentCategory]; ok {
					ref := dto.NewCategoryRef(parent)
					cv.ParentRef = &ref
				}
			}
			v.CategoryDetail = &cv
		}
		for _, id := range p.CategoryPath {
			if c, ok := cats[id]; ok {
				v.CategoryPathRefs = append(v.CategoryPathRefs, dto.NewCategoryRef(c))
			}
		}
		if p.Topic != nil {
			topic, err := s.topics.FindByID(ctx, *p.Topic)
			if err == nil {
				v.TopicDetail = topic
			} else if !apperr.IsNotFound(err) {
				return nil, err
			}
		}
		views[i] = v
	}
	return views, nil
}

func (s *PostService) topicViews(ctx context.Context, topics []model.Topic) ([]dto.TopicView, error) {
	var catIDs []bson.ObjectID
	for _, t := range topics {
		catIDs = append(catIDs, t.Category)
	}
	cats, err := s.categories.FindByIDs(ctx, catIDs)
	if err != nil {
		return nil, err
	}
	views := make([]dto.TopicView, len(topics))
	for i, t := range topics {
		v := dto.TopicView{Topic: t}
		if c, ok := cats[t.Category]; ok {
			ref := dto.NewCategoryRef(c)
			v.CategoryRef = &ref
		}
		views[i] = v
	}
	return views, nil
}
