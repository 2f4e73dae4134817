package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/dto"
	"fliquecms/internal/apperr"
	"fliquecms/internal/repository"
	"fliquecms/internal/utils"
	"fliquecms/model"
)

// WebStoryService manages web stories and their flat category namespace.
// fullPath is derived as categorySlug/slug and recomputed whenever either
// side changes.
type WebStoryService struct {
	stories    *repository.WebStoryRepository
	categories *repository.WebStoryCategoryRepository
	now        func() time.Time
}

func NewWebStoryService(stories *repository.WebStoryRepository, categories *repository.WebStoryCategoryRepository) *WebStoryService {
	return &WebStoryService{stories: stories, categories: categories, now: time.Now}
}

func (s *WebStoryService) Create(ctx context.Context, in dto.CreateWebStoryInput) (*dto.WebStoryView, error) {
	if in.Slug == "" {
		return nil, apperr.New(apperr.Validation, "slug is required")
	}
	if in.MetaTitle == "" {
		return nil, apperr.New(apperr.Validation, "metaTitle is required")
	}
	if len(in.Stories) == 0 {
		return nil, apperr.New(apperr.Validation, "at least one story frame is required")
	}
	categoryID, err := parseID(in.Category, "category")
	if err != nil {
		return nil, err
	}
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	story := model.WebStory{
		Slug:            utils.MakeSlug(in.Slug, ""),
		Category:        categoryID,
		MetaTitle:       in.MetaTitle,
		MetaKeyword:     in.MetaKeyword,
		MetaDescription: in.MetaDescription,
		Stories:         in.Stories,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.IsPublished != nil {
		story.IsPublished = *in.IsPublished
	}
	story.FullPath = category.Slug + "/" + story.Slug

	saved, err := s.stories.Insert(ctx, story)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, saved), nil
}

// Get resolves a 24-hex identifier as an id, anything else as a slug.
func (s *WebStoryService) Get(ctx context.Context, identifier string) (*dto.WebStoryView, error) {
	story, err := s.stories.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *story), nil
}

// GetByPath resolves a story by its derived categorySlug/slug path.
func (s *WebStoryService) GetByPath(ctx context.Context, categorySlug, storySlug string) (*dto.WebStoryView, error) {
	story, err := s.stories.FindByFullPath(ctx, categorySlug+"/"+storySlug)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *story), nil
}

// ByCategory returns every published story bucketed under its category.
// No published stories yields an empty list, not an error.
func (s *WebStoryService) ByCategory(ctx context.Context) ([]dto.WebStoryCategoryGroup, error) {
	stories, err := s.stories.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return groupStoriesByCategory(categories, stories), nil
}

// groupStoriesByCategory buckets stories under their categories. Group order
// follows first appearance in stories; a story whose category no longer
// exists is skipped.
func groupStoriesByCategory(categories []model.WebStoryCategory, stories []model.WebStory) []dto.WebStoryCategoryGroup {
	catByID := make(map[bson.ObjectID]model.WebStoryCategory, len(categories))
	for _, c := range categories {
		catByID[c.ID] = c
	}
	groups := []dto.WebStoryCategoryGroup{}
	index := map[bson.ObjectID]int{}
	for _, story := range stories {
		cat, ok := catByID[story.Category]
		if !ok {
			continue
		}
		i, ok := index[cat.ID]
		if !ok {
			i = len(groups)
			index[cat.ID] = i
			groups = append(groups, dto.WebStoryCategoryGroup{ID: cat.ID, Name: cat.Name, Slug: cat.Slug})
		}
		groups[i].Stories = append(groups[i].Stories, story)
	}
	return groups
}

func (s *WebStoryService) List(ctx context.Context) ([]dto.WebStoryView, error) {
	stories, err := s.stories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]dto.WebStoryView, len(stories))
	for i, story := range stories {
		views[i] = *s.view(ctx, story)
	}
	return views, nil
}

func (s *WebStoryService) Update(ctx context.Context, idHex string, in dto.UpdateWebStoryInput) (*dto.WebStoryView, error) {
	id, err := parseID(idHex, "web story id")
	if err != nil {
		return nil, err
	}
	story, err := s.stories.FindByIdentifier(ctx, id.Hex())
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": s.now().UTC()}
	if in.MetaTitle != nil {
		set["metaTitle"] = *in.MetaTitle
	}
	if in.MetaKeyword != nil {
		set["metaKeyword"] = *in.MetaKeyword
	}
	if in.MetaDescription != nil {
		set["metaDescription"] = *in.MetaDescription
	}
	if in.IsPublished != nil {
		set["isPublished"] = *in.IsPublished
	}
	if in.Stories != nil {
		if len(*in.Stories) == 0 {
			return nil, apperr.New(apperr.Validation, "at least one story frame is required")
		}
		set["stories"] = *in.Stories
	}

	slug := story.Slug
	categoryID := story.Category
	pathChanged := false
	if in.Slug != nil && *in.Slug != "" {
		slug = utils.MakeSlug(*in.Slug, "")
		pathChanged = true
	}
	if in.Category != nil {
		categoryID, err = parseID(*in.Category, "category")
		if err != nil {
			return nil, err
		}
		pathChanged = true
	}
	if pathChanged {
		category, err := s.categories.FindByID(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		set["slug"] = slug
		set["category"] = categoryID
		set["fullPath"] = category.Slug + "/" + slug
	}

	updated, err := s.stories.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *updated), nil
}

func (s *WebStoryService) Delete(ctx context.Context, idHex string) error {
	id, err := parseID(idHex, "web story id")
	if err != nil {
		return err
	}
	return s.stories.Delete(ctx, id)
}

func (s *WebStoryService) view(ctx context.Context, story model.WebStory) *dto.WebStoryView {
	v := &dto.WebStoryView{WebStory: story}
	if category, err := s.categories.FindByID(ctx, story.Category); err == nil {
		v.CategoryRef = &dto.CategoryRef{ID: category.ID, Name: category.Name, Slug: category.Slug}
	}
	return v
}

// CreateCategory and friends manage the flat web story category namespace.
func (s *WebStoryService) CreateCategory(ctx context.Context, in model.WebStoryCategory) (*model.WebStoryCategory, error) {
	if in.Name == "" {
		return nil, apperr.New(apperr.Validation, "name is required")
	}
	if in.Slug == "" {
		in.Slug = utils.MakeSlug(in.Name, "")
	}
	if in.Status == "" {
		in.Status = model.StatusActive
	}
	now := s.now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now

	saved, err := s.categories.Insert(ctx, in)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *WebStoryService) ListCategories(ctx context.Context) ([]model.WebStoryCategory, error) {
	return s.categories.FindAll(ctx)
}

// ResolveCategory looks an identifier up as an id when it parses as one,
// otherwise as a slug.
func (s *WebStoryService) ResolveCategory(ctx context.Context, identifier string) (*model.WebStoryCategory, error) {
	return s.categories.FindByIdentifier(ctx, identifier)
}

func (s *WebStoryService) UpdateCategory(ctx context.Context, idHex string, in model.WebStoryCategory) (*model.WebStoryCategory, error) {
	id, err := parseID(idHex, "web story category id")
	if err != nil {
		return nil, err
	}
	set := bson.M{"updatedAt": s.now().UTC()}
	if in.Name != "" {
		set["name"] = in.Name
	}
	if in.Slug != "" {
		set["slug"] = utils.MakeSlug(in.Slug, "")
	}
	if in.Description != "" {
		set["description"] = in.Description
	}
	if in.ThumbnailImage != "" {
		set["thumbnailImage"] = in.ThumbnailImage
	}
	if in.Status != "" {
		set["status"] = in.Status
	}
	return s.categories.Update(ctx, id, set)
}

func (s *WebStoryService) DeleteCategory(ctx context.Context, idHex string) error {
	id, err := parseID(idHex, "web story category id")
	if err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}
