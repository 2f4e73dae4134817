package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/dto"
	"fliquecms/internal/apperr"
	"fliquecms/internal/repository"
	"fliquecms/model"
)

// CategoryService owns the category tree: it keeps parentCategory and the
// parents' children lists as mutual inverses across create, re-parent and
// delete.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) fetch(ctx context.Context, id bson.ObjectID) (*model.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, in dto.CategoryInput) (*dto.CategoryView, error) {
	if in.Name == "" || in.Slug == "" {
		return nil, apperr.New(apperr.Validation, "name and slug are required")
	}

	parentID, err := parseOptionalID(in.ParentCategory, "parentCategory")
	if err != nil {
		return nil, err
	}
	if parentID != nil {
		if _, err := s.repo.FindByID(ctx, *parentID); err != nil {
			return nil, err
		}
	}

	status := in.Status
	if status == "" {
		status = model.StatusActive
	}
	now := time.Now().UTC()
	cat := model.Category{
		Name:            in.Name,
		Slug:            in.Slug,
		ParentCategory:  parentID,
		Description:     in.Description,
		MetaTitle:       in.MetaTitle,
		MetaKeywords:    in.MetaKeywords,
		MetaDescription: in.MetaDescription,
		PositionOrder:   in.PositionOrder,
		Status:          status,
		ThumbnailImage:  in.ThumbnailImage,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	saved, err := s.repo.Insert(ctx, cat)
	if err != nil {
		return nil, err
	}
	if parentID != nil {
		if err := s.repo.PushChild(ctx, *parentID, saved.ID); err != nil {
			return nil, err
		}
	}
	return s.view(ctx, saved)
}

// Update applies the provided fields only: omitted fields keep their stored
// value. When the parent changes the category is re-parented, pulled from the
// old parent's children and pushed to the new one's. Moving a category under
// itself or one of its descendants is refused.
func (s *CategoryService) Update(ctx context.Context, idHex string, in dto.UpdateCategoryInput) (*dto.CategoryView, error) {
	id, err := parseID(idHex, "category id")
	if err != nil {
		return nil, err
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set, err := categoryUpdateSet(in, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if in.ParentCategory != nil {
		newParent, err := parseOptionalID(in.ParentCategory, "parentCategory")
		if err != nil {
			return nil, err
		}
		if newParent != nil && *newParent != derefOr(current.ParentCategory) {
			cyc, err := wouldCycle(ctx, s.fetch, id, *newParent)
			if err != nil {
				return nil, err
			}
			if cyc {
				return nil, apperr.New(apperr.Cycle, "cannot move a category under its own descendant")
			}
		}
		if !sameParent(current.ParentCategory, newParent) {
			if current.ParentCategory != nil {
				if err := s.repo.PullChild(ctx, *current.ParentCategory, id); err != nil {
					return nil, err
				}
			}
			if newParent != nil {
				if _, err := s.repo.FindByID(ctx, *newParent); err != nil {
					return nil, err
				}
				if err := s.repo.PushChild(ctx, *newParent, id); err != nil {
					return nil, err
				}
			}
		}
		set["parentCategory"] = newParent
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *updated)
}

// categoryUpdateSet builds the $set document for a partial update. Fields the
// caller did not send are left out so stored values survive; name and slug
// cannot be blanked. parentCategory is handled by Update, not here.
func categoryUpdateSet(in dto.UpdateCategoryInput, now time.Time) (bson.M, error) {
	set := bson.M{"updatedAt": now}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, apperr.New(apperr.Validation, "name cannot be empty")
		}
		set["name"] = *in.Name
	}
	if in.Slug != nil {
		if *in.Slug == "" {
			return nil, apperr.New(apperr.Validation, "slug cannot be empty")
		}
		set["slug"] = *in.Slug
	}
	if in.Status != nil {
		if *in.Status != model.StatusActive && *in.Status != model.StatusInactive {
			return nil, apperr.Newf(apperr.Validation, "invalid status %q", *in.Status)
		}
		set["status"] = *in.Status
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.MetaTitle != nil {
		set["metaTitle"] = *in.MetaTitle
	}
	if in.MetaKeywords != nil {
		set["metaKeywords"] = *in.MetaKeywords
	}
	if in.MetaDescription != nil {
		set["metaDescription"] = *in.MetaDescription
	}
	if in.PositionOrder != nil {
		set["positionOrder"] = *in.PositionOrder
	}
	if in.ThumbnailImage != nil {
		set["thumbnailImage"] = *in.ThumbnailImage
	}
	return set, nil
}

// Resolve looks an identifier up as an id when it parses as one, then falls
// back to a slug match; NotFound only when both miss.
func (s *CategoryService) Resolve(ctx context.Context, identifier string) (*dto.CategoryView, error) {
	if oid, err := bson.ObjectIDFromHex(identifier); err == nil {
		if cat, err := s.repo.FindByID(ctx, oid); err == nil {
			return s.view(ctx, *cat)
		} else if !apperr.IsNotFound(err) {
			return nil, err
		}
	}
	cat, err := s.repo.FindBySlug(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *cat)
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*dto.CategoryView, error) {
	cat, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *cat)
}

func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryView, error) {
	cats, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, cats)
}

func (s *CategoryService) Filter(ctx context.Context, status string, sortByOrder bool) ([]dto.CategoryView, error) {
	cats, err := s.repo.Filter(ctx, status, sortByOrder)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, cats)
}

// Delete removes the category and detaches it from its parent. Children are
// NOT re-parented or removed: they keep a dangling parentCategory reference.
// That matches the upstream product behavior; the orphan count is logged so
// the condition stays visible.
func (s *CategoryService) Delete(ctx context.Context, idHex string) error {
	id, err := parseID(idHex, "category id")
	if err != nil {
		return err
	}
	cat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cat.ParentCategory != nil {
		if err := s.repo.PullChild(ctx, *cat.ParentCategory, id); err != nil {
			return err
		}
	}
	if n := len(cat.Children); n > 0 {
		log.Printf("category %s deleted with %d children left orphaned", idHex, n)
	}
	return s.repo.Delete(ctx, id)
}

// Chain returns the root-first ancestor chain of a category, itself included.
func (s *CategoryService) Chain(ctx context.Context, id bson.ObjectID) ([]model.Category, error) {
	return ancestorChain(ctx, s.fetch, id)
}

func (s *CategoryService) view(ctx context.Context, cat model.Category) (*dto.CategoryView, error) {
	views, err := s.views(ctx, []model.Category{cat})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// views resolves parent and children refs for a batch with one lookup.
func (s *CategoryService) views(ctx context.Context, cats []model.Category) ([]dto.CategoryView, error) {
	var refIDs []bson.ObjectID
	for _, c := range cats {
		if c.ParentCategory != nil {
			refIDs = append(refIDs, *c.ParentCategory)
		}
		refIDs = append(refIDs, c.Children...)
	}
	refs, err := s.repo.FindByIDs(ctx, refIDs)
	if err != nil {
		return nil, err
	}

	views := make([]dto.CategoryView, len(cats))
	for i, c := range cats {
		v := dto.CategoryView{Category: c}
		if c.ParentCategory != nil {
			if p, ok := refs[*c.ParentCategory]; ok {
				ref := dto.NewCategoryRef(p)
				v.ParentRef = &ref
			}
		}
		for _, childID := range c.Children {
			if ch, ok := refs[childID]; ok {
				v.ChildrenRefs = append(v.ChildrenRefs, dto.NewCategoryRef(ch))
			}
		}
		views[i] = v
	}
	return views, nil
}

func parseID(hex, what string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, apperr.Newf(apperr.Validation, "invalid %s", what)
	}
	return oid, nil
}

func parseOptionalID(hex *string, what string) (*bson.ObjectID, error) {
	if hex == nil || *hex == "" {
		return nil, nil
	}
	oid, err := parseID(*hex, what)
	if err != nil {
		return nil, err
	}
	return &oid, nil
}

func sameParent(a, b *bson.ObjectID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func derefOr(id *bson.ObjectID) bson.ObjectID {
	if id == nil {
		return bson.NilObjectID
	}
	return *id
}
