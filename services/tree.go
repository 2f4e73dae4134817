package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/internal/apperr"
	"fliquecms/model"
)

// categoryFetch abstracts the category lookup so the tree walks can be
// exercised without a database.
type categoryFetch func(context.Context, bson.ObjectID) (*model.Category, error)

// ancestorChain walks parentCategory links from leaf to the root and returns
// the chain root-first, leaf included. The walk carries a visited set: the
// data model promises acyclicity, but a corrupted tree must fail with a Cycle
// error instead of looping forever.
func ancestorChain(ctx context.Context, fetch categoryFetch, leaf bson.ObjectID) ([]model.Category, error) {
	var chain []model.Category
	seen := map[bson.ObjectID]bool{}

	next := &leaf
	for next != nil {
		id := *next
		if seen[id] {
			return nil, apperr.New(apperr.Cycle, "category tree contains a cycle")
		}
		seen[id] = true

		cat, err := fetch(ctx, id)
		if err != nil {
			return nil, err
		}
		chain = append(chain, *cat)
		next = cat.ParentCategory
	}

	// reverse to root-first
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// wouldCycle reports whether re-parenting category under newParent would make
// the category its own ancestor. That holds when newParent is the category
// itself or any of its descendants, i.e. when category appears in newParent's
// ancestor chain.
func wouldCycle(ctx context.Context, fetch categoryFetch, category, newParent bson.ObjectID) (bool, error) {
	if category == newParent {
		return true, nil
	}
	chain, err := ancestorChain(ctx, fetch, newParent)
	if err != nil {
		return false, err
	}
	for _, c := range chain {
		if c.ID == category {
			return true, nil
		}
	}
	return false, nil
}

// composeFullPath joins the ancestor slugs root-to-leaf with the post's own
// slug into the unique routable path.
func composeFullPath(chain []model.Category, postSlug string) string {
	parts := make([]string, 0, len(chain)+1)
	for _, c := range chain {
		parts = append(parts, c.Slug)
	}
	parts = append(parts, postSlug)
	return strings.Join(parts, "/")
}

// displayedWithin projects the deepest (up to) three levels of a chain onto
// the named category/subcategory/subsubcategory slots the frontend reads.
func displayedWithin(chain []model.Category) []model.DisplayedWithin {
	n := len(chain)
	if n == 0 {
		return nil
	}
	dw := model.DisplayedWithin{}
	switch {
	case n == 1:
		dw.Category = &chain[0].ID
	case n == 2:
		dw.Category = &chain[0].ID
		dw.Subcategory = &chain[1].ID
	default:
		dw.Category = &chain[n-3].ID
		dw.Subcategory = &chain[n-2].ID
		dw.Subsubcategory = &chain[n-1].ID
	}
	return []model.DisplayedWithin{dw}
}

func chainIDs(chain []model.Category) []bson.ObjectID {
	ids := make([]bson.ObjectID, len(chain))
	for i, c := range chain {
		ids[i] = c.ID
	}
	return ids
}
