package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/internal/apperr"
	"fliquecms/model"
)

// mapFetch builds a categoryFetch over an in-memory set of categories.
func mapFetch(cats ...model.Category) categoryFetch {
	byID := map[bson.ObjectID]model.Category{}
	for _, c := range cats {
		byID[c.ID] = c
	}
	return func(_ context.Context, id bson.ObjectID) (*model.Category, error) {
		c, ok := byID[id]
		if !ok {
			return nil, apperr.New(apperr.NotFound, "category not found")
		}
		return &c, nil
	}
}

func cat(name, slug string, parent *bson.ObjectID) model.Category {
	return model.Category{ID: bson.NewObjectID(), Name: name, Slug: slug, ParentCategory: parent}
}

func TestAncestorChain(t *testing.T) {
	tech := cat("Tech", "tech", nil)
	ai := cat("AI", "ai", &tech.ID)
	llm := cat("LLMs", "llm", &ai.ID)
	fetch := mapFetch(tech, ai, llm)

	chain, err := ancestorChain(context.Background(), fetch, ai.ID)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "tech", chain[0].Slug)
	assert.Equal(t, "ai", chain[1].Slug)

	chain, err = ancestorChain(context.Background(), fetch, llm.ID)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, []string{"tech", "ai", "llm"}, []string{chain[0].Slug, chain[1].Slug, chain[2].Slug})

	chain, err = ancestorChain(context.Background(), fetch, tech.ID)
	require.NoError(t, err)
	require.Len(t, chain, 1)
}

func TestAncestorChainCycle(t *testing.T) {
	a := cat("A", "a", nil)
	b := cat("B", "b", &a.ID)
	// corrupt the tree: a points back down at b
	a.ParentCategory = &b.ID
	fetch := mapFetch(a, b)

	_, err := ancestorChain(context.Background(), fetch, b.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Cycle, apperr.KindOf(err))
}

func TestAncestorChainMissingParent(t *testing.T) {
	ghost := bson.NewObjectID()
	child := cat("Child", "child", &ghost)
	fetch := mapFetch(child)

	_, err := ancestorChain(context.Background(), fetch, child.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestWouldCycle(t *testing.T) {
	root := cat("Root", "root", nil)
	mid := cat("Mid", "mid", &root.ID)
	leaf := cat("Leaf", "leaf", &mid.ID)
	other := cat("Other", "other", nil)
	fetch := mapFetch(root, mid, leaf, other)

	ctx := context.Background()

	cyc, err := wouldCycle(ctx, fetch, mid.ID, mid.ID)
	require.NoError(t, err)
	assert.True(t, cyc, "re-parenting under itself")

	cyc, err = wouldCycle(ctx, fetch, root.ID, leaf.ID)
	require.NoError(t, err)
	assert.True(t, cyc, "re-parenting under a descendant")

	cyc, err = wouldCycle(ctx, fetch, leaf.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, cyc, "re-parenting under an unrelated node")

	cyc, err = wouldCycle(ctx, fetch, leaf.ID, root.ID)
	require.NoError(t, err)
	assert.False(t, cyc, "re-parenting under an ancestor is fine")
}

func TestComposeFullPath(t *testing.T) {
	tech := cat("Tech", "tech", nil)
	ai := cat("AI", "ai", &tech.ID)

	got := composeFullPath([]model.Category{tech, ai}, "hello-world-a1b2c3d4")
	assert.Equal(t, "tech/ai/hello-world-a1b2c3d4", got)

	assert.Equal(t, "solo-xyz", composeFullPath(nil, "solo-xyz"))
}

func TestComposeFullPathIdempotent(t *testing.T) {
	tech := cat("Tech", "tech", nil)
	ai := cat("AI", "ai", &tech.ID)
	fetch := mapFetch(tech, ai)

	chain, err := ancestorChain(context.Background(), fetch, ai.ID)
	require.NoError(t, err)

	first := composeFullPath(chain, "post-abc12345")
	second := composeFullPath(chain, "post-abc12345")
	assert.Equal(t, first, second)
}

func TestDisplayedWithin(t *testing.T) {
	a := cat("A", "a", nil)
	b := cat("B", "b", &a.ID)
	c := cat("C", "c", &b.ID)
	d := cat("D", "d", &c.ID)

	dw := displayedWithin([]model.Category{a})
	require.Len(t, dw, 1)
	assert.Equal(t, &a.ID, dw[0].Category)
	assert.Nil(t, dw[0].Subcategory)

	dw = displayedWithin([]model.Category{a, b})
	assert.Equal(t, &a.ID, dw[0].Category)
	assert.Equal(t, &b.ID, dw[0].Subcategory)
	assert.Nil(t, dw[0].Subsubcategory)

	dw = displayedWithin([]model.Category{a, b, c})
	assert.Equal(t, &a.ID, dw[0].Category)
	assert.Equal(t, &b.ID, dw[0].Subcategory)
	assert.Equal(t, &c.ID, dw[0].Subsubcategory)

	// deeper than three levels keeps the deepest three
	dw = displayedWithin([]model.Category{a, b, c, d})
	assert.Equal(t, &b.ID, dw[0].Category)
	assert.Equal(t, &c.ID, dw[0].Subcategory)
	assert.Equal(t, &d.ID, dw[0].Subsubcategory)

	assert.Nil(t, displayedWithin(nil))
}
