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

// commentMapFetch builds a commentFetch over an in-memory set of comments.
func commentMapFetch(comments ...model.Comment) commentFetch {
	byID := map[bson.ObjectID]model.Comment{}
	for _, c := range comments {
		byID[c.ID] = c
	}
	return func(_ context.Context, id bson.ObjectID) (*model.Comment, error) {
		c, ok := byID[id]
		if !ok {
			return nil, apperr.New(apperr.NotFound, "comment not found")
		}
		return &c, nil
	}
}

func comment(content string, parent *bson.ObjectID, replies ...bson.ObjectID) model.Comment {
	return model.Comment{
		ID:       bson.NewObjectID(),
		Content:  content,
		ParentID: parent,
		Replies:  replies,
	}
}

func TestCollectSubtree(t *testing.T) {
	leaf1 := comment("leaf1", nil)
	leaf2 := comment("leaf2", nil)
	mid := comment("mid", nil, leaf1.ID, leaf2.ID)
	root := comment("root", nil, mid.ID)
	mid.ParentID = &root.ID
	leaf1.ParentID = &mid.ID
	leaf2.ParentID = &mid.ID
	fetch := commentMapFetch(root, mid, leaf1, leaf2)

	ids, err := collectSubtree(context.Background(), fetch, root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []bson.ObjectID{root.ID, mid.ID, leaf1.ID, leaf2.ID}, ids)

	ids, err = collectSubtree(context.Background(), fetch, mid)
	require.NoError(t, err)
	assert.ElementsMatch(t, []bson.ObjectID{mid.ID, leaf1.ID, leaf2.ID}, ids)

	ids, err = collectSubtree(context.Background(), fetch, leaf1)
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{leaf1.ID}, ids)
}

func TestCollectSubtreeSkipsDanglingReplies(t *testing.T) {
	gone := bson.NewObjectID()
	child := comment("child", nil)
	root := comment("root", nil, child.ID, gone)
	fetch := commentMapFetch(root, child)

	ids, err := collectSubtree(context.Background(), fetch, root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []bson.ObjectID{root.ID, child.ID}, ids)
}

func TestCollectSubtreeCycleTerminates(t *testing.T) {
	a := comment("a", nil)
	b := comment("b", &a.ID)
	// corrupt links: a and b reply to each other
	a.Replies = []bson.ObjectID{b.ID}
	b.Replies = []bson.ObjectID{a.ID}
	fetch := commentMapFetch(a, b)

	ids, err := collectSubtree(context.Background(), fetch, a)
	require.NoError(t, err)
	assert.ElementsMatch(t, []bson.ObjectID{a.ID, b.ID}, ids)
}

func TestBuildThread(t *testing.T) {
	leaf := comment("leaf", nil)
	mid := comment("mid", nil, leaf.ID)
	root := comment("root", nil, mid.ID)
	leaf.ParentID = &mid.ID
	mid.ParentID = &root.ID
	fetch := commentMapFetch(root, mid, leaf)

	node, err := buildThread(context.Background(), fetch, root, 32)
	require.NoError(t, err)
	require.Len(t, node.Replies, 1)
	assert.Equal(t, "mid", node.Replies[0].Content)
	require.Len(t, node.Replies[0].Replies, 1)
	assert.Equal(t, "leaf", node.Replies[0].Replies[0].Content)
	assert.Empty(t, node.Replies[0].Replies[0].Replies)
}

func TestBuildThreadDepthCap(t *testing.T) {
	leaf := comment("leaf", nil)
	mid := comment("mid", nil, leaf.ID)
	root := comment("root", nil, mid.ID)
	fetch := commentMapFetch(root, mid, leaf)

	node, err := buildThread(context.Background(), fetch, root, 1)
	require.NoError(t, err)
	require.Len(t, node.Replies, 1)
	assert.Empty(t, node.Replies[0].Replies, "replies below the depth cap are dropped")
}

func TestBuildThreadSkipsDanglingReplies(t *testing.T) {
	gone := bson.NewObjectID()
	kept := comment("kept", nil)
	root := comment("root", nil, gone, kept.ID)
	fetch := commentMapFetch(root, kept)

	node, err := buildThread(context.Background(), fetch, root, 32)
	require.NoError(t, err)
	require.Len(t, node.Replies, 1)
	assert.Equal(t, "kept", node.Replies[0].Content)
}

func TestBuildThreadCycleTerminates(t *testing.T) {
	a := comment("a", nil)
	b := comment("b", &a.ID)
	a.Replies = []bson.ObjectID{b.ID}
	b.Replies = []bson.ObjectID{a.ID}
	fetch := commentMapFetch(a, b)

	node, err := buildThread(context.Background(), fetch, a, 32)
	require.NoError(t, err)
	require.Len(t, node.Replies, 1)
	assert.Empty(t, node.Replies[0].Replies)
}
