package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/model"
)

func storyCat(name, slug string) model.WebStoryCategory {
	return model.WebStoryCategory{ID: bson.NewObjectID(), Name: name, Slug: slug}
}

func story(slug string, category bson.ObjectID) model.WebStory {
	return model.WebStory{ID: bson.NewObjectID(), Slug: slug, Category: category, IsPublished: true}
}

func TestGroupStoriesByCategory(t *testing.T) {
	travel := storyCat("Travel", "travel")
	food := storyCat("Food", "food")
	empty := storyCat("Empty", "empty")

	s1 := story("alps", travel.ID)
	s2 := story("ramen", food.ID)
	s3 := story("fjords", travel.ID)

	groups := groupStoriesByCategory(
		[]model.WebStoryCategory{travel, food, empty},
		[]model.WebStory{s1, s2, s3},
	)

	require.Len(t, groups, 2)
	assert.Equal(t, "travel", groups[0].Slug)
	assert.Equal(t, "Travel", groups[0].Name)
	assert.Equal(t, travel.ID, groups[0].ID)
	require.Len(t, groups[0].Stories, 2)
	assert.Equal(t, "alps", groups[0].Stories[0].Slug)
	assert.Equal(t, "fjords", groups[0].Stories[1].Slug)

	assert.Equal(t, "food", groups[1].Slug)
	require.Len(t, groups[1].Stories, 1)
	assert.Equal(t, "ramen", groups[1].Stories[0].Slug)
}

func TestGroupStoriesByCategorySkipsMissingCategory(t *testing.T) {
	travel := storyCat("Travel", "travel")
	orphan := story("lost", bson.NewObjectID())

	groups := groupStoriesByCategory(
		[]model.WebStoryCategory{travel},
		[]model.WebStory{orphan, story("alps", travel.ID)},
	)

	require.Len(t, groups, 1)
	assert.Equal(t, "travel", groups[0].Slug)
	require.Len(t, groups[0].Stories, 1)
	assert.Equal(t, "alps", groups[0].Stories[0].Slug)
}

func TestGroupStoriesByCategoryEmpty(t *testing.T) {
	groups := groupStoriesByCategory(nil, nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
