package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fliquecms/dto"
	"fliquecms/internal/apperr"
	"fliquecms/model"
)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

func TestCategoryUpdateSetOmittedFieldsSurvive(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	// A body carrying only one field must not blank the rest.
	set, err := categoryUpdateSet(dto.UpdateCategoryInput{Description: strp("fresh copy")}, now)
	require.NoError(t, err)

	assert.Equal(t, "fresh copy", set["description"])
	assert.Equal(t, now, set["updatedAt"])
	assert.NotContains(t, set, "name")
	assert.NotContains(t, set, "slug")
	assert.NotContains(t, set, "status")
	assert.NotContains(t, set, "positionOrder")
	assert.NotContains(t, set, "thumbnailImage")
}

func TestCategoryUpdateSetProvidedFields(t *testing.T) {
	now := time.Now().UTC()
	set, err := categoryUpdateSet(dto.UpdateCategoryInput{
		Name:          strp("Science"),
		Slug:          strp("science"),
		Status:        strp(model.StatusInactive),
		PositionOrder: intp(3),
	}, now)
	require.NoError(t, err)

	assert.Equal(t, "Science", set["name"])
	assert.Equal(t, "science", set["slug"])
	assert.Equal(t, model.StatusInactive, set["status"])
	assert.Equal(t, 3, set["positionOrder"])
}

func TestCategoryUpdateSetRejectsBlankedRequired(t *testing.T) {
	now := time.Now().UTC()

	_, err := categoryUpdateSet(dto.UpdateCategoryInput{Name: strp("")}, now)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = categoryUpdateSet(dto.UpdateCategoryInput{Slug: strp("")}, now)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	_, err = categoryUpdateSet(dto.UpdateCategoryInput{Status: strp("archived")}, now)
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}
