package repository

import (
	"testing"

	"github.com/hpitta26/Leetcode-Bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertAllOverwritesBySlug(t *testing.T) {
	db := newTestDB(t)
	problems := NewProblemRepository(db)

	require.NoError(t, problems.UpsertAll(ctx(t), []models.Problem{
		{Slug: "two-sum", Title: "Two Sum", Difficulty: "Easy", Points: 10},
	}))
	require.NoError(t, problems.UpsertAll(ctx(t), []models.Problem{
		{Slug: "two-sum", Title: "Two Sum (Updated)", Difficulty: "Medium", Points: 25},
	}))

	count, err := problems.Count(ctx(t))
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "re-initializing must not create duplicates")

	p, err := problems.GetBySlug(ctx(t), "two-sum")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Two Sum (Updated)", p.Title)
	assert.Equal(t, "Medium", p.Difficulty)
	assert.Equal(t, 25, p.Points)
}

func TestUpsertAllRejectsMalformedInput(t *testing.T) {
	db := newTestDB(t)
	problems := NewProblemRepository(db)

	err := problems.UpsertAll(ctx(t), []models.Problem{
		{Slug: "", Title: "No Slug", Points: 10},
	})
	assert.Error(t, err)

	err = problems.UpsertAll(ctx(t), []models.Problem{
		{Slug: "two-sum", Title: "", Points: 10},
	})
	assert.Error(t, err)

	err = problems.UpsertAll(ctx(t), []models.Problem{
		{Slug: "two-sum", Title: "Two Sum", Points: -1},
	})
	assert.Error(t, err)

	// Nothing from the failed batches may have been written.
	count, err := problems.Count(ctx(t))
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestUpsertAllEmptyIsNoop(t *testing.T) {
	db := newTestDB(t)
	problems := NewProblemRepository(db)

	require.NoError(t, problems.UpsertAll(ctx(t), nil))
}

func TestGetBySlugMissing(t *testing.T) {
	db := newTestDB(t)
	problems := NewProblemRepository(db)

	p, err := problems.GetBySlug(ctx(t), "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, p)
}
