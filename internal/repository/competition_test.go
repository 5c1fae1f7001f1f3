package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentWithNoCompetitions(t *testing.T) {
	db := newTestDB(t)
	comps := NewCompetitionRepository(db)

	current, err := comps.GetCurrent(ctx(t))
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestGetCurrentIsLatestCreated(t *testing.T) {
	db := newTestDB(t)
	comps := NewCompetitionRepository(db)

	first, err := comps.Create(ctx(t), "Round 1", "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	second, err := comps.Create(ctx(t), "Round 2", "2026-02-01", "2026-02-28")
	require.NoError(t, err)
	require.Greater(t, second, first)

	// Both rows keep existing; current is always the latest created,
	// with creation-time ties broken by the higher id.
	current, err := comps.GetCurrent(ctx(t))
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second, current.ID)
	assert.Equal(t, "Round 2", current.Name)
	assert.False(t, current.HasRun)

	count, err := comps.Count(ctx(t))
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestMarkAndRevertRun(t *testing.T) {
	db := newTestDB(t)
	comps := NewCompetitionRepository(db)

	id, err := comps.Create(ctx(t), "Round 1", "2026-01-01", "2026-01-31")
	require.NoError(t, err)

	require.NoError(t, comps.MarkRun(ctx(t), id))
	require.NoError(t, comps.MarkRun(ctx(t), id)) // idempotent

	comp, err := comps.GetByID(ctx(t), id)
	require.NoError(t, err)
	require.NotNil(t, comp)
	assert.True(t, comp.HasRun)

	require.NoError(t, comps.RevertRun(ctx(t), id))
	require.NoError(t, comps.RevertRun(ctx(t), id))

	comp, err = comps.GetByID(ctx(t), id)
	require.NoError(t, err)
	assert.False(t, comp.HasRun)
}

func TestGetByIDMissing(t *testing.T) {
	db := newTestDB(t)
	comps := NewCompetitionRepository(db)

	comp, err := comps.GetByID(ctx(t), 42)
	require.NoError(t, err)
	assert.Nil(t, comp)
}
