package repository

import (
	"testing"

	"github.com/hpitta26/Leetcode-Bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)

	require.NoError(t, users.Ensure(ctx(t), "alice"))
	require.NoError(t, users.Ensure(ctx(t), "alice"))

	count, err := users.Count(ctx(t))
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestRecalculateStatsScenario(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	subs := NewSubmissionRepository(db)

	compID := seedCompetition(t, db, "Round 1", []models.Problem{
		{Slug: "two-sum", Title: "Two Sum", Difficulty: "Easy", Points: 10},
		{Slug: "lru-cache", Title: "LRU Cache", Difficulty: "Medium", Points: 30},
	})

	require.NoError(t, subs.Save(ctx(t), "alice", "two-sum", true, compID, nil))
	require.NoError(t, subs.Save(ctx(t), "alice", "lru-cache", false, compID, nil))
	require.NoError(t, users.RecalculateStats(ctx(t), "alice"))

	user, err := users.GetByUsername(ctx(t), "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 10, user.TotalScore)
	assert.Equal(t, 1, user.ProblemsSolved)

	entries, err := subs.Leaderboard(ctx(t), compID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, 10, entries[0].TotalScore)
	assert.Equal(t, 1, entries[0].ProblemsSolved)
}

func TestRecalculateStatsIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	subs := NewSubmissionRepository(db)

	compID := seedCompetition(t, db, "Round 1", []models.Problem{
		{Slug: "two-sum", Title: "Two Sum", Points: 10},
	})

	require.NoError(t, subs.Save(ctx(t), "alice", "two-sum", true, compID, nil))
	require.NoError(t, users.RecalculateStats(ctx(t), "alice"))
	require.NoError(t, users.RecalculateStats(ctx(t), "alice"))

	user, err := users.GetByUsername(ctx(t), "alice")
	require.NoError(t, err)
	assert.Equal(t, 10, user.TotalScore)
	assert.Equal(t, 1, user.ProblemsSolved)
}

func TestRecalculateStatsIsGlobalAcrossCompetitions(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	subs := NewSubmissionRepository(db)

	problems := []models.Problem{
		{Slug: "two-sum", Title: "Two Sum", Points: 10},
		{Slug: "lru-cache", Title: "LRU Cache", Points: 30},
	}
	comp1 := seedCompetition(t, db, "Round 1", problems)
	comp2 := seedCompetition(t, db, "Round 2", problems)

	require.NoError(t, subs.Save(ctx(t), "alice", "two-sum", true, comp1, nil))
	require.NoError(t, subs.Save(ctx(t), "alice", "lru-cache", true, comp2, nil))
	require.NoError(t, users.RecalculateStats(ctx(t), "alice"))

	// Cached totals are career totals across every competition, unlike
	// the scoped leaderboard.
	user, err := users.GetByUsername(ctx(t), "alice")
	require.NoError(t, err)
	assert.Equal(t, 40, user.TotalScore)
	assert.Equal(t, 2, user.ProblemsSolved)

	entries, err := subs.Leaderboard(ctx(t), comp1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 10, entries[0].TotalScore)
}

func TestResetStats(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	subs := NewSubmissionRepository(db)

	compID := seedCompetition(t, db, "Round 1", []models.Problem{
		{Slug: "two-sum", Title: "Two Sum", Points: 10},
	})

	require.NoError(t, subs.Save(ctx(t), "alice", "two-sum", true, compID, nil))
	require.NoError(t, users.RecalculateStats(ctx(t), "alice"))
	require.NoError(t, users.ResetStats(ctx(t)))

	user, err := users.GetByUsername(ctx(t), "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, user.TotalScore)
	assert.Equal(t, 0, user.ProblemsSolved)
}

func TestRecalculateStatsUnknownUserIsNoop(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)

	require.NoError(t, users.RecalculateStats(ctx(t), "ghost"))

	count, err := users.Count(ctx(t))
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}
