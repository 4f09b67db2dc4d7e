package gorm

import (
	"context"
	"testing"
	"time"

	"github.com/traPtitech/traPin/model"
	"github.com/traPtitech/traPin/repository"
	"github.com/traPtitech/traPin/utils/gormutil"
	"github.com/traPtitech/traPin/utils/optional"
)

func threeYearsAgo() time.Time {
	return time.Now().AddDate(-model.PinRetentionYears, 0, 0)
}

func TestRepository_CreateGroup(t *testing.T) {
	t.Parallel()
	repo, assert, require, user := setupWithUser(t, common)
	ctx := context.Background()

	g, err := repo.CreateGroup(ctx, user.ID, "카페 모음")
	require.NoError(err)
	assert.NotZero(g.ID)
	assert.Equal(user.ID, g.UserID)
	assert.Equal("카페 모음", g.Name)
	assert.False(g.IsDefault)

	_, err = repo.CreateGroup(ctx, 0, "test")
	assert.ErrorIs(err, repository.ErrNilID)

	_, err = repo.CreateGroup(ctx, 1<<30, "test")
	assert.ErrorIs(err, repository.ErrNotFound)
}

func TestRepository_GetGroupsByUserID(t *testing.T) {
	t.Parallel()
	repo, assert, require, user := setupWithUser(t, common)
	ctx := context.Background()

	g1 := mustMakeGroup(t, repo, user.ID, rand)
	g2 := mustMakeGroup(t, repo, user.ID, rand)

	groups, err := repo.GetGroupsByUserID(ctx, user.ID)
	require.NoError(err)
	if assert.Len(groups, 3) {
		assert.True(groups[0].IsDefault)
		assert.Equal(g1.ID, groups[1].ID)
		assert.Equal(g2.ID, groups[2].ID)
	}

	groups, err = repo.GetGroupsByUserID(ctx, 0)
	require.NoError(err)
	assert.Empty(groups)
}

func TestRepository_GetGroupSummaries(t *testing.T) {
	t.Parallel()
	repo, assert, require, user := setupWithUser(t, common)
	ctx := context.Background()

	def, err := repo.GetDefaultGroup(ctx, user.ID)
	require.NoError(err)
	g1 := mustMakeGroup(t, repo, user.ID, rand)
	g2 := mustMakeGroup(t, repo, user.ID, rand)

	mustMakePin(t, repo, user.ID, optional.Of[int]{}, 1)
	mustMakePin(t, repo, user.ID, optional.From(g1.ID), 1)
	mustMakePin(t, repo, user.ID, optional.From(g1.ID), 2)
	old := mustMakePin(t, repo, user.ID, optional.From(g1.ID), 2)
	require.NoError(getDB(repo).Model(&model.Pin{}).Where("id = ?", old.ID).Update("created_at", time.Now().AddDate(-4, 0, 0)).Error)

	summaries, err := repo.GetGroupSummaries(ctx, user.ID, threeYearsAgo())
	require.NoError(err)
	if assert.Len(summaries, 3) {
		assert.Equal(model.GroupSummary{GroupID: def.ID, Name: model.DefaultGroupName, Count: 1}, *summaries[0])
		assert.Equal(model.GroupSummary{GroupID: g1.ID, Name: g1.Name, Count: 2}, *summaries[1])
		assert.Equal(model.GroupSummary{GroupID: g2.ID, Name: g2.Name, Count: 0}, *summaries[2])
	}

	summaries, err = repo.GetGroupSummaries(ctx, 0, threeYearsAgo())
	require.NoError(err)
	assert.Empty(summaries)
}

func TestRepository_GetGroupPins(t *testing.T) {
	t.Parallel()
	repo, assert, require, user := setupWithUser(t, common)
	ctx := context.Background()

	g := mustMakeGroup(t, repo, user.ID, rand)
	p1 := mustMakePin(t, repo, user.ID, optional.From(g.ID), 3)
	p2 := mustMakePin(t, repo, user.ID, optional.From(g.ID), 4)
	old := mustMakePin(t, repo, user.ID, optional.From(g.ID), 4)
	require.NoError(getDB(repo).Model(&model.Pin{}).Where("id = ?", old.ID).Update("created_at", time.Now().AddDate(-4, 0, 0)).Error)

	pins, err := repo.GetGroupPins(ctx, g.ID, threeYearsAgo())
	require.NoError(err)
	if assert.Len(pins, 2) {
		assert.Equal(model.GroupPin{
			PinID:      p1.ID,
			UserName:   user.Nickname,
			Name:       p1.Name,
			Address:    p1.Address,
			CategoryID: 3,
			EmotionID:  1,
			GroupName:  g.Name,
		}, *pins[0])
		assert.Equal(p2.ID, pins[1].PinID)
	}

	for _, id := range []int{-1, 0} {
		pins, err := repo.GetGroupPins(ctx, id, threeYearsAgo())
		require.NoError(err)
		assert.NotNil(pins)
		assert.Empty(pins)
	}
}

func TestRepository_DeleteGroup(t *testing.T) {
	t.Parallel()
	repo, _, _, user := setupWithUser(t, common)
	ctx := context.Background()

	t.Run("cascade pins", func(t *testing.T) {
		t.Parallel()
		assert, require := assertAndRequire(t)

		g := mustMakeGroup(t, repo, user.ID, rand)
		p := mustMakePin(t, repo, user.ID, optional.From(g.ID), 1)

		require.NoError(repo.DeleteGroup(ctx, g.ID))
		exists, err := gormutil.RecordExists(repo.db, &model.Group{ID: g.ID})
		require.NoError(err)
		assert.False(exists)
		_, err = repo.GetPin(ctx, p.ID)
		assert.ErrorIs(err, repository.ErrNotFound)
	})

	t.Run("default group", func(t *testing.T) {
		t.Parallel()
		assert, require := assertAndRequire(t)

		def, err := repo.GetDefaultGroup(ctx, user.ID)
		require.NoError(err)
		assert.ErrorIs(repo.DeleteGroup(ctx, def.ID), repository.ErrForbidden)
		exists, err := gormutil.RecordExists(repo.db, &model.Group{ID: def.ID})
		require.NoError(err)
		assert.True(exists)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		assert, _ := assertAndRequire(t)

		assert.ErrorIs(repo.DeleteGroup(ctx, 1<<30), repository.ErrNotFound)
		assert.ErrorIs(repo.DeleteGroup(ctx, 0), repository.ErrNilID)
	})
}
