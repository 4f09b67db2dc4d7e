package gorm

import (
	"context"
	"testing"

	"github.com/traPtitech/traPin/repository"
	"github.com/traPtitech/traPin/utils/optional"
)

func TestRepository_CreatePin(t *testing.T) {
	t.Parallel()
	repo, _, _, user := setupWithUser(t, common)
	ctx := context.Background()

	t.Run("default group", func(t *testing.T) {
		t.Parallel()
		assert, require := assertAndRequire(t)

		def, err := repo.GetDefaultGroup(ctx, user.ID)
		require.NoError(err)

		p, err := repo.CreatePin(ctx, user.ID, repository.CreatePinArgs{
			Name:       "성수 카페",
			Address:    "서울 성동구",
			CategoryID: 2,
			EmotionID:  1,
		})
		require.NoError(err)
		assert.NotZero(p.ID)
		assert.Equal(def.ID, p.GroupID)
		assert.Equal("성수 카페", p.Name)
		assert.Equal("서울 성동구", p.Address)
	})

	t.Run("explicit group", func(t *testing.T) {
		t.Parallel()
		assert, _ := assertAndRequire(t)

		g := mustMakeGroup(t, repo, user.ID, rand)
		p := mustMakePin(t, repo, user.ID, optional.From(g.ID), 1)
		assert.Equal(g.ID, p.GroupID)
	})

	t.Run("invalid references", func(t *testing.T) {
		t.Parallel()
		assert, _ := assertAndRequire(t)

		_, err := repo.CreatePin(ctx, user.ID, repository.CreatePinArgs{Name: "a", CategoryID: 999, EmotionID: 1})
		assert.True(repository.IsArgError(err))
		_, err = repo.CreatePin(ctx, user.ID, repository.CreatePinArgs{Name: "a", CategoryID: 1, EmotionID: 1, GroupID: optional.From(1 << 30)})
		assert.True(repository.IsArgError(err))
	})

	t.Run("user without default group", func(t *testing.T) {
		t.Parallel()
		assert, _ := assertAndRequire(t)

		_, err := repo.CreatePin(ctx, 1<<30, repository.CreatePinArgs{Name: "a", CategoryID: 1, EmotionID: 1})
		assert.ErrorIs(err, repository.ErrNotFound)
	})
}

func TestRepository_UpdatePin(t *testing.T) {
	t.Parallel()
	repo, assert, require, user := setupWithUser(t, common)
	ctx := context.Background()

	p := mustMakePin(t, repo, user.ID, optional.Of[int]{}, 1)
	g := mustMakeGroup(t, repo, user.ID, rand)

	require.NoError(repo.UpdatePin(ctx, p.ID, repository.UpdatePinArgs{
		Name:    optional.From("new name"),
		GroupID: optional.From(g.ID),
	}))
	got, err := repo.GetPin(ctx, p.ID)
	require.NoError(err)
	assert.Equal("new name", got.Name)
	assert.Equal(p.Address, got.Address)
	assert.Equal(g.ID, got.GroupID)
	assert.Equal(1, got.CategoryID)

	// 変更なし
	assert.NoError(repo.UpdatePin(ctx, p.ID, repository.UpdatePinArgs{}))
	// 存在しないピン
	assert.NoError(repo.UpdatePin(ctx, 1<<30, repository.UpdatePinArgs{Name: optional.From("x")}))
	// 存在しないカテゴリ
	assert.True(repository.IsArgError(repo.UpdatePin(ctx, p.ID, repository.UpdatePinArgs{CategoryID: optional.From(999)})))
}

func TestRepository_DeletePin(t *testing.T) {
	t.Parallel()
	repo, assert, require, user := setupWithUser(t, common)
	ctx := context.Background()

	p := mustMakePin(t, repo, user.ID, optional.Of[int]{}, 1)

	require.NoError(repo.DeletePin(ctx, p.ID))
	_, err := repo.GetPin(ctx, p.ID)
	assert.ErrorIs(err, repository.ErrNotFound)

	assert.ErrorIs(repo.DeletePin(ctx, p.ID), repository.ErrNotFound)
	assert.ErrorIs(repo.DeletePin(ctx, 0), repository.ErrNilID)
}
