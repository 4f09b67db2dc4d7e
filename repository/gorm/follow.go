package gorm

import (
	"context"

	"github.com/leandro-lugaresi/hub"

	"github.com/traPtitech/traPin/event"
	"github.com/traPtitech/traPin/model"
	"github.com/traPtitech/traPin/repository"
	"github.com/traPtitech/traPin/utils/gormutil"
)

// CreateFollow implements FollowRepository interface.
func (repo *Repository) CreateFollow(ctx context.Context, followerID, followingID int) (*model.Follow, error) {
	if followerID <= 0 || followingID <= 0 {
		return nil, repository.ErrNilID
	}
	if followerID == followingID {
		return nil, repository.ArgError("followingId", "cannot follow yourself")
	}

	// 重複は主キー制約で検出する
	f := &model.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err := repo.db.WithContext(ctx).Create(f).Error; err != nil {
		switch {
		case gormutil.IsMySQLDuplicatedRecordErr(err):
			return nil, repository.ErrAlreadyExists
		case gormutil.IsMySQLForeignKeyConstraintFailsError(err):
			return nil, repository.ErrNotFound
		default:
			return nil, err
		}
	}
	repo.hub.Publish(hub.Message{
		Name: event.FollowCreated,
		Fields: hub.Fields{
			"follower_id":  followerID,
			"following_id": followingID,
		},
	})
	return f, nil
}

// GetFollowings implements FollowRepository interface.
func (repo *Repository) GetFollowings(ctx context.Context, followerID int) ([]*model.Follow, error) {
	follows := make([]*model.Follow, 0)
	if followerID <= 0 {
		return follows, nil
	}
	err := repo.db.WithContext(ctx).
		Preload("Following").
		Where("follower_id = ?", followerID).
		Order("created_at").
		Find(&follows).
		Error
	return follows, err
}

// DeleteFollow implements FollowRepository interface.
func (repo *Repository) DeleteFollow(ctx context.Context, followerID, followingID int) error {
	if followerID <= 0 || followingID <= 0 {
		return repository.ErrNilID
	}
	result := repo.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	repo.hub.Publish(hub.Message{
		Name: event.FollowDeleted,
		Fields: hub.Fields{
			"follower_id":  followerID,
			"following_id": followingID,
		},
	})
	return nil
}
