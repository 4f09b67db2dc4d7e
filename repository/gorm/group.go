package gorm

import (
	"context"
	"time"

	"github.com/leandro-lugaresi/hub"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/traPtitech/traPin/event"
	"github.com/traPtitech/traPin/model"
	"github.com/traPtitech/traPin/repository"
	"github.com/traPtitech/traPin/utils/gormutil"
)

// CreateGroup implements GroupRepository interface.
func (repo *Repository) CreateGroup(ctx context.Context, userID int, name string) (*model.Group, error) {
	if userID <= 0 {
		return nil, repository.ErrNilID
	}
	g := &model.Group{
		UserID: userID,
		Name:   name,
	}
	if err := repo.db.WithContext(ctx).Create(g).Error; err != nil {
		if gormutil.IsMySQLForeignKeyConstraintFailsError(err) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	repo.hub.Publish(hub.Message{
		Name: event.GroupCreated,
		Fields: hub.Fields{
			"group_id": g.ID,
			"group":    g,
		},
	})
	return g, nil
}

// GetDefaultGroup implements GroupRepository interface.
func (repo *Repository) GetDefaultGroup(ctx context.Context, userID int) (*model.Group, error) {
	return repo.getDefaultGroup(repo.db.WithContext(ctx), userID)
}

func (repo *Repository) getDefaultGroup(tx *gorm.DB, userID int) (*model.Group, error) {
	if userID <= 0 {
		return nil, repository.ErrNotFound
	}
	var g model.Group
	if err := tx.Where("user_id = ? AND is_default = ?", userID, true).First(&g).Error; err != nil {
		return nil, convertError(err)
	}
	return &g, nil
}

// GetGroupsByUserID implements GroupRepository interface.
func (repo *Repository) GetGroupsByUserID(ctx context.Context, userID int) ([]*model.Group, error) {
	groups := make([]*model.Group, 0)
	if userID <= 0 {
		return groups, nil
	}
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&groups).
		Error
	return groups, err
}

// GetGroupSummaries implements GroupRepository interface.
func (repo *Repository) GetGroupSummaries(ctx context.Context, userID int, since time.Time) ([]*model.GroupSummary, error) {
	result := make([]*model.GroupSummary, 0)
	if userID <= 0 {
		return result, nil
	}
	err := repo.db.WithContext(ctx).
		Raw("SELECT g.id AS group_id, g.name AS name, COUNT(p.id) AS count "+
			"FROM `groups` g LEFT JOIN pins p ON p.group_id = g.id AND p.created_at >= ? "+
			"WHERE g.user_id = ? "+
			"GROUP BY g.id, g.name "+
			"ORDER BY g.id", since, userID).
		Scan(&result).
		Error
	return result, err
}

// GetGroupPins implements GroupRepository interface.
func (repo *Repository) GetGroupPins(ctx context.Context, groupID int, since time.Time) ([]*model.GroupPin, error) {
	result := make([]*model.GroupPin, 0)
	if groupID <= 0 {
		return result, nil
	}
	err := repo.db.WithContext(ctx).
		Raw("SELECT p.id AS pin_id, u.nickname AS user_name, p.name AS name, p.address AS address, "+
			"p.category_id AS category_id, p.emotion_id AS emotion_id, g.name AS group_name "+
			"FROM pins p JOIN `groups` g ON g.id = p.group_id JOIN users u ON u.id = g.user_id "+
			"WHERE p.group_id = ? AND p.created_at >= ? "+
			"ORDER BY p.id", groupID, since).
		Scan(&result).
		Error
	return result, err
}

// DeleteGroup implements GroupRepository interface.
func (repo *Repository) DeleteGroup(ctx context.Context, id int) error {
	if id <= 0 {
		return repository.ErrNilID
	}
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var g model.Group
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&g).Error; err != nil {
			return convertError(err)
		}
		if g.IsDefault {
			return repository.ErrForbidden
		}
		// ピンは外部キー制約で削除される
		return tx.Where("id = ?", id).Delete(&model.Group{}).Error
	})
	if err != nil {
		return err
	}
	repo.hub.Publish(hub.Message{
		Name: event.GroupDeleted,
		Fields: hub.Fields{
			"group_id": id,
		},
	})
	return nil
}
