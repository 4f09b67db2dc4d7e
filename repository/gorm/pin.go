package gorm

import (
	"context"

	"github.com/leandro-lugaresi/hub"
	"gorm.io/gorm"

	"github.com/traPtitech/traPin/event"
	"github.com/traPtitech/traPin/model"
	"github.com/traPtitech/traPin/repository"
	"github.com/traPtitech/traPin/utils/gormutil"
)

// CreatePin implements PinRepository interface.
func (repo *Repository) CreatePin(ctx context.Context, userID int, args repository.CreatePinArgs) (*model.Pin, error) {
	pin := &model.Pin{
		Name:       args.Name,
		Address:    args.Address,
		CategoryID: args.CategoryID,
		EmotionID:  args.EmotionID,
	}
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if args.GroupID.Valid {
			pin.GroupID = args.GroupID.V
		} else {
			g, err := repo.getDefaultGroup(tx, userID)
			if err != nil {
				return err
			}
			pin.GroupID = g.ID
		}

		err := tx.Create(pin).Error
		if gormutil.IsMySQLForeignKeyConstraintFailsError(err) {
			return repository.ArgError("pin", "invalid category, emotion or group")
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	repo.hub.Publish(hub.Message{
		Name: event.PinCreated,
		Fields: hub.Fields{
			"pin_id": pin.ID,
			"pin":    pin,
		},
	})
	return pin, nil
}

// GetPin implements PinRepository interface.
func (repo *Repository) GetPin(ctx context.Context, id int) (*model.Pin, error) {
	if id <= 0 {
		return nil, repository.ErrNotFound
	}
	var pin model.Pin
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&pin).Error; err != nil {
		return nil, convertError(err)
	}
	return &pin, nil
}

// UpdatePin implements PinRepository interface.
func (repo *Repository) UpdatePin(ctx context.Context, id int, args repository.UpdatePinArgs) error {
	changes := map[string]interface{}{}
	if args.Name.Valid {
		changes["name"] = args.Name.V
	}
	if args.Address.Valid {
		changes["address"] = args.Address.V
	}
	if args.CategoryID.Valid {
		changes["category_id"] = args.CategoryID.V
	}
	if args.EmotionID.Valid {
		changes["emotion_id"] = args.EmotionID.V
	}
	if args.GroupID.Valid {
		changes["group_id"] = args.GroupID.V
	}
	if len(changes) == 0 || id <= 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).Model(&model.Pin{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		if gormutil.IsMySQLForeignKeyConstraintFailsError(result.Error) {
			return repository.ArgError("pin", "invalid category, emotion or group")
		}
		return result.Error
	}
	if result.RowsAffected > 0 {
		repo.hub.Publish(hub.Message{
			Name: event.PinUpdated,
			Fields: hub.Fields{
				"pin_id": id,
			},
		})
	}
	return nil
}

// DeletePin implements PinRepository interface.
func (repo *Repository) DeletePin(ctx context.Context, id int) error {
	if id <= 0 {
		return repository.ErrNilID
	}
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Pin{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	repo.hub.Publish(hub.Message{
		Name: event.PinDeleted,
		Fields: hub.Fields{
			"pin_id": id,
		},
	})
	return nil
}
