package gorm

import (
	"context"

	"github.com/leandro-lugaresi/hub"
	"gorm.io/gorm"

	"github.com/traPtitech/traPin/event"
	"github.com/traPtitech/traPin/model"
	"github.com/traPtitech/traPin/repository"
	"github.com/traPtitech/traPin/utils/gormutil"
	"github.com/traPtitech/traPin/utils/random"
)

// CreateUser implements UserRepository interface.
func (repo *Repository) CreateUser(ctx context.Context, args repository.CreateUserArgs) (*model.User, error) {
	user := &model.User{
		Email:    args.Email,
		Nickname: args.Nickname,
	}
	user.SetPassword(args.Password, random.Salt())

	var group *model.Group
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if exists, err := gormutil.RecordExists(tx, &model.User{Email: user.Email}); err != nil {
			return err
		} else if exists {
			return repository.ErrAlreadyExists
		}

		if err := tx.Create(user).Error; err != nil {
			if gormutil.IsMySQLDuplicatedRecordErr(err) {
				return repository.ErrAlreadyExists
			}
			return err
		}

		group = &model.Group{
			UserID:    user.ID,
			Name:      model.DefaultGroupName,
			IsDefault: true,
		}
		return tx.Create(group).Error
	})
	if err != nil {
		return nil, err
	}

	repo.hub.Publish(hub.Message{
		Name: event.UserCreated,
		Fields: hub.Fields{
			"user_id": user.ID,
			"user":    user,
		},
	})
	repo.hub.Publish(hub.Message{
		Name: event.GroupCreated,
		Fields: hub.Fields{
			"group_id": group.ID,
			"group":    group,
		},
	})
	return user, nil
}

// GetUser implements UserRepository interface.
func (repo *Repository) GetUser(ctx context.Context, id int) (*model.User, error) {
	if id <= 0 {
		return nil, repository.ErrNotFound
	}
	var user model.User
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

// GetUserByEmail implements UserRepository interface.
func (repo *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if len(email) == 0 {
		return nil, repository.ErrNotFound
	}
	var user model.User
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

// UserExists implements UserRepository interface.
func (repo *Repository) UserExists(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	return gormutil.Exists(repo.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id))
}
