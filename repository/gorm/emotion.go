package gorm

import (
	"context"

	"github.com/traPtitech/traPin/model"
)

// GetEmotions implements EmotionRepository interface.
func (repo *Repository) GetEmotions(ctx context.Context) ([]*model.Emotion, error) {
	emotions := make([]*model.Emotion, 0)
	err := repo.db.WithContext(ctx).Order("id").Find(&emotions).Error
	return emotions, err
}
