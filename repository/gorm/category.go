package gorm

import (
	"context"
	"time"

	"github.com/traPtitech/traPin/model"
)

// GetCategories implements CategoryRepository interface.
func (repo *Repository) GetCategories(ctx context.Context) ([]*model.Category, error) {
	categories := make([]*model.Category, 0)
	err := repo.db.WithContext(ctx).Order("id").Find(&categories).Error
	return categories, err
}

// GetTopCategories implements CategoryRepository interface.
func (repo *Repository) GetTopCategories(ctx context.Context, userID int, since time.Time, limit int) ([]*model.CategoryRanking, error) {
	result := make([]*model.CategoryRanking, 0)
	if userID <= 0 || limit <= 0 {
		return result, nil
	}
	err := repo.db.WithContext(ctx).
		Raw("SELECT c.id AS category_id, c.name AS name, COUNT(p.id) AS pin_count "+
			"FROM pins p JOIN `groups` g ON g.id = p.group_id JOIN categories c ON c.id = p.category_id "+
			"WHERE g.user_id = ? AND p.created_at >= ? "+
			"GROUP BY c.id, c.name "+
			"ORDER BY pin_count DESC, c.id "+
			"LIMIT ?", userID, since, limit).
		Scan(&result).
		Error
	return result, err
}
