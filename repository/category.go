//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package repository

import (
	"context"
	"time"

	"github.com/traPtitech/traPin/model"
)

// CategoryRepository カテゴリリポジトリ
type CategoryRepository interface {
	// GetCategories 全カテゴリをID順で取得します
	//
	// 成功した場合、カテゴリの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetCategories(ctx context.Context) ([]*model.Category, error)
	// GetTopCategories userIDのユーザーがsince以降に作成したピンの数が多いカテゴリを最大limit件取得します
	//
	// ピン数の降順、同数の場合はカテゴリIDの昇順に並びます。
	// 成功した場合、配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetTopCategories(ctx context.Context, userID int, since time.Time, limit int) ([]*model.CategoryRanking, error)
}
