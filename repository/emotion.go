//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package repository

import (
	"context"

	"github.com/traPtitech/traPin/model"
)

// EmotionRepository 感情リポジトリ
type EmotionRepository interface {
	// GetEmotions 全感情をID順で取得します
	//
	// 成功した場合、感情の配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetEmotions(ctx context.Context) ([]*model.Emotion, error)
}
