//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package repository

import (
	"context"

	"github.com/traPtitech/traPin/model"
	"github.com/traPtitech/traPin/utils/optional"
)

// CreatePinArgs ピン作成引数
type CreatePinArgs struct {
	Name       string
	Address    string
	CategoryID int
	EmotionID  int
	// GroupID 値が無い場合はユーザーのデフォルトグループ
	GroupID optional.Of[int]
}

// UpdatePinArgs ピン更新引数
type UpdatePinArgs struct {
	Name       optional.Of[string]
	Address    optional.Of[string]
	CategoryID optional.Of[int]
	EmotionID  optional.Of[int]
	GroupID    optional.Of[int]
}

// PinRepository ピンリポジトリ
type PinRepository interface {
	// CreatePin ピンを作成します
	//
	// args.GroupIDが無い場合、userIDのユーザーのデフォルトグループに作成します。
	// 成功した場合、ピンとnilを返します。
	// デフォルトグループが存在しない場合、ErrNotFoundを返します。
	// 存在しないカテゴリ・感情・グループを指定した場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	CreatePin(ctx context.Context, userID int, args CreatePinArgs) (*model.Pin, error)
	// GetPin 指定したIDのピンを取得します
	//
	// 成功した場合、ピンとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetPin(ctx context.Context, id int) (*model.Pin, error)
	// UpdatePin 指定したピンの値が存在するフィールドのみを更新します
	//
	// 成功した場合、nilを返します。対象が存在しなくてもnilを返します。
	// 存在しないカテゴリ・感情・グループを指定した場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	UpdatePin(ctx context.Context, id int, args UpdatePinArgs) error
	// DeletePin 指定したピンを削除します
	//
	// 成功した場合、nilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	DeletePin(ctx context.Context, id int) error
}
