//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package repository

import (
	"context"

	"github.com/traPtitech/traPin/model"
)

// FollowRepository フォローリポジトリ
type FollowRepository interface {
	// CreateFollow followerIDのユーザーがfollowingIDのユーザーをフォローします
	//
	// 成功した場合、フォローとnilを返します。
	// 既にフォローしている場合、ErrAlreadyExistsを返します。
	// 存在しないユーザーを指定した場合、ErrNotFoundを返します。
	// 自分自身を指定した場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	CreateFollow(ctx context.Context, followerID, followingID int) (*model.Follow, error)
	// GetFollowings followerIDのユーザーのフォローを、フォロー先ユーザー付きで取得します
	//
	// 成功した場合、フォローの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetFollowings(ctx context.Context, followerID int) ([]*model.Follow, error)
	// DeleteFollow followerIDのユーザーのfollowingIDのユーザーへのフォローを解除します
	//
	// 成功した場合、nilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	DeleteFollow(ctx context.Context, followerID, followingID int) error
}
