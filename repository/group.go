//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package repository

import (
	"context"
	"time"

	"github.com/traPtitech/traPin/model"
)

// GroupRepository ピングループリポジトリ
type GroupRepository interface {
	// CreateGroup グループを作成します
	//
	// 成功した場合、グループとnilを返します。
	// 存在しないユーザーを指定した場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	CreateGroup(ctx context.Context, userID int, name string) (*model.Group, error)
	// GetDefaultGroup 指定したユーザーのデフォルトグループを取得します
	//
	// 成功した場合、グループとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetDefaultGroup(ctx context.Context, userID int) (*model.Group, error)
	// GetGroupsByUserID 指定したユーザーの全グループをID順で取得します
	//
	// 成功した場合、グループの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetGroupsByUserID(ctx context.Context, userID int) ([]*model.Group, error)
	// GetGroupSummaries 指定したユーザーの全グループとsince以降に作成されたピンの数をID順で取得します
	//
	// ピンが無いグループも数0で含まれます。
	// 成功した場合、配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetGroupSummaries(ctx context.Context, userID int, since time.Time) ([]*model.GroupSummary, error)
	// GetGroupPins 指定したグループのsince以降に作成されたピンを所有者名、グループ名付きで取得します
	//
	// 正でないIDを指定した場合、空配列とnilを返します。
	// 成功した場合、配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetGroupPins(ctx context.Context, groupID int, since time.Time) ([]*model.GroupPin, error)
	// DeleteGroup 指定したグループとそのピンを削除します
	//
	// 成功した場合、nilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// デフォルトグループを指定した場合、ErrForbiddenを返します。
	// DBによるエラーを返すことがあります。
	DeleteGroup(ctx context.Context, id int) error
}
