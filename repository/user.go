//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package repository

import (
	"context"

	"github.com/traPtitech/traPin/model"
)

// CreateUserArgs ユーザー作成引数
type CreateUserArgs struct {
	Email    string
	Nickname string
	Password string
}

// UserRepository ユーザーリポジトリ
type UserRepository interface {
	// CreateUser ユーザーとそのデフォルトグループを作成します
	//
	// ユーザーとデフォルトグループは同一トランザクションで作成されます。
	// 成功した場合、ユーザーとnilを返します。
	// 既に同じメールアドレスのユーザーが存在する場合、ErrAlreadyExistsを返します。
	// DBによるエラーを返すことがあります。
	CreateUser(ctx context.Context, args CreateUserArgs) (*model.User, error)
	// GetUser 指定したIDのユーザーを取得します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetUser(ctx context.Context, id int) (*model.User, error)
	// GetUserByEmail 指定したメールアドレスのユーザーを取得します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// UserExists 指定したIDのユーザーが存在するかどうかを返します
	//
	// 存在する場合、trueとnilを返します。
	// DBによるエラーを返すことがあります。
	UserExists(ctx context.Context, id int) (bool, error)
}
