package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/traPtitech/traPin/model"
	"github.com/traPtitech/traPin/repository"
)

var (
	// ErrInvalidCredentials メールアドレスまたはパスワードが間違っている
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Credentials ログイン資格情報
type Credentials struct {
	Email    string
	Password string
}

// Authenticator 資格情報を検証してユーザーを特定します
type Authenticator interface {
	// Authenticate 資格情報を検証します
	//
	// 成功した場合、ユーザーとnilを返します。
	// ユーザーが存在しないかパスワードが間違っている場合、ErrInvalidCredentialsを返します。
	// それ以外のエラーは認証器自体の失敗を表します。
	Authenticate(ctx context.Context, cred Credentials) (*model.User, error)
}

// LocalAuthenticator リポジトリのユーザーに対してパスワードを検証する認証器
type LocalAuthenticator struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

// NewLocalAuthenticator LocalAuthenticatorを生成します
func NewLocalAuthenticator(repo repository.Repository, logger *zap.Logger) *LocalAuthenticator {
	return &LocalAuthenticator{repo: repo, logger: logger.Named("auth")}
}

// Authenticate implements Authenticator interface.
func (a *LocalAuthenticator) Authenticate(ctx context.Context, cred Credentials) (*model.User, error) {
	user, err := a.repo.GetUserByEmail(ctx, cred.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := user.Authenticate(cred.Password); err != nil {
		if errors.Is(err, model.ErrUserWrongIDOrPassword) {
			a.logger.Debug("password mismatch", zap.Int("userId", user.ID))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}
