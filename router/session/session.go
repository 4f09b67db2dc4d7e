package session

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lthibault/jitterbug/v2"
	"go.uber.org/zap"
)

const (
	// CookieName セッションクッキー名
	CookieName     = "r_session"
	sessionMaxAge  = 60 * 60 * 24 * 14 // 2 weeks
	sessionKeepAge = 60 * 60 * 24 * 14 // 2 weeks
	cacheSize      = 2048
)

var ErrSessionNotFound = errors.New("session not found")

type Session interface {
	Token() string
	RefID() uuid.UUID
	UserID() int
	CreatedAt() time.Time
	LoggedIn() bool
	Expired() bool
	Refreshable() bool
}

type Store interface {
	// GetSession リクエストのクッキーからセッションを取得します
	//
	// セッションが無い場合はnil, nilを返します。
	// 期限切れでも更新可能なセッションは更新されます。
	GetSession(c echo.Context) (Session, error)
	GetSessionByToken(token string) (Session, error)
	// RevokeSession リクエストのセッションを破棄し、クッキーを削除します
	RevokeSession(c echo.Context) error
	// RenewSession リクエストのセッションを破棄し、userIDのユーザーの新しいセッションを発行してクッキーにセットします
	RenewSession(c echo.Context, userID int) (Session, error)
	IssueSession(userID int) (Session, error)
	// PurgeExpiredSessions 更新できなくなったセッションを全て削除し、削除した数を返します
	PurgeExpiredSessions() (int64, error)
}

func isExpired(createdAt time.Time) bool {
	return time.Since(createdAt) > time.Duration(sessionMaxAge)*time.Second
}

func isRefreshable(createdAt time.Time) bool {
	return time.Since(createdAt) <= time.Duration(sessionMaxAge+sessionKeepAge)*time.Second
}

func refreshDeadline() time.Time {
	return time.Now().Add(-time.Duration(sessionMaxAge+sessionKeepAge) * time.Second)
}

// RunGC ctxが終了するまで、intervalごとに更新できなくなったセッションを削除します
func RunGC(ctx context.Context, store Store, interval time.Duration, logger *zap.Logger) {
	t := jitterbug.New(interval, &jitterbug.Norm{Stdev: interval / 10})
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := store.PurgeExpiredSessions()
			if err != nil {
				logger.Error("failed to purge expired sessions", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Info("expired sessions were purged", zap.Int64("count", n))
			}
		}
	}
}
