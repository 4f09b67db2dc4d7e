package middlewares

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/singleflight"

	"github.com/traPtitech/traPin/repository"
	"github.com/traPtitech/traPin/router/consts"
	"github.com/traPtitech/traPin/router/extension/herror"
	"github.com/traPtitech/traPin/router/session"
	"github.com/traPtitech/traPin/utils/optional"
)

// NoUserInSessionMessage セッションにユーザーが無い場合のメッセージ
const NoUserInSessionMessage = "no user in session"

// Identify セッションからリクエストユーザーを特定するミドルウェア
//
// ログインしていない場合も処理を続行し、値の無いoptional.Of[int]をセットします
func Identify(sessStore session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var uid optional.Of[int]
			sess, err := sessStore.GetSession(c)
			if err != nil {
				return herror.InternalServerError(err)
			}
			if sess != nil && sess.LoggedIn() {
				uid = optional.From(sess.UserID())
			}
			c.Set(consts.KeyUserID, uid)
			return next(c)
		}
	}
}

// UserAuthenticate リクエスト認証ミドルウェア
//
// Identifyの後に使用します
func UserAuthenticate(repo repository.Repository) echo.MiddlewareFunc {
	var sfUser singleflight.Group

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, _ := c.Get(consts.KeyUserID).(optional.Of[int])
			if !uid.Valid {
				return herror.Unauthorized(NoUserInSessionMessage)
			}

			// 退会済みユーザーのセッションを弾く
			// まとめられた他のリクエストに切断を波及させない
			ctx := context.WithoutCancel(c.Request().Context())
			ok, err, _ := sfUser.Do(strconv.Itoa(uid.V), func() (interface{}, error) {
				return repo.UserExists(ctx, uid.V)
			})
			if err != nil {
				return herror.InternalServerError(err)
			}
			if !ok.(bool) {
				return herror.Unauthorized(NoUserInSessionMessage)
			}
			return next(c)
		}
	}
}
