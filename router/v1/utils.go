package v1

import (
	"strconv"
	"time"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traPin/model"
	"github.com/traPtitech/traPin/router/consts"
	"github.com/traPtitech/traPin/router/extension/herror"
	"github.com/traPtitech/traPin/utils/optional"
)

// bindAndValidate 構造体iにFormDataまたはJsonをデシリアライズします
func bindAndValidate(c echo.Context, i interface{}) error {
	if err := c.Bind(i); err != nil {
		return err
	}
	if err := vd.Validate(i); err != nil {
		if e, ok := err.(vd.InternalError); ok {
			return herror.InternalServerError(e.InternalError())
		}
		return herror.BadRequest(err)
	}
	return nil
}

// getRequestUserID リクエストしてきたユーザーのIDを取得
//
// UserAuthenticateを通過したハンドラでのみ使用できます
func getRequestUserID(c echo.Context) int {
	return c.Get(consts.KeyUserID).(optional.Of[int]).V
}

// getParamID URLのパスパラメータをIDとして取得
func getParamID(c echo.Context, param string) (int, error) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil {
		return 0, herror.BadRequest(herror.InternalErrorMessage)
	}
	return id, nil
}

// retentionSince 集計対象となるピンの作成日時の下限
func retentionSince() time.Time {
	return time.Now().AddDate(-model.PinRetentionYears, 0, 0)
}
