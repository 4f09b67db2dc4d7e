package extension

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/traPin/router/extension/herror"
)

// ErrorHandler カスタムエラーハンドラ
//
// 内部エラーはログに記録し、クライアントには400 {"message":"error"}を返します
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(e error, c echo.Context) {
		var (
			code int
			body interface{}
		)

		switch err := e.(type) {
		case nil:
			return
		case *echo.HTTPError:
			if err.Internal != nil {
				if herr, ok := err.Internal.(*echo.HTTPError); ok {
					err = herr
				}
			}
			if m, ok := err.Message.(string); ok {
				body = echo.Map{"message": m}
			} else if e, ok := err.Message.(error); ok {
				body = echo.Map{"message": e.Error()}
			} else {
				body = echo.Map{"message": http.StatusText(err.Code)}
			}

			code = err.Code
		case *herror.InternalError:
			logger.Error(err.Err.Error(), append(err.Fields, zap.String("requestId", GetRequestID(c)))...)
			code = http.StatusBadRequest
			body = echo.Map{"message": herror.InternalErrorMessage}
		default:
			logger.Error(err.Error(), zap.String("requestId", GetRequestID(c)))
			code = http.StatusBadRequest
			body = echo.Map{"message": herror.InternalErrorMessage}
		}

		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				e = c.NoContent(code)
			} else {
				e = json(c, code, body, jsoniter.ConfigFastest)
			}
			if e != nil {
				logger.Warn("failed to send error response", zap.Error(e), zap.String("requestId", GetRequestID(c)))
			}
		}
	}
}
