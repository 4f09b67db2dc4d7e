package extension

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/traPtitech/traPin/router/extension/herror"
)

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		err     error
		code    int
		body    string
		logged  bool
		request string
	}{
		{"http error", herror.BadRequest("duplicated follow"), http.StatusBadRequest, `{"message":"duplicated follow"}`, false, ""},
		{"http error without message", herror.Unauthorized(), http.StatusUnauthorized, `{"message":"Unauthorized"}`, false, ""},
		{"http error with error message", herror.BadRequest(errors.New("invalid")), http.StatusBadRequest, `{"message":"invalid"}`, false, ""},
		{"internal error", herror.InternalServerError(errors.New("db down")), http.StatusBadRequest, `{"message":"error"}`, true, "rid"},
		{"unknown error", errors.New("unknown"), http.StatusBadRequest, `{"message":"error"}`, true, "rid"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			core, logs := observer.New(zapcore.ErrorLevel)
			e := echo.New()
			e.HTTPErrorHandler = ErrorHandler(zap.New(core))
			e.GET("/", func(c echo.Context) error { return tc.err })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.request != "" {
				req.Header.Set(echo.HeaderXRequestID, tc.request)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.code, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
			if tc.logged {
				if assert.Equal(t, 1, logs.Len()) {
					assert.Equal(t, tc.request, logs.All()[0].ContextMap()["requestId"])
				}
			} else {
				assert.Zero(t, logs.Len())
			}
		})
	}
}

func TestContext_JSON(t *testing.T) {
	t.Parallel()
	e := echo.New()
	e.Use(Wrap())
	e.GET("/", func(c echo.Context) error { return c.JSON(http.StatusOK, echo.Map{"a": 1}) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMEApplicationJSONCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.JSONEq(t, `{"a":1}`, rec.Body.String())
}
