package v1

import (
	"errors"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/traPin/router/auth"
	"github.com/traPtitech/traPin/router/extension/herror"
)

const (
	authErrorMessage  = "Auth Error"
	loginErrorMessage = "Login Error"
)

// PostLoginRequest POST /user/login リクエストボディ
type PostLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r PostLoginRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Email, vd.Required),
		vd.Field(&r.Password, vd.Required),
	)
}

// PostLogin POST /user/login
func (h *Handlers) PostLogin(c echo.Context) error {
	var req PostLoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return herror.BadRequest(loginErrorMessage)
	}

	user, err := h.Authenticator.Authenticate(c.Request().Context(), auth.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return herror.BadRequest(loginErrorMessage)
		}
		h.Logger.Error("authenticator failed", zap.Error(err))
		return herror.BadRequest(authErrorMessage)
	}

	sess, err := h.SessStore.RenewSession(c, user.ID)
	if err != nil {
		h.Logger.Error("failed to issue session", zap.Error(err), zap.Int("userId", user.ID))
		return herror.BadRequest(loginErrorMessage)
	}
	// トークンは記録しない
	h.Logger.Info("user logged in", zap.Int("userId", user.ID), zap.Stringer("sessionRef", sess.RefID()))
	return success(c)
}

// GetLogout GET /user/logout
func (h *Handlers) GetLogout(c echo.Context) error {
	if err := h.SessStore.RevokeSession(c); err != nil {
		return herror.InternalServerError(err)
	}
	return success(c)
}
