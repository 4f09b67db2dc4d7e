package v1

import (
	"errors"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traPin/repository"
	"github.com/traPtitech/traPin/router/extension/herror"
	"github.com/traPtitech/traPin/utils/validator"
)

// GetMe GET /user
func (h *Handlers) GetMe(c echo.Context) error {
	user, err := h.Repo.GetUser(c.Request().Context(), getRequestUserID(c))
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// PostUserRequest POST /user リクエストボディ
type PostUserRequest struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

func (r PostUserRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Email, validator.EmailRuleRequired...),
		vd.Field(&r.Nickname, validator.NicknameRuleRequired...),
		vd.Field(&r.Password, validator.PasswordRuleRequired...),
	)
}

// PostUser POST /user
func (h *Handlers) PostUser(c echo.Context) error {
	var req PostUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.Repo.CreateUser(c.Request().Context(), repository.CreateUserArgs{
		Email:    req.Email,
		Nickname: req.Nickname,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return herror.BadRequest("already joined user")
		}
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, user)
}
