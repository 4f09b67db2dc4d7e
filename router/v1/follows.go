package v1

import (
	"errors"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traPin/repository"
	"github.com/traPtitech/traPin/router/consts"
	"github.com/traPtitech/traPin/router/extension/herror"
	"github.com/traPtitech/traPin/utils/validator"
)

// GetFollowings GET /user/following
func (h *Handlers) GetFollowings(c echo.Context) error {
	follows, err := h.Repo.GetFollowings(c.Request().Context(), getRequestUserID(c))
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, follows)
}

// PostFollowingRequest POST /user/following リクエストボディ
type PostFollowingRequest struct {
	UserID int `json:"userId"`
}

func (r PostFollowingRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.UserID, vd.Required, validator.PositiveID),
	)
}

// PostFollowing POST /user/following
func (h *Handlers) PostFollowing(c echo.Context) error {
	var req PostFollowingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	follow, err := h.Repo.CreateFollow(c.Request().Context(), getRequestUserID(c), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			return herror.BadRequest("duplicated follow")
		case repository.IsArgError(err):
			return herror.BadRequest(err)
		case errors.Is(err, repository.ErrNotFound):
			return herror.BadRequest(herror.InternalErrorMessage)
		default:
			return herror.InternalServerError(err)
		}
	}
	return c.JSON(http.StatusOK, follow)
}

// DeleteFollowing DELETE /user/following/:userID
func (h *Handlers) DeleteFollowing(c echo.Context) error {
	followingID, err := getParamID(c, consts.ParamUserID)
	if err != nil {
		return err
	}

	if err := h.Repo.DeleteFollow(c.Request().Context(), getRequestUserID(c), followingID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrNilID):
		default:
			return herror.InternalServerError(err)
		}
	}
	return success(c)
}
