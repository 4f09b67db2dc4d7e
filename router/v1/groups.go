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

// GetGroups GET /user/groups
func (h *Handlers) GetGroups(c echo.Context) error {
	groups, err := h.Repo.GetGroupSummaries(c.Request().Context(), getRequestUserID(c), retentionSince())
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, groups)
}

// PostGroupRequest POST /user/group リクエストボディ
type PostGroupRequest struct {
	Name string `json:"name"`
}

func (r PostGroupRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Name, validator.GroupNameRuleRequired...),
	)
}

// PostGroup POST /user/group
func (h *Handlers) PostGroup(c echo.Context) error {
	var req PostGroupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	group, err := h.Repo.CreateGroup(c.Request().Context(), getRequestUserID(c), req.Name)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, group)
}

// DeleteGroup DELETE /user/group/:groupID
func (h *Handlers) DeleteGroup(c echo.Context) error {
	groupID, err := getParamID(c, consts.ParamGroupID)
	if err != nil {
		return err
	}

	if err := h.Repo.DeleteGroup(c.Request().Context(), groupID); err != nil {
		switch {
		case errors.Is(err, repository.ErrForbidden):
			return herror.BadRequest("cannot delete default group")
		case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrNilID):
		default:
			return herror.InternalServerError(err)
		}
	}
	return success(c)
}

// GetGroupPins GET /user/group/:groupID/pins
func (h *Handlers) GetGroupPins(c echo.Context) error {
	groupID, err := getParamID(c, consts.ParamGroupID)
	if err != nil {
		return err
	}

	pins, err := h.Repo.GetGroupPins(c.Request().Context(), groupID, retentionSince())
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, pins)
}
