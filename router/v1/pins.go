package v1

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/traPtitech/traPin/model"
	"github.com/traPtitech/traPin/repository"
	"github.com/traPtitech/traPin/router/consts"
	"github.com/traPtitech/traPin/router/extension/herror"
	"github.com/traPtitech/traPin/router/form"
	"github.com/traPtitech/traPin/utils/optional"
	"github.com/traPtitech/traPin/utils/validator"
)

// noGroupID 旧クライアントがデフォルトグループを表すために送るgroupId
const noGroupID = -1

// PostPinRequest POST /user/pin リクエストボディ
type PostPinRequest struct {
	Name       string `json:"name" form:"name"`
	Address    string `json:"address" form:"address"`
	CategoryID int    `json:"categoryId" form:"categoryId"`
	EmotionID  int    `json:"emotionId" form:"emotionId"`
	// GroupID 未指定、null、-1の場合はデフォルトグループ
	GroupID optional.Of[int] `json:"groupId" form:"groupId"`
}

func (r PostPinRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Name, validator.PinNameRuleRequired...),
		vd.Field(&r.Address, validator.AddressRule...),
		vd.Field(&r.CategoryID, vd.Required, validator.PositiveID),
		vd.Field(&r.EmotionID, vd.Required, validator.PositiveID),
	)
}

// PostPin POST /user/pin
func (h *Handlers) PostPin(c echo.Context) error {
	var req PostPinRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	groupID := req.GroupID
	if groupID.Valid && groupID.V == noGroupID {
		groupID = optional.Of[int]{}
	}

	pin, err := h.Repo.CreatePin(c.Request().Context(), getRequestUserID(c), repository.CreatePinArgs{
		Name:       req.Name,
		Address:    req.Address,
		CategoryID: req.CategoryID,
		EmotionID:  req.EmotionID,
		GroupID:    groupID,
	})
	if err != nil {
		if repository.IsArgError(err) {
			return herror.BadRequest(err)
		}
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, pin)
}

// GetPin GET /pins/:pinID
func (h *Handlers) GetPin(c echo.Context) error {
	pinID, err := getParamID(c, consts.ParamPinID)
	if err != nil {
		return err
	}

	pin, err := h.Repo.GetPin(c.Request().Context(), pinID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return herror.BadRequest(herror.InternalErrorMessage)
		}
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, pin)
}

// PatchPinRequest PATCH /user/pin/:pinID リクエストボディ
type PatchPinRequest struct {
	Name       optional.Of[string] `json:"name"`
	Address    optional.Of[string] `json:"address"`
	CategoryID optional.Of[int]    `json:"categoryId"`
	EmotionID  optional.Of[int]    `json:"emotionId"`
	GroupID    optional.Of[int]    `json:"groupId"`
}

func (r PatchPinRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Name, append([]vd.Rule{vd.NilOrNotEmpty}, validator.PinNameRule...)...),
		vd.Field(&r.Address, validator.AddressRule...),
		vd.Field(&r.CategoryID, vd.NilOrNotEmpty, validator.PositiveID),
		vd.Field(&r.EmotionID, vd.NilOrNotEmpty, validator.PositiveID),
		vd.Field(&r.GroupID, vd.NilOrNotEmpty, validator.PositiveID),
	)
}

// PatchPin PATCH /user/pin/:pinID
func (h *Handlers) PatchPin(c echo.Context) error {
	pinID, err := getParamID(c, consts.ParamPinID)
	if err != nil {
		return err
	}

	var req PatchPinRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.Repo.UpdatePin(c.Request().Context(), pinID, repository.UpdatePinArgs{
		Name:       req.Name,
		Address:    req.Address,
		CategoryID: req.CategoryID,
		EmotionID:  req.EmotionID,
		GroupID:    req.GroupID,
	})
	if err != nil {
		if repository.IsArgError(err) {
			return herror.BadRequest(err)
		}
		return herror.InternalServerError(err)
	}
	return success(c)
}

// DeletePin DELETE /user/pin/:pinID
func (h *Handlers) DeletePin(c echo.Context) error {
	pinID, err := getParamID(c, consts.ParamPinID)
	if err != nil {
		return err
	}

	if err := h.Repo.DeletePin(c.Request().Context(), pinID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrNilID):
		default:
			return herror.InternalServerError(err)
		}
	}
	return success(c)
}

// GetPinForm GET /user/pin/form
func (h *Handlers) GetPinForm(c echo.Context) error {
	ctx := c.Request().Context()
	userID := getRequestUserID(c)

	var (
		categories []*model.Category
		emotions   []*model.Emotion
		groups     []*model.Group
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		categories, err = h.Repo.GetCategories(ctx)
		return
	})
	eg.Go(func() (err error) {
		emotions, err = h.Repo.GetEmotions(ctx)
		return
	})
	eg.Go(func() (err error) {
		groups, err = h.Repo.GetGroupsByUserID(ctx, userID)
		return
	})
	if err := eg.Wait(); err != nil {
		return herror.InternalServerError(err)
	}

	defaultGroup, _ := lo.Find(groups, func(g *model.Group) bool { return g.IsDefault })
	var defaultGroupValue string
	if defaultGroup != nil {
		defaultGroupValue = strconv.Itoa(defaultGroup.ID)
	}

	page := form.Page{
		Title:  "핀 등록",
		Action: "/api/user/pin",
		Items: []form.Item{
			{Type: form.TypeInput, Label: "이름", Name: "name"},
			{Type: form.TypeInput, Label: "주소", Name: "address"},
			{
				Type:  form.TypeSelect,
				Label: "카테고리",
				Name:  "categoryId",
				Options: lo.Map(categories, func(cat *model.Category, _ int) form.Option {
					return form.Option{ID: cat.ID, Name: cat.Name}
				}),
			},
			{
				Type:  form.TypeSelect,
				Label: "감정",
				Name:  "emotionId",
				Options: lo.Map(emotions, func(e *model.Emotion, _ int) form.Option {
					return form.Option{ID: e.ID, Name: e.Name}
				}),
			},
			{
				Type:  form.TypeSelect,
				Label: "그룹",
				Name:  "groupId",
				Value: defaultGroupValue,
				Options: lo.Map(groups, func(g *model.Group, _ int) form.Option {
					return form.Option{ID: g.ID, Name: g.Name}
				}),
			},
		},
	}

	var b bytes.Buffer
	if err := page.Render(&b); err != nil {
		return herror.InternalServerError(err)
	}
	return c.HTMLBlob(http.StatusOK, b.Bytes())
}
