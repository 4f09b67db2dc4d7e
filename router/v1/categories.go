package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/traPin/router/extension/herror"
)

// topCategoriesLimit GET /user/categories/topThree で返す最大件数
const topCategoriesLimit = 3

// GetTopThreeCategories GET /user/categories/topThree
func (h *Handlers) GetTopThreeCategories(c echo.Context) error {
	rankings, err := h.Repo.GetTopCategories(c.Request().Context(), getRequestUserID(c), retentionSince(), topCategoriesLimit)
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, rankings)
}

// GetCategories GET /categories
func (h *Handlers) GetCategories(c echo.Context) error {
	categories, err := h.Repo.GetCategories(c.Request().Context())
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// GetEmotions GET /emotions
func (h *Handlers) GetEmotions(c echo.Context) error {
	emotions, err := h.Repo.GetEmotions(c.Request().Context())
	if err != nil {
		return herror.InternalServerError(err)
	}
	return c.JSON(http.StatusOK, emotions)
}
