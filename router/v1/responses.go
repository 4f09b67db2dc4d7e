package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type messageResponse struct {
	Message string `json:"message"`
}

var successResponse = messageResponse{Message: "success"}

func success(c echo.Context) error {
	return c.JSON(http.StatusOK, successResponse)
}
