package v1

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/traPin/repository"
	"github.com/traPtitech/traPin/router/auth"
	"github.com/traPtitech/traPin/router/middlewares"
	"github.com/traPtitech/traPin/router/session"
)

// Handlers ハンドラ
type Handlers struct {
	Repo          repository.Repository
	SessStore     session.Store
	Authenticator auth.Authenticator
	Logger        *zap.Logger
}

// Setup APIルーティングを行います
func (h *Handlers) Setup(e *echo.Group) {
	// middleware preparation
	requiresLogin := middlewares.UserAuthenticate(h.Repo)

	api := e.Group("", middlewares.Identify(h.SessStore))
	{
		apiUser := api.Group("/user")
		{
			apiUser.GET("", h.GetMe, requiresLogin)
			apiUser.POST("", h.PostUser)
			apiUser.POST("/login", h.PostLogin)
			apiUser.GET("/logout", h.GetLogout)
			apiUserPin := apiUser.Group("/pin")
			{
				apiUserPin.POST("", h.PostPin, requiresLogin)
				apiUserPin.GET("/form", h.GetPinForm, requiresLogin)
				apiUserPin.PATCH("/:pinID", h.PatchPin)
				apiUserPin.DELETE("/:pinID", h.DeletePin)
			}
			apiUser.GET("/groups", h.GetGroups, requiresLogin)
			apiUserGroup := apiUser.Group("/group")
			{
				apiUserGroup.POST("", h.PostGroup, requiresLogin)
				apiUserGroup.DELETE("/:groupID", h.DeleteGroup)
				apiUserGroup.GET("/:groupID/pins", h.GetGroupPins)
			}
			apiUserFollowing := apiUser.Group("/following", requiresLogin)
			{
				apiUserFollowing.GET("", h.GetFollowings)
				apiUserFollowing.POST("", h.PostFollowing)
				apiUserFollowing.DELETE("/:userID", h.DeleteFollowing)
			}
			apiUser.GET("/categories/topThree", h.GetTopThreeCategories, requiresLogin)
		}
		api.GET("/pins/:pinID", h.GetPin)
		api.GET("/categories", h.GetCategories)
		api.GET("/emotions", h.GetEmotions)
	}
}
