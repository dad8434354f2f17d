package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vantagevc/dealflow-backend/internal/handler"
	"github.com/vantagevc/dealflow-backend/internal/middleware"
	"github.com/vantagevc/dealflow-backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	dealHandler *handler.DealHandler,
	memoHandler *handler.MemoHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")

	// Authentication endpoints (no auth required)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", middleware.JWTAuth(jwtManager), authHandler.Me)

	// Deal pipeline
	deals := api.Group("/deals", middleware.JWTAuth(jwtManager))
	{
		deals.POST("", dealHandler.CreateDeal)
		deals.GET("", dealHandler.ListDeals)
		deals.GET("/:id", dealHandler.GetDeal)
		deals.PATCH("/:id", dealHandler.UpdateDeal)
		deals.DELETE("/:id", dealHandler.DeleteDeal)
		deals.GET("/:id/activities", dealHandler.ListActivities)
	}

	// Investment memos
	memos := api.Group("/memos", middleware.JWTAuth(jwtManager))
	{
		memos.GET("/:deal_id", memoHandler.GetMemo)
		memos.POST("/:deal_id", memoHandler.SaveMemo)
		memos.GET("/:deal_id/history", memoHandler.GetMemoHistory)
	}
}
