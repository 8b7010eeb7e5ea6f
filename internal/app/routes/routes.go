package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/campushub/internal/app/controllers"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/middleware"
	"github.com/yigit/campushub/internal/pkg/websocket"
)

// AppControllers groups the controllers of the community surface
type AppControllers struct {
	Page        *controllers.PageController
	Chat        *controllers.ChatController
	Marketplace *controllers.MarketplaceController
	QnA         *controllers.QnAController
	Moderation  *controllers.ModerationController
	Data        *controllers.DataController
}

// IdentityControllers groups the controllers backed by the identity database.
// They are only mounted when the database is enabled.
type IdentityControllers struct {
	Auth           *controllers.AuthController
	Profile        *controllers.ProfileController
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	app AppControllers,
	wsHandler *websocket.Handler,
	identity *IdentityControllers,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Navigation ---
	pages := v1.Group("/pages")
	{
		pages.GET("", app.Page.ListPages)
		pages.GET("/:page", app.Page.GetPage)
	}

	// --- Chat ---
	chat := v1.Group("/chat")
	{
		chat.POST("/messages", app.Chat.SendMessage)
		chat.POST("/messages/:id/reactions", app.Chat.React)
	}

	// --- Marketplace ---
	marketplace := v1.Group("/marketplace")
	{
		marketplace.POST("/items", app.Marketplace.CreateListing)
	}

	// --- Q&A ---
	qna := v1.Group("/qna")
	{
		qna.POST("/questions", app.QnA.AskQuestion)
		qna.POST("/questions/:id/answers", app.QnA.PostAnswer)
	}

	// --- Blocking and reporting ---
	blocks := v1.Group("/blocks")
	{
		blocks.POST("", app.Moderation.BlockUser)
		blocks.DELETE("/:userId", app.Moderation.UnblockUser)
	}
	v1.POST("/reports", app.Moderation.SubmitReport)

	// --- Data settings ---
	data := v1.Group("/data")
	{
		data.GET("/export", app.Data.Export)
		data.POST("/clear", app.Data.ClearAll)
	}

	// Live chat push
	if wsHandler != nil {
		v1.GET("/ws", wsHandler.HandleConnection)
	}

	if identity != nil {
		setupIdentityRoutes(v1, identity)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})
}

func setupIdentityRoutes(v1 *gin.RouterGroup, identity *IdentityControllers) {
	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", identity.Auth.SignUp)
		auth.POST("/otp/request", identity.Auth.RequestOTP)
		auth.POST("/otp/verify", identity.Auth.VerifyOTP)
	}

	// Viewing a profile works anonymously; only admins see it unmasked.
	profiles := v1.Group("/profiles")
	profiles.GET("/:id", identity.AuthMiddleware.OptionalJWTAuth(), identity.Profile.GetProfile)

	// --- Authenticated Routes Group ---
	me := profiles.Group("/me")
	me.Use(identity.AuthMiddleware.JWTAuth())
	{
		me.GET("", identity.Profile.GetMyProfile)
		me.POST("/skills", identity.Profile.AddSkill)
		me.POST("/achievements", identity.Profile.AddAchievement)
	}
}
