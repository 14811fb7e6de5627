package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/buyer-leads/internal/config"
	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/handlers"
	"github.com/BruksfildServices01/buyer-leads/internal/metrics"
	"github.com/BruksfildServices01/buyer-leads/internal/middleware"
	"github.com/BruksfildServices01/buyer-leads/internal/ratelimit"
	ucBuyer "github.com/BruksfildServices01/buyer-leads/internal/usecase/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/usecase/session"
)

// Deps is everything the HTTP layer needs from main.
type Deps struct {
	Config   *config.Config
	Log      *zap.Logger
	Buyers   domain.Repository
	Users    domain.UserRepository
	Limiter  ratelimit.Limiter
	Archiver ucBuyer.Archiver // optional
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.Metrics(),
		middleware.CORSMiddleware(),
	)

	limiter := d.Limiter
	if limiter == nil {
		limiter = ratelimit.NewMemoryLimiter(d.Config.ImportRateLimit, time.Minute)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createBuyerUC := ucBuyer.NewCreateBuyer(d.Buyers)
	getBuyerUC := ucBuyer.NewGetBuyer(d.Buyers)
	listBuyersUC := ucBuyer.NewListBuyers(d.Buyers)
	updateBuyerUC := ucBuyer.NewUpdateBuyer(d.Buyers)
	deleteBuyerUC := ucBuyer.NewDeleteBuyer(d.Buyers)
	importBuyersUC := ucBuyer.NewImportBuyers(createBuyerUC, d.Log)
	exportBuyersUC := ucBuyer.NewExportBuyers(d.Buyers, d.Archiver, d.Log)

	loginUC := session.NewLogin(d.Users, d.Config.JWTSecret, d.Config.SessionTTL)
	currentUserUC := session.NewCurrentUser(d.Users)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, currentUserUC, d.Config)

	buyerHandler := handlers.NewBuyerHandler(
		createBuyerUC,
		getBuyerUC,
		listBuyersUC,
		updateBuyerUC,
		deleteBuyerUC,
	)

	csvHandler := handlers.NewCSVHandler(importBuyersUC, exportBuyersUC)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/me", authHandler.Me)

			// ------------------------------
			// BUYERS
			// ------------------------------
			secured.POST("/buyers", buyerHandler.Create)
			secured.GET("/buyers", buyerHandler.List)
			secured.GET("/buyers/:id", buyerHandler.Get)
			secured.PUT("/buyers/:id", buyerHandler.Update)
			secured.PATCH("/buyers/:id/status", buyerHandler.UpdateStatus)
			secured.DELETE("/buyers/:id", buyerHandler.Delete)

			// ------------------------------
			// CSV
			// ------------------------------
			secured.POST("/buyers/import",
				middleware.RateLimit(limiter, "import"),
				csvHandler.Import,
			)
			secured.GET("/buyers/import/template", csvHandler.Template)
			secured.GET("/buyers/export", csvHandler.Export)
		}
	}
}
