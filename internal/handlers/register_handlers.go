package handlers

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/finbooks/finbooks_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, services.Auth)

	// API v1 routes behind auth
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerTransactionRoutes(v1, services.Transaction)
	registerCategoryRoutes(v1, services.Category, services.Folder)
	registerAssetRoutes(v1, services.Asset)
	registerLoanRoutes(v1, services.Loan)
	registerOverrideRoutes(v1, services.Override, services.Equity)
	registerStatementRoutes(v1, services.Statement)
	registerExportRoutes(v1, services.Export)
}

// registerValidators installs the custom binding validators used by the
// request DTOs.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// yearmonth validates "YYYY-MM" month identifiers
	_ = v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseMonth(fl.Field().String())
		return err == nil
	})
}
