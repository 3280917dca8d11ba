// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/corebank/corebank/internal/accountdelivery"
	"github.com/corebank/corebank/internal/accountrepo"
	"github.com/corebank/corebank/internal/accountservice"
	"github.com/corebank/corebank/internal/dashboarddelivery"
	"github.com/corebank/corebank/internal/dashboardservice"
	"github.com/corebank/corebank/internal/kycdelivery"
	"github.com/corebank/corebank/internal/kycrepo"
	"github.com/corebank/corebank/internal/kycservice"
	"github.com/corebank/corebank/internal/ledgerrepo"
	"github.com/corebank/corebank/internal/middleware"
	"github.com/corebank/corebank/internal/transactiondelivery"
	"github.com/corebank/corebank/internal/transferdelivery"
	"github.com/corebank/corebank/internal/transferservice"
	"github.com/corebank/corebank/internal/userdelivery"
	"github.com/corebank/corebank/internal/userrepo"
	"github.com/corebank/corebank/internal/userservice"
	"github.com/corebank/corebank/pkg/configpkg"
	"github.com/corebank/corebank/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	kycRepo := kycrepo.NewRepoPGS(conn)
	ledgerRepo := ledgerrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewJWTMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userRepo)
	accountService := accountservice.New(accountRepo, kycRepo, userService)
	kycService := kycservice.New(kycRepo, accountService, config.DocumentStorageDir)
	transferService := transferservice.New(ledgerRepo)
	dashboardService := dashboardservice.New(ledgerRepo, userRepo, kycRepo)

	userHandler := userdelivery.NewHandler(userService, tokenMaker, config.AccessTokenDuration)
	accountHandler := accountdelivery.NewHandler(accountService)
	kycHandler := kycdelivery.NewHandler(kycService)
	transferHandler := transferdelivery.NewHandler(transferService)
	transactionHandler := transactiondelivery.NewHandler(ledgerRepo)
	dashboardHandler := dashboarddelivery.NewHandler(dashboardService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/auth/register", userHandler.Register)
	engine.POST("/auth/create-admin", userHandler.CreateAdmin)
	engine.POST("/auth/login", userHandler.Login)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.GET("/auth/me", userHandler.Profile)

	authRoutes.POST("/kyc/apply", kycHandler.Apply)
	authRoutes.GET("/kyc/status", kycHandler.Status)
	authRoutes.POST("/kyc/:id/documents", kycHandler.UploadDocument)

	authRoutes.POST("/accounts/create", accountHandler.Create)
	authRoutes.GET("/accounts/me", accountHandler.ListMine)

	authRoutes.POST("/transfer", transferHandler.Create)
	authRoutes.GET("/transactions/me", transactionHandler.ListMine)

	authRoutes.GET("/dashboard/customer/summary", dashboardHandler.CustomerSummary)
	authRoutes.GET("/dashboard/customer/recent-transactions", dashboardHandler.CustomerRecent)

	adminRoutes := engine.Group("/").Use(
		middleware.AuthMiddleware(tokenMaker),
		middleware.AdminMiddleware(),
	)

	adminRoutes.GET("/kyc/admin/pending", kycHandler.Pending)
	adminRoutes.PUT("/kyc/admin/:id/verify", kycHandler.Verify)
	adminRoutes.PUT("/accounts/admin/:account_number/status", accountHandler.SetStatus)
	adminRoutes.GET("/transactions/all", transactionHandler.ListAll)
	adminRoutes.GET("/dashboard/admin/summary", dashboardHandler.AdminSummary)
	adminRoutes.GET("/dashboard/admin/recent-transactions", dashboardHandler.AdminRecent)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("accounttype", accountdelivery.ValidAccountType); err != nil {
			return nil, errors.New("cannot register account type validator")
		}

		if err := v.RegisterValidation("accountstatus", accountdelivery.ValidAccountStatus); err != nil {
			return nil, errors.New("cannot register account status validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
