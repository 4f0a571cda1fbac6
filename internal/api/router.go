package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/demobank/banking-api/internal/api/handler"
	"github.com/demobank/banking-api/internal/api/middleware"
	"github.com/demobank/banking-api/internal/core/domain"
	"github.com/demobank/banking-api/internal/core/service"
	mysqldb "github.com/demobank/banking-api/internal/infrastructure/db/mysql"
	redisdb "github.com/demobank/banking-api/internal/infrastructure/db/redis"
	"github.com/demobank/banking-api/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *goredis.Client, dispatcher *queue.LogDispatcher, jwtSecret, adminEmail string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("banking_http"))
	e.Use(middleware.RequestLog(dispatcher))

	// --- Dependencies ---
	userRepo := mysqldb.NewUserRepository(db)
	accountRepo := mysqldb.NewAccountRepository(db)
	transactionRepo := mysqldb.NewTransactionRepository(db)
	loanRepo := mysqldb.NewLoanRepository(db)
	logRepo := mysqldb.NewLogRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessions, jwtSecret, adminEmail, time.Hour)
	accountService := service.NewAccountService(accountRepo, log)
	loanService := service.NewLoanService(loanRepo, log)
	userService := service.NewUserService(userRepo, accountRepo, transactionRepo)
	trafficService := service.NewTrafficService(logRepo)

	userHandler := handler.NewUserHandler(authService, userService, jwtSecret)
	accountHandler := handler.NewAccountHandler(accountService)
	loanHandler := handler.NewLoanHandler(loanService)
	trafficHandler := handler.NewTrafficHandler(trafficService)

	sessionMiddleware := middleware.Session(jwtSecret, sessions)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/user/signup", userHandler.Signup)
	e.POST("/user/signin", userHandler.Signin)
	e.GET("/user/logout", userHandler.Logout)
	e.GET("/traffic/stats", trafficHandler.Overview)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Profile routes (session required) ---
	users := e.Group("/user", sessionMiddleware)
	users.GET("/getUser", userHandler.List)
	users.GET("/getUser/:customer_id", userHandler.Profile)

	// --- Account routes (session required) ---
	accounts := e.Group("/account", sessionMiddleware)
	accounts.POST("/openAccount", accountHandler.Open)
	accounts.GET("/getAccount/:customerId", accountHandler.List)
	accounts.POST("/deposit/:accountId", accountHandler.Deposit)
	accounts.POST("/withdraw/:accountId", accountHandler.Withdraw)
	accounts.POST("/transfer/:accountId", accountHandler.Transfer)
	accounts.POST("/loan/:accountId", loanHandler.Apply)
	accounts.GET("/getMyLoans/:accountId", loanHandler.ListByAccount)
	accounts.GET("/getLoans/:accountId", loanHandler.ListByAccount)
	accounts.GET("/loans", loanHandler.ListAll, adminOnly)
	accounts.POST("/approveLoan/:accountId", loanHandler.Approve, adminOnly)

	return e
}
