package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/qolzam/jobly/auth"
	jwksUC "github.com/qolzam/jobly/auth/jwks"
	loginUC "github.com/qolzam/jobly/auth/login"
	signupUC "github.com/qolzam/jobly/auth/signup"
	"github.com/qolzam/jobly/companies"
	companyHandlers "github.com/qolzam/jobly/companies/handlers"
	companyRepository "github.com/qolzam/jobly/companies/repository"
	companyServices "github.com/qolzam/jobly/companies/services"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/middleware/requestid"
	platform "github.com/qolzam/jobly/internal/platform"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/jobs"
	jobHandlers "github.com/qolzam/jobly/jobs/handlers"
	jobRepository "github.com/qolzam/jobly/jobs/repository"
	jobServices "github.com/qolzam/jobly/jobs/services"
	"github.com/qolzam/jobly/users"
	userHandlers "github.com/qolzam/jobly/users/handlers"
	userRepository "github.com/qolzam/jobly/users/repository"
	userServices "github.com/qolzam/jobly/users/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load platform config: %v", err)
		os.Exit(1)
	}
	log.SetDebug(cfg.Server.Debug)
	if cfg.Server.Debug {
		log.InfoStruct(cfg.Server, cfg.Cache, cfg.RateLimits)
	}

	ctx := context.Background()
	baseService, err := platform.NewBaseService(ctx, cfg)
	if err != nil {
		log.Error("Failed to create base service: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := baseService.Close(); err != nil {
			log.Error("Shutdown: %v", err)
		}
	}()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.ErrorWithContext(c.UserContext(), "[ErrorHandler] %s %s: %v (%d)", c.Method(), c.Path(), err, code)

			// If response already set by handler, don't override it
			if len(c.Response().Body()) > 0 {
				return nil
			}

			return c.Status(code).JSON(fiber.Map{
				"code":    "INTERNAL_ERROR",
				"message": err.Error(),
			})
		},
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.WebDomain,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, DELETE, PATCH, OPTIONS",
	}))

	// Repositories share one connection pool.
	companyRepo := companyRepository.NewPostgresRepository(baseService.DB)
	jobRepo := jobRepository.NewPostgresRepository(baseService.DB)
	userRepo := userRepository.NewPostgresRepository(baseService.DB)

	companyService := companyServices.NewCompanyService(companyRepo, baseService.Cache)
	jobService := jobServices.NewJobService(jobRepo, baseService.Cache)
	userService := userServices.NewUserService(userRepo, userServices.ServiceConfig{
		BcryptCost: cfg.Security.BcryptCost,
	})

	issuer := tokens.NewIssuer(cfg.JWT.PrivateKey, cfg.JWT.TTL)

	loginHandler := loginUC.NewHandler(loginUC.NewService(userService, issuer), &loginUC.HandlerConfig{
		WebDomain: cfg.Server.WebDomain,
		TokenTTL:  cfg.JWT.TTL,
	})
	signupHandler := signupUC.NewHandler(signupUC.NewService(userService, issuer))
	jwksHandler := jwksUC.NewHandler(cfg.JWT.PublicKey, tokens.KeyID)

	auth.RegisterRoutes(app, auth.NewAuthHandlers(loginHandler, signupHandler, jwksHandler), cfg)
	companies.RegisterRoutes(app, &companies.CompaniesHandlers{
		CompanyHandler: companyHandlers.NewCompanyHandler(companyService),
	}, cfg)
	jobs.RegisterRoutes(app, &jobs.JobsHandlers{
		JobHandler: jobHandlers.NewJobHandler(jobService),
	}, cfg)
	users.RegisterRoutes(app, &users.UsersHandlers{
		UserHandler: userHandlers.NewUserHandler(userService, issuer),
	}, cfg)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := baseService.HealthCheck(c.UserContext()); err != nil {
			log.WarnWithContext(c.UserContext(), "Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("Server shutdown: %v", err)
		}
	}()

	log.Info("Starting Jobly API on %s", cfg.Server.Addr())
	if err := app.Listen(cfg.Server.Addr()); err != nil {
		log.Error("Server stopped: %v", err)
	}
}
