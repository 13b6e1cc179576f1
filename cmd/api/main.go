package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	common_api "livpulse/internal/common/api"
	"livpulse/internal/config"
	"livpulse/internal/database"
	"livpulse/internal/features/auth"
	"livpulse/internal/features/dashboard"
	"livpulse/internal/features/datainput"
	"livpulse/internal/features/insights"
	"livpulse/internal/features/kpi"
	"livpulse/internal/features/metrics"
	"livpulse/internal/features/overview"
	"livpulse/internal/features/report"
	"livpulse/internal/features/system"
	"livpulse/internal/features/user"
	"livpulse/internal/logger"
	"livpulse/internal/middleware"
	"livpulse/pkg/utils"

	_ "livpulse/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Use custom CORS middleware
	app.Use(middleware.CORSMiddleware())

	return app
}

// lockedSource serializes access to a rand source. The rand instance is
// shared by the metrics, insights and dashboard services, whose calls run
// on concurrent request handlers.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// NewRand seeds the shared source behind the simulated metric feeds.
func NewRand() *rand.Rand {
	src := rand.NewSource(time.Now().UnixNano()).(rand.Source64)
	return rand.New(&lockedSource{src: src})
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for _, route := range routes {
		route.Setup(app)
	}
	log.Println("All routes registered successfully")
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// @title           LivPulse API
// @version         1.0
// @description     OTT program management dashboard backend.

// @host            localhost:5000
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Shared randomness for the simulated feeds
			NewRand,

			// Initialize Repository
			kpi.NewStore,
			datainput.NewSubmissionRepository,
			user.NewUserRepository,

			// Initialize Service
			kpi.NewKpiService,
			datainput.NewDataInputService,
			dashboard.NewDataResolver,
			dashboard.NewDashboardService,
			metrics.NewMetricsService,
			insights.NewInsightsService,
			overview.NewOverviewService,
			report.NewReportService,
			user.NewUserService,
			auth.NewAuthService,

			// Initialize Controller
			kpi.NewKpiController,
			datainput.NewDataInputController,
			dashboard.NewDashboardController,
			metrics.NewMetricsController,
			overview.NewOverviewController,
			report.NewReportController,
			user.NewUserController,
			auth.NewAuthController,
			system.NewSystemController,

			// Initialize API Routes
			AsRoute(kpi.NewKpiApi),
			AsRoute(datainput.NewDataInputApi),
			AsRoute(dashboard.NewDashboardApi),
			AsRoute(metrics.NewMetricsApi),
			AsRoute(overview.NewOverviewApi),
			AsRoute(report.NewReportApi),
			AsRoute(user.NewUserApi),
			AsRoute(auth.NewAuthApi),
			AsRoute(system.NewSystemApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			func(cfg *config.Config) {
				utils.SetSecret(cfg.JWTSecret)
			},

			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
		),
	)

	app.Run()
}
