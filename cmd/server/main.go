package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fadilmartias/talent-sourcer/internal/cache"
	"github.com/fadilmartias/talent-sourcer/internal/config"
	"github.com/fadilmartias/talent-sourcer/internal/domain/fiber/handler"
	"github.com/fadilmartias/talent-sourcer/internal/logger"
	"github.com/fadilmartias/talent-sourcer/internal/middleware"
	"github.com/fadilmartias/talent-sourcer/internal/model"
	"github.com/fadilmartias/talent-sourcer/internal/pool"
	"github.com/fadilmartias/talent-sourcer/internal/repository"
	"github.com/fadilmartias/talent-sourcer/internal/service"
	"github.com/fadilmartias/talent-sourcer/internal/usecase"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	llmConfig := config.LoadLLMConfig()
	pipelineConfig := config.LoadPipelineConfig()

	zapLogger, err := logger.New(appConfig.Env)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer zapLogger.Sync()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()
	store := repository.NewStore(db)

	searchCache := buildCache(ctx, db, zapLogger)
	candidatePool := pool.New(pipelineConfig)
	generator := buildGenerator(ctx, llmConfig, zapLogger)

	scorer := service.NewScoringService(generator, llmConfig, zapLogger)
	drafter := service.NewMessageService(generator, llmConfig, pipelineConfig.MessageDelay, zapLogger)

	uc := usecase.NewSourcingUsecase(store, candidatePool, scorer, drafter, searchCache, pipelineConfig, zapLogger)
	h := handler.NewSourcingHandler(uc)

	h.RegisterRoutes(app)
	app.Use(h.NotFound)

	zapLogger.Info("server starting",
		zap.String("port", appConfig.Port),
		zap.String("env", appConfig.Env),
		zap.String("pool", pipelineConfig.CandidatePool),
		zap.Int("pool_size", len(candidatePool.ListCandidates())),
	)
	if err := app.Listen(appConfig.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

// buildCache prefers Redis when REDIS_URL is set and falls back to the
// cache_entries table otherwise.
func buildCache(ctx context.Context, db *gorm.DB, zapLogger *zap.Logger) cache.Cache {
	redisConfig := config.LoadRedisConfig()
	if redisConfig.URL != "" {
		redisCache, err := cache.NewRedisCache(ctx, redisConfig.URL)
		if err != nil {
			zapLogger.Warn("redis unavailable, using database cache", zap.Error(err))
			return cache.NewDBCache(db)
		}
		zapLogger.Info("using redis cache")
		return redisCache
	}
	return cache.NewDBCache(db)
}

// buildGenerator wires the configured LLM provider. A nil generator is a
// valid outcome: scoring stays deterministic and every outreach message
// uses the fallback template.
func buildGenerator(ctx context.Context, llmConfig *config.LLMConfig, zapLogger *zap.Logger) service.Generator {
	switch llmConfig.Provider {
	case config.ProviderOpenRouter:
		openRouter, err := service.NewOpenRouterService(llmConfig.OpenRouterAPIKey, zapLogger)
		if err != nil {
			zapLogger.Warn("openrouter unavailable, outreach will use fallback template", zap.Error(err))
			return nil
		}
		return openRouter
	case config.ProviderGemini:
		gemini, err := service.NewGeminiService(ctx, llmConfig.GeminiAPIKey, zapLogger)
		if err != nil {
			zapLogger.Warn("gemini unavailable, outreach will use fallback template", zap.Error(err))
			return nil
		}
		return gemini
	default:
		zapLogger.Warn("unknown LLM provider, outreach will use fallback template",
			zap.String("provider", llmConfig.Provider),
		)
		return nil
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
		dbConfig.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.Job{},
		&model.Candidate{},
		&model.CandidateScore{},
		&model.OutreachMessage{},
		&model.CacheEntry{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
