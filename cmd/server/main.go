package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/aliiaycicek/My-Portfolio/internal/config"
	"github.com/aliiaycicek/My-Portfolio/internal/db"
	"github.com/aliiaycicek/My-Portfolio/internal/goroutine"
	httpHandlers "github.com/aliiaycicek/My-Portfolio/internal/http/handlers"
	httpRouter "github.com/aliiaycicek/My-Portfolio/internal/http/router"
	"github.com/aliiaycicek/My-Portfolio/internal/logger"
	"github.com/aliiaycicek/My-Portfolio/internal/mapper"
	"github.com/aliiaycicek/My-Portfolio/internal/models"
	"github.com/aliiaycicek/My-Portfolio/internal/repository"
	"github.com/aliiaycicek/My-Portfolio/internal/service"
	"github.com/aliiaycicek/My-Portfolio/internal/ws"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.LogLevel)
	if !cfg.IsProduction() {
		logger.SetTextFormatter()
	}
	log := logger.L()

	// Подключение к базе и миграции, только для postgres.
	var dbConn *sqlx.DB
	var pinger httpHandlers.Pinger
	if cfg.StorageDriver == config.StorageDriverPostgres {
		dbConn, err = db.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("main: ошибка подключения к базе: %v", err)
		}
		defer safeClose(dbConn)

		if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
			log.Fatalf("main: ошибка миграций: %v", err)
		}
		pinger = dbConn
	}

	// Репозитории.
	educationRepo := repository.NewGenericRepository[models.Education](
		newStore[models.Education](dbConn, repository.EducationsTable, cfg.CacheTTL))
	experienceRepo := repository.NewGenericRepository[models.Experience](
		newStore[models.Experience](dbConn, repository.ExperiencesTable, cfg.CacheTTL))
	projectRepo := repository.NewGenericRepository[models.Project](
		newStore[models.Project](dbConn, repository.ProjectsTable, cfg.CacheTTL))
	skillRepo := repository.NewGenericRepository[models.Skill](
		newStore[models.Skill](dbConn, repository.SkillsTable, cfg.CacheTTL))

	// Начальные данные.
	seedService := service.NewSeedService(educationRepo, experienceRepo, projectRepo, skillRepo)
	if cfg.SeedPath != "" {
		doc, err := service.LoadSeedFile(cfg.SeedPath)
		if err != nil {
			log.Fatalf("main: ошибка чтения seed файла: %v", err)
		}
		if _, err := seedService.Seed(ctx, doc); err != nil {
			log.Fatalf("main: ошибка загрузки начальных данных: %v", err)
		}
	}

	// Вебсокеты.
	hub := ws.NewHub()
	goroutine.SafeGoWithContext(ctx, "ws hub", hub.Run)

	// HTTP хэндлеры.
	handlers := httpRouter.Handlers{
		Health: httpHandlers.NewHealthHandler(pinger, cfg.StorageDriver),
		Seed:   httpHandlers.NewSeedHandler(seedService, cfg.SeedPath),
		WS:     httpHandlers.NewWSHandler(hub, cfg.AllowedOrigins),
		Collections: []httpRouter.Collection{
			{
				Path:    "educations",
				Handler: httpHandlers.NewCRUDHandler[models.Education, *models.Education]("education", educationRepo, mapper.Education, hub),
			},
			{
				Path:    "experiences",
				Handler: httpHandlers.NewCRUDHandler[models.Experience, *models.Experience]("experience", experienceRepo, mapper.Experience, hub),
			},
			{
				Path:    "projects",
				Handler: httpHandlers.NewCRUDHandler[models.Project, *models.Project]("project", projectRepo, mapper.Project, hub),
			},
			{
				Path:    "skills",
				Handler: httpHandlers.NewCRUDHandler[models.Skill, *models.Skill]("skill", skillRepo, mapper.Skill, hub),
			},
		},
	}

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, handlers)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGo("http shutdown", func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("main: ошибка остановки http сервера: %v", err)
		}
	})

	log.WithField("storage", cfg.StorageDriver).Infof("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// newStore выбирает хранилище по наличию подключения к базе и при необходимости добавляет кэш.
func newStore[T any, PT models.Record[T]](conn *sqlx.DB, table repository.Table, cacheTTL time.Duration) repository.Store[T] {
	var store repository.Store[T]
	if conn != nil {
		store = repository.NewPostgresStore[T, PT](conn, table)
	} else {
		store = repository.NewMemoryStore[T, PT]()
	}

	if cacheTTL > 0 {
		store = repository.NewCachedStore(store, cacheTTL)
	}
	return store
}

// safeClose закрывает соединение с базой.
func safeClose(conn *sqlx.DB) {
	if err := conn.Close(); err != nil {
		logger.L().Errorf("main: ошибка закрытия базы: %v", err)
	}
}
