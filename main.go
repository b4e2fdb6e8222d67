package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"clinica/config"
	_ "clinica/docs"
	"clinica/internal/cache"
	"clinica/internal/repository"
	"clinica/internal/service"
	"clinica/internal/storage"
	"clinica/internal/transport/rest"
	"clinica/pkg/database"
	"clinica/pkg/logger"
)

// @title Clínica API
// @version 1.0
// @description API de gestão de clínica: pacientes, agenda e agendamentos

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic(err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Environment)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(cfg.Postgres)
	if err != nil {
		log.Fatal("não foi possível conectar ao banco de dados", zap.Error(err))
	}
	defer db.Close()

	log.Info("executando migrações")
	if err := database.RunMigrations(db, "./migrations", log); err != nil {
		log.Fatal("erro ao executar migrações", zap.Error(err))
	}

	var fileStorage storage.FileStorage
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(cfg.S3, log)
		if err != nil {
			log.Fatal("não foi possível inicializar o armazenamento S3", zap.Error(err))
		}
		fileStorage = s3Storage
		log.Info("armazenamento S3 inicializado", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		log.Warn("armazenamento S3 não configurado, exportação de relatórios indisponível")
	}

	var agendaCache cache.Cache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisCache(cfg.Redis)
		if err != nil {
			log.Fatal("não foi possível conectar ao redis", zap.Error(err))
		}
		defer redisCache.Close()
		agendaCache = redisCache
		log.Info("cache redis inicializado", zap.String("addr", cfg.Redis.Addr))
	} else {
		log.Warn("redis não configurado, agenda servida sem cache")
	}

	repos := repository.NewRepositories(db)

	services := service.NewServices(service.Deps{
		Repos:       repos,
		Logger:      log,
		Config:      cfg,
		FileStorage: fileStorage,
		Cache:       agendaCache,
	})

	handler := rest.NewHandler(services, log, cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handler.InitRoutes(router)

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("erro ao iniciar o servidor", zap.Error(err))
		}
	}()

	log.Info("servidor iniciado", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("encerrando o servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("erro ao encerrar o servidor", zap.Error(err))
	}

	log.Info("servidor encerrado")
}
