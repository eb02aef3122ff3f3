package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codecapsules.net/internal/adapter/crypto"
	"gitlab.com/codecapsules.net/internal/adapter/httpbackend"
	"gitlab.com/codecapsules.net/internal/adapter/postgres/sqljudgeport"
	"gitlab.com/codecapsules.net/internal/adapter/redisqueue"
	"gitlab.com/codecapsules.net/internal/adapter/sqljudgeclient"
	"gitlab.com/codecapsules.net/internal/config"
	"gitlab.com/codecapsules.net/internal/core/ports/primary"
	"gitlab.com/codecapsules.net/internal/core/ports/secondary"
	"gitlab.com/codecapsules.net/internal/core/services/dispatch"
	"gitlab.com/codecapsules.net/internal/core/services/harness"
	"gitlab.com/codecapsules.net/internal/core/services/normalize"
	"gitlab.com/codecapsules.net/internal/core/services/sqlvalidate"
	"gitlab.com/codecapsules.net/internal/core/services/validate"
	logger2 "gitlab.com/codecapsules.net/internal/global/logger"
	http2 "gitlab.com/codecapsules.net/internal/http"
)

func main() {
	initReader()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting capsule validation service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	// SECONDARY PORTS
	var signer primary.TokenSigner
	if sysCfg.JwtConfig.Secret != "" {
		signer = crypto.NewServiceTokenSigner(sysCfg.JwtConfig)
	}
	backend := httpbackend.NewHTTPBackend(sysCfg.BackendConfig.Endpoints, signer, logger)

	dispatcher := buildDispatcher(sysCfg, backend, logger)
	sqlJudge := newSQLJudge(sysCfg, sysCfg.SQLJudgeConfig.Mode, logger)
	var specialSQLJudge secondary.SQLJudge
	if sysCfg.SQLJudgeConfig.SpecialMode != "" {
		specialSQLJudge = newSQLJudge(sysCfg, sysCfg.SQLJudgeConfig.SpecialMode, logger)
	}

	// SERVICES
	normalizer := normalize.NewNormalizeService(logger)
	synthesizer := harness.NewHarnessService(logger)
	languages := make(map[string]bool, len(sysCfg.BackendConfig.Endpoints))
	for language := range sysCfg.BackendConfig.Endpoints {
		languages[language] = true
	}
	limits := validate.Limits{
		TimeoutSeconds: sysCfg.BackendConfig.TimeoutSeconds,
		MemoryLimitMB:  sysCfg.BackendConfig.MemoryLimitMB,
	}
	validationSvc := validate.NewValidationService(normalizer, synthesizer, dispatcher, languages, limits, logger)
	sqlSvc := sqlvalidate.NewSQLValidationService(sqlJudge, specialSQLJudge, logger)

	serviceProvider := http2.NewServiceProvider(validationSvc, sqlSvc)

	// SERVER
	httpServer := http2.NewServer(sysCfg.ServerConfig.Port, sysCfg.ServerConfig.ServiceName, *serviceProvider, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// buildDispatcher wires direct mode for every language, adding the queued
// strategy only when some languages are configured to use the work queue.
func buildDispatcher(sysCfg *config.AppConfig, backend secondary.ExecutionBackend, logger primary.Logger) dispatch.IDispatchService {
	direct := dispatch.NewDirectDispatcher(backend, logger)
	if len(sysCfg.BackendConfig.QueuedLanguages) == 0 {
		return direct
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	queue := redisqueue.NewRedisJobQueue(redisClient, logger)
	queued := dispatch.NewQueuedDispatcher(queue, logger)
	return dispatch.NewDispatchRouter(direct, queued, sysCfg.BackendConfig.QueuedLanguages)
}

// newSQLJudge builds the remote diff client or the local Postgres judge for
// the given mode. Requests flagging RequiresSpecialEngine go through the
// judge built from SpecialMode.
func newSQLJudge(sysCfg *config.AppConfig, mode string, logger primary.Logger) secondary.SQLJudge {
	if mode == "postgres" {
		db, err := sqlx.Open("postgres", sysCfg.SQLJudgeConfig.PostgresURL)
		if err != nil {
			panic(err)
		}
		if err := db.Ping(); err != nil {
			panic(err)
		}
		return sqljudgeport.NewPostgresSQLJudge(db, logger)
	}
	return sqljudgeclient.NewRemoteSQLJudge(sysCfg.SQLJudgeConfig.RemoteURL, logger)
}

func initReader() {
	if len(os.Args) > 1 {
		environment := os.Args[1]
		if err := godotenv.Load(environment + ".env"); err != nil {
			log.Fatalf("Error loading %s.env file", environment)
		}
		return
	}
	// Optional default env file; env vars may also come from the process.
	_ = godotenv.Load(".env")
}
