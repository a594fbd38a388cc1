package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sunidhi090894/FoodShare-sub000/api"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	_ "github.com/sunidhi090894/FoodShare-sub000/docs" // Swagger docs
	"github.com/sunidhi090894/FoodShare-sub000/sweeper"
	"github.com/sunidhi090894/FoodShare-sub000/util"
	"github.com/sunidhi090894/FoodShare-sub000/worker"
	"golang.org/x/sync/errgroup"
)

// @title           FoodBridge API
// @version         1.0
// @description     余量食物再分配平台 API 文档。捐赠方发布余量食物，受赠机构申请领取，志愿者认领配送，平台负责匹配与调度。
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@foodbridge.local

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the token with the `Bearer: ` prefix, e.g. "Bearer abcde12345".

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	poolConfig, err := pgxpool.ParseConfig(config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse db config")
	}

	// 连接池参数（根据生产环境调整）
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}

	if err := connPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot ping database")
	}

	log.Info().
		Int32("max_conns", poolConfig.MaxConns).
		Int32("min_conns", poolConfig.MinConns).
		Msg("✅ database connection pool configured")

	runDBMigration(config.MigrationURL, config.DBSource)

	store := db.NewStore(connPool)

	if config.RedisAddress == "" {
		log.Fatal().Msg("REDIS_ADDRESS is not configured")
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     config.RedisAddress,
		Password: config.RedisPassword,
	}

	waitGroup, ctx := errgroup.WithContext(ctx)

	taskDistributor := runTaskProcessor(ctx, waitGroup, redisOpt, store)
	runExpirySweeper(ctx, waitGroup, config, store)
	runGinServer(ctx, waitGroup, config, store, taskDistributor)

	// 定期上报数据库连接池指标
	runDBMetricsReporter(ctx, waitGroup, connPool)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance")
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}

	log.Info().Msg("db migrated successfully")
}

func runTaskProcessor(
	ctx context.Context,
	waitGroup *errgroup.Group,
	redisOpt asynq.RedisClientOpt,
	store db.Store,
) worker.TaskDistributor {
	taskDistributor := worker.NewRedisTaskDistributor(redisOpt)

	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store)
	log.Info().Msg("start task processor")

	waitGroup.Go(func() error {
		return taskProcessor.Start()
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown task processor")
		taskProcessor.Shutdown()
		log.Info().Msg("task processor is stopped")
		return nil
	})

	return taskDistributor
}

// runExpirySweeper 启动发布单过期兜底扫描。
// 精确的过期由 asynq 定时任务负责，这里是 worker 故障时的安全网。
func runExpirySweeper(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
) {
	spec := ""
	if config.OfferSweepInterval > 0 {
		spec = fmt.Sprintf("@every %s", config.OfferSweepInterval)
	}

	scheduler := sweeper.NewScheduler(store, spec)
	if err := scheduler.Start(); err != nil {
		log.Error().Err(err).Msg("failed to start offer expiry sweeper")
		return
	}

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown offer expiry sweeper")
		scheduler.Stop()
		return nil
	})
}

// runGinServer starts the Gin HTTP server
func runGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
	taskDistributor worker.TaskDistributor,
) {
	server, err := api.NewServer(config, store, taskDistributor)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create server")
	}

	// 创建 http.Server 用于优雅关闭
	httpServer := &http.Server{
		Addr:    config.HTTPServerAddress,
		Handler: server.GetRouter(),
		// Avoid slowloris and stuck connections under pressure.
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// 启动WebSocket Hub（志愿者和机构的实时通知）
	waitGroup.Go(func() error {
		log.Info().Msg("start WebSocket Hub")
		server.GetWebSocketHub().Run()
		return nil
	})

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)
		err = httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server failed to serve")
			return err
		}
		return nil
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown HTTP server")

		// 给予10秒时间完成正在处理的请求
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server forced to shutdown")
			return err
		}

		server.GetWebSocketHub().Shutdown()
		log.Info().Msg("HTTP server is stopped")
		return nil
	})
}

// runDBMetricsReporter 定期把连接池状态写入 Prometheus 指标
func runDBMetricsReporter(
	ctx context.Context,
	waitGroup *errgroup.Group,
	connPool *pgxpool.Pool,
) {
	waitGroup.Go(func() error {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				stat := connPool.Stat()
				api.UpdateDBMetrics(int(stat.AcquiredConns()), int(stat.IdleConns()))
			}
		}
	})
}
