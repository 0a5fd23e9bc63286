package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/pahana/bookshop-order-service/docs"
	"github.com/pahana/bookshop-order-service/internal/app"
	"github.com/pahana/bookshop-order-service/internal/config"
	"github.com/pahana/bookshop-order-service/internal/events"
	"github.com/pahana/bookshop-order-service/internal/handler"
	"github.com/pahana/bookshop-order-service/internal/postgres"
	"github.com/pahana/bookshop-order-service/internal/repo"
	"github.com/pahana/bookshop-order-service/internal/service"
	"github.com/pahana/bookshop-order-service/pkg/trm"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
)

// @title           Bookshop Order Service API
// @version         1.0
// @description     Документация HTTP API сервиса заказов книжного магазина
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, logger, conf.Postgres)
	if err != nil && ctx.Err() != nil {
		logger.Info("shutdown requested before postgres became ready")
		return
	}
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)

	hub := events.NewHub(logger)
	publishers := []events.Publisher{hub}

	app := app.New(logger, conf)

	if conf.Kafka.Enabled {
		kafkaPublisher := events.NewAsync(
			logger, "kafka",
			events.NewKafkaPublisher(conf.Kafka),
			conf.Kafka.PublishQueueSize,
			conf.Kafka.WriteTimeout,
		)
		publishers = append(publishers, kafkaPublisher)
		app.SetClosers(kafkaPublisher)
	}

	orderService := service.NewOrderService(
		logger, txManager,
		pgRepo, pgRepo, pgRepo,
		events.Multi(publishers...),
		service.Timeouts{Order: conf.Order.Timeout, Publish: conf.Order.PublishTimeout},
	)
	reportService := service.NewReportService(logger, pgRepo)

	httpHandler := handler.NewHTTPHandler(logger, orderService, reportService)
	wsHandler := handler.NewWSHandler(logger, hub, conf.Cors.AllowedOrigins)
	handler.RegisterMetrics()

	app.SetHTTPHandlers(wsHandler, httpHandler)
	app.SetStarters(migrator{db: db, logger: logger})
	app.SetClosers(hub)

	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type migrator struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func (m migrator) Start(ctx context.Context) error {
	if err := postgres.Migrate(ctx, m.db); err != nil {
		return err
	}
	m.logger.Info("schema is up to date")
	return nil
}
