package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/Radithya02/Catering-Food/configs"
	"github.com/Radithya02/Catering-Food/internal/adapter/cache"
	"github.com/Radithya02/Catering-Food/internal/adapter/http"
	"github.com/Radithya02/Catering-Food/internal/adapter/http/middleware"
	"github.com/Radithya02/Catering-Food/internal/adapter/kafka"
	"github.com/Radithya02/Catering-Food/internal/adapter/queue"
	"github.com/Radithya02/Catering-Food/internal/adapter/repo"
	"github.com/Radithya02/Catering-Food/internal/logging"
	"github.com/Radithya02/Catering-Food/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

// InitWithConfig wires the whole service. MySQL, Redis, RabbitMQ and Kafka
// are each optional: leave the setting empty and the service falls back to
// in-process stand-ins (memory repo, no cache, no events), which is how the
// dev profile runs without infrastructure.
func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logger := logging.Init(cfg.App.Name, cfg.App.LogFile, cfg.App.LogLevel)
	logger.Info("catering-api: starting up")

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// users: MySQL when a DSN is configured, otherwise in-memory
	var userRepo usecase.UserRepo
	if cfg.MySQL.DSN != "" {
		db, err := sql.Open("mysql", cfg.MySQL.DSN)
		if err != nil {
			return nil, nil, err
		}
		db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
		db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		err = db.PingContext(ctx)
		cancel()
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = db.Close() })
		userRepo = repo.NewMySQLUserRepo(db)
	} else {
		logger.Warn("no mysql dsn configured, accounts are in-memory only")
		userRepo = repo.NewMemoryUserRepo()
	}

	// catalog: seeded from config
	foodRepo := repo.NewMemoryFoodRepo(cfg.MenuFoods())

	// redis: catalog cache + idempotency
	var (
		catalogCache usecase.CatalogCache
		idem         usecase.IdempotencyStore
	)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = rdb.Close() })
		catalogCache = cache.NewRedisCatalogCache(rdb, cfg.Cache.TTL)
		idem = cache.NewRedisIdempotencyStore(rdb, cfg.Idempotency.TTL)
	} else {
		logger.Warn("no redis configured, cache and idempotency replay disabled")
	}

	// rabbitmq: settled-order events + kitchen consumer
	var events usecase.OrderEvents
	if cfg.Rabbit.URL != "" {
		conn, err := amqp091.Dial(cfg.Rabbit.URL)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = conn.Close() })

		producer, err := queue.NewRabbitProducer(ch)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		events = producer

		if err := setupQueue(ch); err != nil {
			cleanup()
			return nil, nil, err
		}
	} else {
		logger.Warn("no rabbitmq configured, settled-order events disabled")
	}

	// kafka: upstream price feed
	if len(cfg.Kafka.Brokers) > 0 {
		if err := setupKafkaListener(cfg, foodRepo, catalogCache); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	// usecases + handlers + router. One lock registry: settlements and
	// top-ups for the same account serialize across both workflows.
	locks := usecase.NewAccountLocks()
	accounts := usecase.NewAccounts(userRepo, locks)
	placeOrder := usecase.NewPlaceOrder(userRepo, foodRepo, catalogCache, idem, events, locks)
	catalog := usecase.NewCatalog(foodRepo, catalogCache)

	ah := http.NewAuthHandler(accounts, cfg)
	ch := http.NewCatalogHandler(catalog)
	oh := http.NewOrderHandler(placeOrder, accounts)
	bh := http.NewAccountHandler(accounts)
	authz := middleware.NewAuthz(cfg)
	router := http.NewRouter(ah, ch, oh, bh, authz)

	return &App{Router: router}, cleanup, nil
}

func setupQueue(ch *amqp091.Channel) error {
	h := queue.NewKitchenTicketHandler(logging.New("kitchen"))

	router := queue.NewRouter(ch, queue.WithPrefetch(50))
	router.Register(queue.SettledQueue, queue.JSONHandler[usecase.SettledMsg]{HandleFunc: h.HandleSettled})

	return router.Start()
}

func setupKafkaListener(cfg configs.Config, foodRepo *repo.MemoryFoodRepo, catalogCache usecase.CatalogCache) error {
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		return err
	}

	h := kafka.NewPriceChangedHandler(foodRepo, catalogCache)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.TopicPrices}, h.Handle)
	consumer.Logger = logging.New("kafka")

	go func() {
		if err := consumer.Start(context.Background()); err != nil {
			logging.New("kafka").Error("price feed consumer stopped", "error", err)
		}
	}()
	return nil
}
