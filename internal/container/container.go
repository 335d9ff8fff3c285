package container

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pogojump/pogojump-api/config"
	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/internal/domain/repository"
	"github.com/pogojump/pogojump-api/internal/infrastructure/filestore"
	"github.com/pogojump/pogojump-api/internal/infrastructure/gcsstore"
	"github.com/pogojump/pogojump-api/internal/infrastructure/notify"
	pginfra "github.com/pogojump/pogojump-api/internal/infrastructure/postgres"
	"github.com/pogojump/pogojump-api/internal/infrastructure/redisstore"
	"github.com/pogojump/pogojump-api/internal/metrics"
	"github.com/pogojump/pogojump-api/pkg/helpers"
)

// Container holds the components shared by the router modules and commands.
// Infrastructure clients are nil unless the configured backend needs them.
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	PGPool    *pgxpool.Pool
	Redis     *redis.Client
	GCS       *storage.Client
	RabbitPub *helpers.RabbitPublisher

	JWT   *helpers.JWTManager
	Store *application.DocumentStore

	Auth     *application.AuthService
	Products *application.ProductService
	Reviews  *application.ReviewService
	Orders   *application.OrderService
	Users    *application.UserService
}

// New connects to the configured document backend and message broker and
// wires the services on top. Call Close when done.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}
	if cfg.MetricsEnabled {
		c.Registry = prometheus.NewRegistry()
		c.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		c.Metrics = metrics.New(c.Registry)
	}

	repo, err := c.documentRepository(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}

	var notifier application.Notifier = application.NoopNotifier{}
	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("rabbitmq: %w", err)
		}
		c.RabbitPub = pub
		notifier = notify.NewEmailNotifier(pub, cfg.CompanyName, cfg.ShopURL)
	}

	c.wire(repo, notifier)
	return c, nil
}

// NewWithRepository wires the services over repo without touching any
// external system.
func NewWithRepository(cfg *config.Config, logger *logrus.Logger, repo repository.DocumentRepository, m *metrics.Metrics, n application.Notifier) *Container {
	c := &Container{Config: cfg, Logger: logger, Metrics: m}
	c.wire(repo, n)
	return c
}

func (c *Container) wire(repo repository.DocumentRepository, n application.Notifier) {
	cfg := c.Config
	ids := application.NewIDGenerator()
	c.JWT = helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	c.Store = application.NewDocumentStore(repo, c.Logger, c.Metrics, cfg.StoreSerialize)
	c.Auth = application.NewAuthService(c.Store, c.JWT, helpers.NewPasswordHasher(cfg.BcryptCost), ids, n, c.Logger, c.Metrics)
	c.Products = application.NewProductService(c.Store, ids, c.Logger)
	c.Reviews = application.NewReviewService(c.Store, ids, c.Logger)
	c.Orders = application.NewOrderService(c.Store, ids, n, c.Logger, c.Metrics)
	c.Users = application.NewUserService(c.Store, c.Logger)
}

func (c *Container) documentRepository(ctx context.Context) (repository.DocumentRepository, error) {
	cfg := c.Config
	switch cfg.DocumentBackend {
	case config.BackendFile:
		return filestore.NewDocumentRepository(cfg.DataFile), nil

	case config.BackendGCS:
		client, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			return nil, fmt.Errorf("gcs client: %w", err)
		}
		c.GCS = client
		return gcsstore.NewDocumentRepository(client, cfg.GCSBucket, cfg.GCSObject), nil

	case config.BackendRedis:
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		c.Redis = rdb
		if err := helpers.PingRedis(ctx, rdb); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return redisstore.NewDocumentRepository(rdb, cfg.RedisDocumentKey), nil

	case config.BackendPostgres:
		if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, c.Logger); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
			AppName:     cfg.AppName,
			MaxConns:    cfg.DBMaxConns,
			MinConns:    cfg.DBMinConns,
			MaxConnLife: cfg.DBMaxConnLife,
		})
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		c.PGPool = pool
		return pginfra.NewDocumentRepository(pool, cfg.DocumentName), nil
	}
	return nil, fmt.Errorf("unknown document backend %q", cfg.DocumentBackend)
}

// Close releases every client New opened.
func (c *Container) Close() {
	c.RabbitPub.Close()
	if c.PGPool != nil {
		c.PGPool.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.GCS != nil {
		_ = c.GCS.Close()
	}
}
