package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"ark-lookup-api/internal/config"
	"ark-lookup-api/internal/database"
	"ark-lookup-api/internal/metrics"
	"ark-lookup-api/pkg/lambda"
)

// Container holds the process-wide dependencies shared by every lookup
// handler. Only the client of the configured backend is opened.
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	Metrics     metrics.Recorder
	ParamSource lambda.ParamSource

	dynamo *dynamodb.Client
	sqlite *database.ConnectionManager
	redis  *redis.Client
}

// Option configures a Container
type Option func(*Container)

// WithLogger sets the container's logger
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithMetrics sets the recorder handed to every handler
func WithMetrics(recorder metrics.Recorder) Option {
	return func(c *Container) {
		if recorder != nil {
			c.Metrics = recorder
		}
	}
}

// NewContainer validates cfg and opens the configured store client
func NewContainer(ctx context.Context, cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, &config.Error{Setting: "config", Reason: "must be set"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	source, err := lambda.ParseParamSource(cfg.ParamSource)
	if err != nil {
		return nil, &config.Error{Setting: "ARK_PARAM_SOURCE", Reason: err.Error()}
	}

	c := &Container{
		Config:      cfg,
		Logger:      logrus.StandardLogger(),
		Metrics:     metrics.Nop{},
		ParamSource: source,
	}
	for _, opt := range opts {
		opt(c)
	}

	switch cfg.Store.Backend {
	case config.BackendDynamoDB:
		c.dynamo, err = newDynamoClient(ctx, cfg.Store)
	case config.BackendSQLite:
		c.sqlite, err = c.openSQLite(ctx, cfg.Store.SQLite)
	case config.BackendRedis:
		c.redis = newRedisClient(cfg.Store)
	default:
		err = &config.Error{Setting: "ARK_STORE_BACKEND", Reason: fmt.Sprintf("unknown backend %q", cfg.Store.Backend)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
	}

	c.Logger.WithFields(logrus.Fields{
		"backend":      cfg.Store.Backend,
		"table":        cfg.Store.TableName,
		"param_source": source.String(),
	}).Info("Store client initialized")

	return c, nil
}

func newDynamoClient(ctx context.Context, store config.StoreConfig) (*dynamodb.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryMaxAttempts(store.MaxAttempts),
	}
	if store.DynamoDB.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(store.DynamoDB.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if store.DynamoDB.Endpoint != "" {
			o.BaseEndpoint = aws.String(store.DynamoDB.Endpoint)
		}
	}), nil
}

func (c *Container) openSQLite(ctx context.Context, sqliteCfg config.SQLiteConfig) (*database.ConnectionManager, error) {
	connCfg := database.DefaultConnectionConfig()
	connCfg.DatabasePath = sqliteCfg.Path
	connCfg.AutoMigrate = sqliteCfg.AutoMigrate
	connCfg.Logger = c.Logger

	cm := database.NewConnectionManager(connCfg)
	if err := cm.Connect(ctx); err != nil {
		return nil, err
	}
	return cm, nil
}

func newRedisClient(store config.StoreConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        store.Redis.Addr,
		Password:    store.Redis.Password,
		DB:          store.Redis.DB,
		MaxRetries:  store.MaxAttempts - 1,
		ReadTimeout: store.Timeout,
	})
}

// Ping checks that the configured store answers
func (c *Container) Ping(ctx context.Context) error {
	switch {
	case c.sqlite != nil:
		return c.sqlite.Ping(ctx)
	case c.redis != nil:
		return c.redis.Ping(ctx).Err()
	case c.dynamo != nil:
		_, err := c.dynamo.DescribeTable(ctx, &dynamodb.DescribeTableInput{
			TableName: aws.String(c.Config.Store.TableName),
		})
		return err
	}
	return errors.New("no store client open")
}

// Close releases the store client
func (c *Container) Close() error {
	var errs []error
	if c.sqlite != nil {
		if err := c.sqlite.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}
	return errors.Join(errs...)
}
