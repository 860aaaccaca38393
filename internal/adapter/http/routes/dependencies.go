package routes

import (
	"context"
	"fmt"
	"os-service-api/internal/adapter/http/handlers"
	"os-service-api/internal/adapter/persistence/repository"
	"os-service-api/internal/infrastructure/auth"
	"os-service-api/internal/infrastructure/config"
	"os-service-api/internal/infrastructure/database"
	"os-service-api/internal/infrastructure/messaging"
	"os-service-api/internal/infrastructure/metrics"
	"os-service-api/internal/usecase"
	"os-service-api/internal/usecase/interfaces"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const blacklistSweepInterval = time.Minute

type dependencies struct {
	authUseCase usecase.IAuthUseCase

	serviceOrderHandler *handlers.ServiceOrderHandler
	clientHandler       *handlers.ClientHandler
	vehicleHandler      *handlers.VehicleHandler
	serviceHandler      *handlers.ServiceHandler
	supplyHandler       *handlers.SupplyHandler
	authHandler         *handlers.AuthHandler

	closers []func()
}

// Close releases pools and writers in reverse order of creation.
func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*dependencies, error) {
	deps := &dependencies{}

	pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, pool.Close)
	if err := database.EnsureSchema(ctx, pool); err != nil {
		deps.Close()
		return nil, err
	}

	orderRepo := repository.NewServiceOrderPostgresRepository(pool)
	clientRepo := repository.NewClientPostgresRepository(pool)
	vehicleRepo := repository.NewVehiclePostgresRepository(pool)
	serviceRepo := repository.NewServicePostgresRepository(pool)
	supplyRepo := repository.NewSupplyPostgresRepository(pool)
	userRepo := repository.NewUserPostgresRepository(pool)

	history, err := buildHistoryRepository(ctx, cfg.DynamoDB)
	if err != nil {
		deps.Close()
		return nil, err
	}

	publisher := buildPublisher(cfg.Kafka, deps)

	blacklist, err := buildBlacklist(ctx, cfg.Redis, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}

	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expires)
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)

	serviceOrderUseCase := usecase.NewServiceOrderUseCase(orderRepo, clientRepo, serviceRepo, supplyRepo, history, publisher)
	deps.authUseCase = usecase.NewAuthUseCase(userRepo, tokens, blacklist, hasher)

	deps.serviceOrderHandler = handlers.NewServiceOrderHandler(serviceOrderUseCase, m)
	deps.clientHandler = handlers.NewClientHandler(usecase.NewClientUseCase(clientRepo))
	deps.vehicleHandler = handlers.NewVehicleHandler(usecase.NewVehicleUseCase(vehicleRepo, clientRepo))
	deps.serviceHandler = handlers.NewServiceHandler(usecase.NewServiceUseCase(serviceRepo))
	deps.supplyHandler = handlers.NewSupplyHandler(usecase.NewSupplyUseCase(supplyRepo))
	deps.authHandler = handlers.NewAuthHandler(deps.authUseCase)

	return deps, nil
}

func buildHistoryRepository(ctx context.Context, cfg config.DynamoDBConfig) (interfaces.IServiceOrderHistoryRepository, error) {
	if !cfg.Enabled {
		zap.L().Info("[bootstrap] dynamodb not configured, status history disabled")
		return repository.NoopHistoryRepository{}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureHistoryTable(ctx, ddb, cfg.HistoryTable); err != nil {
		return nil, err
	}
	return repository.NewServiceOrderHistoryDynamoRepository(ddb, cfg.HistoryTable), nil
}

func buildPublisher(cfg config.KafkaConfig, deps *dependencies) interfaces.IServiceOrderEventPublisher {
	if len(cfg.Brokers) == 0 {
		zap.L().Info("[bootstrap] kafka not configured, events disabled")
		return messaging.NoopPublisher{}
	}

	publisher := messaging.NewKafkaServiceOrderPublisher(messaging.NewKafkaWriter(cfg.Brokers, cfg.Topic), cfg.Topic)
	deps.closers = append(deps.closers, func() {
		if err := publisher.Close(); err != nil {
			zap.L().Error("[bootstrap] kafka writer close failed", zap.Error(err))
		}
	})
	return publisher
}

// buildBlacklist uses Redis when configured. The in-memory fallback is swept
// until ctx ends.
func buildBlacklist(ctx context.Context, cfg config.RedisConfig, deps *dependencies) (interfaces.ITokenBlacklist, error) {
	if cfg.Addr == "" {
		zap.L().Info("[bootstrap] redis not configured, using in-memory token blacklist")
		bl := auth.NewMemoryBlacklist(time.Now)
		go bl.Run(ctx, blacklistSweepInterval)
		return bl, nil
	}

	rdb, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("token blacklist: %w", err)
	}
	deps.closers = append(deps.closers, func() { _ = rdb.Close() })
	return auth.NewRedisBlacklist(rdb), nil
}
