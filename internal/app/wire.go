//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	orderEvents "logistic/internal/gateway/kafka/order_events"
	"logistic/internal/handlers/rest/chat_message_post"
	"logistic/internal/handlers/rest/chat_messages_get"
	"logistic/internal/handlers/rest/chats_get"
	"logistic/internal/handlers/rest/location_get"
	"logistic/internal/handlers/rest/location_post"
	"logistic/internal/handlers/rest/locations_get"
	"logistic/internal/handlers/rest/order_cancel_post"
	"logistic/internal/handlers/rest/order_claim_post"
	"logistic/internal/handlers/rest/order_complete_post"
	"logistic/internal/handlers/rest/order_get"
	"logistic/internal/handlers/rest/order_post"
	"logistic/internal/handlers/rest/order_put"
	"logistic/internal/handlers/rest/orders_get"
	"logistic/internal/handlers/rest/orders_search_get"
	"logistic/internal/handlers/rest/profile_admin_get"
	"logistic/internal/handlers/rest/profile_admin_post"
	"logistic/internal/handlers/rest/profile_admin_put"
	"logistic/internal/handlers/rest/profile_driver_get"
	"logistic/internal/handlers/rest/profile_driver_post"
	"logistic/internal/handlers/rest/profile_driver_put"
	"logistic/internal/handlers/tasks/fleet_gauge"
	"logistic/internal/pkg/config"
	"logistic/internal/pkg/factory/order_number"

	chatRepo "logistic/internal/repository/chat"
	locationRepo "logistic/internal/repository/location"
	orderRepo "logistic/internal/repository/order"
	profileRepo "logistic/internal/repository/profile"
	chatService "logistic/internal/service/chat"
	locationService "logistic/internal/service/location"
	orderService "logistic/internal/service/order"
	profileService "logistic/internal/service/profile"

	"logistic/pkg/background"
	"logistic/pkg/logger"
	"logistic/pkg/querier"
	"logistic/pkg/tx"
)

type (
	FleetGaugeInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceChat       ServiceChat
	ServiceLocation   ServiceLocation
	ServiceProfile    ServiceProfile
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_put.Service
	orders_get.Service
	orders_search_get.Service
	order_claim_post.Service
	order_cancel_post.Service
	order_complete_post.Service
}

type ServiceChat interface {
	chats_get.Service
	chat_messages_get.Service
	chat_message_post.Service
}

type ServiceLocation interface {
	location_get.Service
	location_post.Service
	locations_get.Service
	fleet_gauge.Service
}

type ServiceProfile interface {
	profile_admin_post.Service
	profile_admin_get.Service
	profile_admin_put.Service
	profile_driver_post.Service
	profile_driver_get.Service
	profile_driver_put.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideFleetGaugeInterval,

		provideOrderRepository,
		provideChatRepository,
		provideLocationRepository,
		provideProfileRepository,

		provideOrderEventsGateway,
		order_number.New,

		provideServiceChat,
		provideServiceLocation,
		provideServiceProfile,
		provideServiceOrder,

		provideFleetGaugeTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceChat), new(*chatService.Chat)),
		wire.Bind(new(ServiceLocation), new(*locationService.Service)),
		wire.Bind(new(ServiceProfile), new(*profileService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(chatService.Repository), new(*chatRepo.Repository)),
		wire.Bind(new(locationService.Repository), new(*locationRepo.Repository)),
		wire.Bind(new(profileService.Repository), new(*profileRepo.Repository)),

		wire.Bind(new(orderService.ChatProvisioner), new(*chatService.Chat)),
		wire.Bind(new(orderService.DriverNameResolver), new(*profileService.Service)),
		wire.Bind(new(orderService.EventPublisher), new(*orderEvents.Gateway)),
		wire.Bind(new(orderService.NumberFactory), new(*order_number.OrderNumberFactory)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(chatService.TxManager), new(*tx.Manager)),

		wire.Bind(new(fleet_gauge.Service), new(*locationService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideChatRepository,
		provideProfileRepository,

		provideOrderEventsGateway,
		order_number.New,

		provideServiceChat,
		provideServiceProfile,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(chatService.Repository), new(*chatRepo.Repository)),
		wire.Bind(new(profileService.Repository), new(*profileRepo.Repository)),

		wire.Bind(new(orderService.ChatProvisioner), new(*chatService.Chat)),
		wire.Bind(new(orderService.DriverNameResolver), new(*profileService.Service)),
		wire.Bind(new(orderService.EventPublisher), new(*orderEvents.Gateway)),
		wire.Bind(new(orderService.NumberFactory), new(*order_number.OrderNumberFactory)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(chatService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideChatRepository(querier *querier.Querier) *chatRepo.Repository {
	return chatRepo.New(querier)
}

func provideProfileRepository(querier *querier.Querier) *profileRepo.Repository {
	return profileRepo.New(querier)
}

func provideLocationRepository(redisClient *goredis.Client, cfg *config.Config) *locationRepo.Repository {
	return locationRepo.New(redisClient, cfg.Redis.LocationTTL)
}

func provideOrderEventsGateway(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *orderEvents.Gateway {
	return orderEvents.New(log, producer, cfg.Kafka.Topic)
}

func provideServiceChat(
	repository chatService.Repository,
	txManager chatService.TxManager,
) *chatService.Chat {
	return chatService.New(repository, txManager)
}

func provideServiceLocation(repository locationService.Repository) *locationService.Service {
	return locationService.New(repository)
}

func provideServiceProfile(repository profileService.Repository) *profileService.Service {
	return profileService.New(repository)
}

func provideServiceOrder(
	repository orderService.Repository,
	chatProvisioner orderService.ChatProvisioner,
	driverNames orderService.DriverNameResolver,
	events orderService.EventPublisher,
	numberFactory orderService.NumberFactory,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, chatProvisioner, driverNames, events, numberFactory, txManager)
}

func provideFleetGaugeInterval(cfg *config.Config) FleetGaugeInterval {
	return FleetGaugeInterval(cfg.Tasks.FleetGaugeUpdateInterval)
}

func provideFleetGaugeTask(
	log logger.Logger,
	locationService fleet_gauge.Service,
	interval FleetGaugeInterval,
) *fleet_gauge.FleetGauge {
	return fleet_gauge.NewFleetGauge(log, locationService, time.Duration(interval))
}

func provideTaskList(
	fleetGaugeTask *fleet_gauge.FleetGauge,
) []background.Task {
	return []background.Task{
		fleetGaugeTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
