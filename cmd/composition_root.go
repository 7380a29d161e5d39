package cmd

import (
	"log/slog"
	"time"

	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/adapters/out/postgres/notificationrepo"
	"parcelhub/internal/adapters/out/postgres/sessionrepo"
	"parcelhub/internal/adapters/out/rabbitmq"
	rediscache "parcelhub/internal/adapters/out/redis"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	resolver   ports.IdentityResolver
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot wires the outbound adapters from configuration.
// The rabbitmq publisher is optional: with no AMQP URL configured the
// handlers simply skip event publishing. The session resolver is wrapped
// in a redis cache when a redis address is configured.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}

	var resolver ports.IdentityResolver = sessionrepo.NewGormIdentityResolver(gormDB)
	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
		})
		resolver = rediscache.NewCachedIdentityResolver(resolver, client, sessionCacheTTL(config), logger)
	}

	var publisher ports.EventPublisher
	if config.AmqpURL != "" {
		p, err := rabbitmq.NewEventPublisher(config.AmqpURL, config.AmqpExchange, logger)
		if err != nil {
			logger.Warn("event publisher unavailable, delivery events will not be published", "error", err)
		} else {
			publisher = p
		}
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		resolver:   resolver,
		publisher:  publisher,
		logger:     logger,
	}
}

func sessionCacheTTL(config Config) time.Duration {
	ttl, err := time.ParseDuration(config.SessionCacheTTL)
	if err != nil || ttl <= 0 {
		return 5 * time.Minute
	}
	return ttl
}

func (c *CompositionRoot) IdentityResolver() ports.IdentityResolver {
	return c.resolver
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateDeliverParcelCommandHandler() commands.DeliverParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	// Notifications are appended after the transition commits, so the
	// handler gets a repository outside any unit of work.
	notifications := notificationrepo.NewGormNotificationRepository(c.gormDB, noopAggregateTracker{})
	return commands.NewDeliverParcelCommandHandler(f, notifications, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitFeedbackCommandHandler() commands.SubmitFeedbackCommandHandler {
	var f commands.FeedbackUoWFactory = FuncFeedbackUoWFactory(func() commands.FeedbackUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitFeedbackCommandHandler(f)
}

func (c *CompositionRoot) CreateRemindOverdueParcelsCommandHandler() commands.RemindOverdueParcelsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemindOverdueParcelsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetParcelBoardQueryHandler() queries.GetParcelBoardQueryHandler {
	return queries.NewGetParcelBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyParcelsQueryHandler() queries.GetMyParcelsQueryHandler {
	return queries.NewGetMyParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyDeliveriesQueryHandler() queries.GetMyDeliveriesQueryHandler {
	return queries.NewGetMyDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFeedbackQueryHandler() queries.GetFeedbackQueryHandler {
	return queries.NewGetFeedbackQueryHandler(c.gormDB)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncFeedbackUoWFactory func() commands.FeedbackUoW

func (f FuncFeedbackUoWFactory) Create() commands.FeedbackUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// noopAggregateTracker satisfies the repositories' tracking hook for
// repositories used outside a unit of work.
type noopAggregateTracker struct{}

func (noopAggregateTracker) TrackAggregate(kernel.UUID, any) {}
