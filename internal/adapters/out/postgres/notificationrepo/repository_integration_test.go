package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"parcelhub/internal/adapters/out/postgres/notificationrepo"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/notification"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// NotificationRepositoryIntegrationTestSuite provides integration tests for
// NotificationRepository using PostgreSQL containers.
type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *notificationrepo.GormNotificationRepository
	tracker    *MockAggregateTracker
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&notificationrepo.NotificationDTO{}))
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notifications").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = notificationrepo.NewGormNotificationRepository(suite.db, suite.tracker)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) createTestNotification() *notification.Notification {
	recipient, err := kernel.NewIdentity("owner@example.com")
	suite.Require().NoError(err)
	actor, err := kernel.NewIdentity("helper@example.com")
	suite.Require().NoError(err)

	n, err := notification.NewNotification(
		kernel.NewUUID(),
		recipient,
		"Congrats! helper@example.com has accepted your parcel.",
		kernel.NewUUID(),
		actor,
		time.Now(),
	)
	suite.Require().NoError(err)
	return n
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_Success() {
	ctx := context.Background()
	n := suite.createTestNotification()

	suite.tracker.On("TrackAggregate", n.ID(), n).Once()

	err := suite.repository.Add(ctx, n)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&notificationrepo.NotificationDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	n := suite.createTestNotification()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, n))

	loaded, err := suite.repository.Get(ctx, n.ID())
	suite.Require().NoError(err)

	suite.True(n.ID().IsEqual(loaded.ID()))
	suite.True(n.Recipient().IsEqual(loaded.Recipient()))
	suite.Equal(n.Message(), loaded.Message())
	suite.True(n.ParcelID().IsEqual(loaded.ParcelID()))
	suite.True(n.Actor().IsEqual(loaded.Actor()))
	suite.False(loaded.IsRead())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_MarksRead() {
	ctx := context.Background()
	n := suite.createTestNotification()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, n))

	suite.Require().NoError(n.MarkRead(n.Recipient()))
	suite.Require().NoError(suite.repository.Update(ctx, n))

	loaded, err := suite.repository.Get(ctx, n.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsRead())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	n := suite.createTestNotification()

	err := suite.repository.Update(ctx, n)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
