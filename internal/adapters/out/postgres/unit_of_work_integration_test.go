package postgres_test

import (
	"context"
	"testing"
	"time"

	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/adapters/out/postgres/feedbackrepo"
	"parcelhub/internal/adapters/out/postgres/notificationrepo"
	"parcelhub/internal/adapters/out/postgres/parcelrepo"
	"parcelhub/internal/core/domain/model/feedback"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/notification"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// parcel, notification and feedback repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&notificationrepo.NotificationDTO{},
		&feedbackrepo.FeedbackDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels, notifications, feedbacks").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestParcel() *parcel.Parcel {
	requester, err := kernel.NewIdentity("owner@example.com")
	suite.Require().NoError(err)

	details, err := parcel.NewDetails(
		"Sam", "9876543210", 50, false, "", "Block A", time.Now().Add(2*time.Hour))
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(kernel.NewUUID(), requester, details)
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testParcel := suite.createTestParcel()
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, testParcel))

	actor, err := kernel.NewIdentity("helper@example.com")
	suite.Require().NoError(err)
	n, err := notification.NewNotification(
		kernel.NewUUID(), testParcel.Requester(),
		"Congrats! helper@example.com has accepted your parcel.",
		testParcel.ID(), actor, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, n))

	entry, err := feedback.NewFeedback(kernel.NewUUID(), actor, "great board", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.FeedbackRepository().Add(ctx, entry))

	suite.Require().NoError(uow.Commit(ctx))

	var parcelCount, notificationCount, feedbackCount int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&parcelCount).Error)
	suite.Require().NoError(suite.db.Model(&notificationrepo.NotificationDTO{}).Count(&notificationCount).Error)
	suite.Require().NoError(suite.db.Model(&feedbackrepo.FeedbackDTO{}).Count(&feedbackCount).Error)
	suite.Equal(int64(1), parcelCount)
	suite.Equal(int64(1), notificationCount)
	suite.Equal(int64(1), feedbackCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testParcel := suite.createTestParcel()
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, testParcel))

	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransitionVisibleOnlyAfterCommit() {
	ctx := context.Background()

	testParcel := suite.createTestParcel()
	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.ParcelRepository().Add(ctx, testParcel))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	helper, err := kernel.NewIdentity("helper@example.com")
	suite.Require().NoError(err)
	prior := testParcel.Precondition()
	suite.Require().NoError(testParcel.Claim(helper))
	suite.Require().NoError(uow.ParcelRepository().UpdateConditional(ctx, testParcel, prior))

	// A reader outside the transaction still sees the pending row.
	outside := suite.factory.Create()
	outsideParcel, err := outside.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusPending, outsideParcel.Status())

	suite.Require().NoError(uow.Commit(ctx))

	committed, err := outside.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.StatusInProgress, committed.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetUnknownParcel() {
	ctx := context.Background()
	uow := suite.factory.Create()

	_, err := uow.ParcelRepository().Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
