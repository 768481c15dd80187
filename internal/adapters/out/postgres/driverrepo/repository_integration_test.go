package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// DriverRepositoryIntegrationTestSuite verifies driver persistence against a
// real PostgreSQL instance, including the locked claim used by assignment.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
	tracker    *MockAggregateTracker
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&shipmentrepo.ShipmentDTO{},
	))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers, shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()

	vehicleID := kernel.NewUUID()
	d, err := driver.NewDriver(kernel.NewUUID(), "Ana Silva", &vehicleID)
	suite.Require().NoError(err)

	location, err := kernel.NewGeoPoint(40.4168, -3.7038)
	suite.Require().NoError(err)
	suite.Require().NoError(d.MoveTo(location))

	suite.tracker.On("TrackAggregate", d.ID(), d).Once()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	retrieved, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)

	suite.Equal(d.ID(), retrieved.ID())
	suite.Equal("Ana Silva", retrieved.Name())
	suite.True(retrieved.IsAvailable())
	suite.Require().NotNil(retrieved.Location())
	suite.InDelta(40.4168, retrieved.Location().Lat(), 1e-9)
	suite.InDelta(-3.7038, retrieved.Location().Lon(), 1e-9)
	suite.Require().NotNil(retrieved.VehicleID())
	suite.Equal(vehicleID, *retrieved.VehicleID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NonExistentDriver_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_PersistsAvailabilityFlip() {
	ctx := context.Background()

	d := suite.addDriver("Luis Gomez")

	suite.Require().NoError(d.Claim())
	suite.tracker.On("TrackAggregate", d.ID(), d).Once()
	suite.Require().NoError(suite.repository.Update(ctx, d))

	retrieved, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsAvailable())

	retrieved.Release()
	suite.tracker.On("TrackAggregate", retrieved.ID(), retrieved).Once()
	suite.Require().NoError(suite.repository.Update(ctx, retrieved))

	again, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(again.IsAvailable())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestClaimFirstAvailable_NoDrivers_ReturnsNotFoundError() {
	_, err := suite.repository.ClaimFirstAvailable(context.Background())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestClaimFirstAvailable_SkipsBusyDrivers() {
	ctx := context.Background()

	first := suite.addDriver("First")
	second := suite.addDriver("Second")

	suite.Require().NoError(first.Claim())
	suite.Require().NoError(second.Claim())
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.tracker.On("TrackAggregate", second.ID(), second).Once()
	suite.Require().NoError(suite.repository.Update(ctx, first))
	suite.Require().NoError(suite.repository.Update(ctx, second))

	third := suite.addDriver("Third")

	claimed, err := suite.repository.ClaimFirstAvailable(ctx)
	suite.Require().NoError(err)
	suite.Equal(third.ID(), claimed.ID())
	suite.True(claimed.IsAvailable(), "claim selects the row, the domain flips the flag")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestDelete_DetachesShipments() {
	ctx := context.Background()

	d := suite.addDriver("Departing Driver")

	driverID := d.ID().Bytes()
	suite.Require().NoError(suite.db.Exec(`
		INSERT INTO shipments (id, order_id, driver_id, status, created_at, estimated_delivery_time, qr_code, signature)
		VALUES (?, ?, ?, 'pending-pickup', now(), now() + interval '3 hours', '', '')
	`, kernel.NewUUID().Bytes(), kernel.NewUUID().Bytes(), driverID).Error)

	suite.Require().NoError(suite.repository.Delete(ctx, d.ID()))

	_, err := suite.repository.Get(ctx, d.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var orphaned int64
	suite.Require().NoError(suite.db.Model(&shipmentrepo.ShipmentDTO{}).
		Where("driver_id IS NULL").Count(&orphaned).Error)
	suite.Equal(int64(1), orphaned)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestDelete_NonExistentDriver_ReturnsNotFoundError() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) addDriver(name string) *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), name, nil)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", d.ID(), d).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), d))

	return d
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
