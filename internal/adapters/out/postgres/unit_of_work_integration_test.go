package postgres_test

import (
	"context"
	"sync"
	"testing"

	postgresadapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies the GORM unit of work against a
// real PostgreSQL database, including the concurrent driver claim that the
// assignment engine depends on.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&shipmentrepo.ShipmentDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customers, vehicles, drivers, orders, shipments").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.DriverRepository())
	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsClaim() {
	ctx := context.Background()
	suite.seedDrivers(1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.DriverRepository()
	claimed, err := repo.ClaimFirstAvailable(ctx)
	suite.Require().NoError(err)

	suite.Require().NoError(claimed.Claim())
	suite.Require().NoError(repo.Update(ctx, claimed))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(1), suite.availableCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsClaim() {
	ctx := context.Background()
	suite.seedDrivers(1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.DriverRepository()
	claimed, err := repo.ClaimFirstAvailable(ctx)
	suite.Require().NoError(err)

	suite.Require().NoError(claimed.Claim())
	suite.Require().NoError(repo.Update(ctx, claimed))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(0), suite.availableCount())
}

// TestConcurrentClaims_DistinctWinners is the linearizability check: N
// concurrent transactions claiming over N drivers must each win a different
// driver, with no double assignment and no failed claim.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentClaims_DistinctWinners() {
	ctx := context.Background()
	const n = 8
	suite.seedDrivers(n)

	var wg sync.WaitGroup
	claimedIDs := make(chan kernel.UUID, n)
	claimErrs := make(chan error, n)

	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()

			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				claimErrs <- err
				return
			}
			defer func() {
				_ = uow.Rollback(ctx)
			}()

			repo := uow.DriverRepository()
			claimed, err := repo.ClaimFirstAvailable(ctx)
			if err != nil {
				claimErrs <- err
				return
			}
			if err = claimed.Claim(); err != nil {
				claimErrs <- err
				return
			}
			if err = repo.Update(ctx, claimed); err != nil {
				claimErrs <- err
				return
			}
			if err = uow.Commit(ctx); err != nil {
				claimErrs <- err
				return
			}

			claimedIDs <- claimed.ID()
		}()
	}

	wg.Wait()
	close(claimedIDs)
	close(claimErrs)

	for err := range claimErrs {
		suite.Require().NoError(err)
	}

	winners := make(map[kernel.UUID]bool)
	for id := range claimedIDs {
		suite.False(winners[id], "driver claimed twice: %s", id.String())
		winners[id] = true
	}
	suite.Len(winners, n)

	suite.Equal(int64(0), suite.availableCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestClaim_AllDriversBusy_ReturnsNotFound() {
	ctx := context.Background()
	suite.seedDrivers(1)

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))

	repo := first.DriverRepository()
	claimed, err := repo.ClaimFirstAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(claimed.Claim())
	suite.Require().NoError(repo.Update(ctx, claimed))
	suite.Require().NoError(first.Commit(ctx))

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	defer func() {
		_ = second.Rollback(ctx)
	}()

	_, err = second.DriverRepository().ClaimFirstAvailable(ctx)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// seedDrivers inserts n available drivers outside any transaction.
func (suite *UnitOfWorkIntegrationTestSuite) seedDrivers(n int) {
	uow := suite.factory.Create()
	repo := uow.DriverRepository()

	for i := 0; i < n; i++ {
		d, err := driver.NewDriver(kernel.NewUUID(), "Seed Driver", nil)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(context.Background(), d))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) availableCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&driverrepo.DriverDTO{}).
		Where("available").Count(&count).Error)
	return count
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
