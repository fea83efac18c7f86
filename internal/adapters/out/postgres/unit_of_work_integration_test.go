package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "sepulka/internal/adapters/out/postgres"
	"sepulka/internal/adapters/out/postgres/pgtest"
	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/ports"
	"sepulka/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsOrderAndFlow() {
	ctx := context.Background()
	alice, err := suite.database.SeedUser(ctx, "alice", user.Shmurdik, false)
	suite.Require().NoError(err)

	order, err := sepulka.NewSepulka(alice, sepulka.Attributes{Name: "s-1"})
	suite.Require().NoError(err)
	created, err := sepulka.NewFlow(order.Code(), "created by alice")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SepulkaRepository().Add(ctx, order))
	saved, err := uow.FlowRepository().Add(ctx, created)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Positive(saved.ID())

	reloaded, err := suite.factory.Create().SepulkaRepository().Get(ctx, order.Code())
	suite.Require().NoError(err)
	suite.Equal(sepulka.Created, reloaded.State())

	tracked := uow.(*postgres_adapter.GormUnitOfWork).TrackedAggregates()
	suite.Require().Len(tracked, 1)
	suite.True(tracked[0].IsEqual(order.Code()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsEverything() {
	ctx := context.Background()
	alice, err := suite.database.SeedUser(ctx, "alice", user.Shmurdik, false)
	suite.Require().NoError(err)
	order, err := sepulka.NewSepulka(alice, sepulka.Attributes{Name: "s-1"})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SepulkaRepository().Add(ctx, order))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().SepulkaRepository().Get(ctx, order.Code())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWithoutBeginUsePool() {
	ctx := context.Background()
	_, err := suite.database.SeedUser(ctx, "bob", user.Grymzik, false)
	suite.Require().NoError(err)

	got, err := suite.factory.Create().UserRepository().GetByUsername(ctx, "bob")
	suite.Require().NoError(err)
	suite.Equal(user.Grymzik, got.Role())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
