package queries_test

import (
	"context"
	"testing"
	"time"

	"spktrack/internal/adapters/out/postgres/bundlerepo"
	"spktrack/internal/adapters/out/postgres/ledgerrepo"
	"spktrack/internal/adapters/out/postgres/orderrepo"
	"spktrack/internal/core/application/usecases/queries"
	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/ledger"
	"spktrack/internal/core/domain/model/order"
	"spktrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	progressHandler queries.GetOrderProgressQueryHandler
	logHandler      queries.GetProductionLogQueryHandler
	orderRepo       *orderrepo.GormOrderRepository
	bundleRepo      *bundlerepo.GormBundleRepository
	ledgerRepo      *ledgerrepo.GormLedgerRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &bundlerepo.BundleDTO{}, &ledgerrepo.ProductionLogDTO{})
	suite.Require().NoError(err)

	suite.progressHandler = queries.NewGetOrderProgressQueryHandler(db)
	suite.logHandler = queries.NewGetProductionLogQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.bundleRepo = bundlerepo.NewGormBundleRepository(db, &mockAggregateTracker{})
	suite.ledgerRepo = ledgerrepo.NewGormLedgerRepository(db)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, bundles, production_logs").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TestGetOrderProgress_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderProgressQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.progressHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetOrderProgress_OrderWithoutBundles_ReportsZeroProgress() {
	ctx := context.Background()
	testOrder := suite.seedOrder(ctx, 100)

	query, err := queries.NewGetOrderProgressQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.progressHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(testOrder.ID().String(), result.OrderID)
	suite.Equal("Kaos Polos Hitam", result.Title)
	suite.Zero(result.TotalBundles)
	suite.Zero(result.CompletionPercent)
	suite.Empty(result.StageCounts)
}

func (suite *QueryHandlersTestSuite) TestGetOrderProgress_MixedStages_CountsPerStage() {
	ctx := context.Background()
	testOrder := suite.seedOrder(ctx, 100)

	// 100 pieces across three bundles: 40 done, 40 sewing, 20 new
	suite.seedBundle(ctx, testOrder, "KAO-001", 40, bundle.Done)
	suite.seedBundle(ctx, testOrder, "KAO-002", 40, bundle.Sewing)
	suite.seedBundle(ctx, testOrder, "KAO-003", 20, bundle.New)

	query, err := queries.NewGetOrderProgressQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.progressHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(3, result.TotalBundles)
	suite.Equal(1, result.DoneBundles)
	suite.InDelta(33.333, result.CompletionPercent, 0.001)
	suite.Equal(map[string]int{
		"DONE":   1,
		"SEWING": 1,
		"NEW":    1,
	}, result.StageCounts)
}

func (suite *QueryHandlersTestSuite) TestGetOrderProgress_UnevenBundles_CountsBundles() {
	ctx := context.Background()
	testOrder := suite.seedOrder(ctx, 105)

	// 105 pieces split 50/50/5: two full bundles done, the remainder still
	// in progress. The 5-piece bundle weighs the same as a full one.
	suite.seedBundle(ctx, testOrder, "KAO-001", 50, bundle.Done)
	suite.seedBundle(ctx, testOrder, "KAO-002", 50, bundle.Done)
	suite.seedBundle(ctx, testOrder, "KAO-003", 5, bundle.Sewing)

	query, err := queries.NewGetOrderProgressQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.progressHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(3, result.TotalBundles)
	suite.Equal(2, result.DoneBundles)
	suite.InDelta(66.667, result.CompletionPercent, 0.001)
}

func (suite *QueryHandlersTestSuite) TestGetProductionLog_UnknownBundle_ReturnsNotFound() {
	query, err := queries.NewGetProductionLogQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.logHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetProductionLog_ReturnsEntriesOldestFirst() {
	ctx := context.Background()
	testOrder := suite.seedOrder(ctx, 50)
	testBundle := suite.seedBundle(ctx, testOrder, "KAO-001", 50, bundle.Sewing)

	actorID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Second)
	suite.seedLogEntry(ctx, testBundle, bundle.New, bundle.Cutting, actorID, base)
	suite.seedLogEntry(ctx, testBundle, bundle.Cutting, bundle.Sewing, actorID, base.Add(time.Minute))

	query, err := queries.NewGetProductionLogQuery(testBundle.ID())
	suite.Require().NoError(err)

	result, err := suite.logHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("KAO-001", result.Code)
	suite.Equal("SEWING", result.Stage)
	suite.Require().Len(result.Entries, 2)
	suite.Equal("NEW", result.Entries[0].PreviousStage)
	suite.Equal("CUTTING", result.Entries[0].NewStage)
	suite.Equal("SEWING", result.Entries[1].NewStage)
	suite.Equal(actorID.String(), result.Entries[1].ActorID)
}

func (suite *QueryHandlersTestSuite) seedOrder(ctx context.Context, totalQuantity int) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "Kaos Polos Hitam", kernel.NewUUID(), kernel.NewUUID(),
		totalQuantity, time.Now().AddDate(0, 0, 14))
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(ctx, testOrder)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *QueryHandlersTestSuite) seedBundle(
	ctx context.Context,
	testOrder *order.Order,
	code string,
	quantity int,
	stage bundle.Stage,
) *bundle.Bundle {
	testBundle, err := bundle.RestoreBundle(
		kernel.NewUUID(), testOrder.ID(), code, quantity, stage, false, false)
	suite.Require().NoError(err)

	err = suite.bundleRepo.AddAll(ctx, []*bundle.Bundle{testBundle})
	suite.Require().NoError(err)
	return testBundle
}

func (suite *QueryHandlersTestSuite) seedLogEntry(
	ctx context.Context,
	testBundle *bundle.Bundle,
	from bundle.Stage,
	to bundle.Stage,
	actorID kernel.UUID,
	occurredAt time.Time,
) {
	entry, err := ledger.NewProductionLogEntry(
		testBundle.ID(), from, to, actorID, "", occurredAt)
	suite.Require().NoError(err)

	err = suite.ledgerRepo.AppendProductionLog(ctx, entry)
	suite.Require().NoError(err)
}

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
