package commands_test

import (
	"context"

	"spktrack/internal/core/application/usecases/commands"
	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/domain/model/ledger"
	"spktrack/internal/core/domain/model/order"
	"spktrack/internal/core/domain/model/product"
	"spktrack/internal/core/domain/model/stock"
	"spktrack/internal/core/domain/model/wallet"
	"spktrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUnfinished(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockBundleRepository struct{ mock.Mock }

func (m *MockBundleRepository) AddAll(ctx context.Context, bundles []*bundle.Bundle) error {
	args := m.Called(ctx, bundles)
	return args.Error(0)
}

func (m *MockBundleRepository) Update(ctx context.Context, b *bundle.Bundle, fromStage bundle.Stage) error {
	args := m.Called(ctx, b, fromStage)
	return args.Error(0)
}

func (m *MockBundleRepository) Get(ctx context.Context, id kernel.UUID) (*bundle.Bundle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bundle.Bundle), args.Error(1)
}

func (m *MockBundleRepository) GetByCode(ctx context.Context, code string) (*bundle.Bundle, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bundle.Bundle), args.Error(1)
}

func (m *MockBundleRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*bundle.Bundle, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bundle.Bundle), args.Error(1)
}

func (m *MockBundleRepository) CountByOrder(ctx context.Context, orderID kernel.UUID) (int, error) {
	args := m.Called(ctx, orderID)
	return args.Int(0), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) GetByMaterialIDs(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*stock.MaterialStock, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*stock.MaterialStock), args.Error(1)
}

func (m *MockStockRepository) Update(ctx context.Context, s *stock.MaterialStock) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockWalletRepository struct{ mock.Mock }

func (m *MockWalletRepository) GetOrCreate(ctx context.Context, workerID kernel.UUID) (*wallet.Wallet, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Update(ctx context.Context, w *wallet.Wallet) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) AppendConsumption(ctx context.Context, entries []ledger.ConsumptionEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLedgerRepository) AppendWageTransaction(ctx context.Context, tx ledger.WageTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLedgerRepository) AppendProductionLog(ctx context.Context, entry ledger.ProductionLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) AppendStockAlerts(ctx context.Context, alerts []ledger.StockAlert) error {
	args := m.Called(ctx, alerts)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetProductionLog(
	ctx context.Context,
	bundleID kernel.UUID,
) ([]ledger.ProductionLogEntry, error) {
	args := m.Called(ctx, bundleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.ProductionLogEntry), args.Error(1)
}

type MockScanUoW struct{ mock.Mock }

func (m *MockScanUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockScanUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockScanUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockScanUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockScanUoW) BundleRepository() ports.BundleRepository {
	args := m.Called()
	return args.Get(0).(ports.BundleRepository)
}

func (m *MockScanUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockScanUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

func (m *MockScanUoW) WalletRepository() ports.WalletRepository {
	args := m.Called()
	return args.Get(0).(ports.WalletRepository)
}

func (m *MockScanUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

type MockScanUoWFactory struct{ mock.Mock }

func (m *MockScanUoWFactory) Create() commands.ScanUoW {
	args := m.Called()
	return args.Get(0).(commands.ScanUoW)
}

type MockDecomposeUoW struct{ mock.Mock }

func (m *MockDecomposeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDecomposeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDecomposeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDecomposeUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDecomposeUoW) BundleRepository() ports.BundleRepository {
	args := m.Called()
	return args.Get(0).(ports.BundleRepository)
}

type MockDecomposeUoWFactory struct{ mock.Mock }

func (m *MockDecomposeUoWFactory) Create() commands.DecomposeUoW {
	args := m.Called()
	return args.Get(0).(commands.DecomposeUoW)
}

type MockReconcileUoW struct{ mock.Mock }

func (m *MockReconcileUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReconcileUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReconcileUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReconcileUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockReconcileUoW) BundleRepository() ports.BundleRepository {
	args := m.Called()
	return args.Get(0).(ports.BundleRepository)
}

type MockReconcileUoWFactory struct{ mock.Mock }

func (m *MockReconcileUoWFactory) Create() commands.ReconcileUoW {
	args := m.Called()
	return args.Get(0).(commands.ReconcileUoW)
}

type MockBundleLock struct{ mock.Mock }

func (m *MockBundleLock) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockBundleLocker struct{ mock.Mock }

func (m *MockBundleLocker) Lock(ctx context.Context, bundleID kernel.UUID) (ports.BundleLock, error) {
	args := m.Called(ctx, bundleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.BundleLock), args.Error(1)
}

type MockProgressPublisher struct{ mock.Mock }

func (m *MockProgressPublisher) Publish(ctx context.Context, event ports.OrderProgressEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
