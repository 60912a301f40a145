package cmd

import (
	"spktrack/internal/adapters/out/postgres"
	redis_adapter "spktrack/internal/adapters/out/redis"
	"spktrack/internal/core/application/usecases/commands"
	"spktrack/internal/core/application/usecases/queries"
	"spktrack/internal/core/domain/services"
	"spktrack/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locker     ports.BundleLocker
	publisher  ports.ProgressPublisher
	inventory  services.InventoryLedger
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	redisClient *redis.Client,
	inventory services.InventoryLedger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		locker:     redis_adapter.NewRedisBundleLocker(redisClient),
		publisher:  redis_adapter.NewRedisProgressPublisher(redisClient),
		inventory:  inventory,
	}
}

func (c *CompositionRoot) CreateAdvanceBundleCommandHandler() commands.AdvanceBundleCommandHandler {
	var f commands.ScanUoWFactory = FuncScanUoWFactory(func() commands.ScanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceBundleCommandHandler(
		f, c.locker, c.publisher, c.inventory, services.NewWageLedger())
}

func (c *CompositionRoot) CreateDecomposeOrderCommandHandler() commands.DecomposeOrderCommandHandler {
	var f commands.DecomposeUoWFactory = FuncDecomposeUoWFactory(func() commands.DecomposeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDecomposeOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileOrdersCommandHandler() commands.ReconcileOrdersCommandHandler {
	var f commands.ReconcileUoWFactory = FuncReconcileUoWFactory(func() commands.ReconcileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderProgressQueryHandler() queries.GetOrderProgressQueryHandler {
	return queries.NewGetOrderProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductionLogQueryHandler() queries.GetProductionLogQueryHandler {
	return queries.NewGetProductionLogQueryHandler(c.gormDB)
}

type FuncScanUoWFactory func() commands.ScanUoW

func (f FuncScanUoWFactory) Create() commands.ScanUoW {
	return f()
}

type FuncDecomposeUoWFactory func() commands.DecomposeUoW

func (f FuncDecomposeUoWFactory) Create() commands.DecomposeUoW {
	return f()
}

type FuncReconcileUoWFactory func() commands.ReconcileUoW

func (f FuncReconcileUoWFactory) Create() commands.ReconcileUoW {
	return f()
}
