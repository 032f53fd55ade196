package cmd

import (
	"wms/internal/adapters/out/postgres"
	"wms/internal/adapters/out/sapgw"
	"wms/internal/core/application/usecases/commands"
	"wms/internal/core/application/usecases/queries"
	"wms/internal/core/domain/model/statemachine"
	"wms/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	definition *statemachine.Definition
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, definition *statemachine.Definition) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		definition: definition,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.definition)
}

func (c *CompositionRoot) CreatePostOrderEventCommandHandler() commands.PostOrderEventCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPostOrderEventCommandHandler(f, c.definition)
}

func (c *CompositionRoot) CreateSyncExternalOrdersCommandHandler() commands.SyncExternalOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncExternalOrdersCommandHandler(f, c.definition, c.configs.InternalSharedSecret)
}

func (c *CompositionRoot) CreateMirrorSyncCommandHandler() commands.MirrorSyncCommandHandler {
	var f commands.MirrorUoWFactory = FuncMirrorUoWFactory(func() commands.MirrorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMirrorSyncCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateMirrorListQueryHandler() queries.MirrorListQueryHandler {
	return queries.NewMirrorListQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSapOrderSource() ports.SapOrderSource {
	return sapgw.NewClient(c.configs.SapGatewayURL, c.configs.SapGatewayAPIKey)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncMirrorUoWFactory func() commands.MirrorUoW

func (f FuncMirrorUoWFactory) Create() commands.MirrorUoW {
	return f()
}
