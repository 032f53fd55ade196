// Package http exposes the order lifecycle engine over REST.
package http

import (
	"net/http"
	"time"

	"wms/internal/core/application/usecases/commands"
	"wms/internal/core/application/usecases/queries"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/mirror"
	"wms/internal/core/domain/model/order"
	"wms/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// HeaderIdempotencyKey carries the client's de-duplication token.
const HeaderIdempotencyKey = "Idempotency-Key"

// HeaderInternalSecret authenticates internal gateway calls.
const HeaderInternalSecret = "X-Internal-Secret"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler    commands.CreateOrderCommandHandler
	postOrderEventHandler commands.PostOrderEventCommandHandler
	syncOrdersHandler     commands.SyncExternalOrdersCommandHandler
	mirrorSyncHandler     commands.MirrorSyncCommandHandler

	getOrderHandler        queries.GetOrderQueryHandler
	listOrdersHandler      queries.ListOrdersQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	mirrorListHandler      queries.MirrorListQueryHandler
}

// NewServer creates the HTTP server with all command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	postOrderEventHandler commands.PostOrderEventCommandHandler,
	syncOrdersHandler commands.SyncExternalOrdersCommandHandler,
	mirrorSyncHandler commands.MirrorSyncCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	mirrorListHandler queries.MirrorListQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		postOrderEventHandler:  postOrderEventHandler,
		syncOrdersHandler:      syncOrdersHandler,
		mirrorSyncHandler:      mirrorSyncHandler,
		getOrderHandler:        getOrderHandler,
		listOrdersHandler:      listOrdersHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		mirrorListHandler:      mirrorListHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(TracingMiddleware())

	e.GET("/health", s.Health)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.ListOrders)
	e.GET("/v1/orders", s.ListOrders)
	e.GET("/orders/:orderId", s.GetOrder)
	e.GET("/orders/:orderId/history", s.GetOrderHistory)
	e.POST("/orders/:orderId/events", s.PostOrderEvent)

	e.POST("/internal/sap/orders", s.SyncSapOrders)

	e.GET("/v1/catalog/items", s.ListProducts)
	e.POST("/v1/catalog/items/bulk", s.BulkUpsertProducts)
	e.GET("/v1/inventory", s.ListInventory)
	e.POST("/v1/inventory/bulk", s.BulkUpsertInventory)
	e.GET("/v1/customers", s.ListCustomers)
	e.POST("/v1/customers/bulk", s.BulkUpsertCustomers)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    codeValidationError,
			Message: "invalid request body",
		})
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, it := range req.Items {
		item, err := order.NewItem(it.SKU, it.Quantity)
		if err != nil {
			return writeError(ctx, err)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		req.CustomerID,
		req.ExternalOrderID,
		items,
		ctx.Request().Header.Get(HeaderIdempotencyKey),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, result)
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	limit, offset, err := bindPagination(ctx)
	if err != nil {
		return paginationError(ctx)
	}

	query, err := queries.NewListOrdersQuery(
		ctx.QueryParam("status"),
		ctx.QueryParam("externalOrderId"),
		limit,
		offset,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderHistory handles GET /orders/{orderId}/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// PostOrderEvent handles POST /orders/{orderId}/events.
func (s *Server) PostOrderEvent(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req OrderEventRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    codeValidationError,
			Message: "invalid request body",
		})
	}

	actor, err := order.NewActor(order.ActorKind(req.Actor.Kind), req.Actor.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	occurredAt := timeOrZero(req.OccurredAt)
	cmd, err := commands.NewPostOrderEventCommand(
		orderID,
		req.Type,
		actor,
		occurredAt,
		ctx.Request().Header.Get(HeaderIdempotencyKey),
		correlationID(ctx),
		requestID(ctx),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	outcome, err := s.postOrderEventHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, outcome)
}

// SyncSapOrders handles POST /internal/sap/orders.
func (s *Server) SyncSapOrders(ctx echo.Context) error {
	var req SapOrdersSyncRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    codeValidationError,
			Message: "invalid request body",
		})
	}

	orders := make([]ports.SapOrder, 0, len(req.Orders))
	for _, o := range req.Orders {
		lines := make([]ports.SapOrderLine, 0, len(o.DocumentLines))
		for _, line := range o.DocumentLines {
			lines = append(lines, ports.SapOrderLine{
				ItemCode: line.ItemCode,
				Quantity: line.Quantity,
			})
		}
		orders = append(orders, ports.SapOrder{
			DocEntry:   o.DocEntry,
			DocNum:     o.DocNum,
			CardCode:   o.CardCode,
			DocStatus:  o.DocStatus,
			UpdateDate: o.UpdateDate,
			UpdateTime: o.UpdateTime,
			Lines:      lines,
		})
	}

	cmd, err := commands.NewSyncExternalOrdersCommand(
		ctx.Request().Header.Get(HeaderInternalSecret),
		orders,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.syncOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// BulkUpsertProducts handles POST /v1/catalog/items/bulk.
func (s *Server) BulkUpsertProducts(ctx echo.Context) error {
	var req BulkProductsRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    codeValidationError,
			Message: "invalid request body",
		})
	}

	products := make([]mirror.Product, 0, len(req.Items))
	for _, item := range req.Items {
		products = append(products, mirror.Product{
			SKU:             item.SKU,
			Description:     item.Description,
			EAN:             item.EAN,
			Category:        item.Category,
			UnitOfMeasure:   defaultString(item.UnitOfMeasure, "UN"),
			IsActive:        defaultBool(item.IsActive, true),
			IsInventoryItem: defaultBool(item.IsInventoryItem, true),
			IsSalesItem:     defaultBool(item.IsSalesItem, true),
			SapItemCode:     item.SapItemCode,
			SapUpdateDate:   item.SapUpdateDate,
		})
	}

	cmd, err := commands.NewSyncProductsCommand(products)
	if err != nil {
		return writeError(ctx, err)
	}

	counts, err := s.mirrorSyncHandler.HandleProducts(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, bulkResponse(counts))
}

// BulkUpsertInventory handles POST /v1/inventory/bulk.
func (s *Server) BulkUpsertInventory(ctx echo.Context) error {
	var req BulkInventoriesRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    codeValidationError,
			Message: "invalid request body",
		})
	}

	stocks := make([]mirror.InventoryStock, 0, len(req.Items))
	for _, item := range req.Items {
		stocks = append(stocks, mirror.InventoryStock{
			SKU:           item.SKU,
			WarehouseCode: item.WarehouseCode,
			OnHand:        item.OnHand,
			Committed:     item.Committed,
			Ordered:       item.Ordered,
			SapUpdateDate: item.SapUpdateDate,
		})
	}

	cmd, err := commands.NewSyncInventoryCommand(stocks)
	if err != nil {
		return writeError(ctx, err)
	}

	counts, err := s.mirrorSyncHandler.HandleInventory(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, bulkResponse(counts))
}

// BulkUpsertCustomers handles POST /v1/customers/bulk.
func (s *Server) BulkUpsertCustomers(ctx echo.Context) error {
	var req BulkCustomersRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    codeValidationError,
			Message: "invalid request body",
		})
	}

	customers := make([]mirror.Customer, 0, len(req.Items))
	for _, item := range req.Items {
		customers = append(customers, mirror.Customer{
			CardCode:      item.CardCode,
			CardName:      item.CardName,
			CardType:      defaultString(item.CardType, "C"),
			Phone:         item.Phone,
			Email:         item.Email,
			Address:       item.Address,
			City:          item.City,
			State:         item.State,
			IsActive:      defaultBool(item.IsActive, true),
			SapUpdateDate: item.SapUpdateDate,
		})
	}

	cmd, err := commands.NewSyncCustomersCommand(customers)
	if err != nil {
		return writeError(ctx, err)
	}

	counts, err := s.mirrorSyncHandler.HandleCustomers(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, bulkResponse(counts))
}

// ListProducts handles GET /v1/catalog/items.
func (s *Server) ListProducts(ctx echo.Context) error {
	limit, offset, err := bindPagination(ctx)
	if err != nil {
		return paginationError(ctx)
	}

	query, err := queries.NewListProductsQuery(ctx.QueryParam("search"), limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.mirrorListHandler.HandleProducts(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListInventory handles GET /v1/inventory.
func (s *Server) ListInventory(ctx echo.Context) error {
	limit, offset, err := bindPagination(ctx)
	if err != nil {
		return paginationError(ctx)
	}

	query, err := queries.NewListInventoryQuery(
		ctx.QueryParam("sku"),
		ctx.QueryParam("warehouseCode"),
		limit,
		offset,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.mirrorListHandler.HandleInventory(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListCustomers handles GET /v1/customers.
func (s *Server) ListCustomers(ctx echo.Context) error {
	limit, offset, err := bindPagination(ctx)
	if err != nil {
		return paginationError(ctx)
	}

	query, err := queries.NewListCustomersQuery(ctx.QueryParam("search"), limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.mirrorListHandler.HandleCustomers(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// bindPagination reads limit and offset from the query string. A malformed
// value is an error, not a silent fallback to the defaults.
func bindPagination(ctx echo.Context) (limit, offset int, err error) {
	err = echo.QueryParamsBinder(ctx).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError()
	return limit, offset, err
}

func paginationError(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    codeValidationError,
		Message: "limit and offset must be integers",
	})
}

func bulkResponse(counts ports.UpsertCounts) BulkUpsertResponse {
	return BulkUpsertResponse{
		Upserted: counts.Upserted(),
		Created:  counts.Created,
		Updated:  counts.Updated,
	}
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func defaultBool(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
