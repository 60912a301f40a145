// Package http exposes the production tracking use cases over a JSON API.
package http

import (
	"errors"
	"net/http"

	"spktrack/internal/core/application/usecases/commands"
	"spktrack/internal/core/application/usecases/queries"
	"spktrack/internal/core/domain/model/bundle"
	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	advanceBundleHandler  commands.AdvanceBundleCommandHandler
	decomposeOrderHandler commands.DecomposeOrderCommandHandler

	// Query handlers
	getOrderProgressHandler queries.GetOrderProgressQueryHandler
	getProductionLogHandler queries.GetProductionLogQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	advanceBundleHandler commands.AdvanceBundleCommandHandler,
	decomposeOrderHandler commands.DecomposeOrderCommandHandler,
	getOrderProgressHandler queries.GetOrderProgressQueryHandler,
	getProductionLogHandler queries.GetProductionLogQueryHandler,
) *Server {
	return &Server{
		advanceBundleHandler:    advanceBundleHandler,
		decomposeOrderHandler:   decomposeOrderHandler,
		getOrderProgressHandler: getOrderProgressHandler,
		getProductionLogHandler: getProductionLogHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = &requestValidator{validate: validator.New()}

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/scans", s.CreateScan)
	api.POST("/orders/:id/bundles", s.DecomposeOrder)
	api.GET("/orders/:id/progress", s.GetOrderProgress)
	api.GET("/bundles/:id/log", s.GetProductionLog)
}

// requestValidator adapts go-playground/validator to echo's Validator interface.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ScanRequest is the body of POST /api/v1/scans: one scan event from a
// station terminal.
type ScanRequest struct {
	Code        string `json:"code" validate:"required"`
	TargetStage string `json:"target_stage" validate:"required"`
	ActorID     string `json:"actor_id" validate:"required,uuid"`
	Note        string `json:"note"`
}

// ScanResponse reports the bundle state after a processed scan.
type ScanResponse struct {
	BundleID string `json:"bundle_id"`
	Code     string `json:"code"`
	Stage    string `json:"stage"`
	NoOp     bool   `json:"no_op"`
}

// defaultBundleSize is used when a decomposition request omits the size.
const defaultBundleSize = 50

// DecomposeRequest is the body of POST /api/v1/orders/:id/bundles.
// BundleSize defaults to 50 when omitted.
type DecomposeRequest struct {
	BundleSize int `json:"bundle_size" validate:"omitempty,gt=0"`
}

// DecomposeResponse reports the bundles a decomposition produced.
type DecomposeResponse struct {
	OrderID string           `json:"order_id"`
	Bundles []BundleResponse `json:"bundles"`
}

// BundleResponse is one produced bundle in a decomposition response.
type BundleResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
	Stage    string `json:"stage"`
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateScan handles POST /api/v1/scans - processes one scan event.
func (s *Server) CreateScan(ctx echo.Context) error {
	var req ScanRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid scan data: "+err.Error())
	}

	code, err := kernel.NewScanCode(req.Code)
	if err != nil {
		return badRequest(ctx, "Unreadable scan code: "+err.Error())
	}

	targetStage, err := bundle.StageFromString(req.TargetStage)
	if err != nil {
		return badRequest(ctx, "Unknown target stage: "+err.Error())
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id: "+err.Error())
	}

	cmd, err := commands.NewAdvanceBundleCommand(code, targetStage, actorID, req.Note)
	if err != nil {
		return badRequest(ctx, "Invalid scan data: "+err.Error())
	}

	result, err := s.advanceBundleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ScanResponse{
		BundleID: result.BundleID,
		Code:     result.Code,
		Stage:    result.Stage,
		NoOp:     result.NoOp,
	})
}

// DecomposeOrder handles POST /api/v1/orders/:id/bundles - splits an order
// into production bundles.
func (s *Server) DecomposeOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req DecomposeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid decomposition data: "+err.Error())
	}
	if req.BundleSize == 0 {
		req.BundleSize = defaultBundleSize
	}

	cmd, err := commands.NewDecomposeOrderCommand(orderID, req.BundleSize)
	if err != nil {
		return badRequest(ctx, "Invalid decomposition data: "+err.Error())
	}

	result, err := s.decomposeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	bundles := make([]BundleResponse, len(result.Bundles))
	for i, b := range result.Bundles {
		bundles[i] = BundleResponse{
			ID:       b.ID,
			Code:     b.Code,
			Quantity: b.Quantity,
			Stage:    b.Stage,
		}
	}

	return ctx.JSON(http.StatusCreated, DecomposeResponse{
		OrderID: result.OrderID,
		Bundles: bundles,
	})
}

// GetOrderProgress handles GET /api/v1/orders/:id/progress - retrieves the
// live progress snapshot for one order.
func (s *Server) GetOrderProgress(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderProgressQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid progress query: "+err.Error())
	}

	progress, err := s.getOrderProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, progress)
}

// GetProductionLog handles GET /api/v1/bundles/:id/log - retrieves a
// bundle's stage transition history.
func (s *Server) GetProductionLog(ctx echo.Context) error {
	bundleID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid bundle id")
	}

	query, err := queries.NewGetProductionLogQuery(bundleID)
	if err != nil {
		return badRequest(ctx, "Invalid log query: "+err.Error())
	}

	log, err := s.getProductionLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, log)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps use case errors to HTTP statuses. Conflicts (lost
// races, wrong-stage scans, repeat decompositions) are retryable by the
// client after refreshing; insufficient stock is a business rejection.
func errorResponse(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrMalformedCode),
		errors.Is(err, errs.ErrInvalidDecomposition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyDecomposed),
		errors.Is(err, errs.ErrConcurrencyConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrInsufficientStock):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
