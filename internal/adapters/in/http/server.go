// Package http exposes the REST API for the parcel delivery board.
// Handlers translate between JSON requests and the application's commands
// and queries; all business rules live in the core.
package http

import (
	"net/http"
	"time"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler         commands.CreateParcelCommandHandler
	deliverParcelHandler        commands.DeliverParcelCommandHandler
	deleteParcelHandler         commands.DeleteParcelCommandHandler
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler
	submitFeedbackHandler       commands.SubmitFeedbackCommandHandler

	// Query handlers
	getParcelBoardHandler   queries.GetParcelBoardQueryHandler
	getMyParcelsHandler     queries.GetMyParcelsQueryHandler
	getMyDeliveriesHandler  queries.GetMyDeliveriesQueryHandler
	getNotificationsHandler queries.GetNotificationsQueryHandler
	getFeedbackHandler      queries.GetFeedbackQueryHandler

	resolver ports.IdentityResolver
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	deliverParcelHandler commands.DeliverParcelCommandHandler,
	deleteParcelHandler commands.DeleteParcelCommandHandler,
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler,
	submitFeedbackHandler commands.SubmitFeedbackCommandHandler,
	getParcelBoardHandler queries.GetParcelBoardQueryHandler,
	getMyParcelsHandler queries.GetMyParcelsQueryHandler,
	getMyDeliveriesHandler queries.GetMyDeliveriesQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
	getFeedbackHandler queries.GetFeedbackQueryHandler,
	resolver ports.IdentityResolver,
) *Server {
	return &Server{
		createParcelHandler:         createParcelHandler,
		deliverParcelHandler:        deliverParcelHandler,
		deleteParcelHandler:         deleteParcelHandler,
		markNotificationReadHandler: markNotificationReadHandler,
		submitFeedbackHandler:       submitFeedbackHandler,
		getParcelBoardHandler:       getParcelBoardHandler,
		getMyParcelsHandler:         getMyParcelsHandler,
		getMyDeliveriesHandler:      getMyDeliveriesHandler,
		getNotificationsHandler:     getNotificationsHandler,
		getFeedbackHandler:          getFeedbackHandler,
		resolver:                    resolver,
	}
}

// RegisterRoutes wires the API routes onto the echo instance.
// The board and feedback listings are public; everything else under
// /api/v1 requires a valid session.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/v1/parcels", s.GetParcelBoard)
	e.GET("/api/v1/feedback", s.GetFeedback)

	api := e.Group("/api/v1", SessionAuth(s.resolver))
	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels/my", s.GetMyParcels)
	api.GET("/parcels/delivered", s.GetMyDeliveries)
	api.PUT("/parcels/:id/delivery", s.DeliverParcel)
	api.DELETE("/parcels/:id", s.DeleteParcel)
	api.GET("/notifications", s.GetNotifications)
	api.PUT("/notifications/:id/read", s.MarkNotificationRead)
	api.POST("/feedback", s.SubmitFeedback)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetParcelBoard handles GET /api/v1/parcels - lists every parcel on the
// board, newest first. Open to unauthenticated callers.
func (s *Server) GetParcelBoard(ctx echo.Context) error {
	query := queries.NewGetParcelBoardQuery()

	rows, err := s.getParcelBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelsFromQuery(rows))
}

// CreateParcel handles POST /api/v1/parcels - posts a new parcel.
func (s *Server) CreateParcel(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	var body NewParcel
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var deadline time.Time
	if body.Deadline != nil {
		deadline = *body.Deadline
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		caller,
		body.ContactName,
		body.ContactNumber,
		body.Cost,
		body.Paid,
		body.PickupPlace,
		body.DropOffPlace,
		deadline,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, parcelFromAggregate(created))
}

// GetMyParcels handles GET /api/v1/parcels/my - lists the caller's parcels.
func (s *Server) GetMyParcels(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	query, err := queries.NewGetMyParcelsQuery(caller)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getMyParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelsFromQuery(rows))
}

// GetMyDeliveries handles GET /api/v1/parcels/delivered - lists parcels the
// caller carries or has carried.
func (s *Server) GetMyDeliveries(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	query, err := queries.NewGetMyDeliveriesQuery(caller)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getMyDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelsFromQuery(rows))
}

// DeliverParcel handles PUT /api/v1/parcels/:id/delivery - applies a
// lifecycle transition (claim, cancel or complete) to a parcel.
func (s *Server) DeliverParcel(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("parcelID", err))
	}

	var body DeliveryAction
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	action, err := parcel.ParseAction(body.Action)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeliverParcelCommand(parcelID, caller, action)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.deliverParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	warnings := make([]string, 0, len(result.Warnings))
	for _, warning := range result.Warnings {
		warnings = append(warnings, warning.Error())
	}

	return ctx.JSON(http.StatusOK, DeliveryResult{
		Message:  result.Confirmation,
		Parcel:   parcelFromAggregate(result.Parcel),
		Warnings: warnings,
	})
}

// DeleteParcel handles DELETE /api/v1/parcels/:id - withdraws a pending parcel.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("parcelID", err))
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetNotifications handles GET /api/v1/notifications - lists the caller's
// notifications, newest first.
func (s *Server) GetNotifications(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	query, err := queries.NewGetNotificationsQuery(caller)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Notification, len(rows))
	for i, row := range rows {
		response[i] = Notification{
			ID:        row.ID.String(),
			Message:   row.Message,
			ParcelID:  row.ParcelID.String(),
			Actor:     row.Actor,
			IsRead:    row.IsRead,
			CreatedAt: row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles PUT /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	notificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("notificationID", err))
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetFeedback handles GET /api/v1/feedback - lists feedback entries,
// newest first. Open to unauthenticated callers.
func (s *Server) GetFeedback(ctx echo.Context) error {
	query := queries.NewGetFeedbackQuery()

	rows, err := s.getFeedbackHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Feedback, len(rows))
	for i, row := range rows {
		response[i] = Feedback{
			ID:        row.ID.String(),
			Author:    row.Author,
			Text:      row.Text,
			CreatedAt: row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitFeedback handles POST /api/v1/feedback - posts a feedback entry.
func (s *Server) SubmitFeedback(ctx echo.Context) error {
	caller, ok := callerIdentity(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	var body NewFeedback
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSubmitFeedbackCommand(kernel.NewUUID(), caller, body.Text)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.submitFeedbackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}
