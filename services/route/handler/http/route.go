package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/piresc/routecalc/internal/pkg/models"
	nrpkg "github.com/piresc/routecalc/internal/pkg/newrelic"
	"github.com/piresc/routecalc/internal/utils"
	"github.com/piresc/routecalc/services/route"
)

// RouteHandler handles HTTP requests for routes, waypoints and calculations
type RouteHandler struct {
	routeUC route.RouteUC
}

// NewRouteHandler creates a new route HTTP handler
func NewRouteHandler(routeUC route.RouteUC) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
	}
}

// waypointResponse is returned by waypoint edits
type waypointResponse struct {
	Waypoint    *models.Waypoint      `json:"waypoint"`
	Calculation *models.TriggerResult `json:"calculation"`
}

// CreateRoute handles route creation with optional initial waypoints
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)

	var req models.CreateRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	detail, err := h.routeUC.CreateRoute(c.Request().Context(), req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err, "create route")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Route created successfully", detail)
}

// ListRoutes lists the routes of an owner
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	ownerID := c.QueryParam("owner_id")
	if ownerID == "" {
		return utils.BadRequestResponse(c, "owner_id is required")
	}

	routes, err := h.routeUC.ListRoutes(c.Request().Context(), ownerID)
	if err != nil {
		return h.errorResponse(c, err, "list routes")
	}
	if routes == nil {
		routes = []*models.Route{}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Routes retrieved successfully", routes)
}

// GetRoute returns a route with its waypoints and segments
func (h *RouteHandler) GetRoute(c echo.Context) error {
	routeID, err := parseID(c, "routeID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	detail, err := h.routeUC.GetRoute(c.Request().Context(), routeID)
	if err != nil {
		return h.errorResponse(c, err, "get route")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route retrieved successfully", detail)
}

// DeleteRoute deletes a route
func (h *RouteHandler) DeleteRoute(c echo.Context) error {
	routeID, err := parseID(c, "routeID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.routeUC.DeleteRoute(c.Request().Context(), routeID); err != nil {
		return h.errorResponse(c, err, "delete route")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route deleted successfully", nil)
}

// InsertWaypoint adds a waypoint to a route
func (h *RouteHandler) InsertWaypoint(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Route.InsertWaypoint")

	routeID, err := parseID(c, "routeID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.WaypointRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	waypoint, result, err := h.routeUC.InsertWaypoint(c.Request().Context(), routeID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err, "insert waypoint")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Waypoint added successfully",
		waypointResponse{Waypoint: waypoint, Calculation: result})
}

// MoveWaypoint changes the coordinates of a waypoint
func (h *RouteHandler) MoveWaypoint(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Route.MoveWaypoint")

	routeID, err := parseID(c, "routeID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	waypointID, err := parseID(c, "waypointID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.MoveWaypointRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	waypoint, result, err := h.routeUC.MoveWaypoint(c.Request().Context(), routeID, waypointID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err, "move waypoint")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Waypoint moved successfully",
		waypointResponse{Waypoint: waypoint, Calculation: result})
}

// DeleteWaypoint removes a waypoint from a route
func (h *RouteHandler) DeleteWaypoint(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Route.DeleteWaypoint")

	routeID, err := parseID(c, "routeID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	waypointID, err := parseID(c, "waypointID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.routeUC.DeleteWaypoint(c.Request().Context(), routeID, waypointID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err, "delete waypoint")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Waypoint deleted successfully", result)
}

// TriggerCalculation starts a route calculation.
// Dispatched and in-flight calculations answer 202.
func (h *RouteHandler) TriggerCalculation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Route.TriggerCalculation")

	routeID, err := parseID(c, "routeID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	nrpkg.AddTransactionAttribute(txn, "route.id", routeID.String())

	var req models.CalculateRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		}
	}

	result, err := h.routeUC.TriggerCalculation(c.Request().Context(), routeID, req)
	if errors.Is(err, route.ErrCalculationInProgress) {
		return utils.SuccessResponse(c, http.StatusAccepted, "Route calculation already in progress", result)
	}
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return h.errorResponse(c, err, "calculate route")
	}

	if result.Async {
		return utils.SuccessResponse(c, http.StatusAccepted, "Route calculation dispatched", result)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route calculated successfully", result)
}

// GetStatus reports the calculation state of a route
func (h *RouteHandler) GetStatus(c echo.Context) error {
	routeID, err := parseID(c, "routeID")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	report, err := h.routeUC.GetStatus(c.Request().Context(), routeID)
	if err != nil {
		return h.errorResponse(c, err, "get calculation status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Calculation status retrieved successfully", report)
}

// TestConnectivity probes the routing backend
func (h *RouteHandler) TestConnectivity(c echo.Context) error {
	report := h.routeUC.TestConnectivity(c.Request().Context())
	if !report.Success {
		return c.JSON(http.StatusServiceUnavailable, utils.Response{
			Success: false,
			Error:   report.Error,
			Data:    report,
		})
	}
	return utils.SuccessResponse(c, http.StatusOK, "Routing backend reachable", report)
}

// InvalidateCacheArea drops cached segments around ?lat=&lon=
func (h *RouteHandler) InvalidateCacheArea(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if latErr != nil || lonErr != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return utils.BadRequestResponse(c, "lat and lon must be valid coordinates")
	}

	removed, err := h.routeUC.InvalidateCacheArea(c.Request().Context(), models.Coordinate{Latitude: lat, Longitude: lon})
	if err != nil {
		return h.errorResponse(c, err, "invalidate cache area")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cache area invalidated", map[string]int{"removed": removed})
}

// errorResponse maps use case errors to HTTP responses
func (h *RouteHandler) errorResponse(c echo.Context, err error, action string) error {
	var backendErr *route.BackendError
	switch {
	case errors.Is(err, route.ErrRouteNotFound), errors.Is(err, route.ErrWaypointNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, route.ErrInsufficientWaypoints):
		return utils.UnprocessableEntityResponse(c, err.Error())
	case errors.Is(err, route.ErrCalculationInProgress):
		return utils.ConflictResponse(c, err.Error())
	case errors.As(err, &backendErr):
		return utils.BadGatewayResponse(c, err.Error())
	}

	logger.ErrorCtx(c.Request().Context(), "Failed to "+action,
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "Failed to "+action)
}

func parseID(c echo.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, errors.New("invalid " + param)
	}
	return id, nil
}
