package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	reqdto "grooming-booking/internal/handler/dto/request"
	resdto "grooming-booking/internal/handler/dto/response"
	"grooming-booking/internal/handler/httperr"
	"grooming-booking/internal/handler/middleware"
	"grooming-booking/internal/usecase/commands"
	"grooming-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
	loc  *time.Location
}

// loc resolves plain YYYY-MM-DD list filters.
func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries, loc *time.Location) *AppointmentHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AppointmentHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary List appointments
// @Description List all appointments ordered by start time, optionally filtered
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Earliest start (RFC3339 or YYYY-MM-DD)"
// @Param endDate query string false "Latest start (RFC3339 or YYYY-MM-DD, inclusive)"
// @Param customerName query string false "Substring of the customer's first name, case-insensitive"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	var query reqdto.ListAppointmentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter(h.loc)
	if err != nil {
		httperr.AbortMapped(c, err, appointmentErrorRules)
		return
	}

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortMapped(c, err, appointmentErrorRules)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary Get appointment
// @Description Get an appointment by ID
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := parseAppointmentID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortMapped(c, err, appointmentErrorRules)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Book appointment
// @Description Book a grooming slot. Price and duration follow the dog size; loyal customers get a discount.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AppointmentRequest true "Booking request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), customerID)
	if err != nil {
		httperr.AbortMapped(c, err, appointmentErrorRules)
		return
	}
	c.Header("Location", "/api/appointments/"+strconv.FormatInt(result.AppointmentID, 10))
	view, err := h.q.GetByID(c.Request.Context(), result.AppointmentID)
	if err != nil {
		// the booking is committed; the client can follow Location
		slog.Warn("failed to read back created appointment",
			"appointment_id", result.AppointmentID, "error", err, "request_id", middleware.GetRequestID(c))
		c.Status(http.StatusCreated)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Reschedule appointment
// @Description Change the time and dog size of an own appointment. Price is re-evaluated.
// @Tags appointments
// @Accept json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param request body reqdto.AppointmentRequest true "Booking request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/appointments/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := parseAppointmentID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.AppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err = h.cmds.Update(c.Request.Context(), id, req.ToCommand(), customerID); err != nil {
		httperr.AbortMapped(c, err, appointmentErrorRules)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel appointment
// @Description Cancel an own appointment. Appointments scheduled for today are locked.
// @Tags appointments
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := parseAppointmentID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	if err = h.cmds.Delete(c.Request.Context(), id, customerID); err != nil {
		httperr.AbortMapped(c, err, appointmentErrorRules)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseAppointmentID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
