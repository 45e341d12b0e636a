package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alesthetic/booking-api/internal/api/metrics"
	"github.com/alesthetic/booking-api/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for the booking workflow.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// List handles GET /api/appointment.
//
// @Summary      List appointments (paginated)
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        pageNumber  query     int  false  "1-based page number"  default(1)
// @Param        pageSize    query     int  false  "page size"            default(10)
// @Success      200         {object}  APIResponse
// @Failure      400         {object}  APIResponse
// @Failure      404         {object}  APIResponse
// @Router       /appointment [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	page, err := queryInt(c, "pageNumber", 1)
	if err != nil {
		return err
	}
	size, err := queryInt(c, "pageSize", 10)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", result.Items)
}

// Get handles GET /api/appointment/:id.
//
// @Summary      Get an appointment by id
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "appointment id"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /appointment/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	appt, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", appt)
}

// Create handles POST /api/appointment.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      appointmentRequest  true  "Appointment details"
// @Success      201   {object}  APIResponse
// @Failure      400   {object}  APIResponse
// @Router       /appointment [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	appt, err := h.service.Create(c.Request().Context(), ports.AppointmentInput{
		CustomerID:  req.CustomerID,
		EmployeeID:  req.EmployeeID,
		ServiceID:   req.ServiceID,
		ScheduledAt: req.AppointmentDateTime,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsCreatedTotal.Inc()
	return respond(c, http.StatusCreated, "Appointment created successfully", appt)
}

// Update handles PUT /api/appointment?id=N.
//
// @Summary      Update an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    query     int                 true  "appointment id"
// @Param        body  body      appointmentRequest  true  "Appointment details"
// @Success      200   {object}  APIResponse
// @Failure      404   {object}  APIResponse
// @Router       /appointment [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	appt, err := h.service.Update(c.Request().Context(), id, ports.AppointmentInput{
		CustomerID:  req.CustomerID,
		EmployeeID:  req.EmployeeID,
		ServiceID:   req.ServiceID,
		ScheduledAt: req.AppointmentDateTime,
		Status:      req.Status,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", appt)
}

// Delete handles DELETE /api/appointment/:id.
//
// @Summary      Cancel an appointment
// @Tags         appointments
// @Produce      json
// @Param        id   path      int  true  "appointment id"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /appointment/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Appointment was deleted successfully", nil)
}
