package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alesthetic/booking-api/internal/core/ports"
)

type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /api/customer.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {object}  APIResponse
// @Router       /customer [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", customers)
}

// Get handles GET /api/customer/:id.
//
// @Summary      Get a customer by id
// @Tags         customers
// @Produce      json
// @Param        id   path      int  true  "customer id"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /customer/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	customer, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", customer)
}

// Create handles POST /api/customer.
//
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      customerRequest  true  "Customer details"
// @Success      201   {object}  APIResponse
// @Failure      400   {object}  APIResponse
// @Router       /customer [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.service.Create(c.Request().Context(), ports.CustomerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Customer created successfully", customer)
}

// Update handles PUT /api/customer/:id.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "customer id"
// @Param        body  body      customerRequest  true  "Customer details"
// @Success      200   {object}  APIResponse
// @Failure      404   {object}  APIResponse
// @Router       /customer/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.service.Update(c.Request().Context(), id, ports.CustomerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", customer)
}

// Delete handles DELETE /api/customer/:id.
//
// @Summary      Delete a customer
// @Tags         customers
// @Produce      json
// @Param        id   path      int  true  "customer id"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /customer/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Customer was deleted successfully", nil)
}
