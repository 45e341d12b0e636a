package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alesthetic/booking-api/internal/core/ports"
)

type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List handles GET /api/employee.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Success      200  {object}  APIResponse
// @Router       /employee [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", employees)
}

// Get handles GET /api/employee/:id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "employee id"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /employee/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	employee, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", employee)
}

// Create handles POST /api/employee.
//
// @Summary      Register an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      201   {object}  APIResponse
// @Failure      400   {object}  APIResponse
// @Router       /employee [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	employee, err := h.service.Create(c.Request().Context(), ports.EmployeeInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Employee created successfully", employee)
}

// Update handles PUT /api/employee?id=N.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    query     int              true  "employee id"
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      200   {object}  APIResponse
// @Failure      404   {object}  APIResponse
// @Router       /employee [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	employee, err := h.service.Update(c.Request().Context(), id, ports.EmployeeInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", employee)
}

// Delete handles DELETE /api/employee/:id.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "employee id"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /employee/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Employee was deleted successfully", nil)
}
