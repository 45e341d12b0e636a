package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alesthetic/booking-api/internal/core/ports"
)

// ServiceHandler exposes the clinic's bookable service catalog.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// List handles GET /api/service.
//
// @Summary      List services
// @Tags         services
// @Produce      json
// @Success      200  {object}  APIResponse
// @Router       /service [get]
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", services)
}

// Get handles GET /api/service/:id.
//
// @Summary      Get a service by id
// @Tags         services
// @Produce      json
// @Param        id   path      int  true  "service id"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /service/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	svc, err := h.catalog.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", svc)
}

// Create handles POST /api/service.
//
// @Summary      Add a service to the catalog
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      201   {object}  APIResponse
// @Failure      400   {object}  APIResponse
// @Router       /service [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svc, err := h.catalog.Create(c.Request().Context(), ports.ServiceInput{
		Name:        req.ServiceName,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Service created successfully", svc)
}

// Update handles PUT /api/service?id=N.
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id    query     int             true  "service id"
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      200   {object}  APIResponse
// @Failure      404   {object}  APIResponse
// @Router       /service [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svc, err := h.catalog.Update(c.Request().Context(), id, ports.ServiceInput{
		Name:        req.ServiceName,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", svc)
}

// Delete handles DELETE /api/service/:id.
//
// @Summary      Remove a service from the catalog
// @Tags         services
// @Produce      json
// @Param        id   path      int  true  "service id"
// @Success      200  {object}  APIResponse
// @Failure      404  {object}  APIResponse
// @Router       /service/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.catalog.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Service was deleted successfully", nil)
}
