package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/core/ports"
)

// DataHandler serves the machine-facing data surface under the legacy /items
// paths with the legacy Spanish field names. The caller is resolved from a
// service credential by the APIKey middleware; the handlers then run through
// the exact same service pipeline as the session surface, so policy and
// validation can never be skipped here.
type DataHandler struct {
	service ports.ItemService
}

func NewDataHandler(service ports.ItemService) *DataHandler {
	return &DataHandler{service: service}
}

// List handles GET /items.
//
// @Summary      List items (data surface)
// @Tags         data
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   dataItemResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /items [get]
func (h *DataHandler) List(c echo.Context) error {
	caller, err := CallerFrom(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	data := make([]dataItemResponse, len(items))
	for i, item := range items {
		data[i] = toDataItemResponse(item)
	}
	return c.JSON(http.StatusOK, data)
}

// Get handles GET /items/:id.
//
// @Summary      Get an item (data surface)
// @Tags         data
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  dataItemResponse
// @Failure      404  {object}  errorResponse
// @Router       /items/{id} [get]
func (h *DataHandler) Get(c echo.Context) error {
	caller, err := CallerFrom(c)
	if err != nil {
		return err
	}

	item, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDataItemResponse(item))
}

// Create handles POST /items.
//
// @Summary      Create an item (data surface)
// @Tags         data
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      dataItemRequest  true  "Item fields"
// @Success      201   {object}  dataMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /items [post]
func (h *DataHandler) Create(c echo.Context) error {
	caller, err := CallerFrom(c)
	if err != nil {
		return err
	}

	var req dataItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Create(c.Request().Context(), caller, toDataDraft(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataMessageResponse{Message: "Item creado", ID: item.ID})
}

// Update handles PUT /items/:id with a partial body.
//
// @Summary      Update an item (data surface)
// @Tags         data
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path      string           true  "Item id"
// @Param        body  body      dataItemRequest  true  "Fields to change"
// @Success      200   {object}  dataMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /items/{id} [put]
func (h *DataHandler) Update(c echo.Context) error {
	caller, err := CallerFrom(c)
	if err != nil {
		return err
	}

	var req dataItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), toDataDraft(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataMessageResponse{Message: "Item actualizado", ID: item.ID})
}

// Delete handles DELETE /items/:id.
//
// @Summary      Delete an item (data surface)
// @Tags         data
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id  path  string  true  "Item id"
// @Success      200  {object}  dataMessageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /items/{id} [delete]
func (h *DataHandler) Delete(c echo.Context) error {
	caller, err := CallerFrom(c)
	if err != nil {
		return err
	}

	item, err := h.service.Delete(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataMessageResponse{Message: "Item eliminado", ID: item.ID})
}
