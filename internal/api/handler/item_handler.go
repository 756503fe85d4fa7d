package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/invenco/inventory-system/internal/core/ports"
)

// ItemHandler serves the session surface: authenticated, per-user callers.
// All policy and validation decisions happen in the service pipeline; the
// handler only resolves the caller and shapes the payloads.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// List handles GET /v1/items.
//
// @Summary      List items visible to the caller
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listItemsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	caller, err := CallerFrom(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(items))
}

// Get handles GET /v1/items/:id.
//
// @Summary      Get a single item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  itemResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	caller, err := CallerFrom(c)
	if err != nil {
		return err
	}

	item, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// Create handles POST /v1/items. The caller always becomes the owner; any
// supplied owner_id is ignored on this surface.
//
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      itemDraftRequest  true  "Item fields"
// @Success      201   {object}  itemResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	caller, err := CallerFrom(c)
	if err != nil {
		return err
	}

	var req itemDraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Create(c.Request().Context(), caller, toDraft(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toItemResponse(item))
}

// Update handles PUT /v1/items/:id with a partial body.
//
// @Summary      Update an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Item id"
// @Param        body  body      itemDraftRequest  true  "Fields to change"
// @Success      200   {object}  itemResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	caller, err := CallerFrom(c)
	if err != nil {
		return err
	}

	var req itemDraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), toDraft(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// Delete handles DELETE /v1/items/:id.
//
// @Summary      Delete an item
// @Tags         items
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	caller, err := CallerFrom(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
