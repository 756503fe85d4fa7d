package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/invenco/inventory-system/internal/api"
	"github.com/invenco/inventory-system/internal/api/handler"
	"github.com/invenco/inventory-system/internal/api/middleware"
	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/service"
	"github.com/invenco/inventory-system/internal/core/validation"
)

// In-memory repositories so the surface test runs the real pipeline end to
// end: middleware, handler, service, validation, storage.

type memItemRepo struct {
	items  map[string]*domain.Item
	nextID int
}

func (r *memItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	r.nextID++
	clone := *item
	clone.ID = "item-" + strconv.Itoa(r.nextID)
	r.items[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memItemRepo) Get(_ context.Context, id string) (*domain.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *memItemRepo) ListAll(_ context.Context) ([]*domain.Item, error) {
	out := make([]*domain.Item, 0, len(r.items))
	for _, item := range r.items {
		clone := *item
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memItemRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Item, error) {
	out := make([]*domain.Item, 0)
	for _, item := range r.items {
		if item.OwnerID == ownerID {
			clone := *item
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memItemRepo) Update(_ context.Context, id string, patch *validation.ItemPatch) (*domain.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.EstimatedPrice != nil {
		item.EstimatedPrice = *patch.EstimatedPrice
	}
	if patch.OwnerID != nil {
		item.OwnerID = *patch.OwnerID
	}
	item.UpdatedAt = time.Now().UTC()
	clone := *item
	return &clone, nil
}

func (r *memItemRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

type memUserRepo struct {
	users []*domain.User
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	clone := *u
	r.users = append(r.users, &clone)
	return &clone, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByAPIKey(_ context.Context, apiKey string) (*domain.User, error) {
	for _, u := range r.users {
		if u.APIKey != "" && u.APIKey == apiKey {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id string, hash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = hash
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

// newDataSurface wires the /items group the way the router does, backed by
// in-memory storage seeded with two service users and one item.
func newDataSurface(t *testing.T) (*echo.Echo, *memItemRepo) {
	t.Helper()

	items := &memItemRepo{items: make(map[string]*domain.Item)}
	users := &memUserRepo{}
	_, _ = users.Create(context.Background(), &domain.User{
		ID: "u-owner", Username: "owner-svc", Role: domain.RoleOwner, APIKey: "owner-key",
	})
	_, _ = users.Create(context.Background(), &domain.User{
		ID: "u-admin", Username: "admin-svc", Role: domain.RoleAdmin, APIKey: "admin-key",
	})

	svc := service.NewItemService(items, users, nil, zerolog.Nop())

	e := echo.New()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewDataHandler(svc)
	data := e.Group("/items", middleware.APIKey(users))
	data.GET("", h.List)
	data.POST("", h.Create)
	data.GET("/:id", h.Get)
	data.PUT("/:id", h.Update)
	data.DELETE("/:id", h.Delete)

	return e, items
}

func doJSON(e *echo.Echo, method, path, apiKey, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if apiKey != "" {
		req.Header.Set(middleware.HeaderAPIKey, apiKey)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const drillJSON = `{"nombre":"Taladro","categoria":"Herramientas","cantidad":3,"precio_estimado":49.99,"ubicacion":"EstanteA","fecha_adquisicion":"2024-01-10"}`

func TestDataSurface_CreateAndGet(t *testing.T) {
	e, items := newDataSurface(t)

	rec := doJSON(e, http.MethodPost, "/items", "owner-key", drillJSON)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Message != "Item creado" || created.ID == "" {
		t.Errorf("unexpected response: %+v", created)
	}
	if items.items[created.ID].OwnerID != "u-owner" {
		t.Errorf("owner = %q, want u-owner", items.items[created.ID].OwnerID)
	}

	rec = doJSON(e, http.MethodGet, "/items/"+created.ID, "owner-key", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status = %d", rec.Code)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["nombre"] != "Taladro" || got["ubicacion"] != "EstanteA" {
		t.Errorf("unexpected item payload: %v", got)
	}
	if got["fecha_adquisicion"] != "2024-01-10" {
		t.Errorf("fecha_adquisicion = %v, want 2024-01-10", got["fecha_adquisicion"])
	}
}

func TestDataSurface_MissingAPIKeyIsDenied(t *testing.T) {
	e, items := newDataSurface(t)

	rec := doJSON(e, http.MethodPost, "/items", "", drillJSON)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403; body = %s", rec.Code, rec.Body.String())
	}
	if len(items.items) != 0 {
		t.Error("unauthenticated create must not write")
	}
}

func TestDataSurface_UnknownAPIKeyRejected(t *testing.T) {
	e, _ := newDataSurface(t)

	rec := doJSON(e, http.MethodGet, "/items", "bogus-key", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestDataSurface_NegativeQuantityPatchRejected(t *testing.T) {
	e, items := newDataSurface(t)

	rec := doJSON(e, http.MethodPost, "/items", "owner-key", drillJSON)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d", rec.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	rec = doJSON(e, http.MethodPut, "/items/"+created.ID, "owner-key", `{"cantidad":-5}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Field != "quantity" {
		t.Errorf("field = %q, want quantity", resp.Field)
	}
	if items.items[created.ID].Quantity != 3 {
		t.Error("rejected patch must not change storage")
	}
}

func TestDataSurface_OwnerCannotTouchForeignItem(t *testing.T) {
	e, items := newDataSurface(t)

	// seed an item owned by someone else
	_, _ = items.Create(context.Background(), &domain.Item{
		Name: "Sierra", Category: "Herramientas", Quantity: 1,
		EstimatedPrice: 20, OwnerID: "u-other",
	})

	rec := doJSON(e, http.MethodPut, "/items/item-1", "owner-key", `{"cantidad":99}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("update: status = %d, want 403", rec.Code)
	}

	rec = doJSON(e, http.MethodDelete, "/items/item-1", "owner-key", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("delete: status = %d, want 403", rec.Code)
	}
	if _, ok := items.items["item-1"]; !ok {
		t.Error("denied delete removed the item")
	}
	if items.items["item-1"].Quantity != 1 {
		t.Error("denied update changed the item")
	}
}

func TestDataSurface_AdminUpdatesAndDeletesAnyItem(t *testing.T) {
	e, items := newDataSurface(t)

	_, _ = items.Create(context.Background(), &domain.Item{
		Name: "Sierra", Category: "Herramientas", Quantity: 1,
		EstimatedPrice: 20, OwnerID: "u-other",
	})

	rec := doJSON(e, http.MethodPut, "/items/item-1", "admin-key", `{"cantidad":7}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status = %d; body = %s", rec.Code, rec.Body.String())
	}
	if items.items["item-1"].Quantity != 7 {
		t.Error("admin update not applied")
	}

	rec = doJSON(e, http.MethodDelete, "/items/item-1", "admin-key", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", rec.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Message != "Item eliminado" {
		t.Errorf("message = %q, want Item eliminado", resp.Message)
	}
	if len(items.items) != 0 {
		t.Error("item not removed")
	}
}

func TestDataSurface_ListIsScopedToOwner(t *testing.T) {
	e, items := newDataSurface(t)

	_, _ = items.Create(context.Background(), &domain.Item{Name: "Mia", OwnerID: "u-owner", Quantity: 1, EstimatedPrice: 1})
	_, _ = items.Create(context.Background(), &domain.Item{Name: "Ajena", OwnerID: "u-other", Quantity: 1, EstimatedPrice: 1})

	rec := doJSON(e, http.MethodGet, "/items", "owner-key", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var list []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0]["nombre"] != "Mia" {
		t.Errorf("owner list leaked foreign items: %v", list)
	}

	rec = doJSON(e, http.MethodGet, "/items", "admin-key", "")
	var all []map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &all)
	if len(all) != 2 {
		t.Errorf("admin list = %d items, want 2", len(all))
	}
}
