package handler

// errorResponse documents the standard error envelope in swagger annotations.
// The actual rendering happens in the central HTTP error handler.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// --- Session surface (authenticated, /v1) ---

// itemDraftRequest is shared by create and update: pointer fields distinguish
// "absent" from "zero", which is what makes partial patches work. The
// owner_id field is ignored on this surface: the caller is always the owner.
type itemDraftRequest struct {
	Name            *string  `json:"name"`
	Category        *string  `json:"category"`
	Quantity        *int     `json:"quantity"`
	EstimatedPrice  *float64 `json:"estimated_price"`
	Location        *string  `json:"location"`
	AcquisitionDate *string  `json:"acquisition_date"`
}

type itemResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Quantity        int     `json:"quantity"`
	EstimatedPrice  float64 `json:"estimated_price"`
	Location        string  `json:"location"`
	AcquisitionDate string  `json:"acquisition_date"`
	OwnerID         string  `json:"owner_id"`
}

type listItemsResponse struct {
	Data  []itemResponse `json:"data"`
	Total int            `json:"total"`
}

// --- Data surface (service credential, /items) ---

// dataItemRequest uses the legacy Spanish wire names. Unlike the session
// surface it may carry owner_id; reassignment is admin-gated downstream.
type dataItemRequest struct {
	Nombre           *string  `json:"nombre"`
	Categoria        *string  `json:"categoria"`
	Cantidad         *int     `json:"cantidad"`
	PrecioEstimado   *float64 `json:"precio_estimado"`
	Ubicacion        *string  `json:"ubicacion"`
	FechaAdquisicion *string  `json:"fecha_adquisicion"`
	OwnerID          *string  `json:"owner_id"`
}

type dataItemResponse struct {
	ID               string  `json:"id"`
	Nombre           string  `json:"nombre"`
	Categoria        string  `json:"categoria"`
	PrecioEstimado   float64 `json:"precio_estimado"`
	Ubicacion        string  `json:"ubicacion"`
	FechaAdquisicion string  `json:"fecha_adquisicion"`
	OwnerID          string  `json:"owner_id"`
}

// dataMessageResponse confirms a data-surface mutation.
type dataMessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
