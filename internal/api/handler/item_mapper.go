package handler

import (
	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/validation"
)

// --- Request → validation draft ---

func toDraft(req itemDraftRequest) validation.ItemDraft {
	return validation.ItemDraft{
		Name:            req.Name,
		Category:        req.Category,
		Quantity:        req.Quantity,
		EstimatedPrice:  req.EstimatedPrice,
		Location:        req.Location,
		AcquisitionDate: req.AcquisitionDate,
		// OwnerID deliberately unset: the session surface never accepts it.
	}
}

func toDataDraft(req dataItemRequest) validation.ItemDraft {
	return validation.ItemDraft{
		Name:            req.Nombre,
		Category:        req.Categoria,
		Quantity:        req.Cantidad,
		EstimatedPrice:  req.PrecioEstimado,
		Location:        req.Ubicacion,
		AcquisitionDate: req.FechaAdquisicion,
		OwnerID:         req.OwnerID,
	}
}

// --- Domain → HTTP response ---

func toItemResponse(item *domain.Item) itemResponse {
	return itemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		EstimatedPrice:  item.EstimatedPrice,
		Location:        item.Location,
		AcquisitionDate: item.AcquisitionDate.Format(domain.DateFormat),
		OwnerID:         item.OwnerID,
	}
}

func toListResponse(items []*domain.Item) listItemsResponse {
	data := make([]itemResponse, len(items))
	for i, item := range items {
		data[i] = toItemResponse(item)
	}
	return listItemsResponse{Data: data, Total: len(data)}
}

func toDataItemResponse(item *domain.Item) dataItemResponse {
	return dataItemResponse{
		ID:               item.ID,
		Nombre:           item.Name,
		Categoria:        item.Category,
		PrecioEstimado:   item.EstimatedPrice,
		Ubicacion:        item.Location,
		FechaAdquisicion: item.AcquisitionDate.Format(domain.DateFormat),
		OwnerID:          item.OwnerID,
	}
}
