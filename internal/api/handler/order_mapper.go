package handler

import "github.com/pizzahub/ordering-system/internal/core/ports"

func toOrderLines(items []orderLineRequest) []ports.OrderLineInput {
	lines := make([]ports.OrderLineInput, 0, len(items))
	for _, it := range items {
		lines = append(lines, ports.OrderLineInput{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	return lines
}

func toOrderResponse(v ports.OrderView) orderResponse {
	items := make([]orderItemResponse, 0, len(v.Items))
	for _, line := range v.Items {
		items = append(items, orderItemResponse{
			PizzaID:   line.ItemID,
			PizzaName: line.ItemName,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice,
		})
	}

	return orderResponse{
		ID:           v.ID,
		Total:        v.Total,
		Status:       v.Status,
		Address:      v.Address,
		Phone:        v.Phone,
		Comment:      v.Comment,
		DeliveryTime: v.DeliveryTime,
		CreatedAt:    v.CreatedAt,
		Items:        items,
	}
}
