package response

import "imperium_store/internal/domain/entities"

type CarrierResponse struct {
	Name string `json:"name"`
}

type ServiceQuoteResponse struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Price        float64         `json:"price"`
	DeliveryTime int             `json:"delivery_time"`
	Company      CarrierResponse `json:"company"`
	HasError     bool            `json:"has_error"`
}

type ShippingSelectionResponse struct {
	Service      string  `json:"service,omitempty"`
	Carrier      string  `json:"carrier"`
	Price        float64 `json:"price"`
	DeliveryDays int     `json:"delivery_days"`
	Fallback     bool    `json:"fallback"`
}

// ShippingQuoteResponse always carries a usable selection: when the CEP cannot
// be quoted, quotes is empty and selected holds the flat fallback.
type ShippingQuoteResponse struct {
	Quotes   []ServiceQuoteResponse    `json:"quotes"`
	Selected ShippingSelectionResponse `json:"selected"`
}

func FromServiceQuote(q entities.ServiceQuote) ServiceQuoteResponse {
	return ServiceQuoteResponse{
		ID:           q.ID,
		Name:         q.Name,
		Price:        q.Price,
		DeliveryTime: q.DeliveryTime,
		Company:      CarrierResponse{Name: q.Company.Name},
		HasError:     q.HasError,
	}
}

func FromShippingSelection(s entities.ShippingSelection) ShippingSelectionResponse {
	return ShippingSelectionResponse{
		Service:      s.Service,
		Carrier:      s.Carrier,
		Price:        s.Price,
		DeliveryDays: s.DeliveryDays,
		Fallback:     s.Fallback,
	}
}

func FromShippingQuotes(quotes []entities.ServiceQuote, selected entities.ShippingSelection) ShippingQuoteResponse {
	out := ShippingQuoteResponse{
		Quotes:   make([]ServiceQuoteResponse, 0, len(quotes)),
		Selected: FromShippingSelection(selected),
	}
	for _, q := range quotes {
		out.Quotes = append(out.Quotes, FromServiceQuote(q))
	}
	return out
}
