package entities

// Region is the pricing region derived from the numeric value of a CEP.
//
// Domain notes:
//   - Bands are contiguous million-unit ranges (1,000,000-1,999,999 => SP and so on).
//   - Every CEP outside a named band maps to RegionOther, including values below
//     1,000,000. Some real Sao Paulo metro CEPs fall below that cutover (07080-000),
//     and they intentionally resolve to RegionOther; downstream pricing depends on
//     this banding.

type Region string

const (
	RegionSP    Region = "SP"
	RegionRJ    Region = "RJ"
	RegionMG    Region = "MG"
	RegionBA    Region = "BA"
	RegionPE    Region = "PE"
	RegionCE    Region = "CE"
	RegionDF    Region = "DF"
	RegionPR    Region = "PR"
	RegionRS    Region = "RS"
	RegionOther Region = "OTHER"
)

// RegionByCEP maps the numeric value of a sanitized 8-digit CEP to its region.
func RegionByCEP(cep int) Region {
	switch {
	case cep >= 1_000_000 && cep <= 1_999_999:
		return RegionSP
	case cep >= 2_000_000 && cep <= 2_999_999:
		return RegionRJ
	case cep >= 3_000_000 && cep <= 3_999_999:
		return RegionMG
	case cep >= 4_000_000 && cep <= 4_999_999:
		return RegionBA
	case cep >= 5_000_000 && cep <= 5_999_999:
		return RegionPE
	case cep >= 6_000_000 && cep <= 6_999_999:
		return RegionCE
	case cep >= 7_000_000 && cep <= 7_999_999:
		return RegionDF
	case cep >= 8_000_000 && cep <= 8_999_999:
		return RegionPR
	case cep >= 9_000_000 && cep <= 9_999_999:
		return RegionRS
	default:
		return RegionOther
	}
}

// Carrier identifies the company behind a shipping service.
type Carrier struct {
	Name string `json:"name"`
}

// ServiceQuote is one priced shipping option for a destination.
//
// Quotes are pure computation outputs: built per request, never persisted.
// HasError exists for future real-carrier integrations; the local engine
// always produces usable quotes.
type ServiceQuote struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DeliveryTime int     `json:"delivery_time"`
	Company      Carrier `json:"company"`
	HasError     bool    `json:"has_error"`
}

// ShipmentRequest is the engine input: destination CEP plus unit quantity.
type ShipmentRequest struct {
	CEP      string `json:"cep"`
	Quantity int    `json:"quantity"`
}

// ShippingSelection is the shipping choice applied to an order total. It is
// either the cheapest valid quote or the flat fallback estimate.
type ShippingSelection struct {
	Service      string  `json:"service,omitempty"`
	Carrier      string  `json:"carrier"`
	Price        float64 `json:"price"`
	DeliveryDays int     `json:"delivery_days"`
	Fallback     bool    `json:"fallback"`
}
