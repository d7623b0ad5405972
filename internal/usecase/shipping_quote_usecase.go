package usecase

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"imperium_store/internal/domain/entities"
)

var (
	// ErrInvalidCEP signals a destination CEP that does not sanitize to exactly
	// 8 digits. Callers must treat it as "no quotes available" and fall back to
	// the flat estimate, never surface it to the end user.
	ErrInvalidCEP = errors.New("invalid cep")
)

const (
	// Fixed package weight per unit, in kilograms.
	perUnitWeightKg = 0.3

	carrierCorreios            = "Correios"
	carrierTransportadoraLocal = "Transportadora Local"

	flatFallbackBase    = 15.0
	flatFallbackPerUnit = 2.0
	flatFallbackDays    = 3
)

// serviceTier is one row of the local pricing table. Price is
// (basePrice + weight*perKgRate) * multiplier[region], rounded to 2 decimals;
// delivery days are a direct lookup.
type serviceTier struct {
	id           int
	name         string
	carrier      string
	basePrice    float64
	perKgRate    float64
	multiplier   map[entities.Region]float64
	deliveryDays map[entities.Region]int
}

var serviceTiers = []serviceTier{
	{
		id:        1,
		name:      "PAC",
		carrier:   carrierCorreios,
		basePrice: 12,
		perKgRate: 3,
		multiplier: map[entities.Region]float64{
			entities.RegionSP: 1.0, entities.RegionRJ: 1.2, entities.RegionMG: 1.1,
			entities.RegionBA: 1.3, entities.RegionPE: 1.4, entities.RegionCE: 1.4,
			entities.RegionDF: 1.2, entities.RegionPR: 1.1, entities.RegionRS: 1.3,
			entities.RegionOther: 1.5,
		},
		deliveryDays: map[entities.Region]int{
			entities.RegionSP: 3, entities.RegionRJ: 4, entities.RegionMG: 4,
			entities.RegionBA: 5, entities.RegionPE: 6, entities.RegionCE: 6,
			entities.RegionDF: 4, entities.RegionPR: 4, entities.RegionRS: 5,
			entities.RegionOther: 7,
		},
	},
	{
		id:        2,
		name:      "SEDEX",
		carrier:   carrierCorreios,
		basePrice: 18,
		perKgRate: 4,
		multiplier: map[entities.Region]float64{
			entities.RegionSP: 1.0, entities.RegionRJ: 1.3, entities.RegionMG: 1.2,
			entities.RegionBA: 1.4, entities.RegionPE: 1.5, entities.RegionCE: 1.5,
			entities.RegionDF: 1.3, entities.RegionPR: 1.2, entities.RegionRS: 1.4,
			entities.RegionOther: 1.6,
		},
		deliveryDays: map[entities.Region]int{
			entities.RegionSP: 1, entities.RegionRJ: 2, entities.RegionMG: 2,
			entities.RegionBA: 3, entities.RegionPE: 3, entities.RegionCE: 3,
			entities.RegionDF: 2, entities.RegionPR: 2, entities.RegionRS: 3,
			entities.RegionOther: 4,
		},
	},
	{
		id:        3,
		name:      "Transportadora",
		carrier:   carrierTransportadoraLocal,
		basePrice: 15,
		perKgRate: 2.5,
		multiplier: map[entities.Region]float64{
			entities.RegionSP: 1.0, entities.RegionRJ: 1.1, entities.RegionMG: 1.05,
			entities.RegionBA: 1.2, entities.RegionPE: 1.3, entities.RegionCE: 1.3,
			entities.RegionDF: 1.1, entities.RegionPR: 1.05, entities.RegionRS: 1.2,
			entities.RegionOther: 1.4,
		},
		deliveryDays: map[entities.Region]int{
			entities.RegionSP: 2, entities.RegionRJ: 3, entities.RegionMG: 3,
			entities.RegionBA: 4, entities.RegionPE: 4, entities.RegionCE: 4,
			entities.RegionDF: 3, entities.RegionPR: 3, entities.RegionRS: 4,
			entities.RegionOther: 5,
		},
	},
}

// IShippingQuoteUseCase exposes the local shipping quote engine.
//
// The engine is pure and deterministic: no I/O, no clock, no randomness, so
// the methods take no context and are safe for concurrent use.

type IShippingQuoteUseCase interface {
	ComputeQuotes(cep string, quantity int) ([]entities.ServiceQuote, error)
	SelectBest(quotes []entities.ServiceQuote) (entities.ServiceQuote, bool)
	FlatFallbackSelection(totalQuantity int) entities.ShippingSelection
	EstimateShipping(cep string, quantity int) (entities.ShippingSelection, []entities.ServiceQuote)
}

type ShippingQuoteUseCase struct{}

var _ IShippingQuoteUseCase = (*ShippingQuoteUseCase)(nil)

func NewShippingQuoteUseCase() *ShippingQuoteUseCase {
	return &ShippingQuoteUseCase{}
}

// ComputeQuotes prices the three service tiers for a destination CEP.
//
// The CEP is sanitized by stripping every non-digit character; anything that
// does not end up with exactly 8 digits yields ErrInvalidCEP. Quantity is used
// as provided (callers coerce it to >= 1) and only feeds the derived weight.
// Output order is fixed: PAC, SEDEX, Transportadora.
func (u *ShippingQuoteUseCase) ComputeQuotes(cep string, quantity int) ([]entities.ServiceQuote, error) {
	clean := sanitizeCEP(cep)
	if len(clean) != 8 {
		return nil, ErrInvalidCEP
	}

	n, err := strconv.Atoi(clean)
	if err != nil {
		return nil, ErrInvalidCEP
	}
	region := entities.RegionByCEP(n)

	totalWeight := perUnitWeightKg * float64(quantity)

	quotes := make([]entities.ServiceQuote, 0, len(serviceTiers))
	for _, tier := range serviceTiers {
		quotes = append(quotes, entities.ServiceQuote{
			ID:           tier.id,
			Name:         tier.name,
			Price:        round2((tier.basePrice + totalWeight*tier.perKgRate) * tier.multiplier[region]),
			DeliveryTime: tier.deliveryDays[region],
			Company:      entities.Carrier{Name: tier.carrier},
			HasError:     false,
		})
	}
	return quotes, nil
}

// SelectBest returns the cheapest quote that carries no error and a defined
// price. The second return is false when no quote qualifies.
func (u *ShippingQuoteUseCase) SelectBest(quotes []entities.ServiceQuote) (entities.ServiceQuote, bool) {
	best := entities.ServiceQuote{}
	found := false
	for _, q := range quotes {
		if q.HasError || q.Price <= 0 {
			continue
		}
		if !found || q.Price < best.Price {
			best = q
			found = true
		}
	}
	return best, found
}

// FlatFallbackSelection is the single shared fallback used whenever quotes are
// unavailable: flat base plus a per-unit charge, fixed 3-day estimate.
func (u *ShippingQuoteUseCase) FlatFallbackSelection(totalQuantity int) entities.ShippingSelection {
	return entities.ShippingSelection{
		Carrier:      carrierCorreios,
		Price:        flatFallbackBase + flatFallbackPerUnit*float64(totalQuantity),
		DeliveryDays: flatFallbackDays,
		Fallback:     true,
	}
}

// EstimateShipping resolves the shipping selection for a destination: the
// cheapest valid quote when the engine can price it, the flat fallback
// otherwise. Engine failure and "no selectable quote" share this one path.
func (u *ShippingQuoteUseCase) EstimateShipping(cep string, quantity int) (entities.ShippingSelection, []entities.ServiceQuote) {
	if quantity < 1 {
		quantity = 1
	}

	quotes, err := u.ComputeQuotes(cep, quantity)
	if err != nil {
		return u.FlatFallbackSelection(quantity), nil
	}

	best, ok := u.SelectBest(quotes)
	if !ok {
		return u.FlatFallbackSelection(quantity), quotes
	}

	return entities.ShippingSelection{
		Service:      best.Name,
		Carrier:      best.Company.Name,
		Price:        best.Price,
		DeliveryDays: best.DeliveryTime,
	}, quotes
}

func sanitizeCEP(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// round2 matches the storefront rounding: half away from zero, 2 decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
