package domain

// MarkupType represents how a markup value is applied on top of a subtotal
type MarkupType string

const (
	MarkupTypePercentage MarkupType = "percentage"
	MarkupTypeFixed      MarkupType = "fixed"
)

// IsValid returns true if the markup type is known
func (t MarkupType) IsValid() bool {
	return t == MarkupTypePercentage || t == MarkupTypeFixed
}

// MarkupData is the markup configuration applied on top of the accommodation subtotal
type MarkupData struct {
	Type     MarkupType `json:"type"`
	Value    float64    `json:"value"`
	Currency string     `json:"currency"`
}

// Amount returns the markup amount for the given subtotal
func (m *MarkupData) Amount(subtotal float64) float64 {
	if m == nil {
		return 0
	}
	if m.Type == MarkupTypePercentage {
		return subtotal * m.Value / 100
	}
	return m.Value
}

// PricingMode represents how markups are applied to travellers
type PricingMode string

const (
	// PricingModeCombined single markup over the whole subtotal
	PricingModeCombined PricingMode = "combined"
	// PricingModeSeparate per-traveller markups with a child discount
	PricingModeSeparate PricingMode = "separate"
)

// IsValid returns true if the pricing mode is known
func (m PricingMode) IsValid() bool {
	return m == PricingModeCombined || m == PricingModeSeparate
}

// PricingConfig holds the traveller pricing configuration of a draft
type PricingConfig struct {
	Mode                 PricingMode `json:"mode"`
	AdultMarkup          float64     `json:"adultMarkup"`
	ChildMarkup          float64     `json:"childMarkup"`
	ChildDiscountPercent float64     `json:"childDiscountPercent"`
}

// DefaultPricingConfig returns the pricing configuration substituted when
// the remote row carries no pricing data
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		Mode:                 PricingModeSeparate,
		AdultMarkup:          DefaultAdultMarkup,
		ChildMarkup:          DefaultChildMarkup,
		ChildDiscountPercent: DefaultChildDiscountPercent,
	}
}

// Quote is a computed price breakdown for a draft
type Quote struct {
	Subtotal     float64     `json:"subtotal"`
	MarkupAmount float64     `json:"markupAmount"`
	AdultTotal   float64     `json:"adultTotal,omitempty"`
	ChildTotal   float64     `json:"childTotal,omitempty"`
	Total        float64     `json:"total"`
	Currency     string      `json:"currency,omitempty"`
	Mode         PricingMode `json:"mode"`
	Adults       int         `json:"adults"`
	Children     int         `json:"children"`
}

// ComputeQuote prices the draft for the given traveller split.
//
// The subtotal is the sum of the accommodation selection totals. In combined
// mode the record's markup data is applied once on top of the subtotal. In
// separate mode the subtotal is split per person, adults carry the adult
// markup percentage, children carry the child discount and then the child
// markup percentage.
func ComputeQuote(record *DraftRecord, adults, children int) *Quote {
	subtotal := SubtotalOf(record.AccommodationSelections)

	quote := &Quote{
		Subtotal: subtotal,
		Mode:     record.PricingConfig.Mode,
		Adults:   adults,
		Children: children,
	}
	if record.MarkupData != nil {
		quote.Currency = record.MarkupData.Currency
	}

	if record.PricingConfig.Mode == PricingModeCombined {
		quote.MarkupAmount = record.MarkupData.Amount(subtotal)
		quote.Total = subtotal + quote.MarkupAmount
		return quote
	}

	travellers := adults + children
	if travellers == 0 {
		quote.Total = subtotal
		return quote
	}

	cfg := record.PricingConfig
	perPerson := subtotal / float64(travellers)

	quote.AdultTotal = perPerson * float64(adults) * (1 + cfg.AdultMarkup/100)
	quote.ChildTotal = perPerson * float64(children) *
		(1 - cfg.ChildDiscountPercent/100) * (1 + cfg.ChildMarkup/100)
	quote.Total = quote.AdultTotal + quote.ChildTotal
	quote.MarkupAmount = quote.Total - subtotal

	return quote
}
