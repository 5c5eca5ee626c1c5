package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkupData_Amount(t *testing.T) {
	var nilMarkup *MarkupData
	assert.Equal(t, float64(0), nilMarkup.Amount(1000))

	percentage := &MarkupData{Type: MarkupTypePercentage, Value: 10}
	assert.Equal(t, float64(100), percentage.Amount(1000))

	fixed := &MarkupData{Type: MarkupTypeFixed, Value: 250}
	assert.Equal(t, float64(250), fixed.Amount(1000))
}

func TestComputeQuote_CombinedPercentage(t *testing.T) {
	record := NewDraftRecord("Q1", DraftTypeDaywise)
	record.AccommodationSelections = []AccommodationSelection{
		{NumberOfRooms: 1, NumberOfNights: 4, PricePerNight: 100},
		{NumberOfRooms: 2, NumberOfNights: 3, PricePerNight: 100},
	}
	record.MarkupData = &MarkupData{Type: MarkupTypePercentage, Value: 10, Currency: "EUR"}
	record.PricingConfig.Mode = PricingModeCombined

	quote := ComputeQuote(record, 2, 1)

	assert.Equal(t, float64(1000), quote.Subtotal)
	assert.Equal(t, float64(100), quote.MarkupAmount)
	assert.Equal(t, float64(1100), quote.Total)
	assert.Equal(t, "EUR", quote.Currency)
	assert.Equal(t, PricingModeCombined, quote.Mode)
}

func TestComputeQuote_CombinedFixed(t *testing.T) {
	record := NewDraftRecord("Q1", DraftTypeDaywise)
	record.AccommodationSelections = []AccommodationSelection{
		{NumberOfRooms: 1, NumberOfNights: 5, PricePerNight: 200},
	}
	record.MarkupData = &MarkupData{Type: MarkupTypeFixed, Value: 300}
	record.PricingConfig.Mode = PricingModeCombined

	quote := ComputeQuote(record, 2, 0)

	assert.Equal(t, float64(1000), quote.Subtotal)
	assert.Equal(t, float64(300), quote.MarkupAmount)
	assert.Equal(t, float64(1300), quote.Total)
}

func TestComputeQuote_SeparateMode(t *testing.T) {
	record := NewDraftRecord("Q1", DraftTypeEnhanced)
	record.AccommodationSelections = []AccommodationSelection{
		{NumberOfRooms: 1, NumberOfNights: 4, PricePerNight: 250},
	}
	// defaults: separate, adult 15%, child 10%, child discount 25%

	quote := ComputeQuote(record, 2, 2)

	// subtotal 1000, 250 per person
	assert.Equal(t, float64(1000), quote.Subtotal)
	assert.InDelta(t, 575, quote.AdultTotal, 0.001)  // 250 * 2 * 1.15
	assert.InDelta(t, 412.5, quote.ChildTotal, 0.001) // 250 * 2 * 0.75 * 1.10
	assert.InDelta(t, 987.5, quote.Total, 0.001)
	assert.InDelta(t, -12.5, quote.MarkupAmount, 0.001)
}

func TestComputeQuote_SeparateZeroTravellers(t *testing.T) {
	record := NewDraftRecord("Q1", DraftTypeDaywise)
	record.AccommodationSelections = []AccommodationSelection{
		{NumberOfRooms: 1, NumberOfNights: 2, PricePerNight: 100},
	}

	quote := ComputeQuote(record, 0, 0)

	assert.Equal(t, float64(200), quote.Subtotal)
	assert.Equal(t, float64(200), quote.Total)
	assert.Equal(t, float64(0), quote.AdultTotal)
	assert.Equal(t, float64(0), quote.ChildTotal)
}

func TestSubtotalOf_IgnoresStoredTotals(t *testing.T) {
	selections := []AccommodationSelection{
		{NumberOfRooms: 2, NumberOfNights: 2, PricePerNight: 50, TotalPrice: 9999},
		{NumberOfRooms: 1, NumberOfNights: 1, PricePerNight: 80},
	}
	assert.Equal(t, float64(280), SubtotalOf(selections))
}
