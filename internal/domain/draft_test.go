package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftType_IsValid(t *testing.T) {
	assert.True(t, DraftTypeDaywise.IsValid())
	assert.True(t, DraftTypeEnhanced.IsValid())
	assert.False(t, DraftType("").IsValid())
	assert.False(t, DraftType("weekly").IsValid())
}

func TestDraftKey_ProposalID(t *testing.T) {
	key := DraftKey{QueryID: "Q123", DraftType: DraftTypeDaywise}
	assert.Equal(t, "Q123_daywise", key.ProposalID())

	key = DraftKey{QueryID: "Q123", DraftType: DraftTypeEnhanced}
	assert.Equal(t, "Q123_enhanced", key.ProposalID())
}

func TestNewDraftRecord_EmptyDefaults(t *testing.T) {
	record := NewDraftRecord("Q1", DraftTypeDaywise)

	assert.Equal(t, "Q1", record.QueryID)
	assert.Equal(t, DraftTypeDaywise, record.DraftType)
	assert.NotNil(t, record.ItineraryDays)
	assert.Empty(t, record.ItineraryDays)
	assert.NotNil(t, record.AccommodationSelections)
	assert.Empty(t, record.AccommodationSelections)
	assert.Nil(t, record.MarkupData)
	assert.NotNil(t, record.TermsConditions.Inclusions)
	assert.NotNil(t, record.TermsConditions.Exclusions)
	assert.Equal(t, int64(0), record.Version)

	assert.Equal(t, PricingModeSeparate, record.PricingConfig.Mode)
	assert.Equal(t, float64(15), record.PricingConfig.AdultMarkup)
	assert.Equal(t, float64(10), record.PricingConfig.ChildMarkup)
	assert.Equal(t, float64(25), record.PricingConfig.ChildDiscountPercent)
}

func TestDraftRecord_Clone_Independent(t *testing.T) {
	record := NewDraftRecord("Q1", DraftTypeDaywise)
	record.ItineraryDays = []ItineraryDay{{
		DayIndex:   1,
		City:       "Rome",
		Activities: []Activity{{Name: "Colosseum"}},
	}}
	record.AccommodationSelections = []AccommodationSelection{{
		HotelName: "Hotel Roma", NumberOfRooms: 1, NumberOfNights: 2, PricePerNight: 100, TotalPrice: 200,
	}}
	record.MarkupData = &MarkupData{Type: MarkupTypePercentage, Value: 10}
	record.TermsConditions.Inclusions = []string{"breakfast"}

	clone := record.Clone()
	clone.ItineraryDays[0].City = "Milan"
	clone.ItineraryDays[0].Activities[0].Name = "Duomo"
	clone.AccommodationSelections[0].HotelName = "Hotel Milano"
	clone.MarkupData.Value = 99
	clone.TermsConditions.Inclusions[0] = "dinner"

	assert.Equal(t, "Rome", record.ItineraryDays[0].City)
	assert.Equal(t, "Colosseum", record.ItineraryDays[0].Activities[0].Name)
	assert.Equal(t, "Hotel Roma", record.AccommodationSelections[0].HotelName)
	assert.Equal(t, float64(10), record.MarkupData.Value)
	assert.Equal(t, "breakfast", record.TermsConditions.Inclusions[0])
}

func TestDraftRecord_ContentEquals_IgnoresVersionAndLastSaved(t *testing.T) {
	a := NewDraftRecord("Q1", DraftTypeDaywise)
	b := a.Clone()
	b.Version = 42
	b.LastSaved = time.Now()

	assert.True(t, a.ContentEquals(b))

	b.EmailDraft.Subject = "Your proposal"
	assert.False(t, a.ContentEquals(b))

	assert.False(t, a.ContentEquals(nil))
}

func TestDraftPatch_IsEmpty(t *testing.T) {
	assert.True(t, DraftPatch{}.IsEmpty())

	days := []ItineraryDay{}
	assert.False(t, DraftPatch{ItineraryDays: &days}.IsEmpty())
	assert.False(t, DraftPatch{Accommodation: &AccommodationPatch{}}.IsEmpty())
}

func TestDraftPatch_ApplyTo_NilSectionsUntouched(t *testing.T) {
	record := NewDraftRecord("Q1", DraftTypeDaywise)
	record.ItineraryDays = []ItineraryDay{{DayIndex: 1, City: "Rome"}}
	record.EmailDraft.Subject = "Original subject"

	email := EmailDraft{Subject: "New subject"}
	patch := DraftPatch{Email: &email}
	patch.ApplyTo(record)

	assert.Equal(t, "New subject", record.EmailDraft.Subject)
	require.Len(t, record.ItineraryDays, 1)
	assert.Equal(t, "Rome", record.ItineraryDays[0].City)
}

func TestDraftPatch_ApplyTo_WholesaleReplace(t *testing.T) {
	record := NewDraftRecord("Q1", DraftTypeDaywise)
	record.ItineraryDays = []ItineraryDay{
		{DayIndex: 1, City: "Rome"},
		{DayIndex: 2, City: "Florence"},
	}

	days := []ItineraryDay{{DayIndex: 1, City: "Venice"}}
	patch := DraftPatch{ItineraryDays: &days}
	patch.ApplyTo(record)

	require.Len(t, record.ItineraryDays, 1)
	assert.Equal(t, "Venice", record.ItineraryDays[0].City)
}

func TestDraftPatch_ApplyTo_NilSliceBecomesEmpty(t *testing.T) {
	record := NewDraftRecord("Q1", DraftTypeDaywise)
	record.ItineraryDays = []ItineraryDay{{DayIndex: 1}}

	var days []ItineraryDay
	patch := DraftPatch{ItineraryDays: &days}
	patch.ApplyTo(record)

	assert.NotNil(t, record.ItineraryDays)
	assert.Empty(t, record.ItineraryDays)
}

func TestDraftPatch_ApplyTo_RecomputesTotals(t *testing.T) {
	record := NewDraftRecord("Q1", DraftTypeEnhanced)

	patch := DraftPatch{Accommodation: &AccommodationPatch{
		Selections: []AccommodationSelection{{
			HotelName:      "Grand Hotel",
			NumberOfRooms:  2,
			NumberOfNights: 3,
			PricePerNight:  150,
			TotalPrice:     1, // заведомо неверный входной итог
		}},
		Markup: &MarkupData{Type: MarkupTypeFixed, Value: 500, Currency: "USD"},
	}}
	patch.ApplyTo(record)

	require.Len(t, record.AccommodationSelections, 1)
	assert.Equal(t, float64(900), record.AccommodationSelections[0].TotalPrice)
	assert.True(t, record.AccommodationSelections[0].IsConsistent())
	require.NotNil(t, record.MarkupData)
	assert.Equal(t, MarkupTypeFixed, record.MarkupData.Type)
}
