package domain

import (
	"fmt"
	"reflect"
	"time"
)

// DraftType distinguishes the UI workflow that owns a proposal draft
type DraftType string

const (
	// DraftTypeDaywise day-wise itinerary workflow
	DraftTypeDaywise DraftType = "daywise"
	// DraftTypeEnhanced enhanced proposal workflow
	DraftTypeEnhanced DraftType = "enhanced"
)

// IsValid returns true if the draft type is one of the known workflows
func (t DraftType) IsValid() bool {
	return t == DraftTypeDaywise || t == DraftTypeEnhanced
}

// DraftKey is the identity key of a draft record.
// No two records with the same key may coexist in a storage tier.
type DraftKey struct {
	QueryID   string
	DraftType DraftType
}

// ProposalID returns the derived identifier used to address the remote row
func (k DraftKey) ProposalID() string {
	return fmt.Sprintf("%s_%s", k.QueryID, k.DraftType)
}

// ItineraryDay represents one day entry of a proposal itinerary.
// The day list is mutated wholesale per section update.
type ItineraryDay struct {
	DayIndex       int                `json:"dayIndex"`
	City           string             `json:"city"`
	Date           string             `json:"date"`
	Activities     []Activity         `json:"activities,omitempty"`
	Accommodations []DayAccommodation `json:"accommodations,omitempty"`
	Transports     []Transport        `json:"transports,omitempty"`
}

// Activity represents a nested activity sub-entry of a day
type Activity struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

// DayAccommodation represents a nested accommodation sub-entry of a day
type DayAccommodation struct {
	HotelID       string  `json:"hotelId,omitempty"`
	HotelName     string  `json:"hotelName"`
	RoomType      string  `json:"roomType,omitempty"`
	Rooms         int     `json:"rooms,omitempty"`
	Nights        int     `json:"nights,omitempty"`
	PricePerNight float64 `json:"pricePerNight,omitempty"`
}

// Transport represents a nested transport sub-entry of a day
type Transport struct {
	Mode string `json:"mode"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// TermsConditions holds the terms section of a draft
type TermsConditions struct {
	PaymentTerms       string   `json:"paymentTerms"`
	CancellationPolicy string   `json:"cancellationPolicy"`
	Notes              string   `json:"notes"`
	Inclusions         []string `json:"inclusions"`
	Exclusions         []string `json:"exclusions"`
}

// EmailDraft holds the email section of a draft.
// Pure display data, carries no side effects of its own.
type EmailDraft struct {
	Recipient  string `json:"recipient"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	AgentName  string `json:"agentName"`
	AgentEmail string `json:"agentEmail"`
	AgentPhone string `json:"agentPhone"`
}

// DraftRecord is the versioned unit of truth for one proposal draft.
// One record exists per (queryId, draftType) pair.
type DraftRecord struct {
	QueryID                 string                   `json:"queryId"`
	DraftType               DraftType                `json:"draftType"`
	ItineraryDays           []ItineraryDay           `json:"itineraryDays"`
	AccommodationSelections []AccommodationSelection `json:"accommodationSelections"`
	MarkupData              *MarkupData              `json:"markupData"`
	TermsConditions         TermsConditions          `json:"termsConditions"`
	EmailDraft              EmailDraft               `json:"emailDraft"`
	PricingConfig           PricingConfig            `json:"pricingConfig"`
	Version                 int64                    `json:"version"`
	LastSaved               time.Time                `json:"lastSaved"`
}

// NewDraftRecord returns an empty-default record for the given key
func NewDraftRecord(queryID string, draftType DraftType) *DraftRecord {
	return &DraftRecord{
		QueryID:                 queryID,
		DraftType:               draftType,
		ItineraryDays:           []ItineraryDay{},
		AccommodationSelections: []AccommodationSelection{},
		TermsConditions: TermsConditions{
			Inclusions: []string{},
			Exclusions: []string{},
		},
		PricingConfig: DefaultPricingConfig(),
	}
}

// Key returns the identity key of the record
func (r *DraftRecord) Key() DraftKey {
	return DraftKey{QueryID: r.QueryID, DraftType: r.DraftType}
}

// IsEnhanced returns true if the record belongs to the enhanced workflow
func (r *DraftRecord) IsEnhanced() bool {
	return r.DraftType == DraftTypeEnhanced
}

// HasAccommodations returns true if the record carries at least one accommodation selection
func (r *DraftRecord) HasAccommodations() bool {
	return len(r.AccommodationSelections) > 0
}

// HasItinerary returns true if the record carries at least one itinerary day
func (r *DraftRecord) HasItinerary() bool {
	return len(r.ItineraryDays) > 0
}

// Clone returns a deep copy of the record
func (r *DraftRecord) Clone() *DraftRecord {
	clone := *r

	clone.ItineraryDays = make([]ItineraryDay, len(r.ItineraryDays))
	for i, day := range r.ItineraryDays {
		clone.ItineraryDays[i] = day
		clone.ItineraryDays[i].Activities = append([]Activity(nil), day.Activities...)
		clone.ItineraryDays[i].Accommodations = append([]DayAccommodation(nil), day.Accommodations...)
		clone.ItineraryDays[i].Transports = append([]Transport(nil), day.Transports...)
	}

	clone.AccommodationSelections = append([]AccommodationSelection{}, r.AccommodationSelections...)

	if r.MarkupData != nil {
		markup := *r.MarkupData
		clone.MarkupData = &markup
	}

	clone.TermsConditions.Inclusions = append([]string{}, r.TermsConditions.Inclusions...)
	clone.TermsConditions.Exclusions = append([]string{}, r.TermsConditions.Exclusions...)

	return &clone
}

// ContentEquals compares two records ignoring version and lastSaved.
// Used for the structural dirty check before cache writes.
func (r *DraftRecord) ContentEquals(other *DraftRecord) bool {
	if other == nil {
		return false
	}

	a := r.Clone()
	b := other.Clone()
	a.Version, b.Version = 0, 0
	a.LastSaved, b.LastSaved = time.Time{}, time.Time{}

	return reflect.DeepEqual(a, b)
}

// AccommodationPatch is the accommodation section of a partial update.
// Selections replace the stored list wholesale; markup replaces the stored markup.
type AccommodationPatch struct {
	Selections []AccommodationSelection
	Markup     *MarkupData
}

// DraftPatch is a partial update over a draft record.
// Nil sections are untouched by the merge; present sections replace wholesale.
type DraftPatch struct {
	ItineraryDays *[]ItineraryDay
	Accommodation *AccommodationPatch
	Pricing       *PricingConfig
	Email         *EmailDraft
	Terms         *TermsConditions
}

// IsEmpty returns true if the patch carries no sections
func (p DraftPatch) IsEmpty() bool {
	return p.ItineraryDays == nil &&
		p.Accommodation == nil &&
		p.Pricing == nil &&
		p.Email == nil &&
		p.Terms == nil
}

// ApplyTo merges the patch shallowly over the record.
// Accommodation totals are recomputed on every merge so the stored total
// never drifts from rooms x nights x pricePerNight.
func (p DraftPatch) ApplyTo(record *DraftRecord) {
	if p.ItineraryDays != nil {
		record.ItineraryDays = *p.ItineraryDays
		if record.ItineraryDays == nil {
			record.ItineraryDays = []ItineraryDay{}
		}
	}
	if p.Accommodation != nil {
		record.AccommodationSelections = p.Accommodation.Selections
		if record.AccommodationSelections == nil {
			record.AccommodationSelections = []AccommodationSelection{}
		}
		record.MarkupData = p.Accommodation.Markup
	}
	if p.Pricing != nil {
		record.PricingConfig = *p.Pricing
	}
	if p.Email != nil {
		record.EmailDraft = *p.Email
	}
	if p.Terms != nil {
		record.TermsConditions = *p.Terms
		if record.TermsConditions.Inclusions == nil {
			record.TermsConditions.Inclusions = []string{}
		}
		if record.TermsConditions.Exclusions == nil {
			record.TermsConditions.Exclusions = []string{}
		}
	}

	for i := range record.AccommodationSelections {
		record.AccommodationSelections[i].RecomputeTotal()
	}
}
