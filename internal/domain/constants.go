package domain

// Default pricing configuration values
const (
	DefaultAdultMarkup          = 15
	DefaultChildMarkup          = 10
	DefaultChildDiscountPercent = 25
)

// Business validation constants
const (
	MaxItineraryDays   = 90
	MaxRoomsPerOption  = 50
	MaxNightsPerOption = 90
	MaxNotesLength     = 2000
)

// Cache key prefixes
//
// CacheKeyPrefix is the current format, written under both the composite
// (queryId + draftType) key and the queryId-only key. The legacy prefixes
// are read-only fallbacks for records persisted by older releases.
const (
	CacheKeyPrefix       = "proposal_draft"
	LegacyCacheKeyPrefix = "draft"
)

// LegacyItineraryKeyPatterns lists the key templates older releases used
// for persisted day-wise itineraries. The accommodation import scans them
// in this fixed order.
var LegacyItineraryKeyPatterns = []string{
	"itinerary_%s",
	"daywise_itinerary_%s",
	"proposal_itinerary_%s",
	"itinerary_days_%s",
}
