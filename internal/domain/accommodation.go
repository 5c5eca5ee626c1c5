package domain

// AccommodationSelection represents one selected accommodation option of a draft
type AccommodationSelection struct {
	HotelID        string  `json:"hotelId,omitempty"`
	HotelName      string  `json:"hotelName"`
	RoomType       string  `json:"roomType"`
	NumberOfRooms  int     `json:"numberOfRooms"`
	NumberOfNights int     `json:"numberOfNights"`
	PricePerNight  float64 `json:"pricePerNight"`
	TotalPrice     float64 `json:"totalPrice"`
}

// RecomputeTotal derives the total price from its three inputs.
// The total is never persisted without this recompute.
func (s *AccommodationSelection) RecomputeTotal() {
	s.TotalPrice = float64(s.NumberOfRooms) * float64(s.NumberOfNights) * s.PricePerNight
}

// IsConsistent returns true if the stored total matches its inputs
func (s *AccommodationSelection) IsConsistent() bool {
	return s.TotalPrice == float64(s.NumberOfRooms)*float64(s.NumberOfNights)*s.PricePerNight
}

// SubtotalOf sums the recomputed totals of the given selections
func SubtotalOf(selections []AccommodationSelection) float64 {
	var subtotal float64
	for i := range selections {
		subtotal += float64(selections[i].NumberOfRooms) *
			float64(selections[i].NumberOfNights) *
			selections[i].PricePerNight
	}
	return subtotal
}
