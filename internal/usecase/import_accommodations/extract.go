package import_accommodations

import (
	"github.com/m04kA/SMC-ProposalService/internal/domain"
)

// legacyItinerary свободная форма сохраненного legacy-маршрута.
// Список дней встречается под двумя именами полей в зависимости от релиза.
type legacyItinerary struct {
	Days          []legacyDay `json:"days"`
	ItineraryDays []legacyDay `json:"itineraryDays"`
}

// dayList возвращает непустой список дней, под каким бы именем он ни лежал
func (l *legacyItinerary) dayList() []legacyDay {
	if len(l.Days) > 0 {
		return l.Days
	}
	return l.ItineraryDays
}

// legacyDay день legacy-маршрута с вложенными записями размещений.
// Старые релизы писали отель и как список, и как одиночный объект.
type legacyDay struct {
	DayIndex       int           `json:"dayIndex"`
	City           string        `json:"city"`
	Date           string        `json:"date"`
	Accommodations []legacyHotel `json:"accommodations"`
	Hotels         []legacyHotel `json:"hotels"`
	Hotel          *legacyHotel  `json:"hotel"`
}

// legacyHotel слабо типизированная запись размещения.
// Поля именовались по-разному между релизами, поэтому у числовых
// характеристик есть альтернативные имена с приоритетом у новых.
type legacyHotel struct {
	HotelID        string  `json:"hotelId"`
	HotelName      string  `json:"hotelName"`
	Name           string  `json:"name"`
	RoomType       string  `json:"roomType"`
	Rooms          int     `json:"rooms"`
	NumberOfRooms  int     `json:"numberOfRooms"`
	Nights         int     `json:"nights"`
	NumberOfNights int     `json:"numberOfNights"`
	PricePerNight  float64 `json:"pricePerNight"`
	Price          float64 `json:"price"`
}

// hotelEntries собирает все вложенные записи размещений одного дня
func (d *legacyDay) hotelEntries() []legacyHotel {
	entries := make([]legacyHotel, 0, len(d.Accommodations)+len(d.Hotels)+1)
	entries = append(entries, d.Accommodations...)
	entries = append(entries, d.Hotels...)
	if d.Hotel != nil {
		entries = append(entries, *d.Hotel)
	}
	return entries
}

// extractSelections сканирует дни legacy-маршрута и маппит вложенные
// записи размещений в каноническую форму выборки. Записи без имени отеля
// пропускаются; количества по умолчанию равны единице; итог пересчитывается.
func extractSelections(days []legacyDay) []domain.AccommodationSelection {
	selections := make([]domain.AccommodationSelection, 0)

	for i := range days {
		for _, entry := range days[i].hotelEntries() {
			name := entry.HotelName
			if name == "" {
				name = entry.Name
			}
			if name == "" {
				continue
			}

			rooms := entry.NumberOfRooms
			if rooms == 0 {
				rooms = entry.Rooms
			}
			if rooms == 0 {
				rooms = 1
			}

			nights := entry.NumberOfNights
			if nights == 0 {
				nights = entry.Nights
			}
			if nights == 0 {
				nights = 1
			}

			price := entry.PricePerNight
			if price == 0 {
				price = entry.Price
			}

			selection := domain.AccommodationSelection{
				HotelID:        entry.HotelID,
				HotelName:      name,
				RoomType:       entry.RoomType,
				NumberOfRooms:  rooms,
				NumberOfNights: nights,
				PricePerNight:  price,
			}
			selection.RecomputeTotal()
			selections = append(selections, selection)
		}
	}

	return selections
}
