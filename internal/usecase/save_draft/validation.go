package save_draft

import (
	"fmt"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/service/drafts/models"
)

// validateRequest валидирует частичное обновление черновика
func validateRequest(req *models.SaveDraftRequest) error {
	if req.QueryID == "" {
		return fmt.Errorf("%w: queryId is required", ErrInvalidInput)
	}
	if !req.DraftType.IsValid() {
		return fmt.Errorf("%w: unknown draft type %q", ErrInvalidInput, req.DraftType)
	}

	if req.ItineraryDays != nil && len(*req.ItineraryDays) > domain.MaxItineraryDays {
		return fmt.Errorf("%w: itinerary exceeds %d days", ErrInvalidInput, domain.MaxItineraryDays)
	}

	if req.Accommodation != nil {
		for i, selection := range req.Accommodation.Selections {
			if selection.NumberOfRooms < 0 || selection.NumberOfRooms > domain.MaxRoomsPerOption {
				return fmt.Errorf("%w: selection %d: numberOfRooms must be between 0 and %d",
					ErrInvalidInput, i, domain.MaxRoomsPerOption)
			}
			if selection.NumberOfNights < 0 || selection.NumberOfNights > domain.MaxNightsPerOption {
				return fmt.Errorf("%w: selection %d: numberOfNights must be between 0 and %d",
					ErrInvalidInput, i, domain.MaxNightsPerOption)
			}
			if selection.PricePerNight < 0 {
				return fmt.Errorf("%w: selection %d: pricePerNight must not be negative", ErrInvalidInput, i)
			}
		}
		if markup := req.Accommodation.Markup; markup != nil {
			if !markup.Type.IsValid() {
				return fmt.Errorf("%w: unknown markup type %q", ErrInvalidInput, markup.Type)
			}
			if markup.Value < 0 {
				return fmt.Errorf("%w: markup value must not be negative", ErrInvalidInput)
			}
		}
	}

	if req.Pricing != nil && !req.Pricing.Mode.IsValid() {
		return fmt.Errorf("%w: unknown pricing mode %q", ErrInvalidInput, req.Pricing.Mode)
	}

	if req.Terms != nil && len(req.Terms.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
