package import_accommodations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/service/drafts/models"
)

type fakeCacheReader struct {
	values map[string]string
}

func (c *fakeCacheReader) ReadRaw(_ context.Context, key string) (string, error) {
	value, ok := c.values[key]
	if !ok {
		return "", errors.New("fake cache: key not found")
	}
	return value, nil
}

type fakeDraftService struct {
	loadResult *models.LoadResult
	loadErr    error
	saveReqs   []*models.SaveDraftRequest
	saveErr    error
}

func (s *fakeDraftService) Load(_ context.Context, _ string, _ domain.DraftType) (*models.LoadResult, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.loadResult, nil
}

func (s *fakeDraftService) Save(_ context.Context, req *models.SaveDraftRequest) (*domain.DraftRecord, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	s.saveReqs = append(s.saveReqs, req)

	record := domain.NewDraftRecord(req.QueryID, req.DraftType)
	if req.Accommodation != nil {
		record.AccommodationSelections = req.Accommodation.Selections
	}
	record.Version = 1
	return record, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func emptyLoadResult(queryID string, draftType domain.DraftType) *models.LoadResult {
	return &models.LoadResult{
		Record: domain.NewDraftRecord(queryID, draftType),
		Source: models.SourceDefault,
	}
}

func TestExecute_RecoversFromLegacyItinerary(t *testing.T) {
	cache := &fakeCacheReader{values: map[string]string{
		"itinerary_Q124": `{
			"days": [
				{"dayIndex": 1, "city": "Rome", "hotels": [
					{"name": "Hotel Roma", "roomType": "double", "rooms": 2, "nights": 3, "pricePerNight": 120}
				]},
				{"dayIndex": 2, "city": "Florence"}
			]
		}`,
	}}
	drafts := &fakeDraftService{loadResult: emptyLoadResult("Q124", domain.DraftTypeDaywise)}
	uc := NewUseCase(cache, drafts, nopLogger{})

	result, err := uc.Execute(context.Background(), "Q124", domain.DraftTypeDaywise)
	require.NoError(t, err)

	assert.Equal(t, "itinerary_Q124", result.MatchedKey)
	assert.Equal(t, 1, result.Imported)
	assert.False(t, result.AlreadyPresent)

	require.Len(t, drafts.saveReqs, 1)
	saved := drafts.saveReqs[0]
	require.NotNil(t, saved.Accommodation)
	require.Len(t, saved.Accommodation.Selections, 1)

	selection := saved.Accommodation.Selections[0]
	assert.Equal(t, "Hotel Roma", selection.HotelName)
	assert.Equal(t, 2, selection.NumberOfRooms)
	assert.Equal(t, 3, selection.NumberOfNights)
	assert.Equal(t, float64(720), selection.TotalPrice)

	require.NotNil(t, result.Record)
	assert.True(t, result.Record.HasAccommodations())
}

func TestExecute_AlternateFieldNames(t *testing.T) {
	cache := &fakeCacheReader{values: map[string]string{
		"itinerary_Q1": `{
			"itineraryDays": [
				{"dayIndex": 1, "hotel": {"hotelName": "Solo Hotel", "numberOfRooms": 1, "numberOfNights": 2, "price": 90}}
			]
		}`,
	}}
	drafts := &fakeDraftService{loadResult: emptyLoadResult("Q1", domain.DraftTypeDaywise)}
	uc := NewUseCase(cache, drafts, nopLogger{})

	result, err := uc.Execute(context.Background(), "Q1", domain.DraftTypeDaywise)
	require.NoError(t, err)

	require.Equal(t, 1, result.Imported)
	selection := drafts.saveReqs[0].Accommodation.Selections[0]
	assert.Equal(t, "Solo Hotel", selection.HotelName)
	assert.Equal(t, float64(90), selection.PricePerNight)
	assert.Equal(t, float64(180), selection.TotalPrice)
}

func TestExecute_ItineraryPresenceDoesNotBlockImport(t *testing.T) {
	// Размещений нет ни в одном уровне, но маршрут уже заполнен:
	// наличие дней не препятствует импорту
	loaded := emptyLoadResult("Q1", domain.DraftTypeDaywise)
	loaded.Record.ItineraryDays = []domain.ItineraryDay{{DayIndex: 1, City: "Rome"}}
	loaded.Source = models.SourceCache

	cache := &fakeCacheReader{values: map[string]string{
		"itinerary_Q1": `{"days": [{"hotels": [{"name": "Hotel Roma", "rooms": 1, "nights": 2, "pricePerNight": 100}]}]}`,
	}}
	drafts := &fakeDraftService{loadResult: loaded}
	uc := NewUseCase(cache, drafts, nopLogger{})

	result, err := uc.Execute(context.Background(), "Q1", domain.DraftTypeDaywise)
	require.NoError(t, err)

	assert.False(t, result.AlreadyPresent)
	assert.Equal(t, "itinerary_Q1", result.MatchedKey)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, drafts.saveReqs, 1)
	assert.Equal(t, "Hotel Roma", drafts.saveReqs[0].Accommodation.Selections[0].HotelName)
}

func TestExecute_SkipsAlreadyPresent(t *testing.T) {
	loaded := emptyLoadResult("Q1", domain.DraftTypeDaywise)
	loaded.Record.AccommodationSelections = []domain.AccommodationSelection{
		{HotelName: "Existing", NumberOfRooms: 1, NumberOfNights: 1, PricePerNight: 100, TotalPrice: 100},
	}
	drafts := &fakeDraftService{loadResult: loaded}
	cache := &fakeCacheReader{values: map[string]string{
		"itinerary_Q1": `{"days": [{"hotels": [{"name": "Would Import"}]}]}`,
	}}
	uc := NewUseCase(cache, drafts, nopLogger{})

	result, err := uc.Execute(context.Background(), "Q1", domain.DraftTypeDaywise)
	require.NoError(t, err)

	assert.True(t, result.AlreadyPresent)
	assert.Zero(t, result.Imported)
	assert.Empty(t, drafts.saveReqs)
}

func TestExecute_UnparseableCandidateContinues(t *testing.T) {
	cache := &fakeCacheReader{values: map[string]string{
		"itinerary_Q1":         "{not json",
		"daywise_itinerary_Q1": `{"days": [{"hotels": [{"name": "Second Candidate", "pricePerNight": 50}]}]}`,
	}}
	drafts := &fakeDraftService{loadResult: emptyLoadResult("Q1", domain.DraftTypeDaywise)}
	uc := NewUseCase(cache, drafts, nopLogger{})

	result, err := uc.Execute(context.Background(), "Q1", domain.DraftTypeDaywise)
	require.NoError(t, err)

	assert.Equal(t, "daywise_itinerary_Q1", result.MatchedKey)
	assert.Equal(t, 1, result.Imported)
}

func TestExecute_NamelessEntriesSkipped(t *testing.T) {
	cache := &fakeCacheReader{values: map[string]string{
		"itinerary_Q1": `{"days": [{"hotels": [{"roomType": "double", "pricePerNight": 50}]}]}`,
	}}
	drafts := &fakeDraftService{loadResult: emptyLoadResult("Q1", domain.DraftTypeDaywise)}
	uc := NewUseCase(cache, drafts, nopLogger{})

	result, err := uc.Execute(context.Background(), "Q1", domain.DraftTypeDaywise)
	require.NoError(t, err)

	// Записи без имени отеля не дают выборок, импорт остается тихим no-op
	assert.Empty(t, result.MatchedKey)
	assert.Zero(t, result.Imported)
	assert.Empty(t, drafts.saveReqs)
}

func TestExecute_NoLegacyDataIsNoop(t *testing.T) {
	cache := &fakeCacheReader{values: map[string]string{}}
	drafts := &fakeDraftService{loadResult: emptyLoadResult("Q1", domain.DraftTypeDaywise)}
	uc := NewUseCase(cache, drafts, nopLogger{})

	result, err := uc.Execute(context.Background(), "Q1", domain.DraftTypeDaywise)
	require.NoError(t, err)

	assert.Empty(t, result.MatchedKey)
	assert.Zero(t, result.Imported)
	assert.False(t, result.AlreadyPresent)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeCacheReader{}, &fakeDraftService{}, nopLogger{})

	_, err := uc.Execute(context.Background(), "", domain.DraftTypeDaywise)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), "Q1", domain.DraftType("weekly"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SaveFailurePropagates(t *testing.T) {
	cache := &fakeCacheReader{values: map[string]string{
		"itinerary_Q1": `{"days": [{"hotels": [{"name": "Hotel", "pricePerNight": 10}]}]}`,
	}}
	drafts := &fakeDraftService{
		loadResult: emptyLoadResult("Q1", domain.DraftTypeDaywise),
		saveErr:    errors.New("storage down"),
	}
	uc := NewUseCase(cache, drafts, nopLogger{})

	_, err := uc.Execute(context.Background(), "Q1", domain.DraftTypeDaywise)
	assert.ErrorIs(t, err, ErrInternal)
}
