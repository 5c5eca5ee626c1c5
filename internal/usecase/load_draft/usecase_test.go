package load_draft

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/service/drafts/models"
	importUC "github.com/m04kA/SMC-ProposalService/internal/usecase/import_accommodations"
)

type fakeDraftService struct {
	result *models.LoadResult
	err    error
}

func (s *fakeDraftService) Load(_ context.Context, _ string, _ domain.DraftType) (*models.LoadResult, error) {
	return s.result, s.err
}

type fakeImporter struct {
	called bool
	result *importUC.Result
	err    error
}

func (i *fakeImporter) Execute(_ context.Context, _ string, _ domain.DraftType) (*importUC.Result, error) {
	i.called = true
	return i.result, i.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_CachedRecordReturnedVerbatim(t *testing.T) {
	// Запись с маршрутом, но без размещений: импорт при загрузке
	// все равно не запускается, потому что уровень кэша был непустым
	record := domain.NewDraftRecord("Q123", domain.DraftTypeEnhanced)
	record.Version = 3
	record.ItineraryDays = []domain.ItineraryDay{{DayIndex: 1, City: "Rome"}}
	record.EmailDraft.Subject = "offline edit"

	drafts := &fakeDraftService{result: &models.LoadResult{Record: record, Source: models.SourceCache}}
	importer := &fakeImporter{}
	uc := NewUseCase(drafts, importer, nopLogger{})

	resp, err := uc.Execute(context.Background(), "Q123", domain.DraftTypeEnhanced)
	require.NoError(t, err)

	assert.Equal(t, models.SourceCache, resp.Source)
	assert.Equal(t, int64(3), resp.Record.Version)
	require.Len(t, resp.Record.ItineraryDays, 1)
	assert.Empty(t, resp.Record.AccommodationSelections)
	assert.Equal(t, "offline edit", resp.Record.EmailDraft.Subject)
	assert.Zero(t, resp.Imported)

	// Запись нашлась в кэше, импорт не запускается
	assert.False(t, importer.called)
}

func TestExecute_RemoteRecordSkipsImport(t *testing.T) {
	record := domain.NewDraftRecord("Q1", domain.DraftTypeDaywise)
	record.Version = 7

	drafts := &fakeDraftService{result: &models.LoadResult{Record: record, Source: models.SourceRemote}}
	importer := &fakeImporter{}
	uc := NewUseCase(drafts, importer, nopLogger{})

	resp, err := uc.Execute(context.Background(), "Q1", domain.DraftTypeDaywise)
	require.NoError(t, err)

	assert.Equal(t, models.SourceRemote, resp.Source)
	assert.False(t, importer.called)
}

func TestExecute_DefaultSourceTriggersImport(t *testing.T) {
	empty := domain.NewDraftRecord("Q1", domain.DraftTypeDaywise)
	imported := domain.NewDraftRecord("Q1", domain.DraftTypeDaywise)
	imported.AccommodationSelections = []domain.AccommodationSelection{
		{HotelName: "Recovered", NumberOfRooms: 1, NumberOfNights: 2, PricePerNight: 100, TotalPrice: 200},
	}
	imported.Version = 1

	drafts := &fakeDraftService{result: &models.LoadResult{Record: empty, Source: models.SourceDefault}}
	importer := &fakeImporter{result: &importUC.Result{
		MatchedKey: "itinerary_Q1",
		Imported:   1,
		Record:     imported,
	}}
	uc := NewUseCase(drafts, importer, nopLogger{})

	resp, err := uc.Execute(context.Background(), "Q1", domain.DraftTypeDaywise)
	require.NoError(t, err)

	assert.True(t, importer.called)
	assert.Equal(t, 1, resp.Imported)
	require.True(t, resp.Record.HasAccommodations())
	assert.Equal(t, "Recovered", resp.Record.AccommodationSelections[0].HotelName)
}

func TestExecute_ImportNoopKeepsDefaults(t *testing.T) {
	empty := domain.NewDraftRecord("Q1", domain.DraftTypeDaywise)

	drafts := &fakeDraftService{result: &models.LoadResult{Record: empty, Source: models.SourceDefault}}
	importer := &fakeImporter{result: &importUC.Result{}}
	uc := NewUseCase(drafts, importer, nopLogger{})

	resp, err := uc.Execute(context.Background(), "Q1", domain.DraftTypeDaywise)
	require.NoError(t, err)

	assert.True(t, importer.called)
	assert.Zero(t, resp.Imported)
	assert.False(t, resp.Record.HasAccommodations())
	assert.Equal(t, models.SourceDefault, resp.Source)
}

func TestExecute_ImportFailureIgnored(t *testing.T) {
	empty := domain.NewDraftRecord("Q1", domain.DraftTypeDaywise)

	drafts := &fakeDraftService{result: &models.LoadResult{Record: empty, Source: models.SourceDefault}}
	importer := &fakeImporter{err: errors.New("cache down")}
	uc := NewUseCase(drafts, importer, nopLogger{})

	resp, err := uc.Execute(context.Background(), "Q1", domain.DraftTypeDaywise)
	require.NoError(t, err)

	assert.Equal(t, models.SourceDefault, resp.Source)
	assert.Zero(t, resp.Imported)
}

func TestExecute_CoordinatorFailure(t *testing.T) {
	drafts := &fakeDraftService{err: errors.New("all tiers down")}
	uc := NewUseCase(drafts, &fakeImporter{}, nopLogger{})

	_, err := uc.Execute(context.Background(), "Q1", domain.DraftTypeDaywise)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeDraftService{}, &fakeImporter{}, nopLogger{})

	_, err := uc.Execute(context.Background(), "", domain.DraftTypeDaywise)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), "Q1", domain.DraftType("monthly"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
