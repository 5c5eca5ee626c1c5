package get_draft

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ProposalService/internal/domain"
	"github.com/m04kA/SMC-ProposalService/internal/usecase/load_draft"
)

type fakeUseCase struct {
	resp *load_draft.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ string, _ domain.DraftType) (*load_draft.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, queryID, draftType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/queries/"+queryID+"/drafts/"+draftType, nil)
	req = mux.SetURLVars(req, map[string]string{
		"queryId":   queryID,
		"draftType": draftType,
	})

	recorder := httptest.NewRecorder()
	h.Handle(recorder, req)
	return recorder
}

func TestHandle_Success(t *testing.T) {
	record := domain.NewDraftRecord("Q123", domain.DraftTypeDaywise)
	record.Version = 3
	uc := &fakeUseCase{resp: &load_draft.Response{
		Record: record,
		Source: "cache",
	}}
	handler := NewHandler(uc, nopLogger{})

	recorder := doRequest(t, handler, "Q123", "daywise")

	require.Equal(t, http.StatusOK, recorder.Code)

	var body GetDraftResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Q123", body.QueryID)
	assert.Equal(t, int64(3), body.Version)
	assert.Equal(t, "cache", body.Source)
}

func TestHandle_InvalidDraftType(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	recorder := doRequest(t, handler, "Q123", "weekly")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandle_UseCaseFailure(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("all tiers down")}
	handler := NewHandler(uc, nopLogger{})

	recorder := doRequest(t, handler, "Q123", "daywise")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
