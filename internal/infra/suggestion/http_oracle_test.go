package suggestion

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"familytree/config"
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleRequest() *service.SuggestionRequest {
	return &service.SuggestionRequest{
		Target: service.SuggestionProfile{ID: "PAT-240615-001", Name: "ARJUN", Surname: "PATEL", Gender: "male", FatherName: "RAVI"},
		Pool: []service.SuggestionProfile{
			{ID: "PAT-240101-001", Name: "RAVI", Surname: "PATEL", Gender: "male", BirthYear: "1960"},
		},
	}
}

func TestHTTPOracle_Suggest(t *testing.T) {
	var got oracleRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"suggestions":[
			{"userId":"PAT-240101-001","name":"RAVI PATEL","relationship":"father","reasoning":"Matching father name and surname."},
			{"userId":"PAT-240101-009","name":"X","relationship":"uncle","reasoning":"unsupported"}
		]}`))
	}))
	defer server.Close()

	oracle := NewHTTPOracle(server.URL, "secret", time.Second, discardLogger())
	suggestions, err := oracle.Suggest(context.Background(), sampleRequest())

	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "PAT-240101-001", suggestions[0].CandidateID)
	assert.Equal(t, entity.SlotFather, suggestions[0].Relationship)
	assert.Equal(t, "RAVI", got.UserProfile.FatherName)
	assert.Len(t, got.CommunityProfiles, 1)
}

func TestHTTPOracle_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "model overloaded", http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"suggestions":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			oracle := NewHTTPOracle(server.URL, "", time.Second, discardLogger())
			_, err := oracle.Suggest(context.Background(), sampleRequest())

			assert.ErrorIs(t, err, domainerrors.ErrSuggestionFailed)
		})
	}
}

func TestNewOracle(t *testing.T) {
	oracle, err := NewOracle(&config.Config{}, discardLogger())
	require.NoError(t, err)
	_, err = oracle.Suggest(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, domainerrors.ErrSuggestionFailed)

	_, err = NewOracle(&config.Config{Suggestion: &config.SuggestionConfig{Enabled: true}}, discardLogger())
	assert.Error(t, err)
}
