// Package suggestion calls the relationship suggestion model over HTTP.
package suggestion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"familytree/config"
	deliverycontext "familytree/internal/delivery/context"
	"familytree/internal/domain/entity"
	domainerrors "familytree/internal/domain/errors"
	"familytree/internal/domain/service"
	"familytree/internal/errors"
)

const (
	defaultTimeout   = 20 * time.Second
	maxResponseBytes = 1 << 20
)

type oracleRequest struct {
	UserProfile       service.SuggestionProfile   `json:"userProfile"`
	CommunityProfiles []service.SuggestionProfile `json:"communityProfiles"`
}

type oracleResponse struct {
	Suggestions []struct {
		UserID       string `json:"userId"`
		Name         string `json:"name"`
		Relationship string `json:"relationship"`
		Reasoning    string `json:"reasoning"`
	} `json:"suggestions"`
}

// httpOracle posts the target and pool to a model endpoint and decodes its
// suggestions. Suggestions with an unknown relationship are dropped.
type httpOracle struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPOracle creates an oracle for endpoint.
func NewHTTPOracle(endpoint, apiKey string, timeout time.Duration, logger *slog.Logger) service.SuggestionOracle {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httpOracle{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (o *httpOracle) Suggest(ctx context.Context, req *service.SuggestionRequest) ([]service.Suggestion, error) {
	body, err := json.Marshal(oracleRequest{UserProfile: req.Target, CommunityProfiles: req.Pool})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if o.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, domainerrors.ErrSuggestionFailed.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, domainerrors.ErrSuggestionFailed.WithDetails(resp.Status + ": " + string(snippet))
	}

	var decoded oracleResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&decoded); err != nil {
		return nil, domainerrors.ErrSuggestionFailed.WithDetails("malformed response: " + err.Error())
	}

	suggestions := make([]service.Suggestion, 0, len(decoded.Suggestions))
	for _, s := range decoded.Suggestions {
		slot := entity.RelationSlot(s.Relationship)
		if !slot.IsValid() || s.UserID == "" {
			o.logger.WarnContext(ctx, "Dropping malformed suggestion",
				slog.String("candidate_id", s.UserID),
				slog.String("relationship", s.Relationship),
			)

			continue
		}
		suggestions = append(suggestions, service.Suggestion{
			CandidateID:  s.UserID,
			Relationship: slot,
			Rationale:    s.Reasoning,
		})
	}

	return suggestions, nil
}

type disabledOracle struct{}

func (disabledOracle) Suggest(context.Context, *service.SuggestionRequest) ([]service.Suggestion, error) {
	return nil, domainerrors.ErrSuggestionFailed.WithDetails("suggestions are not configured")
}

// NewOracle returns the HTTP oracle when suggestions are enabled.
func NewOracle(cfg *config.Config, logger *slog.Logger) (service.SuggestionOracle, error) {
	s := cfg.Suggestion
	if s == nil || !s.Enabled {
		return disabledOracle{}, nil
	}
	if s.Endpoint == "" {
		return nil, errors.New("suggestion.endpoint is required when suggestions are enabled")
	}

	return NewHTTPOracle(s.Endpoint, s.APIKey, s.Timeout, logger), nil
}
