package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/abhishek622/moodjournal/internal/config"
	"github.com/abhishek622/moodjournal/pkg/model"
)

var (
	// ErrTimeout means the remote call exceeded the configured deadline.
	ErrTimeout = errors.New("classification timed out")
	// ErrBadResponse means the endpoint answered with something other
	// than the expected list of scored labels.
	ErrBadResponse = errors.New("unexpected classifier response")
)

// Client calls a HuggingFace-style inference endpoint that scores one
// input text against a fixed set of emotion classes.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

func NewClient(cfg config.ClassifierConfig) *Client {
	return &Client{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

// scoredLabel uses pointer fields so a missing label or score is
// distinguishable from a zero value.
type scoredLabel struct {
	Label *string  `json:"label"`
	Score *float64 `json:"score"`
}

// Classify sends text to the inference endpoint and returns the scores
// for every emotion class. A single attempt; no retry.
//
// The endpoint returns a list containing one list of {label, score}
// objects for the single input. Any other shape is an error.
func (c *Client) Classify(ctx context.Context, text string) (model.EmotionScores, error) {
	b, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("classifier request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	var result [][]scoredLabel
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if len(result) != 1 || len(result[0]) == 0 {
		return nil, fmt.Errorf("%w: expected one list of scored labels, got %d", ErrBadResponse, len(result))
	}

	scores := make(model.EmotionScores, len(result[0]))
	for _, sl := range result[0] {
		if sl.Label == nil || sl.Score == nil {
			return nil, fmt.Errorf("%w: entry missing label or score", ErrBadResponse)
		}
		scores[*sl.Label] = *sl.Score
	}
	return scores, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
