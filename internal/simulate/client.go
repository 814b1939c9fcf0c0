package simulate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
)

// client is a thin HTTP wrapper over the service API.
type client struct {
	baseURL string
	http    *http.Client
}

func newClient(cfg *Config) *client {
	return &client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// classifyRequest mirrors the POST /classify/{kind} schema.
type classifyRequest struct {
	Path         []geometry.Point `json:"path"`
	PlayerSide   string           `json:"player_side,omitempty"`
	PlayerStartX float64          `json:"player_start_x,omitempty"`
	PlayerStartY float64          `json:"player_start_y,omitempty"`
	Field        *geometry.Field  `json:"field,omitempty"`
}

// classifyResponse is the union of the per-kind response bodies; exactly
// one of the label fields is set depending on the kind requested.
type classifyResponse struct {
	Route      string `json:"route,omitempty"`
	Assignment string `json:"assignment,omitempty"`
	Zone       string `json:"zone,omitempty"`
	Gap        string `json:"gap,omitempty"`
	Motion     string `json:"motion,omitempty"`
	Confidence string `json:"confidence"`
}

// label returns whichever label field the response carries.
func (r classifyResponse) label() string {
	for _, l := range []string{r.Route, r.Assignment, r.Zone, r.Gap, r.Motion} {
		if l != "" {
			return l
		}
	}
	return ""
}

// assignmentRequest mirrors the POST /assignments schema.
type assignmentRequest struct {
	AssignmentID string           `json:"assignment_id"`
	PlayID       string           `json:"play_id"`
	Kind         string           `json:"kind"`
	Path         []geometry.Point `json:"path"`
	PlayerSide   string           `json:"player_side,omitempty"`
	PlayerStartX float64          `json:"player_start_x,omitempty"`
	PlayerStartY float64          `json:"player_start_y,omitempty"`
	Field        *geometry.Field  `json:"field,omitempty"`
}

type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

type outcomeResponse struct {
	AssignmentID string `json:"assignment_id"`
	PlayID       string `json:"play_id"`
	Kind         string `json:"kind"`
	Label        string `json:"label"`
	Confidence   string `json:"confidence"`
}

type playResponse struct {
	PlayID   string            `json:"play_id"`
	Outcomes []outcomeResponse `json:"outcomes"`
}

// Health checks that the target instance is serving /healthz.
func (c *client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("simulate: build health request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("simulate: health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("simulate: health check returned %d", resp.StatusCode)
	}
	return nil
}

// Classify posts the scenario to the synchronous classify endpoint and
// returns the label the service assigned.
func (c *client) Classify(ctx context.Context, s Scenario) (string, error) {
	body := classifyRequest{
		Path:         s.Path,
		PlayerSide:   s.PlayerSide,
		PlayerStartX: s.PlayerStartX,
		PlayerStartY: s.PlayerStartY,
		Field:        &simField,
	}

	var out classifyResponse
	if err := c.post(ctx, "/classify/"+s.Kind, body, http.StatusOK, &out); err != nil {
		return "", err
	}
	return out.label(), nil
}

// Submit posts the scenario to the async assignment pipeline. It returns
// true when the job was accepted and false on a duplicate ack.
func (c *client) Submit(ctx context.Context, assignmentID, playID string, s Scenario) (bool, error) {
	body := assignmentRequest{
		AssignmentID: assignmentID,
		PlayID:       playID,
		Kind:         s.Kind,
		Path:         s.Path,
		PlayerSide:   s.PlayerSide,
		PlayerStartX: s.PlayerStartX,
		PlayerStartY: s.PlayerStartY,
		Field:        &simField,
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return false, fmt.Errorf("simulate: marshal assignment: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/assignments", bytes.NewReader(raw))
	if err != nil {
		return false, fmt.Errorf("simulate: build assignment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("simulate: submit assignment: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusAccepted:
		return true, nil
	case http.StatusOK:
		var ack ackResponse
		if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
			return false, fmt.Errorf("simulate: decode ack: %w", err)
		}
		if !ack.Duplicate {
			return false, fmt.Errorf("simulate: unexpected 200 ack status %q", ack.Status)
		}
		return false, nil
	case http.StatusTooManyRequests:
		return false, errBackpressure
	default:
		return false, fmt.Errorf("simulate: submit returned %d", resp.StatusCode)
	}
}

// Play fetches all stored outcomes for a play.
func (c *client) Play(ctx context.Context, playID string) (playResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/plays/"+playID, nil)
	if err != nil {
		return playResponse{}, fmt.Errorf("simulate: build play request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return playResponse{}, fmt.Errorf("simulate: fetch play: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return playResponse{}, fmt.Errorf("simulate: fetch play returned %d", resp.StatusCode)
	}
	var out playResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return playResponse{}, fmt.Errorf("simulate: decode play: %w", err)
	}
	return out, nil
}

// post sends a JSON body and decodes the JSON response into out.
func (c *client) post(ctx context.Context, path string, body any, want int, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("simulate: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("simulate: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("simulate: post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return fmt.Errorf("simulate: post %s returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
