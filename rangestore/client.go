package rangestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// wireRecord is the availability API's JSON shape for one range.
type wireRecord struct {
	ID    string `json:"id"`
	Day   string `json:"day"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

type writeRequest struct {
	Day   string `json:"day"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// Client talks to the platform's availability endpoints on behalf of one
// authenticated counselor.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a store client for the given API base URL and bearer token.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) List(ctx context.Context) ([]Record, error) {
	resp, err := c.do(ctx, http.MethodGet, c.baseURL+"/availability", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	var wire []wireRecord
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: failed to decode list: %v", ErrInvalidResponse, err)
	}

	records := make([]Record, 0, len(wire))
	for _, w := range wire {
		r, err := fromWire(w)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func (c *Client) Create(ctx context.Context, day, start, end string) (Record, error) {
	body, err := encodeWrite(day, start, end)
	if err != nil {
		return Record{}, err
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/availability", body)
	if err != nil {
		return Record{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusCreated); err != nil {
		return Record{}, err
	}
	return decodeRecord(resp.Body)
}

func (c *Client) Update(ctx context.Context, id, day, start, end string) (Record, error) {
	body, err := encodeWrite(day, start, end)
	if err != nil {
		return Record{}, err
	}

	resp, err := c.do(ctx, http.MethodPatch, c.baseURL+"/availability/"+id, body)
	if err != nil {
		return Record{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return Record{}, err
	}
	return decodeRecord(resp.Body)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, c.baseURL+"/availability/"+id, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp, http.StatusNoContent)
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response, want int) error {
	switch {
	case resp.StatusCode == want:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

func encodeWrite(day, start, end string) ([]byte, error) {
	wireDay, err := ToWireDay(day)
	if err != nil {
		return nil, err
	}
	return json.Marshal(writeRequest{Day: wireDay, Start: start, End: end})
}

func decodeRecord(body io.Reader) (Record, error) {
	var w wireRecord
	if err := json.NewDecoder(body).Decode(&w); err != nil {
		return Record{}, fmt.Errorf("%w: failed to decode record: %v", ErrInvalidResponse, err)
	}
	return fromWire(w)
}

func fromWire(w wireRecord) (Record, error) {
	day, err := FromWireDay(w.Day)
	if err != nil {
		return Record{}, err
	}
	return Record{ID: w.ID, Day: day, Start: w.Start, End: w.End}, nil
}
