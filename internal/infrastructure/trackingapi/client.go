package trackingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kum096/Dashboard/internal/core/domain"
	"github.com/kum096/Dashboard/internal/pkg/metrics"
)

const maxErrorBody = 4 << 10

// Client implements ports.ShipmentClient against the remote tracking API.
// Each call is a single attempt; the transport's default timeout applies.
type Client struct {
	http    *http.Client
	baseURL string
	logger  zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a Client rooted at baseURL, e.g.
// https://backend-umdv.onrender.com/api/v1.
func New(baseURL string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		http:    http.DefaultClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListShipments handles GET /shipments. Records are decoded one at a time; an
// element that is not a JSON object is logged and skipped.
func (c *Client) ListShipments(ctx context.Context) ([]domain.WireRecord, error) {
	const op = "list shipments"

	var raw []json.RawMessage
	if err := c.call(ctx, op, http.MethodGet, "/shipments", nil, &raw); err != nil {
		return []domain.WireRecord{}, err
	}

	records := make([]domain.WireRecord, 0, len(raw))
	for i, item := range raw {
		if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			continue
		}
		var rec domain.WireRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			metrics.SkippedRecordsTotal.Inc()
			c.logger.Warn().Err(err).Int("index", i).Msg("skipping undecodable shipment record")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// UpsertShipment handles POST /shipments and
// PUT /shipments/fullupdate/{tracking_number}.
func (c *Client) UpsertShipment(ctx context.Context, rec domain.WireRecord, isUpdate bool) error {
	if isUpdate {
		path := "/shipments/fullupdate/" + url.PathEscape(rec.TrackingNumber)
		return c.call(ctx, "update shipment", http.MethodPut, path, rec, nil)
	}
	return c.call(ctx, "create shipment", http.MethodPost, "/shipments", rec, nil)
}

// DeleteShipment handles DELETE /shipments/tracking/{tracking_number}.
func (c *Client) DeleteShipment(ctx context.Context, trackingNumber string) error {
	path := "/shipments/tracking/" + url.PathEscape(trackingNumber)
	return c.call(ctx, "delete shipment", http.MethodDelete, path, nil, nil)
}

func (c *Client) call(ctx context.Context, op, method, path string, in, out any) (err error) {
	start := time.Now()
	outcome := "error"
	defer func() {
		metrics.RemoteRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		metrics.RemoteRequestsTotal.WithLabelValues(op, outcome).Inc()
		if err != nil {
			c.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("tracking api call failed")
		}
	}()

	req, err := c.newRequest(ctx, method, path, in)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	outcome = strconv.Itoa(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.ResponseError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(b)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.ResponseError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode body: %w", err),
		}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, in any) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
