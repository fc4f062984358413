package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kum096/Dashboard/internal/core/domain"
	"github.com/kum096/Dashboard/internal/infrastructure/trackingapi"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type upsertCall struct {
	rec      domain.WireRecord
	isUpdate bool
}

type stubShipmentClient struct {
	records   []domain.WireRecord
	listErr   error
	upsertErr error
	deleteErr error

	upserts []upsertCall
	deletes []string
}

func (c *stubShipmentClient) ListShipments(_ context.Context) ([]domain.WireRecord, error) {
	if c.listErr != nil {
		return []domain.WireRecord{}, c.listErr
	}
	return c.records, nil
}

func (c *stubShipmentClient) UpsertShipment(_ context.Context, rec domain.WireRecord, isUpdate bool) error {
	c.upserts = append(c.upserts, upsertCall{rec: rec, isUpdate: isUpdate})
	return c.upsertErr
}

func (c *stubShipmentClient) DeleteShipment(_ context.Context, trackingNumber string) error {
	c.deletes = append(c.deletes, trackingNumber)
	return c.deleteErr
}

type stubAuditRepo struct {
	entries   []*domain.AuditEntry
	insertErr error
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	r.entries = append(r.entries, entry)
	return r.insertErr
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

var operator = &domain.Session{ID: "sid-1", Username: "trackit"}

func newTestShipmentService(client *stubShipmentClient, audit *stubAuditRepo) *ShipmentService {
	svc := NewShipmentService(client, audit, discardLogger)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

// ---------------------------------------------------------------------------
// ListShipments tests
// ---------------------------------------------------------------------------

func TestShipmentService_List_DecodesRecords(t *testing.T) {
	date := "2024-05-01"
	client := &stubShipmentClient{records: []domain.WireRecord{
		{TrackingNumber: "TN1", Status: "in_transit", DepartureDate: &date},
		{TrackingNumber: "TN2", Status: "bogus"},
	}}
	svc := newTestShipmentService(client, nil)

	got, err := svc.ListShipments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 shipments, got %d", len(got))
	}
	if got[0].Status != domain.StatusInTransit {
		t.Errorf("expected in_transit, got %q", got[0].Status)
	}
	if got[0].DepartureDate == nil || got[0].DepartureDate.Day() != 1 {
		t.Errorf("departure date not decoded: %v", got[0].DepartureDate)
	}
	if got[1].Status != domain.StatusPending {
		t.Errorf("unknown status must display as pending, got %q", got[1].Status)
	}
}

func TestShipmentService_List_ErrorYieldsEmptySlice(t *testing.T) {
	client := &stubShipmentClient{listErr: &domain.TransportError{Op: "list shipments", Err: errors.New("dial tcp: refused")}}
	svc := newTestShipmentService(client, nil)

	got, err := svc.ListShipments(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

// ---------------------------------------------------------------------------
// CreateShipment tests
// ---------------------------------------------------------------------------

func TestShipmentService_Create_Success(t *testing.T) {
	client := &stubShipmentClient{}
	audit := &stubAuditRepo{}
	svc := newTestShipmentService(client, audit)

	s, err := svc.CreateShipment(context.Background(), operator, domain.ShipmentForm{TrackingNumber: " TN1 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TrackingNumber != "TN1" || s.Status != domain.StatusPending {
		t.Errorf("unexpected shipment: %+v", s)
	}

	if len(client.upserts) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(client.upserts))
	}
	call := client.upserts[0]
	if call.isUpdate {
		t.Error("create must not be sent as an update")
	}
	if call.rec.Quantity != "1" || call.rec.Weight != "0" || call.rec.Status != "pending" {
		t.Errorf("create defaults not applied: %+v", call.rec)
	}

	if len(audit.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
	}
	e := audit.entries[0]
	if e.Action != domain.AuditCreate || e.Outcome != domain.OutcomeSucceeded || e.Username != "trackit" {
		t.Errorf("unexpected audit entry: %+v", e)
	}
}

func TestShipmentService_Create_ValidationBlocksNetwork(t *testing.T) {
	client := &stubShipmentClient{}
	audit := &stubAuditRepo{}
	svc := newTestShipmentService(client, audit)

	_, err := svc.CreateShipment(context.Background(), operator, domain.ShipmentForm{TrackingNumber: "   "})
	if !errors.Is(err, domain.ErrTrackingNumberRequired) {
		t.Fatalf("expected ErrTrackingNumberRequired, got %v", err)
	}
	if len(client.upserts) != 0 {
		t.Error("no remote call may be made for an invalid submission")
	}
	if len(audit.entries) != 0 {
		t.Error("rejected submissions are not audited")
	}
}

func TestShipmentService_Create_HalfCoordinatePairBlocksNetwork(t *testing.T) {
	client := &stubShipmentClient{}
	svc := newTestShipmentService(client, nil)

	_, err := svc.CreateShipment(context.Background(), operator, domain.ShipmentForm{
		TrackingNumber: "TN1",
		DestinationLng: "3.4",
	})
	if !errors.Is(err, domain.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
	if len(client.upserts) != 0 {
		t.Error("no remote call may be made for an invalid submission")
	}
}

func TestShipmentService_Create_RemoteFailureIsAudited(t *testing.T) {
	remoteErr := &domain.ResponseError{Op: "create shipment", StatusCode: http.StatusBadGateway}
	client := &stubShipmentClient{upsertErr: remoteErr}
	audit := &stubAuditRepo{}
	svc := newTestShipmentService(client, audit)

	_, err := svc.CreateShipment(context.Background(), operator, domain.ShipmentForm{TrackingNumber: "TN1"})
	if !errors.Is(err, remoteErr) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if len(audit.entries) != 1 || audit.entries[0].Outcome != domain.OutcomeFailed {
		t.Fatalf("expected one failed audit entry, got %+v", audit.entries)
	}
	if audit.entries[0].Error == "" {
		t.Error("failed audit entry must carry the error text")
	}
}

func TestShipmentService_Create_AuditFailureIsNotFatal(t *testing.T) {
	client := &stubShipmentClient{}
	audit := &stubAuditRepo{insertErr: errors.New("mongo down")}
	svc := newTestShipmentService(client, audit)

	if _, err := svc.CreateShipment(context.Background(), operator, domain.ShipmentForm{TrackingNumber: "TN1"}); err != nil {
		t.Fatalf("audit failure must not fail the operation: %v", err)
	}
}

func TestShipmentService_Create_WithoutSessionUsesSystemActor(t *testing.T) {
	audit := &stubAuditRepo{}
	svc := newTestShipmentService(&stubShipmentClient{}, audit)

	if _, err := svc.CreateShipment(context.Background(), nil, domain.ShipmentForm{TrackingNumber: "TN1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if audit.entries[0].Username != systemActor {
		t.Errorf("expected %q, got %q", systemActor, audit.entries[0].Username)
	}
}

// ---------------------------------------------------------------------------
// UpdateShipment tests
// ---------------------------------------------------------------------------

func TestShipmentService_Update_FullReplace(t *testing.T) {
	client := &stubShipmentClient{}
	svc := newTestShipmentService(client, nil)

	_, err := svc.UpdateShipment(context.Background(), operator, "TN1", domain.ShipmentForm{
		TrackingNumber:     "TN1",
		Status:             "delivered",
		CurrentLocationLat: "6.5",
		CurrentLocationLng: "3.3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.upserts) != 1 || !client.upserts[0].isUpdate {
		t.Fatalf("expected one update call, got %+v", client.upserts)
	}
	rec := client.upserts[0].rec
	if rec.Status != "delivered" {
		t.Errorf("expected delivered, got %q", rec.Status)
	}
	if !rec.CurrentLocationCoords.Complete() || *rec.CurrentLocationCoords.Latitude != 6.5 {
		t.Errorf("coordinates not sent: %+v", rec.CurrentLocationCoords)
	}
	if rec.Quantity != "" {
		t.Errorf("update must not apply create defaults, got quantity %q", rec.Quantity)
	}
}

func TestShipmentService_Update_BlankFormTrackingNumberTakesPathValue(t *testing.T) {
	client := &stubShipmentClient{}
	svc := newTestShipmentService(client, nil)

	s, err := svc.UpdateShipment(context.Background(), operator, "TN7", domain.ShipmentForm{Status: "canceled"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TrackingNumber != "TN7" || client.upserts[0].rec.TrackingNumber != "TN7" {
		t.Errorf("expected tracking number TN7, got %q", s.TrackingNumber)
	}
}

func TestShipmentService_Update_TrackingNumberIsImmutable(t *testing.T) {
	client := &stubShipmentClient{}
	svc := newTestShipmentService(client, nil)

	_, err := svc.UpdateShipment(context.Background(), operator, "TN1", domain.ShipmentForm{TrackingNumber: "TN2"})
	if !errors.Is(err, domain.ErrTrackingNumberImmutable) {
		t.Fatalf("expected ErrTrackingNumberImmutable, got %v", err)
	}
	if len(client.upserts) != 0 {
		t.Error("no remote call may be made for an invalid submission")
	}
}

func TestShipmentService_Update_MalformedCoordinate(t *testing.T) {
	client := &stubShipmentClient{}
	svc := newTestShipmentService(client, nil)

	_, err := svc.UpdateShipment(context.Background(), operator, "TN1", domain.ShipmentForm{
		TrackingNumber:     "TN1",
		CurrentLocationLat: "12.5",
		CurrentLocationLng: "",
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || !errors.Is(err, domain.ErrInvalidCoordinates) {
		t.Fatalf("expected coordinate ValidationError, got %v", err)
	}
	if len(client.upserts) != 0 {
		t.Error("no remote call may be made for an invalid submission")
	}
}

// ---------------------------------------------------------------------------
// DeleteShipment tests
// ---------------------------------------------------------------------------

func TestShipmentService_Delete(t *testing.T) {
	client := &stubShipmentClient{}
	audit := &stubAuditRepo{}
	svc := newTestShipmentService(client, audit)

	if err := svc.DeleteShipment(context.Background(), operator, " TN1 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.deletes) != 1 || client.deletes[0] != "TN1" {
		t.Errorf("unexpected deletes: %v", client.deletes)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != domain.AuditDelete {
		t.Errorf("expected delete audit entry, got %+v", audit.entries)
	}
}

func TestShipmentService_Delete_RequiresTrackingNumber(t *testing.T) {
	client := &stubShipmentClient{}
	svc := newTestShipmentService(client, nil)

	if err := svc.DeleteShipment(context.Background(), operator, ""); !errors.Is(err, domain.ErrTrackingNumberRequired) {
		t.Fatalf("expected ErrTrackingNumberRequired, got %v", err)
	}
	if len(client.deletes) != 0 {
		t.Error("no remote call may be made without a tracking number")
	}
}

// ---------------------------------------------------------------------------
// End to end against a fake remote resource
// ---------------------------------------------------------------------------

// fakeRemote mimics the remote shipment resource in memory.
type fakeRemote struct {
	mu      sync.Mutex
	records map[string]json.RawMessage
	order   []string
}

func (f *fakeRemote) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	const base = "/api/v1/shipments"
	path := r.URL.Path

	switch {
	case r.Method == http.MethodGet && path == base:
		out := make([]json.RawMessage, 0, len(f.order))
		for _, tn := range f.order {
			out = append(out, f.records[tn])
		}
		_ = json.NewEncoder(w).Encode(out)

	case r.Method == http.MethodPost && path == base:
		var raw json.RawMessage
		var rec struct {
			TrackingNumber string `json:"tracking_number"`
		}
		_ = json.NewDecoder(r.Body).Decode(&raw)
		_ = json.Unmarshal(raw, &rec)
		if _, exists := f.records[rec.TrackingNumber]; exists {
			http.Error(w, "duplicate", http.StatusConflict)
			return
		}
		f.records[rec.TrackingNumber] = raw
		f.order = append(f.order, rec.TrackingNumber)
		w.WriteHeader(http.StatusCreated)

	case r.Method == http.MethodPut && strings.HasPrefix(path, base+"/fullupdate/"):
		tn := strings.TrimPrefix(path, base+"/fullupdate/")
		if _, exists := f.records[tn]; !exists {
			http.NotFound(w, r)
			return
		}
		var raw json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&raw)
		f.records[tn] = raw

	case r.Method == http.MethodDelete && strings.HasPrefix(path, base+"/tracking/"):
		tn := strings.TrimPrefix(path, base+"/tracking/")
		if _, exists := f.records[tn]; !exists {
			http.NotFound(w, r)
			return
		}
		delete(f.records, tn)
		for i, v := range f.order {
			if v == tn {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}

	default:
		http.NotFound(w, r)
	}
}

func newEndToEndService(t *testing.T) *ShipmentService {
	t.Helper()
	srv := httptest.NewServer(&fakeRemote{records: make(map[string]json.RawMessage)})
	t.Cleanup(srv.Close)
	client := trackingapi.New(srv.URL+"/api/v1", discardLogger, trackingapi.WithHTTPClient(srv.Client()))
	return NewShipmentService(client, nil, discardLogger)
}

func TestShipmentService_EndToEnd_CreateThenList(t *testing.T) {
	svc := newEndToEndService(t)
	ctx := context.Background()

	if _, err := svc.CreateShipment(ctx, operator, domain.ShipmentForm{TrackingNumber: "TN1234567890"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.ListShipments(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(got))
	}
	if got[0].TrackingNumber != "TN1234567890" {
		t.Errorf("unexpected tracking number %q", got[0].TrackingNumber)
	}
	if got[0].Status != domain.StatusPending {
		t.Errorf("expected status pending, got %q", got[0].Status)
	}
}

func TestShipmentService_EndToEnd_UpdateThenDelete(t *testing.T) {
	svc := newEndToEndService(t)
	ctx := context.Background()

	if _, err := svc.CreateShipment(ctx, operator, domain.ShipmentForm{TrackingNumber: "TN5"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, err := svc.UpdateShipment(ctx, operator, "TN5", domain.ShipmentForm{
		TrackingNumber:   "TN5",
		Status:           "in_transit",
		LatestStatusDate: "2024-06-02",
		LatestStatusTime: "08:30",
		DestinationLat:   "51.5",
		DestinationLng:   "-0.12",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := svc.ListShipments(ctx)
	if len(got) != 1 || got[0].Status != domain.StatusInTransit {
		t.Fatalf("update not visible: %+v", got)
	}
	if ts := domain.FormatTime(got[0].LatestStatusTime); ts == nil || *ts != "08:30:00" {
		t.Errorf("latest status time did not round-trip: %v", ts)
	}
	if pair := domain.FormatCoordinatePair(got[0].DestinationCoords); pair != "51.5,-0.12" {
		t.Errorf("destination did not round-trip: %q", pair)
	}

	if err := svc.DeleteShipment(ctx, operator, "TN5"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	got, _ = svc.ListShipments(ctx)
	if len(got) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(got))
	}
}

func TestShipmentService_EndToEnd_DuplicateCreateSurfacesRemoteError(t *testing.T) {
	svc := newEndToEndService(t)
	ctx := context.Background()

	if _, err := svc.CreateShipment(ctx, operator, domain.ShipmentForm{TrackingNumber: "TN1"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, err := svc.CreateShipment(ctx, operator, domain.ShipmentForm{TrackingNumber: "TN1"})

	var re *domain.ResponseError
	if !errors.As(err, &re) || re.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 ResponseError, got %v", err)
	}
}
