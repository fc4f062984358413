package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/kum096/Dashboard/internal/core/domain"
	"github.com/kum096/Dashboard/internal/core/ports"
	"github.com/kum096/Dashboard/internal/pkg/metrics"
)

// systemActor is recorded as the audit username for calls made without an
// operator session, such as those issued by trackctl.
const systemActor = "system"

type ShipmentService struct {
	client ports.ShipmentClient
	audit  ports.AuditRepository
	logger zerolog.Logger
	now    func() time.Time
}

// NewShipmentService wires the use cases to the remote client. audit may be
// nil, in which case mutations are not recorded.
func NewShipmentService(client ports.ShipmentClient, audit ports.AuditRepository, logger zerolog.Logger) *ShipmentService {
	return &ShipmentService{
		client: client,
		audit:  audit,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ListShipments fetches and decodes every remote record. On failure it returns
// an empty slice alongside the error so views can still render.
func (s *ShipmentService) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	records, err := s.client.ListShipments(ctx)
	if err != nil {
		return []domain.Shipment{}, err
	}
	return lo.Map(records, func(r domain.WireRecord, _ int) domain.Shipment {
		return domain.FromWireRecord(r)
	}), nil
}

// CreateShipment validates the form, applies create defaults, and submits it.
func (s *ShipmentService) CreateShipment(ctx context.Context, session *domain.Session, form domain.ShipmentForm) (*domain.Shipment, error) {
	shipment, err := domain.ValidateForCreate(form)
	if err != nil {
		return nil, s.rejected(err)
	}

	if err := s.submit(ctx, session, domain.AuditCreate, shipment, false); err != nil {
		return nil, err
	}
	return shipment, nil
}

// UpdateShipment fully replaces the record keyed by trackingNumber. A blank
// form tracking number is taken from trackingNumber; a different one is refused.
func (s *ShipmentService) UpdateShipment(ctx context.Context, session *domain.Session, trackingNumber string, form domain.ShipmentForm) (*domain.Shipment, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, s.rejected(&domain.ValidationError{Field: "tracking_number", Err: domain.ErrTrackingNumberRequired})
	}

	switch strings.TrimSpace(form.TrackingNumber) {
	case "":
		form.TrackingNumber = trackingNumber
	case trackingNumber:
	default:
		return nil, s.rejected(&domain.ValidationError{Field: "tracking_number", Err: domain.ErrTrackingNumberImmutable})
	}

	shipment, err := domain.ValidateForUpdate(form)
	if err != nil {
		return nil, s.rejected(err)
	}

	if err := s.submit(ctx, session, domain.AuditUpdate, shipment, true); err != nil {
		return nil, err
	}
	return shipment, nil
}

// DeleteShipment removes the record keyed by trackingNumber.
func (s *ShipmentService) DeleteShipment(ctx context.Context, session *domain.Session, trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return s.rejected(&domain.ValidationError{Field: "tracking_number", Err: domain.ErrTrackingNumberRequired})
	}

	err := s.client.DeleteShipment(ctx, trackingNumber)
	s.record(ctx, session, domain.AuditDelete, trackingNumber, err)
	if err != nil {
		return err
	}

	s.logger.Info().Str("tracking_number", trackingNumber).Str("actor", actor(session)).Msg("shipment deleted")
	return nil
}

func (s *ShipmentService) submit(ctx context.Context, session *domain.Session, action domain.AuditAction, shipment *domain.Shipment, isUpdate bool) error {
	rec, err := domain.ToWireFormat(shipment)
	if err != nil {
		return s.rejected(err)
	}

	err = s.client.UpsertShipment(ctx, rec, isUpdate)
	s.record(ctx, session, action, shipment.TrackingNumber, err)
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("tracking_number", shipment.TrackingNumber).
		Str("action", string(action)).
		Str("actor", actor(session)).
		Msg("shipment saved")
	return nil
}

// rejected counts a validation failure and passes err through.
func (s *ShipmentService) rejected(err error) error {
	field := "unknown"
	var ve *domain.ValidationError
	if errors.As(err, &ve) && ve.Field != "" {
		field = ve.Field
	}
	metrics.ValidationFailuresTotal.WithLabelValues(field).Inc()
	s.logger.Debug().Err(err).Str("field", field).Msg("shipment rejected by validation")
	return err
}

// record writes an audit entry for a mutation that reached the remote
// resource. Failures are logged and never returned.
func (s *ShipmentService) record(ctx context.Context, session *domain.Session, action domain.AuditAction, trackingNumber string, opErr error) {
	outcome := domain.OutcomeSucceeded
	if opErr != nil {
		outcome = domain.OutcomeFailed
	}
	metrics.ShipmentMutationsTotal.WithLabelValues(string(action), outcome).Inc()

	if s.audit == nil {
		return
	}

	entry := &domain.AuditEntry{
		Action:         action,
		TrackingNumber: trackingNumber,
		Username:       actor(session),
		Outcome:        outcome,
		At:             s.now(),
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}

	if err := s.audit.Insert(ctx, entry); err != nil {
		metrics.AuditFailuresTotal.Inc()
		s.logger.Error().Err(err).Str("tracking_number", trackingNumber).Msg("failed to write audit entry")
	}
}

func actor(session *domain.Session) string {
	if session == nil || session.Username == "" {
		return systemActor
	}
	return session.Username
}
