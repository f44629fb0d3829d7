package delivery

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	deliveryerrors "go-repartos/internal/delivery/errors"
	"go-repartos/internal/events"
	"go-repartos/internal/messaging/kafka"
	"go-repartos/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=delivery_service.go -destination=mock/delivery_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDeliveryRequest) (DeliveryResponse, error)
	Finalize(ctx context.Context, id string) (DeliveryResponse, error)
	GetAll(ctx context.Context) ([]DeliveryListItem, error)
}

type service struct {
	repo   Repository
	outbox kafka.OutboxRepository
	sqlDB  *sql.DB
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, outbox kafka.OutboxRepository, sqlDB *sql.DB) Service {
	return &service{
		repo:   repo,
		outbox: outbox,
		sqlDB:  sqlDB,
		now:    time.Now,
		logger: zap.L().Named("delivery.service"),
	}
}

// refTables maps request references to the tables that must contain them.
var refTables = []struct {
	entity string
	table  string
	get    func(req CreateDeliveryRequest) string
}{
	{"destination", "destinations", func(r CreateDeliveryRequest) string { return r.DestinationID }},
	{"courier", "couriers", func(r CreateDeliveryRequest) string { return r.CourierID }},
	{"seller", "sellers", func(r CreateDeliveryRequest) string { return r.SellerID }},
	{"payment method", "payment_methods", func(r CreateDeliveryRequest) string { return r.PaymentMethodID }},
}

func (s *service) Create(ctx context.Context, req CreateDeliveryRequest) (DeliveryResponse, error) {
	ticket := strings.TrimSpace(req.Ticket)
	if ticket == "" {
		return DeliveryResponse{}, deliveryerrors.ErrInvalidTicket
	}
	if *req.TotalAmount < 0 {
		return DeliveryResponse{}, deliveryerrors.ErrInvalidAmount
	}

	refs := make(map[string]uuid.UUID, len(refTables))
	for _, ref := range refTables {
		id, err := uuid.Parse(ref.get(req))
		if err != nil {
			return DeliveryResponse{}, deliveryerrors.UnknownReference(ref.entity)
		}
		exists, err := s.repo.RefExists(ctx, ref.table, id.String())
		if err != nil {
			return DeliveryResponse{}, err
		}
		if !exists {
			return DeliveryResponse{}, deliveryerrors.UnknownReference(ref.entity)
		}
		refs[ref.table] = id
	}

	now := s.now()
	d := &Delivery{
		ID:              uuid.New(),
		Ticket:          ticket,
		DestinationID:   refs["destinations"],
		CourierID:       refs["couriers"],
		SellerID:        refs["sellers"],
		PaymentMethodID: refs["payment_methods"],
		CreationDate:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		DepartureTime:   now.Format("15:04:05"),
		TotalAmount:     *req.TotalAmount,
		Status:          StatusInProgress,
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Insert(ctx, d); err != nil {
		s.logger.Error("delivery insert failed", zap.String("ticket", ticket), zap.Error(err))
		return DeliveryResponse{}, mapRepositoryError(err)
	}

	event, err := s.createdOutboxEvent(ctx, d)
	if err != nil {
		return DeliveryResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Enqueue(ctx, event); err != nil {
		s.logger.Error("outbox write failed", zap.String("delivery_id", d.ID.String()), zap.Error(err))
		return DeliveryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DeliveryResponse{}, err
	}

	s.logger.Info("delivery created",
		zap.String("delivery_id", d.ID.String()),
		zap.String("ticket", d.Ticket),
	)
	return mapToResponse(*d), nil
}

// Finalize sets the arrival punch exactly once. A zero-row conditional
// update is disambiguated with a follow-up read.
func (s *service) Finalize(ctx context.Context, id string) (DeliveryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DeliveryResponse{}, deliveryerrors.ErrInvalidDeliveryID
	}

	arrival := s.now().Format("15:04:05")

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).Finalize(ctx, id, arrival)
	if err != nil {
		return DeliveryResponse{}, mapRepositoryError(err)
	}

	if rows == 0 {
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return DeliveryResponse{}, mapRepositoryError(err)
		}
		return DeliveryResponse{}, deliveryerrors.NotInProgress(current.Status)
	}

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DeliveryResponse{}, mapRepositoryError(err)
	}
	d.Status = StatusFinalized
	d.ArrivalTime = &arrival

	event, err := s.finalizedOutboxEvent(ctx, d, arrival)
	if err != nil {
		return DeliveryResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Enqueue(ctx, event); err != nil {
		s.logger.Error("outbox write failed", zap.String("delivery_id", id), zap.Error(err))
		return DeliveryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DeliveryResponse{}, err
	}

	s.logger.Info("delivery finalized",
		zap.String("delivery_id", id),
		zap.String("arrival_time", arrival),
	)
	return mapToResponse(*d), nil
}

func (s *service) GetAll(ctx context.Context) ([]DeliveryListItem, error) {
	rows, err := s.repo.ListJoined(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]DeliveryListItem, len(rows))
	for i, row := range rows {
		res[i] = DeliveryListItem{
			ID:                row.ID,
			Ticket:            row.Ticket,
			DestinationPlace:  row.DestinationPlace,
			CourierName:       row.CourierName,
			SellerName:        row.SellerName,
			PaymentMethodName: row.PaymentMethodName,
			CreationDate:      row.CreationDate,
			DepartureTime:     row.DepartureTime,
			ArrivalTime:       row.ArrivalTime,
			TotalAmount:       row.TotalAmount,
			Status:            row.Status,
		}
	}
	return res, nil
}

func (s *service) createdOutboxEvent(ctx context.Context, d *Delivery) (kafka.OutboxEvent, error) {
	requestID := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.DeliveryCreatedEvent{
		EventType:     "delivery_created",
		RequestID:     requestID,
		DeliveryID:    d.ID.String(),
		Ticket:        d.Ticket,
		CourierID:     d.CourierID.String(),
		DestinationID: d.DestinationID.String(),
		TotalAmount:   d.TotalAmount,
		OccurredAt:    s.now(),
	})
	if err != nil {
		return kafka.OutboxEvent{}, err
	}

	return kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "delivery",
		AggregateID:   d.ID.String(),
		EventType:     "delivery_created",
		Topic:         events.DeliveryLifecycleTopic,
		Payload:       payload,
		Status:        kafka.EventPending,
	}, nil
}

func (s *service) finalizedOutboxEvent(ctx context.Context, d *Delivery, arrival string) (kafka.OutboxEvent, error) {
	requestID := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.DeliveryFinalizedEvent{
		EventType:   "delivery_finalized",
		RequestID:   requestID,
		DeliveryID:  d.ID.String(),
		Ticket:      d.Ticket,
		CourierID:   d.CourierID.String(),
		TotalAmount: d.TotalAmount,
		ArrivalTime: arrival,
		OccurredAt:  s.now(),
	})
	if err != nil {
		return kafka.OutboxEvent{}, err
	}

	return kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "delivery",
		AggregateID:   d.ID.String(),
		EventType:     "delivery_finalized",
		Topic:         events.DeliveryLifecycleTopic,
		Payload:       payload,
		Status:        kafka.EventPending,
	}, nil
}

func mapToResponse(d Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:            d.ID.String(),
		Ticket:        d.Ticket,
		CreationDate:  d.CreationDate.Format("2006-01-02"),
		DepartureTime: d.DepartureTime,
		ArrivalTime:   d.ArrivalTime,
		TotalAmount:   d.TotalAmount,
		Status:        d.Status,
	}
}
