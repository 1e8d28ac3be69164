package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/champastudio/champa/internal/platform/apperr"
	"github.com/champastudio/champa/internal/platform/sec"
	"github.com/champastudio/champa/internal/platform/validate"
	"github.com/champastudio/champa/pkg/uuid"
)

type Service struct {
	repo        Repository
	idempotency IdempotencyStore
	logger      *slog.Logger
}

func NewService(repo Repository, idempotency IdempotencyStore, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		idempotency: idempotency,
		logger:      logger,
	}
}

// # Order Intake

// PlaceOrderInput carries one order form submission.
type PlaceOrderInput struct {
	ServiceID      string
	PackageID      *string
	Name           string
	Email          string
	Phone          string
	Note           string
	IdempotencyKey string
}

/*
PlaceOrder validates and persists an order form submission.

Description: Validation runs completely before any collaborator call. When
the submission carries an Idempotency-Key that was already claimed, the
original order is returned instead of creating a duplicate, so network
retries are safe for the client.

Parameters:
  - context: context.Context
  - actor: *sec.AuthClaims (nil for guest submissions)
  - input: PlaceOrderInput

Returns:
  - *Order: Created (or original, on retry) order
  - bool: True when this call created the order
  - error: Validation or storage failures
*/
func (service *Service) PlaceOrder(context context.Context, actor *sec.AuthClaims, input PlaceOrderInput) (*Order, bool, error) {

	// Full local validation first: a failing form costs no queries.
	validator := &validate.Validator{}
	validator.
		Required(FieldServiceID, input.ServiceID).
		UUID(FieldServiceID, input.ServiceID).
		Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 100).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		MaxLen(FieldPhone, input.Phone, 30).
		MaxLen(FieldNote, input.Note, 2000)

	if input.PackageID != nil {
		validator.UUID(FieldPackageID, *input.PackageID)
	}

	if err := validator.Err(); err != nil {
		return nil, false, err
	}

	newOrder := &Order{
		ID:             uuid.New(),
		ServiceID:      input.ServiceID,
		PackageID:      input.PackageID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Note:           input.Note,
		Status:         StatusNew,
		IdempotencyKey: input.IdempotencyKey,
	}
	if actor != nil {
		newOrder.ClientID = &actor.UserID
	}

	// Claim the submission key before touching the database.
	if input.IdempotencyKey != "" {
		existingID, err := service.idempotency.Reserve(context, input.IdempotencyKey, newOrder.ID, IdempotencyTTL)
		if err != nil {
			return nil, false, fmt.Errorf("order_service_idempotency_failed: %w", err)
		}

		if existingID != "" {
			existing, err := service.repo.GetByID(context, existingID)
			if err != nil {
				return nil, false, err
			}

			service.logger.Info("order_retry_deduplicated",
				slog.String("order_id", existing.ID),
			)
			return existing, false, nil
		}
	}

	if err := service.repo.Create(context, newOrder); err != nil {
		// Free the key so the client's retry can succeed.
		if input.IdempotencyKey != "" {
			_ = service.idempotency.Release(context, input.IdempotencyKey)
		}
		return nil, false, err
	}

	service.logger.Info("order_placed",
		slog.String("order_id", newOrder.ID),
		slog.String("service_id", newOrder.ServiceID),
		slog.Bool("guest", newOrder.ClientID == nil),
	)

	return newOrder, true, nil
}

// ListMyOrders returns the signed-in client's own orders.
func (service *Service) ListMyOrders(context context.Context, actor *sec.AuthClaims) ([]*Order, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return service.repo.ListByClient(context, actor.UserID)
}

// # Back Office

// ListOrders returns every order for triage.
func (service *Service) ListOrders(context context.Context) ([]*Order, error) {
	return service.repo.ListAll(context)
}

// GetOrder resolves a single order for the back office.
func (service *Service) GetOrder(context context.Context, id string) (*Order, error) {
	return service.repo.GetByID(context, id)
}

// UpdateStatus moves an order through triage.
func (service *Service) UpdateStatus(context context.Context, id, status string) (*Order, error) {
	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, status, Statuses()...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.repo.UpdateStatus(context, id, status)
	if err != nil {
		return nil, err
	}

	service.logger.Info("order_status_changed",
		slog.String("order_id", id),
		slog.String("status", status),
	)
	return updated, nil
}
