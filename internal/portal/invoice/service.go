package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/champastudio/champa/internal/platform/apperr"
	"github.com/champastudio/champa/internal/platform/sec"
	"github.com/champastudio/champa/internal/platform/validate"
	"github.com/champastudio/champa/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Read Paths

// ListInvoices returns the invoices visible to the actor. Clients never see
// drafts; those exist only in the back office.
func (service *Service) ListInvoices(context context.Context, actor *sec.AuthClaims) ([]*Invoice, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	if actor.Role == string(sec.RoleAdmin) {
		invoices, err := service.repo.ListAll(context)
		if err != nil {
			return nil, err
		}
		deriveOverdue(invoices)
		return invoices, nil
	}

	invoices, err := service.repo.ListByClient(context, actor.UserID)
	if err != nil {
		return nil, err
	}

	visible := make([]*Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Status == StatusDraft {
			continue
		}
		visible = append(visible, inv)
	}
	deriveOverdue(visible)

	return visible, nil
}

/*
GetInvoice resolves a single invoice after the ownership check.

Description: A client opening a sent invoice for the first time stamps it
as viewed, which is how the studio learns the bill has been seen. Admin
reads never change state.

Parameters:
  - context: context.Context
  - actor: *sec.AuthClaims
  - id: string

Returns:
  - *Invoice: Hydrated entity
  - error: NotFound (including foreign invoices) or storage failures
*/
func (service *Service) GetInvoice(context context.Context, actor *sec.AuthClaims, id string) (*Invoice, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	inv, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	isAdmin := actor.Role == string(sec.RoleAdmin)
	if !isAdmin {
		// Foreign invoices and drafts answer NotFound for clients.
		if inv.ClientID != actor.UserID || inv.Status == StatusDraft {
			return nil, apperr.NotFound("Invoice")
		}

		if inv.ViewedAt == nil {
			now := time.Now().UTC()
			inv.ViewedAt = &now
			if inv.Status == StatusSent {
				inv.Status = StatusViewed
			}
			if err := service.repo.Update(context, inv); err != nil {
				return nil, err
			}
			service.logger.Info("invoice_viewed",
				slog.String("invoice_id", inv.ID),
				slog.String("client_id", inv.ClientID),
			)
		}
	}

	deriveOverdue([]*Invoice{inv})
	return inv, nil
}

// deriveOverdue flips open invoices past their due date to overdue for
// display. The stored status is untouched; overdue is a function of the
// clock, not a lifecycle event.
func deriveOverdue(invoices []*Invoice) {
	now := time.Now()
	for _, inv := range invoices {
		if inv.DueDate == nil {
			continue
		}
		if (inv.Status == StatusSent || inv.Status == StatusViewed) && inv.DueDate.Before(now) {
			inv.Status = StatusOverdue
		}
	}
}

// # Back Office

// CreateInvoiceInput defines the admin payload for issuing a bill.
type CreateInvoiceInput struct {
	Number    string
	ClientID  string
	ProjectID *string
	AmountLAK int64
	DueDate   *time.Time
	Note      string
}

// CreateInvoice creates a draft invoice. An empty number is generated from
// the issue year and the invoice ID.
func (service *Service) CreateInvoice(context context.Context, input CreateInvoiceInput) (*Invoice, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldClientID, input.ClientID).
		UUID(FieldClientID, input.ClientID).
		Custom(FieldAmountLAK, input.AmountLAK <= 0, "Amount must be a positive number of kip")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	inv := &Invoice{
		ID:        uuid.New(),
		Number:    input.Number,
		ClientID:  input.ClientID,
		ProjectID: input.ProjectID,
		AmountLAK: input.AmountLAK,
		Status:    StatusDraft,
		DueDate:   input.DueDate,
		Note:      input.Note,
	}
	if inv.Number == "" {
		inv.Number = invoiceNumber(inv.ID)
	}

	if err := service.repo.Create(context, inv); err != nil {
		return nil, err
	}

	service.logger.Info("invoice_created",
		slog.String("invoice_id", inv.ID),
		slog.String("number", inv.Number),
		slog.Int64("amount_lak", inv.AmountLAK),
	)
	return inv, nil
}

// SendInvoice issues a draft to the client, stamping the issue time.
func (service *Service) SendInvoice(context context.Context, id string) (*Invoice, error) {
	inv, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	if inv.Status != StatusDraft {
		return nil, apperr.Unprocessable("Only draft invoices can be sent")
	}

	now := time.Now().UTC()
	inv.Status = StatusSent
	inv.IssuedAt = &now

	if err := service.repo.Update(context, inv); err != nil {
		return nil, err
	}

	service.logger.Info("invoice_sent", slog.String("invoice_id", id))
	return inv, nil
}

// MarkPaid settles an invoice, stamping the payment time.
func (service *Service) MarkPaid(context context.Context, id string) (*Invoice, error) {
	inv, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	if inv.Status == StatusCancelled {
		return nil, apperr.Unprocessable("A cancelled invoice cannot be paid")
	}

	now := time.Now().UTC()
	inv.Status = StatusPaid
	inv.PaidAt = &now

	if err := service.repo.Update(context, inv); err != nil {
		return nil, err
	}

	service.logger.Info("invoice_paid", slog.String("invoice_id", id))
	return inv, nil
}

// CancelInvoice voids an unpaid invoice.
func (service *Service) CancelInvoice(context context.Context, id string) (*Invoice, error) {
	inv, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	if inv.Status == StatusPaid {
		return nil, apperr.Unprocessable("A paid invoice cannot be cancelled")
	}

	inv.Status = StatusCancelled
	if err := service.repo.Update(context, inv); err != nil {
		return nil, err
	}

	service.logger.Warn("invoice_cancelled", slog.String("invoice_id", id))
	return inv, nil
}

// DeleteInvoice soft-deletes an invoice. Intended for discarded drafts.
func (service *Service) DeleteInvoice(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("invoice_deleted", slog.String("invoice_id", id))
	return nil
}

// invoiceNumber derives a human-facing number from the issue year and the
// time-sortable invoice ID.
func invoiceNumber(id string) string {
	short := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("CHM-%d-%s", time.Now().Year(), short)
}
