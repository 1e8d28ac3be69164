package invoice_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champastudio/champa/internal/platform/apperr"
	"github.com/champastudio/champa/internal/platform/sec"
	"github.com/champastudio/champa/internal/portal/invoice"
	"github.com/champastudio/champa/pkg/pointer"
)

// fakeRepository is an in-memory Repository with an update counter.
type fakeRepository struct {
	invoices    []*invoice.Invoice
	createCalls int
	updateCalls int
}

func (f *fakeRepository) ListByClient(_ context.Context, clientID string) ([]*invoice.Invoice, error) {
	var owned []*invoice.Invoice
	for _, inv := range f.invoices {
		if inv.ClientID == clientID {
			owned = append(owned, inv)
		}
	}
	return owned, nil
}

func (f *fakeRepository) ListAll(_ context.Context) ([]*invoice.Invoice, error) {
	return f.invoices, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*invoice.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, apperr.NotFound("Invoice")
}

func (f *fakeRepository) Create(_ context.Context, inv *invoice.Invoice) error {
	f.createCalls++
	f.invoices = append(f.invoices, inv)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, _ *invoice.Invoice) error {
	f.updateCalls++
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, _ string) error { return nil }

func adminClaims() *sec.AuthClaims {
	return &sec.AuthClaims{UserID: "admin-1", Role: string(sec.RoleAdmin)}
}

func clientClaims(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Role: string(sec.RoleClient)}
}

/*
TestService_GetInvoice_ClientViewStamps marks a sent invoice as viewed on
the client's first read, and only on the first.
*/
func TestService_GetInvoice_ClientViewStamps(t *testing.T) {
	repo := &fakeRepository{invoices: []*invoice.Invoice{
		{ID: "i1", Number: "CHM-2026-0001", ClientID: "c1", AmountLAK: 4_500_000, Status: invoice.StatusSent},
	}}
	service := invoice.NewService(repo, slog.Default())

	inv, err := service.GetInvoice(context.Background(), clientClaims("c1"), "i1")
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusViewed, inv.Status)
	assert.NotNil(t, inv.ViewedAt)
	assert.Equal(t, 1, repo.updateCalls)

	// Second read does not rewrite the stamp.
	_, err = service.GetInvoice(context.Background(), clientClaims("c1"), "i1")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)
}

/*
TestService_GetInvoice_AdminReadIsSilent proves back-office reads never
change invoice state.
*/
func TestService_GetInvoice_AdminReadIsSilent(t *testing.T) {
	repo := &fakeRepository{invoices: []*invoice.Invoice{
		{ID: "i1", ClientID: "c1", AmountLAK: 900_000, Status: invoice.StatusSent},
	}}
	service := invoice.NewService(repo, slog.Default())

	inv, err := service.GetInvoice(context.Background(), adminClaims(), "i1")
	require.NoError(t, err)
	assert.Nil(t, inv.ViewedAt)
	assert.Zero(t, repo.updateCalls)
}

/*
TestService_Visibility hides drafts and foreign invoices from clients.
*/
func TestService_Visibility(t *testing.T) {
	repo := &fakeRepository{invoices: []*invoice.Invoice{
		{ID: "i1", ClientID: "c1", AmountLAK: 100, Status: invoice.StatusSent},
		{ID: "i2", ClientID: "c1", AmountLAK: 200, Status: invoice.StatusDraft},
		{ID: "i3", ClientID: "c2", AmountLAK: 300, Status: invoice.StatusSent},
	}}
	service := invoice.NewService(repo, slog.Default())

	visible, err := service.ListInvoices(context.Background(), clientClaims("c1"))
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "i1", visible[0].ID)

	_, err = service.GetInvoice(context.Background(), clientClaims("c1"), "i2")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	_, err = service.GetInvoice(context.Background(), clientClaims("c1"), "i3")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_OverdueIsDerived shows a sent invoice past its due date as
overdue without persisting a status change.
*/
func TestService_OverdueIsDerived(t *testing.T) {
	repo := &fakeRepository{invoices: []*invoice.Invoice{
		{
			ID: "i1", ClientID: "c1", AmountLAK: 100, Status: invoice.StatusSent,
			DueDate: pointer.To(time.Now().Add(-48 * time.Hour)),
		},
	}}
	service := invoice.NewService(repo, slog.Default())

	invoices, err := service.ListInvoices(context.Background(), adminClaims())
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, invoice.StatusOverdue, invoices[0].Status)
	assert.Zero(t, repo.updateCalls)
}

/*
TestService_CreateInvoice_ValidationBlocksStore rejects a non-positive
amount before any repository call, and generates a number when absent.
*/
func TestService_CreateInvoice_ValidationBlocksStore(t *testing.T) {
	repo := &fakeRepository{}
	service := invoice.NewService(repo, slog.Default())

	_, err := service.CreateInvoice(context.Background(), invoice.CreateInvoiceInput{
		ClientID:  "0191e3a0-0000-7000-8000-000000000001",
		AmountLAK: 0,
	})
	require.Error(t, err)
	assert.Zero(t, repo.createCalls)

	inv, err := service.CreateInvoice(context.Background(), invoice.CreateInvoiceInput{
		ClientID:  "0191e3a0-0000-7000-8000-000000000001",
		AmountLAK: 2_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusDraft, inv.Status)
	assert.Contains(t, inv.Number, "CHM-")
	assert.Equal(t, 1, repo.createCalls)
}

/*
TestService_Lifecycle walks draft to sent to paid and blocks the invalid
transitions.
*/
func TestService_Lifecycle(t *testing.T) {
	repo := &fakeRepository{invoices: []*invoice.Invoice{
		{ID: "i1", ClientID: "c1", AmountLAK: 100, Status: invoice.StatusDraft},
	}}
	service := invoice.NewService(repo, slog.Default())

	sent, err := service.SendInvoice(context.Background(), "i1")
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusSent, sent.Status)
	assert.NotNil(t, sent.IssuedAt)

	// Sending twice is rejected.
	_, err = service.SendInvoice(context.Background(), "i1")
	require.Error(t, err)

	paid, err := service.MarkPaid(context.Background(), "i1")
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)

	// A paid invoice cannot be cancelled.
	_, err = service.CancelInvoice(context.Background(), "i1")
	require.Error(t, err)
}
