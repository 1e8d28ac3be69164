package invoice

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/champastudio/champa/internal/platform/middleware"
	requestutil "github.com/champastudio/champa/internal/platform/request"
	"github.com/champastudio/champa/internal/platform/respond"
	"github.com/champastudio/champa/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the invoice endpoints behind RequireAuth.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Visible to the owning client and to admins
	router.Get("/", handler.listInvoices)
	router.Get("/{id}", handler.getInvoice)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.GuardRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createInvoice)
		adminRoute.Post("/{id}/send", handler.sendInvoice)
		adminRoute.Post("/{id}/pay", handler.markPaid)
		adminRoute.Post("/{id}/cancel", handler.cancelInvoice)
		adminRoute.Delete("/{id}", handler.deleteInvoice)
	})
}

func (handler *Handler) listInvoices(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	invoices, err := handler.service.ListInvoices(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, invoices)
}

func (handler *Handler) getInvoice(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	inv, err := handler.service.GetInvoice(request.Context(), claims, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, inv)
}

// createInvoiceRequest is the admin payload for issuing a bill.
type createInvoiceRequest struct {
	Number    string     `json:"number"`
	ClientID  string     `json:"client_id"`
	ProjectID *string    `json:"project_id"`
	AmountLAK int64      `json:"amount_lak"`
	DueDate   *time.Time `json:"due_date"`
	Note      string     `json:"note"`
}

func (handler *Handler) createInvoice(writer http.ResponseWriter, request *http.Request) {
	var input createInvoiceRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	inv, err := handler.service.CreateInvoice(request.Context(), CreateInvoiceInput{
		Number:    input.Number,
		ClientID:  input.ClientID,
		ProjectID: input.ProjectID,
		AmountLAK: input.AmountLAK,
		DueDate:   input.DueDate,
		Note:      input.Note,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, inv)
}

func (handler *Handler) sendInvoice(writer http.ResponseWriter, request *http.Request) {
	inv, err := handler.service.SendInvoice(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, inv)
}

func (handler *Handler) markPaid(writer http.ResponseWriter, request *http.Request) {
	inv, err := handler.service.MarkPaid(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, inv)
}

func (handler *Handler) cancelInvoice(writer http.ResponseWriter, request *http.Request) {
	inv, err := handler.service.CancelInvoice(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, inv)
}

func (handler *Handler) deleteInvoice(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteInvoice(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
