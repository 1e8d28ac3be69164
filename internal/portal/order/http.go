package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/champastudio/champa/internal/platform/constants"
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

// RegisterRoutes mounts the order endpoints. Placing an order is public so
// visitors can submit without an account; management is admin only.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public order form
	router.Post("/", handler.placeOrder)

	// Signed-in clients see their own orders
	router.Group(func(clientRoute chi.Router) {
		clientRoute.Use(middleware.RequireAuth)

		clientRoute.Get("/mine", handler.listMyOrders)
	})

	// Admin triage
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAuth, middleware.GuardRole(sec.RoleAdmin))

		adminRoute.Get("/", handler.listOrders)
		adminRoute.Get("/{id}", handler.getOrder)
		adminRoute.Patch("/{id}/status", handler.updateStatus)
	})
}

// placeOrderRequest is the public order form payload.
type placeOrderRequest struct {
	ServiceID string  `json:"service_id"`
	PackageID *string `json:"package_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Note      string  `json:"note"`
}

/*
POST /api/v1/orders.

Description: Accepts an order form submission from a visitor or a signed-in
client. An Idempotency-Key header makes retries safe: replays return the
original order with 200 instead of 201.

Request:
  - body: placeOrderRequest
  - header: Idempotency-Key (optional)

Response:
  - 201: Order: Newly created order
  - 200: Order: Original order, when the key was already claimed
  - 400: Validation: Invalid form fields
*/
func (handler *Handler) placeOrder(writer http.ResponseWriter, request *http.Request) {
	var input placeOrderRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	placed, created, err := handler.service.PlaceOrder(request.Context(), requestutil.Claims(request), PlaceOrderInput{
		ServiceID:      input.ServiceID,
		PackageID:      input.PackageID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Note:           input.Note,
		IdempotencyKey: request.Header.Get(constants.HeaderIdempotency),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if created {
		respond.Created(writer, placed)
		return
	}
	respond.OK(writer, placed)
}

func (handler *Handler) listMyOrders(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	orders, err := handler.service.ListMyOrders(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, orders)
}

func (handler *Handler) listOrders(writer http.ResponseWriter, request *http.Request) {
	orders, err := handler.service.ListOrders(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, orders)
}

func (handler *Handler) getOrder(writer http.ResponseWriter, request *http.Request) {
	ord, err := handler.service.GetOrder(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ord)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	var input updateStatusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ord, err := handler.service.UpdateStatus(request.Context(), requestutil.ID(request, "id"), input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ord)
}
