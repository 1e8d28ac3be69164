// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

package contact

import (
	"net/http"

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

// RegisterRoutes mounts the contact endpoints. Submitting is public, the
// inbox is admin only.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.submit)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAuth, middleware.GuardRole(sec.RoleAdmin))

		adminRoute.Get("/", handler.listMessages)
		adminRoute.Get("/{id}", handler.getMessage)
		adminRoute.Patch("/{id}/status", handler.updateStatus)
	})
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input submitRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.service.Submit(request.Context(), SubmitInput{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
		Lang:    requestutil.Lang(request),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, message)
}

func (handler *Handler) listMessages(writer http.ResponseWriter, request *http.Request) {
	messages, err := handler.service.ListMessages(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, messages)
}

func (handler *Handler) getMessage(writer http.ResponseWriter, request *http.Request) {
	message, err := handler.service.GetMessage(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, message)
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

	message, err := handler.service.UpdateStatus(request.Context(), requestutil.ID(request, "id"), input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, message)
}
