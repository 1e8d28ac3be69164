package offering

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/champastudio/champa/internal/platform/middleware"
	requestutil "github.com/champastudio/champa/internal/platform/request"
	"github.com/champastudio/champa/internal/platform/respond"
	"github.com/champastudio/champa/internal/platform/sec"
	"github.com/champastudio/champa/pkg/query"
	"github.com/champastudio/champa/pkg/slice"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterServiceRoutes mounts the /services surface.
func (handler *Handler) RegisterServiceRoutes(router chi.Router) {
	router.Get("/", handler.listOfferings)
	router.Get("/{slug}", handler.getOffering)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.GuardRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createOffering)
		adminRoute.Patch("/{id}", handler.updateOffering)
		adminRoute.Delete("/{id}", handler.deleteOffering)
	})
}

// RegisterPackageRoutes mounts the /packages surface.
func (handler *Handler) RegisterPackageRoutes(router chi.Router) {
	router.Get("/", handler.listPackages)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.GuardRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createPackage)
		adminRoute.Patch("/{id}", handler.updatePackage)
		adminRoute.Delete("/{id}", handler.deletePackage)
	})
}

func (handler *Handler) listOfferings(writer http.ResponseWriter, request *http.Request) {
	lang := requestutil.Lang(request)

	offerings, err := handler.service.ListOfferings(request.Context(), query.FilterSpec(request), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := slice.Map(offerings, func(o *Offering) *OfferingView { return o.Render(lang) })
	respond.OK(writer, views)
}

func (handler *Handler) getOffering(writer http.ResponseWriter, request *http.Request) {
	offeringSlug := requestutil.ID(request, "slug")

	offering, err := handler.service.GetOffering(request.Context(), offeringSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, offering.Render(requestutil.Lang(request)))
}

func (handler *Handler) createOffering(writer http.ResponseWriter, request *http.Request) {
	var input Offering
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateOffering(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateOffering(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Offering
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateOffering(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteOffering(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteOffering(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listPackages(writer http.ResponseWriter, request *http.Request) {
	lang := requestutil.Lang(request)

	packages, err := handler.service.ListPackages(request.Context(), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := slice.Map(packages, func(p *Package) *PackageView { return p.Render(lang) })
	respond.OK(writer, views)
}

func (handler *Handler) createPackage(writer http.ResponseWriter, request *http.Request) {
	var input Package
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePackage(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePackage(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Package
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePackage(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deletePackage(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeletePackage(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
