package portfolio

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/champastudio/champa/internal/platform/middleware"
	requestutil "github.com/champastudio/champa/internal/platform/request"
	"github.com/champastudio/champa/internal/platform/respond"
	"github.com/champastudio/champa/internal/platform/sec"
	"github.com/champastudio/champa/pkg/pagination"
	"github.com/champastudio/champa/pkg/query"
	"github.com/champastudio/champa/pkg/slice"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listItems)
	router.Get("/featured", handler.featuredItems)
	router.Get("/{slug}", handler.getItem)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.GuardRole(sec.RoleAdmin))

		adminRoute.Get("/all", handler.listAll)
		adminRoute.Post("/", handler.createItem)
		adminRoute.Patch("/{id}", handler.updateItem)
		adminRoute.Post("/{id}/publish", handler.publishItem)
		adminRoute.Delete("/{id}", handler.deleteItem)
	})
}

func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	lang := requestutil.Lang(request)
	spec := query.FilterSpec(request)
	paginationParams := pagination.FromRequest(request)

	items, err := handler.service.ListItems(request.Context(), spec, lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, total := pagination.Slice(items, paginationParams)
	views := slice.Map(page, func(item *Item) *View { return item.Render(lang) })

	respond.Paginated(writer, views, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) featuredItems(writer http.ResponseWriter, request *http.Request) {
	lang := requestutil.Lang(request)

	items, err := handler.service.FeaturedItems(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := slice.Map(items, func(item *Item) *View { return item.Render(lang) })
	respond.OK(writer, views)
}

func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	itemSlug := requestutil.ID(request, "slug")

	item, err := handler.service.GetItem(request.Context(), itemSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item.Render(requestutil.Lang(request)))
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	spec := query.FilterSpec(request)
	paginationParams := pagination.FromRequest(request)

	items, err := handler.service.ListAll(request.Context(), spec, requestutil.Lang(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, total := pagination.Slice(items, paginationParams)
	respond.Paginated(writer, page, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) createItem(writer http.ResponseWriter, request *http.Request) {
	var input Item
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateItem(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateItem(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Item
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateItem(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) publishItem(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	item, err := handler.service.PublishItem(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) deleteItem(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteItem(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
