package project

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/champastudio/champa/internal/platform/constants"
	"github.com/champastudio/champa/internal/platform/middleware"
	requestutil "github.com/champastudio/champa/internal/platform/request"
	"github.com/champastudio/champa/internal/platform/respond"
	"github.com/champastudio/champa/internal/platform/sec"
	"github.com/champastudio/champa/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the project endpoints. The whole group sits behind
// RequireAuth; write operations on the project itself are admin only.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Visible to the owning client and to admins
	router.Get("/", handler.listProjects)
	router.Get("/{id}", handler.getProject)
	router.Get("/{id}/messages", handler.listMessages)
	router.Post("/{id}/messages", handler.postMessage)
	router.Get("/{id}/files", handler.listFiles)
	router.Post("/{id}/files", handler.uploadFile)
	router.Delete("/{id}/files/{fileID}", handler.deleteFile)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.GuardRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createProject)
		adminRoute.Patch("/{id}", handler.updateProject)
		adminRoute.Patch("/{id}/status", handler.updateStatus)
		adminRoute.Delete("/{id}", handler.deleteProject)
	})
}

// # Project Endpoints

func (handler *Handler) listProjects(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	projects, err := handler.service.ListProjects(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, projects)
}

func (handler *Handler) getProject(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	proj, err := handler.service.GetProject(request.Context(), claims, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, proj)
}

// createProjectRequest is the admin payload for opening an engagement.
type createProjectRequest struct {
	ClientID    string     `json:"client_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
}

func (handler *Handler) createProject(writer http.ResponseWriter, request *http.Request) {
	var input createProjectRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	proj, err := handler.service.CreateProject(request.Context(), CreateProjectInput{
		ClientID:    input.ClientID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, proj)
}

type updateProjectRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
}

func (handler *Handler) updateProject(writer http.ResponseWriter, request *http.Request) {
	var input updateProjectRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	proj, err := handler.service.UpdateProject(request.Context(), requestutil.ID(request, "id"), UpdateProjectInput{
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, proj)
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

	proj, err := handler.service.UpdateStatus(request.Context(), requestutil.ID(request, "id"), input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, proj)
}

func (handler *Handler) deleteProject(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteProject(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Message Endpoints

func (handler *Handler) listMessages(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	messages, err := handler.service.ListMessages(request.Context(), claims, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, messages)
}

type postMessageRequest struct {
	Body string `json:"body"`
}

func (handler *Handler) postMessage(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input postMessageRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.service.PostMessage(request.Context(), claims, requestutil.ID(request, "id"), input.Body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, message)
}

// # File Endpoints

func (handler *Handler) listFiles(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	files, err := handler.service.ListFiles(request.Context(), claims, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, files)
}

/*
POST /api/v1/projects/{id}/files.

Description: Accepts one multipart file under the "file" form field. The
declared size is checked against the upload ceiling before the object store
is contacted.

Response:
  - 201: FileView: Stored file with download URL
  - 400: Validation: Missing file or bad form
  - 413: PayloadTooLarge: File exceeds the upload ceiling
*/
func (handler *Handler) uploadFile(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Cap what the multipart reader is willing to buffer.
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadBytes+constants.MaxMultipartMemory)
	if err := request.ParseMultipartForm(constants.MaxMultipartMemory); err != nil {
		respond.Error(writer, request, validate.RequiredError(FieldFile, "A multipart file upload is required"))
		return
	}

	file, header, err := request.FormFile(FieldFile)
	if err != nil {
		respond.Error(writer, request, validate.RequiredError(FieldFile, "A multipart file upload is required"))
		return
	}
	defer file.Close()

	view, err := handler.service.UploadFile(request.Context(), claims, requestutil.ID(request, "id"), UploadFileInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		SizeBytes:   header.Size,
		Body:        file,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, view)
}

func (handler *Handler) deleteFile(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.DeleteFile(request.Context(), claims,
		requestutil.ID(request, "id"), requestutil.ID(request, "fileID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
