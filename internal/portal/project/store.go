package project

import "context"

// Repository is the persistence contract for projects and their sub-resources.
type Repository interface {
	// Projects
	ListByClient(context context.Context, clientID string) ([]*Project, error)
	ListAll(context context.Context) ([]*Project, error)
	GetByID(context context.Context, id string) (*Project, error)
	Create(context context.Context, project *Project) error
	Update(context context.Context, project *Project) error
	Delete(context context.Context, id string) error

	// Message thread
	ListMessages(context context.Context, projectID string) ([]*Message, error)
	CreateMessage(context context.Context, message *Message) error

	// Shared files
	ListFiles(context context.Context, projectID string) ([]*File, error)
	GetFile(context context.Context, projectID, fileID string) (*File, error)
	CreateFile(context context.Context, file *File) error
	DeleteFile(context context.Context, projectID, fileID string) error
}
