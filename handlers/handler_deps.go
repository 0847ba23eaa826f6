package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"portfolio/admin-backend/config"
	"portfolio/admin-backend/internal/assetstore"
	"portfolio/admin-backend/models"
)

// ProjectStoreInterface defines the record-store operations handlers expect
// for project entities. This allows for decoupling and easier testing.
type ProjectStoreInterface interface {
	Create(ctx context.Context, doc map[string]interface{}) (*models.Project, error)
	FindByID(ctx context.Context, id string) (*models.Project, error)
	FindAll(ctx context.Context) ([]models.Project, error)
	UpdateByID(ctx context.Context, id string, patch map[string]interface{}) (*models.Project, error)
	DeleteByID(ctx context.Context, id string) error
}

// MessageStoreInterface defines the record-store operations handlers expect
// for contact messages.
type MessageStoreInterface interface {
	Create(ctx context.Context, doc map[string]interface{}) (*models.Message, error)
	FindByID(ctx context.Context, id string) (*models.Message, error)
	FindAll(ctx context.Context) ([]models.Message, error)
	DeleteByID(ctx context.Context, id string) error
}

// AssetStoreInterface defines the binary-object store operations handlers
// expect. The concrete implementation is provided by the assetstore package.
type AssetStoreInterface interface {
	Upload(ctx context.Context, localPath, namespace string) (*assetstore.UploadResult, error)
	Destroy(ctx context.Context, objectID string) error
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Logger   *logrus.Logger
	Config   *config.Config
	Projects ProjectStoreInterface
	Messages MessageStoreInterface
	Assets   AssetStoreInterface
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(cfg *config.Config, logger *logrus.Logger, projects ProjectStoreInterface, messages MessageStoreInterface, assets AssetStoreInterface) *ApplicationHandler {
	return &ApplicationHandler{
		Logger:   logger,
		Config:   cfg,
		Projects: projects,
		Messages: messages,
		Assets:   assets,
	}
}

var validate = validator.New()
