package handlers

import (
	"mime/multipart"

	"github.com/sirupsen/logrus"

	"quickreel/backend/internal/catalog"
	"quickreel/backend/internal/db"
	"quickreel/backend/internal/preview"
	"quickreel/backend/models"
)

// AssetStore defines the operations handlers expect from the upload store.
// This allows for decoupling and easier testing.
// The concrete implementation is provided by internal/storage.
type AssetStore interface {
	StoreAssets(baseURL string, files []*multipart.FileHeader) (*models.UploadResult, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Logger   *logrus.Logger
	Catalog  *catalog.Catalog
	Store    AssetStore
	Selector *preview.Selector
	DB       *db.Client // nil when Supabase is not configured
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(logger *logrus.Logger, cat *catalog.Catalog, store AssetStore, selector *preview.Selector, dbClient *db.Client) *ApplicationHandler {
	return &ApplicationHandler{
		Logger:   logger,
		Catalog:  cat,
		Store:    store,
		Selector: selector,
		DB:       dbClient,
	}
}
