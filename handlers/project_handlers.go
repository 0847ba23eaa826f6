package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolio/admin-backend/apperrors"
	"portfolio/admin-backend/internal/store"
	"portfolio/admin-backend/utils"
)

// bannerNamespace is the storage folder holding project banner images.
const bannerNamespace = "project-banners"

// bannerFormField is the multipart field name carrying the banner file.
const bannerFormField = "project_banner"

// ProjectFields is the full set of text attributes for a project. All of them
// are mandatory on create.
type ProjectFields struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	GitRepoLink  string `json:"git_repo_link" validate:"required"`
	ProjectLink  string `json:"project_link" validate:"required"`
	Stack        string `json:"stack" validate:"required"`
	Technologies string `json:"technologies" validate:"required"`
	Deployed     string `json:"deployed" validate:"required"`
}

// projectFormValues reads the project text fields out of the multipart form.
func projectFormValues(c *fiber.Ctx) ProjectFields {
	return ProjectFields{
		Title:        utils.SanitizeInput(c.FormValue("title")),
		Description:  utils.SanitizeInput(c.FormValue("description")),
		GitRepoLink:  utils.SanitizeInput(c.FormValue("git_repo_link")),
		ProjectLink:  utils.SanitizeInput(c.FormValue("project_link")),
		Stack:        utils.SanitizeInput(c.FormValue("stack")),
		Technologies: utils.SanitizeInput(c.FormValue("technologies")),
		Deployed:     utils.SanitizeInput(c.FormValue("deployed")),
	}
}

// stageBannerFile writes the uploaded banner to a temporary local path for the
// asset store to pick up. The returned cleanup removes the staged file.
func (h *ApplicationHandler) stageBannerFile(c *fiber.Ctx, file *multipart.FileHeader) (string, func(), error) {
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("banner-%s%s", uuid.NewString(), filepath.Ext(file.Filename)))
	if err := c.SaveFile(file, tmpPath); err != nil {
		return "", nil, fmt.Errorf("staging banner file: %w", err)
	}
	return tmpPath, func() { os.Remove(tmpPath) }, nil
}

// AddProject handles POST /api/v1/project/add. A banner image is mandatory;
// the asset is uploaded first so a failed upload persists nothing.
func (h *ApplicationHandler) AddProject(c *fiber.Ctx) error {
	h.Logger.Info("Received request to add a new project")

	file, err := c.FormFile(bannerFormField)
	if err != nil {
		return apperrors.NewValidation("Project banner image required!")
	}

	fields := projectFormValues(c)
	if err := validate.Struct(fields); err != nil {
		return apperrors.NewValidation(utils.FormatValidationErrors(err))
	}

	tmpPath, cleanup, err := h.stageBannerFile(c, file)
	if err != nil {
		return apperrors.NewStore("Could not stage banner file", err)
	}
	defer cleanup()

	banner, err := h.Assets.Upload(c.Context(), tmpPath, bannerNamespace)
	if err != nil {
		h.Logger.Errorf("Banner upload failed: %v", err)
		return apperrors.NewAsset("Failed to upload project banner", err)
	}

	now := time.Now()
	doc := map[string]interface{}{
		"title":          fields.Title,
		"description":    fields.Description,
		"git_repo_link":  fields.GitRepoLink,
		"project_link":   fields.ProjectLink,
		"stack":          fields.Stack,
		"technologies":   fields.Technologies,
		"deployed":       fields.Deployed,
		"project_banner": banner,
		"created_at":     now,
		"updated_at":     now,
	}

	created, err := h.Projects.Create(c.Context(), doc)
	if err != nil {
		h.Logger.Errorf("Project insert failed after banner upload: %v", err)
		// The asset exists but its record never will; retire it so no
		// orphan object is left in storage.
		if destroyErr := h.Assets.Destroy(c.Context(), banner.ObjectID); destroyErr != nil {
			h.Logger.Warnf("Failed to remove banner %s after insert failure: %v", banner.ObjectID, destroyErr)
		}
		return apperrors.NewStore("Could not create project", err)
	}

	h.Logger.Infof("Project %s created with banner %s", created.ID, banner.ObjectID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "New Project Added!",
		"project": created,
	})
}

// UpdateProject handles PUT /api/v1/project/update/:id. Text fields are
// partial: attributes absent from the form keep their stored values. When a
// new banner file is supplied, the flow is upload-new, swap the record, then
// retire the old asset, so a failure never leaves the record pointing at a
// deleted object.
func (h *ApplicationHandler) UpdateProject(c *fiber.Ctx) error {
	projectID := c.Params("id")
	h.Logger.Infof("Received request to update project %s", projectID)

	patch := make(map[string]interface{})
	fields := projectFormValues(c)
	for key, value := range map[string]string{
		"title":         fields.Title,
		"description":   fields.Description,
		"git_repo_link": fields.GitRepoLink,
		"project_link":  fields.ProjectLink,
		"stack":         fields.Stack,
		"technologies":  fields.Technologies,
		"deployed":      fields.Deployed,
	} {
		if value != "" {
			patch[key] = value
		}
	}
	patch["updated_at"] = time.Now()

	file, err := c.FormFile(bannerFormField)
	if err != nil {
		// No replacement banner: text-only update, storage untouched.
		updated, err := h.Projects.UpdateByID(c.Context(), projectID, patch)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return apperrors.NewNotFound("Project not found!")
			}
			return apperrors.NewStore("Could not update project", err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Project Updated!",
			"project": updated,
		})
	}

	existing, err := h.Projects.FindByID(c.Context(), projectID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return apperrors.NewNotFound("Project not found!")
		}
		return apperrors.NewStore("Could not fetch project", err)
	}

	tmpPath, cleanup, err := h.stageBannerFile(c, file)
	if err != nil {
		return apperrors.NewStore("Could not stage banner file", err)
	}
	defer cleanup()

	newBanner, err := h.Assets.Upload(c.Context(), tmpPath, bannerNamespace)
	if err != nil {
		h.Logger.Errorf("Replacement banner upload failed for project %s: %v", projectID, err)
		return apperrors.NewAsset("Failed to upload project banner", err)
	}
	patch["project_banner"] = newBanner

	updated, err := h.Projects.UpdateByID(c.Context(), projectID, patch)
	if err != nil {
		// The record is gone or the store failed; the fresh asset has no
		// owner, retire it.
		if destroyErr := h.Assets.Destroy(c.Context(), newBanner.ObjectID); destroyErr != nil {
			h.Logger.Warnf("Failed to remove banner %s after update failure: %v", newBanner.ObjectID, destroyErr)
		}
		if errors.Is(err, store.ErrRecordNotFound) {
			return apperrors.NewNotFound("Project not found!")
		}
		return apperrors.NewStore("Could not update project", err)
	}

	// The record now points at the new asset; the old one is unreferenced.
	// A failed removal here leaves an orphan object, not a broken record, so
	// log it for reconciliation instead of failing the request.
	if err := h.Assets.Destroy(c.Context(), existing.Banner.ObjectID); err != nil {
		h.Logger.WithFields(map[string]interface{}{
			"project_id":      projectID,
			"orphan_asset_id": existing.Banner.ObjectID,
			"reconciliation":  "orphan_asset",
		}).Warnf("Failed to remove replaced banner: %v", err)
	}

	h.Logger.Infof("Project %s updated, banner swapped %s -> %s", projectID, existing.Banner.ObjectID, newBanner.ObjectID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Project Updated!",
		"project": updated,
	})
}

// DeleteProject handles DELETE /api/v1/project/delete/:id. The banner asset
// is removed first: if that fails the record stays intact, which is safer
// than a record pointing at a deleted asset.
func (h *ApplicationHandler) DeleteProject(c *fiber.Ctx) error {
	projectID := c.Params("id")
	h.Logger.Infof("Received request to delete project %s", projectID)

	existing, err := h.Projects.FindByID(c.Context(), projectID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return apperrors.NewNotFound("Project already deleted or not found!")
		}
		return apperrors.NewStore("Could not fetch project", err)
	}

	if err := h.Assets.Destroy(c.Context(), existing.Banner.ObjectID); err != nil {
		h.Logger.Errorf("Banner removal failed for project %s: %v", projectID, err)
		return apperrors.NewAsset("Failed to remove project banner from storage", err)
	}

	if err := h.Projects.DeleteByID(c.Context(), projectID); err != nil {
		return apperrors.NewStore("Could not delete project", err)
	}

	h.Logger.Infof("Project %s deleted along with banner %s", projectID, existing.Banner.ObjectID)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Project Deleted!",
	})
}

// GetAllProjects handles GET /api/v1/project/getall.
func (h *ApplicationHandler) GetAllProjects(c *fiber.Ctx) error {
	projects, err := h.Projects.FindAll(c.Context())
	if err != nil {
		return apperrors.NewStore("Could not retrieve projects", err)
	}

	h.Logger.Infof("Successfully fetched %d projects", len(projects))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"projects": projects,
	})
}

// GetSingleProject handles GET /api/v1/project/get/:id.
func (h *ApplicationHandler) GetSingleProject(c *fiber.Ctx) error {
	projectID := c.Params("id")

	project, err := h.Projects.FindByID(c.Context(), projectID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return apperrors.NewNotFound("Project not found!")
		}
		return apperrors.NewStore("Could not retrieve project", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"project": project,
	})
}
