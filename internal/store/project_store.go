package store

import (
	"context"
	"encoding/json"
	"fmt"

	supa "github.com/supabase-community/supabase-go"

	"portfolio/admin-backend/models"
)

const projectsTable = "projects"

// ProjectStore is the typed record-store client for project entities.
type ProjectStore struct {
	db *supa.Client
}

// NewProjectStore creates a ProjectStore on top of an initialized supabase client.
func NewProjectStore(db *supa.Client) *ProjectStore {
	return &ProjectStore{db: db}
}

// Create inserts a new project record and returns the stored representation,
// including the id assigned by the database.
func (s *ProjectStore) Create(ctx context.Context, doc map[string]interface{}) (*models.Project, error) {
	body, _, err := s.db.From(projectsTable).
		Insert(doc, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("inserting project: %w", err)
	}

	var results []models.Project
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decoding inserted project: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("insert returned no project representation")
	}
	return &results[0], nil
}

// FindByID fetches a single project, returning ErrRecordNotFound if the id
// does not resolve.
func (s *ProjectStore) FindByID(ctx context.Context, id string) (*models.Project, error) {
	body, _, err := s.db.From(projectsTable).
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching project %s: %w", id, err)
	}

	var results []models.Project
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decoding project %s: %w", id, err)
	}
	if len(results) == 0 {
		return nil, ErrRecordNotFound
	}
	return &results[0], nil
}

// FindAll returns every project record.
func (s *ProjectStore) FindAll(ctx context.Context) ([]models.Project, error) {
	body, _, err := s.db.From(projectsTable).
		Select("*", "", false).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}

	var results []models.Project
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decoding projects: %w", err)
	}
	return results, nil
}

// UpdateByID applies the patch to a single project. Only the keys present in
// the patch are written; absent attributes keep their stored values. Returns
// ErrRecordNotFound when no row matched the id.
func (s *ProjectStore) UpdateByID(ctx context.Context, id string, patch map[string]interface{}) (*models.Project, error) {
	body, _, err := s.db.From(projectsTable).
		Update(patch, "representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("updating project %s: %w", id, err)
	}

	var results []models.Project
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decoding updated project %s: %w", id, err)
	}
	if len(results) == 0 {
		return nil, ErrRecordNotFound
	}
	return &results[0], nil
}

// DeleteByID removes a project record. Callers that need not-found semantics
// fetch the record first; the delete itself only reports store failures.
func (s *ProjectStore) DeleteByID(ctx context.Context, id string) error {
	_, _, err := s.db.From(projectsTable).
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}
	return nil
}
