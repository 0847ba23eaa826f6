package models

import (
	"time"

	"github.com/google/uuid"
)

// Banner references the single image asset owned by a project. ObjectID is the
// storage path relative to the bucket; URL is the public retrieval URL.
type Banner struct {
	ObjectID string `json:"object_id"`
	URL      string `json:"url"`
}

// Project represents the structure of a portfolio project in the database.
// The banner lifetime is managed by the project record: a persisted project
// always carries a banner whose object id exists in storage.
type Project struct {
	ID           uuid.UUID `json:"id,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	GitRepoLink  string    `json:"git_repo_link"`
	ProjectLink  string    `json:"project_link"`
	Stack        string    `json:"stack"`
	Technologies string    `json:"technologies"`
	Deployed     string    `json:"deployed"` // stored as text ("Yes"/"No"), not boolean
	Banner       Banner    `json:"project_banner"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
