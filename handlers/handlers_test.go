package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"portfolio/admin-backend/apperrors"
	"portfolio/admin-backend/config"
	"portfolio/admin-backend/internal/assetstore"
	"portfolio/admin-backend/internal/store"
	"portfolio/admin-backend/models"
)

// fakeAssetStore records upload/destroy calls in order so tests can assert
// the asset-and-record synchronization sequence.
type fakeAssetStore struct {
	ops        []string
	uploadErr  error
	destroyErr error
	counter    int
}

func (f *fakeAssetStore) Upload(ctx context.Context, localPath, namespace string) (*assetstore.UploadResult, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.counter++
	objectID := fmt.Sprintf("%s/object-%d", namespace, f.counter)
	f.ops = append(f.ops, "upload:"+objectID)
	return &assetstore.UploadResult{
		ObjectID: objectID,
		URL:      "https://assets.test/" + objectID,
	}, nil
}

func (f *fakeAssetStore) Destroy(ctx context.Context, objectID string) error {
	if f.destroyErr != nil {
		return f.destroyErr
	}
	f.ops = append(f.ops, "destroy:"+objectID)
	return nil
}

// fakeProjectStore is an in-memory stand-in for the projects table.
type fakeProjectStore struct {
	records        map[string]models.Project
	createErr      error
	updateErr      error
	vanishOnUpdate bool
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{records: make(map[string]models.Project)}
}

func bannerFromDoc(doc map[string]interface{}) models.Banner {
	if result, ok := doc["project_banner"].(*assetstore.UploadResult); ok {
		return models.Banner{ObjectID: result.ObjectID, URL: result.URL}
	}
	return models.Banner{}
}

func stringField(doc map[string]interface{}, key string) string {
	if value, ok := doc[key].(string); ok {
		return value
	}
	return ""
}

func (f *fakeProjectStore) Create(ctx context.Context, doc map[string]interface{}) (*models.Project, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	project := models.Project{
		ID:           uuid.New(),
		Title:        stringField(doc, "title"),
		Description:  stringField(doc, "description"),
		GitRepoLink:  stringField(doc, "git_repo_link"),
		ProjectLink:  stringField(doc, "project_link"),
		Stack:        stringField(doc, "stack"),
		Technologies: stringField(doc, "technologies"),
		Deployed:     stringField(doc, "deployed"),
		Banner:       bannerFromDoc(doc),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.records[project.ID.String()] = project
	return &project, nil
}

func (f *fakeProjectStore) FindByID(ctx context.Context, id string) (*models.Project, error) {
	project, ok := f.records[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	return &project, nil
}

func (f *fakeProjectStore) FindAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	for _, project := range f.records {
		projects = append(projects, project)
	}
	return projects, nil
}

func (f *fakeProjectStore) UpdateByID(ctx context.Context, id string, patch map[string]interface{}) (*models.Project, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.vanishOnUpdate {
		return nil, store.ErrRecordNotFound
	}
	project, ok := f.records[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	for key, value := range patch {
		text, isString := value.(string)
		if !isString {
			continue
		}
		switch key {
		case "title":
			project.Title = text
		case "description":
			project.Description = text
		case "git_repo_link":
			project.GitRepoLink = text
		case "project_link":
			project.ProjectLink = text
		case "stack":
			project.Stack = text
		case "technologies":
			project.Technologies = text
		case "deployed":
			project.Deployed = text
		}
	}
	if result, ok := patch["project_banner"].(*assetstore.UploadResult); ok {
		project.Banner = models.Banner{ObjectID: result.ObjectID, URL: result.URL}
	}
	project.UpdatedAt = time.Now()
	f.records[id] = project
	return &project, nil
}

func (f *fakeProjectStore) DeleteByID(ctx context.Context, id string) error {
	delete(f.records, id)
	return nil
}

// fakeMessageStore is an in-memory stand-in for the messages table.
type fakeMessageStore struct {
	records   map[string]models.Message
	createErr error
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{records: make(map[string]models.Message)}
}

func (f *fakeMessageStore) Create(ctx context.Context, doc map[string]interface{}) (*models.Message, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	message := models.Message{
		ID:         uuid.New(),
		SenderName: stringField(doc, "sender_name"),
		Subject:    stringField(doc, "subject"),
		Message:    stringField(doc, "message"),
		CreatedAt:  time.Now(),
	}
	f.records[message.ID.String()] = message
	return &message, nil
}

func (f *fakeMessageStore) FindByID(ctx context.Context, id string) (*models.Message, error) {
	message, ok := f.records[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	return &message, nil
}

func (f *fakeMessageStore) FindAll(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	for _, message := range f.records {
		messages = append(messages, message)
	}
	return messages, nil
}

func (f *fakeMessageStore) DeleteByID(ctx context.Context, id string) error {
	delete(f.records, id)
	return nil
}

type testEnv struct {
	app      *fiber.App
	handler  *ApplicationHandler
	projects *fakeProjectStore
	messages *fakeMessageStore
	assets   *fakeAssetStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		AdminPassword: "hunter2",
		JWTSecret:     "test-secret",
		JWTExpiry:     time.Hour,
	}
	projects := newFakeProjectStore()
	messages := newFakeMessageStore()
	assets := &fakeAssetStore{}
	h := NewApplicationHandler(cfg, config.NewLogger("error"), projects, messages, assets)

	app := fiber.New(fiber.Config{ErrorHandler: apperrors.ErrorHandler})
	apiV1 := app.Group("/api/v1")
	apiV1.Post("/login", h.Login)
	apiV1.Post("/message/send", h.SendMessage)
	apiV1.Get("/message/getall", h.GetAllMessages)
	apiV1.Delete("/message/delete/:id", h.DeleteMessage)
	apiV1.Post("/project/add", h.AddProject)
	apiV1.Put("/project/update/:id", h.UpdateProject)
	apiV1.Delete("/project/delete/:id", h.DeleteProject)
	apiV1.Get("/project/getall", h.GetAllProjects)
	apiV1.Get("/project/get/:id", h.GetSingleProject)

	return &testEnv{app: app, handler: h, projects: projects, messages: messages, assets: assets}
}

func mustUUID() uuid.UUID {
	return uuid.New()
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

var validProjectFields = map[string]string{
	"title":         "A",
	"description":   "d",
	"git_repo_link": "g",
	"project_link":  "p",
	"stack":         "MERN",
	"technologies":  "React",
	"deployed":      "Yes",
}

func newProjectForm(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if withFile {
		fileWriter, err := writer.CreateFormFile("project_banner", "banner.png")
		require.NoError(t, err)
		_, err = fileWriter.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func doMultipart(t *testing.T, app *fiber.App, method, target string, body *bytes.Buffer, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload interface{}) *http.Response {
	t.Helper()
	var body bytes.Buffer
	require.NoError(t, json.NewEncoder(&body).Encode(payload))
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
