package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliiaycicek/My-Portfolio/internal/dto"
	"github.com/aliiaycicek/My-Portfolio/internal/http/middleware"
	"github.com/aliiaycicek/My-Portfolio/internal/mapper"
	"github.com/aliiaycicek/My-Portfolio/internal/models"
	"github.com/aliiaycicek/My-Portfolio/internal/repository"
)

type recordedEvent struct {
	name string
	data any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *fakePublisher) Publish(event string, data any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{name: event, data: data})
	return nil
}

func (p *fakePublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.events))
	for _, e := range p.events {
		names = append(names, e.name)
	}
	return names
}

func newSkillRouter(t *testing.T) (*gin.Engine, *repository.GenericRepository[models.Skill, *models.Skill], *fakePublisher) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewGenericRepository[models.Skill](repository.NewMemoryStore[models.Skill]())
	publisher := &fakePublisher{}
	handler := NewCRUDHandler[models.Skill, *models.Skill]("skill", repo, mapper.Skill, publisher)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	handler.Register(r.Group("/api/skills"), nil, nil)
	return r, repo, publisher
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeSkill(t *testing.T, w *httptest.ResponseRecorder) dto.SkillDTO {
	t.Helper()
	var out dto.SkillDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCRUDHandler_CreateThenGet(t *testing.T) {
	r, _, publisher := newSkillRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/skills", gin.H{"name": "Go", "category": "Backend"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeSkill(t, w)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "/api/skills/1", w.Header().Get("Location"))

	w = doJSON(t, r, http.MethodGet, "/api/skills/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeSkill(t, w)
	assert.Equal(t, "Go", got.Name)
	assert.Equal(t, "Backend", got.Category)

	assert.Equal(t, []string{"skill.created"}, publisher.names())
}

func TestCRUDHandler_CreateIgnoresBodyID(t *testing.T) {
	r, _, _ := newSkillRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/skills", gin.H{"id": 99, "name": "Go", "category": "Backend"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(1), decodeSkill(t, w).ID)
}

func TestCRUDHandler_CreateMissingRequiredField(t *testing.T) {
	r, _, publisher := newSkillRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/skills", gin.H{"name": "Go"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, publisher.names())
}

func TestCRUDHandler_ListOmitsDeleted(t *testing.T) {
	r, _, _ := newSkillRouter(t)

	for _, name := range []string{"Go", "SQL", "Docker"} {
		require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/skills", gin.H{"name": name, "category": "Tools"}).Code)
	}
	require.Equal(t, http.StatusNoContent, doJSON(t, r, http.MethodDelete, "/api/skills/2", nil).Code)

	w := doJSON(t, r, http.MethodGet, "/api/skills", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []dto.SkillDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Go", list[0].Name)
	assert.Equal(t, "Docker", list[1].Name)
}

func TestCRUDHandler_ListEmptyIsArray(t *testing.T) {
	r, _, _ := newSkillRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/skills", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCRUDHandler_GetMissing(t *testing.T) {
	r, _, _ := newSkillRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/skills/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCRUDHandler_InvalidID(t *testing.T) {
	r, _, _ := newSkillRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := doJSON(t, r, method, "/api/skills/abc", gin.H{"name": "Go", "category": "Backend"})
		assert.Equal(t, http.StatusBadRequest, w.Code, method)
	}
}

func TestCRUDHandler_UpdateForcesPathID(t *testing.T) {
	r, repo, publisher := newSkillRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/skills", gin.H{"name": "Go", "category": "Backend"}).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/skills", gin.H{"name": "SQL", "category": "Data"}).Code)

	w := doJSON(t, r, http.MethodPut, "/api/skills/1", gin.H{"id": 2, "name": "Golang", "category": "Backend"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), decodeSkill(t, w).ID)

	first, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Golang", first.Name)

	second, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "SQL", second.Name)

	assert.Equal(t, []string{"skill.created", "skill.created", "skill.updated"}, publisher.names())
}

func TestCRUDHandler_UpdateMissingDoesNotCreate(t *testing.T) {
	r, repo, _ := newSkillRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/skills/5", gin.H{"name": "Go", "category": "Backend"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCRUDHandler_UpdateDeleted(t *testing.T) {
	r, _, _ := newSkillRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/skills", gin.H{"name": "Go", "category": "Backend"}).Code)
	require.Equal(t, http.StatusNoContent, doJSON(t, r, http.MethodDelete, "/api/skills/1", nil).Code)

	w := doJSON(t, r, http.MethodPut, "/api/skills/1", gin.H{"name": "Go", "category": "Backend"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCRUDHandler_DeleteTwice(t *testing.T) {
	r, _, publisher := newSkillRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/api/skills", gin.H{"name": "Go", "category": "Backend"}).Code)

	assert.Equal(t, http.StatusNoContent, doJSON(t, r, http.MethodDelete, "/api/skills/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodDelete, "/api/skills/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, "/api/skills/1", nil).Code)

	assert.Equal(t, []string{"skill.created", "skill.deleted"}, publisher.names())
}

type failingRepo struct{}

var errStoreDown = errors.New("database connection refused")

func (failingRepo) GetAll(context.Context) ([]models.Skill, error) { return nil, errStoreDown }
func (failingRepo) GetByID(context.Context, int64) (models.Skill, error) {
	return models.Skill{}, errStoreDown
}
func (failingRepo) Add(context.Context, models.Skill) (models.Skill, error) {
	return models.Skill{}, errStoreDown
}
func (failingRepo) Update(context.Context, models.Skill) (models.Skill, error) {
	return models.Skill{}, errStoreDown
}
func (failingRepo) Delete(context.Context, int64) (bool, error) { return false, errStoreDown }
func (failingRepo) Exists(context.Context, int64) (bool, error) { return false, errStoreDown }

func TestCRUDHandler_StoreFailureIsMasked(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCRUDHandler[models.Skill, *models.Skill]("skill", failingRepo{}, mapper.Skill, nil)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	handler.Register(r.Group("/api/skills"), nil, nil)

	w := doJSON(t, r, http.MethodGet, "/api/skills", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")

	w = doJSON(t, r, http.MethodDelete, "/api/skills/1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCRUDHandler_ProjectListsRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewGenericRepository[models.Project](repository.NewMemoryStore[models.Project]())
	handler := NewCRUDHandler[models.Project, *models.Project]("project", repo, mapper.Project, nil)

	r := gin.New()
	handler.Register(r.Group("/api/projects"), nil, nil)

	w := doJSON(t, r, http.MethodPost, "/api/projects", gin.H{
		"name":         "Portfolio",
		"description":  "Personal site",
		"technologies": []string{"Go", "React"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.ProjectDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, []string{"Go", "React"}, created.Technologies)
	assert.NotNil(t, created.Features)
	assert.Empty(t, created.Features)
}
