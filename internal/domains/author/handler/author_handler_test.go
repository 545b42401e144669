package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/author"
)

// serviceStub returns canned results so handler tests only cover HTTP
// translation.
type serviceStub struct {
	detail    *author.DetailPage
	detailErr error
	write     *author.WriteResult
	del       *author.DeleteResult
}

func (s *serviceStub) List(ctx context.Context) (*author.ListPage, error) {
	return &author.ListPage{Page: "Authors"}, nil
}

func (s *serviceStub) Detail(ctx context.Context, id uuid.UUID) (*author.DetailPage, error) {
	return s.detail, s.detailErr
}

func (s *serviceStub) CreateForm(ctx context.Context) (*author.FormPage, error) {
	return &author.FormPage{Page: "Add New Author"}, nil
}

func (s *serviceStub) Create(ctx context.Context, in author.FormInput) (*author.WriteResult, error) {
	return s.write, nil
}

func (s *serviceStub) UpdateForm(ctx context.Context, id uuid.UUID) (*author.FormPage, error) {
	return &author.FormPage{}, nil
}

func (s *serviceStub) Update(ctx context.Context, id uuid.UUID, in author.FormInput) (*author.WriteResult, error) {
	return s.write, nil
}

func (s *serviceStub) DeleteForm(ctx context.Context, id uuid.UUID) (*author.DeletePage, error) {
	return &author.DeletePage{}, nil
}

func (s *serviceStub) Delete(ctx context.Context, id uuid.UUID) (*author.DeleteResult, error) {
	return s.del, nil
}

func setupRouter(h *AuthorHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/catalog/author/:id", h.Detail)
	r.POST("/catalog/author/create", h.Create)
	r.POST("/catalog/author/:id/delete", h.Delete)
	return r
}

func TestAuthorHandler_Detail(t *testing.T) {
	id := uuid.New()
	svc := &serviceStub{
		detail: &author.DetailPage{
			Page:   "Austen, Jane",
			Title:  "Local Library",
			Author: &author.Response{ID: id, Name: "Austen, Jane"},
		},
	}
	r := setupRouter(NewAuthorHandler(svc))

	t.Run("renders the detail page", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/catalog/author/"+id.String(), nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success bool   `json:"success"`
			Page    string `json:"page"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "author_detail", body.Page)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/catalog/author/not-a-uuid", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps not found", func(t *testing.T) {
		missing := setupRouter(NewAuthorHandler(&serviceStub{detailErr: author.ErrAuthorNotFound}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/catalog/author/"+uuid.NewString(), nil)
		missing.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthorHandler_Create(t *testing.T) {
	t.Run("committed write returns 201", func(t *testing.T) {
		svc := &serviceStub{
			write: &author.WriteResult{Author: &author.Response{ID: uuid.New(), Name: "Austen, Jane"}},
		}
		r := setupRouter(NewAuthorHandler(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/catalog/author/create",
			strings.NewReader(`{"first_name": "Jane", "last_name": "Austen"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejected write returns 422 with the form", func(t *testing.T) {
		svc := &serviceStub{
			write: &author.WriteResult{
				Form: &author.FormPage{
					Page:   "Add New Author",
					Errors: map[string]string{"first_name": "First Name must be specified"},
				},
			},
		}
		r := setupRouter(NewAuthorHandler(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/catalog/author/create",
			strings.NewReader(`{"last_name": "Austen"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "First Name must be specified")
	})
}

func TestAuthorHandler_Delete(t *testing.T) {
	t.Run("blocked delete returns 409", func(t *testing.T) {
		svc := &serviceStub{
			del: &author.DeleteResult{
				Blocked: &author.DeletePage{
					Page:  "Delete Austen, Jane",
					Books: []author.BookSummary{{ID: uuid.New(), Title: "Emma"}},
				},
			},
		}
		r := setupRouter(NewAuthorHandler(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/catalog/author/"+uuid.NewString()+"/delete", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Emma")
	})

	t.Run("successful delete returns 200", func(t *testing.T) {
		svc := &serviceStub{del: &author.DeleteResult{Deleted: true}}
		r := setupRouter(NewAuthorHandler(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/catalog/author/"+uuid.NewString()+"/delete", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
