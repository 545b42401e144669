package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// List - GET /catalog/authors
func (h *AuthorHandler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), "LIST_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "author_list", page)
}

// Detail - GET /catalog/author/:id
func (h *AuthorHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	page, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), "DETAIL_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "author_detail", page)
}

// CreateForm - GET /catalog/author/create
func (h *AuthorHandler) CreateForm(c *gin.Context) {
	page, err := h.service.CreateForm(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Page(c, http.StatusOK, "author_form", page)
}

// Create - POST /catalog/author/create
func (h *AuthorHandler) Create(c *gin.Context) {
	var in author.FormInput
	if err := c.ShouldBind(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), "CREATE_FAILED", err.Error())
		return
	}
	if !res.Committed() {
		// Validation rejected: redisplay the form with input and errors.
		response.Page(c, http.StatusUnprocessableEntity, "author_form", res.Form)
		return
	}
	response.Success(c, http.StatusCreated, res.Author)
}

// UpdateForm - GET /catalog/author/:id/update
func (h *AuthorHandler) UpdateForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	page, err := h.service.UpdateForm(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), "UPDATE_FORM_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "author_form", page)
}

// Update - POST /catalog/author/:id/update
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	var in author.FormInput
	if err := c.ShouldBind(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), "UPDATE_FAILED", err.Error())
		return
	}
	if !res.Committed() {
		response.Page(c, http.StatusUnprocessableEntity, "author_form", res.Form)
		return
	}
	response.Success(c, http.StatusOK, res.Author)
}

// DeleteForm - GET /catalog/author/:id/delete
func (h *AuthorHandler) DeleteForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	page, err := h.service.DeleteForm(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), "DELETE_FORM_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "author_delete", page)
}

// Delete - POST /catalog/author/:id/delete
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, author.ToHTTPStatus(err), "DELETE_FAILED", err.Error())
		return
	}
	if !res.Deleted {
		// Blocked by dependents: a recoverable outcome, not a failure.
		response.Page(c, http.StatusConflict, "author_delete", res.Blocked)
		return
	}
	response.Success(c, http.StatusOK, res)
}
