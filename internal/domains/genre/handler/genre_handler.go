package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog/internal/domains/genre"
	"library-catalog/internal/shared/response"
)

type GenreHandler struct {
	service genre.Service
}

func NewGenreHandler(svc genre.Service) *GenreHandler {
	return &GenreHandler{service: svc}
}

// List - GET /catalog/genres
func (h *GenreHandler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, genre.ToHTTPStatus(err), "LIST_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "genre_list", page)
}

// Detail - GET /catalog/genre/:id
func (h *GenreHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid genre id")
		return
	}

	page, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, genre.ToHTTPStatus(err), "DETAIL_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "genre_detail", page)
}

// CreateForm - GET /catalog/genre/create
func (h *GenreHandler) CreateForm(c *gin.Context) {
	page, err := h.service.CreateForm(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Page(c, http.StatusOK, "genre_form", page)
}

// Create - POST /catalog/genre/create
func (h *GenreHandler) Create(c *gin.Context) {
	var in genre.FormInput
	if err := c.ShouldBind(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		response.ErrorResponse(c, genre.ToHTTPStatus(err), "CREATE_FAILED", err.Error())
		return
	}
	if !res.Committed() {
		response.Page(c, http.StatusUnprocessableEntity, "genre_form", res.Form)
		return
	}
	response.Success(c, http.StatusCreated, res.Genre)
}

// UpdateForm - GET /catalog/genre/:id/update
func (h *GenreHandler) UpdateForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid genre id")
		return
	}

	page, err := h.service.UpdateForm(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, genre.ToHTTPStatus(err), "UPDATE_FORM_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "genre_form", page)
}

// Update - POST /catalog/genre/:id/update
func (h *GenreHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid genre id")
		return
	}

	var in genre.FormInput
	if err := c.ShouldBind(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		response.ErrorResponse(c, genre.ToHTTPStatus(err), "UPDATE_FAILED", err.Error())
		return
	}
	if !res.Committed() {
		response.Page(c, http.StatusUnprocessableEntity, "genre_form", res.Form)
		return
	}
	response.Success(c, http.StatusOK, res.Genre)
}

// DeleteForm - GET /catalog/genre/:id/delete
func (h *GenreHandler) DeleteForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid genre id")
		return
	}

	page, err := h.service.DeleteForm(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, genre.ToHTTPStatus(err), "DELETE_FORM_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "genre_delete", page)
}

// Delete - POST /catalog/genre/:id/delete
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid genre id")
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, genre.ToHTTPStatus(err), "DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, res)
}
