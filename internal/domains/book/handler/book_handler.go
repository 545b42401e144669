package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// List - GET /catalog/books
func (h *BookHandler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, book.ToHTTPStatus(err), "LIST_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "book_list", page)
}

// Detail - GET /catalog/book/:id
func (h *BookHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	page, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, book.ToHTTPStatus(err), "DETAIL_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "book_detail", page)
}

// CreateForm - GET /catalog/book/create
func (h *BookHandler) CreateForm(c *gin.Context) {
	page, err := h.service.CreateForm(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Page(c, http.StatusOK, "book_form", page)
}

// Create - POST /catalog/book/create
func (h *BookHandler) Create(c *gin.Context) {
	var in book.FormInput
	if err := c.ShouldBind(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		response.ErrorResponse(c, book.ToHTTPStatus(err), "CREATE_FAILED", err.Error())
		return
	}
	if !res.Committed() {
		response.Page(c, http.StatusUnprocessableEntity, "book_form", res.Form)
		return
	}
	response.Success(c, http.StatusCreated, res.Book)
}

// UpdateForm - GET /catalog/book/:id/update
func (h *BookHandler) UpdateForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	page, err := h.service.UpdateForm(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, book.ToHTTPStatus(err), "UPDATE_FORM_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "book_form", page)
}

// Update - POST /catalog/book/:id/update
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var in book.FormInput
	if err := c.ShouldBind(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		response.ErrorResponse(c, book.ToHTTPStatus(err), "UPDATE_FAILED", err.Error())
		return
	}
	if !res.Committed() {
		response.Page(c, http.StatusUnprocessableEntity, "book_form", res.Form)
		return
	}
	response.Success(c, http.StatusOK, res.Book)
}

// DeleteForm - GET /catalog/book/:id/delete
func (h *BookHandler) DeleteForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	page, err := h.service.DeleteForm(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, book.ToHTTPStatus(err), "DELETE_FORM_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "book_delete", page)
}

// Delete - POST /catalog/book/:id/delete
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, book.ToHTTPStatus(err), "DELETE_FAILED", err.Error())
		return
	}
	if !res.Deleted {
		response.Page(c, http.StatusConflict, "book_delete", res.Blocked)
		return
	}
	response.Success(c, http.StatusOK, res)
}
