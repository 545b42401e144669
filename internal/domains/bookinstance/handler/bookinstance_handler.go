package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog/internal/domains/bookinstance"
	"library-catalog/internal/shared/response"
)

type BookInstanceHandler struct {
	service bookinstance.Service
}

func NewBookInstanceHandler(svc bookinstance.Service) *BookInstanceHandler {
	return &BookInstanceHandler{service: svc}
}

// List - GET /catalog/bookinstances
func (h *BookInstanceHandler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, bookinstance.ToHTTPStatus(err), "LIST_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "bookinstance_list", page)
}

// Detail - GET /catalog/bookinstance/:id
func (h *BookInstanceHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book instance id")
		return
	}

	page, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, bookinstance.ToHTTPStatus(err), "DETAIL_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "bookinstance_detail", page)
}

// CreateForm - GET /catalog/bookinstance/create
func (h *BookInstanceHandler) CreateForm(c *gin.Context) {
	page, err := h.service.CreateForm(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Page(c, http.StatusOK, "bookinstance_form", page)
}

// Create - POST /catalog/bookinstance/create
func (h *BookInstanceHandler) Create(c *gin.Context) {
	var in bookinstance.FormInput
	if err := c.ShouldBind(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		response.ErrorResponse(c, bookinstance.ToHTTPStatus(err), "CREATE_FAILED", err.Error())
		return
	}
	if !res.Committed() {
		response.Page(c, http.StatusUnprocessableEntity, "bookinstance_form", res.Form)
		return
	}
	response.Success(c, http.StatusCreated, res.Instance)
}

// UpdateForm - GET /catalog/bookinstance/:id/update
func (h *BookInstanceHandler) UpdateForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book instance id")
		return
	}

	page, err := h.service.UpdateForm(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, bookinstance.ToHTTPStatus(err), "UPDATE_FORM_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "bookinstance_form", page)
}

// Update - POST /catalog/bookinstance/:id/update
func (h *BookInstanceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book instance id")
		return
	}

	var in bookinstance.FormInput
	if err := c.ShouldBind(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		response.ErrorResponse(c, bookinstance.ToHTTPStatus(err), "UPDATE_FAILED", err.Error())
		return
	}
	if !res.Committed() {
		response.Page(c, http.StatusUnprocessableEntity, "bookinstance_form", res.Form)
		return
	}
	response.Success(c, http.StatusOK, res.Instance)
}

// DeleteForm - GET /catalog/bookinstance/:id/delete
func (h *BookInstanceHandler) DeleteForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book instance id")
		return
	}

	page, err := h.service.DeleteForm(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, bookinstance.ToHTTPStatus(err), "DELETE_FORM_FAILED", err.Error())
		return
	}
	response.Page(c, http.StatusOK, "bookinstance_delete", page)
}

// Delete - POST /catalog/bookinstance/:id/delete
func (h *BookInstanceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book instance id")
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, bookinstance.ToHTTPStatus(err), "DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, res)
}
