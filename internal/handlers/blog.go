package handlers

import (
	"net/http"

	"blogger/internal/models"
	"blogger/internal/services"
	"blogger/internal/utils/helpers"
)

type BlogHandler struct {
	svc services.BlogService
}

func NewBlogHandler(svc services.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

// List
// @Summary      List blogs
// @Description  All blogs in id order, with comma-joined category names
// @Tags         blogs
// @Produce      json
// @Success      200  {array}   models.Blog
// @Failure      500  {object}  helpers.ErrorBody
// @Router       /api/blogs [get]
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Get
// @Summary      Get a blog
// @Tags         blogs
// @Produce      json
// @Param        id   path      int  true  "Blog ID"
// @Success      200  {object}  models.Blog
// @Failure      404  {object}  helpers.ErrorBody
// @Router       /api/blogs/{id} [get]
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		helpers.Error(w, err)
		return
	}
	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, b)
}

// Create
// @Summary      Create a blog
// @Description  Creates the blog and links its categories in one transaction. Unknown categories are created.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        body  body      models.BlogRequest  true  "Blog"
// @Success      201   {object}  models.CreateBlogResponse
// @Failure      400   {object}  helpers.ErrorBody
// @Failure      500   {object}  helpers.ErrorBody
// @Router       /api/blogs [post]
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.BlogRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, err)
		return
	}

	id, err := h.svc.Create(r.Context(), req)
	if err != nil {
		helpers.Error(w, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, models.CreateBlogResponse{
		Success: true,
		Message: "Blog created successfully",
		BlogID:  id,
	})
}

// Update
// @Summary      Update a blog
// @Description  Replaces the blog's fields and its whole category set
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Blog ID"
// @Param        body  body      models.BlogRequest  true  "Blog"
// @Success      200   {object}  helpers.MessageBody
// @Failure      400   {object}  helpers.ErrorBody
// @Failure      401   {object}  helpers.ErrorBody
// @Failure      403   {object}  helpers.ErrorBody
// @Failure      404   {object}  helpers.ErrorBody
// @Security     ApiKeyAuth
// @Router       /api/blogs/{id} [put]
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		helpers.Error(w, err)
		return
	}

	var req models.BlogRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, err)
		return
	}

	if err := h.svc.Update(r.Context(), id, req); err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.Message(w, http.StatusOK, "Blog updated successfully")
}

// Delete
// @Summary      Delete a blog
// @Tags         blogs
// @Produce      json
// @Param        id   path      int  true  "Blog ID"
// @Success      200  {object}  helpers.MessageBody
// @Failure      404  {object}  helpers.ErrorBody
// @Security     ApiKeyAuth
// @Router       /api/blogs/{id} [delete]
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		helpers.Error(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.Message(w, http.StatusOK, "Blog deleted successfully")
}
