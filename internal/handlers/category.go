package handlers

import (
	"net/http"

	"blogger/internal/models"
	"blogger/internal/services"
	"blogger/internal/utils/helpers"
)

type CategoryHandler struct {
	svc services.CategoryService
}

func NewCategoryHandler(svc services.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   models.Category
// @Router       /api/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Create
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      models.CategoryRequest  true  "Category"
// @Success      201   {object}  models.Category
// @Failure      409   {object}  helpers.ErrorBody
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, err)
		return
	}
	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, c)
}

// Update
// @Summary      Rename a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Category ID"
// @Param        body  body      models.CategoryRequest  true  "Category"
// @Success      200   {object}  models.Category
// @Failure      404   {object}  helpers.ErrorBody
// @Failure      409   {object}  helpers.ErrorBody
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		helpers.Error(w, err)
		return
	}
	var req models.CategoryRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, err)
		return
	}
	c, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Delete
// @Summary      Delete a category
// @Tags         categories
// @Param        id   path  int  true  "Category ID"
// @Success      204
// @Failure      404  {object}  helpers.ErrorBody
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		helpers.Error(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		helpers.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
