package handlers

import (
	"net/http"

	"blogger/internal/models"
	"blogger/internal/services"
	"blogger/internal/utils/helpers"
)

type VendorHandler struct {
	svc services.VendorService
}

func NewVendorHandler(svc services.VendorService) *VendorHandler {
	return &VendorHandler{svc: svc}
}

// List
// @Summary      List vendors
// @Tags         vendors
// @Produce      json
// @Success      200  {array}   models.Vendor
// @Security     ApiKeyAuth
// @Router       /api/vendors [get]
func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Get
// @Summary      Get a vendor
// @Tags         vendors
// @Produce      json
// @Param        id   path      int  true  "Vendor ID"
// @Success      200  {object}  models.Vendor
// @Failure      404  {object}  helpers.ErrorBody
// @Security     ApiKeyAuth
// @Router       /api/vendors/{id} [get]
func (h *VendorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		helpers.Error(w, err)
		return
	}
	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, v)
}

// Create
// @Summary      Create a vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        body  body      models.VendorRequest  true  "Vendor"
// @Success      201   {object}  models.Vendor
// @Failure      400   {object}  helpers.ErrorBody
// @Failure      409   {object}  helpers.ErrorBody
// @Security     ApiKeyAuth
// @Router       /api/vendors [post]
func (h *VendorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.VendorRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, err)
		return
	}
	v, err := h.svc.Create(r.Context(), req)
	if err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, v)
}

// Update
// @Summary      Update a vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Vendor ID"
// @Param        body  body      models.VendorRequest  true  "Vendor"
// @Success      200   {object}  models.Vendor
// @Failure      404   {object}  helpers.ErrorBody
// @Failure      409   {object}  helpers.ErrorBody
// @Security     ApiKeyAuth
// @Router       /api/vendors/{id} [put]
func (h *VendorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		helpers.Error(w, err)
		return
	}
	var req models.VendorRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, err)
		return
	}
	v, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, v)
}

// Delete
// @Summary      Delete a vendor
// @Description  Also removes every ad of the vendor
// @Tags         vendors
// @Produce      json
// @Param        id   path      int  true  "Vendor ID"
// @Success      200  {object}  helpers.MessageBody
// @Failure      404  {object}  helpers.ErrorBody
// @Security     ApiKeyAuth
// @Router       /api/vendors/{id} [delete]
func (h *VendorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		helpers.Error(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.Message(w, http.StatusOK, "Vendor deleted successfully")
}
