package handlers

import (
	"net/http"

	"blogger/internal/models"
	"blogger/internal/services"
	"blogger/internal/utils/helpers"
)

type AdHandler struct {
	svc services.AdService
}

func NewAdHandler(svc services.AdService) *AdHandler {
	return &AdHandler{svc: svc}
}

// List
// @Summary      List ads
// @Tags         ads
// @Produce      json
// @Success      200  {array}  models.Ad
// @Security     ApiKeyAuth
// @Router       /api/ads [get]
func (h *AdHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// ListByVendor
// @Summary      List a vendor's ads
// @Tags         ads
// @Produce      json
// @Param        vendorId  path     int  true  "Vendor ID"
// @Success      200       {array}  models.Ad
// @Security     ApiKeyAuth
// @Router       /api/ads/vendor/{vendorId} [get]
func (h *AdHandler) ListByVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, err := pathID(r, "vendorId")
	if err != nil {
		helpers.Error(w, err)
		return
	}
	list, err := h.svc.ListByVendor(r.Context(), vendorID)
	if err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// SaveAll
// @Summary      Replace a vendor's ads
// @Description  Deletes every ad of the vendor and inserts adEntries in order. An empty array clears them.
// @Tags         ads
// @Accept       json
// @Produce      json
// @Param        body  body      models.SaveAdsRequest  true  "Vendor and ad entries"
// @Success      201   {object}  helpers.MessageBody
// @Failure      400   {object}  helpers.ErrorBody
// @Failure      404   {object}  helpers.ErrorBody
// @Failure      409   {object}  helpers.ErrorBody
// @Security     ApiKeyAuth
// @Router       /api/ads [post]
func (h *AdHandler) SaveAll(w http.ResponseWriter, r *http.Request) {
	var req models.SaveAdsRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.Error(w, err)
		return
	}
	if err := h.svc.SaveAll(r.Context(), req); err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.Message(w, http.StatusCreated, "Ads saved successfully")
}

// Delete
// @Summary      Delete an ad
// @Tags         ads
// @Produce      json
// @Param        id   path      int  true  "Ad ID"
// @Success      200  {object}  helpers.MessageBody
// @Failure      404  {object}  helpers.ErrorBody
// @Security     ApiKeyAuth
// @Router       /api/ads/{id} [delete]
func (h *AdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		helpers.Error(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		helpers.Error(w, err)
		return
	}
	helpers.Message(w, http.StatusOK, "Ad deleted successfully")
}
