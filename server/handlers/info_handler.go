package handlers

import (
	"net/http"

	services "district-server/service"
)

// InfoHandler serves the home, events, disaster and local info records.
type InfoHandler struct {
	infoService *services.DistrictInfoService
}

func NewInfoHandler(infoService *services.DistrictInfoService) *InfoHandler {
	return &InfoHandler{infoService: infoService}
}

func (h *InfoHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	home, err := h.infoService.GetHome(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, home)
}

func (h *InfoHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.infoService.GetEvents(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, events)
}

func (h *InfoHandler) GetDisaster(w http.ResponseWriter, r *http.Request) {
	disaster, err := h.infoService.GetDisaster(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, disaster)
}

func (h *InfoHandler) GetLocalInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.infoService.GetLocalInfo(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, info)
}

// GetOverview handles GET /v1/overview
func (h *InfoHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.infoService.GetOverview(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, overview)
}
