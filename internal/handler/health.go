package handler

import "net/http"

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "all OK", nil)
}
