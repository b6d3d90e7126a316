package handlers

import (
	"github.com/go-chi/chi/v5"
)

func RegisterReceiverRoutes(r chi.Router, h *ReceiverHandler) {
	r.Post("/receiver", h.ReceiveScanResults)
}
