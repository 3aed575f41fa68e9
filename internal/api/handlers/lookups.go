package handlers

import (
	"distance-matrix-service/internal/api/dto"
	"distance-matrix-service/internal/ports"
	"log"
	"net/http"
)

// LookupHandler exposes read-only lookup history endpoints.
type LookupHandler struct {
	Repo ports.LookupRepository
}

func (h *LookupHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	lookups, err := h.Repo.List(r.Context())
	if err != nil {
		log.Printf("list lookups failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLookupsResponse{
		Lookups: make([]dto.LookupResponse, 0, len(lookups)),
	}
	for _, l := range lookups {
		res.Lookups = append(res.Lookups, dto.LookupResponse{
			LookupID:    l.ID,
			Origin:      l.Origin,
			Destination: l.Destination,
			Status:      l.Status,
			ItemCount:   l.ItemCount,
			RequestedAt: l.RequestedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
