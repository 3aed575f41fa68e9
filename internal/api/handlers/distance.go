package handlers

import (
	"context"
	"distance-matrix-service/internal/adapters/distance"
	"distance-matrix-service/internal/api/dto"
	"distance-matrix-service/internal/domain"
	"distance-matrix-service/internal/ports"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"
)

type DistanceHandler struct {
	Provider ports.MatrixProvider
	Repo     ports.LookupRepository
}

// Lookup runs one distance matrix query and returns the flattened result.
// A recognized non-OK API status is still a 200 response carrying an
// explanatory message and no items; only transport and parse failures map
// to error status codes.
func (h *DistanceHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	origin := strings.TrimSpace(r.URL.Query().Get("origin"))
	destination := strings.TrimSpace(r.URL.Query().Get("destination"))
	if origin == "" || destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	res, err := h.Provider.Lookup(r.Context(), origin, destination)
	if err != nil {
		var netErr *distance.NetworkError
		var parseErr *distance.ParseError
		var malformedErr *distance.MalformedResponseError

		switch {
		case errors.As(err, &netErr):
			log.Printf("distance lookup transport failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "upstream request failed")
		case errors.As(err, &parseErr), errors.As(err, &malformedErr):
			log.Printf("distance lookup returned malformed body: %v", err)
			writeError(w, r, http.StatusBadGateway, "upstream response could not be parsed")
		default:
			log.Printf("distance lookup failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.record(r.Context(), origin, destination, res)

	items := make([]dto.MatrixItemResponse, 0, len(res.Items))
	for _, item := range res.Items {
		items = append(items, dto.MatrixItemResponse{
			Origin:        item.Origin,
			Destination:   item.Destination,
			DistanceText:  item.DistanceText,
			DurationText:  item.DurationText,
			ElementStatus: string(item.ElementStatus),
		})
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		Status:  string(res.Status),
		Message: res.Message,
		Items:   items,
	})
}

// record stores the lookup outcome. History is best-effort and must never
// fail the request.
func (h *DistanceHandler) record(ctx context.Context, origin, destination string, res domain.MatrixResponse) {
	if h.Repo == nil {
		return
	}

	lookup := &domain.Lookup{
		Origin:      origin,
		Destination: destination,
		Status:      string(res.Status),
		ItemCount:   len(res.Items),
		RequestedAt: time.Now().UTC(),
	}
	if err := h.Repo.Record(ctx, lookup); err != nil {
		log.Printf("lookup history write failed: %v", err)
	}
}
