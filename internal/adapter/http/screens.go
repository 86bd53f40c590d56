package httpadapter

import (
	"net/http"
	"strconv"

	"canopy-ads/internal/core/port"
)

// handleListScreens returns bookable screens. Optional `lat`, `lng` and
// `radius` (km) query parameters narrow the result to a geofence; without
// them every active screen with spare capacity is returned. `lat` and
// `lng` must be supplied together.
func (h *Handler) handleListScreens(w http.ResponseWriter, r *http.Request) {
	var (
		q     = r.URL.Query()
		query = port.ScreenQuery{}
	)

	latStr, lngStr := q.Get("lat"), q.Get("lng")
	if (latStr == "") != (lngStr == "") {
		http.Error(w, "lat and lng must be provided together", http.StatusBadRequest)
		return
	}
	if latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil || lat < -90 || lat > 90 {
			http.Error(w, "invalid lat", http.StatusBadRequest)
			return
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil || lng < -180 || lng > 180 {
			http.Error(w, "invalid lng", http.StatusBadRequest)
			return
		}
		query.CenterLat, query.CenterLng = &lat, &lng

		query.RadiusKm = 5 // default search radius in km
		if radiusStr := q.Get("radius"); radiusStr != "" {
			radius, err := strconv.ParseFloat(radiusStr, 64)
			if err != nil || radius <= 0 {
				http.Error(w, "invalid radius", http.StatusBadRequest)
				return
			}
			query.RadiusKm = radius
		}
	}

	screens, err := h.screens.ListAvailable(r.Context(), query)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toScreenResponses(screens))
}
