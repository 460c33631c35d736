package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mediguide/backend/internal/application/services"
	"github.com/mediguide/backend/internal/domain/entities"
	apperrors "github.com/mediguide/backend/pkg/errors"
	"github.com/mediguide/backend/pkg/pagination"
)

// HospitalHandler handles hospital-related HTTP requests
type HospitalHandler struct {
	service *services.HospitalService
}

// NewHospitalHandler creates a new hospital handler
func NewHospitalHandler(service *services.HospitalService) *HospitalHandler {
	return &HospitalHandler{service: service}
}

// listFilters echoes the filter parameters a client sent, like the list
// response always did.
type listFilters struct {
	Specialty string `json:"specialty,omitempty"`
	Location  string `json:"location,omitempty"`
	Rating    string `json:"rating,omitempty"`
	Emergency string `json:"emergency,omitempty"`
	Insurance string `json:"insurance,omitempty"`
	Category  string `json:"category,omitempty"`
}

// ListHospitals handles GET /api/hospitals
func (h *HospitalHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := services.HospitalFilters{
		Specialty:    query.Get("specialty"),
		LocationText: query.Get("location"),
		Insurance:    query.Get("insurance"),
		Category:     entities.Category(query.Get("category")),
	}

	minRating, err := parseFloatParam(query, "rating")
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	filters.MinRating = minRating

	if raw := query.Get("emergency"); raw != "" {
		emergency, err := strconv.ParseBool(raw)
		if err != nil {
			respondWithAppError(w, apperrors.NewValidationError("invalid emergency parameter"))
			return
		}
		filters.Emergency = &emergency
	}

	maxFees, err := parseFloatParam(query, "maxFees")
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	filters.MaxFees = maxFees

	maxWait, err := parseIntParam(query, "maxWaitTime")
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	filters.MaxWaitMinutes = maxWait

	maxDistance, err := parseFloatParam(query, "maxDistance")
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	filters.MaxDistanceKm = maxDistance

	loc, err := parseUserLocation(query)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	page, err := parseIntParam(query, "page")
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	limit, err := parseIntParam(query, "limit")
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	hospitals, err := h.service.List(r.Context(), filters, loc, services.NormalizeSortKey(query.Get("sortBy")))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	pageNum, pageSize := 1, pagination.DefaultPageSize
	if page != nil {
		pageNum = *page
	}
	if limit != nil {
		pageSize = *limit
	}
	paged, meta := pagination.Paginate(hospitals, pageNum, pageSize)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hospitals":  paged,
		"pagination": meta,
		"filters": listFilters{
			Specialty: query.Get("specialty"),
			Location:  query.Get("location"),
			Rating:    query.Get("rating"),
			Emergency: query.Get("emergency"),
			Insurance: query.Get("insurance"),
			Category:  query.Get("category"),
		},
	})
}

// GetHospital handles GET /api/hospitals/{id}
func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	id, ok := hospitalID(w, r)
	if !ok {
		return
	}

	details, err := h.service.GetDetails(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, details)
}

// GetHospitalDoctors handles GET /api/hospitals/{id}/doctors
func (h *HospitalHandler) GetHospitalDoctors(w http.ResponseWriter, r *http.Request) {
	id, ok := hospitalID(w, r)
	if !ok {
		return
	}

	hospital, doctors, err := h.service.Doctors(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hospitalId":   hospital.ID,
		"hospitalName": hospital.Name,
		"doctors":      doctors,
	})
}

// GetNearbyPlaces handles GET /api/hospitals/{id}/nearby
func (h *HospitalHandler) GetNearbyPlaces(w http.ResponseWriter, r *http.Request) {
	id, ok := hospitalID(w, r)
	if !ok {
		return
	}

	placeType := entities.NearbyPlaceType(r.URL.Query().Get("type"))
	switch placeType {
	case entities.NearbyPharmacy, entities.NearbyHotel, entities.NearbyFood:
	default:
		respondWithError(w, http.StatusBadRequest, "type must be one of pharmacy, hotel, food")
		return
	}

	places, err := h.service.NearbyPlaces(r.Context(), id, placeType)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if places == nil {
		places = []*entities.NearbyPlace{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hospitalId": id,
		"type":       placeType,
		"places":     places,
		"count":      len(places),
	})
}

// SearchSpecialties handles GET /api/hospitals/search/specialties
func (h *HospitalHandler) SearchSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.service.Specialties(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"specialties": specialties,
		"count":       len(specialties),
	})
}

// SearchLocations handles GET /api/hospitals/search/locations
func (h *HospitalHandler) SearchLocations(w http.ResponseWriter, r *http.Request) {
	locations, cities, err := h.service.Locations(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"locations": locations,
		"cities":    cities,
		"count":     len(locations),
	})
}

func hospitalID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid hospital ID")
		return 0, false
	}
	return id, true
}

func parseFloatParam(query url.Values, name string) (*float64, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid %s parameter", name))
	}
	return &v, nil
}

func parseIntParam(query url.Values, name string) (*int, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid %s parameter", name))
	}
	return &v, nil
}

// parseUserLocation reads lat/lng as a pair; supplying one without the
// other is a validation error.
func parseUserLocation(query url.Values) (*entities.UserLocation, error) {
	lat, err := parseFloatParam(query, "lat")
	if err != nil {
		return nil, err
	}
	lng, err := parseFloatParam(query, "lng")
	if err != nil {
		return nil, err
	}
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, apperrors.NewValidationError("lat and lng must be supplied together")
	}
	return &entities.UserLocation{Latitude: *lat, Longitude: *lng}, nil
}
