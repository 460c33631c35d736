package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediguide/backend/internal/adapters/memory"
	"github.com/mediguide/backend/internal/application/services"
)

func newHospitalMux(t *testing.T) *http.ServeMux {
	t.Helper()
	svc := services.NewHospitalService(
		memory.NewHospitalAdapter(),
		memory.NewDoctorAdapter(),
		memory.NewNearbyPlaceAdapter(),
	)
	h := NewHospitalHandler(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/hospitals", h.ListHospitals)
	mux.HandleFunc("GET /api/hospitals/search/specialties", h.SearchSpecialties)
	mux.HandleFunc("GET /api/hospitals/search/locations", h.SearchLocations)
	mux.HandleFunc("GET /api/hospitals/{id}", h.GetHospital)
	mux.HandleFunc("GET /api/hospitals/{id}/doctors", h.GetHospitalDoctors)
	mux.HandleFunc("GET /api/hospitals/{id}/nearby", h.GetNearbyPlaces)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestListHospitals_DefaultPagination(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals")

	require.Equal(t, http.StatusOK, rec.Code)
	hospitals := body["hospitals"].([]interface{})
	assert.Len(t, hospitals, 10)

	meta := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), meta["currentPage"])
	assert.Equal(t, float64(3), meta["totalPages"])
	assert.Equal(t, float64(24), meta["total"])
	assert.Equal(t, true, meta["hasNext"])
	assert.Equal(t, false, meta["hasPrev"])
}

func TestListHospitals_DefaultSortIsRatingDescending(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals")

	require.Equal(t, http.StatusOK, rec.Code)
	hospitals := body["hospitals"].([]interface{})
	first := hospitals[0].(map[string]interface{})
	assert.Equal(t, "Medanta - The Medicity", first["name"])
	assert.Equal(t, float64(4.8), first["rating"])
}

func TestListHospitals_Filters(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet,
		"/api/hospitals?specialty=Cardiology&maxFees=1500&category=private&limit=24")

	require.Equal(t, http.StatusOK, rec.Code)
	hospitals := body["hospitals"].([]interface{})
	require.NotEmpty(t, hospitals)
	for _, raw := range hospitals {
		h := raw.(map[string]interface{})
		assert.LessOrEqual(t, h["fees"].(float64), float64(1500))
		assert.Equal(t, "private", h["category"])
		assert.Contains(t, h["specialties"], "Cardiology")
		assert.NotEqual(t, "AIIMS", h["name"])
	}

	filters := body["filters"].(map[string]interface{})
	assert.Equal(t, "Cardiology", filters["specialty"])
	assert.Equal(t, "private", filters["category"])
}

func TestListHospitals_DistanceAnnotationAndSort(t *testing.T) {
	mux := newHospitalMux(t)
	// Delhi city center: all Delhi hospitals are distance 0 and sort first.
	rec, body := doRequest(t, mux, http.MethodGet,
		"/api/hospitals?lat=28.6139&lng=77.2090&sortBy=nearest&limit=24")

	require.Equal(t, http.StatusOK, rec.Code)
	hospitals := body["hospitals"].([]interface{})
	require.Len(t, hospitals, 24)
	first := hospitals[0].(map[string]interface{})
	assert.Equal(t, float64(0), first["distance"])
}

func TestListHospitals_MalformedNumericParam(t *testing.T) {
	mux := newHospitalMux(t)
	for _, target := range []string{
		"/api/hospitals?rating=abc",
		"/api/hospitals?maxFees=cheap",
		"/api/hospitals?maxWaitTime=soon",
		"/api/hospitals?page=one",
		"/api/hospitals?lat=28.6",
		"/api/hospitals?emergency=maybe",
	} {
		rec, body := doRequest(t, mux, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "Bad Request", body["error"], target)
		assert.NotEmpty(t, body["message"], target)
	}
}

func TestListHospitals_OutOfRangePage(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals?page=99")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body["hospitals"])
	meta := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(99), meta["currentPage"])
	assert.Equal(t, float64(24), meta["total"])
	assert.Equal(t, false, meta["hasNext"])
}

func TestGetHospital(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals/1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Apollo Hospitals", body["name"])
	departments := body["departments"].([]interface{})
	require.Len(t, departments, 4)
	assert.Equal(t, "Emergency", departments[0].(map[string]interface{})["name"])
	assert.Contains(t, body["amenities"], "Free WiFi")
	hours := body["visitingHours"].(map[string]interface{})
	assert.Equal(t, "11:00 AM - 12:00 PM, 5:00 PM - 6:00 PM", hours["icu"])
}

func TestGetHospital_NotFound(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals/999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", body["error"])
	assert.Equal(t, "hospital with ID 999 does not exist", body["message"])
}

func TestGetHospital_InvalidID(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals/abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid hospital ID", body["message"])
}

func TestGetHospitalDoctors(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals/1/doctors")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["hospitalId"])
	assert.Equal(t, "Apollo Hospitals", body["hospitalName"])
	doctors := body["doctors"].([]interface{})
	require.Len(t, doctors, 3)
	assert.Equal(t, "Dr. Rajesh Kumar", doctors[0].(map[string]interface{})["name"])
}

func TestGetHospitalDoctors_NotFound(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals/999/doctors")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestSearchSpecialties(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals/search/specialties")

	require.Equal(t, http.StatusOK, rec.Code)
	specialties := body["specialties"].([]interface{})
	assert.Equal(t, float64(len(specialties)), body["count"])
	assert.Contains(t, specialties, "Cardiology")
	// Alphabetical order.
	for i := 1; i < len(specialties); i++ {
		assert.LessOrEqual(t, specialties[i-1].(string), specialties[i].(string))
	}
}

func TestSearchLocations(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals/search/locations")

	require.Equal(t, http.StatusOK, rec.Code)
	locations := body["locations"].([]interface{})
	require.Len(t, locations, 24)
	assert.Equal(t, float64(24), body["count"])

	first := locations[0].(map[string]interface{})
	assert.Equal(t, "Apollo Hospitals", first["name"])
	assert.Equal(t, "New Delhi", first["city"])

	cities := body["cities"].([]interface{})
	assert.Contains(t, cities, "Mumbai")
	assert.Contains(t, cities, "New Delhi")
}

func TestGetNearbyPlaces(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals/1/nearby?type=pharmacy")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["count"])
	places := body["places"].([]interface{})
	assert.Equal(t, "Apollo Pharmacy", places[0].(map[string]interface{})["name"])
}

func TestGetNearbyPlaces_NoCuratedData(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals/2/nearby?type=hotel")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["count"])
	assert.Empty(t, body["places"])
}

func TestGetNearbyPlaces_InvalidType(t *testing.T) {
	mux := newHospitalMux(t)
	rec, body := doRequest(t, mux, http.MethodGet, "/api/hospitals/1/nearby?type=casino")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "type must be one of pharmacy, hotel, food", body["message"])
}
