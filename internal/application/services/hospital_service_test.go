package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mediguide/backend/internal/domain/entities"
	apperrors "github.com/mediguide/backend/pkg/errors"
)

type mockHospitalRepo struct {
	mock.Mock
}

func (m *mockHospitalRepo) GetByID(ctx context.Context, id int) (*entities.Hospital, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Hospital), args.Error(1)
}

func (m *mockHospitalRepo) List(ctx context.Context) ([]*entities.Hospital, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Hospital), args.Error(1)
}

type mockDoctorRepo struct {
	mock.Mock
}

func (m *mockDoctorRepo) List(ctx context.Context) ([]*entities.Doctor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Doctor), args.Error(1)
}

type mockNearbyRepo struct {
	mock.Mock
}

func (m *mockNearbyRepo) ListByHospital(ctx context.Context, hospitalID int, placeType entities.NearbyPlaceType) ([]*entities.NearbyPlace, error) {
	args := m.Called(ctx, hospitalID, placeType)
	return args.Get(0).([]*entities.NearbyPlace), args.Error(1)
}

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }
func boolp(v bool) *bool     { return &v }

func loc(lat, lng float64) *entities.Location {
	return &entities.Location{Latitude: lat, Longitude: lng}
}

func sampleHospitals() []*entities.Hospital {
	return []*entities.Hospital{
		{
			ID: 1, Name: "Apollo Hospitals", Address: "Sarita Vihar, New Delhi, Delhi 110076",
			Specialties: []string{"Cardiology", "Neurology"}, Fees: 1500, Rating: 4.7,
			WaitingTimeMinutes: 45, Category: entities.CategoryPrivate,
			EmergencyAvailable: true, AcceptedInsurance: []string{"Star Health", "Cashless"},
			Coordinates: loc(28.6139, 77.2090),
		},
		{
			ID: 5, Name: "AIIMS", Address: "Ansari Nagar East, New Delhi, Delhi 110029",
			Specialties: []string{"General Medicine", "Cardiology"}, Fees: 200, Rating: 4.4,
			WaitingTimeMinutes: 90, Category: entities.CategoryGovernment,
			EmergencyAvailable: true, AcceptedInsurance: []string{"CGHS", "ESI"},
			Coordinates: loc(28.6139, 77.2090),
		},
		{
			ID: 2, Name: "Fortis Healthcare", Address: "Mulund Goregaon Link Road, Mumbai, Maharashtra 400078",
			Specialties: []string{"Gastroenterology", "ENT"}, Fees: 1800, Rating: 4.5,
			WaitingTimeMinutes: 30, Category: entities.CategoryPrivate,
			EmergencyAvailable: false, AcceptedInsurance: []string{"HDFC ERGO"},
			Coordinates: loc(19.0760, 72.8777),
		},
		{
			ID: 99, Name: "Remote Clinic", Address: "Somewhere",
			Specialties: []string{"Cardiology"}, Fees: 500, Rating: 4.0,
			WaitingTimeMinutes: 20, Category: entities.CategoryPrivate,
			Coordinates: nil,
		},
	}
}

func TestFilterHospitals_NoFiltersKeepsOrder(t *testing.T) {
	hs := sampleHospitals()
	got := FilterHospitals(hs, HospitalFilters{})
	require.Len(t, got, 4)
	assert.Equal(t, []int{1, 5, 2, 99}, []int{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
}

func TestFilterHospitals_CombinedAND(t *testing.T) {
	hs := sampleHospitals()
	got := FilterHospitals(hs, HospitalFilters{
		Specialty: "Cardiology",
		MaxFees:   f64(1500),
		Category:  entities.CategoryPrivate,
	})
	ids := make([]int, len(got))
	for i, h := range got {
		ids[i] = h.ID
	}
	assert.Contains(t, ids, 1)
	assert.NotContains(t, ids, 5)  // government
	assert.NotContains(t, ids, 2)  // no Cardiology
	assert.Contains(t, ids, 99)    // private cardiology under the ceiling
}

func TestFilterHospitals_SpecialtyExactMatch(t *testing.T) {
	hs := sampleHospitals()
	assert.Len(t, FilterHospitals(hs, HospitalFilters{Specialty: "cardiology"}), 3)
	// "Cardio" is not an exact specialty name.
	assert.Empty(t, FilterHospitals(hs, HospitalFilters{Specialty: "Cardio"}))
	// "All" disables the specialty filter.
	assert.Len(t, FilterHospitals(hs, HospitalFilters{Specialty: "All"}), 4)
}

func TestFilterHospitals_ZeroCeilingHonored(t *testing.T) {
	hs := sampleHospitals()
	got := FilterHospitals(hs, HospitalFilters{MaxFees: f64(0)})
	assert.Empty(t, got)
}

func TestFilterHospitals_InsuranceSubstring(t *testing.T) {
	hs := sampleHospitals()
	got := FilterHospitals(hs, HospitalFilters{Insurance: "star"})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestFilterHospitals_EmergencyAndRating(t *testing.T) {
	hs := sampleHospitals()
	got := FilterHospitals(hs, HospitalFilters{Emergency: boolp(true), MinRating: f64(4.5)})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestFilterHospitals_LocationText(t *testing.T) {
	hs := sampleHospitals()
	got := FilterHospitals(hs, HospitalFilters{LocationText: "mumbai"})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestFilterHospitals_MaxWait(t *testing.T) {
	hs := sampleHospitals()
	got := FilterHospitals(hs, HospitalFilters{MaxWaitMinutes: intp(45)})
	assert.Len(t, got, 3)
}

func TestAnnotateDistances(t *testing.T) {
	hs := sampleHospitals()
	AnnotateDistances(hs, &entities.UserLocation{Latitude: 28.6139, Longitude: 77.2090})

	require.NotNil(t, hs[0].DistanceKm)
	assert.Equal(t, 0.0, *hs[0].DistanceKm)
	require.NotNil(t, hs[2].DistanceKm)
	assert.InDelta(t, 1153.0, *hs[2].DistanceKm, 5.0)
	assert.Nil(t, hs[3].DistanceKm, "hospital without coordinates stays unannotated")
}

func TestFilterHospitals_DistanceCeilingExcludesUnresolved(t *testing.T) {
	hs := sampleHospitals()
	AnnotateDistances(hs, &entities.UserLocation{Latitude: 28.6139, Longitude: 77.2090})
	got := FilterHospitals(hs, HospitalFilters{MaxDistanceKm: f64(50)})
	ids := make([]int, len(got))
	for i, h := range got {
		ids[i] = h.ID
	}
	assert.ElementsMatch(t, []int{1, 5}, ids)
	assert.NotContains(t, ids, 99, "unresolved distance never matches a distance ceiling")
}

func TestSortHospitals(t *testing.T) {
	t.Run("rating descending", func(t *testing.T) {
		hs := sampleHospitals()
		SortHospitals(hs, SortByRating)
		assert.Equal(t, []int{1, 2, 5, 99}, []int{hs[0].ID, hs[1].ID, hs[2].ID, hs[3].ID})
	})

	t.Run("fees ascending", func(t *testing.T) {
		hs := sampleHospitals()
		SortHospitals(hs, SortByFees)
		assert.Equal(t, []int{5, 99, 1, 2}, []int{hs[0].ID, hs[1].ID, hs[2].ID, hs[3].ID})
	})

	t.Run("waiting time ascending", func(t *testing.T) {
		hs := sampleHospitals()
		SortHospitals(hs, SortByWaitingTime)
		assert.Equal(t, []int{99, 2, 1, 5}, []int{hs[0].ID, hs[1].ID, hs[2].ID, hs[3].ID})
	})

	t.Run("distance ascending", func(t *testing.T) {
		hs := []*entities.Hospital{
			{ID: 1, DistanceKm: f64(30)},
			{ID: 2, DistanceKm: f64(10)},
			{ID: 3, DistanceKm: f64(20)},
		}
		SortHospitals(hs, SortByDistance)
		assert.Equal(t, []int{2, 3, 1}, []int{hs[0].ID, hs[1].ID, hs[2].ID})
	})

	t.Run("undefined distance holds position", func(t *testing.T) {
		// Entries without a distance compare equal to everything, so the
		// stable sort never moves a defined entry past them: the whole
		// sequence stays put even though 30 > 10.
		hs := []*entities.Hospital{
			{ID: 1, DistanceKm: f64(30)},
			{ID: 2},
			{ID: 3, DistanceKm: f64(10)},
			{ID: 4},
			{ID: 5, DistanceKm: f64(20)},
		}
		SortHospitals(hs, SortByDistance)
		assert.Equal(t, []int{1, 2, 3, 4, 5},
			[]int{hs[0].ID, hs[1].ID, hs[2].ID, hs[3].ID, hs[4].ID})
	})

	t.Run("stable for equal keys", func(t *testing.T) {
		hs := sampleHospitals()
		hs[0].Rating = 4.5
		hs[1].Rating = 4.5
		hs[2].Rating = 4.5
		hs[3].Rating = 4.5
		SortHospitals(hs, SortByRating)
		assert.Equal(t, []int{1, 5, 2, 99}, []int{hs[0].ID, hs[1].ID, hs[2].ID, hs[3].ID})
	})
}

func TestNormalizeSortKey(t *testing.T) {
	assert.Equal(t, SortByFees, NormalizeSortKey("lowest"))
	assert.Equal(t, SortByWaitingTime, NormalizeSortKey("shortest"))
	assert.Equal(t, SortByDistance, NormalizeSortKey("nearest"))
	assert.Equal(t, SortByRating, NormalizeSortKey(""))
	assert.Equal(t, SortByRating, NormalizeSortKey("bogus"))
}

func TestHospitalService_List(t *testing.T) {
	repo := new(mockHospitalRepo)
	repo.On("List", mock.Anything).Return(sampleHospitals(), nil)
	svc := NewHospitalService(repo, nil, nil)

	got, err := svc.List(context.Background(), HospitalFilters{Category: entities.CategoryGovernment}, nil, SortByRating)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AIIMS", got[0].Name)
	repo.AssertExpectations(t)
}

func TestHospitalService_GetDetails(t *testing.T) {
	repo := new(mockHospitalRepo)
	repo.On("GetByID", mock.Anything, 1).Return(sampleHospitals()[0], nil)
	svc := NewHospitalService(repo, nil, nil)

	details, err := svc.GetDetails(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Apollo Hospitals", details.Name)
	require.Len(t, details.Departments, 4)
	assert.Equal(t, "Emergency", details.Departments[0].Name)
	assert.Contains(t, details.Amenities, "Blood Bank")
	assert.Equal(t, "10:00 AM - 12:00 PM, 4:00 PM - 7:00 PM", details.VisitingHours.General)
}

func TestHospitalService_GetDetails_NotFound(t *testing.T) {
	repo := new(mockHospitalRepo)
	repo.On("GetByID", mock.Anything, 404).Return(nil, apperrors.NewNotFoundError("hospital with ID 404 does not exist"))
	svc := NewHospitalService(repo, nil, nil)

	_, err := svc.GetDetails(context.Background(), 404)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestHospitalService_Doctors(t *testing.T) {
	repo := new(mockHospitalRepo)
	repo.On("GetByID", mock.Anything, 1).Return(sampleHospitals()[0], nil)
	doctors := new(mockDoctorRepo)
	doctors.On("List", mock.Anything).Return([]*entities.Doctor{
		{ID: 1, Name: "Dr. Rajesh Kumar", Specialty: "Cardiology"},
	}, nil)
	svc := NewHospitalService(repo, doctors, nil)

	hospital, roster, err := svc.Doctors(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Apollo Hospitals", hospital.Name)
	require.Len(t, roster, 1)
	assert.Equal(t, "Dr. Rajesh Kumar", roster[0].Name)
}

func TestHospitalService_Specialties(t *testing.T) {
	repo := new(mockHospitalRepo)
	repo.On("List", mock.Anything).Return(sampleHospitals(), nil)
	svc := NewHospitalService(repo, nil, nil)

	got, err := svc.Specialties(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Cardiology", "ENT", "Gastroenterology", "General Medicine", "Neurology"}, got)
}

func TestHospitalService_Locations(t *testing.T) {
	repo := new(mockHospitalRepo)
	repo.On("List", mock.Anything).Return(sampleHospitals(), nil)
	svc := NewHospitalService(repo, nil, nil)

	locations, cities, err := svc.Locations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 4)
	assert.Equal(t, "New Delhi", locations[0].City)
	assert.Equal(t, "Mumbai", locations[2].City)
	assert.Equal(t, "Unknown", locations[3].City, "single-segment address has no city")
	assert.Equal(t, []string{"Mumbai", "New Delhi", "Unknown"}, cities)
}

func TestHospitalService_NearbyPlaces(t *testing.T) {
	repo := new(mockHospitalRepo)
	repo.On("GetByID", mock.Anything, 1).Return(sampleHospitals()[0], nil)
	nearby := new(mockNearbyRepo)
	nearby.On("ListByHospital", mock.Anything, 1, entities.NearbyPharmacy).Return([]*entities.NearbyPlace{
		{ID: 101, Name: "Apollo Pharmacy", Type: entities.NearbyPharmacy},
	}, nil)
	svc := NewHospitalService(repo, nil, nearby)

	got, err := svc.NearbyPlaces(context.Background(), 1, entities.NearbyPharmacy)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Apollo Pharmacy", got[0].Name)
}
