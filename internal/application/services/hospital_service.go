package services

import (
	"context"
	"sort"
	"strings"

	"github.com/mediguide/backend/internal/domain/entities"
	"github.com/mediguide/backend/internal/domain/repositories"
	"github.com/mediguide/backend/internal/geo"
)

// SortKey selects the hospital ordering. Keys accept the canonical name and
// the label the client sends.
type SortKey string

const (
	SortByRating      SortKey = "rating"
	SortByFees        SortKey = "fees"
	SortByWaitingTime SortKey = "waitingTime"
	SortByDistance    SortKey = "distance"
)

// NormalizeSortKey maps client sort labels onto canonical keys. Unknown
// labels fall back to rating.
func NormalizeSortKey(raw string) SortKey {
	switch strings.ToLower(raw) {
	case "fees", "lowest":
		return SortByFees
	case "waitingtime", "shortest":
		return SortByWaitingTime
	case "distance", "nearest":
		return SortByDistance
	default:
		return SortByRating
	}
}

// HospitalFilters collects every filter dimension the list endpoint accepts.
// Pointer fields distinguish "not specified" from a zero value, so a zero
// ceiling genuinely filters everything out instead of being ignored.
type HospitalFilters struct {
	Specialty      string
	Category       entities.Category
	MinRating      *float64
	Emergency      *bool
	Insurance      string
	LocationText   string
	MaxFees        *float64
	MaxWaitMinutes *int
	MaxDistanceKm  *float64
}

// HospitalLocation is the compact location view served by the locations
// search endpoint.
type HospitalLocation struct {
	ID          int                `json:"id"`
	Name        string             `json:"name"`
	City        string             `json:"city"`
	FullAddress string             `json:"fullAddress"`
	Coordinates *entities.Location `json:"coordinates"`
}

// HospitalService owns hospital discovery: filtering, distance annotation,
// sorting and the derived single-hospital views.
type HospitalService struct {
	repo    repositories.HospitalRepository
	doctors repositories.DoctorRepository
	nearby  repositories.NearbyPlaceRepository
}

// NewHospitalService creates a new hospital service.
func NewHospitalService(repo repositories.HospitalRepository, doctors repositories.DoctorRepository, nearby repositories.NearbyPlaceRepository) *HospitalService {
	return &HospitalService{
		repo:    repo,
		doctors: doctors,
		nearby:  nearby,
	}
}

// List returns hospitals matching all given filters, distance-annotated when
// a user location is supplied, ordered by the given sort key.
func (s *HospitalService) List(ctx context.Context, filters HospitalFilters, loc *entities.UserLocation, sortBy SortKey) ([]*entities.Hospital, error) {
	hospitals, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	AnnotateDistances(hospitals, loc)
	filtered := FilterHospitals(hospitals, filters)
	SortHospitals(filtered, sortBy)
	return filtered, nil
}

// GetDetails returns a hospital with its derived department layout,
// amenities and visiting hours.
func (s *HospitalService) GetDetails(ctx context.Context, id int) (*entities.HospitalDetails, error) {
	hospital, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &entities.HospitalDetails{
		Hospital: *hospital,
		Departments: []entities.Department{
			{Name: "Emergency", Floor: "Ground Floor", Contact: hospital.Contact},
			{Name: "OPD", Floor: "1st Floor", Contact: hospital.Contact},
			{Name: "IPD", Floor: "2nd-5th Floor", Contact: hospital.Contact},
			{Name: "ICU", Floor: "6th Floor", Contact: hospital.Contact},
		},
		Amenities: []string{
			"Free WiFi", "Parking", "Cafeteria", "ATM", "Pharmacy",
			"Blood Bank", "Ambulance Service", "Patient Rooms",
		},
		VisitingHours: entities.VisitingHours{
			General: "10:00 AM - 12:00 PM, 4:00 PM - 7:00 PM",
			ICU:     "11:00 AM - 12:00 PM, 5:00 PM - 6:00 PM",
		},
	}, nil
}

// Doctors returns the doctor roster for a hospital. The hospital must exist;
// the roster itself is shared across hospitals.
func (s *HospitalService) Doctors(ctx context.Context, hospitalID int) (*entities.Hospital, []*entities.Doctor, error) {
	hospital, err := s.repo.GetByID(ctx, hospitalID)
	if err != nil {
		return nil, nil, err
	}
	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return hospital, doctors, nil
}

// Specialties returns the deduplicated, alphabetically sorted set of
// specialties across all hospitals.
func (s *HospitalService) Specialties(ctx context.Context) ([]string, error) {
	hospitals, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var specialties []string
	for _, h := range hospitals {
		for _, sp := range h.Specialties {
			if !seen[sp] {
				seen[sp] = true
				specialties = append(specialties, sp)
			}
		}
	}
	sort.Strings(specialties)
	return specialties, nil
}

// Locations returns a compact location view per hospital plus the
// deduplicated, sorted city list. The city is taken from the second-to-last
// comma segment of the address.
func (s *HospitalService) Locations(ctx context.Context) ([]HospitalLocation, []string, error) {
	hospitals, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	locations := make([]HospitalLocation, 0, len(hospitals))
	seen := make(map[string]bool)
	var cities []string
	for _, h := range hospitals {
		city := cityFromAddress(h.Address)
		locations = append(locations, HospitalLocation{
			ID:          h.ID,
			Name:        h.Name,
			City:        city,
			FullAddress: h.Address,
			Coordinates: h.Coordinates,
		})
		if !seen[city] {
			seen[city] = true
			cities = append(cities, city)
		}
	}
	sort.Strings(cities)
	return locations, cities, nil
}

// NearbyPlaces returns curated places of one type around a hospital. The
// hospital must exist.
func (s *HospitalService) NearbyPlaces(ctx context.Context, hospitalID int, placeType entities.NearbyPlaceType) ([]*entities.NearbyPlace, error) {
	if _, err := s.repo.GetByID(ctx, hospitalID); err != nil {
		return nil, err
	}
	return s.nearby.ListByHospital(ctx, hospitalID, placeType)
}

func cityFromAddress(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return "Unknown"
	}
	city := strings.TrimSpace(parts[len(parts)-2])
	if city == "" {
		return "Unknown"
	}
	return city
}

// AnnotateDistances computes the distance from loc to every hospital with
// known coordinates. Hospitals without coordinates keep a nil distance and
// are excluded from distance filtering and sorting.
func AnnotateDistances(hospitals []*entities.Hospital, loc *entities.UserLocation) {
	if loc == nil {
		return
	}
	for _, h := range hospitals {
		if h.Coordinates == nil {
			h.DistanceKm = nil
			continue
		}
		d := geo.Distance(loc.Latitude, loc.Longitude, h.Coordinates.Latitude, h.Coordinates.Longitude)
		h.DistanceKm = &d
	}
}

// FilterHospitals returns the hospitals satisfying every specified filter.
// Unspecified dimensions pass trivially.
func FilterHospitals(hospitals []*entities.Hospital, f HospitalFilters) []*entities.Hospital {
	out := make([]*entities.Hospital, 0, len(hospitals))
	for _, h := range hospitals {
		if matchesFilters(h, f) {
			out = append(out, h)
		}
	}
	return out
}

func matchesFilters(h *entities.Hospital, f HospitalFilters) bool {
	if f.Specialty != "" && !strings.EqualFold(f.Specialty, "All") {
		found := false
		for _, s := range h.Specialties {
			if strings.EqualFold(s, f.Specialty) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Category != "" && f.Category != entities.CategoryAll && h.Category != f.Category {
		return false
	}

	if f.MinRating != nil && h.Rating < *f.MinRating {
		return false
	}

	if f.Emergency != nil && h.EmergencyAvailable != *f.Emergency {
		return false
	}

	if f.Insurance != "" {
		found := false
		for _, ins := range h.AcceptedInsurance {
			if strings.Contains(strings.ToLower(ins), strings.ToLower(f.Insurance)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.LocationText != "" && !strings.Contains(strings.ToLower(h.Address), strings.ToLower(f.LocationText)) {
		return false
	}

	if f.MaxFees != nil && h.Fees > *f.MaxFees {
		return false
	}

	if f.MaxWaitMinutes != nil && h.WaitingTimeMinutes > *f.MaxWaitMinutes {
		return false
	}

	if f.MaxDistanceKm != nil {
		// No resolvable distance means no match, not a free pass.
		if h.DistanceKm == nil || *h.DistanceKm > *f.MaxDistanceKm {
			return false
		}
	}

	return true
}

// SortHospitals orders hospitals in place by the given key. The sort is
// stable, so equal keys keep their dataset order. Hospitals without a
// distance compare equal to everything under the distance key and stay
// where the stable sort found them, a long-standing quirk callers rely on.
func SortHospitals(hospitals []*entities.Hospital, key SortKey) {
	sort.SliceStable(hospitals, func(i, j int) bool {
		a, b := hospitals[i], hospitals[j]
		switch key {
		case SortByFees:
			return a.Fees < b.Fees
		case SortByWaitingTime:
			return a.WaitingTimeMinutes < b.WaitingTimeMinutes
		case SortByDistance:
			if a.DistanceKm == nil || b.DistanceKm == nil {
				return false
			}
			return *a.DistanceKm < *b.DistanceKm
		default:
			return a.Rating > b.Rating
		}
	})
}
