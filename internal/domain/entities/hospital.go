package entities

// Category distinguishes government and private hospitals.
type Category string

const (
	CategoryGovernment Category = "government"
	CategoryPrivate    Category = "private"

	// CategoryAll is the filter value meaning "no category constraint".
	CategoryAll Category = "all"
)

// Hospital is the canonical hospital record. Records are loaded once at
// startup and never mutated; DistanceKm is the only per-request derived
// field and is set on copies, never on the canonical record.
type Hospital struct {
	ID                 int        `json:"id"`
	Name               string     `json:"name"`
	Location           string     `json:"location"`
	Address            string     `json:"address"`
	Specialties        []string   `json:"specialties"`
	Facilities         []string   `json:"facilities,omitempty"`
	WaitingTimeMinutes int        `json:"waitingTime"`
	Fees               float64    `json:"fees"`
	Rating             float64    `json:"rating"`
	Category           Category   `json:"category"`
	Contact            string     `json:"contact,omitempty"`
	Email              string     `json:"email,omitempty"`
	Website            string     `json:"website,omitempty"`
	EmergencyAvailable bool       `json:"emergencyAvailable"`
	AcceptedInsurance  []string   `json:"insuranceAccepted,omitempty"`
	AppointmentSteps   []string   `json:"appointmentSteps,omitempty"`
	EstimatedCost      *CostRange `json:"estimatedCost,omitempty"`
	Coordinates        *Location  `json:"coordinates,omitempty"`

	// DistanceKm is populated only once a user location is known.
	DistanceKm *float64 `json:"distance,omitempty"`
}

// CostRange is an estimated treatment cost range with Min <= Max.
type CostRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Location represents geographical coordinates
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Department is a derived detail section of a hospital record.
type Department struct {
	Name    string `json:"name"`
	Floor   string `json:"floor"`
	Contact string `json:"contact"`
}

// VisitingHours describes general and ICU visiting windows.
type VisitingHours struct {
	General string `json:"general"`
	ICU     string `json:"icu"`
}

// HospitalDetails is a hospital record merged with the derived sections
// served by the single-hospital endpoint.
type HospitalDetails struct {
	Hospital
	Departments   []Department  `json:"departments"`
	Amenities     []string      `json:"amenities"`
	VisitingHours VisitingHours `json:"visitingHours"`
}

// NearbyPlaceType enumerates the supported nearby-place categories.
type NearbyPlaceType string

const (
	NearbyPharmacy NearbyPlaceType = "pharmacy"
	NearbyHotel    NearbyPlaceType = "hotel"
	NearbyFood     NearbyPlaceType = "food"
)

// NearbyPlace is a point of interest close to a hospital.
type NearbyPlace struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Type       NearbyPlaceType `json:"type"`
	Rating     float64         `json:"rating"`
	DistanceKm float64         `json:"distance"`
	Address    string          `json:"address"`
}
