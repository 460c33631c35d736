package entities

// Doctor is a consulting physician. The roster is a single static list
// shared by every hospital; it is not filtered per hospital.
type Doctor struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	ExperienceYears int      `json:"experience"`
	Qualification   string   `json:"qualification"`
	Availability    []string `json:"availability"`
	Timings         string   `json:"timings"`
	ConsultationFee float64  `json:"consultationFee"`
	Rating          float64  `json:"rating"`
}
