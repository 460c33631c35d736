// Package memory implements the repository interfaces over the static
// in-memory dataset. The dataset is the system of record: loaded once,
// never written to. Every read hands out copies so callers can annotate
// results (distance) without touching canonical records.
package memory

import (
	"context"
	"fmt"

	"github.com/mediguide/backend/internal/domain/entities"
	"github.com/mediguide/backend/internal/domain/repositories"
	apperrors "github.com/mediguide/backend/pkg/errors"
)

// HospitalAdapter serves hospital records from the seed dataset.
type HospitalAdapter struct {
	hospitals []entities.Hospital
}

// NewHospitalAdapter creates a hospital adapter over the seed dataset.
func NewHospitalAdapter() *HospitalAdapter {
	return &HospitalAdapter{hospitals: seedHospitals()}
}

// GetByID returns a copy of the hospital with the given id.
func (a *HospitalAdapter) GetByID(_ context.Context, id int) (*entities.Hospital, error) {
	for i := range a.hospitals {
		if a.hospitals[i].ID == id {
			h := a.hospitals[i]
			return &h, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("hospital with ID %d does not exist", id))
}

// List returns copies of every hospital record in dataset order.
func (a *HospitalAdapter) List(_ context.Context) ([]*entities.Hospital, error) {
	out := make([]*entities.Hospital, len(a.hospitals))
	for i := range a.hospitals {
		h := a.hospitals[i]
		out[i] = &h
	}
	return out, nil
}

var _ repositories.HospitalRepository = (*HospitalAdapter)(nil)

// ProcedureAdapter serves the procedure catalog.
type ProcedureAdapter struct {
	procedures []entities.Procedure
}

// NewProcedureAdapter creates a procedure adapter over the seed catalog.
func NewProcedureAdapter() *ProcedureAdapter {
	return &ProcedureAdapter{procedures: seedProcedures()}
}

// GetByID returns a copy of the procedure with the given id.
func (a *ProcedureAdapter) GetByID(_ context.Context, id int) (*entities.Procedure, error) {
	for i := range a.procedures {
		if a.procedures[i].ID == id {
			p := a.procedures[i]
			return &p, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("procedure with ID %d does not exist", id))
}

// List returns copies of every procedure in catalog order.
func (a *ProcedureAdapter) List(_ context.Context) ([]*entities.Procedure, error) {
	out := make([]*entities.Procedure, len(a.procedures))
	for i := range a.procedures {
		p := a.procedures[i]
		out[i] = &p
	}
	return out, nil
}

var _ repositories.ProcedureRepository = (*ProcedureAdapter)(nil)

// DoctorAdapter serves the shared doctor roster.
type DoctorAdapter struct {
	doctors []entities.Doctor
}

// NewDoctorAdapter creates a doctor adapter over the seed roster.
func NewDoctorAdapter() *DoctorAdapter {
	return &DoctorAdapter{doctors: seedDoctors()}
}

// List returns the roster. The same list is served for every hospital.
func (a *DoctorAdapter) List(_ context.Context) ([]*entities.Doctor, error) {
	out := make([]*entities.Doctor, len(a.doctors))
	for i := range a.doctors {
		d := a.doctors[i]
		out[i] = &d
	}
	return out, nil
}

var _ repositories.DoctorRepository = (*DoctorAdapter)(nil)

// NearbyPlaceAdapter serves curated points of interest around hospitals.
type NearbyPlaceAdapter struct {
	places map[int][]entities.NearbyPlace
}

// NewNearbyPlaceAdapter creates a nearby-place adapter over the seed data.
func NewNearbyPlaceAdapter() *NearbyPlaceAdapter {
	return &NearbyPlaceAdapter{places: seedNearbyPlaces()}
}

// ListByHospital returns places of the given type near a hospital.
// Hospitals without curated data yield an empty list, not an error.
func (a *NearbyPlaceAdapter) ListByHospital(_ context.Context, hospitalID int, placeType entities.NearbyPlaceType) ([]*entities.NearbyPlace, error) {
	var out []*entities.NearbyPlace
	for _, p := range a.places[hospitalID] {
		if p.Type == placeType {
			place := p
			out = append(out, &place)
		}
	}
	return out, nil
}

var _ repositories.NearbyPlaceRepository = (*NearbyPlaceAdapter)(nil)
