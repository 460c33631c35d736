package repositories

import (
	"context"

	"github.com/mediguide/backend/internal/domain/entities"
)

// HospitalRepository defines read access to the hospital entity store.
// The store is immutable; List returns copies safe for per-request
// annotation.
type HospitalRepository interface {
	GetByID(ctx context.Context, id int) (*entities.Hospital, error)
	List(ctx context.Context) ([]*entities.Hospital, error)
}

// ProcedureRepository defines read access to the procedure catalog.
type ProcedureRepository interface {
	GetByID(ctx context.Context, id int) (*entities.Procedure, error)
	List(ctx context.Context) ([]*entities.Procedure, error)
}

// DoctorRepository exposes the static doctor roster.
type DoctorRepository interface {
	List(ctx context.Context) ([]*entities.Doctor, error)
}

// NearbyPlaceRepository exposes points of interest around a hospital.
type NearbyPlaceRepository interface {
	ListByHospital(ctx context.Context, hospitalID int, placeType entities.NearbyPlaceType) ([]*entities.NearbyPlace, error)
}
