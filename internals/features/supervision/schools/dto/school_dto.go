package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"praktikku_backend/internals/features/supervision/schools/model"
)

// =======================
// Request DTO
// =======================

type SchoolCreateDTO struct {
	SchoolName    string     `json:"school_name" validate:"required,min=3"`
	SchoolRouteID *uuid.UUID `json:"school_route_id,omitempty"`
	SchoolLgaID   *uuid.UUID `json:"school_lga_id,omitempty"`
	// Jarak dari institusi (km), dihitung admin saat pendaftaran
	SchoolDistanceKm float64 `json:"school_distance_km" validate:"omitempty,min=0,max=2000"`
	SchoolStatus     string  `json:"school_status" validate:"omitempty,oneof=active inactive"`
}

type SchoolUpdateDTO struct {
	SchoolName       *string    `json:"school_name,omitempty" validate:"omitempty,min=3"`
	SchoolRouteID    *uuid.UUID `json:"school_route_id,omitempty"`
	SchoolLgaID      *uuid.UUID `json:"school_lga_id,omitempty"`
	SchoolDistanceKm *float64   `json:"school_distance_km,omitempty" validate:"omitempty,min=0,max=2000"`
	SchoolStatus     *string    `json:"school_status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// (opsional) filter list
type SchoolFilterDTO struct {
	Status  *string    `query:"status" validate:"omitempty,oneof=active inactive"`
	RouteID *uuid.UUID `query:"route_id"`
	LgaID   *uuid.UUID `query:"lga_id"`
}

// =======================
// Response DTO
// =======================

type SchoolResponseDTO struct {
	SchoolID            uuid.UUID  `json:"school_id"`
	SchoolInstitutionID uuid.UUID  `json:"school_institution_id"`
	SchoolName          string     `json:"school_name"`
	SchoolRouteID       *uuid.UUID `json:"school_route_id,omitempty"`
	SchoolLgaID         *uuid.UUID `json:"school_lga_id,omitempty"`
	SchoolDistanceKm    float64    `json:"school_distance_km"`
	SchoolStatus        string     `json:"school_status"`
	SchoolCreatedAt     time.Time  `json:"school_created_at"`
	SchoolUpdatedAt     *time.Time `json:"school_updated_at,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *SchoolCreateDTO) Normalize() {
	p.SchoolName = strings.TrimSpace(p.SchoolName)
	p.SchoolStatus = strings.TrimSpace(p.SchoolStatus)
}

func (p *SchoolCreateDTO) ToModel(institutionID uuid.UUID) model.SchoolModel {
	status := p.SchoolStatus
	if status == "" {
		status = model.SchoolStatusActive
	}
	return model.SchoolModel{
		SchoolInstitutionID: institutionID,
		SchoolName:          p.SchoolName,
		SchoolRouteID:       p.SchoolRouteID,
		SchoolLgaID:         p.SchoolLgaID,
		SchoolDistanceKm:    p.SchoolDistanceKm,
		SchoolStatus:        status,
	}
}

func (u *SchoolUpdateDTO) ApplyUpdates(ent *model.SchoolModel) {
	if u.SchoolName != nil {
		ent.SchoolName = strings.TrimSpace(*u.SchoolName)
	}
	if u.SchoolRouteID != nil {
		ent.SchoolRouteID = u.SchoolRouteID
	}
	if u.SchoolLgaID != nil {
		ent.SchoolLgaID = u.SchoolLgaID
	}
	if u.SchoolDistanceKm != nil {
		ent.SchoolDistanceKm = *u.SchoolDistanceKm
	}
	if u.SchoolStatus != nil {
		ent.SchoolStatus = *u.SchoolStatus
	}
}

// Mapper entity -> response
func FromModel(ent model.SchoolModel) SchoolResponseDTO {
	return SchoolResponseDTO{
		SchoolID:            ent.SchoolID,
		SchoolInstitutionID: ent.SchoolInstitutionID,
		SchoolName:          ent.SchoolName,
		SchoolRouteID:       ent.SchoolRouteID,
		SchoolLgaID:         ent.SchoolLgaID,
		SchoolDistanceKm:    ent.SchoolDistanceKm,
		SchoolStatus:        ent.SchoolStatus,
		SchoolCreatedAt:     ent.SchoolCreatedAt,
		SchoolUpdatedAt:     ent.SchoolUpdatedAt,
	}
}

func FromModels(list []model.SchoolModel) []SchoolResponseDTO {
	out := make([]SchoolResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
