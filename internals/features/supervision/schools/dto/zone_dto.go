package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"praktikku_backend/internals/features/supervision/schools/model"
)

// =======================
// Route (jalur supervisi)
// =======================

type RouteCreateDTO struct {
	RouteName string `json:"route_name" validate:"required,min=2"`
}

type RouteResponseDTO struct {
	RouteID        uuid.UUID  `json:"route_id"`
	RouteName      string     `json:"route_name"`
	RouteCreatedAt time.Time  `json:"route_created_at"`
	RouteUpdatedAt *time.Time `json:"route_updated_at,omitempty"`
}

func (p *RouteCreateDTO) Normalize() {
	p.RouteName = strings.TrimSpace(p.RouteName)
}

func (p *RouteCreateDTO) ToModel(institutionID uuid.UUID) model.RouteModel {
	return model.RouteModel{
		RouteInstitutionID: institutionID,
		RouteName:          p.RouteName,
	}
}

func FromRouteModel(ent model.RouteModel) RouteResponseDTO {
	return RouteResponseDTO{
		RouteID:        ent.RouteID,
		RouteName:      ent.RouteName,
		RouteCreatedAt: ent.RouteCreatedAt,
		RouteUpdatedAt: ent.RouteUpdatedAt,
	}
}

func FromRouteModels(list []model.RouteModel) []RouteResponseDTO {
	out := make([]RouteResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromRouteModel(it))
	}
	return out
}

// =======================
// LGA (Local Government Area)
// =======================

type LgaCreateDTO struct {
	LgaName  string  `json:"lga_name" validate:"required,min=2"`
	LgaState *string `json:"lga_state,omitempty" validate:"omitempty,min=2"`
}

type LgaResponseDTO struct {
	LgaID        uuid.UUID  `json:"lga_id"`
	LgaName      string     `json:"lga_name"`
	LgaState     *string    `json:"lga_state,omitempty"`
	LgaCreatedAt time.Time  `json:"lga_created_at"`
	LgaUpdatedAt *time.Time `json:"lga_updated_at,omitempty"`
}

func (p *LgaCreateDTO) Normalize() {
	p.LgaName = strings.TrimSpace(p.LgaName)
	if p.LgaState != nil {
		s := strings.TrimSpace(*p.LgaState)
		p.LgaState = &s
	}
}

func (p *LgaCreateDTO) ToModel(institutionID uuid.UUID) model.LgaModel {
	return model.LgaModel{
		LgaInstitutionID: institutionID,
		LgaName:          p.LgaName,
		LgaState:         p.LgaState,
	}
}

func FromLgaModel(ent model.LgaModel) LgaResponseDTO {
	return LgaResponseDTO{
		LgaID:        ent.LgaID,
		LgaName:      ent.LgaName,
		LgaState:     ent.LgaState,
		LgaCreatedAt: ent.LgaCreatedAt,
		LgaUpdatedAt: ent.LgaUpdatedAt,
	}
}

func FromLgaModels(list []model.LgaModel) []LgaResponseDTO {
	out := make([]LgaResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromLgaModel(it))
	}
	return out
}
