package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"praktikku_backend/internals/features/supervision/supervisors/model"
)

type FacultyCreateDTO struct {
	FacultyCode string `json:"faculty_code" validate:"required,min=1,max=20"`
	FacultyName string `json:"faculty_name" validate:"required,min=2"`
}

type FacultyResponseDTO struct {
	FacultyID        uuid.UUID  `json:"faculty_id"`
	FacultyCode      string     `json:"faculty_code"`
	FacultyName      string     `json:"faculty_name"`
	FacultyCreatedAt time.Time  `json:"faculty_created_at"`
	FacultyUpdatedAt *time.Time `json:"faculty_updated_at,omitempty"`
}

func (p *FacultyCreateDTO) Normalize() {
	p.FacultyCode = strings.ToUpper(strings.TrimSpace(p.FacultyCode))
	p.FacultyName = strings.TrimSpace(p.FacultyName)
}

func (p *FacultyCreateDTO) ToModel(institutionID uuid.UUID) model.FacultyModel {
	return model.FacultyModel{
		FacultyInstitutionID: institutionID,
		FacultyCode:          p.FacultyCode,
		FacultyName:          p.FacultyName,
	}
}

func FromFacultyModel(ent model.FacultyModel) FacultyResponseDTO {
	return FacultyResponseDTO{
		FacultyID:        ent.FacultyID,
		FacultyCode:      ent.FacultyCode,
		FacultyName:      ent.FacultyName,
		FacultyCreatedAt: ent.FacultyCreatedAt,
		FacultyUpdatedAt: ent.FacultyUpdatedAt,
	}
}

func FromFacultyModels(list []model.FacultyModel) []FacultyResponseDTO {
	out := make([]FacultyResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromFacultyModel(it))
	}
	return out
}
