package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"praktikku_backend/internals/features/supervision/supervisors/model"
)

// =======================
// Request DTO
// =======================

type SupervisorCreateDTO struct {
	SupervisorFullName  string     `json:"supervisor_full_name" validate:"required,min=3"`
	SupervisorRole      string     `json:"supervisor_role" validate:"omitempty,oneof=supervisor field_monitor"`
	SupervisorRankID    *uuid.UUID `json:"supervisor_rank_id,omitempty"`
	SupervisorFacultyID *uuid.UUID `json:"supervisor_faculty_id,omitempty"`
	// Batas posting aktif per session (diedit HR/admin)
	SupervisorMaxPostings int   `json:"supervisor_max_postings" validate:"omitempty,min=0,max=50"`
	SupervisorIsActive    *bool `json:"supervisor_is_active,omitempty"`
}

type SupervisorUpdateDTO struct {
	SupervisorFullName    *string    `json:"supervisor_full_name,omitempty" validate:"omitempty,min=3"`
	SupervisorRole        *string    `json:"supervisor_role,omitempty" validate:"omitempty,oneof=supervisor field_monitor"`
	SupervisorRankID      *uuid.UUID `json:"supervisor_rank_id,omitempty"`
	SupervisorFacultyID   *uuid.UUID `json:"supervisor_faculty_id,omitempty"`
	SupervisorMaxPostings *int       `json:"supervisor_max_postings,omitempty" validate:"omitempty,min=0,max=50"`
	SupervisorIsActive    *bool      `json:"supervisor_is_active,omitempty"`
}

// (opsional) filter list
type SupervisorFilterDTO struct {
	Role      *string    `query:"role" validate:"omitempty,oneof=supervisor field_monitor"`
	FacultyID *uuid.UUID `query:"faculty_id"`
	Active    *bool      `query:"active"`
}

// =======================
// Response DTO
// =======================

type SupervisorResponseDTO struct {
	SupervisorID            uuid.UUID  `json:"supervisor_id"`
	SupervisorInstitutionID uuid.UUID  `json:"supervisor_institution_id"`
	SupervisorFullName      string     `json:"supervisor_full_name"`
	SupervisorRole          string     `json:"supervisor_role"`
	SupervisorRankID        *uuid.UUID `json:"supervisor_rank_id,omitempty"`
	SupervisorFacultyID     *uuid.UUID `json:"supervisor_faculty_id,omitempty"`
	SupervisorMaxPostings   int        `json:"supervisor_max_postings"`
	SupervisorIsActive      bool       `json:"supervisor_is_active"`
	SupervisorCreatedAt     time.Time  `json:"supervisor_created_at"`
	SupervisorUpdatedAt     *time.Time `json:"supervisor_updated_at,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *SupervisorCreateDTO) Normalize() {
	p.SupervisorFullName = strings.TrimSpace(p.SupervisorFullName)
	p.SupervisorRole = strings.TrimSpace(p.SupervisorRole)
}

func (p *SupervisorCreateDTO) ToModel(institutionID uuid.UUID) model.SupervisorModel {
	role := p.SupervisorRole
	if role == "" {
		role = "supervisor"
	}
	maxPostings := p.SupervisorMaxPostings
	if maxPostings == 0 {
		maxPostings = 2
	}
	isActive := true
	if p.SupervisorIsActive != nil {
		isActive = *p.SupervisorIsActive
	}
	return model.SupervisorModel{
		SupervisorInstitutionID: institutionID,
		SupervisorFullName:      p.SupervisorFullName,
		SupervisorRole:          role,
		SupervisorRankID:        p.SupervisorRankID,
		SupervisorFacultyID:     p.SupervisorFacultyID,
		SupervisorMaxPostings:   maxPostings,
		SupervisorIsActive:      isActive,
	}
}

func (u *SupervisorUpdateDTO) ApplyUpdates(ent *model.SupervisorModel) {
	if u.SupervisorFullName != nil {
		ent.SupervisorFullName = strings.TrimSpace(*u.SupervisorFullName)
	}
	if u.SupervisorRole != nil {
		ent.SupervisorRole = *u.SupervisorRole
	}
	if u.SupervisorRankID != nil {
		ent.SupervisorRankID = u.SupervisorRankID
	}
	if u.SupervisorFacultyID != nil {
		ent.SupervisorFacultyID = u.SupervisorFacultyID
	}
	if u.SupervisorMaxPostings != nil {
		ent.SupervisorMaxPostings = *u.SupervisorMaxPostings
	}
	if u.SupervisorIsActive != nil {
		ent.SupervisorIsActive = *u.SupervisorIsActive
	}
}

// Mapper entity -> response
func FromModel(ent model.SupervisorModel) SupervisorResponseDTO {
	return SupervisorResponseDTO{
		SupervisorID:            ent.SupervisorID,
		SupervisorInstitutionID: ent.SupervisorInstitutionID,
		SupervisorFullName:      ent.SupervisorFullName,
		SupervisorRole:          ent.SupervisorRole,
		SupervisorRankID:        ent.SupervisorRankID,
		SupervisorFacultyID:     ent.SupervisorFacultyID,
		SupervisorMaxPostings:   ent.SupervisorMaxPostings,
		SupervisorIsActive:      ent.SupervisorIsActive,
		SupervisorCreatedAt:     ent.SupervisorCreatedAt,
		SupervisorUpdatedAt:     ent.SupervisorUpdatedAt,
	}
}

func FromModels(list []model.SupervisorModel) []SupervisorResponseDTO {
	out := make([]SupervisorResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
