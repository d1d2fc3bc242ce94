package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"praktikku_backend/internals/features/academics/sessions/model"
)

// =======================
// Request DTO
// =======================

type SessionCreateDTO struct {
	SessionName      string `json:"session_name" validate:"required,min=4"`
	SessionMaxVisits int    `json:"session_max_visits" validate:"required,min=1,max=10"`
	// pointer: bedakan "tidak dikirim" vs "false"
	SessionIsActive *bool `json:"session_is_active,omitempty"`
}

type SessionUpdateDTO struct {
	SessionName      *string `json:"session_name,omitempty" validate:"omitempty,min=4"`
	SessionMaxVisits *int    `json:"session_max_visits,omitempty" validate:"omitempty,min=1,max=10"`
	SessionIsActive  *bool   `json:"session_is_active,omitempty"`
}

// (opsional) filter list
type SessionFilterDTO struct {
	Active *bool `query:"active" validate:"omitempty"`
}

// =======================
// Response DTO
// =======================

type SessionResponseDTO struct {
	SessionID            uuid.UUID  `json:"session_id"`
	SessionInstitutionID uuid.UUID  `json:"session_institution_id"`
	SessionName          string     `json:"session_name"`
	SessionMaxVisits     int        `json:"session_max_visits"`
	SessionIsActive      bool       `json:"session_is_active"`
	SessionCreatedAt     time.Time  `json:"session_created_at"`
	SessionUpdatedAt     *time.Time `json:"session_updated_at,omitempty"`
	SessionDeletedAt     *time.Time `json:"session_deleted_at,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *SessionCreateDTO) Normalize() {
	p.SessionName = strings.TrimSpace(p.SessionName)
}

func (p *SessionCreateDTO) ToModel(institutionID uuid.UUID) model.SessionModel {
	isActive := true
	if p.SessionIsActive != nil {
		isActive = *p.SessionIsActive // hormati input eksplisit
	}
	return model.SessionModel{
		SessionInstitutionID: institutionID,
		SessionName:          p.SessionName,
		SessionMaxVisits:     p.SessionMaxVisits,
		SessionIsActive:      isActive,
	}
}

func (u *SessionUpdateDTO) ApplyUpdates(ent *model.SessionModel) {
	if u.SessionName != nil {
		ent.SessionName = strings.TrimSpace(*u.SessionName)
	}
	if u.SessionMaxVisits != nil {
		ent.SessionMaxVisits = *u.SessionMaxVisits
	}
	if u.SessionIsActive != nil {
		ent.SessionIsActive = *u.SessionIsActive
	}
}

// Mapper entity -> response
func FromModel(ent model.SessionModel) SessionResponseDTO {
	return SessionResponseDTO{
		SessionID:            ent.SessionID,
		SessionInstitutionID: ent.SessionInstitutionID,
		SessionName:          ent.SessionName,
		SessionMaxVisits:     ent.SessionMaxVisits,
		SessionIsActive:      ent.SessionIsActive,
		SessionCreatedAt:     ent.SessionCreatedAt,
		SessionUpdatedAt:     ent.SessionUpdatedAt,
		SessionDeletedAt:     ent.SessionDeletedAt,
	}
}

func FromModels(list []model.SessionModel) []SessionResponseDTO {
	out := make([]SessionResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
