package dto

import (
	"github.com/google/uuid"

	"praktikku_backend/internals/features/supervision/postings/service"
)

// =======================
// Request DTO
// =======================

// AutoPostingCriteriaDTO: body untuk preview & execute (bentuknya identik —
// preview yang dikonfirmasi user dieksekusi dengan body yang sama persis).
type AutoPostingCriteriaDTO struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`

	// visits_included menang bila keduanya dikirim; number_of_postings
	// dipertahankan untuk kompatibilitas klien lama.
	VisitsIncluded   int `json:"visits_included" validate:"omitempty,min=1,max=10"`
	NumberOfPostings int `json:"number_of_postings" validate:"omitempty,min=1,max=10"`

	PostingType     string     `json:"posting_type" validate:"omitempty,oneof=random route_based lga_based"`
	PriorityEnabled bool       `json:"priority_enabled"`
	FacultyID       *uuid.UUID `json:"faculty_id,omitempty"`
}

func (d *AutoPostingCriteriaDTO) ToCriteria() (service.Criteria, error) {
	visits := d.VisitsIncluded
	if visits == 0 {
		visits = d.NumberOfPostings
	}
	pt, err := service.ParsePostingType(d.PostingType)
	if err != nil {
		return service.Criteria{}, err
	}
	return service.Criteria{
		SessionID:       d.SessionID,
		VisitsIncluded:  visits,
		PostingType:     pt,
		PriorityEnabled: d.PriorityEnabled,
		FacultyID:       d.FacultyID,
	}, nil
}

// (opsional) filter history batch
type BatchFilterDTO struct {
	SessionID *uuid.UUID `query:"session_id"`
}
