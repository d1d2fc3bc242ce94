package dto

import (
	"time"

	"github.com/google/uuid"

	"praktikku_backend/internals/features/supervision/postings/model"
)

// (opsional) filter list posting
type PostingFilterDTO struct {
	SessionID          *uuid.UUID `query:"session_id"`
	SupervisorID       *uuid.UUID `query:"supervisor_id"`
	BatchID            *uuid.UUID `query:"batch_id"`
	IncludeInvalidated bool       `query:"include_invalidated"`
}

type PostingResponseDTO struct {
	PostingID            uuid.UUID  `json:"posting_id"`
	PostingSessionID     uuid.UUID  `json:"posting_session_id"`
	PostingSupervisorID  uuid.UUID  `json:"posting_supervisor_id"`
	PostingSchoolID      uuid.UUID  `json:"posting_school_id"`
	PostingGroupID       uuid.UUID  `json:"posting_group_id"`
	PostingVisitNumber   int        `json:"posting_visit_number"`
	PostingBatchID       *uuid.UUID `json:"posting_batch_id,omitempty"`
	PostingCreatedAt     time.Time  `json:"posting_created_at"`
	PostingInvalidatedAt *time.Time `json:"posting_invalidated_at,omitempty"`
}

func FromPostingModel(ent model.PostingModel) PostingResponseDTO {
	return PostingResponseDTO{
		PostingID:            ent.PostingID,
		PostingSessionID:     ent.PostingSessionID,
		PostingSupervisorID:  ent.PostingSupervisorID,
		PostingSchoolID:      ent.PostingSchoolID,
		PostingGroupID:       ent.PostingGroupID,
		PostingVisitNumber:   ent.PostingVisitNumber,
		PostingBatchID:       ent.PostingBatchID,
		PostingCreatedAt:     ent.PostingCreatedAt,
		PostingInvalidatedAt: ent.PostingInvalidatedAt,
	}
}

func FromPostingModels(list []model.PostingModel) []PostingResponseDTO {
	out := make([]PostingResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromPostingModel(it))
	}
	return out
}
