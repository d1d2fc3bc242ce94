package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"praktikku_backend/internals/features/supervision/postings/model"
)

// =======================
// Response DTO
// =======================

type BatchResponseDTO struct {
	BatchID            uuid.UUID       `json:"batch_id"`
	BatchSessionID     uuid.UUID       `json:"batch_session_id"`
	BatchCriteria      json.RawMessage `json:"batch_criteria"`
	BatchPostingIDs    []string        `json:"batch_posting_ids"`
	BatchTotalPostings int             `json:"batch_total_postings"`
	BatchCreatedBy     *uuid.UUID      `json:"batch_created_by,omitempty"`
	BatchCreatedAt     time.Time       `json:"batch_created_at"`
	BatchRolledBackAt  *time.Time      `json:"batch_rolled_back_at,omitempty"`
	BatchIsActive      bool            `json:"batch_is_active"` // false setelah rollback
}

// Mapper entity -> response
func FromBatchModel(ent model.BatchModel) BatchResponseDTO {
	return BatchResponseDTO{
		BatchID:            ent.BatchID,
		BatchSessionID:     ent.BatchSessionID,
		BatchCriteria:      json.RawMessage(ent.BatchCriteria),
		BatchPostingIDs:    ent.BatchPostingIDs,
		BatchTotalPostings: ent.BatchTotalPostings,
		BatchCreatedBy:     ent.BatchCreatedBy,
		BatchCreatedAt:     ent.BatchCreatedAt,
		BatchRolledBackAt:  ent.BatchRolledBackAt,
		BatchIsActive:      ent.BatchRolledBackAt == nil,
	}
}

func FromBatchModels(list []model.BatchModel) []BatchResponseDTO {
	out := make([]BatchResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromBatchModel(it))
	}
	return out
}
