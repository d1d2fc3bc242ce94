package dto

import (
	"time"

	"github.com/google/uuid"

	"praktikku_backend/internals/features/supervision/schools/model"
)

// MergeGroupCreateDTO: gabungkan dua kelompok kecil lintas sekolah
// agar berbagi satu posting.
type MergeGroupCreateDTO struct {
	MergePrimaryGroupID   uuid.UUID `json:"merge_primary_group_id" validate:"required"`
	MergeSecondaryGroupID uuid.UUID `json:"merge_secondary_group_id" validate:"required"`
}

type MergeGroupResponseDTO struct {
	MergeID               uuid.UUID  `json:"merge_id"`
	MergePrimaryGroupID   uuid.UUID  `json:"merge_primary_group_id"`
	MergeSecondaryGroupID uuid.UUID  `json:"merge_secondary_group_id"`
	MergePostingID        *uuid.UUID `json:"merge_posting_id,omitempty"`
	MergeIsActive         bool       `json:"merge_is_active"`
	MergeCreatedAt        time.Time  `json:"merge_created_at"`
	MergeInvalidatedAt    *time.Time `json:"merge_invalidated_at,omitempty"`
}

func (p *MergeGroupCreateDTO) ToModel(institutionID uuid.UUID) model.MergeGroupModel {
	return model.MergeGroupModel{
		MergeInstitutionID:    institutionID,
		MergePrimaryGroupID:   p.MergePrimaryGroupID,
		MergeSecondaryGroupID: p.MergeSecondaryGroupID,
	}
}

func FromMergeGroupModel(ent model.MergeGroupModel) MergeGroupResponseDTO {
	return MergeGroupResponseDTO{
		MergeID:               ent.MergeID,
		MergePrimaryGroupID:   ent.MergePrimaryGroupID,
		MergeSecondaryGroupID: ent.MergeSecondaryGroupID,
		MergePostingID:        ent.MergePostingID,
		MergeIsActive:         ent.MergeInvalidatedAt == nil,
		MergeCreatedAt:        ent.MergeCreatedAt,
		MergeInvalidatedAt:    ent.MergeInvalidatedAt,
	}
}

func FromMergeGroupModels(list []model.MergeGroupModel) []MergeGroupResponseDTO {
	out := make([]MergeGroupResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromMergeGroupModel(it))
	}
	return out
}
