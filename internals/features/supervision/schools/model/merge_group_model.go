package model

import (
	"time"

	"github.com/google/uuid"
)

// MergeGroupModel merepresentasikan tabel `merge_groups`:
// dua kelompok kecil dari sekolah berbeda berbagi satu posting.
// Selama merge masih hidup, kelompok sekunder TIDAK menghasilkan slot sendiri.
type MergeGroupModel struct {
	MergeID            uuid.UUID `json:"merge_id" gorm:"column:merge_id;type:uuid;default:gen_random_uuid();primaryKey"`
	MergeInstitutionID uuid.UUID `json:"merge_institution_id" gorm:"column:merge_institution_id;type:uuid;not null;index"`

	MergePrimaryGroupID   uuid.UUID `json:"merge_primary_group_id" gorm:"column:merge_primary_group_id;type:uuid;not null;index"`
	MergeSecondaryGroupID uuid.UUID `json:"merge_secondary_group_id" gorm:"column:merge_secondary_group_id;type:uuid;not null;index"`

	// Posting primer yang ditumpangi kelompok sekunder
	MergePostingID *uuid.UUID `json:"merge_posting_id,omitempty" gorm:"column:merge_posting_id;type:uuid;index"`

	MergeCreatedAt     time.Time  `json:"merge_created_at" gorm:"column:merge_created_at;not null;autoCreateTime"`
	MergeInvalidatedAt *time.Time `json:"merge_invalidated_at,omitempty" gorm:"column:merge_invalidated_at"`
}

func (MergeGroupModel) TableName() string {
	return "merge_groups"
}
