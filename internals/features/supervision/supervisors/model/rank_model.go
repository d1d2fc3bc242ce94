package model

import (
	"time"

	"github.com/google/uuid"
)

// RankModel merepresentasikan tabel `supervisor_ranks`
// (jabatan akademik: bobot dipakai mode prioritas auto-posting).
type RankModel struct {
	RankID            uuid.UUID `json:"rank_id" gorm:"column:rank_id;type:uuid;default:gen_random_uuid();primaryKey"`
	RankInstitutionID uuid.UUID `json:"rank_institution_id" gorm:"column:rank_institution_id;type:uuid;not null;uniqueIndex:uq_rank_code_per_institution,priority:1"`

	RankCode string `json:"rank_code" gorm:"column:rank_code;type:varchar(20);not null;uniqueIndex:uq_rank_code_per_institution,priority:2"`
	RankName string `json:"rank_name" gorm:"column:rank_name;type:varchar(120);not null"`

	// Bobot ordinal: lebih besar = lebih senior = dilayani lebih dulu saat priority mode
	RankWeight int `json:"rank_weight" gorm:"column:rank_weight;not null;default:0"`

	RankCreatedAt time.Time  `json:"rank_created_at" gorm:"column:rank_created_at;not null;autoCreateTime"`
	RankUpdatedAt *time.Time `json:"rank_updated_at,omitempty" gorm:"column:rank_updated_at"`
}

func (RankModel) TableName() string {
	return "supervisor_ranks"
}
