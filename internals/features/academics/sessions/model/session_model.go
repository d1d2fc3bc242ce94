package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel merepresentasikan tabel `academic_sessions`
// (satu periode praktik pengalaman lapangan per institusi).
type SessionModel struct {
	SessionID            uuid.UUID `json:"session_id" gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SessionInstitutionID uuid.UUID `json:"session_institution_id" gorm:"column:session_institution_id;type:uuid;not null;index"`

	SessionName string `json:"session_name" gorm:"column:session_name;type:varchar(60);not null"` // contoh: "2025/2026"

	// Jumlah kunjungan supervisi maksimal per kelompok dalam satu session
	SessionMaxVisits int `json:"session_max_visits" gorm:"column:session_max_visits;not null;default:3"`

	SessionIsActive bool `json:"session_is_active" gorm:"column:session_is_active;not null;default:true"`

	SessionCreatedAt time.Time  `json:"session_created_at" gorm:"column:session_created_at;not null;autoCreateTime"`
	SessionUpdatedAt *time.Time `json:"session_updated_at,omitempty" gorm:"column:session_updated_at"`
	SessionDeletedAt *time.Time `json:"session_deleted_at,omitempty" gorm:"column:session_deleted_at"`
}

func (SessionModel) TableName() string {
	return "academic_sessions"
}
