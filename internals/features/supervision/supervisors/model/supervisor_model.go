package model

import (
	"time"

	"github.com/google/uuid"
)

// SupervisorModel merepresentasikan tabel `supervisors`.
// Jumlah posting berjalan TIDAK disimpan di sini — selalu dihitung
// dari supervisor_postings aktif (read-derived aggregate).
type SupervisorModel struct {
	SupervisorID            uuid.UUID `json:"supervisor_id" gorm:"column:supervisor_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SupervisorInstitutionID uuid.UUID `json:"supervisor_institution_id" gorm:"column:supervisor_institution_id;type:uuid;not null;index"`

	SupervisorFullName string `json:"supervisor_full_name" gorm:"column:supervisor_full_name;type:varchar(160);not null"`

	// supervisor | field_monitor
	SupervisorRole string `json:"supervisor_role" gorm:"column:supervisor_role;type:varchar(20);not null;default:'supervisor'"`

	SupervisorRankID    *uuid.UUID `json:"supervisor_rank_id,omitempty" gorm:"column:supervisor_rank_id;type:uuid;index"` // FK -> supervisor_ranks(rank_id)
	SupervisorFacultyID *uuid.UUID `json:"supervisor_faculty_id,omitempty" gorm:"column:supervisor_faculty_id;type:uuid;index"`

	// Batas posting aktif per session (diedit HR/admin)
	SupervisorMaxPostings int `json:"supervisor_max_postings" gorm:"column:supervisor_max_postings;not null;default:2"`

	SupervisorIsActive bool `json:"supervisor_is_active" gorm:"column:supervisor_is_active;not null;default:true"`

	SupervisorCreatedAt time.Time  `json:"supervisor_created_at" gorm:"column:supervisor_created_at;not null;autoCreateTime"`
	SupervisorUpdatedAt *time.Time `json:"supervisor_updated_at,omitempty" gorm:"column:supervisor_updated_at"`
	SupervisorDeletedAt *time.Time `json:"supervisor_deleted_at,omitempty" gorm:"column:supervisor_deleted_at"`
}

func (SupervisorModel) TableName() string {
	return "supervisors"
}
