package model

import (
	"time"

	"github.com/google/uuid"
)

// FacultyModel merepresentasikan tabel `faculties`
// (dipakai untuk run auto-posting scoped per dean).
type FacultyModel struct {
	FacultyID            uuid.UUID `json:"faculty_id" gorm:"column:faculty_id;type:uuid;default:gen_random_uuid();primaryKey"`
	FacultyInstitutionID uuid.UUID `json:"faculty_institution_id" gorm:"column:faculty_institution_id;type:uuid;not null;index"`

	FacultyCode string `json:"faculty_code" gorm:"column:faculty_code;type:varchar(20);not null"`
	FacultyName string `json:"faculty_name" gorm:"column:faculty_name;type:varchar(160);not null"`

	FacultyCreatedAt time.Time  `json:"faculty_created_at" gorm:"column:faculty_created_at;not null;autoCreateTime"`
	FacultyUpdatedAt *time.Time `json:"faculty_updated_at,omitempty" gorm:"column:faculty_updated_at"`
}

func (FacultyModel) TableName() string {
	return "faculties"
}
