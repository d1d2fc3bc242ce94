package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel merepresentasikan tabel `school_groups`
// (kelompok mahasiswa per sekolah; unit penugasan supervisi).
type GroupModel struct {
	GroupID       uuid.UUID `json:"group_id" gorm:"column:group_id;type:uuid;default:gen_random_uuid();primaryKey"`
	GroupSchoolID uuid.UUID `json:"group_school_id" gorm:"column:group_school_id;type:uuid;not null;uniqueIndex:uq_group_number_per_school,priority:1"` // FK -> schools(school_id)

	GroupNumber       int `json:"group_number" gorm:"column:group_number;not null;uniqueIndex:uq_group_number_per_school,priority:2"`
	GroupStudentCount int `json:"group_student_count" gorm:"column:group_student_count;not null;default:0"`

	GroupCreatedAt time.Time  `json:"group_created_at" gorm:"column:group_created_at;not null;autoCreateTime"`
	GroupUpdatedAt *time.Time `json:"group_updated_at,omitempty" gorm:"column:group_updated_at"`
}

func (GroupModel) TableName() string {
	return "school_groups"
}
