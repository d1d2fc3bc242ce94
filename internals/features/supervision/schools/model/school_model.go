package model

import (
	"time"

	"github.com/google/uuid"
)

// SchoolStatus nilai kolom school_status
const (
	SchoolStatusActive   = "active"
	SchoolStatusInactive = "inactive"
)

// SchoolModel merepresentasikan tabel `schools` (sekolah mitra praktik).
type SchoolModel struct {
	SchoolID            uuid.UUID `json:"school_id" gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SchoolInstitutionID uuid.UUID `json:"school_institution_id" gorm:"column:school_institution_id;type:uuid;not null;index"`

	SchoolName string `json:"school_name" gorm:"column:school_name;type:varchar(160);not null"`

	SchoolRouteID *uuid.UUID `json:"school_route_id,omitempty" gorm:"column:school_route_id;type:uuid;index"` // FK -> school_routes(route_id)
	SchoolLgaID   *uuid.UUID `json:"school_lga_id,omitempty" gorm:"column:school_lga_id;type:uuid;index"`     // FK -> school_lgas(lga_id)

	// Jarak dari institusi (km), precomputed saat sekolah didaftarkan
	SchoolDistanceKm float64 `json:"school_distance_km" gorm:"column:school_distance_km;not null;default:0"`

	// active | inactive
	SchoolStatus string `json:"school_status" gorm:"column:school_status;type:varchar(20);not null;default:'active'"`

	SchoolCreatedAt time.Time  `json:"school_created_at" gorm:"column:school_created_at;not null;autoCreateTime"`
	SchoolUpdatedAt *time.Time `json:"school_updated_at,omitempty" gorm:"column:school_updated_at"`
	SchoolDeletedAt *time.Time `json:"school_deleted_at,omitempty" gorm:"column:school_deleted_at"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
