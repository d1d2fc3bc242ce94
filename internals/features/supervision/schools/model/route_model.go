package model

import (
	"time"

	"github.com/google/uuid"
)

// RouteModel merepresentasikan tabel `school_routes`
// (jalur perjalanan supervisi; dipakai posting_type=route_based).
type RouteModel struct {
	RouteID            uuid.UUID `json:"route_id" gorm:"column:route_id;type:uuid;default:gen_random_uuid();primaryKey"`
	RouteInstitutionID uuid.UUID `json:"route_institution_id" gorm:"column:route_institution_id;type:uuid;not null;index"`

	RouteName string `json:"route_name" gorm:"column:route_name;type:varchar(120);not null"`

	RouteCreatedAt time.Time  `json:"route_created_at" gorm:"column:route_created_at;not null;autoCreateTime"`
	RouteUpdatedAt *time.Time `json:"route_updated_at,omitempty" gorm:"column:route_updated_at"`
}

func (RouteModel) TableName() string {
	return "school_routes"
}
