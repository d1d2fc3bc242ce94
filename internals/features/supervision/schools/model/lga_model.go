package model

import (
	"time"

	"github.com/google/uuid"
)

// LgaModel merepresentasikan tabel `school_lgas`
// (Local Government Area; dipakai posting_type=lga_based).
type LgaModel struct {
	LgaID            uuid.UUID `json:"lga_id" gorm:"column:lga_id;type:uuid;default:gen_random_uuid();primaryKey"`
	LgaInstitutionID uuid.UUID `json:"lga_institution_id" gorm:"column:lga_institution_id;type:uuid;not null;index"`

	LgaName  string  `json:"lga_name" gorm:"column:lga_name;type:varchar(120);not null"`
	LgaState *string `json:"lga_state,omitempty" gorm:"column:lga_state;type:varchar(120)"`

	LgaCreatedAt time.Time  `json:"lga_created_at" gorm:"column:lga_created_at;not null;autoCreateTime"`
	LgaUpdatedAt *time.Time `json:"lga_updated_at,omitempty" gorm:"column:lga_updated_at"`
}

func (LgaModel) TableName() string {
	return "school_lgas"
}
