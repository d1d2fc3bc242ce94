package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// BatchModel merepresentasikan tabel `posting_batches`:
// catatan audit immutable untuk satu operasi execute auto-posting.
// Batch tetap ada walaupun posting-nya sudah di-invalidate (rollback).
type BatchModel struct {
	BatchID            uuid.UUID `json:"batch_id" gorm:"column:batch_id;type:uuid;default:gen_random_uuid();primaryKey"`
	BatchInstitutionID uuid.UUID `json:"batch_institution_id" gorm:"column:batch_institution_id;type:uuid;not null;index"`
	BatchSessionID     uuid.UUID `json:"batch_session_id" gorm:"column:batch_session_id;type:uuid;not null;index"`

	// Kriteria yang dipakai saat execute (snapshot, JSONB)
	BatchCriteria datatypes.JSON `json:"batch_criteria" gorm:"column:batch_criteria;type:jsonb"`

	// Seluruh posting yang dibuat batch ini
	BatchPostingIDs    pq.StringArray `json:"batch_posting_ids" gorm:"column:batch_posting_ids;type:uuid[]"`
	BatchTotalPostings int            `json:"batch_total_postings" gorm:"column:batch_total_postings;not null;default:0"`

	BatchCreatedBy *uuid.UUID `json:"batch_created_by,omitempty" gorm:"column:batch_created_by;type:uuid"`

	BatchCreatedAt    time.Time  `json:"batch_created_at" gorm:"column:batch_created_at;not null;autoCreateTime"`
	BatchRolledBackAt *time.Time `json:"batch_rolled_back_at,omitempty" gorm:"column:batch_rolled_back_at"` // NULL = masih aktif
}

func (BatchModel) TableName() string {
	return "posting_batches"
}
