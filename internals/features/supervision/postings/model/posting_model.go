package model

import (
	"time"

	"github.com/google/uuid"
)

// PostingModel merepresentasikan tabel `supervisor_postings`:
// penugasan satu supervisor ke satu slot (school, group, visit).
//
// DB membawa partial unique index:
//
//	CREATE UNIQUE INDEX uq_posting_active_slot
//	ON supervisor_postings (posting_session_id, posting_school_id, posting_group_id, posting_visit_number)
//	WHERE posting_invalidated_at IS NULL;
//
// Index ini yang menserialisasi execute konkuren untuk session yang sama:
// yang kalah dapat 23505 dan harus preview ulang.
type PostingModel struct {
	PostingID            uuid.UUID `json:"posting_id" gorm:"column:posting_id;type:uuid;default:gen_random_uuid();primaryKey"`
	PostingInstitutionID uuid.UUID `json:"posting_institution_id" gorm:"column:posting_institution_id;type:uuid;not null;index"`
	PostingSessionID     uuid.UUID `json:"posting_session_id" gorm:"column:posting_session_id;type:uuid;not null;index"`

	PostingSupervisorID uuid.UUID `json:"posting_supervisor_id" gorm:"column:posting_supervisor_id;type:uuid;not null;index"`
	PostingSchoolID     uuid.UUID `json:"posting_school_id" gorm:"column:posting_school_id;type:uuid;not null;index"`
	PostingGroupID      uuid.UUID `json:"posting_group_id" gorm:"column:posting_group_id;type:uuid;not null;index"`
	PostingVisitNumber  int       `json:"posting_visit_number" gorm:"column:posting_visit_number;not null"`

	// NULL untuk posting manual; terisi bila dibuat oleh auto-posting
	PostingBatchID *uuid.UUID `json:"posting_batch_id,omitempty" gorm:"column:posting_batch_id;type:uuid;index"`

	PostingCreatedAt     time.Time  `json:"posting_created_at" gorm:"column:posting_created_at;not null;autoCreateTime"`
	PostingInvalidatedAt *time.Time `json:"posting_invalidated_at,omitempty" gorm:"column:posting_invalidated_at"` // soft invalidate (rollback)
}

func (PostingModel) TableName() string {
	return "supervisor_postings"
}
