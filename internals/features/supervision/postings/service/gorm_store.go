package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"praktikku_backend/internals/features/supervision/postings/model"
)

// GormStore: implementasi Store di atas PostgreSQL (GORM).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetSession(ctx context.Context, institutionID, sessionID uuid.UUID) (*SessionInfo, error) {
	var row struct {
		SessionID        uuid.UUID `gorm:"column:session_id"`
		SessionName      string    `gorm:"column:session_name"`
		SessionMaxVisits int       `gorm:"column:session_max_visits"`
	}
	err := s.db.WithContext(ctx).
		Table("academic_sessions").
		Select("session_id, session_name, session_max_visits").
		Where("session_id = ? AND session_institution_id = ? AND session_deleted_at IS NULL", sessionID, institutionID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &SessionInfo{ID: row.SessionID, Name: row.SessionName, MaxVisits: row.SessionMaxVisits}, nil
}

func (s *GormStore) ListEligibleGroups(ctx context.Context, institutionID uuid.UUID) ([]GroupSlotInfo, error) {
	var rows []GroupSlotInfo
	err := s.db.WithContext(ctx).Raw(`
		SELECT s.school_id                            AS school_id,
		       s.school_name                          AS school_name,
		       COALESCE(s.school_route_id::text, '')  AS route_key,
		       COALESCE(s.school_lga_id::text, '')    AS lga_key,
		       s.school_distance_km                   AS distance_km,
		       g.group_id                             AS group_id,
		       g.group_number                         AS group_number
		FROM school_groups g
		JOIN schools s ON s.school_id = g.group_school_id
		WHERE s.school_institution_id = ?
		  AND s.school_status = 'active'
		  AND s.school_deleted_at IS NULL
		  AND g.group_student_count > 0
		ORDER BY s.school_created_at ASC, s.school_id ASC, g.group_number ASC
	`, institutionID).Scan(&rows).Error
	return rows, err
}

func (s *GormStore) ListLiveMerges(ctx context.Context, institutionID uuid.UUID) ([]MergeInfo, error) {
	var rows []MergeInfo
	err := s.db.WithContext(ctx).
		Table("merge_groups").
		Select("merge_id, merge_primary_group_id AS primary_group_id, merge_secondary_group_id AS secondary_group_id, merge_posting_id AS posting_id").
		Where("merge_institution_id = ? AND merge_invalidated_at IS NULL", institutionID).
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) ListActivePostings(ctx context.Context, institutionID, sessionID uuid.UUID) ([]ActivePostingInfo, error) {
	var rows []ActivePostingInfo
	err := s.db.WithContext(ctx).
		Model(&model.PostingModel{}).
		Select("posting_school_id AS school_id, posting_group_id AS group_id, posting_visit_number AS visit_number, posting_supervisor_id AS supervisor_id").
		Where("posting_institution_id = ? AND posting_session_id = ? AND posting_invalidated_at IS NULL", institutionID, sessionID).
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) ListSupervisors(ctx context.Context, institutionID uuid.UUID, facultyID *uuid.UUID) ([]Supervisor, error) {
	q := s.db.WithContext(ctx).Raw(`
		SELECT sp.supervisor_id           AS id,
		       sp.supervisor_full_name    AS name,
		       COALESCE(r.rank_code, '')  AS rank_code,
		       COALESCE(r.rank_weight, 0) AS rank_weight,
		       sp.supervisor_max_postings AS max_postings
		FROM supervisors sp
		LEFT JOIN supervisor_ranks r ON r.rank_id = sp.supervisor_rank_id
		WHERE sp.supervisor_institution_id = ?
		  AND sp.supervisor_is_active
		  AND sp.supervisor_deleted_at IS NULL
		  AND sp.supervisor_role IN ('supervisor', 'field_monitor')
		  AND (?::uuid IS NULL OR sp.supervisor_faculty_id = ?)
		ORDER BY sp.supervisor_id ASC
	`, institutionID, facultyID, facultyID)

	var rows []Supervisor
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateBatch menulis semua posting + record batch dalam SATU transaksi.
// Unique violation pada partial index uq_posting_active_slot berarti ada
// execute lain yang menang duluan → ErrSlotConflict (retryable).
func (s *GormStore) CreateBatch(ctx context.Context, institutionID uuid.UUID, createdBy *uuid.UUID, criteria Criteria, assignments []Assignment) (uuid.UUID, error) {
	critJSON, err := criteria.SnapshotJSON()
	if err != nil {
		return uuid.Nil, err
	}

	batchID := uuid.New()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make(pq.StringArray, 0, len(assignments))
		for _, a := range assignments {
			p := model.PostingModel{
				PostingID:            uuid.New(),
				PostingInstitutionID: institutionID,
				PostingSessionID:     criteria.SessionID,
				PostingSupervisorID:  a.SupervisorID,
				PostingSchoolID:      a.SchoolID,
				PostingGroupID:       a.GroupID,
				PostingVisitNumber:   a.VisitNumber,
				PostingBatchID:       &batchID,
			}
			if err := tx.Create(&p).Error; err != nil {
				if isDuplicateKey(err) {
					return ErrSlotConflict
				}
				return err
			}
			ids = append(ids, p.PostingID.String())
		}

		batch := model.BatchModel{
			BatchID:            batchID,
			BatchInstitutionID: institutionID,
			BatchSessionID:     criteria.SessionID,
			BatchCriteria:      critJSON,
			BatchPostingIDs:    ids,
			BatchTotalPostings: len(ids),
			BatchCreatedBy:     createdBy,
		}
		return tx.Create(&batch).Error
	})
	if err != nil {
		return uuid.Nil, err
	}
	return batchID, nil
}

func (s *GormStore) GetBatch(ctx context.Context, institutionID, batchID uuid.UUID) (*model.BatchModel, error) {
	var b model.BatchModel
	err := s.db.WithContext(ctx).
		Where("batch_id = ? AND batch_institution_id = ?", batchID, institutionID).
		Take(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}
	return &b, nil
}

// RollbackBatch: satu transaksi, all-or-nothing. Stempel batch dulu dengan
// guard rolled_back_at IS NULL supaya rollback ganda yang balapan tetap
// cuma menang satu.
func (s *GormStore) RollbackBatch(ctx context.Context, institutionID, batchID uuid.UUID, mergeIDs []uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		res := tx.Model(&model.BatchModel{}).
			Where("batch_id = ? AND batch_institution_id = ? AND batch_rolled_back_at IS NULL", batchID, institutionID).
			Update("batch_rolled_back_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyRolledBack
		}

		// Invalidate seluruh posting batch ini (soft, bukan hard delete)
		if err := tx.Model(&model.PostingModel{}).
			Where("posting_batch_id = ? AND posting_invalidated_at IS NULL", batchID).
			Update("posting_invalidated_at", now).Error; err != nil {
			return err
		}

		// Cascade: merge yang dipilih engine (menumpang posting batch ini)
		if len(mergeIDs) == 0 {
			return nil
		}
		return tx.Exec(`
			UPDATE merge_groups
			SET merge_invalidated_at = ?
			WHERE merge_id IN ? AND merge_invalidated_at IS NULL
		`, now, mergeIDs).Error
	})
}

func (s *GormStore) ListBatches(ctx context.Context, institutionID uuid.UUID, f BatchFilter) ([]model.BatchModel, int64, error) {
	q := s.db.WithContext(ctx).
		Model(&model.BatchModel{}).
		Where("batch_institution_id = ?", institutionID)
	if f.SessionID != nil {
		q = q.Where("batch_session_id = ?", *f.SessionID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.BatchModel
	if err := q.Order("batch_created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// isDuplicateKey: cek pelanggaran unique Postgres (SQLSTATE 23505).
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
