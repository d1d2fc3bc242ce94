package service

import (
	"context"

	"github.com/google/uuid"

	"praktikku_backend/internals/features/supervision/postings/model"
)

// SessionInfo: potongan session yang dibutuhkan engine.
type SessionInfo struct {
	ID        uuid.UUID
	Name      string
	MaxVisits int
}

// GroupSlotInfo: hasil join schools + school_groups yang eligible
// (sekolah aktif, student_count > 0). Secondary merge hidup TIDAK
// difilter di sini — resolver yang mengecualikannya, supaya aturannya
// bisa diuji tanpa DB. Urutan baris = urutan insert sekolah, lalu
// group_number.
type GroupSlotInfo struct {
	SchoolID    uuid.UUID `gorm:"column:school_id"`
	SchoolName  string    `gorm:"column:school_name"`
	RouteKey    string    `gorm:"column:route_key"`
	LgaKey      string    `gorm:"column:lga_key"`
	DistanceKm  float64   `gorm:"column:distance_km"`
	GroupID     uuid.UUID `gorm:"column:group_id"`
	GroupNumber int       `gorm:"column:group_number"`
}

// ActivePostingInfo: posting aktif (belum di-invalidate) satu session.
type ActivePostingInfo struct {
	SchoolID     uuid.UUID `gorm:"column:school_id"`
	GroupID      uuid.UUID `gorm:"column:group_id"`
	VisitNumber  int       `gorm:"column:visit_number"`
	SupervisorID uuid.UUID `gorm:"column:supervisor_id"`
}

// MergeInfo: merge hidup — kelompok sekunder menumpang posting primer.
type MergeInfo struct {
	MergeID          uuid.UUID  `gorm:"column:merge_id"`
	PrimaryGroupID   uuid.UUID  `gorm:"column:primary_group_id"`
	SecondaryGroupID uuid.UUID  `gorm:"column:secondary_group_id"`
	PostingID        *uuid.UUID `gorm:"column:posting_id"`
}

type BatchFilter struct {
	SessionID *uuid.UUID
	Limit     int
	Offset    int
}

// Store adalah batas storage engine auto-posting. Semua read murni;
// CreateBatch dan RollbackBatch masing-masing berjalan dalam SATU
// transaksi (atomic, tidak pernah ada persistensi parsial).
type Store interface {
	GetSession(ctx context.Context, institutionID, sessionID uuid.UUID) (*SessionInfo, error)
	ListEligibleGroups(ctx context.Context, institutionID uuid.UUID) ([]GroupSlotInfo, error)
	ListLiveMerges(ctx context.Context, institutionID uuid.UUID) ([]MergeInfo, error)
	ListActivePostings(ctx context.Context, institutionID, sessionID uuid.UUID) ([]ActivePostingInfo, error)
	// CurrentPostings pada hasil selalu 0 — resolver yang mengisinya dari
	// ListActivePostings supaya preview & execute melihat agregat yang sama.
	ListSupervisors(ctx context.Context, institutionID uuid.UUID, facultyID *uuid.UUID) ([]Supervisor, error)

	// CreateBatch menulis seluruh posting + record batch dalam satu tx.
	// Mengembalikan ErrSlotConflict bila ada unique violation (execute
	// konkuren menang duluan).
	CreateBatch(ctx context.Context, institutionID uuid.UUID, createdBy *uuid.UUID, criteria Criteria, assignments []Assignment) (uuid.UUID, error)

	GetBatch(ctx context.Context, institutionID, batchID uuid.UUID) (*model.BatchModel, error)
	// RollbackBatch meng-invalidate seluruh posting batch + merge group di
	// mergeIDs (dipilih engine dari merge hidup yang menumpang posting batch),
	// lalu stempel batch_rolled_back_at — satu tx, all-or-nothing.
	// Race-safe: ErrAlreadyRolledBack bila stempel sudah terisi.
	RollbackBatch(ctx context.Context, institutionID, batchID uuid.UUID, mergeIDs []uuid.UUID) error
	ListBatches(ctx context.Context, institutionID uuid.UUID, f BatchFilter) ([]model.BatchModel, int64, error)
}
