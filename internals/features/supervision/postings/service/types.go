package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error sentinel — controller yang memetakan ke status HTTP.
var (
	ErrInvalidCriteria   = errors.New("kriteria auto-posting tidak valid")
	ErrSessionNotFound   = errors.New("session tidak ditemukan")
	ErrBatchNotFound     = errors.New("batch tidak ditemukan")
	ErrAlreadyRolledBack = errors.New("batch sudah pernah di-rollback")
	// Retryable: slot berubah karena execute lain menang duluan (unique violation)
	ErrSlotConflict = errors.New("slot berubah saat execute, jalankan preview ulang")
)

// Slot adalah satu kesempatan posting (school, group, visit) yang belum
// tercover posting aktif. Slot tidak pernah disimpan — selalu diturunkan
// ulang dari postings + groups tiap run.
type Slot struct {
	SchoolID    uuid.UUID
	SchoolName  string
	GroupID     uuid.UUID
	GroupNumber int
	VisitNumber int
	RouteKey    string // kosong bila sekolah tidak punya route
	LgaKey      string // kosong bila sekolah tidak punya LGA
	DistanceKm  float64
	SchoolOrder int // urutan kemunculan sekolah pada output resolver
}

// Supervisor adalah snapshot immutable satu dosen pembimbing/field monitor.
// CurrentPostings sudah termasuk posting aktif yang ada sebelum run ini.
type Supervisor struct {
	ID              uuid.UUID
	Name            string
	RankCode        string
	RankWeight      int
	CurrentPostings int
	MaxPostings     int
}

// =======================
// Posting type (tagged variant)
// =======================

// PostingType menentukan pengurutan lokasi slot dalam satu visit.
// Loop scheduler agnostik terhadap variant mana yang aktif: tiap variant
// hanya menyumbang zone key + tie-break.
type PostingType interface {
	String() string
	// zoneKey mengelompokkan slot yang harus contiguous ("" = tanpa constraint)
	zoneKey(s Slot) string
	// less = tie-break di dalam satu zona
	less(a, b Slot) bool
}

type randomType struct{}

func (randomType) String() string { return "random" }
func (randomType) zoneKey(Slot) string { return "" }
func (randomType) less(a, b Slot) bool {
	if a.SchoolOrder != b.SchoolOrder {
		return a.SchoolOrder < b.SchoolOrder
	}
	return a.GroupNumber < b.GroupNumber
}

type routeBasedType struct{}

func (routeBasedType) String() string { return "route_based" }
func (routeBasedType) zoneKey(s Slot) string { return s.RouteKey }
func (routeBasedType) less(a, b Slot) bool {
	if a.SchoolID != b.SchoolID {
		return a.SchoolID.String() < b.SchoolID.String()
	}
	return a.GroupNumber < b.GroupNumber
}

type lgaBasedType struct{}

func (lgaBasedType) String() string { return "lga_based" }
func (lgaBasedType) zoneKey(s Slot) string { return s.LgaKey }
func (lgaBasedType) less(a, b Slot) bool {
	if a.SchoolID != b.SchoolID {
		return a.SchoolID.String() < b.SchoolID.String()
	}
	return a.GroupNumber < b.GroupNumber
}

var (
	Random     PostingType = randomType{}
	RouteBased PostingType = routeBasedType{}
	LgaBased   PostingType = lgaBasedType{}
)

func ParsePostingType(s string) (PostingType, error) {
	switch s {
	case "random", "":
		return Random, nil
	case "route_based":
		return RouteBased, nil
	case "lga_based":
		return LgaBased, nil
	default:
		return nil, fmt.Errorf("%w: posting_type %q tidak dikenal", ErrInvalidCriteria, s)
	}
}

// =======================
// Criteria
// =======================

// Criteria adalah parameter satu run auto-posting. institution_id sengaja
// TIDAK di sini — di-thread eksplisit sebagai argumen, bukan state ambient.
type Criteria struct {
	SessionID       uuid.UUID
	VisitsIncluded  int
	PostingType     PostingType
	PriorityEnabled bool
	FacultyID       *uuid.UUID // run scoped per dean
}

// SnapshotJSON membekukan criteria untuk kolom batch_criteria (audit).
func (c Criteria) SnapshotJSON() ([]byte, error) {
	snap := map[string]any{
		"session_id":       c.SessionID,
		"visits_included":  c.VisitsIncluded,
		"posting_type":     c.PostingType.String(),
		"priority_enabled": c.PriorityEnabled,
	}
	if c.FacultyID != nil {
		snap["faculty_id"] = *c.FacultyID
	}
	return json.Marshal(snap)
}

// =======================
// Output
// =======================

type Assignment struct {
	SupervisorID   uuid.UUID `json:"supervisor_id"`
	SupervisorName string    `json:"supervisor_name"`
	RankCode       string    `json:"rank_code"`
	SchoolID       uuid.UUID `json:"school_id"`
	SchoolName     string    `json:"school_name"`
	GroupID        uuid.UUID `json:"group_id"`
	GroupNumber    int       `json:"group_number"`
	VisitNumber    int       `json:"visit_number"`
	DistanceKm     float64   `json:"distance_km"`
}

type Stats struct {
	SupervisorsFull          int         `json:"supervisors_full"` // dapat >= 1 posting
	SupervisorsNone          int         `json:"supervisors_none"` // eligible tapi 0 posting
	AvgPostingsPerSupervisor float64     `json:"avg_postings_per_supervisor"`
	ByVisit                  map[int]int `json:"by_visit"`
}

// Result: bentuk sama untuk preview & execute; BatchID dan
// TotalPostingsCreated hanya terisi pada execute.
type Result struct {
	Assignments         []Assignment `json:"assignments"`
	TotalSupervisors    int          `json:"total_supervisors"`
	TotalAvailableSlots int          `json:"total_available_slots"`
	Statistics          Stats        `json:"statistics"`
	Warnings            []string     `json:"warnings"`

	BatchID              *uuid.UUID `json:"batch_id,omitempty"`
	TotalPostingsCreated int        `json:"total_postings_created,omitempty"`
}
