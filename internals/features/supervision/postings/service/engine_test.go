package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"praktikku_backend/internals/features/supervision/postings/model"
)

func fixtureStore() *MockStore {
	return &MockStore{
		GetSessionFunc: func(_ context.Context, _, sessionID uuid.UUID) (*SessionInfo, error) {
			if sessionID != uid(9) {
				return nil, ErrSessionNotFound
			}
			return &SessionInfo{ID: sessionID, Name: "PPL Ganjil", MaxVisits: 3}, nil
		},
		ListLiveMergesFunc: func(_ context.Context, _ uuid.UUID) ([]MergeInfo, error) {
			return nil, nil
		},
		ListEligibleGroupsFunc: func(_ context.Context, _ uuid.UUID) ([]GroupSlotInfo, error) {
			return []GroupSlotInfo{
				{SchoolID: uid(100), SchoolName: "SDN 1", GroupID: uid(1001), GroupNumber: 1, DistanceKm: 5},
				{SchoolID: uid(100), SchoolName: "SDN 1", GroupID: uid(1002), GroupNumber: 2, DistanceKm: 5},
				{SchoolID: uid(101), SchoolName: "SDN 2", GroupID: uid(1011), GroupNumber: 1, DistanceKm: 12},
			}, nil
		},
		ListActivePostingsFunc: func(_ context.Context, _, _ uuid.UUID) ([]ActivePostingInfo, error) {
			return nil, nil
		},
		ListSupervisorsFunc: func(_ context.Context, _ uuid.UUID, _ *uuid.UUID) ([]Supervisor, error) {
			return []Supervisor{
				{ID: uid(1), Name: "Dr. Sari", MaxPostings: 2},
				{ID: uid(2), Name: "Dr. Budi", MaxPostings: 2},
			}, nil
		},
	}
}

func TestPreviewExecuteEquivalence(t *testing.T) {
	st := fixtureStore()
	var persisted []Assignment
	st.CreateBatchFunc = func(_ context.Context, _ uuid.UUID, _ *uuid.UUID, _ Criteria, assignments []Assignment) (uuid.UUID, error) {
		persisted = assignments
		return uid(777), nil
	}

	eng := NewEngine(st)
	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: Random}
	instID := uid(50)

	preview, err := eng.Preview(context.Background(), instID, crit)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	exec, err := eng.Execute(context.Background(), instID, nil, crit)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	// state tidak berubah -> assignment identik (pasangan DAN urutan)
	if !reflect.DeepEqual(preview.Assignments, exec.Assignments) {
		t.Errorf("preview and execute diverged:\npreview: %v\nexecute: %v", preview.Assignments, exec.Assignments)
	}
	if !reflect.DeepEqual(exec.Assignments, persisted) {
		t.Error("persisted assignments differ from returned result")
	}

	if preview.BatchID != nil {
		t.Error("preview must not create a batch")
	}
	if exec.BatchID == nil || *exec.BatchID != uid(777) {
		t.Errorf("execute batch_id = %v, want %s", exec.BatchID, uid(777))
	}
	if exec.TotalPostingsCreated != len(exec.Assignments) {
		t.Errorf("total_postings_created = %d, want %d", exec.TotalPostingsCreated, len(exec.Assignments))
	}
}

func TestExecuteNoAssignmentsSkipsBatch(t *testing.T) {
	st := fixtureStore()
	st.ListEligibleGroupsFunc = func(_ context.Context, _ uuid.UUID) ([]GroupSlotInfo, error) {
		return nil, nil
	}
	st.CreateBatchFunc = func(_ context.Context, _ uuid.UUID, _ *uuid.UUID, _ Criteria, _ []Assignment) (uuid.UUID, error) {
		t.Fatal("CreateBatch must not be called when there is nothing to assign")
		return uuid.Nil, nil
	}

	eng := NewEngine(st)
	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: Random}

	res, err := eng.Execute(context.Background(), uid(50), nil, crit)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.BatchID != nil {
		t.Error("empty run must not produce a batch")
	}
	if len(res.Warnings) == 0 {
		t.Error("expected warning explaining why no batch was created")
	}
}

func TestExecutePropagatesSlotConflict(t *testing.T) {
	st := fixtureStore()
	st.CreateBatchFunc = func(_ context.Context, _ uuid.UUID, _ *uuid.UUID, _ Criteria, _ []Assignment) (uuid.UUID, error) {
		return uuid.Nil, ErrSlotConflict
	}

	eng := NewEngine(st)
	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: Random}

	_, err := eng.Execute(context.Background(), uid(50), nil, crit)
	if !errors.Is(err, ErrSlotConflict) {
		t.Errorf("err = %v, want ErrSlotConflict", err)
	}
}

func TestValidateCriteria(t *testing.T) {
	eng := NewEngine(fixtureStore())
	ctx := context.Background()
	instID := uid(50)

	cases := []struct {
		name string
		crit Criteria
		want error
	}{
		{"missing session", Criteria{PostingType: Random, VisitsIncluded: 1}, ErrInvalidCriteria},
		{"unknown session", Criteria{SessionID: uid(8), PostingType: Random, VisitsIncluded: 1}, ErrSessionNotFound},
		{"zero visits", Criteria{SessionID: uid(9), PostingType: Random}, ErrInvalidCriteria},
		{"visits beyond session max", Criteria{SessionID: uid(9), PostingType: Random, VisitsIncluded: 4}, ErrInvalidCriteria},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eng.Preview(ctx, instID, tc.crit)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}

	// batas atas inklusif
	if _, err := eng.Preview(ctx, instID, Criteria{SessionID: uid(9), PostingType: Random, VisitsIncluded: 3}); err != nil {
		t.Errorf("visits_included == max_visits must be allowed: %v", err)
	}
}

func TestRollbackGuards(t *testing.T) {
	now := time.Now()
	st := fixtureStore()
	rolled := false
	st.GetBatchFunc = func(_ context.Context, _, batchID uuid.UUID) (*model.BatchModel, error) {
		switch batchID {
		case uid(777):
			return &model.BatchModel{BatchID: batchID}, nil
		case uid(778):
			return &model.BatchModel{BatchID: batchID, BatchRolledBackAt: &now}, nil
		default:
			return nil, ErrBatchNotFound
		}
	}
	st.RollbackBatchFunc = func(_ context.Context, _, _ uuid.UUID, _ []uuid.UUID) error {
		rolled = true
		return nil
	}

	eng := NewEngine(st)
	ctx := context.Background()
	instID := uid(50)

	if err := eng.Rollback(ctx, instID, uid(777)); err != nil {
		t.Fatalf("rollback active batch: %v", err)
	}
	if !rolled {
		t.Error("RollbackBatch was not called")
	}

	if err := eng.Rollback(ctx, instID, uid(778)); !errors.Is(err, ErrAlreadyRolledBack) {
		t.Errorf("second rollback err = %v, want ErrAlreadyRolledBack", err)
	}
	if err := eng.Rollback(ctx, instID, uid(999)); !errors.Is(err, ErrBatchNotFound) {
		t.Errorf("unknown batch err = %v, want ErrBatchNotFound", err)
	}
}

// Rollback harus meng-invalidate merge hidup yang menumpang pada posting
// batch ini — dan hanya itu.
func TestRollbackCascadesRiddenMerges(t *testing.T) {
	postingInBatch := uid(3001)
	otherPosting := uid(3002)

	st := fixtureStore()
	st.GetBatchFunc = func(_ context.Context, _, batchID uuid.UUID) (*model.BatchModel, error) {
		return &model.BatchModel{
			BatchID:         batchID,
			BatchPostingIDs: pq.StringArray{postingInBatch.String()},
		}, nil
	}
	st.ListLiveMergesFunc = func(_ context.Context, _ uuid.UUID) ([]MergeInfo, error) {
		return []MergeInfo{
			{MergeID: uid(901), PostingID: &postingInBatch}, // menumpang batch ini
			{MergeID: uid(902), PostingID: &otherPosting},   // menumpang posting lain
			{MergeID: uid(903)},                             // belum punya posting
		}, nil
	}
	var gotMerges []uuid.UUID
	st.RollbackBatchFunc = func(_ context.Context, _, _ uuid.UUID, mergeIDs []uuid.UUID) error {
		gotMerges = mergeIDs
		return nil
	}

	eng := NewEngine(st)
	if err := eng.Rollback(context.Background(), uid(50), uid(777)); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if len(gotMerges) != 1 || gotMerges[0] != uid(901) {
		t.Errorf("cascaded merges = %v, want only %s", gotMerges, uid(901))
	}
}

// Guard conditional-update di store menang race: engine meneruskan
// AlreadyRolledBack apa adanya, tanpa retry.
func TestRollbackLosesRaceToConcurrentRollback(t *testing.T) {
	st := fixtureStore()
	st.GetBatchFunc = func(_ context.Context, _, batchID uuid.UUID) (*model.BatchModel, error) {
		return &model.BatchModel{BatchID: batchID}, nil // masih tampak aktif saat dibaca
	}
	st.RollbackBatchFunc = func(_ context.Context, _, _ uuid.UUID, _ []uuid.UUID) error {
		return ErrAlreadyRolledBack // rollback konkuren stempel duluan
	}

	eng := NewEngine(st)
	if err := eng.Rollback(context.Background(), uid(50), uid(777)); !errors.Is(err, ErrAlreadyRolledBack) {
		t.Errorf("err = %v, want ErrAlreadyRolledBack", err)
	}
}

// Execute lalu rollback lalu preview: slot yang dibebaskan rollback harus
// muncul lagi sebagai slot terbuka.
func TestExecuteRollbackPreviewCycle(t *testing.T) {
	st := fixtureStore()
	instID := uid(50)
	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: Random}

	// state posting aktif disimulasikan in-memory
	var active []ActivePostingInfo
	st.ListActivePostingsFunc = func(_ context.Context, _, _ uuid.UUID) ([]ActivePostingInfo, error) {
		return active, nil
	}
	st.CreateBatchFunc = func(_ context.Context, _ uuid.UUID, _ *uuid.UUID, _ Criteria, assignments []Assignment) (uuid.UUID, error) {
		for _, a := range assignments {
			active = append(active, ActivePostingInfo{
				SchoolID: a.SchoolID, GroupID: a.GroupID,
				VisitNumber: a.VisitNumber, SupervisorID: a.SupervisorID,
			})
		}
		return uid(777), nil
	}
	st.GetBatchFunc = func(_ context.Context, _, batchID uuid.UUID) (*model.BatchModel, error) {
		return &model.BatchModel{BatchID: batchID}, nil
	}
	st.RollbackBatchFunc = func(_ context.Context, _, _ uuid.UUID, _ []uuid.UUID) error {
		active = nil
		return nil
	}

	eng := NewEngine(st)
	ctx := context.Background()

	exec, err := eng.Execute(ctx, instID, nil, crit)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(exec.Assignments) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(exec.Assignments))
	}

	// semua slot tercover, preview berikutnya kosong
	mid, err := eng.Preview(ctx, instID, crit)
	if err != nil {
		t.Fatalf("preview after execute: %v", err)
	}
	if mid.TotalAvailableSlots != 0 {
		t.Errorf("slots after execute = %d, want 0", mid.TotalAvailableSlots)
	}

	if err := eng.Rollback(ctx, instID, *exec.BatchID); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	after, err := eng.Preview(ctx, instID, crit)
	if err != nil {
		t.Fatalf("preview after rollback: %v", err)
	}
	if after.TotalAvailableSlots != 3 {
		t.Errorf("slots after rollback = %d, want 3", after.TotalAvailableSlots)
	}
	if !reflect.DeepEqual(after.Assignments, exec.Assignments) {
		t.Error("same state after rollback must reproduce the same distribution")
	}
}
