package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestResolveInputsExcludesCoveredSlots(t *testing.T) {
	st := fixtureStore()
	st.ListActivePostingsFunc = func(_ context.Context, _, _ uuid.UUID) ([]ActivePostingInfo, error) {
		return []ActivePostingInfo{
			{SchoolID: uid(100), GroupID: uid(1001), VisitNumber: 1, SupervisorID: uid(1)},
		}, nil
	}

	crit := Criteria{SessionID: uid(9), VisitsIncluded: 2, PostingType: Random}
	slots, _, _, err := ResolveInputs(context.Background(), st, uid(50), crit)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	// 3 group x 2 visit = 6, minus 1 yang sudah tercover
	if len(slots) != 5 {
		t.Fatalf("expected 5 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.GroupID == uid(1001) && s.VisitNumber == 1 {
			t.Error("covered slot leaked into open slots")
		}
	}
}

func TestResolveInputsExcludesMergedSecondaryGroups(t *testing.T) {
	st := fixtureStore()
	// kelompok SDN 2 jadi sekunder merge hidup (menumpang kelompok 1 SDN 1)
	st.ListLiveMergesFunc = func(_ context.Context, _ uuid.UUID) ([]MergeInfo, error) {
		return []MergeInfo{
			{MergeID: uid(901), PrimaryGroupID: uid(1001), SecondaryGroupID: uid(1011)},
		}, nil
	}

	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: Random}
	slots, _, _, err := ResolveInputs(context.Background(), st, uid(50), crit)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots (secondary group excluded), got %d", len(slots))
	}
	for _, s := range slots {
		if s.GroupID == uid(1011) {
			t.Error("merged secondary group produced a slot")
		}
	}

	// merge di-invalidate -> kelompoknya menghasilkan slot lagi
	st.ListLiveMergesFunc = func(_ context.Context, _ uuid.UUID) ([]MergeInfo, error) {
		return nil, nil
	}
	slots, _, _, err = ResolveInputs(context.Background(), st, uid(50), crit)
	if err != nil {
		t.Fatalf("resolve after invalidate: %v", err)
	}
	if len(slots) != 3 {
		t.Errorf("expected 3 slots after merge ends, got %d", len(slots))
	}
}

func TestResolveInputsCountsAndFiltersSupervisors(t *testing.T) {
	st := fixtureStore()
	st.ListSupervisorsFunc = func(_ context.Context, _ uuid.UUID, _ *uuid.UUID) ([]Supervisor, error) {
		return []Supervisor{
			{ID: uid(1), Name: "Dr. Sari", MaxPostings: 2},
			{ID: uid(2), Name: "Dr. Budi", MaxPostings: 1},
		}, nil
	}
	st.ListActivePostingsFunc = func(_ context.Context, _, _ uuid.UUID) ([]ActivePostingInfo, error) {
		return []ActivePostingInfo{
			{SchoolID: uid(100), GroupID: uid(1001), VisitNumber: 1, SupervisorID: uid(1)},
			{SchoolID: uid(100), GroupID: uid(1002), VisitNumber: 1, SupervisorID: uid(2)},
		}, nil
	}

	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: Random}
	_, sups, warnings, err := ResolveInputs(context.Background(), st, uid(50), crit)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	// Budi sudah di batas (1/1) -> tidak eligible tapi masuk warning
	if len(sups) != 1 || sups[0].ID != uid(1) {
		t.Fatalf("eligible = %v, want only Dr. Sari", sups)
	}
	if sups[0].CurrentPostings != 1 {
		t.Errorf("CurrentPostings = %d, want 1 (derived from active postings)", sups[0].CurrentPostings)
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "Dr. Budi") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected at-capacity warning for Dr. Budi, got %v", warnings)
	}
}

func TestResolveInputsWarnsSchoolFullyCovered(t *testing.T) {
	st := fixtureStore()
	// seluruh slot SDN 2 (1 group x 1 visit) sudah terisi
	st.ListActivePostingsFunc = func(_ context.Context, _, _ uuid.UUID) ([]ActivePostingInfo, error) {
		return []ActivePostingInfo{
			{SchoolID: uid(101), GroupID: uid(1011), VisitNumber: 1, SupervisorID: uid(1)},
		}, nil
	}

	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: Random}
	slots, _, warnings, err := ResolveInputs(context.Background(), st, uid(50), crit)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "SDN 2") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected zero-open-slot warning for SDN 2, got %v", warnings)
	}
}

func TestResolveInputsThreadsFacultyFilter(t *testing.T) {
	st := fixtureStore()
	faculty := uid(60)
	var got *uuid.UUID
	st.ListSupervisorsFunc = func(_ context.Context, _ uuid.UUID, facultyID *uuid.UUID) ([]Supervisor, error) {
		got = facultyID
		return nil, nil
	}

	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: Random, FacultyID: &faculty}
	if _, _, _, err := ResolveInputs(context.Background(), st, uid(50), crit); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got == nil || *got != faculty {
		t.Errorf("faculty filter = %v, want %s", got, faculty)
	}
}

func TestResolveInputsSchoolOrderFollowsAppearance(t *testing.T) {
	st := fixtureStore()
	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: Random}

	slots, _, _, err := ResolveInputs(context.Background(), st, uid(50), crit)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	orderOf := make(map[uuid.UUID]int)
	for _, s := range slots {
		orderOf[s.SchoolID] = s.SchoolOrder
	}
	if orderOf[uid(100)] != 0 || orderOf[uid(101)] != 1 {
		t.Errorf("school order = %v, want SDN 1 before SDN 2", orderOf)
	}
}
