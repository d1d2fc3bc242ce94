package service

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func uid(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func makeSlot(school, group int, visit int, opts ...func(*Slot)) Slot {
	s := Slot{
		SchoolID:    uid(100 + school),
		SchoolName:  fmt.Sprintf("Sekolah %d", school),
		GroupID:     uid(1000 + school*10 + group),
		GroupNumber: group,
		VisitNumber: visit,
		SchoolOrder: school,
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

func withZone(route string, dist float64) func(*Slot) {
	return func(s *Slot) {
		s.RouteKey = route
		s.DistanceKm = dist
	}
}

func makeSupervisor(n int, max int) Supervisor {
	return Supervisor{
		ID:          uid(n),
		Name:        fmt.Sprintf("Supervisor %d", n),
		MaxPostings: max,
	}
}

func TestDistributeDeterministic(t *testing.T) {
	slots := []Slot{
		makeSlot(0, 1, 1), makeSlot(0, 2, 1),
		makeSlot(1, 1, 1), makeSlot(1, 2, 1),
		makeSlot(0, 1, 2), makeSlot(0, 2, 2),
		makeSlot(1, 1, 2), makeSlot(1, 2, 2),
	}
	sups := []Supervisor{
		makeSupervisor(1, 5), makeSupervisor(2, 5), makeSupervisor(3, 5),
	}
	crit := Criteria{SessionID: uid(9), VisitsIncluded: 2, PostingType: Random}

	first, _, _ := Distribute(slots, sups, crit)
	for i := 0; i < 10; i++ {
		again, _, _ := Distribute(slots, sups, crit)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestDistributeVisitOrdering(t *testing.T) {
	// semua slot visit 1 harus keluar sebelum slot visit 2 mana pun
	slots := []Slot{
		makeSlot(0, 1, 2), makeSlot(0, 1, 1),
		makeSlot(1, 1, 2), makeSlot(1, 1, 1),
	}
	sups := []Supervisor{makeSupervisor(1, 10)}
	crit := Criteria{SessionID: uid(9), VisitsIncluded: 2, PostingType: Random}

	got, _, _ := Distribute(slots, sups, crit)
	if len(got) != 4 {
		t.Fatalf("expected 4 assignments, got %d", len(got))
	}
	lastVisit := 0
	for i, a := range got {
		if a.VisitNumber < lastVisit {
			t.Errorf("assignment %d: visit %d after visit %d", i, a.VisitNumber, lastVisit)
		}
		lastVisit = a.VisitNumber
	}
}

func TestDistributeFairness(t *testing.T) {
	// tidak ada supervisor dapat slot ke-2 sebelum semua dapat slot pertama
	slots := []Slot{
		makeSlot(0, 1, 1), makeSlot(0, 2, 1), makeSlot(0, 3, 1),
		makeSlot(1, 1, 1), makeSlot(1, 2, 1),
	}
	sups := []Supervisor{
		makeSupervisor(1, 5), makeSupervisor(2, 5), makeSupervisor(3, 5),
	}
	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: Random}

	got, stats, _ := Distribute(slots, sups, crit)
	if len(got) != 5 {
		t.Fatalf("expected 5 assignments, got %d", len(got))
	}

	counts := make(map[uuid.UUID]int)
	for _, a := range got {
		counts[a.SupervisorID]++
	}
	min, max := 5, 0
	for _, s := range sups {
		n := counts[s.ID]
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	if max-min > 1 {
		t.Errorf("unfair spread: min=%d max=%d", min, max)
	}
	if stats.SupervisorsFull != 3 || stats.SupervisorsNone != 0 {
		t.Errorf("stats = full %d / none %d, want 3/0", stats.SupervisorsFull, stats.SupervisorsNone)
	}
}

func TestDistributeRespectsCapacity(t *testing.T) {
	slots := []Slot{
		makeSlot(0, 1, 1), makeSlot(0, 2, 1),
		makeSlot(0, 3, 1), makeSlot(0, 4, 1),
	}
	sups := []Supervisor{
		makeSupervisor(1, 1),
		{ID: uid(2), Name: "Supervisor 2", CurrentPostings: 1, MaxPostings: 2},
	}
	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: Random}

	got, _, warnings := Distribute(slots, sups, crit)
	// kapasitas total = 1 + (2-1) = 2
	if len(got) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(got))
	}
	counts := make(map[uuid.UUID]int)
	for _, a := range got {
		counts[a.SupervisorID]++
	}
	if counts[uid(1)] != 1 || counts[uid(2)] != 1 {
		t.Errorf("counts = %v, want 1 each", counts)
	}
	if len(warnings) == 0 {
		t.Error("expected warning about unfilled slots")
	}
}

func TestDistributeOneSlotTwoSupervisors(t *testing.T) {
	slots := []Slot{makeSlot(0, 1, 1)}
	sups := []Supervisor{makeSupervisor(1, 2), makeSupervisor(2, 2)}
	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: Random}

	got, stats, _ := Distribute(slots, sups, crit)
	if len(got) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(got))
	}
	// id terkecil dilayani duluan
	if got[0].SupervisorID != uid(1) {
		t.Errorf("slot went to %s, want %s", got[0].SupervisorID, uid(1))
	}
	if stats.SupervisorsFull != 1 || stats.SupervisorsNone != 1 {
		t.Errorf("stats = full %d / none %d, want 1/1", stats.SupervisorsFull, stats.SupervisorsNone)
	}
}

func TestDistributeEmptyInputs(t *testing.T) {
	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: Random}

	got, _, warnings := Distribute(nil, nil, crit)
	if len(got) != 0 {
		t.Fatalf("expected no assignments, got %d", len(got))
	}
	if len(warnings) != 2 {
		t.Errorf("expected 2 warnings (no slots, no supervisors), got %v", warnings)
	}
}

func TestDistributeZoneContiguity(t *testing.T) {
	// route_based: seluruh slot satu route harus contiguous
	slots := []Slot{
		makeSlot(0, 1, 1, withZone("utara", 5)),
		makeSlot(1, 1, 1, withZone("selatan", 8)),
		makeSlot(2, 1, 1, withZone("utara", 12)),
		makeSlot(3, 1, 1, withZone("selatan", 3)),
	}
	sups := []Supervisor{makeSupervisor(1, 10)}
	crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: RouteBased}

	got, _, _ := Distribute(slots, sups, crit)
	if len(got) != 4 {
		t.Fatalf("expected 4 assignments, got %d", len(got))
	}

	// zona "utara" muncul pertama, jadi kedua sekolahnya harus di depan
	zoneOf := map[uuid.UUID]string{
		uid(100): "utara", uid(101): "selatan", uid(102): "utara", uid(103): "selatan",
	}
	seen := make(map[string]bool)
	var order []string
	for _, a := range got {
		z := zoneOf[a.SchoolID]
		if !seen[z] {
			seen[z] = true
			order = append(order, z)
		} else if order[len(order)-1] != z {
			t.Fatalf("zone %q interleaved: order so far %v", z, order)
		}
	}
	if order[0] != "utara" {
		t.Errorf("first zone = %q, want utara (first appearance)", order[0])
	}
}

func TestDistributePriorityScenario(t *testing.T) {
	// Dua sekolah satu zona: A dekat (5km), B jauh (20km).
	// S1 senior (weight 10), S2 junior (weight 5).
	slotA := makeSlot(0, 1, 1, withZone("utara", 5))
	slotB := makeSlot(1, 1, 1, withZone("utara", 20))
	s1 := Supervisor{ID: uid(1), Name: "S1", RankWeight: 10, MaxPostings: 2}
	s2 := Supervisor{ID: uid(2), Name: "S2", RankWeight: 5, MaxPostings: 2}

	t.Run("priority on: senior gets farthest", func(t *testing.T) {
		crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: RouteBased, PriorityEnabled: true}
		got, _, _ := Distribute([]Slot{slotA, slotB}, []Supervisor{s1, s2}, crit)
		if len(got) != 2 {
			t.Fatalf("expected 2 assignments, got %d", len(got))
		}
		if got[0].SupervisorID != s1.ID || got[0].SchoolID != slotB.SchoolID {
			t.Errorf("first = %s -> %s, want S1 -> B", got[0].SupervisorName, got[0].SchoolName)
		}
		if got[1].SupervisorID != s2.ID || got[1].SchoolID != slotA.SchoolID {
			t.Errorf("second = %s -> %s, want S2 -> A", got[1].SupervisorName, got[1].SchoolName)
		}
	})

	t.Run("priority off: rank ignored", func(t *testing.T) {
		crit := Criteria{SessionID: uid(9), VisitsIncluded: 1, PostingType: RouteBased, PriorityEnabled: false}
		got, _, _ := Distribute([]Slot{slotA, slotB}, []Supervisor{s1, s2}, crit)
		if len(got) != 2 {
			t.Fatalf("expected 2 assignments, got %d", len(got))
		}
		// urutan netral: school id asc, supervisor id asc
		if got[0].SupervisorID != s1.ID || got[0].SchoolID != slotA.SchoolID {
			t.Errorf("first = %s -> %s, want S1 -> A", got[0].SupervisorName, got[0].SchoolName)
		}
		if got[1].SupervisorID != s2.ID || got[1].SchoolID != slotB.SchoolID {
			t.Errorf("second = %s -> %s, want S2 -> B", got[1].SupervisorName, got[1].SchoolName)
		}
	})
}

func TestDistributeStatsByVisit(t *testing.T) {
	slots := []Slot{
		makeSlot(0, 1, 1), makeSlot(0, 2, 1), makeSlot(0, 1, 2),
	}
	sups := []Supervisor{makeSupervisor(1, 10), makeSupervisor(2, 10)}
	crit := Criteria{SessionID: uid(9), VisitsIncluded: 2, PostingType: Random}

	_, stats, _ := Distribute(slots, sups, crit)
	if stats.ByVisit[1] != 2 || stats.ByVisit[2] != 1 {
		t.Errorf("by_visit = %v, want map[1:2 2:1]", stats.ByVisit)
	}
	if stats.AvgPostingsPerSupervisor != 1.5 {
		t.Errorf("avg = %f, want 1.5", stats.AvgPostingsPerSupervisor)
	}
}

func TestParsePostingType(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"random", "random", false},
		{"", "random", false},
		{"route_based", "route_based", false},
		{"lga_based", "lga_based", false},
		{"closest_first", "", true},
	}
	for _, tc := range cases {
		pt, err := ParsePostingType(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePostingType(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePostingType(%q): %v", tc.in, err)
			continue
		}
		if pt.String() != tc.want {
			t.Errorf("ParsePostingType(%q) = %s, want %s", tc.in, pt, tc.want)
		}
	}
}
