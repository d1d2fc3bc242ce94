package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type slotKey struct {
	schoolID uuid.UUID
	groupID  uuid.UUID
	visit    int
}

// ResolveInputs menghitung slot fillable + supervisor eligible untuk satu
// run. Murni baca dari Store — preview dan execute memanggil fungsi yang
// sama persis, jadi perbedaan hasil hanya mungkin kalau state berubah di
// antara dua panggilan (race yang memang ditoleransi caller).
func ResolveInputs(ctx context.Context, st Store, institutionID uuid.UUID, criteria Criteria) ([]Slot, []Supervisor, []string, error) {
	groups, err := st.ListEligibleGroups(ctx, institutionID)
	if err != nil {
		return nil, nil, nil, err
	}

	// Kelompok sekunder dari merge hidup tidak menghasilkan slot sendiri —
	// selama merge berlaku mereka menumpang posting kelompok primernya.
	merges, err := st.ListLiveMerges(ctx, institutionID)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(merges) > 0 {
		mergedSecondary := make(map[uuid.UUID]bool, len(merges))
		for _, m := range merges {
			mergedSecondary[m.SecondaryGroupID] = true
		}
		kept := make([]GroupSlotInfo, 0, len(groups))
		for _, g := range groups {
			if mergedSecondary[g.GroupID] {
				continue
			}
			kept = append(kept, g)
		}
		groups = kept
	}

	postings, err := st.ListActivePostings(ctx, institutionID, criteria.SessionID)
	if err != nil {
		return nil, nil, nil, err
	}

	covered := make(map[slotKey]bool, len(postings))
	counts := make(map[uuid.UUID]int)
	for _, p := range postings {
		covered[slotKey{p.SchoolID, p.GroupID, p.VisitNumber}] = true
		counts[p.SupervisorID]++
	}

	// Urutan kemunculan sekolah (insertion order) untuk slot ordering random
	schoolOrder := make(map[uuid.UUID]int)
	schoolNames := make(map[uuid.UUID]string)
	var schoolSeq []uuid.UUID
	for _, g := range groups {
		if _, ok := schoolOrder[g.SchoolID]; !ok {
			schoolOrder[g.SchoolID] = len(schoolOrder)
			schoolNames[g.SchoolID] = g.SchoolName
			schoolSeq = append(schoolSeq, g.SchoolID)
		}
	}

	var slots []Slot
	openPerSchool := make(map[uuid.UUID]int)
	for visit := 1; visit <= criteria.VisitsIncluded; visit++ {
		for _, g := range groups {
			if covered[slotKey{g.SchoolID, g.GroupID, visit}] {
				continue
			}
			slots = append(slots, Slot{
				SchoolID:    g.SchoolID,
				SchoolName:  g.SchoolName,
				GroupID:     g.GroupID,
				GroupNumber: g.GroupNumber,
				VisitNumber: visit,
				RouteKey:    g.RouteKey,
				LgaKey:      g.LgaKey,
				DistanceKm:  g.DistanceKm,
				SchoolOrder: schoolOrder[g.SchoolID],
			})
			openPerSchool[g.SchoolID]++
		}
	}

	var warnings []string
	for _, sid := range schoolSeq {
		if openPerSchool[sid] == 0 {
			warnings = append(warnings, fmt.Sprintf("Sekolah %s tidak punya slot terbuka (semua kelompok sudah terisi)", schoolNames[sid]))
		}
	}

	all, err := st.ListSupervisors(ctx, institutionID, criteria.FacultyID)
	if err != nil {
		return nil, nil, nil, err
	}
	eligible := make([]Supervisor, 0, len(all))
	for _, sp := range all {
		sp.CurrentPostings = counts[sp.ID]
		if sp.CurrentPostings >= sp.MaxPostings {
			warnings = append(warnings, fmt.Sprintf("Supervisor %s sudah mencapai batas posting (%d/%d)", sp.Name, sp.CurrentPostings, sp.MaxPostings))
			continue
		}
		eligible = append(eligible, sp)
	}

	return slots, eligible, warnings, nil
}
