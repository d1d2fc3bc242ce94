package service

import (
	"fmt"
	"sort"
)

// Distribute menjalankan algoritma distribusi: deterministik, tanpa random,
// pure function atas snapshot immutable. Tidak pernah gagal — hasil kosong
// atau parsial dikomunikasikan lewat statistics + warnings, bukan error.
func Distribute(slots []Slot, supervisors []Supervisor, criteria Criteria) ([]Assignment, Stats, []string) {
	ordered := orderSlots(slots, criteria.PostingType, criteria.PriorityEnabled)
	sups := orderSupervisors(supervisors, criteria.PriorityEnabled)

	var warnings []string
	if len(ordered) == 0 {
		warnings = append(warnings, "Tidak ada slot terbuka untuk criteria ini")
	}
	if len(sups) == 0 {
		warnings = append(warnings, "Tidak ada supervisor eligible untuk criteria ini")
	}

	// Round-robin: satu ronde = tiap supervisor dapat maksimal 1 slot.
	// Fairness: tidak ada yang dapat slot ke-2 sebelum semua yang eligible
	// dapat slot pertamanya.
	assigned := make([]int, len(sups))
	assignments := make([]Assignment, 0, len(ordered))
	si := 0
	for si < len(ordered) {
		progressed := false
		for i := range sups {
			if si >= len(ordered) {
				break
			}
			if sups[i].CurrentPostings+assigned[i] >= sups[i].MaxPostings {
				continue // kapasitas habis, skip
			}
			sl := ordered[si]
			si++
			assigned[i]++
			progressed = true
			assignments = append(assignments, Assignment{
				SupervisorID:   sups[i].ID,
				SupervisorName: sups[i].Name,
				RankCode:       sups[i].RankCode,
				SchoolID:       sl.SchoolID,
				SchoolName:     sl.SchoolName,
				GroupID:        sl.GroupID,
				GroupNumber:    sl.GroupNumber,
				VisitNumber:    sl.VisitNumber,
				DistanceKm:     sl.DistanceKm,
			})
		}
		if !progressed {
			break // semua supervisor penuh, sisa slot dibiarkan
		}
	}

	if left := len(ordered) - si; left > 0 {
		warnings = append(warnings, fmt.Sprintf("%d slot tidak terisi: semua supervisor sudah mencapai batas posting", left))
	}

	return assignments, buildStats(assignments, assigned), warnings
}

// orderSlots: visit ascending dulu (seluruh visit k habis sebelum k+1),
// lalu di dalam tiap visit slot dikelompokkan per zona sesuai variant
// posting type. Priority mode menyisipkan jarak terjauh lebih dulu sebagai
// secondary key DI DALAM urutan geografis — bukan menggantikannya.
func orderSlots(slots []Slot, pt PostingType, priority bool) []Slot {
	byVisit := append([]Slot(nil), slots...)
	sort.SliceStable(byVisit, func(i, j int) bool {
		return byVisit[i].VisitNumber < byVisit[j].VisitNumber
	})

	out := make([]Slot, 0, len(byVisit))
	for start := 0; start < len(byVisit); {
		end := start
		for end < len(byVisit) && byVisit[end].VisitNumber == byVisit[start].VisitNumber {
			end++
		}
		out = append(out, orderWithinVisit(byVisit[start:end], pt, priority)...)
		start = end
	}
	return out
}

func orderWithinVisit(slots []Slot, pt PostingType, priority bool) []Slot {
	// Zona muncul sesuai kemunculan pertamanya (urutan sekolah dari resolver);
	// seluruh slot satu zona contiguous sebelum zona berikutnya.
	var zoneOrder []string
	zones := make(map[string][]Slot)
	for _, s := range slots {
		k := pt.zoneKey(s)
		if _, ok := zones[k]; !ok {
			zoneOrder = append(zoneOrder, k)
		}
		zones[k] = append(zones[k], s)
	}

	out := make([]Slot, 0, len(slots))
	for _, k := range zoneOrder {
		zs := zones[k]
		sort.SliceStable(zs, func(i, j int) bool {
			if priority && zs[i].DistanceKm != zs[j].DistanceKm {
				return zs[i].DistanceKm > zs[j].DistanceKm // terjauh dulu
			}
			return pt.less(zs[i], zs[j])
		})
		out = append(out, zs...)
	}
	return out
}

// orderSupervisors: tanpa priority = ascending id (stabil, tanpa preferensi
// rank); dengan priority = rank weight descending, tie ascending id.
func orderSupervisors(supervisors []Supervisor, priority bool) []Supervisor {
	out := append([]Supervisor(nil), supervisors...)
	sort.SliceStable(out, func(i, j int) bool {
		if priority && out[i].RankWeight != out[j].RankWeight {
			return out[i].RankWeight > out[j].RankWeight
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func buildStats(assignments []Assignment, assigned []int) Stats {
	st := Stats{ByVisit: make(map[int]int)}
	for _, n := range assigned {
		if n > 0 {
			st.SupervisorsFull++
		} else {
			st.SupervisorsNone++
		}
	}
	for _, a := range assignments {
		st.ByVisit[a.VisitNumber]++
	}
	if st.SupervisorsFull > 0 {
		st.AvgPostingsPerSupervisor = float64(len(assignments)) / float64(st.SupervisorsFull)
	}
	return st
}
