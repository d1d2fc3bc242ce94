package model

import (
	"reflect"
	"strings"
	"testing"
)

// Kode rank harus unik per institusi, bukan global: kedua kolom wajib
// jadi anggota composite unique index yang sama.
func TestRankCodeUniquePerInstitution(t *testing.T) {
	typ := reflect.TypeOf(RankModel{})

	cases := []struct {
		field    string
		priority string
	}{
		{"RankInstitutionID", "priority:1"},
		{"RankCode", "priority:2"},
	}
	for _, tc := range cases {
		f, ok := typ.FieldByName(tc.field)
		if !ok {
			t.Fatalf("field %s tidak ada", tc.field)
		}
		tag := f.Tag.Get("gorm")
		want := "uniqueIndex:uq_rank_code_per_institution," + tc.priority
		if !strings.Contains(tag, want) {
			t.Errorf("%s gorm tag = %q, want contains %q", tc.field, tag, want)
		}
	}
}
