package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"praktikku_backend/internals/features/supervision/postings/model"
)

// Engine adalah coordinator preview/execute + batch manager auto-posting.
// Tidak menyimpan state di antara panggilan — semua context (institusi,
// session) di-thread eksplisit lewat argumen.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Preview menjalankan resolve + distribute TANPA persistensi apa pun.
func (e *Engine) Preview(ctx context.Context, institutionID uuid.UUID, criteria Criteria) (*Result, error) {
	if err := e.validateCriteria(ctx, institutionID, criteria); err != nil {
		return nil, err
	}
	return e.run(ctx, institutionID, criteria)
}

// Execute mengulangi urutan panggilan yang identik dengan Preview, lalu
// mempersistenkan seluruh posting + batch dalam satu transaksi. Invariant:
// untuk state yang tidak berubah, execute menghasilkan assignment yang
// sama persis (pasangan dan urutan) dengan preview sebelumnya.
func (e *Engine) Execute(ctx context.Context, institutionID uuid.UUID, createdBy *uuid.UUID, criteria Criteria) (*Result, error) {
	if err := e.validateCriteria(ctx, institutionID, criteria); err != nil {
		return nil, err
	}
	result, err := e.run(ctx, institutionID, criteria)
	if err != nil {
		return nil, err
	}

	if len(result.Assignments) == 0 {
		// Tidak ada yang bisa dibuat — bukan error, tidak perlu batch kosong
		result.Warnings = append(result.Warnings, "Tidak ada assignment yang bisa dibuat, batch tidak dibuat")
		return result, nil
	}

	batchID, err := e.store.CreateBatch(ctx, institutionID, createdBy, criteria, result.Assignments)
	if err != nil {
		return nil, err
	}
	result.BatchID = &batchID
	result.TotalPostingsCreated = len(result.Assignments)
	return result, nil
}

func (e *Engine) run(ctx context.Context, institutionID uuid.UUID, criteria Criteria) (*Result, error) {
	slots, supervisors, warnings, err := ResolveInputs(ctx, e.store, institutionID, criteria)
	if err != nil {
		return nil, err
	}
	assignments, stats, distWarnings := Distribute(slots, supervisors, criteria)
	return &Result{
		Assignments:         assignments,
		TotalSupervisors:    len(supervisors),
		TotalAvailableSlots: len(slots),
		Statistics:          stats,
		Warnings:            append(warnings, distWarnings...),
	}, nil
}

// Rollback membatalkan satu batch utuh. Rollback kedua kali ditolak
// (AlreadyRolledBack) supaya audit history tetap akurat. Merge hidup yang
// menumpang pada posting batch ini ikut di-invalidate dalam transaksi
// yang sama.
func (e *Engine) Rollback(ctx context.Context, institutionID, batchID uuid.UUID) error {
	b, err := e.store.GetBatch(ctx, institutionID, batchID)
	if err != nil {
		return err
	}
	if b.BatchRolledBackAt != nil {
		return ErrAlreadyRolledBack
	}

	merges, err := e.store.ListLiveMerges(ctx, institutionID)
	if err != nil {
		return err
	}
	inBatch := make(map[string]bool, len(b.BatchPostingIDs))
	for _, id := range b.BatchPostingIDs {
		inBatch[id] = true
	}
	var mergeIDs []uuid.UUID
	for _, m := range merges {
		if m.PostingID != nil && inBatch[m.PostingID.String()] {
			mergeIDs = append(mergeIDs, m.MergeID)
		}
	}

	return e.store.RollbackBatch(ctx, institutionID, batchID, mergeIDs)
}

// History mengembalikan batch (audit record) terbaru lebih dulu.
func (e *Engine) History(ctx context.Context, institutionID uuid.UUID, f BatchFilter) ([]model.BatchModel, int64, error) {
	return e.store.ListBatches(ctx, institutionID, f)
}

func (e *Engine) validateCriteria(ctx context.Context, institutionID uuid.UUID, criteria Criteria) error {
	if criteria.SessionID == uuid.Nil {
		return fmt.Errorf("%w: session_id wajib diisi", ErrInvalidCriteria)
	}
	if criteria.PostingType == nil {
		return fmt.Errorf("%w: posting_type wajib diisi", ErrInvalidCriteria)
	}
	if criteria.VisitsIncluded < 1 {
		return fmt.Errorf("%w: visits_included minimal 1", ErrInvalidCriteria)
	}
	sess, err := e.store.GetSession(ctx, institutionID, criteria.SessionID)
	if err != nil {
		return err
	}
	if criteria.VisitsIncluded > sess.MaxVisits {
		return fmt.Errorf("%w: visits_included %d melebihi max_visits session (%d)", ErrInvalidCriteria, criteria.VisitsIncluded, sess.MaxVisits)
	}
	return nil
}
