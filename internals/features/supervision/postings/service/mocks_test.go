package service

import (
	"context"

	"github.com/google/uuid"

	"praktikku_backend/internals/features/supervision/postings/model"
)

// MockStore implements Store for testing
type MockStore struct {
	GetSessionFunc         func(ctx context.Context, institutionID, sessionID uuid.UUID) (*SessionInfo, error)
	ListEligibleGroupsFunc func(ctx context.Context, institutionID uuid.UUID) ([]GroupSlotInfo, error)
	ListLiveMergesFunc     func(ctx context.Context, institutionID uuid.UUID) ([]MergeInfo, error)
	ListActivePostingsFunc func(ctx context.Context, institutionID, sessionID uuid.UUID) ([]ActivePostingInfo, error)
	ListSupervisorsFunc    func(ctx context.Context, institutionID uuid.UUID, facultyID *uuid.UUID) ([]Supervisor, error)
	CreateBatchFunc        func(ctx context.Context, institutionID uuid.UUID, createdBy *uuid.UUID, criteria Criteria, assignments []Assignment) (uuid.UUID, error)
	GetBatchFunc           func(ctx context.Context, institutionID, batchID uuid.UUID) (*model.BatchModel, error)
	RollbackBatchFunc      func(ctx context.Context, institutionID, batchID uuid.UUID, mergeIDs []uuid.UUID) error
	ListBatchesFunc        func(ctx context.Context, institutionID uuid.UUID, f BatchFilter) ([]model.BatchModel, int64, error)
}

func (m *MockStore) GetSession(ctx context.Context, institutionID, sessionID uuid.UUID) (*SessionInfo, error) {
	return m.GetSessionFunc(ctx, institutionID, sessionID)
}

func (m *MockStore) ListEligibleGroups(ctx context.Context, institutionID uuid.UUID) ([]GroupSlotInfo, error) {
	return m.ListEligibleGroupsFunc(ctx, institutionID)
}

func (m *MockStore) ListLiveMerges(ctx context.Context, institutionID uuid.UUID) ([]MergeInfo, error) {
	return m.ListLiveMergesFunc(ctx, institutionID)
}

func (m *MockStore) ListActivePostings(ctx context.Context, institutionID, sessionID uuid.UUID) ([]ActivePostingInfo, error) {
	return m.ListActivePostingsFunc(ctx, institutionID, sessionID)
}

func (m *MockStore) ListSupervisors(ctx context.Context, institutionID uuid.UUID, facultyID *uuid.UUID) ([]Supervisor, error) {
	return m.ListSupervisorsFunc(ctx, institutionID, facultyID)
}

func (m *MockStore) CreateBatch(ctx context.Context, institutionID uuid.UUID, createdBy *uuid.UUID, criteria Criteria, assignments []Assignment) (uuid.UUID, error) {
	return m.CreateBatchFunc(ctx, institutionID, createdBy, criteria, assignments)
}

func (m *MockStore) GetBatch(ctx context.Context, institutionID, batchID uuid.UUID) (*model.BatchModel, error) {
	return m.GetBatchFunc(ctx, institutionID, batchID)
}

func (m *MockStore) RollbackBatch(ctx context.Context, institutionID, batchID uuid.UUID, mergeIDs []uuid.UUID) error {
	return m.RollbackBatchFunc(ctx, institutionID, batchID, mergeIDs)
}

func (m *MockStore) ListBatches(ctx context.Context, institutionID uuid.UUID, f BatchFilter) ([]model.BatchModel, int64, error) {
	return m.ListBatchesFunc(ctx, institutionID, f)
}
