package dto

import (
	"time"

	"github.com/google/uuid"

	"praktikku_backend/internals/features/supervision/schools/model"
)

type GroupCreateDTO struct {
	GroupNumber       int `json:"group_number" validate:"required,min=1,max=100"`
	GroupStudentCount int `json:"group_student_count" validate:"omitempty,min=0,max=100"`
}

type GroupUpdateDTO struct {
	GroupStudentCount *int `json:"group_student_count,omitempty" validate:"omitempty,min=0,max=100"`
}

type GroupResponseDTO struct {
	GroupID           uuid.UUID  `json:"group_id"`
	GroupSchoolID     uuid.UUID  `json:"group_school_id"`
	GroupNumber       int        `json:"group_number"`
	GroupStudentCount int        `json:"group_student_count"`
	GroupCreatedAt    time.Time  `json:"group_created_at"`
	GroupUpdatedAt    *time.Time `json:"group_updated_at,omitempty"`
}

func (p *GroupCreateDTO) ToModel(schoolID uuid.UUID) model.GroupModel {
	return model.GroupModel{
		GroupSchoolID:     schoolID,
		GroupNumber:       p.GroupNumber,
		GroupStudentCount: p.GroupStudentCount,
	}
}

func (u *GroupUpdateDTO) ApplyUpdates(ent *model.GroupModel) {
	if u.GroupStudentCount != nil {
		ent.GroupStudentCount = *u.GroupStudentCount
	}
}

func FromGroupModel(ent model.GroupModel) GroupResponseDTO {
	return GroupResponseDTO{
		GroupID:           ent.GroupID,
		GroupSchoolID:     ent.GroupSchoolID,
		GroupNumber:       ent.GroupNumber,
		GroupStudentCount: ent.GroupStudentCount,
		GroupCreatedAt:    ent.GroupCreatedAt,
		GroupUpdatedAt:    ent.GroupUpdatedAt,
	}
}

func FromGroupModels(list []model.GroupModel) []GroupResponseDTO {
	out := make([]GroupResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromGroupModel(it))
	}
	return out
}
