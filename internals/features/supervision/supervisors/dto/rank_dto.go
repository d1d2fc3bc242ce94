package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"praktikku_backend/internals/features/supervision/supervisors/model"
)

type RankCreateDTO struct {
	RankCode   string `json:"rank_code" validate:"required,min=1,max=20"`
	RankName   string `json:"rank_name" validate:"required,min=2"`
	RankWeight int    `json:"rank_weight" validate:"omitempty,min=0,max=1000"`
}

type RankResponseDTO struct {
	RankID        uuid.UUID  `json:"rank_id"`
	RankCode      string     `json:"rank_code"`
	RankName      string     `json:"rank_name"`
	RankWeight    int        `json:"rank_weight"`
	RankCreatedAt time.Time  `json:"rank_created_at"`
	RankUpdatedAt *time.Time `json:"rank_updated_at,omitempty"`
}

func (p *RankCreateDTO) Normalize() {
	p.RankCode = strings.ToUpper(strings.TrimSpace(p.RankCode))
	p.RankName = strings.TrimSpace(p.RankName)
}

func (p *RankCreateDTO) ToModel(institutionID uuid.UUID) model.RankModel {
	return model.RankModel{
		RankInstitutionID: institutionID,
		RankCode:          p.RankCode,
		RankName:          p.RankName,
		RankWeight:        p.RankWeight,
	}
}

func FromRankModel(ent model.RankModel) RankResponseDTO {
	return RankResponseDTO{
		RankID:        ent.RankID,
		RankCode:      ent.RankCode,
		RankName:      ent.RankName,
		RankWeight:    ent.RankWeight,
		RankCreatedAt: ent.RankCreatedAt,
		RankUpdatedAt: ent.RankUpdatedAt,
	}
}

func FromRankModels(list []model.RankModel) []RankResponseDTO {
	out := make([]RankResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromRankModel(it))
	}
	return out
}
