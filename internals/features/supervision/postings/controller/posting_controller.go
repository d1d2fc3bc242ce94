package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikku_backend/internals/features/supervision/postings/dto"
	"praktikku_backend/internals/features/supervision/postings/model"
	helper "praktikku_backend/internals/helpers"
	helperAuth "praktikku_backend/internals/helpers/auth"
)

type PostingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPostingController(db *gorm.DB) *PostingController {
	return &PostingController{
		DB:        db,
		Validator: validator.New(),
	}
}

// -----------------------------
// List (scoped ke institusi di token) + Filter + Pagination
// -----------------------------
func (ctl *PostingController) List(c *fiber.Ctx) error {
	var q dto.PostingFilterDTO
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	dbq := ctl.DB.WithContext(c.UserContext()).
		Model(&model.PostingModel{}).
		Where("posting_institution_id = ?", institutionID)

	if q.SessionID != nil {
		dbq = dbq.Where("posting_session_id = ?", *q.SessionID)
	}
	if q.SupervisorID != nil {
		dbq = dbq.Where("posting_supervisor_id = ?", *q.SupervisorID)
	}
	if q.BatchID != nil {
		dbq = dbq.Where("posting_batch_id = ?", *q.BatchID)
	}
	if !q.IncludeInvalidated {
		dbq = dbq.Where("posting_invalidated_at IS NULL")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Count failed: "+err.Error())
	}

	var list []model.PostingModel
	if err := dbq.
		Order("posting_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	return helper.SuccessList(c, "Daftar posting", dto.FromPostingModels(list), helper.BuildMeta(total, p))
}
