package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"praktikku_backend/internals/features/supervision/supervisors/dto"
	"praktikku_backend/internals/features/supervision/supervisors/model"
	helper "praktikku_backend/internals/helpers"
	helperAuth "praktikku_backend/internals/helpers/auth"
)

type SupervisorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSupervisorController(db *gorm.DB) *SupervisorController {
	return &SupervisorController{
		DB:        db,
		Validator: validator.New(),
	}
}

// -----------------------------
// Create
// -----------------------------
func (ctl *SupervisorController) Create(c *fiber.Ctx) error {
	var body dto.SupervisorCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	body.Normalize()
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	ent := body.ToModel(institutionID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Create failed: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(ent))
}

// -----------------------------
// Update (partial)
// -----------------------------
func (ctl *SupervisorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.SupervisorUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.SupervisorModel
	if err := ctl.DB.
		Where("supervisor_id = ? AND supervisor_institution_id = ? AND supervisor_deleted_at IS NULL", id, institutionID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	body.ApplyUpdates(&ent)

	now := time.Now()
	ent.SupervisorUpdatedAt = &now

	// Select kolom agar boolean false tidak diabaikan GORM
	if err := ctl.DB.
		Model(&ent).
		Select("SupervisorFullName", "SupervisorRole", "SupervisorRankID",
			"SupervisorFacultyID", "SupervisorMaxPostings", "SupervisorIsActive",
			"SupervisorUpdatedAt").
		Updates(&ent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Update failed: "+err.Error())
	}

	return c.JSON(dto.FromModel(ent))
}

// -----------------------------
// GetByID
// -----------------------------
func (ctl *SupervisorController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var ent model.SupervisorModel
	if err := ctl.DB.
		Where("supervisor_id = ? AND supervisor_institution_id = ? AND supervisor_deleted_at IS NULL", id, institutionID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	return c.JSON(dto.FromModel(ent))
}

// -----------------------------
// List + Filter + Pagination
// -----------------------------
func (ctl *SupervisorController) List(c *fiber.Ctx) error {
	var q dto.SupervisorFilterDTO
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	if err := ctl.Validator.Struct(&q); err != nil {
		return helper.ValidationError(c, err)
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	dbq := ctl.DB.Model(&model.SupervisorModel{}).
		Where("supervisor_institution_id = ? AND supervisor_deleted_at IS NULL", institutionID)

	if q.Role != nil {
		dbq = dbq.Where("supervisor_role = ?", *q.Role)
	}
	if q.FacultyID != nil {
		dbq = dbq.Where("supervisor_faculty_id = ?", *q.FacultyID)
	}
	if q.Active != nil {
		dbq = dbq.Where("supervisor_is_active = ?", *q.Active)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Count failed: "+err.Error())
	}

	var list []model.SupervisorModel
	if err := dbq.
		Order("supervisor_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	return helper.SuccessList(c, "Daftar supervisor", dto.FromModels(list), helper.BuildMeta(total, p))
}

// -----------------------------
// SoftDelete
// -----------------------------
func (ctl *SupervisorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var ent model.SupervisorModel
	if err := ctl.DB.
		Where("supervisor_id = ? AND supervisor_institution_id = ? AND supervisor_deleted_at IS NULL", id, institutionID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	now := time.Now()
	ent.SupervisorIsActive = false
	ent.SupervisorDeletedAt = &now
	ent.SupervisorUpdatedAt = &now

	if err := ctl.DB.
		Model(&ent).
		Select("SupervisorIsActive", "SupervisorDeletedAt", "SupervisorUpdatedAt").
		Updates(&ent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Delete failed: "+err.Error())
	}

	return c.SendStatus(http.StatusNoContent)
}
