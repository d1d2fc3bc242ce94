package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"praktikku_backend/internals/features/supervision/schools/dto"
	"praktikku_backend/internals/features/supervision/schools/model"
	helper "praktikku_backend/internals/helpers"
	helperAuth "praktikku_backend/internals/helpers/auth"
)

type SchoolController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{
		DB:        db,
		Validator: validator.New(),
	}
}

// -----------------------------
// Create
// -----------------------------
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var body dto.SchoolCreateDTO
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
func (ctl *SchoolController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.SchoolUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.SchoolModel
	if err := ctl.DB.
		Where("school_id = ? AND school_institution_id = ? AND school_deleted_at IS NULL", id, institutionID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	body.ApplyUpdates(&ent)

	now := time.Now()
	ent.SchoolUpdatedAt = &now

	if err := ctl.DB.
		Model(&ent).
		Select("SchoolName", "SchoolRouteID", "SchoolLgaID",
			"SchoolDistanceKm", "SchoolStatus", "SchoolUpdatedAt").
		Updates(&ent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Update failed: "+err.Error())
	}

	return c.JSON(dto.FromModel(ent))
}

// -----------------------------
// GetByID
// -----------------------------
func (ctl *SchoolController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var ent model.SchoolModel
	if err := ctl.DB.
		Where("school_id = ? AND school_institution_id = ? AND school_deleted_at IS NULL", id, institutionID).
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
func (ctl *SchoolController) List(c *fiber.Ctx) error {
	var q dto.SchoolFilterDTO
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

	p := helper.ParseFiber(c, "created_at", "asc", helper.AdminOpts)

	dbq := ctl.DB.Model(&model.SchoolModel{}).
		Where("school_institution_id = ? AND school_deleted_at IS NULL", institutionID)

	if q.Status != nil {
		dbq = dbq.Where("school_status = ?", *q.Status)
	}
	if q.RouteID != nil {
		dbq = dbq.Where("school_route_id = ?", *q.RouteID)
	}
	if q.LgaID != nil {
		dbq = dbq.Where("school_lga_id = ?", *q.LgaID)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Count failed: "+err.Error())
	}

	var list []model.SchoolModel
	if err := dbq.
		Order("school_created_at ASC, school_id ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	return helper.SuccessList(c, "Daftar sekolah", dto.FromModels(list), helper.BuildMeta(total, p))
}

// -----------------------------
// SoftDelete (set inactive + deleted_at)
// -----------------------------
func (ctl *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var ent model.SchoolModel
	if err := ctl.DB.
		Where("school_id = ? AND school_institution_id = ? AND school_deleted_at IS NULL", id, institutionID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	now := time.Now()
	ent.SchoolStatus = model.SchoolStatusInactive
	ent.SchoolDeletedAt = &now
	ent.SchoolUpdatedAt = &now

	if err := ctl.DB.
		Model(&ent).
		Select("SchoolStatus", "SchoolDeletedAt", "SchoolUpdatedAt").
		Updates(&ent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Delete failed: "+err.Error())
	}

	return c.SendStatus(http.StatusNoContent)
}
