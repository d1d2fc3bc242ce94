package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"praktikku_backend/internals/features/academics/sessions/dto"
	"praktikku_backend/internals/features/academics/sessions/model"
	helper "praktikku_backend/internals/helpers"
	helperAuth "praktikku_backend/internals/helpers/auth"
)

type SessionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{
		DB:        db,
		Validator: validator.New(),
	}
}

// -----------------------------
// Create
// -----------------------------
func (ctl *SessionController) Create(c *fiber.Ctx) error {
	var body dto.SessionCreateDTO
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
func (ctl *SessionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.SessionUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.SessionModel
	if err := ctl.DB.
		Where("session_id = ? AND session_institution_id = ? AND session_deleted_at IS NULL", id, institutionID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	body.ApplyUpdates(&ent)

	now := time.Now()
	ent.SessionUpdatedAt = &now

	// Select kolom agar boolean false tidak diabaikan GORM
	if err := ctl.DB.
		Model(&ent).
		Select("SessionName", "SessionMaxVisits", "SessionIsActive", "SessionUpdatedAt").
		Updates(&ent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Update failed: "+err.Error())
	}

	return c.JSON(dto.FromModel(ent))
}

// -----------------------------
// GetByID (scoped ke institusi di token)
// -----------------------------
func (ctl *SessionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var ent model.SessionModel
	if err := ctl.DB.
		Where("session_id = ? AND session_institution_id = ? AND session_deleted_at IS NULL", id, institutionID).
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
func (ctl *SessionController) List(c *fiber.Ctx) error {
	var q dto.SessionFilterDTO
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	dbq := ctl.DB.Model(&model.SessionModel{}).
		Where("session_institution_id = ? AND session_deleted_at IS NULL", institutionID)

	if q.Active != nil {
		dbq = dbq.Where("session_is_active = ?", *q.Active)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Count failed: "+err.Error())
	}

	var list []model.SessionModel
	if err := dbq.
		Order("session_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	return helper.SuccessList(c, "Daftar session", dto.FromModels(list), helper.BuildMeta(total, p))
}

// -----------------------------
// SoftDelete (set inactive + deleted_at)
// -----------------------------
func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var ent model.SessionModel
	if err := ctl.DB.
		Where("session_id = ? AND session_institution_id = ? AND session_deleted_at IS NULL", id, institutionID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	now := time.Now()
	ent.SessionIsActive = false
	ent.SessionDeletedAt = &now
	ent.SessionUpdatedAt = &now

	if err := ctl.DB.
		Model(&ent).
		Select("SessionIsActive", "SessionDeletedAt", "SessionUpdatedAt").
		Updates(&ent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Delete failed: "+err.Error())
	}

	return c.SendStatus(http.StatusNoContent)
}
