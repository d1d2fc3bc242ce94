package controller

import (
	"errors"
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

// GroupController: kelompok mahasiswa per sekolah (nested di /schools/:school_id/groups).
type GroupController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{
		DB:        db,
		Validator: validator.New(),
	}
}

// pastikan sekolah milik institusi di token (guard multi-tenant)
func (ctl *GroupController) ownedSchool(c *fiber.Ctx) (uuid.UUID, error) {
	schoolID, err := uuid.Parse(c.Params("school_id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid school_id")
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}

	var ent model.SchoolModel
	if err := ctl.DB.
		Select("school_id").
		Where("school_id = ? AND school_institution_id = ? AND school_deleted_at IS NULL", schoolID, institutionID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "School not found")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}
	return schoolID, nil
}

func (ctl *GroupController) Create(c *fiber.Ctx) error {
	schoolID, err := ctl.ownedSchool(c)
	if err != nil {
		return err
	}

	var body dto.GroupCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	ent := body.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Create failed: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromGroupModel(ent))
}

func (ctl *GroupController) Update(c *fiber.Ctx) error {
	schoolID, err := ctl.ownedSchool(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var body dto.GroupUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.GroupModel
	if err := ctl.DB.
		Where("group_id = ? AND group_school_id = ?", id, schoolID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	body.ApplyUpdates(&ent)

	now := time.Now()
	ent.GroupUpdatedAt = &now

	if err := ctl.DB.
		Model(&ent).
		Select("GroupStudentCount", "GroupUpdatedAt").
		Updates(&ent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Update failed: "+err.Error())
	}

	return c.JSON(dto.FromGroupModel(ent))
}

func (ctl *GroupController) List(c *fiber.Ctx) error {
	schoolID, err := ctl.ownedSchool(c)
	if err != nil {
		return err
	}

	var list []model.GroupModel
	if err := ctl.DB.
		Where("group_school_id = ?", schoolID).
		Order("group_number ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	return helper.Success(c, "Daftar kelompok", dto.FromGroupModels(list))
}
