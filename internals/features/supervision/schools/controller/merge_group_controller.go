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

// MergeGroupController: dua kelompok kecil lintas sekolah berbagi satu posting.
// Selama merge hidup, kelompok sekunder tidak menghasilkan slot auto-posting.
type MergeGroupController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMergeGroupController(db *gorm.DB) *MergeGroupController {
	return &MergeGroupController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *MergeGroupController) Create(c *fiber.Ctx) error {
	var body dto.MergeGroupCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.MergePrimaryGroupID == body.MergeSecondaryGroupID {
		return fiber.NewError(fiber.StatusBadRequest, "Kelompok primer dan sekunder harus berbeda")
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	// kedua kelompok harus milik institusi di token
	var n int64
	if err := ctl.DB.
		Table("school_groups").
		Joins("JOIN schools ON schools.school_id = school_groups.group_school_id").
		Where("school_groups.group_id IN ? AND schools.school_institution_id = ? AND schools.school_deleted_at IS NULL",
			[]uuid.UUID{body.MergePrimaryGroupID, body.MergeSecondaryGroupID}, institutionID).
		Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}
	if n != 2 {
		return fiber.NewError(fiber.StatusNotFound, "Kelompok tidak ditemukan di institusi ini")
	}

	// tolak bila salah satu kelompok masih terlibat merge hidup
	var live int64
	if err := ctl.DB.
		Model(&model.MergeGroupModel{}).
		Where("merge_institution_id = ? AND merge_invalidated_at IS NULL", institutionID).
		Where("merge_primary_group_id IN ? OR merge_secondary_group_id IN ?",
			[]uuid.UUID{body.MergePrimaryGroupID, body.MergeSecondaryGroupID},
			[]uuid.UUID{body.MergePrimaryGroupID, body.MergeSecondaryGroupID}).
		Count(&live).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}
	if live > 0 {
		return fiber.NewError(fiber.StatusConflict, "Kelompok sudah terlibat merge aktif")
	}

	ent := body.ToModel(institutionID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Create failed: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromMergeGroupModel(ent))
}

// Invalidate: akhiri merge; kelompok sekunder kembali menghasilkan slot sendiri.
func (ctl *MergeGroupController) Invalidate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var ent model.MergeGroupModel
	if err := ctl.DB.
		Where("merge_id = ? AND merge_institution_id = ?", id, institutionID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}
	if ent.MergeInvalidatedAt != nil {
		return fiber.NewError(fiber.StatusConflict, "Merge sudah tidak aktif")
	}

	now := time.Now()
	ent.MergeInvalidatedAt = &now

	if err := ctl.DB.
		Model(&ent).
		Select("MergeInvalidatedAt").
		Updates(&ent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Update failed: "+err.Error())
	}

	return c.JSON(dto.FromMergeGroupModel(ent))
}

func (ctl *MergeGroupController) List(c *fiber.Ctx) error {
	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	dbq := ctl.DB.
		Model(&model.MergeGroupModel{}).
		Where("merge_institution_id = ?", institutionID)

	if c.Query("active") == "true" {
		dbq = dbq.Where("merge_invalidated_at IS NULL")
	}

	var list []model.MergeGroupModel
	if err := dbq.
		Order("merge_created_at DESC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	return helper.Success(c, "Daftar merge kelompok", dto.FromMergeGroupModels(list))
}
