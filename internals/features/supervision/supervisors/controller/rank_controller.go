package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikku_backend/internals/features/supervision/supervisors/dto"
	"praktikku_backend/internals/features/supervision/supervisors/model"
	helper "praktikku_backend/internals/helpers"
	helperAuth "praktikku_backend/internals/helpers/auth"
)

// RankController mengelola master jabatan akademik (bobot prioritas).
type RankController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRankController(db *gorm.DB) *RankController {
	return &RankController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *RankController) Create(c *fiber.Ctx) error {
	var body dto.RankCreateDTO
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

	return c.Status(fiber.StatusCreated).JSON(dto.FromRankModel(ent))
}

func (ctl *RankController) List(c *fiber.Ctx) error {
	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var list []model.RankModel
	if err := ctl.DB.
		Where("rank_institution_id = ?", institutionID).
		Order("rank_weight DESC, rank_code ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	return helper.Success(c, "Daftar rank", dto.FromRankModels(list))
}
