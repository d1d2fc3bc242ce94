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

type FacultyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFacultyController(db *gorm.DB) *FacultyController {
	return &FacultyController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *FacultyController) Create(c *fiber.Ctx) error {
	var body dto.FacultyCreateDTO
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

	return c.Status(fiber.StatusCreated).JSON(dto.FromFacultyModel(ent))
}

func (ctl *FacultyController) List(c *fiber.Ctx) error {
	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var list []model.FacultyModel
	if err := ctl.DB.
		Where("faculty_institution_id = ?", institutionID).
		Order("faculty_code ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	return helper.Success(c, "Daftar fakultas", dto.FromFacultyModels(list))
}
