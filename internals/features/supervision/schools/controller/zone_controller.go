package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praktikku_backend/internals/features/supervision/schools/dto"
	"praktikku_backend/internals/features/supervision/schools/model"
	helper "praktikku_backend/internals/helpers"
	helperAuth "praktikku_backend/internals/helpers/auth"
)

// ZoneController mengelola master zona: route (jalur) dan LGA.
type ZoneController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewZoneController(db *gorm.DB) *ZoneController {
	return &ZoneController{
		DB:        db,
		Validator: validator.New(),
	}
}

// -----------------------------
// Routes (jalur)
// -----------------------------

func (ctl *ZoneController) CreateRoute(c *fiber.Ctx) error {
	var body dto.RouteCreateDTO
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

	return c.Status(fiber.StatusCreated).JSON(dto.FromRouteModel(ent))
}

func (ctl *ZoneController) ListRoutes(c *fiber.Ctx) error {
	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var list []model.RouteModel
	if err := ctl.DB.
		Where("route_institution_id = ?", institutionID).
		Order("route_name ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	return helper.Success(c, "Daftar jalur", dto.FromRouteModels(list))
}

// -----------------------------
// LGAs
// -----------------------------

func (ctl *ZoneController) CreateLga(c *fiber.Ctx) error {
	var body dto.LgaCreateDTO
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

	return c.Status(fiber.StatusCreated).JSON(dto.FromLgaModel(ent))
}

func (ctl *ZoneController) ListLgas(c *fiber.Ctx) error {
	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	var list []model.LgaModel
	if err := ctl.DB.
		Where("lga_institution_id = ?", institutionID).
		Order("lga_name ASC").
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Query failed: "+err.Error())
	}

	return helper.Success(c, "Daftar LGA", dto.FromLgaModels(list))
}
