package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"praktikku_backend/internals/features/supervision/postings/dto"
	"praktikku_backend/internals/features/supervision/postings/service"
	helper "praktikku_backend/internals/helpers"
	helperAuth "praktikku_backend/internals/helpers/auth"
)

type AutoPostingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Engine    *service.Engine
}

func NewAutoPostingController(db *gorm.DB) *AutoPostingController {
	return &AutoPostingController{
		DB:        db,
		Validator: validator.New(),
		Engine:    service.NewEngine(service.NewGormStore(db)),
	}
}

// -----------------------------
// Preview (dry-run, tanpa persistensi)
// -----------------------------
func (ctl *AutoPostingController) Preview(c *fiber.Ctx) error {
	var body dto.AutoPostingCriteriaDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	crit, institutionID, err := resolveCriteria(c, &body)
	if err != nil {
		return err
	}

	res, err := ctl.Engine.Preview(c.UserContext(), institutionID, crit)
	if err != nil {
		return engineError(err)
	}
	return helper.Success(c, "Preview auto-posting berhasil", res)
}

// -----------------------------
// Execute (persist postings + batch, satu transaksi)
// -----------------------------
func (ctl *AutoPostingController) Execute(c *fiber.Ctx) error {
	var body dto.AutoPostingCriteriaDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid body: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	crit, institutionID, err := resolveCriteria(c, &body)
	if err != nil {
		return err
	}

	var createdBy *uuid.UUID
	if uid, err := helperAuth.GetUserIDFromToken(c); err == nil {
		createdBy = &uid
	}

	res, err := ctl.Engine.Execute(c.UserContext(), institutionID, createdBy, crit)
	if err != nil {
		return engineError(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Auto-posting berhasil dieksekusi", res)
}

// -----------------------------
// Rollback satu batch utuh
// -----------------------------
func (ctl *AutoPostingController) Rollback(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid batch id")
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	if err := ctl.Engine.Rollback(c.UserContext(), institutionID, batchID); err != nil {
		return engineError(err)
	}
	return helper.Success(c, "Batch berhasil di-rollback", fiber.Map{"batch_id": batchID})
}

// -----------------------------
// History batch (audit), terbaru dulu
// -----------------------------
func (ctl *AutoPostingController) History(c *fiber.Ctx) error {
	var q dto.BatchFilterDTO
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}

	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	list, total, err := ctl.Engine.History(c.UserContext(), institutionID, service.BatchFilter{
		SessionID: q.SessionID,
		Limit:     p.Limit(),
		Offset:    p.Offset(),
	})
	if err != nil {
		return engineError(err)
	}

	return helper.SuccessList(c, "History batch auto-posting", dto.FromBatchModels(list), helper.BuildMeta(total, p))
}

// resolveCriteria: body tervalidasi → Criteria + scope institusi. Token dean
// tanpa faculty_id eksplisit otomatis di-scope ke faculty-nya sendiri.
func resolveCriteria(c *fiber.Ctx, body *dto.AutoPostingCriteriaDTO) (service.Criteria, uuid.UUID, error) {
	institutionID, err := helperAuth.GetInstitutionIDFromToken(c)
	if err != nil {
		return service.Criteria{}, uuid.Nil, err
	}

	if body.FacultyID == nil {
		body.FacultyID = helperAuth.GetFacultyIDFromToken(c)
	}

	crit, err := body.ToCriteria()
	if err != nil {
		return service.Criteria{}, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return crit, institutionID, nil
}

// engineError memetakan error sentinel service ke status HTTP.
func engineError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCriteria):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrBatchNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyRolledBack):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrSlotConflict):
		// Retryable: caller wajib preview ulang lalu execute lagi
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Operasi auto-posting gagal: "+err.Error())
	}
}
