package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type envelope struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func decodeEnvelope(t *testing.T, resp io.Reader) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(resp).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return env
}

// ValidationError harus merender map field→tag dalam envelope error standar.
func TestValidationErrorEnvelope(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required,min=3"`
	}
	v := validator.New()

	app := fiber.New()
	app.Post("/x", func(c *fiber.Ctx) error {
		var body payload
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid body")
		}
		if err := v.Struct(&body); err != nil {
			return ValidationError(c, err)
		}
		return Success(c, "ok", nil)
	})

	req := httptest.NewRequest("POST", "/x", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp.Body)
	if env.Status != "error" {
		t.Errorf("status field = %q, want error", env.Status)
	}
	if !strings.Contains(env.Message, "Validasi") {
		t.Errorf("message = %q, want mention Validasi", env.Message)
	}
	if env.Errors["Name"] != "required" {
		t.Errorf("errors[Name] = %q, want required", env.Errors["Name"])
	}
}

// Error non-validator tetap jatuh ke envelope sederhana 400.
func TestValidationErrorNonValidatorFallback(t *testing.T) {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return ValidationError(c, io.ErrUnexpectedEOF)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp.Body)
	if env.Status != "error" || env.Message != "Invalid input" {
		t.Errorf("envelope = %+v, want error/Invalid input", env)
	}
}

// fiber.NewError yang lolos sampai error handler global harus keluar
// sebagai envelope JSON dengan status code aslinya.
func TestErrorHandlerEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/x", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusConflict, "Slot sudah terisi")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp.Body)
	if env.Code != fiber.StatusConflict || env.Status != "error" {
		t.Errorf("envelope = %+v, want code 409 status error", env)
	}
	if env.Message != "Slot sudah terisi" {
		t.Errorf("message = %q", env.Message)
	}
}

// Error biasa (bukan *fiber.Error) dipetakan ke 500.
func TestErrorHandlerPlainError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/x", func(c *fiber.Ctx) error {
		return io.ErrUnexpectedEOF
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	env := decodeEnvelope(t, resp.Body)
	if env.Status != "error" {
		t.Errorf("status field = %q, want error", env.Status)
	}
}
