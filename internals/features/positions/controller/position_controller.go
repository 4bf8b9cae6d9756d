package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/features/positions/dto"
	"volunteerhub_backend/internals/features/positions/model"
	"volunteerhub_backend/internals/features/positions/service"
	helper "volunteerhub_backend/internals/helpers"
)

type PositionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPositionController(db *gorm.DB) *PositionController {
	return &PositionController{DB: db, Validate: validator.New()}
}

// GET /api/a/positions
func (ctl *PositionController) List(c *fiber.Ctx) error {
	var positions []model.PositionModel
	if err := ctl.DB.Order("position_created_at ASC").Find(&positions).Error; err != nil {
		log.Printf("[ERROR] list positions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch positions")
	}

	responses := make([]dto.PositionResponse, 0, len(positions))
	for i := range positions {
		responses = append(responses, dto.ToPositionResponse(&positions[i]))
	}
	return helper.JsonOK(c, "ok", responses)
}

// POST /api/a/positions
func (ctl *PositionController) Create(c *fiber.Ctx) error {
	var req dto.PositionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.MinAge != nil && req.MaxAge != nil && *req.MinAge > *req.MaxAge {
		return helper.JsonError(c, fiber.StatusBadRequest, "min_age must not exceed max_age")
	}

	position := req.ToModel()
	position.PositionID = uuid.New()
	if err := ctl.DB.Create(position).Error; err != nil {
		log.Printf("[ERROR] create position: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create position")
	}
	return helper.JsonCreated(c, "Position created", dto.ToPositionResponse(position))
}

// PUT /api/a/positions/:id
func (ctl *PositionController) Update(c *fiber.Ctx) error {
	positionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid position id")
	}

	var req dto.PositionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.MinAge != nil && req.MaxAge != nil && *req.MinAge > *req.MaxAge {
		return helper.JsonError(c, fiber.StatusBadRequest, "min_age must not exceed max_age")
	}

	var position model.PositionModel
	if err := ctl.DB.First(&position, "position_id = ?", positionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Position not found")
		}
		log.Printf("[ERROR] load position %s: %v", positionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch position")
	}

	req.ApplyToModel(&position)
	if err := ctl.DB.Save(&position).Error; err != nil {
		log.Printf("[ERROR] update position %s: %v", positionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update position")
	}
	return helper.JsonOK(c, "Position updated", dto.ToPositionResponse(&position))
}

// DELETE /api/a/positions/:id — cascades to the activity configs built on
// the position and their reservations.
func (ctl *PositionController) Delete(c *fiber.Ctx) error {
	positionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid position id")
	}

	if err := service.DeletePosition(ctl.DB, positionID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] delete position %s: %v", positionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete position")
	}
	return helper.JsonOK(c, "Position deleted", fiber.Map{"id": positionID})
}
