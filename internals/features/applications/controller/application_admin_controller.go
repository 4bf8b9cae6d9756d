package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/features/applications/dto"
	"volunteerhub_backend/internals/features/applications/model"
	"volunteerhub_backend/internals/features/applications/service"
	userModel "volunteerhub_backend/internals/features/users/user/model"
	helper "volunteerhub_backend/internals/helpers"
)

type ApplicationAdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewApplicationAdminController(db *gorm.DB) *ApplicationAdminController {
	return &ApplicationAdminController{DB: db, Validate: validator.New()}
}

// GET /api/a/applications?status= — list applications, newest first.
func (ctl *ApplicationAdminController) List(c *fiber.Ctx) error {
	status := c.Query("status")

	q := ctl.DB.Model(&model.VolunteerApplicationModel{})
	if status != "" {
		if status != model.StatusPending && status != model.StatusApproved && status != model.StatusRejected {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown status filter")
		}
		q = q.Where("application_status = ?", status)
	}

	var applications []model.VolunteerApplicationModel
	if err := q.Order("application_apply_time DESC").Find(&applications).Error; err != nil {
		log.Printf("[ERROR] list applications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	reviewerNames := ctl.reviewerNames(applications)
	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		var name *string
		if rb := applications[i].ApplicationReviewBy; rb != nil {
			if n, ok := reviewerNames[*rb]; ok {
				name = &n
			}
		}
		responses = append(responses, dto.ToApplicationResponse(&applications[i], name))
	}

	return helper.JsonOK(c, "ok", responses)
}

// POST /api/a/applications/:id/action — approve or reject one application.
func (ctl *ApplicationAdminController) Action(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}
	adminID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ApplicationActionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	result, err := service.ReviewApplication(ctl.DB, applicationID, adminID, req.Action, req.ReviewNote)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] review application %s: %v", applicationID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process application")
	}

	data := fiber.Map{"status": result.Status}
	if result.Status == model.StatusApproved {
		data["user_id"] = result.UserID
		// handed to the applicant out of band by the admin
		data["default_password"] = result.DefaultPassword
	}
	return helper.JsonOK(c, "Application processed", data)
}

func (ctl *ApplicationAdminController) reviewerNames(applications []model.VolunteerApplicationModel) map[uuid.UUID]string {
	ids := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for i := range applications {
		if rb := applications[i].ApplicationReviewBy; rb != nil {
			if _, ok := seen[*rb]; !ok {
				seen[*rb] = struct{}{}
				ids = append(ids, *rb)
			}
		}
	}
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out
	}
	var reviewers []userModel.UserModel
	if err := ctl.DB.Select("user_id", "user_name").Where("user_id IN ?", ids).Find(&reviewers).Error; err != nil {
		log.Printf("[WARN] reviewer lookup: %v", err)
		return out
	}
	for i := range reviewers {
		out[reviewers[i].UserID] = reviewers[i].UserName
	}
	return out
}
