package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/features/activities/dto"
	"volunteerhub_backend/internals/features/activities/model"
	"volunteerhub_backend/internals/features/activities/service"
	positionModel "volunteerhub_backend/internals/features/positions/model"
	reservationModel "volunteerhub_backend/internals/features/reservations/model"
	userModel "volunteerhub_backend/internals/features/users/user/model"
	helper "volunteerhub_backend/internals/helpers"
	"volunteerhub_backend/internals/helpers/timeslot"
)

type ActivityAdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewActivityAdminController(db *gorm.DB) *ActivityAdminController {
	return &ActivityAdminController{DB: db, Validate: validator.New()}
}

// POST /api/a/activities — create the activity and its position configs in
// one transaction.
func (ctl *ActivityAdminController) Create(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if _, err := timeslot.Slots(req.StartTime, req.EndTime); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.ensurePositionsExist(req.PositionConfigs); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] verify positions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify positions")
	}

	activity := req.ToModel()
	activity.ActivityID = uuid.New()
	activity.ActivityCreatedBy = &adminID

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(activity).Error; err != nil {
			return err
		}
		for _, cfg := range req.PositionConfigs {
			row := model.ActivityPositionConfigModel{
				ConfigID:         uuid.New(),
				ConfigActivityID: activity.ActivityID,
				ConfigPositionID: cfg.PositionID,
				ConfigCount:      cfg.Count,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] create activity: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create activity")
	}

	return helper.JsonCreated(c, "Activity created", fiber.Map{"id": activity.ActivityID})
}

// GET /api/a/activities?month=YYYY-MM — all activities (optionally one
// month) with demand and reservation totals.
func (ctl *ActivityAdminController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.ActivityModel{})
	if month := c.Query("month"); month != "" {
		q = q.Where("activity_date LIKE ?", month+"%")
	}

	var activities []model.ActivityModel
	if err := q.Order("activity_date ASC, activity_start_time ASC").Find(&activities).Error; err != nil {
		log.Printf("[ERROR] list activities: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}

	summaries, err := service.BuildSummaries(ctl.DB, activities)
	if err != nil {
		log.Printf("[ERROR] summarize activities: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}
	return helper.JsonOK(c, "ok", summaries)
}

// GET /api/a/activities/:id — per-position-per-slot roster with the
// reserved volunteers' names.
func (ctl *ActivityAdminController) Detail(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	var activity model.ActivityModel
	if err := ctl.DB.First(&activity, "activity_id = ?", activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		log.Printf("[ERROR] load activity %s: %v", activityID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}

	slots, err := timeslot.Slots(activity.ActivityStartTime, activity.ActivityEndTime)
	if err != nil {
		log.Printf("[ERROR] activity %s has malformed times: %v", activityID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Activity has malformed times")
	}

	configs, positions, err := service.LoadConfigs(ctl.DB, []uuid.UUID{activityID})
	if err != nil {
		log.Printf("[ERROR] load configs for %s: %v", activityID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}

	var reservations []reservationModel.ReservationModel
	if err := ctl.DB.
		Where("reservation_activity_id = ? AND reservation_status <> ?", activityID, reservationModel.StatusCancelled).
		Find(&reservations).Error; err != nil {
		log.Printf("[ERROR] load reservations for %s: %v", activityID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}

	volunteers := ctl.loadVolunteers(reservations)

	// reservations bucketed by (config, slot)
	byCell := make(map[uuid.UUID]map[string][]dto.RosterEntry)
	for i := range reservations {
		r := &reservations[i]
		entry := dto.RosterEntry{
			ReservationID: r.ReservationID,
			UserID:        r.ReservationUserID,
			Status:        r.ReservationStatus,
		}
		if u, ok := volunteers[r.ReservationUserID]; ok {
			entry.UserName = u.UserName
			entry.UserPhone = u.UserPhone
		}
		if byCell[r.ReservationConfigID] == nil {
			byCell[r.ReservationConfigID] = make(map[string][]dto.RosterEntry)
		}
		byCell[r.ReservationConfigID][r.ReservationTimeSlot] = append(byCell[r.ReservationConfigID][r.ReservationTimeSlot], entry)
	}

	roster := make([]dto.RosterPosition, 0, len(configs))
	for i := range configs {
		cfg := &configs[i]
		rp := dto.RosterPosition{
			ConfigID:   cfg.ConfigID,
			PositionID: cfg.ConfigPositionID,
			Count:      cfg.ConfigCount,
			Cells:      make([]dto.RosterCell, 0, len(slots)),
		}
		if p, ok := positions[cfg.ConfigPositionID]; ok {
			rp.PositionName = p.PositionName
		}
		for _, slot := range slots {
			entries := byCell[cfg.ConfigID][slot]
			if entries == nil {
				entries = []dto.RosterEntry{}
			}
			rp.Cells = append(rp.Cells, dto.RosterCell{
				TimeSlot: slot,
				Count:    cfg.ConfigCount,
				Reserved: len(entries),
				Entries:  entries,
			})
		}
		roster = append(roster, rp)
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"id":          activity.ActivityID,
		"name":        activity.ActivityName,
		"date":        activity.ActivityDate,
		"start_time":  activity.ActivityStartTime,
		"end_time":    activity.ActivityEndTime,
		"location":    activity.ActivityLocation,
		"description": activity.ActivityDescription,
		"time_slots":  slots,
		"roster":      roster,
	})
}

// PUT /api/a/activities — update the activity and replace its position
// configs in one transaction.
func (ctl *ActivityAdminController) Update(c *fiber.Ctx) error {
	var req dto.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if _, err := timeslot.Slots(req.StartTime, req.EndTime); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.ensurePositionsExist(req.PositionConfigs); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] verify positions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify positions")
	}

	var activity model.ActivityModel
	if err := ctl.DB.First(&activity, "activity_id = ?", req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Activity not found")
		}
		log.Printf("[ERROR] load activity %s: %v", req.ID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activity")
	}

	activity.ActivityName = req.Name
	activity.ActivityDate = req.Date
	activity.ActivityStartTime = req.StartTime
	activity.ActivityEndTime = req.EndTime
	if req.Location != "" {
		loc := req.Location
		activity.ActivityLocation = &loc
	} else {
		activity.ActivityLocation = nil
	}
	if req.Description != "" {
		desc := req.Description
		activity.ActivityDescription = &desc
	} else {
		activity.ActivityDescription = nil
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&activity).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.ActivityPositionConfigModel{}, "config_activity_id = ?", activity.ActivityID).Error; err != nil {
			return err
		}
		for _, cfg := range req.PositionConfigs {
			row := model.ActivityPositionConfigModel{
				ConfigID:         uuid.New(),
				ConfigActivityID: activity.ActivityID,
				ConfigPositionID: cfg.PositionID,
				ConfigCount:      cfg.Count,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] update activity %s: %v", req.ID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update activity")
	}

	return helper.JsonOK(c, "Activity updated", fiber.Map{"id": activity.ActivityID})
}

// DELETE /api/a/activities?id= — remove the activity with its configs and
// reservations in one transaction.
func (ctl *ActivityAdminController) Delete(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid activity id")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.ActivityModel{}, "activity_id = ?", activityID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Activity not found")
		}
		if err := tx.Delete(&model.ActivityPositionConfigModel{}, "config_activity_id = ?", activityID).Error; err != nil {
			return err
		}
		return tx.Delete(&reservationModel.ReservationModel{}, "reservation_activity_id = ?", activityID).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] delete activity %s: %v", activityID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete activity")
	}
	return helper.JsonOK(c, "Activity deleted", fiber.Map{"id": activityID})
}

// GET /api/a/activities/date/:date
func (ctl *ActivityAdminController) ByDate(c *fiber.Ctx) error {
	date := c.Params("date")

	var activities []model.ActivityModel
	if err := ctl.DB.
		Where("activity_date = ?", date).
		Order("activity_start_time ASC").
		Find(&activities).Error; err != nil {
		log.Printf("[ERROR] activities by date %s: %v", date, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}

	summaries, err := service.BuildSummaries(ctl.DB, activities)
	if err != nil {
		log.Printf("[ERROR] summarize activities: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}
	return helper.JsonOK(c, "ok", summaries)
}

// GET /api/a/activities/month/:month — calendar map date -> activity names.
func (ctl *ActivityAdminController) ByMonth(c *fiber.Ctx) error {
	month := c.Params("month")

	var activities []model.ActivityModel
	if err := ctl.DB.
		Select("activity_id", "activity_date", "activity_name").
		Where("activity_date LIKE ?", month+"%").
		Order("activity_date ASC").
		Find(&activities).Error; err != nil {
		log.Printf("[ERROR] activities by month %s: %v", month, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activities")
	}

	calendar := make(map[string][]string)
	for i := range activities {
		calendar[activities[i].ActivityDate] = append(calendar[activities[i].ActivityDate], activities[i].ActivityName)
	}
	return helper.JsonOK(c, "ok", calendar)
}

func (ctl *ActivityAdminController) ensurePositionsExist(configs []dto.PositionConfigRequest) error {
	ids := make([]uuid.UUID, 0, len(configs))
	seen := make(map[uuid.UUID]struct{}, len(configs))
	for _, cfg := range configs {
		if _, ok := seen[cfg.PositionID]; !ok {
			seen[cfg.PositionID] = struct{}{}
			ids = append(ids, cfg.PositionID)
		}
	}
	var found int64
	if err := ctl.DB.Model(&positionModel.PositionModel{}).
		Where("position_id IN ?", ids).
		Count(&found).Error; err != nil {
		return err
	}
	if int(found) < len(ids) {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown position in position_configs")
	}
	return nil
}

func (ctl *ActivityAdminController) loadVolunteers(reservations []reservationModel.ReservationModel) map[uuid.UUID]userModel.UserModel {
	userIDs := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for i := range reservations {
		id := reservations[i].ReservationUserID
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			userIDs = append(userIDs, id)
		}
	}
	out := make(map[uuid.UUID]userModel.UserModel, len(userIDs))
	if len(userIDs) == 0 {
		return out
	}
	var users []userModel.UserModel
	if err := ctl.DB.Select("user_id", "user_name", "user_phone").Where("user_id IN ?", userIDs).Find(&users).Error; err != nil {
		log.Printf("[WARN] volunteer lookup: %v", err)
		return out
	}
	for i := range users {
		out[users[i].UserID] = users[i]
	}
	return out
}
