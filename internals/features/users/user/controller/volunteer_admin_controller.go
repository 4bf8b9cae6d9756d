package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/constants"
	activityModel "volunteerhub_backend/internals/features/activities/model"
	checkinModel "volunteerhub_backend/internals/features/checkins/model"
	reservationModel "volunteerhub_backend/internals/features/reservations/model"
	"volunteerhub_backend/internals/features/users/user/dto"
	"volunteerhub_backend/internals/features/users/user/model"
	helper "volunteerhub_backend/internals/helpers"
	"volunteerhub_backend/internals/helpers/timeslot"
)

type VolunteerAdminController struct {
	DB *gorm.DB
}

func NewVolunteerAdminController(db *gorm.DB) *VolunteerAdminController {
	return &VolunteerAdminController{DB: db}
}

// GET /api/a/volunteers?search=&page=&per_page= — paginated volunteer
// roster with the running hour totals.
func (ctl *VolunteerAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.UserModel{}).
		Where("user_role IN ?", constants.VolunteerRoles)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name LIKE ? OR user_phone LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count volunteers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch volunteers")
	}

	var users []model.UserModel
	if err := q.Order("user_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		log.Printf("[ERROR] list volunteers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch volunteers")
	}

	hours := ctl.hourTotals(users)
	items := make([]dto.VolunteerListItem, 0, len(users))
	for i := range users {
		u := &users[i]
		items = append(items, dto.VolunteerListItem{
			ID:         u.UserID,
			Name:       u.UserName,
			Phone:      u.UserPhone,
			Email:      u.UserEmail,
			Role:       u.UserRole,
			IsActive:   u.UserIsActive,
			TotalHours: hours[u.UserID],
			CreatedAt:  u.UserCreatedAt,
		})
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", items, pagination)
}

// GET /api/a/volunteers/:id — profile, reservation history, attendance
// records and the hour total recomputed from the records.
func (ctl *VolunteerAdminController) Detail(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid volunteer id")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Volunteer not found")
		}
		log.Printf("[ERROR] load volunteer %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch volunteer")
	}
	if !constants.IsVolunteerRole(user.UserRole) {
		return helper.JsonError(c, fiber.StatusNotFound, "Volunteer not found")
	}

	var reservations []reservationModel.ReservationModel
	if err := ctl.DB.
		Where("reservation_user_id = ?", userID).
		Order("reservation_reserve_time DESC").
		Find(&reservations).Error; err != nil {
		log.Printf("[ERROR] load reservations for %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch volunteer")
	}

	activityNames, activityDates := ctl.activityInfo(reservations)
	slotByReservation := make(map[uuid.UUID]string, len(reservations))
	reservationViews := make([]dto.VolunteerReservationView, 0, len(reservations))
	for i := range reservations {
		r := &reservations[i]
		slotByReservation[r.ReservationID] = r.ReservationTimeSlot
		reservationViews = append(reservationViews, dto.VolunteerReservationView{
			ReservationID: r.ReservationID,
			ActivityID:    r.ReservationActivityID,
			ActivityName:  activityNames[r.ReservationActivityID],
			ActivityDate:  activityDates[r.ReservationActivityID],
			TimeSlot:      r.ReservationTimeSlot,
			Status:        r.ReservationStatus,
			ReserveTime:   r.ReservationReserveTime,
		})
	}

	var records []checkinModel.CheckInRecordModel
	if err := ctl.DB.
		Where("check_in_user_id = ?", userID).
		Order("check_in_time DESC").
		Find(&records).Error; err != nil {
		log.Printf("[ERROR] load check-ins for %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch volunteer")
	}

	recomputedHours := 0
	checkInViews := make([]dto.VolunteerCheckInView, 0, len(records))
	for i := range records {
		r := &records[i]
		slot := slotByReservation[r.CheckInReservationID]
		earned := timeslot.SlotHours(slot)
		recomputedHours += earned
		checkInViews = append(checkInViews, dto.VolunteerCheckInView{
			CheckInID:     r.CheckInID,
			ReservationID: r.CheckInReservationID,
			TimeSlot:      slot,
			CheckInTime:   r.CheckInTime,
			CheckOutTime:  r.CheckOutTime,
			HoursEarned:   earned,
		})
	}

	var hourRow checkinModel.VolunteerHourModel
	storedHours := 0
	if err := ctl.DB.First(&hourRow, "volunteer_hour_user_id = ?", userID).Error; err == nil {
		storedHours = hourRow.VolunteerHourTotalHours
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"volunteer": fiber.Map{
			"id":         user.UserID,
			"name":       user.UserName,
			"phone":      user.UserPhone,
			"email":      user.UserEmail,
			"role":       user.UserRole,
			"is_active":  user.UserIsActive,
			"created_at": user.UserCreatedAt,
		},
		"total_hours":      storedHours,
		"recomputed_hours": recomputedHours,
		"reservations":     reservationViews,
		"check_ins":        checkInViews,
	})
}

func (ctl *VolunteerAdminController) hourTotals(users []model.UserModel) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(users))
	if len(users) == 0 {
		return out
	}
	ids := make([]uuid.UUID, 0, len(users))
	for i := range users {
		ids = append(ids, users[i].UserID)
	}
	var rows []checkinModel.VolunteerHourModel
	if err := ctl.DB.Where("volunteer_hour_user_id IN ?", ids).Find(&rows).Error; err != nil {
		log.Printf("[WARN] hour totals: %v", err)
		return out
	}
	for i := range rows {
		out[rows[i].VolunteerHourUserID] = rows[i].VolunteerHourTotalHours
	}
	return out
}

func (ctl *VolunteerAdminController) activityInfo(reservations []reservationModel.ReservationModel) (map[uuid.UUID]string, map[uuid.UUID]string) {
	names := make(map[uuid.UUID]string)
	dates := make(map[uuid.UUID]string)
	ids := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]struct{})
	for i := range reservations {
		id := reservations[i].ReservationActivityID
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return names, dates
	}
	var activities []activityModel.ActivityModel
	if err := ctl.DB.Select("activity_id", "activity_name", "activity_date").
		Where("activity_id IN ?", ids).Find(&activities).Error; err != nil {
		log.Printf("[WARN] activity lookup: %v", err)
		return names, dates
	}
	for i := range activities {
		names[activities[i].ActivityID] = activities[i].ActivityName
		dates[activities[i].ActivityID] = activities[i].ActivityDate
	}
	return names, dates
}
