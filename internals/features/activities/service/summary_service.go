package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/features/activities/dto"
	"volunteerhub_backend/internals/features/activities/model"
	positionModel "volunteerhub_backend/internals/features/positions/model"
	reservationModel "volunteerhub_backend/internals/features/reservations/model"
	"volunteerhub_backend/internals/helpers/timeslot"
)

// LoadConfigs fetches the position configs of the given activities and the
// position rows they point at.
func LoadConfigs(db *gorm.DB, activityIDs []uuid.UUID) ([]model.ActivityPositionConfigModel, map[uuid.UUID]positionModel.PositionModel, error) {
	var configs []model.ActivityPositionConfigModel
	if len(activityIDs) > 0 {
		if err := db.
			Where("config_activity_id IN ?", activityIDs).
			Order("config_created_at ASC").
			Find(&configs).Error; err != nil {
			return nil, nil, err
		}
	}

	positionIDs := make([]uuid.UUID, 0, len(configs))
	seen := make(map[uuid.UUID]struct{})
	for i := range configs {
		id := configs[i].ConfigPositionID
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			positionIDs = append(positionIDs, id)
		}
	}

	positions := make(map[uuid.UUID]positionModel.PositionModel, len(positionIDs))
	if len(positionIDs) > 0 {
		var rows []positionModel.PositionModel
		if err := db.Where("position_id IN ?", positionIDs).Find(&rows).Error; err != nil {
			return nil, nil, err
		}
		for i := range rows {
			positions[rows[i].PositionID] = rows[i]
		}
	}
	return configs, positions, nil
}

// BuildSummaries attaches configs, derived slots, total demand and the
// RESERVED count to each activity.
func BuildSummaries(db *gorm.DB, activities []model.ActivityModel) ([]dto.ActivitySummary, error) {
	activityIDs := make([]uuid.UUID, 0, len(activities))
	for i := range activities {
		activityIDs = append(activityIDs, activities[i].ActivityID)
	}

	configs, positions, err := LoadConfigs(db, activityIDs)
	if err != nil {
		return nil, err
	}
	configsByActivity := make(map[uuid.UUID][]model.ActivityPositionConfigModel)
	for i := range configs {
		configsByActivity[configs[i].ConfigActivityID] = append(configsByActivity[configs[i].ConfigActivityID], configs[i])
	}

	reservedByActivity := make(map[uuid.UUID]int)
	if len(activityIDs) > 0 {
		type reservedRow struct {
			ActivityID uuid.UUID `gorm:"column:reservation_activity_id"`
			Total      int       `gorm:"column:total"`
		}
		var rows []reservedRow
		if err := db.Model(&reservationModel.ReservationModel{}).
			Select("reservation_activity_id, COUNT(*) AS total").
			Where("reservation_activity_id IN ? AND reservation_status = ?", activityIDs, reservationModel.StatusReserved).
			Group("reservation_activity_id").
			Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			reservedByActivity[row.ActivityID] = row.Total
		}
	}

	summaries := make([]dto.ActivitySummary, 0, len(activities))
	for i := range activities {
		a := &activities[i]
		slots, err := timeslot.Slots(a.ActivityStartTime, a.ActivityEndTime)
		if err != nil {
			slots = []string{}
		}

		views := make([]dto.PositionConfigView, 0)
		demand := 0
		for _, cfg := range configsByActivity[a.ActivityID] {
			view := dto.PositionConfigView{
				ConfigID:   cfg.ConfigID,
				PositionID: cfg.ConfigPositionID,
				Count:      cfg.ConfigCount,
			}
			if p, ok := positions[cfg.ConfigPositionID]; ok {
				view.PositionName = p.PositionName
				view.AllowedVolunteerTypes = []string(p.PositionAllowedVolunteerTypes)
				view.GenderRestriction = p.PositionGenderRestriction
				view.MinAge = p.PositionMinAge
				view.MaxAge = p.PositionMaxAge
			}
			views = append(views, view)
			demand += timeslot.TotalDemand(cfg.ConfigCount, len(slots))
		}

		summaries = append(summaries, dto.ActivitySummary{
			ID:              a.ActivityID,
			Name:            a.ActivityName,
			Date:            a.ActivityDate,
			StartTime:       a.ActivityStartTime,
			EndTime:         a.ActivityEndTime,
			Location:        a.ActivityLocation,
			Description:     a.ActivityDescription,
			TimeSlots:       slots,
			TotalDemand:     demand,
			TotalReserved:   reservedByActivity[a.ActivityID],
			PositionConfigs: views,
			CreatedAt:       a.ActivityCreatedAt,
		})
	}
	return summaries, nil
}
