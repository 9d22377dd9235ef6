package dto

import (
	"portal/internal/domains/room/model"
	"portal/shared"
	gDto "portal/shared/dto"
	gModel "portal/shared/model"
	"portal/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name     string `json:"name"     validate:"required,max=50"`
	Floor    *int   `json:"floor"    validate:"omitempty,min=0"`
	Capacity *int   `json:"capacity" validate:"omitempty,min=1"`
}

func (c *CreateRoomRequest) ToModel(user string) model.StudyRoom {
	floor := 1
	if c.Floor != nil {
		floor = *c.Floor
	}

	capacity := 4
	if c.Capacity != nil {
		capacity = *c.Capacity
	}

	return model.StudyRoom{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Floor:       floor,
		Capacity:    capacity,
		IsAvailable: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RoomResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Floor       int    `json:"floor"`
	Capacity    int    `json:"capacity"`
	IsAvailable bool   `json:"is_available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.StudyRoom) {
	r.ID = model.ID
	r.Name = model.Name
	r.Floor = model.Floor
	r.Capacity = model.Capacity
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetRoomsResponse) FromModels(models []model.StudyRoom, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		g.Rooms[i].FromModel(mod)
	}
}

// ToggleResponse reports the flag state after a toggle or release.
type ToggleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsAvailable bool   `json:"is_available"`
}

type DashboardResponse struct {
	Rooms          []RoomResponse `json:"rooms"`
	OccupiedCount  int            `json:"occupied_count"`
	AvailableCount int            `json:"available_count"`
	TodayBookings  int            `json:"today_bookings"`
}
