package dto

import (
	"portal/internal/domains/reservation/model"
	"portal/shared"
	gDto "portal/shared/dto"
)

type BookRoomRequest struct {
	RoomName          string `json:"room_name"          validate:"required,max=50"`
	ArrivalDatetime   string `json:"arrival_datetime"   validate:"omitempty,max=30"`
	DepartureDatetime string `json:"departure_datetime" validate:"omitempty,max=30"`
}

type ReservationResponse struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"room_id"`
	UserID      *string `json:"user_id,omitempty"`
	StudentName string  `json:"student_name"`
	StudentID   string  `json:"student_id"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"time_slot"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.RoomReservation) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.StudentName = model.StudentName
	r.StudentID = model.StudentID
	r.Email = model.Email
	r.PhoneNumber = model.PhoneNumber
	r.Date = model.Date
	r.TimeSlot = model.TimeSlot
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (g *GetReservationsResponse) FromModels(models []model.RoomReservation, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		g.Reservations[i].FromModel(mod)
	}
}

// DeleteReservationResponse reports whose booking log was removed.
type DeleteReservationResponse struct {
	StudentName string `json:"student_name"`
}

// PurgeResponse reports how many ledger rows were cleared.
type PurgeResponse struct {
	Deleted int64 `json:"deleted"`
}
