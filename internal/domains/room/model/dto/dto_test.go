package dto_test

import (
	"testing"

	"portal/internal/domains/room/model"
	"portal/internal/domains/room/model/dto"
	gModel "portal/shared/model"
	"portal/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateRoomRequest_ToModel(t *testing.T) {
	req := dto.CreateRoomRequest{
		Name: "Study Room A",
	}

	userID := "staff-1"
	room := req.ToModel(userID)

	assert.NotEmpty(t, room.ID, "expected ID to be generated")
	assert.Equal(t, req.Name, room.Name)
	assert.Equal(t, 1, room.Floor, "expected default floor")
	assert.Equal(t, 4, room.Capacity, "expected default capacity")
	assert.True(t, room.IsAvailable, "new rooms start available")
	assert.Equal(t, userID, room.CreatedBy)
	assert.Equal(t, userID, room.ModifiedBy)
	assert.False(t, room.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateRoomRequest_ToModel_ExplicitValues(t *testing.T) {
	floor := 3
	capacity := 12
	req := dto.CreateRoomRequest{
		Name:     "Seminar Room",
		Floor:    &floor,
		Capacity: &capacity,
	}

	room := req.ToModel("staff-1")

	assert.Equal(t, 3, room.Floor)
	assert.Equal(t, 12, room.Capacity)
}

func TestRoomResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	roomModel := model.StudyRoom{
		ID:          "test-id",
		Name:        "Study Room A",
		Floor:       2,
		Capacity:    6,
		IsAvailable: false,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "staff-1",
			ModifiedBy: "staff-1",
		},
	}

	var response dto.RoomResponse
	response.FromModel(roomModel)

	assert.Equal(t, roomModel.ID, response.ID)
	assert.Equal(t, roomModel.Name, response.Name)
	assert.Equal(t, roomModel.Floor, response.Floor)
	assert.Equal(t, roomModel.Capacity, response.Capacity)
	assert.False(t, response.IsAvailable)
	assert.Equal(t, roomModel.CreatedBy, response.CreatedBy)
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	rooms := []model.StudyRoom{
		{
			ID:          "test-id-1",
			Name:        "Room One",
			IsAvailable: true,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "staff-1",
				ModifiedBy: "staff-1",
			},
		},
		{
			ID:          "test-id-2",
			Name:        "Room Two",
			IsAvailable: false,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "staff-1",
				ModifiedBy: "staff-1",
			},
		},
	}

	var response dto.GetRoomsResponse
	response.FromModels(rooms, 12, 10)

	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Rooms, len(rooms))

	for i, room := range response.Rooms {
		assert.Equal(t, rooms[i].ID, room.ID)
		assert.Equal(t, rooms[i].Name, room.Name)
	}
}

func TestGetRoomsResponse_FromModels_EmptyList(t *testing.T) {
	var rooms []model.StudyRoom

	var response dto.GetRoomsResponse
	response.FromModels(rooms, 0, 10)

	assert.Equal(t, 0, response.TotalData)
	assert.Equal(t, 1, response.TotalPage)
	assert.Len(t, response.Rooms, 0)
}
