package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"salas/internal/domains/room/model"
	"salas/shared"
	gDto "salas/shared/dto"
	gModel "salas/shared/model"
	"salas/shared/timezone"
)

type CreateRoomRequest struct {
	Name      string   `json:"name"      validate:"required,min=1,max=50"`
	Capacity  int      `json:"capacity"  validate:"required,min=1,max=50"`
	Floor     int      `json:"floor"     validate:"required,min=1,max=20"`
	Resources []string `json:"resources" validate:"omitempty,dive,oneof=projector whiteboard videoconference tv phone"`
	Active    *bool    `json:"active"    validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Capacity:  c.Capacity,
		Floor:     c.Floor,
		Resources: pq.StringArray(c.Resources),
		Active:    active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type UpdateRoomRequest struct {
	Name      string         `db:"name"      json:"name"      validate:"omitempty,min=1,max=50"`
	Capacity  *int           `db:"capacity"  json:"capacity"  validate:"omitempty,min=1,max=50"`
	Floor     *int           `db:"floor"     json:"floor"     validate:"omitempty,min=1,max=20"`
	Resources pq.StringArray `db:"resources" json:"resources" validate:"omitempty,dive,oneof=projector whiteboard videoconference tv phone"`
	Active    *bool          `db:"active"    json:"active"    validate:"omitempty"`
}

type RoomResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Floor     int      `json:"floor"`
	Resources []string `json:"resources"`
	Active    bool     `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.Floor = model.Floor
	r.Resources = model.Resources
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
