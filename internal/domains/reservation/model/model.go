package model

import (
	"salas/shared/model"
	"salas/shared/types"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID               = "id"
	FieldRoomID           = "room_id"
	FieldReservationDate  = "reservation_date"
	FieldStartTime        = "start_time"
	FieldEndTime          = "end_time"
	FieldResponsibleName  = "responsible_name"
	FieldResponsibleEmail = "responsible_email"
	FieldDescription      = "description"
	FieldHeadcount        = "headcount"
)

type Reservation struct {
	ID               string          `db:"id"`
	RoomID           string          `db:"room_id"`
	ReservationDate  types.DateOnly  `db:"reservation_date"`
	StartTime        types.ClockTime `db:"start_time"`
	EndTime          types.ClockTime `db:"end_time"`
	ResponsibleName  string          `db:"responsible_name"`
	ResponsibleEmail string          `db:"responsible_email"`
	Description      string          `db:"description"`
	Headcount        *int            `db:"headcount"`
	model.Metadata
}
