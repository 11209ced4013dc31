package model

import (
	"github.com/lib/pq"

	"salas/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID        = "id"
	FieldName      = "name"
	FieldCapacity  = "capacity"
	FieldFloor     = "floor"
	FieldResources = "resources"
	FieldActive    = "active"
)

// Resource tags a room can advertise.
const (
	ResourceProjector       = "projector"
	ResourceWhiteboard      = "whiteboard"
	ResourceVideoconference = "videoconference"
	ResourceTV              = "tv"
	ResourcePhone           = "phone"
)

type Room struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Capacity  int            `db:"capacity"`
	Floor     int            `db:"floor"`
	Resources pq.StringArray `db:"resources"`
	Active    bool           `db:"active"`
	model.Metadata
}
