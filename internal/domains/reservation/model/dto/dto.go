package dto

import (
	"github.com/google/uuid"

	"salas/internal/domains/reservation/model"
	"salas/shared"
	gDto "salas/shared/dto"
	gModel "salas/shared/model"
	"salas/shared/timezone"
	"salas/shared/types"
)

type CreateReservationRequest struct {
	RoomID           string `json:"room_id"           validate:"required,uuid4"`
	ReservationDate  string `json:"reservation_date"  validate:"required,dateonly"`
	StartTime        string `json:"start_time"        validate:"required,hhmm"`
	EndTime          string `json:"end_time"          validate:"required,hhmm"`
	ResponsibleName  string `json:"responsible_name"  validate:"required,min=3,max=100"`
	ResponsibleEmail string `json:"responsible_email" validate:"required,email"`
	Description      string `json:"description"       validate:"omitempty,max=255"`
	Headcount        *int   `json:"headcount"         validate:"omitempty,min=1"`
}

// Slot parses the requested date and times. The request must already have
// passed struct validation, so parse errors only surface on malformed input
// that slipped past the dateonly and hhmm tags.
func (c *CreateReservationRequest) Slot() (date types.DateOnly, start, end types.ClockTime, err error) {
	if date, err = types.ParseDateOnly(c.ReservationDate); err != nil {
		return date, start, end, err
	}

	if start, err = types.ParseClockTime(c.StartTime); err != nil {
		return date, start, end, err
	}

	end, err = types.ParseClockTime(c.EndTime)

	return date, start, end, err
}

func (c *CreateReservationRequest) ToModel(date types.DateOnly, start, end types.ClockTime) model.Reservation {
	return model.Reservation{
		ID:               uuid.NewString(),
		RoomID:           c.RoomID,
		ReservationDate:  date,
		StartTime:        start,
		EndTime:          end,
		ResponsibleName:  c.ResponsibleName,
		ResponsibleEmail: c.ResponsibleEmail,
		Description:      c.Description,
		Headcount:        c.Headcount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type ReservationResponse struct {
	ID               string          `json:"id"`
	RoomID           string          `json:"room_id"`
	ReservationDate  types.DateOnly  `json:"reservation_date"`
	StartTime        types.ClockTime `json:"start_time"`
	EndTime          types.ClockTime `json:"end_time"`
	ResponsibleName  string          `json:"responsible_name"`
	ResponsibleEmail string          `json:"responsible_email"`
	Description      string          `json:"description,omitempty"`
	Headcount        *int            `json:"headcount,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.ReservationDate = model.ReservationDate
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.ResponsibleName = model.ResponsibleName
	r.ResponsibleEmail = model.ResponsibleEmail
	r.Description = model.Description
	r.Headcount = model.Headcount
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
