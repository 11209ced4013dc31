package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salas/internal/domains/reservation/model"
	"salas/internal/domains/reservation/model/dto"
	"salas/shared/validator"
)

func intPtr(v int) *int {
	return &v
}

func validRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		RoomID:           "0f1d5ed7-3c4a-4b83-b2fb-0e1cbd7c2ad9",
		ReservationDate:  "2026-03-05",
		StartTime:        "09:00",
		EndTime:          "10:00",
		ResponsibleName:  "Ana Souza",
		ResponsibleEmail: "ana@example.com",
		Description:      "weekly sync",
		Headcount:        intPtr(4),
	}
}

func TestCreateReservationRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *dto.CreateReservationRequest)
		wantErr bool
	}{
		{
			name:   "valid request",
			mutate: func(req *dto.CreateReservationRequest) {},
		},
		{
			name: "invalid room id",
			mutate: func(req *dto.CreateReservationRequest) {
				req.RoomID = "not-a-uuid"
			},
			wantErr: true,
		},
		{
			name: "malformed date",
			mutate: func(req *dto.CreateReservationRequest) {
				req.ReservationDate = "05/03/2026"
			},
			wantErr: true,
		},
		{
			name: "malformed start time",
			mutate: func(req *dto.CreateReservationRequest) {
				req.StartTime = "9am"
			},
			wantErr: true,
		},
		{
			name: "responsible name too short",
			mutate: func(req *dto.CreateReservationRequest) {
				req.ResponsibleName = "Al"
			},
			wantErr: true,
		},
		{
			name: "invalid email",
			mutate: func(req *dto.CreateReservationRequest) {
				req.ResponsibleEmail = "not-an-email"
			},
			wantErr: true,
		},
		{
			name: "headcount below one",
			mutate: func(req *dto.CreateReservationRequest) {
				req.Headcount = intPtr(0)
			},
			wantErr: true,
		},
		{
			name: "no description or headcount",
			mutate: func(req *dto.CreateReservationRequest) {
				req.Description = ""
				req.Headcount = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateReservationRequest_Slot(t *testing.T) {
	req := validRequest()

	date, start, end, err := req.Slot()
	require.NoError(t, err)

	assert.Equal(t, "2026-03-05", date.String())
	assert.Equal(t, "09:00", start.String())
	assert.Equal(t, "10:00", end.String())
}

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := validRequest()

	date, start, end, err := req.Slot()
	require.NoError(t, err)

	reservation := req.ToModel(date, start, end)

	assert.NotEmpty(t, reservation.ID, "expected ID to be generated")
	assert.Equal(t, req.RoomID, reservation.RoomID)
	assert.Equal(t, date, reservation.ReservationDate)
	assert.Equal(t, start, reservation.StartTime)
	assert.Equal(t, end, reservation.EndTime)
	assert.Equal(t, req.ResponsibleName, reservation.ResponsibleName)
	assert.Equal(t, req.ResponsibleEmail, reservation.ResponsibleEmail)
	assert.Equal(t, req.Description, reservation.Description)
	assert.Equal(t, req.Headcount, reservation.Headcount)
	assert.False(t, reservation.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestReservationResponse_FromModel(t *testing.T) {
	req := validRequest()

	date, start, end, err := req.Slot()
	require.NoError(t, err)

	reservation := req.ToModel(date, start, end)

	var response dto.ReservationResponse
	response.FromModel(reservation)

	assert.Equal(t, reservation.ID, response.ID)
	assert.Equal(t, reservation.RoomID, response.RoomID)
	assert.Equal(t, reservation.ReservationDate, response.ReservationDate)
	assert.Equal(t, reservation.StartTime, response.StartTime)
	assert.Equal(t, reservation.EndTime, response.EndTime)
	assert.Equal(t, reservation.ResponsibleName, response.ResponsibleName)
	assert.Equal(t, reservation.ResponsibleEmail, response.ResponsibleEmail)
}

func TestGetReservationsResponse_FromModels(t *testing.T) {
	req := validRequest()

	date, start, end, err := req.Slot()
	require.NoError(t, err)

	reservations := []model.Reservation{
		req.ToModel(date, start, end),
		req.ToModel(date, start, end),
	}

	var response dto.GetReservationsResponse
	response.FromModels(reservations, 12, 10)

	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Reservations, len(reservations))
}
