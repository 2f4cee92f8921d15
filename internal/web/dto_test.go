package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     signupRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: signupRequest{
				Telegram:     "@ivan_padel",
				Name:         "Иван",
				Surname:      "Петров",
				Level:        3.5,
				Availability: "будни после 18",
			},
		},
		{
			name: "handle without at",
			req: signupRequest{
				Telegram:     "ivan_padel",
				Name:         "Иван",
				Surname:      "Петров",
				Availability: "будни",
			},
			wantErr: true,
		},
		{
			name: "handle with spaces",
			req: signupRequest{
				Telegram:     "@ivan padel",
				Name:         "Иван",
				Surname:      "Петров",
				Availability: "будни",
			},
			wantErr: true,
		},
		{
			name: "level out of range",
			req: signupRequest{
				Telegram:     "@ivan_padel",
				Name:         "Иван",
				Surname:      "Петров",
				Level:        8,
				Availability: "будни",
			},
			wantErr: true,
		},
		{
			name:    "missing everything",
			req:     signupRequest{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSignupRequestValidateCollectsAllErrors(t *testing.T) {
	err := signupRequest{Level: -1}.Validate()
	assert.Error(t, err)
	assert.Len(t, unwrap(err), 5)
}

func TestCreateGameRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     createGameRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: createGameRequest{
				StartsAt: time.Date(2024, 4, 3, 18, 0, 0, 0, time.UTC),
				MinLevel: 2.5,
				MaxLevel: 4.0,
			},
		},
		{
			name:    "zero time",
			req:     createGameRequest{MinLevel: 2.5, MaxLevel: 4.0},
			wantErr: true,
		},
		{
			name: "negative level",
			req: createGameRequest{
				StartsAt: time.Date(2024, 4, 3, 18, 0, 0, 0, time.UTC),
				MinLevel: -1,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCreateTrainingRequestValidate(t *testing.T) {
	valid := createTrainingRequest{
		StartsAt:        time.Date(2024, 4, 3, 18, 0, 0, 0, time.UTC),
		MaxParticipants: 4,
	}
	assert.NoError(t, valid.Validate())

	assert.Error(t, createTrainingRequest{MaxParticipants: 4}.Validate())
	assert.Error(t, createTrainingRequest{StartsAt: valid.StartsAt}.Validate())
}

func TestScheduleRequestValidate(t *testing.T) {
	assert.NoError(t, scheduleRequest{From: "2024-04-01"}.Validate())
	assert.Error(t, scheduleRequest{From: "01.04.2024"}.Validate())
	assert.Error(t, scheduleRequest{}.Validate())

	from := scheduleRequest{From: "2024-04-01"}.FromDate()
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), from)
}
