package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingRequest struct {
	GuestID      int64  `json:"guest_id"       validate:"required,gt=0"`
	RoomID       int64  `json:"room_id"        validate:"required,gt=0"`
	CheckInDate  string `json:"check_in_date"  validate:"required,dateonly"`
	CheckOutDate string `json:"check_out_date" validate:"required,dateonly,nefield=CheckInDate"`
}

type staffRequest struct {
	FirstName string `json:"first_name" validate:"required,notblank,max=50"`
	Email     string `json:"email"      validate:"omitempty,email"`
	Shift     string `json:"shift"      validate:"omitempty,oneof=Morning Evening Night"`
}

type imageRequest struct {
	Image *multipart.FileHeader `validate:"required,mimetypes=image/png image/jpeg,maxfilesize=2"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name: "valid booking",
			body: `{"guest_id":1,"room_id":2,"check_in_date":"2025-05-01","check_out_date":"2025-05-03"}`,
		},
		{
			name:    "missing guest",
			body:    `{"room_id":2,"check_in_date":"2025-05-01","check_out_date":"2025-05-03"}`,
			message: "guest_id is required",
		},
		{
			name:    "bad date",
			body:    `{"guest_id":1,"room_id":2,"check_in_date":"01/05/2025","check_out_date":"2025-05-03"}`,
			message: "check_in_date must be a valid date (YYYY-MM-DD)",
		},
		{
			name:    "same day stay",
			body:    `{"guest_id":1,"room_id":2,"check_in_date":"2025-05-01","check_out_date":"2025-05-01"}`,
			message: "check_out_date must differ from CheckInDate",
		},
		{
			name:    "malformed json",
			body:    `{"guest_id":`,
			message: "failed to decode request body: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req bookingRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.message == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidateStruct(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		err := validator.ValidateStruct(&staffRequest{FirstName: "   "})

		assert.EqualError(t, err, "first_name is required")
	})

	t.Run("shift outside set", func(t *testing.T) {
		err := validator.ValidateStruct(&staffRequest{FirstName: "Ana", Shift: "Afternoon"})

		assert.EqualError(t, err, "shift must be one of Morning Evening Night")
	})

	t.Run("optional email", func(t *testing.T) {
		assert.NoError(t, validator.ValidateStruct(&staffRequest{FirstName: "Ana"}))
		assert.EqualError(t, validator.ValidateStruct(&staffRequest{FirstName: "Ana", Email: "nope"}), "email must be a valid email address")
	})
}

func fileHeader(contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "room.png",
		Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
		Size:     size,
	}
}

func TestValidateStruct_Upload(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&imageRequest{Image: fileHeader("image/png", 1024)}))
	assert.EqualError(t,
		validator.ValidateStruct(&imageRequest{Image: fileHeader("application/pdf", 1024)}),
		"Image must be one of image/png image/jpeg")
	assert.EqualError(t,
		validator.ValidateStruct(&imageRequest{Image: fileHeader("image/jpeg", 3*1024*1024)}),
		"Image must not exceed 2 MB")
	assert.EqualError(t, validator.ValidateStruct(&imageRequest{}), "Image is required")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-02-28", "dateonly"))
	assert.Error(t, validator.ValidateVar("2025-02-30", "dateonly"))
	assert.EqualError(t, validator.ValidateVar(0, "gt=0"), " must be greater than 0")
}
