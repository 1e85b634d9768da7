package validator_test

import (
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guestRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
	Role   string `json:"role" validate:"oneof=admin reception"`
	Date   string `json:"date" validate:"omitempty,date"`
}

type uploadRequest struct {
	File multipart.FileHeader `validate:"mimetypes=image/jpeg image/png,maxfilesize=1"`
}

func validGuest() guestRequest {
	return guestRequest{
		Name:   "Budi Santoso",
		Email:  "budi@example.com",
		Rating: 4,
		Role:   "reception",
		Date:   "2024-06-01",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*guestRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(*guestRequest) {}},
		{name: "missing name", mutate: func(r *guestRequest) { r.Name = "" }, wantErr: "name is required"},
		{name: "invalid email", mutate: func(r *guestRequest) { r.Email = "budi" }, wantErr: "email must be a valid email address"},
		{name: "rating above range", mutate: func(r *guestRequest) { r.Rating = 6 }, wantErr: "rating must be less than or equal to 5"},
		{name: "rating below range", mutate: func(r *guestRequest) { r.Rating = 0 }, wantErr: "rating must be greater than or equal to 1"},
		{name: "unknown role", mutate: func(r *guestRequest) { r.Role = "manager" }, wantErr: "role must be one of admin reception"},
		{name: "malformed date", mutate: func(r *guestRequest) { r.Date = "01-06-2024" }, wantErr: "date must be a date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validGuest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.True(t, failure.IsKind(err, failure.KindInvalidInput))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{name: "uuid", field: "550e8400-e29b-41d4-a716-446655440000", tag: "uuid"},
		{name: "not a uuid", field: "room-1", tag: "uuid", wantErr: true},
		{name: "date", field: "2024-02-29", tag: "date"},
		{name: "impossible date", field: "2023-02-29", tag: "date", wantErr: true},
		{name: "empty date is allowed", field: "", tag: "date"},
		{name: "required", field: "", tag: "required", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		wantErr  bool
	}{
		{
			name:     "valid body",
			jsonBody: `{"name":"Budi","email":"budi@example.com","rating":5,"role":"admin"}`,
		},
		{
			name:     "validation failure",
			jsonBody: `{"name":"Budi","rating":9,"role":"admin"}`,
			wantErr:  true,
		},
		{
			name:     "malformed body",
			jsonBody: `{"name":"Budi",`,
			wantErr:  true,
		},
		{
			name:     "empty object",
			jsonBody: `{}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data guestRequest

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, failure.KindInvalidInput))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Budi", data.Name)
		})
	}
}

func TestFileValidation(t *testing.T) {
	header := func(contentType string, size int64) multipart.FileHeader {
		return multipart.FileHeader{
			Filename: "lobby.jpg",
			Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
			Size:     size,
		}
	}

	tests := []struct {
		name    string
		file    multipart.FileHeader
		wantErr bool
	}{
		{name: "jpeg within size", file: header("image/jpeg", 512*1024)},
		{name: "png within size", file: header("image/png", 1024)},
		{name: "pdf rejected", file: header("application/pdf", 1024), wantErr: true},
		{name: "too large", file: header("image/jpeg", 2*1024*1024), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&uploadRequest{File: tt.file})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
