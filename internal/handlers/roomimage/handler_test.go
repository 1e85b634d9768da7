package roomimage_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	roomImageMocks "frontdesk/internal/domains/roomimage/mocks"
	"frontdesk/internal/domains/roomimage/model/dto"
	"frontdesk/internal/handlers/roomimage"
	"frontdesk/shared/failure"
)

// newRouter mounts the image routes next to a /rooms subrouter the way the v1 group does.
func newRouter(svc *roomImageMocks.MockRoomImageService) http.Handler {
	handler := roomimage.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/rooms", func(r chi.Router) {
		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Room", chi.URLParam(r, "id"))
			w.WriteHeader(http.StatusOK)
		})
	})
	handler.Router(router)

	return router
}

func multipartBody(t *testing.T, withFile bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	require.NoError(t, writer.WriteField("description", "Balcony"))

	if withFile {
		part, err := writer.CreateFormFile("file", "suite.png")
		require.NoError(t, err)

		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandler_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		setupMock  func(m *roomImageMocks.MockRoomImageService)
		wantStatus int
		wantRoom   string
	}{
		{
			name:       "room route still resolves",
			method:     http.MethodGet,
			path:       "/rooms/room-1",
			setupMock:  func(_ *roomImageMocks.MockRoomImageService) {},
			wantStatus: http.StatusOK,
			wantRoom:   "room-1",
		},
		{
			name:   "list images of a room",
			method: http.MethodGet,
			path:   "/rooms/room-1/images",
			setupMock: func(m *roomImageMocks.MockRoomImageService) {
				m.EXPECT().GetByRoom(gomock.Any(), "room-1").Return(dto.GetRoomImagesResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete image of a room",
			method: http.MethodDelete,
			path:   "/rooms/room-1/images/image-1",
			setupMock: func(m *roomImageMocks.MockRoomImageService) {
				m.EXPECT().Delete(gomock.Any(), "room-1", "image-1").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete unknown image",
			method: http.MethodDelete,
			path:   "/rooms/room-1/images/image-9",
			setupMock: func(m *roomImageMocks.MockRoomImageService) {
				m.EXPECT().Delete(gomock.Any(), "room-1", "image-9").Return(failure.NotFound("room image not found"))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "list fails",
			method: http.MethodGet,
			path:   "/rooms/room-1/images",
			setupMock: func(m *roomImageMocks.MockRoomImageService) {
				m.EXPECT().GetByRoom(gomock.Any(), "room-1").Return(dto.GetRoomImagesResponse{}, errors.New("database error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := roomImageMocks.NewMockRoomImageService(ctrl)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRoom, rec.Header().Get("X-Room"))
		})
	}
}

func TestHandler_UploadRoomImage(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := roomImageMocks.NewMockRoomImageService(ctrl)
		svc.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		body, contentType := multipartBody(t, false)
		req := httptest.NewRequest(http.MethodPost, "/rooms/room-1/images", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := roomImageMocks.NewMockRoomImageService(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/rooms/room-1/images", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
