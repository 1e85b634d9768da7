package roomimage

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/roomimage/model/dto"
	"frontdesk/internal/domains/roomimage/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomImage
	otel    otel.Otel
}

func New(service service.RoomImage, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms/{id}/images", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRoomImages)
		routerGroup.Post("/", handler.UploadRoomImage)
		routerGroup.Delete("/{imageID}", handler.DeleteRoomImage)
	})
}

// GetRoomImages lists the photos of one room. Public.
// @Summary Get room images
// @Tags Room Images
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.GetRoomImagesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/images [get]
func (handler *Handler) GetRoomImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomImages")
	defer scope.End()

	images, err := handler.service.GetByRoom(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room images")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, images)
}

// @Summary Upload a room image
// @Tags Room Images
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param file formData file true "Image file"
// @Param description formData string false "Description"
// @Success 201 {object} response.Data[dto.ImageResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) UploadRoomImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadRoomImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:       fileHeader,
		ImageFile:   file,
		Description: r.FormValue(constant.FormDescription),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	roomID := chi.URLParam(r, constant.RequestParamID)

	image, err := handler.service.Upload(ctx, roomID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", roomID).Msg("failed to upload room image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, image)
}

// @Summary Delete a room image
// @Tags Room Images
// @Produce json
// @Param id path string true "Room ID"
// @Param imageID path string true "Image ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/images/{imageID} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomImage")
	defer scope.End()

	err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamImageID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room image")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room image deleted successfully")
}
