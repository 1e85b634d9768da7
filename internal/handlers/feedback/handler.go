package feedback

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/feedback/model"
	"frontdesk/internal/domains/feedback/model/dto"
	"frontdesk/internal/domains/feedback/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamType    = "type"
	queryParamGuestID = "guest_id"
)

type Handler struct {
	service service.Feedback
	otel    otel.Otel
}

func New(service service.Feedback, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/feedback", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFeedback)
		routerGroup.Get("/", handler.GetFeedback)
		routerGroup.Get("/{id}", handler.GetFeedbackByID)
	})
}

// @Summary Submit guest feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body dto.CreateFeedbackRequest true "Create Feedback Request"
// @Success 201 {object} response.Data[dto.FeedbackResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/feedback [post]
// @Security BearerAuth
func (handler *Handler) CreateFeedback(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFeedback")
	defer scope.End()

	req := dto.CreateFeedbackRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	feedback, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create feedback")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, feedback)
}

// @Summary Get all feedback
// @Tags Feedback
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "checkout or general"
// @Param guest_id query string false "Guest ID"
// @Success 200 {object} response.Data[dto.GetFeedbackResponse]
// @Failure 500 {object} response.Error
// @Router /v1/feedback [get]
// @Security BearerAuth
func (handler *Handler) GetFeedback(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeedback")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, false)
	queryParams.Sanitize(model.FieldCreatedAt, model.FieldCreatedAt, model.FieldOverallRating)

	query := request.URL.Query()
	filter := dto.ListFilter(query.Get(queryParamType), query.Get(queryParamGuestID))

	feedback, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get feedback")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, feedback)
}

// @Summary Get feedback by ID
// @Tags Feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} response.Data[dto.FeedbackResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/feedback/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetFeedbackByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeedbackByID")
	defer scope.End()

	feedback, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, feedback)
}
