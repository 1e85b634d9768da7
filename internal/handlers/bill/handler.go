package bill

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/bill/model"
	"frontdesk/internal/domains/bill/model/dto"
	"frontdesk/internal/domains/bill/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bill
	otel    otel.Otel
}

func New(service service.Bill, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bills", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBill)
		routerGroup.Get("/", handler.GetBills)
		routerGroup.Get("/booking/{bookingID}", handler.GetBillsByBooking)
		routerGroup.Get("/guest/{guestID}", handler.GetBillsByGuest)
		routerGroup.Get("/{id}", handler.GetBillByID)
		routerGroup.Patch("/{id}", handler.UpdateCharges)
		routerGroup.Put("/{id}/payment", handler.UpdatePaymentStatus)
		routerGroup.Post("/{id}/items", handler.AddItem)
		routerGroup.Put("/{id}/items/{itemID}", handler.UpdateItem)
		routerGroup.Delete("/{id}/items/{itemID}", handler.DeleteItem)
	})
}

// CreateBill opens a pending bill for a booking.
// @Summary Create a bill
// @Tags Bill
// @Accept json
// @Produce json
// @Param request body dto.CreateBillRequest true "Create Bill Request"
// @Success 201 {object} response.Data[dto.BillResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bills [post]
// @Security BearerAuth
func (handler *Handler) CreateBill(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBill")
	defer scope.End()

	req := dto.CreateBillRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	bill, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create bill")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bill " + bill.BillNumber + " created")

	response.WithJSON(writer, http.StatusCreated, bill)
}

// @Summary Get all bills
// @Tags Bill
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param payment_status query string false "pending, paid or partial"
// @Success 200 {object} response.Data[dto.GetBillsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bills [get]
// @Security BearerAuth
func (handler *Handler) GetBills(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBills")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, false)
	queryParams.Sanitize(model.FieldCreatedAt, model.FieldCreatedAt, model.FieldTotalAmount, model.FieldBillNumber)

	filter := dto.ListFilter(request.URL.Query().Get(constant.RequestParamPaymentStatus))

	bills, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bills")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bills)
}

// @Summary Get the bills of a booking
// @Tags Bill
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} response.Data[[]dto.BillResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bills/booking/{bookingID} [get]
// @Security BearerAuth
func (handler *Handler) GetBillsByBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillsByBooking")
	defer scope.End()

	bills, err := handler.service.GetByBooking(ctx, chi.URLParam(request, constant.RequestParamBookingID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bills)
}

// @Summary Get the bills of a guest
// @Tags Bill
// @Produce json
// @Param guestID path string true "Guest ID"
// @Success 200 {object} response.Data[[]dto.BillResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bills/guest/{guestID} [get]
// @Security BearerAuth
func (handler *Handler) GetBillsByGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillsByGuest")
	defer scope.End()

	bills, err := handler.service.GetByGuest(ctx, chi.URLParam(request, constant.RequestParamGuestID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bills)
}

// GetBillByID returns the bill with its items.
// @Summary Get a bill by ID
// @Tags Bill
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} response.Data[dto.BillResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bills/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBillByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillByID")
	defer scope.End()

	bill, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bill")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bill)
}

// @Summary Update bill charges
// @Description Changes any of the four charge fields and recomputes the total.
// @Tags Bill
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body dto.UpdateChargesRequest true "Update Charges Request"
// @Success 200 {object} response.Data[dto.BillResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bills/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCharges(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCharges")
	defer scope.End()

	req := dto.UpdateChargesRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	bill, err := handler.service.UpdateCharges(ctx, req, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update bill charges")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bill)
}

// @Summary Update payment status
// @Tags Bill
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body dto.UpdatePaymentRequest true "Update Payment Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bills/{id}/payment [put]
// @Security BearerAuth
func (handler *Handler) UpdatePaymentStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePaymentStatus")
	defer scope.End()

	req := dto.UpdatePaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdatePaymentStatus(ctx, req, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment status")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Payment status updated successfully")
}

// @Summary Add a bill item
// @Tags Bill
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} response.Data[dto.BillResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bills/{id}/items [post]
// @Security BearerAuth
func (handler *Handler) AddItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddItem")
	defer scope.End()

	req := dto.CreateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	bill, err := handler.service.AddItem(ctx, req, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add bill item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, bill)
}

// @Summary Update a bill item
// @Tags Bill
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param itemID path string true "Item ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} response.Data[dto.BillResponse]
// @Failure 400 {object} response.Error "Item belongs to another bill"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bills/{id}/items/{itemID} [put]
// @Security BearerAuth
func (handler *Handler) UpdateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	req := dto.UpdateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	bill, err := handler.service.UpdateItem(ctx, req, chi.URLParam(request, constant.RequestParamID), chi.URLParam(request, constant.RequestParamItemID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update bill item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bill)
}

// @Summary Delete a bill item
// @Tags Bill
// @Produce json
// @Param id path string true "Bill ID"
// @Param itemID path string true "Item ID"
// @Success 200 {object} response.Data[dto.BillResponse]
// @Failure 400 {object} response.Error "Item belongs to another bill"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bills/{id}/items/{itemID} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	bill, err := handler.service.DeleteItem(ctx, chi.URLParam(request, constant.RequestParamID), chi.URLParam(request, constant.RequestParamItemID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete bill item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bill)
}
