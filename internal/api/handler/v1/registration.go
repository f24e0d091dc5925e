package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tulipkids/foundation-api/internal/api/handler/v1/request"
	"github.com/tulipkids/foundation-api/internal/api/handler/v1/response"
	"github.com/tulipkids/foundation-api/internal/domain"
	"github.com/tulipkids/foundation-api/internal/payment"
	"github.com/tulipkids/foundation-api/internal/service"
)

type RegistrationService interface {
	Submit(ctx context.Context, draft *domain.RegistrationDraft, card payment.CardInput) (domain.Confirmation, error)
}

type RegistrationHandler struct {
	svc RegistrationService
}

func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		svc: svc,
	}
}

// HandleQuote godoc
// @Summary      Preview price and family category for a participant count
// @Tags         registrations
// @Produce      json
// @Param        request   body      request.QuoteRequest true "request body"
// @Success      200      {object}   response.QuoteResponse
// @Failure      400      {object}   response.Err
// @Router       /registrations/quote [post]
func (h *RegistrationHandler) HandleQuote(ctx *gin.Context) {
	req := request.QuoteRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	draft := domain.RegistrationDraft{}
	draft.SetCounts(req.AdultCount, req.KidsCount)

	ctx.JSON(http.StatusOK, response.QuoteResponse{
		FamilyCategory: draft.FamilyCategory,
		TotalAmount:    draft.TotalAmount,
		ShirtSizes:     draft.ShirtSizes,
	})
}

// HandleSubmit godoc
// @Summary      Submit a registration and charge the card
// @Tags         registrations
// @Produce      json
// @Param        request   body      request.SubmitRegistrationRequest true "request body"
// @Success      201      {object}   domain.Confirmation
// @Failure      400      {object}   response.Err
// @Failure      402      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /registrations [post]
func (h *RegistrationHandler) HandleSubmit(ctx *gin.Context) {
	req := request.SubmitRegistrationRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	draft := domain.RegistrationDraft{
		Contact: domain.Contact{
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			AddressLine: req.AddressLine,
			City:        req.City,
			PostalCode:  req.PostalCode,
		},
		IsTulipParent: req.IsTulipParent,
	}
	draft.SetCounts(req.AdultCount, req.KidsCount)
	for i, size := range req.ShirtSizes {
		draft.SetShirtSize(i, size)
	}

	card := payment.CardInput{
		PaymentMethodID: req.PaymentMethodID,
		Name:            req.Name,
		Email:           req.Email,
	}

	confirmation, err := h.svc.Submit(ctx.Request.Context(), &draft, card)
	if err != nil {
		if errors.Is(err, service.ErrPaymentConfirm) {
			response.RenderErr(ctx, response.ErrPaymentRequired(service.ErrPaymentConfirm))

			return
		}

		err = fmt.Errorf("v1.HandleSubmit -> h.svc.Submit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, confirmation)
}
