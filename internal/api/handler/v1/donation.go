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

type DonationService interface {
	Donate(ctx context.Context, donation domain.Donation, card payment.CardInput) (domain.DonationReceipt, error)
}

type DonationHandler struct {
	svc DonationService
}

func NewDonationHandler(svc DonationService) *DonationHandler {
	return &DonationHandler{
		svc: svc,
	}
}

// HandleDonate godoc
// @Summary      Make a donation
// @Tags         donations
// @Produce      json
// @Param        request   body      request.DonateRequest true "request body"
// @Success      201      {object}   domain.DonationReceipt
// @Failure      400      {object}   response.Err
// @Failure      402      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /donations [post]
func (h *DonationHandler) HandleDonate(ctx *gin.Context) {
	req := request.DonateRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	donation := domain.Donation{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Amount:       req.Amount,
		Designation:  req.Designation,
		IsAnonymous:  req.IsAnonymous,
		DonationType: req.DonationType,
	}

	card := payment.CardInput{
		PaymentMethodID: req.PaymentMethodID,
		Name:            req.FirstName + " " + req.LastName,
		Email:           req.Email,
	}

	receipt, err := h.svc.Donate(ctx.Request.Context(), donation, card)
	if err != nil {
		if errors.Is(err, service.ErrPaymentConfirm) {
			response.RenderErr(ctx, response.ErrPaymentRequired(service.ErrPaymentConfirm))

			return
		}

		err = fmt.Errorf("v1.HandleDonate -> h.svc.Donate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, receipt)
}
