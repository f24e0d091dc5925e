package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tulipkids/foundation-api/internal/api/handler/v1/request"
	"github.com/tulipkids/foundation-api/internal/api/handler/v1/response"
	"github.com/tulipkids/foundation-api/internal/domain"
)

type VolunteerService interface {
	Apply(ctx context.Context, application domain.VolunteerApplication) (domain.VolunteerApplication, error)
}

type VolunteerHandler struct {
	svc VolunteerService
}

func NewVolunteerHandler(svc VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{
		svc: svc,
	}
}

// HandleApply godoc
// @Summary      Submit a volunteer application
// @Tags         volunteers
// @Produce      json
// @Param        request   body      request.ApplyRequest true "request body"
// @Success      201      {object}   domain.VolunteerApplication
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /volunteer-applications [post]
func (h *VolunteerHandler) HandleApply(ctx *gin.Context) {
	req := request.ApplyRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	application := domain.VolunteerApplication{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Reason:           req.Reason,
		PositionInterest: req.PositionInterest,
		Source:           req.Source,
	}

	created, err := h.svc.Apply(ctx.Request.Context(), application)
	if err != nil {
		err = fmt.Errorf("v1.HandleApply -> h.svc.Apply -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}
