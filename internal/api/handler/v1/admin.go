package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tulipkids/foundation-api/internal/api/handler/v1/request"
	"github.com/tulipkids/foundation-api/internal/api/handler/v1/response"
	"github.com/tulipkids/foundation-api/internal/domain"
	"github.com/tulipkids/foundation-api/internal/service"
)

type AdminRegistrationService interface {
	GetRegistrations(ctx context.Context) ([]domain.Registration, error)
	UpdatePaymentStatus(ctx context.Context, id uint, status string) error
	Stats(ctx context.Context) (domain.RegistrationStats, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

type AdminDonationService interface {
	GetDonations(ctx context.Context) ([]domain.Donation, error)
}

type AdminVolunteerService interface {
	GetApplications(ctx context.Context, filter domain.ApplicationFilter) ([]domain.VolunteerApplication, error)
	UpdateApplication(ctx context.Context, id uint, status, notes string) (domain.VolunteerApplication, error)
}

// AdminHandler serves the dashboard behind the JWT middleware.
type AdminHandler struct {
	regSvc AdminRegistrationService
	donSvc AdminDonationService
	volSvc AdminVolunteerService
}

func NewAdminHandler(regSvc AdminRegistrationService, donSvc AdminDonationService, volSvc AdminVolunteerService) *AdminHandler {
	return &AdminHandler{
		regSvc: regSvc,
		donSvc: donSvc,
		volSvc: volSvc,
	}
}

// HandleGetRegistrations godoc
// @Summary      List registrations, newest first
// @Tags         admin
// @Produce      json
// @Success      200      {array}    domain.Registration
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/registrations [get]
func (h *AdminHandler) HandleGetRegistrations(ctx *gin.Context) {
	registrations, err := h.regSvc.GetRegistrations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetRegistrations -> h.regSvc.GetRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, registrations)
}

// HandleGetRegistrationStats godoc
// @Summary      Dashboard summary totals
// @Tags         admin
// @Produce      json
// @Success      200      {object}   domain.RegistrationStats
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/registrations/stats [get]
func (h *AdminHandler) HandleGetRegistrationStats(ctx *gin.Context) {
	stats, err := h.regSvc.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetRegistrationStats -> h.regSvc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleExportRegistrations godoc
// @Summary      Download all registrations as CSV
// @Tags         admin
// @Produce      text/csv
// @Success      200      {string}   string
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/registrations/export [get]
func (h *AdminHandler) HandleExportRegistrations(ctx *gin.Context) {
	data, err := h.regSvc.ExportCSV(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleExportRegistrations -> h.regSvc.ExportCSV -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="registrations.csv"`)
	ctx.Data(http.StatusOK, "text/csv", data)
}

// HandleUpdatePaymentStatus godoc
// @Summary      Toggle a registration's payment status
// @Tags         admin
// @Produce      json
// @Param        registrationID   path      int true "registration ID"
// @Param        request   body      request.UpdatePaymentStatusRequest true "request body"
// @Success      200      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/registrations/{registrationID}/payment-status [put]
func (h *AdminHandler) HandleUpdatePaymentStatus(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("registrationID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid registration ID")))

		return
	}

	req := request.UpdatePaymentStatusRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.regSvc.UpdatePaymentStatus(ctx.Request.Context(), uint(id), req.Status); err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("registration", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdatePaymentStatus -> h.regSvc.UpdatePaymentStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// HandleGetDonations godoc
// @Summary      List donations, newest first
// @Tags         admin
// @Produce      json
// @Success      200      {array}    domain.Donation
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/donations [get]
func (h *AdminHandler) HandleGetDonations(ctx *gin.Context) {
	donations, err := h.donSvc.GetDonations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDonations -> h.donSvc.GetDonations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, donations)
}

// HandleGetApplications godoc
// @Summary      List volunteer applications
// @Tags         admin
// @Produce      json
// @Param        status   query      string false "status filter"
// @Param        search   query      string false "name or email search"
// @Success      200      {array}    domain.VolunteerApplication
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/volunteer-applications [get]
func (h *AdminHandler) HandleGetApplications(ctx *gin.Context) {
	filter := domain.ApplicationFilter{
		Status: ctx.Query("status"),
		Search: ctx.Query("search"),
	}

	applications, err := h.volSvc.GetApplications(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetApplications -> h.volSvc.GetApplications -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// HandleUpdateApplication godoc
// @Summary      Update a volunteer application's status and notes
// @Tags         admin
// @Produce      json
// @Param        applicationID   path      int true "application ID"
// @Param        request   body      request.UpdateApplicationRequest true "request body"
// @Success      200      {object}   domain.VolunteerApplication
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/volunteer-applications/{applicationID} [put]
func (h *AdminHandler) HandleUpdateApplication(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("applicationID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid application ID")))

		return
	}

	req := request.UpdateApplicationRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.volSvc.UpdateApplication(ctx.Request.Context(), uint(id), req.Status, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("application", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateApplication -> h.volSvc.UpdateApplication -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}
