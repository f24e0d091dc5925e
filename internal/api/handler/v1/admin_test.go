package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tulipkids/foundation-api/internal/domain"
	"github.com/tulipkids/foundation-api/internal/service"
)

type stubAdminRegistrationService struct {
	registrations []domain.Registration
	stats         domain.RegistrationStats
	csv           []byte
	updateErr     error
}

func (s *stubAdminRegistrationService) GetRegistrations(_ context.Context) ([]domain.Registration, error) {
	return s.registrations, nil
}

func (s *stubAdminRegistrationService) UpdatePaymentStatus(_ context.Context, _ uint, _ string) error {
	return s.updateErr
}

func (s *stubAdminRegistrationService) Stats(_ context.Context) (domain.RegistrationStats, error) {
	return s.stats, nil
}

func (s *stubAdminRegistrationService) ExportCSV(_ context.Context) ([]byte, error) {
	return s.csv, nil
}

type stubAdminDonationService struct {
	donations []domain.Donation
}

func (s *stubAdminDonationService) GetDonations(_ context.Context) ([]domain.Donation, error) {
	return s.donations, nil
}

type stubAdminVolunteerService struct {
	applications []domain.VolunteerApplication
	updated      domain.VolunteerApplication
	updateErr    error

	gotFilter domain.ApplicationFilter
}

func (s *stubAdminVolunteerService) GetApplications(_ context.Context, filter domain.ApplicationFilter) ([]domain.VolunteerApplication, error) {
	s.gotFilter = filter

	return s.applications, nil
}

func (s *stubAdminVolunteerService) UpdateApplication(_ context.Context, _ uint, _, _ string) (domain.VolunteerApplication, error) {
	return s.updated, s.updateErr
}

func newAdminRouter(regSvc AdminRegistrationService, donSvc AdminDonationService, volSvc AdminVolunteerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewAdminHandler(regSvc, donSvc, volSvc)
	router.GET("/admin/registrations", h.HandleGetRegistrations)
	router.GET("/admin/registrations/stats", h.HandleGetRegistrationStats)
	router.GET("/admin/registrations/export", h.HandleExportRegistrations)
	router.PUT("/admin/registrations/:registrationID/payment-status", h.HandleUpdatePaymentStatus)
	router.GET("/admin/donations", h.HandleGetDonations)
	router.GET("/admin/volunteer-applications", h.HandleGetApplications)
	router.PUT("/admin/volunteer-applications/:applicationID", h.HandleUpdateApplication)

	return router
}

func TestHandleGetRegistrationStats(t *testing.T) {
	regSvc := &stubAdminRegistrationService{
		stats: domain.RegistrationStats{TotalFamilies: 2, TotalAdults: 3, TotalKids: 2, TotalRevenue: 100},
	}
	router := newAdminRouter(regSvc, &stubAdminDonationService{}, &stubAdminVolunteerService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/registrations/stats", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_families":2,"total_adults":3,"total_kids":2,"total_revenue":100}`, w.Body.String())
}

func TestHandleExportRegistrations(t *testing.T) {
	regSvc := &stubAdminRegistrationService{csv: []byte("Name,Email\nJamie,jamie@example.com\n")}
	router := newAdminRouter(regSvc, &stubAdminDonationService{}, &stubAdminVolunteerService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/registrations/export", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "registrations.csv")
	assert.Contains(t, w.Body.String(), "jamie@example.com")
}

func TestHandleUpdatePaymentStatus_NotFound(t *testing.T) {
	regSvc := &stubAdminRegistrationService{updateErr: service.ErrRegistrationNotFound}
	router := newAdminRouter(regSvc, &stubAdminDonationService{}, &stubAdminVolunteerService{})

	w := postPutJSON(router, "/admin/registrations/42/payment-status", `{"status":"paid"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleUpdatePaymentStatus_InvalidStatus(t *testing.T) {
	router := newAdminRouter(&stubAdminRegistrationService{}, &stubAdminDonationService{}, &stubAdminVolunteerService{})

	w := postPutJSON(router, "/admin/registrations/42/payment-status", `{"status":"refunded"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetApplications_PassesFilter(t *testing.T) {
	volSvc := &stubAdminVolunteerService{}
	router := newAdminRouter(&stubAdminRegistrationService{}, &stubAdminDonationService{}, volSvc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/volunteer-applications?status=pending&search=lena", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending", volSvc.gotFilter.Status)
	assert.Equal(t, "lena", volSvc.gotFilter.Search)
}

func TestHandleUpdateApplication_NotFound(t *testing.T) {
	volSvc := &stubAdminVolunteerService{updateErr: service.ErrApplicationNotFound}
	router := newAdminRouter(&stubAdminRegistrationService{}, &stubAdminDonationService{}, volSvc)

	w := postPutJSON(router, "/admin/volunteer-applications/42", `{"status":"approved"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func postPutJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}
