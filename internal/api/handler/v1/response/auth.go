package response

import "github.com/tulipkids/foundation-api/internal/domain"

type LoginResponse struct {
	Token string           `json:"token"`
	Admin domain.AdminUser `json:"admin"`
}
