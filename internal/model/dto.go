package model

// ========== Auth DTOs ==========

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	OS       string `json:"os"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ProtectedResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// ========== Catalog DTOs ==========

type ProductRequest struct {
	ID string `json:"_id" binding:"required"`
}

// FilterRequest carries the optional structured filter fields. MarketStatus is
// a pointer so an explicit false still filters while an absent key does not.
type FilterRequest struct {
	Brand        string `json:"brand"`
	ReleaseDate  string `json:"releaseDate"`
	MarketStatus *bool  `json:"marketStatus"`
	Storage      string `json:"storage"`
}

type SearchRequest struct {
	Search string `json:"search" binding:"required"`
}

type CompareRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

type DashboardResponse struct {
	Devices []DeviceSummary `json:"devices"`
}

type DevicesResponse struct {
	Devices []Device `json:"devices"`
}

type DeviceResponse struct {
	Device *Device `json:"device"`
}

// ========== Recommendation DTOs ==========

type RecommendRequest struct {
	Devices []DeviceSpec `json:"devices" binding:"required"`
}

type RecommendResponse struct {
	Recommendation string `json:"recommendation"`
}

// ========== Common ==========

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}
