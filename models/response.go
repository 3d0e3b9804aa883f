package models

// Success Response Models

// RegisterSuccessResponse represents successful registration response
type RegisterSuccessResponse struct {
	Message string `json:"message" example:"User berhasil didaftarkan"`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
}

// LoginSuccessResponse represents successful login response
type LoginSuccessResponse struct {
	Message string `json:"message" example:"Login berhasil"`
	Token   string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
}

// ChangePasswordSuccessResponse represents successful password change response
type ChangePasswordSuccessResponse struct {
	Message string `json:"message" example:"Password berhasil diubah."`
}

// QRCodeSuccessResponse membungkus satu QR code dalam envelope sukses
type QRCodeSuccessResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		QRCode QRCode `json:"qr_code"`
	} `json:"data"`
}

// QRCodeListSuccessResponse membungkus daftar QR code plus jumlahnya
type QRCodeListSuccessResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Items []QRCode `json:"items"`
		Total int64    `json:"total" example:"10"`
	} `json:"data"`
}

// ScanEventSuccessResponse membungkus satu scan event dalam envelope sukses
type ScanEventSuccessResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Event ScanEvent `json:"event"`
	} `json:"data"`
}

// ScanEventListSuccessResponse membungkus daftar scan event plus jumlahnya
type ScanEventListSuccessResponse struct {
	Success bool `json:"success" example:"true"`
	Data    struct {
		Items []ScanEvent `json:"items"`
		Total int64       `json:"total" example:"42"`
	} `json:"data"`
}

// Error Response Models

// ErrorResponse represents basic error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Error  string `json:"error" example:"Validation failed"`
	Errors string `json:"errors" example:"content_value: Kolom 'ContentValue' wajib diisi."`
}

// UnauthorizedErrorResponse represents unauthorized error response
type UnauthorizedErrorResponse struct {
	Error string `json:"error" example:"Token tidak valid atau tidak ada"`
}

// NotFoundErrorResponse represents not found error response
type NotFoundErrorResponse struct {
	Error string `json:"error" example:"QR Code tidak ditemukan"`
}

type LogoutSuccessResponse struct {
	Message string `json:"message" example:"Logout berhasil. Silakan hapus token dari sisi client."`
}
