package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Manajemen-QR-Code/models"
	"Manajemen-QR-Code/pkg/paseto"
	"Manajemen-QR-Code/repository"
	util "Manajemen-QR-Code/pkg/utils"
)

type QRCodeHandler struct {
	qrRepo repository.QRCodeRepository
}

func NewQRCodeHandler(qrRepo repository.QRCodeRepository) *QRCodeHandler {
	return &QRCodeHandler{qrRepo: qrRepo}
}

func currentClaims(c *fiber.Ctx) (*paseto.Claims, bool) {
	claims, ok := c.Locals("user").(*paseto.Claims)
	return claims, ok
}

// CreateQRCode godoc
// @Summary Create QR Code
// @Description Membuat QR code baru milik user yang sedang login. content_value wajib diisi, field lain opsional.
// @Tags QR Codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param qr_code body models.QRCodeCreatePayload true "Data QR code baru"
// @Success 201 {object} models.QRCodeSuccessResponse "QR code berhasil dibuat"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body atau validation error"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Tidak terautentikasi"
// @Failure 500 {object} models.ErrorResponse "Gagal menyimpan QR code"
// @Router /qrcodes [post]
func (h *QRCodeHandler) CreateQRCode(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	var payload models.QRCodeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	now := time.Now()
	newQRCode := &models.QRCode{
		ID:                   primitive.NewObjectID(),
		UserID:               claims.UserID,
		Label:                payload.Label,
		ContentType:          payload.ContentType,
		ContentValue:         payload.ContentValue,
		Size:                 payload.Size,
		ErrorCorrectionLevel: payload.ErrorCorrectionLevel,
		ForegroundColor:      payload.ForegroundColor,
		BackgroundColor:      payload.BackgroundColor,
		LogoURL:              payload.LogoURL,
		StyleJSON:            payload.StyleJSON,
		ImageURL:             payload.ImageURL,
		// created_at dan updated_at sama persis saat insert
		CreatedAt: now,
		UpdatedAt: now,
	}

	if payload.IsFavorite != nil {
		newQRCode.IsFavorite = *payload.IsFavorite
	}
	if payload.IsArchived != nil {
		newQRCode.IsArchived = *payload.IsArchived
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	_, err := h.qrRepo.CreateQRCode(ctx, newQRCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menyimpan QR code: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"qr_code": newQRCode},
	})
}

// UpdateQRCode godoc
// @Summary Update QR Code
// @Description Update sebagian field QR code milik sendiri. Field yang tidak dikirim tidak diubah; request tanpa field sama sekali ditolak.
// @Tags QR Codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "QR Code ID"
// @Param qr_code body models.QRCodeUpdatePayload true "Field yang ingin diubah"
// @Success 200 {object} models.QRCodeSuccessResponse "QR code berhasil diupdate"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body, ID tidak valid, atau tidak ada field yang diubah"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Tidak terautentikasi"
// @Failure 404 {object} models.NotFoundErrorResponse "QR code tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal mengupdate QR code"
// @Router /qrcodes/{id} [put]
func (h *QRCodeHandler) UpdateQRCode(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID QR code tidak valid"})
	}

	var payload models.QRCodeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	update := payload.UpdateDocument()
	// Update tanpa satu pun field adalah client error, ditolak sebelum ke store
	if len(update) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "minimal satu field harus diisi untuk update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.qrRepo.FindQRCodeByIDAndOwner(ctx, objID, claims.UserID)
	if err != nil {
		log.Printf("Error resolving QR code ownership: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal memeriksa QR code: %v", err)})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QR Code tidak ditemukan"})
	}

	update["updated_at"] = time.Now()

	updated, err := h.qrRepo.UpdateQRCode(ctx, objID, claims.UserID, update)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengupdate QR code: %v", err)})
	}
	if updated == nil {
		// Record hilang di antara dua round-trip (misalnya race dengan archive);
		// kepemilikan dicek ulang oleh filter update, jadi tetap 404.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QR Code tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"qr_code": updated},
	})
}

// GetAllQRCodes godoc
// @Summary List QR Codes
// @Description Mendapatkan semua QR code milik user yang sedang login. Default record terarsip disembunyikan.
// @Tags QR Codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param include_archived query bool false "Ikutkan record terarsip (default: false)"
// @Param favorites_only query bool false "Hanya record favorit (default: false)"
// @Success 200 {object} models.QRCodeListSuccessResponse "Daftar QR code berhasil diambil"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Tidak terautentikasi"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil QR code"
// @Router /qrcodes [get]
func (h *QRCodeHandler) GetAllQRCodes(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	includeArchived := c.QueryBool("include_archived", false)
	favoritesOnly := c.QueryBool("favorites_only", false)

	filter := repository.QRCodeListFilter(claims.UserID, includeArchived, favoritesOnly)

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	qrCodes, total, err := h.qrRepo.GetAllQRCodesByOwner(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil QR code: %v", err)})
	}

	if qrCodes == nil {
		qrCodes = []models.QRCode{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"items": qrCodes, "total": total},
	})
}

// GetQRCodeByID godoc
// @Summary Get QR Code by ID
// @Description Mendapatkan detail satu QR code milik sendiri
// @Tags QR Codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "QR Code ID"
// @Success 200 {object} models.QRCodeSuccessResponse "QR code berhasil ditemukan"
// @Failure 400 {object} models.ErrorResponse "Format ID tidak valid"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Tidak terautentikasi"
// @Failure 404 {object} models.NotFoundErrorResponse "QR code tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil QR code"
// @Router /qrcodes/{id} [get]
func (h *QRCodeHandler) GetQRCodeByID(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID QR code tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	qrCode, err := h.qrRepo.FindQRCodeByIDAndOwner(ctx, objID, claims.UserID)
	if err != nil {
		log.Printf("Error getting QR code by ID: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mendapatkan QR code: %v", err)})
	}
	if qrCode == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QR Code tidak ditemukan"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"qr_code": qrCode},
	})
}
