package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Manajemen-QR-Code/models"
	"Manajemen-QR-Code/repository"
)

type ScanEventHandler struct {
	qrRepo   repository.QRCodeRepository
	scanRepo repository.ScanEventRepository
}

func NewScanEventHandler(qrRepo repository.QRCodeRepository, scanRepo repository.ScanEventRepository) *ScanEventHandler {
	return &ScanEventHandler{qrRepo: qrRepo, scanRepo: scanRepo}
}

// AddScanEvent godoc
// @Summary Add Scan Event
// @Description Mencatat satu event scan untuk QR code milik sendiri. Body opsional; scanned_at default waktu server.
// @Tags Scan Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "QR Code ID"
// @Param event body models.ScanEventCreatePayload false "Metadata scan (opsional)"
// @Success 201 {object} models.ScanEventSuccessResponse "Scan event berhasil dicatat"
// @Failure 400 {object} models.ErrorResponse "Format ID atau body tidak valid"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Tidak terautentikasi"
// @Failure 404 {object} models.NotFoundErrorResponse "QR code tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal menyimpan scan event"
// @Router /qrcodes/{id}/scans [post]
func (h *ScanEventHandler) AddScanEvent(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	idParam := c.Params("id")
	qrCodeID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID QR code tidak valid"})
	}

	var payload models.ScanEventCreatePayload
	// Body boleh kosong, semua metadata scan opsional
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	qrCode, err := h.qrRepo.FindQRCodeByIDAndOwner(ctx, qrCodeID, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal memeriksa QR code: %v", err)})
	}
	if qrCode == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QR Code tidak ditemukan"})
	}

	now := time.Now()
	scannedAt := now
	if payload.ScannedAt != nil {
		scannedAt = *payload.ScannedAt
	}

	newEvent := &models.ScanEvent{
		ID:           primitive.NewObjectID(),
		QRCodeID:     qrCode.ID,
		ScannedAt:    scannedAt,
		UserAgent:    payload.UserAgent,
		IPHash:       payload.IPHash,
		LocationHint: payload.LocationHint,
		CreatedAt:    now,
	}

	_, err = h.scanRepo.CreateScanEvent(ctx, newEvent)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menyimpan scan event: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"event": newEvent},
	})
}

// GetScanEvents godoc
// @Summary List Scan Events
// @Description Mendapatkan semua scan event dari QR code milik sendiri
// @Tags Scan Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "QR Code ID"
// @Success 200 {object} models.ScanEventListSuccessResponse "Daftar scan event berhasil diambil"
// @Failure 400 {object} models.ErrorResponse "Format ID tidak valid"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Tidak terautentikasi"
// @Failure 404 {object} models.NotFoundErrorResponse "QR code tidak ditemukan"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil scan event"
// @Router /qrcodes/{id}/scans [get]
func (h *ScanEventHandler) GetScanEvents(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	idParam := c.Params("id")
	qrCodeID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID QR code tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	qrCode, err := h.qrRepo.FindQRCodeByIDAndOwner(ctx, qrCodeID, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal memeriksa QR code: %v", err)})
	}
	if qrCode == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QR Code tidak ditemukan"})
	}

	events, total, err := h.scanRepo.GetScanEventsByQRCodeID(ctx, qrCode.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil scan event: %v", err)})
	}

	if events == nil {
		events = []models.ScanEvent{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"items": events, "total": total},
	})
}
