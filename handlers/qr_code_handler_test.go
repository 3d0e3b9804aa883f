package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Manajemen-QR-Code/models"
	"Manajemen-QR-Code/pkg/paseto"
	"Manajemen-QR-Code/repository"
)

// fakeQRCodeRepository menyimpan record di memory, meniru semantik repo Mongo:
// miss kepemilikan mengembalikan (nil, nil), bukan error.
type fakeQRCodeRepository struct {
	qrCodes     []*models.QRCode
	insertCalls int
	updateCalls int
}

func (f *fakeQRCodeRepository) CreateQRCode(_ context.Context, qrCode *models.QRCode) (*mongo.InsertOneResult, error) {
	f.insertCalls++
	stored := *qrCode
	f.qrCodes = append(f.qrCodes, &stored)
	return &mongo.InsertOneResult{InsertedID: qrCode.ID}, nil
}

func (f *fakeQRCodeRepository) FindQRCodeByIDAndOwner(_ context.Context, id, ownerID primitive.ObjectID) (*models.QRCode, error) {
	for _, qr := range f.qrCodes {
		if qr.ID == id && qr.UserID == ownerID {
			found := *qr
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeQRCodeRepository) UpdateQRCode(_ context.Context, id, ownerID primitive.ObjectID, update bson.M) (*models.QRCode, error) {
	f.updateCalls++
	for _, qr := range f.qrCodes {
		if qr.ID != id || qr.UserID != ownerID {
			continue
		}
		for key, value := range update {
			switch key {
			case "label":
				qr.Label = value.(string)
			case "content_type":
				qr.ContentType = value.(string)
			case "content_value":
				qr.ContentValue = value.(string)
			case "size":
				qr.Size = value.(int)
			case "error_correction_level":
				qr.ErrorCorrectionLevel = value.(string)
			case "foreground_color":
				qr.ForegroundColor = value.(string)
			case "background_color":
				qr.BackgroundColor = value.(string)
			case "logo_url":
				qr.LogoURL = value.(string)
			case "style_json":
				qr.StyleJSON = value.(string)
			case "image_url":
				qr.ImageURL = value.(string)
			case "is_favorite":
				qr.IsFavorite = value.(bool)
			case "is_archived":
				qr.IsArchived = value.(bool)
			case "updated_at":
				qr.UpdatedAt = value.(time.Time)
			}
		}
		updated := *qr
		return &updated, nil
	}
	return nil, nil
}

func (f *fakeQRCodeRepository) GetAllQRCodesByOwner(_ context.Context, filter bson.M) ([]models.QRCode, int64, error) {
	var result []models.QRCode
	for _, qr := range f.qrCodes {
		if ownerID, ok := filter["user_id"].(primitive.ObjectID); ok && qr.UserID != ownerID {
			continue
		}
		if archived, ok := filter["is_archived"].(bool); ok && qr.IsArchived != archived {
			continue
		}
		if favorite, ok := filter["is_favorite"].(bool); ok && qr.IsFavorite != favorite {
			continue
		}
		result = append(result, *qr)
	}
	return result, int64(len(result)), nil
}

// newTestApp mendaftarkan rute QR code dengan claims yang di-inject, pengganti
// AuthMiddleware supaya test tidak butuh token betulan. claims nil berarti
// request tanpa sesi.
func newTestApp(qrRepo repository.QRCodeRepository, scanRepo repository.ScanEventRepository, claims *paseto.Claims) *fiber.App {
	app := fiber.New()

	qrHandler := NewQRCodeHandler(qrRepo)
	scanHandler := NewScanEventHandler(qrRepo, scanRepo)

	qrGroup := app.Group("/api/v1/qrcodes", func(c *fiber.Ctx) error {
		if claims != nil {
			c.Locals("user", claims)
		}
		return c.Next()
	})
	qrGroup.Post("/", qrHandler.CreateQRCode)
	qrGroup.Get("/", qrHandler.GetAllQRCodes)
	qrGroup.Get("/:id", qrHandler.GetQRCodeByID)
	qrGroup.Put("/:id", qrHandler.UpdateQRCode)
	qrGroup.Post("/:id/scans", scanHandler.AddScanEvent)
	qrGroup.Get("/:id/scans", scanHandler.GetScanEvents)

	return app
}

func testClaims() *paseto.Claims {
	return &paseto.Claims{UserID: primitive.NewObjectID(), Email: "demo.utama@gmail.com"}
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("gagal decode response body: %v", err)
	}
}

type qrCodeEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		QRCode models.QRCode `json:"qr_code"`
	} `json:"data"`
}

type qrCodeListEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Items []models.QRCode `json:"items"`
		Total int64           `json:"total"`
	} `json:"data"`
}

func seedQRCode(repo *fakeQRCodeRepository, ownerID primitive.ObjectID, mutate func(*models.QRCode)) *models.QRCode {
	created := time.Now().Add(-time.Hour)
	qr := &models.QRCode{
		ID:           primitive.NewObjectID(),
		UserID:       ownerID,
		Label:        "Menu Restoran",
		ContentType:  "url",
		ContentValue: "https://example.com",
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	if mutate != nil {
		mutate(qr)
	}
	repo.qrCodes = append(repo.qrCodes, qr)
	return qr
}

func TestCreateQRCode(t *testing.T) {
	claims := testClaims()
	qrRepo := &fakeQRCodeRepository{}
	app := newTestApp(qrRepo, &fakeScanEventRepository{}, claims)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/qrcodes", `{"content_value":"https://example.com"}`))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}

	var envelope qrCodeEnvelope
	decodeBody(t, resp, &envelope)

	if !envelope.Success {
		t.Error("success = false, want true")
	}
	qr := envelope.Data.QRCode
	if qr.ID.IsZero() {
		t.Error("id tidak di-generate")
	}
	if qr.UserID != claims.UserID {
		t.Errorf("user_id = %v, want %v", qr.UserID, claims.UserID)
	}
	if qr.ContentValue != "https://example.com" {
		t.Errorf("content_value = %q, want %q", qr.ContentValue, "https://example.com")
	}
	if qr.IsFavorite || qr.IsArchived {
		t.Errorf("is_favorite = %v, is_archived = %v, keduanya harus default false", qr.IsFavorite, qr.IsArchived)
	}
	if qr.ImageURL != "" {
		t.Errorf("image_url = %q, harus kosong kalau tidak dikirim", qr.ImageURL)
	}
	if !qr.CreatedAt.Equal(qr.UpdatedAt) {
		t.Errorf("created_at %v != updated_at %v saat insert", qr.CreatedAt, qr.UpdatedAt)
	}
	if qrRepo.insertCalls != 1 {
		t.Errorf("insertCalls = %d, want 1", qrRepo.insertCalls)
	}
}

func TestCreateQRCode_ExplicitFlags(t *testing.T) {
	claims := testClaims()
	qrRepo := &fakeQRCodeRepository{}
	app := newTestApp(qrRepo, &fakeScanEventRepository{}, claims)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/qrcodes",
		`{"content_value":"halo dunia","content_type":"text","is_favorite":true,"is_archived":true}`))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}

	var envelope qrCodeEnvelope
	decodeBody(t, resp, &envelope)

	if !envelope.Data.QRCode.IsFavorite || !envelope.Data.QRCode.IsArchived {
		t.Errorf("flag eksplisit tidak terbawa: is_favorite=%v is_archived=%v",
			envelope.Data.QRCode.IsFavorite, envelope.Data.QRCode.IsArchived)
	}
}

func TestCreateQRCode_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"tanpa content_value", `{"label":"Menu"}`},
		{"content_value kosong", `{"content_value":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qrRepo := &fakeQRCodeRepository{}
			app := newTestApp(qrRepo, &fakeScanEventRepository{}, testClaims())

			resp, err := app.Test(jsonRequest("POST", "/api/v1/qrcodes", tt.body))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
			}
			if qrRepo.insertCalls != 0 {
				t.Errorf("insertCalls = %d, store tidak boleh disentuh", qrRepo.insertCalls)
			}
		})
	}
}

func TestCreateQRCode_Unauthorized(t *testing.T) {
	app := newTestApp(&fakeQRCodeRepository{}, &fakeScanEventRepository{}, nil)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/qrcodes", `{"content_value":"https://example.com"}`))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestUpdateQRCode_SparseUpdate(t *testing.T) {
	claims := testClaims()
	qrRepo := &fakeQRCodeRepository{}
	seeded := seedQRCode(qrRepo, claims.UserID, nil)
	prevValue := seeded.ContentValue
	prevLabel := seeded.Label
	prevUpdatedAt := seeded.UpdatedAt
	app := newTestApp(qrRepo, &fakeScanEventRepository{}, claims)

	resp, err := app.Test(jsonRequest("PUT", "/api/v1/qrcodes/"+seeded.ID.Hex(), `{"is_favorite":true}`))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var envelope qrCodeEnvelope
	decodeBody(t, resp, &envelope)

	qr := envelope.Data.QRCode
	if !qr.IsFavorite {
		t.Error("is_favorite = false, want true")
	}
	if qr.ContentValue != prevValue {
		t.Errorf("content_value berubah jadi %q padahal tidak dikirim", qr.ContentValue)
	}
	if qr.Label != prevLabel {
		t.Errorf("label berubah jadi %q padahal tidak dikirim", qr.Label)
	}
	if !qr.UpdatedAt.After(prevUpdatedAt) {
		t.Errorf("updated_at %v tidak naik dari %v", qr.UpdatedAt, prevUpdatedAt)
	}
}

func TestUpdateQRCode_NoFields(t *testing.T) {
	claims := testClaims()
	qrRepo := &fakeQRCodeRepository{}
	seeded := seedQRCode(qrRepo, claims.UserID, nil)
	app := newTestApp(qrRepo, &fakeScanEventRepository{}, claims)

	resp, err := app.Test(jsonRequest("PUT", "/api/v1/qrcodes/"+seeded.ID.Hex(), `{}`))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
	if qrRepo.updateCalls != 0 {
		t.Errorf("updateCalls = %d, update tanpa field harus ditolak sebelum ke store", qrRepo.updateCalls)
	}
}

func TestUpdateQRCode_NotOwned(t *testing.T) {
	claims := testClaims()
	qrRepo := &fakeQRCodeRepository{}
	otherUser := primitive.NewObjectID()
	seeded := seedQRCode(qrRepo, otherUser, nil)
	app := newTestApp(qrRepo, &fakeScanEventRepository{}, claims)

	resp, err := app.Test(jsonRequest("PUT", "/api/v1/qrcodes/"+seeded.ID.Hex(), `{"label":"dibajak"}`))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	// Milik user lain dan tidak ada sama-sama 404, keberadaan record tidak bocor
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}
	if qrRepo.qrCodes[0].Label != "Menu Restoran" {
		t.Errorf("record user lain ikut berubah: label = %q", qrRepo.qrCodes[0].Label)
	}
}

func TestUpdateQRCode_Missing(t *testing.T) {
	claims := testClaims()
	app := newTestApp(&fakeQRCodeRepository{}, &fakeScanEventRepository{}, claims)

	resp, err := app.Test(jsonRequest("PUT", "/api/v1/qrcodes/"+primitive.NewObjectID().Hex(), `{"label":"x"}`))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}
}

func TestGetAllQRCodes_Filters(t *testing.T) {
	claims := testClaims()
	qrRepo := &fakeQRCodeRepository{}
	active := seedQRCode(qrRepo, claims.UserID, nil)
	favorite := seedQRCode(qrRepo, claims.UserID, func(qr *models.QRCode) { qr.IsFavorite = true })
	archived := seedQRCode(qrRepo, claims.UserID, func(qr *models.QRCode) { qr.IsArchived = true })
	archivedFavorite := seedQRCode(qrRepo, claims.UserID, func(qr *models.QRCode) {
		qr.IsArchived = true
		qr.IsFavorite = true
	})
	seedQRCode(qrRepo, primitive.NewObjectID(), nil) // milik user lain, tidak boleh muncul

	app := newTestApp(qrRepo, &fakeScanEventRepository{}, claims)

	tests := []struct {
		name    string
		query   string
		wantIDs []primitive.ObjectID
	}{
		{
			name:    "default menyembunyikan arsip",
			query:   "",
			wantIDs: []primitive.ObjectID{active.ID, favorite.ID},
		},
		{
			name:    "include_archived menampilkan semua",
			query:   "?include_archived=true",
			wantIDs: []primitive.ObjectID{active.ID, favorite.ID, archived.ID, archivedFavorite.ID},
		},
		{
			name:    "favorites_only tanpa arsip",
			query:   "?favorites_only=true",
			wantIDs: []primitive.ObjectID{favorite.ID},
		},
		{
			name:    "kedua filter digabung AND",
			query:   "?include_archived=true&favorites_only=true",
			wantIDs: []primitive.ObjectID{favorite.ID, archivedFavorite.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest("GET", "/api/v1/qrcodes"+tt.query, ""))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
			}

			var envelope qrCodeListEnvelope
			decodeBody(t, resp, &envelope)

			if envelope.Data.Total != int64(len(tt.wantIDs)) {
				t.Errorf("total = %d, want %d", envelope.Data.Total, len(tt.wantIDs))
			}
			if len(envelope.Data.Items) != len(tt.wantIDs) {
				t.Fatalf("len(items) = %d, want %d", len(envelope.Data.Items), len(tt.wantIDs))
			}
			for i, wantID := range tt.wantIDs {
				if envelope.Data.Items[i].ID != wantID {
					t.Errorf("items[%d].ID = %v, want %v", i, envelope.Data.Items[i].ID, wantID)
				}
				if envelope.Data.Items[i].UserID != claims.UserID {
					t.Errorf("items[%d] milik user lain ikut bocor", i)
				}
			}
		})
	}
}

func TestGetAllQRCodes_Empty(t *testing.T) {
	app := newTestApp(&fakeQRCodeRepository{}, &fakeScanEventRepository{}, testClaims())

	resp, err := app.Test(jsonRequest("GET", "/api/v1/qrcodes", ""))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var envelope qrCodeListEnvelope
	decodeBody(t, resp, &envelope)

	if envelope.Data.Items == nil {
		t.Error("items = null, want array kosong")
	}
	if envelope.Data.Total != 0 {
		t.Errorf("total = %d, want 0", envelope.Data.Total)
	}
}

func TestGetQRCodeByID(t *testing.T) {
	claims := testClaims()
	qrRepo := &fakeQRCodeRepository{}
	owned := seedQRCode(qrRepo, claims.UserID, nil)
	notOwned := seedQRCode(qrRepo, primitive.NewObjectID(), nil)
	app := newTestApp(qrRepo, &fakeScanEventRepository{}, claims)

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"milik sendiri", owned.ID.Hex(), fiber.StatusOK},
		{"milik user lain jadi 404", notOwned.ID.Hex(), fiber.StatusNotFound},
		{"tidak ada", primitive.NewObjectID().Hex(), fiber.StatusNotFound},
		{"format id rusak", "bukan-object-id", fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest("GET", "/api/v1/qrcodes/"+tt.id, ""))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestFavoriteScenario(t *testing.T) {
	// create → update is_favorite → muncul di list favorites_only
	claims := testClaims()
	qrRepo := &fakeQRCodeRepository{}
	app := newTestApp(qrRepo, &fakeScanEventRepository{}, claims)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/qrcodes", `{"content_value":"https://example.com"}`))
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	var created qrCodeEnvelope
	decodeBody(t, resp, &created)
	if created.Data.QRCode.ImageURL != "" || created.Data.QRCode.IsFavorite {
		t.Fatalf("record baru: image_url = %q, is_favorite = %v", created.Data.QRCode.ImageURL, created.Data.QRCode.IsFavorite)
	}

	resp, err = app.Test(jsonRequest("PUT", "/api/v1/qrcodes/"+created.Data.QRCode.ID.Hex(), `{"is_favorite":true}`))
	if err != nil {
		t.Fatalf("update error = %v", err)
	}
	var updated qrCodeEnvelope
	decodeBody(t, resp, &updated)
	if !updated.Data.QRCode.IsFavorite {
		t.Fatal("is_favorite = false setelah update")
	}
	if updated.Data.QRCode.ContentValue != "https://example.com" {
		t.Fatalf("content_value berubah: %q", updated.Data.QRCode.ContentValue)
	}

	resp, err = app.Test(jsonRequest("GET", "/api/v1/qrcodes?favorites_only=true", ""))
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	var listed qrCodeListEnvelope
	decodeBody(t, resp, &listed)
	if listed.Data.Total != 1 || listed.Data.Items[0].ID != created.Data.QRCode.ID {
		t.Errorf("list favorites_only tidak memuat record yang baru difavoritkan: %+v", listed.Data)
	}
}
