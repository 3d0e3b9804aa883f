package seeder

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Manajemen-QR-Code/models"
	"Manajemen-QR-Code/repository"
)

var seedContentTypes = []string{"url", "text", "wifi"}

var seedLabels = []string{
	"Menu Restoran", "Kartu Nama", "WiFi Kantor", "Promo Akhir Tahun",
	"Link Pendaftaran", "Katalog Produk", "Undangan Acara",
}

var seedUserAgents = []string{
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
	"Mozilla/5.0 (Linux; Android 14; SM-S918B)",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
}

var seedLocations = []string{"Jakarta", "Bandung", "Surabaya", "Yogyakarta", "Denpasar"}

// SeedQRCodes membuat beberapa QR code demo per user plus riwayat scan-nya.
func SeedQRCodes(qrRepo repository.QRCodeRepository, scanRepo repository.ScanEventRepository, users []*models.User) {
	log.Println("🌱 Memulai seeding QR code...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, user := range users {
		existing, _, err := qrRepo.GetAllQRCodesByOwner(ctx, repository.QRCodeListFilter(user.ID, true, false))
		if err != nil {
			log.Printf("❌ Gagal memeriksa QR code milik %s: %v\n", user.Email, err)
			continue
		}
		if len(existing) > 0 {
			fmt.Printf("Skipping: User %s sudah punya QR code.\n", user.Email)
			continue
		}

		for i := 0; i < 3; i++ {
			now := time.Now()
			newQRCode := &models.QRCode{
				ID:           primitive.NewObjectID(),
				UserID:       user.ID,
				Label:        seedLabels[rand.Intn(len(seedLabels))],
				ContentType:  seedContentTypes[rand.Intn(len(seedContentTypes))],
				ContentValue: fmt.Sprintf("https://example.com/q/%s", uuid.New().String()),
				Size:         256,
				IsFavorite:   i == 0,
				CreatedAt:    now,
				UpdatedAt:    now,
			}

			_, err := qrRepo.CreateQRCode(ctx, newQRCode)
			if err != nil {
				log.Printf("❌ Gagal menyimpan QR code untuk %s: %v\n", user.Email, err)
				continue
			}

			for j := 0; j < rand.Intn(5); j++ {
				scannedAt := now.Add(-time.Duration(rand.Intn(72)) * time.Hour)
				event := &models.ScanEvent{
					ID:           primitive.NewObjectID(),
					QRCodeID:     newQRCode.ID,
					ScannedAt:    scannedAt,
					UserAgent:    seedUserAgents[rand.Intn(len(seedUserAgents))],
					IPHash:       uuid.New().String(),
					LocationHint: seedLocations[rand.Intn(len(seedLocations))],
					CreatedAt:    scannedAt,
				}
				if _, err := scanRepo.CreateScanEvent(ctx, event); err != nil {
					log.Printf("❌ Gagal menyimpan scan event: %v\n", err)
				}
			}

			fmt.Printf("✔ QR code '%s' untuk %s berhasil ditambahkan.\n", newQRCode.Label, user.Email)
		}
	}

	log.Println("✅ Seeding QR code selesai.")
}
