package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScanEvent adalah catatan satu kali scan terhadap sebuah QR code.
// Setelah dibuat, event ini tidak pernah diubah atau dihapus.
type ScanEvent struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	QRCodeID     primitive.ObjectID `json:"qr_code_id" bson:"qr_code_id"`
	ScannedAt    time.Time          `json:"scanned_at" bson:"scanned_at"`
	UserAgent    string             `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	IPHash       string             `json:"ip_hash,omitempty" bson:"ip_hash,omitempty"`
	LocationHint string             `json:"location_hint,omitempty" bson:"location_hint,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// ScanEventCreatePayload: semua field opsional. ScannedAt pakai RFC3339,
// kalau tidak dikirim dianggap waktu server saat request masuk.
// IPHash sudah di-hash di sisi pengirim, layer ini tidak menyentuh IP mentah.
type ScanEventCreatePayload struct {
	ScannedAt    *time.Time `json:"scanned_at,omitempty"`
	UserAgent    string     `json:"user_agent,omitempty"`
	IPHash       string     `json:"ip_hash,omitempty"`
	LocationHint string     `json:"location_hint,omitempty"`
}
