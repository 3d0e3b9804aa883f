package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QRCode adalah definisi QR code milik satu user. Rendering gambar dilakukan
// di luar sistem ini, image_url hanya referensi hasilnya.
type QRCode struct {
	ID                   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID               primitive.ObjectID `json:"user_id" bson:"user_id"`
	Label                string             `json:"label,omitempty" bson:"label,omitempty"`
	ContentType          string             `json:"content_type,omitempty" bson:"content_type,omitempty"`
	ContentValue         string             `json:"content_value" bson:"content_value"`
	Size                 int                `json:"size,omitempty" bson:"size,omitempty"`
	ErrorCorrectionLevel string             `json:"error_correction_level,omitempty" bson:"error_correction_level,omitempty"`
	ForegroundColor      string             `json:"foreground_color,omitempty" bson:"foreground_color,omitempty"`
	BackgroundColor      string             `json:"background_color,omitempty" bson:"background_color,omitempty"`
	LogoURL              string             `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	StyleJSON            string             `json:"style_json,omitempty" bson:"style_json,omitempty"`
	ImageURL             string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	IsFavorite           bool               `json:"is_favorite" bson:"is_favorite"`
	IsArchived           bool               `json:"is_archived" bson:"is_archived"`
	CreatedAt            time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at" bson:"updated_at"`
}

type QRCodeCreatePayload struct {
	Label                string `json:"label"`
	ContentType          string `json:"content_type"`
	ContentValue         string `json:"content_value" validate:"required,min=1"`
	Size                 int    `json:"size" validate:"omitempty,min=1"`
	ErrorCorrectionLevel string `json:"error_correction_level"`
	ForegroundColor      string `json:"foreground_color"`
	BackgroundColor      string `json:"background_color"`
	LogoURL              string `json:"logo_url"`
	StyleJSON            string `json:"style_json"`
	ImageURL             string `json:"image_url"`
	IsFavorite           *bool  `json:"is_favorite"`
	IsArchived           *bool  `json:"is_archived"`
}

// QRCodeUpdatePayload memakai pointer di semua field supaya "tidak dikirim"
// bisa dibedakan dari "dikirim dengan nilai kosong". Field nil dibiarkan utuh.
type QRCodeUpdatePayload struct {
	Label                *string `json:"label,omitempty"`
	ContentType          *string `json:"content_type,omitempty"`
	ContentValue         *string `json:"content_value,omitempty" validate:"omitempty,min=1"`
	Size                 *int    `json:"size,omitempty" validate:"omitempty,min=1"`
	ErrorCorrectionLevel *string `json:"error_correction_level,omitempty"`
	ForegroundColor      *string `json:"foreground_color,omitempty"`
	BackgroundColor      *string `json:"background_color,omitempty"`
	LogoURL              *string `json:"logo_url,omitempty"`
	StyleJSON            *string `json:"style_json,omitempty"`
	ImageURL             *string `json:"image_url,omitempty"`
	IsFavorite           *bool   `json:"is_favorite,omitempty"`
	IsArchived           *bool   `json:"is_archived,omitempty"`
}

// UpdateDocument menyusun dokumen $set hanya dari field yang benar-benar
// dikirim client. Map kosong berarti request update tanpa perubahan.
func (p *QRCodeUpdatePayload) UpdateDocument() bson.M {
	update := bson.M{}
	if p.Label != nil {
		update["label"] = *p.Label
	}
	if p.ContentType != nil {
		update["content_type"] = *p.ContentType
	}
	if p.ContentValue != nil {
		update["content_value"] = *p.ContentValue
	}
	if p.Size != nil {
		update["size"] = *p.Size
	}
	if p.ErrorCorrectionLevel != nil {
		update["error_correction_level"] = *p.ErrorCorrectionLevel
	}
	if p.ForegroundColor != nil {
		update["foreground_color"] = *p.ForegroundColor
	}
	if p.BackgroundColor != nil {
		update["background_color"] = *p.BackgroundColor
	}
	if p.LogoURL != nil {
		update["logo_url"] = *p.LogoURL
	}
	if p.StyleJSON != nil {
		update["style_json"] = *p.StyleJSON
	}
	if p.ImageURL != nil {
		update["image_url"] = *p.ImageURL
	}
	if p.IsFavorite != nil {
		update["is_favorite"] = *p.IsFavorite
	}
	if p.IsArchived != nil {
		update["is_archived"] = *p.IsArchived
	}
	return update
}
