package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Manajemen-QR-Code/config"
	"Manajemen-QR-Code/models"
)

// ScanEventRepository hanya punya append dan list: scan event tidak pernah
// diubah atau dihapus lewat layer ini.
type ScanEventRepository interface {
	CreateScanEvent(ctx context.Context, event *models.ScanEvent) (*mongo.InsertOneResult, error)
	GetScanEventsByQRCodeID(ctx context.Context, qrCodeID primitive.ObjectID) ([]models.ScanEvent, int64, error)
}

type scanEventRepository struct {
	collection *mongo.Collection
}

func NewScanEventRepository() ScanEventRepository {
	return &scanEventRepository{
		collection: config.GetCollection(config.ScanEventCollection),
	}
}

func (r *scanEventRepository) CreateScanEvent(ctx context.Context, event *models.ScanEvent) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("gagal menyimpan scan event: %w", err)
	}
	return result, nil
}

func (r *scanEventRepository) GetScanEventsByQRCodeID(ctx context.Context, qrCodeID primitive.ObjectID) ([]models.ScanEvent, int64, error) {
	filter := bson.M{"qr_code_id": qrCodeID}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menemukan scan event: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.ScanEvent

	if err = cursor.All(ctx, &events); err != nil {
		return nil, 0, fmt.Errorf("gagal mendecode scan event: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung scan event: %w", err)
	}

	return events, total, nil
}
