package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Manajemen-QR-Code/config"
	"Manajemen-QR-Code/models"
)

// QRCodeRepository adalah kontrak akses koleksi qr_codes. Semua query yang
// menyangkut satu record selalu difilter _id + user_id sekaligus, jadi record
// milik user lain tidak pernah bocor lewat layer ini.
type QRCodeRepository interface {
	CreateQRCode(ctx context.Context, qrCode *models.QRCode) (*mongo.InsertOneResult, error)
	FindQRCodeByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.QRCode, error)
	UpdateQRCode(ctx context.Context, id, ownerID primitive.ObjectID, update bson.M) (*models.QRCode, error)
	GetAllQRCodesByOwner(ctx context.Context, filter bson.M) ([]models.QRCode, int64, error)
}

type qrCodeRepository struct {
	collection *mongo.Collection
}

func NewQRCodeRepository() QRCodeRepository {
	return &qrCodeRepository{
		collection: config.GetCollection(config.QRCodeCollection),
	}
}

func (r *qrCodeRepository) CreateQRCode(ctx context.Context, qrCode *models.QRCode) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, qrCode)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat QR code: %w", err)
	}
	return result, nil
}

// FindQRCodeByIDAndOwner mengembalikan (nil, nil) kalau tidak ada record yang
// cocok. "Tidak ada" dan "bukan milik caller" sengaja tidak dibedakan supaya
// keberadaan record user lain tidak bisa ditebak.
func (r *qrCodeRepository) FindQRCodeByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.QRCode, error) {
	var qrCode models.QRCode
	filter := bson.M{"_id": id, "user_id": ownerID}

	err := r.collection.FindOne(ctx, filter).Decode(&qrCode)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal menemukan QR code: %w", err)
	}
	return &qrCode, nil
}

// UpdateQRCode menerapkan $set dan mengembalikan dokumen sesudah update.
// Filter tetap menyertakan user_id: kepemilikan dicek ulang di setiap call.
func (r *qrCodeRepository) UpdateQRCode(ctx context.Context, id, ownerID primitive.ObjectID, update bson.M) (*models.QRCode, error) {
	filter := bson.M{"_id": id, "user_id": ownerID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.QRCode
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": update}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mengupdate QR code: %w", err)
	}
	return &updated, nil
}

func (r *qrCodeRepository) GetAllQRCodesByOwner(ctx context.Context, filter bson.M) ([]models.QRCode, int64, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menemukan QR code: %w", err)
	}
	defer cursor.Close(ctx)

	var qrCodes []models.QRCode

	if err = cursor.All(ctx, &qrCodes); err != nil {
		return nil, 0, fmt.Errorf("gagal mendecode QR code: %w", err)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("gagal menghitung QR code: %w", err)
	}

	return qrCodes, total, nil
}

// QRCodeListFilter menyusun filter list milik satu owner. Default record
// terarsip disembunyikan; favorites_only mempersempit lagi. Kedua filter
// digabung AND.
func QRCodeListFilter(ownerID primitive.ObjectID, includeArchived, favoritesOnly bool) bson.M {
	filter := bson.M{"user_id": ownerID}
	if !includeArchived {
		filter["is_archived"] = false
	}
	if favoritesOnly {
		filter["is_favorite"] = true
	}
	return filter
}
