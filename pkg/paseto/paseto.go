package paseto

import (
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Manajemen-QR-Code/config"
	"Manajemen-QR-Code/models"
)

// Claims adalah identitas user yang dibawa token dan ditaruh di Locals("user").
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
}

// Maker membungkus PASETO v2 local dengan satu symmetric key.
type Maker struct {
	paseto       *paseto.V2
	symmetricKey []byte
}

// NewMaker menerima secret Base64 URL-encoded yang hasil decode-nya 32 byte.
func NewMaker(secretBase64 string) (*Maker, error) {
	decodedKey, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("PASETO secret bukan Base64 URL-encoded yang valid: %w", err)
	}

	if len(decodedKey) != 32 {
		return nil, fmt.Errorf("PASETO secret harus tepat 32 byte setelah decode, dapat %d byte", len(decodedKey))
	}

	return &Maker{
		paseto:       paseto.NewV2(),
		symmetricKey: decodedKey,
	}, nil
}

func (m *Maker) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	exp := now.Add(24 * time.Hour)

	token := paseto.JSONToken{
		Jti:        uuid.New().String(),
		IssuedAt:   now,
		Expiration: exp,
		NotBefore:  now,
	}

	token.Set("user_id", user.ID.Hex())
	token.Set("email", user.Email)

	return m.paseto.Encrypt(m.symmetricKey, token, "")
}

func (m *Maker) ValidateToken(tokenString string) (*Claims, error) {
	var token paseto.JSONToken
	var footer string

	err := m.paseto.Decrypt(tokenString, m.symmetricKey, &token, &footer)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	userIDStr := token.Get("user_id")
	objectID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id format: %v", err)
	}

	return &Claims{
		UserID: objectID,
		Email:  token.Get("email"),
	}, nil
}

var (
	defaultMaker *Maker
	makerOnce    sync.Once
)

// DefaultMaker dipakai middleware dan handler; key diambil dari config saat
// pertama kali dibutuhkan, bukan saat import, supaya test bisa bikin Maker
// sendiri tanpa menyentuh env.
func DefaultMaker() *Maker {
	makerOnce.Do(func() {
		cfg := config.LoadConfig()
		maker, err := NewMaker(cfg.PASETO_SECRET)
		if err != nil {
			panic(fmt.Sprintf("Gagal menginisialisasi PASETO maker: %v", err))
		}
		defaultMaker = maker
	})
	return defaultMaker
}

func GenerateToken(user *models.User) (string, error) {
	return DefaultMaker().GenerateToken(user)
}

func ValidateToken(tokenString string) (*Claims, error) {
	return DefaultMaker().ValidateToken(tokenString)
}
