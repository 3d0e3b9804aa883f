package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"Manajemen-QR-Code/models"
	"Manajemen-QR-Code/repository"
)

// SeedUsers menambahkan akun demo kalau belum ada, dan mengembalikan user yang
// siap dipakai seeder QR code. Aman dijalankan berulang kali.
func SeedUsers(userRepo *repository.UserRepository) []*models.User {
	log.Println("🌱 Memulai seeding user...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Gagal hash password: %v", err)
	}

	demoAccounts := []struct {
		Name  string
		Email string
	}{
		{"Demo Utama", "demo.utama@gmail.com"},
		{"Demo Kedua", "demo.kedua@gmail.com"},
	}

	var seeded []*models.User
	for _, account := range demoAccounts {
		existingUser, err := userRepo.FindUserByEmail(ctx, account.Email)
		if err == nil && existingUser != nil {
			fmt.Printf("Skipping: User %s sudah ada.\n", account.Email)
			seeded = append(seeded, existingUser)
			continue
		}

		newUser := &models.User{
			Name:     account.Name,
			Email:    account.Email,
			Password: string(hashedPassword),
		}

		_, err = userRepo.CreateUser(ctx, newUser)
		if err != nil {
			log.Printf("❌ Gagal menyimpan user %s: %v\n", newUser.Name, err)
			continue
		}
		fmt.Printf("✔ User %s (%s) berhasil ditambahkan.\n", newUser.Name, newUser.Email)
		seeded = append(seeded, newUser)
	}

	log.Println("✅ Seeding user selesai.")
	return seeded
}
