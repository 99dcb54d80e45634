package seeder

import (
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/burgerspot/rewards/internal/domain"
)

// Seeder handles database seeding operations
type Seeder struct {
	userRepo domain.UserRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(userRepo domain.UserRepository) *Seeder {
	return &Seeder{
		userRepo: userRepo,
	}
}

// SeedUsers seeds the database with initial users
func (s *Seeder) SeedUsers() error {
	log.Printf("Seeding users...")

	hash := sha256.Sum256([]byte("password123"))
	passwordHash := hex.EncodeToString(hash[:])

	users := []struct {
		id       int64
		username string
		role     domain.UserRole
	}{
		{1001, "admin", domain.RoleAdmin},
		{2001, "alice", domain.RoleCustomer},
		{2002, "bob", domain.RoleCustomer},
		{2003, "carol", domain.RoleCustomer},
	}

	for _, u := range users {
		existingUser, err := s.userRepo.GetByID(u.id)
		if err != nil {
			log.Printf("Error checking existing user %s, skipping.", u.username)
			continue
		}

		if existingUser != nil {
			log.Printf("User %s already exists, skipping.", u.username)
			continue
		}

		user := &domain.User{
			ID:       u.id,
			Username: u.username,
			Password: passwordHash,
			Role:     u.role,
		}

		if err := s.userRepo.Create(user); err != nil {
			log.Printf("Error creating user %s.", u.username)
			return err
		}
		log.Printf("Created user %s.", u.username)
	}

	log.Printf("User seeding completed successfully")
	return nil
}
