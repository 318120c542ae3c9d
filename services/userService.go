package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Kariqs/storefront-api/auth"
	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/utils"
	"gorm.io/gorm"
)

const msgEmailInUse = "Email already in use."

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register stores a new Customer together with an empty cart and wishlist.
func (s *UserService) Register(ctx context.Context, data models.RegisterData) (models.User, error) {
	return s.create(ctx, data.Name, data.Email, data.Password, models.RoleCustomer)
}

// Create is the admin path for adding users; it shares Register's rules.
func (s *UserService) Create(ctx context.Context, data models.RegisterData) (models.UserDto, error) {
	user, err := s.create(ctx, data.Name, data.Email, data.Password, models.RoleCustomer)
	if err != nil {
		return models.UserDto{}, err
	}
	return user.ToDto(), nil
}

func (s *UserService) create(ctx context.Context, name, email, password, role string) (models.User, error) {
	email = normalizeEmail(email)

	exists, err := s.emailTaken(ctx, email, 0)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, utils.Conflict(msgEmailInUse)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		Cart:         &models.Cart{},
		Wishlist:     &models.Wishlist{},
	}

	// The unique index on email settles registrations that race past the check above.
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, utils.Conflict(msgEmailInUse)
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *UserService) emailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

// Authenticate returns ErrInvalidCredentials for unknown emails and wrong passwords alike.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, utils.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}

	if err := auth.ComparePasswords(user.PasswordHash, password); err != nil {
		return models.User{}, utils.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.UserDto, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]models.UserDto, 0, len(users))
	for _, u := range users {
		out = append(out, u.ToDto())
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (models.UserDto, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return models.UserDto{}, err
	}
	return user.ToDto(), nil
}

func (s *UserService) find(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, utils.NotFound("user not found")
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}

// Update applies profile changes. Only admins may change a role.
func (s *UserService) Update(ctx context.Context, caller auth.Identity, id uint, data models.UpdateUserData) (models.UserDto, error) {
	if err := auth.Authorize(caller, id); err != nil {
		return models.UserDto{}, utils.Forbidden("You are not allowed to update this user.")
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return models.UserDto{}, err
	}

	if data.Role != user.Role && !caller.IsAdmin() {
		return models.UserDto{}, utils.Forbidden("Only admins can change roles.")
	}

	email := normalizeEmail(data.Email)
	taken, err := s.emailTaken(ctx, email, user.ID)
	if err != nil {
		return models.UserDto{}, err
	}
	if taken {
		return models.UserDto{}, utils.Conflict(msgEmailInUse)
	}

	user.Name = strings.TrimSpace(data.Name)
	user.Email = email
	user.Role = data.Role

	if err := s.db.WithContext(ctx).Model(&user).
		Select("Name", "Email", "Role").
		Updates(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.UserDto{}, utils.Conflict(msgEmailInUse)
		}
		return models.UserDto{}, fmt.Errorf("update user %d: %w", id, err)
	}
	return user.ToDto(), nil
}

// Delete removes the user; cart, wishlist and orders go with it.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFound("user not found")
			}
			return fmt.Errorf("find user %d: %w", id, err)
		}

		if err := tx.Select("Cart", "Wishlist", "Orders").Delete(&user).Error; err != nil {
			return fmt.Errorf("delete user %d: %w", id, err)
		}
		return nil
	})
}

// EnsureAdmin creates an Admin account for email when none exists yet.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	taken, err := s.emailTaken(ctx, normalizeEmail(email), 0)
	if err != nil || taken {
		return err
	}

	if _, err := s.create(ctx, "Super Admin", email, password, models.RoleAdmin); err != nil {
		return err
	}
	log.Println("Seeded admin user:", normalizeEmail(email))
	return nil
}
