package host

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"slotbook/models"
	"slotbook/services/schedule"
	"slotbook/utils"
)

const tokenDuration = 24 * time.Hour

// Register creates a host account. The nickname is normalized before the
// uniqueness check; a collision is surfaced to the caller, never resolved
// by mangling the name.
func (s *DefaultHostService) Register(ctx context.Context, email, password, nickname string) (*models.Host, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, &schedule.ValidationError{Field: "email", Message: "email is required"}
	}
	if len(password) < 6 {
		return nil, &schedule.ValidationError{Field: "password", Message: "must be at least 6 characters"}
	}

	normalized := SanitizeNickname(nickname)
	if err := ValidateNickname(normalized); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	h := &models.Host{
		UID:          uuid.New().String(),
		Email:        email,
		Nickname:     normalized,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, h); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("host registered",
		zap.String("hostID", h.UID), zap.String("nickname", h.Nickname))
	return h, nil
}

// Authenticate verifies credentials and returns a signed session token
// along with the host record.
func (s *DefaultHostService) Authenticate(ctx context.Context, email, password string) (string, *models.Host, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	h, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(h.UID, h.Email, tokenDuration)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, h, nil
}

// GetByNickname resolves a public booking link to its host.
func (s *DefaultHostService) GetByNickname(ctx context.Context, nickname string) (*models.Host, error) {
	normalized := SanitizeNickname(nickname)
	h, err := s.Repo.GetByNickname(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("host not found: %w", err)
	}
	return h, nil
}

// UpdateAdditionalInfo stores the free text shown to clients on the
// booking page (meeting links and the like).
func (s *DefaultHostService) UpdateAdditionalInfo(ctx context.Context, hostID, info string) error {
	if err := s.Repo.UpdateAdditionalInfo(ctx, hostID, info); err != nil {
		return fmt.Errorf("failed to update host info: %w", err)
	}
	return nil
}
