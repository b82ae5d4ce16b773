// Package user manages accounts: registration, token login, profiles,
// passwords and avatars.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/Foodgram_Go/internal/auth"
	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/media"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/repository"
	"github.com/osse101/Foodgram_Go/internal/validation"
)

// Service is the account service. viewerID 0 is an anonymous visitor.
type Service interface {
	Register(ctx context.Context, input domain.NewUser) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, claims *auth.Claims)
	Get(ctx context.Context, viewerID, userID int64) (*domain.UserProfile, error)
	List(ctx context.Context, viewerID int64, page domain.Page) (*domain.UserPage, error)
	SetPassword(ctx context.Context, userID int64, current, next string) error
	SetAvatar(ctx context.Context, userID int64, img []byte) (*domain.User, error)
	DeleteAvatar(ctx context.Context, userID int64) error
}

// SubscriptionChecker answers is_subscribed for user payloads
type SubscriptionChecker interface {
	SubscribedAuthors(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error)
}

type service struct {
	repo     repository.User
	subs     SubscriptionChecker
	tokens   auth.TokenService
	images   media.Store
	cache    *userCache
	validate *validator.Validate
	hashCost int
}

// NewService creates the account service
func NewService(repo repository.User, subs SubscriptionChecker, tokens auth.TokenService, images media.Store, cacheConfig CacheConfig) Service {
	return &service{
		repo:     repo,
		subs:     subs,
		tokens:   tokens,
		images:   images,
		cache:    newUserCache(cacheConfig),
		validate: validator.New(),
		hashCost: DefaultHashCost,
	}
}

func (s *service) Register(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	u := &domain.User{
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Username:  strings.TrimSpace(input.Username),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
	}
	if err := s.validateNewUser(u, input.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)

	if err := s.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	metrics.UsersRegistered.Inc()
	logger.FromContext(ctx).Info(LogMsgUserRegistered, "user_id", u.ID)
	return u, nil
}

// Login exchanges credentials for a token. Unknown emails and wrong passwords
// produce the same error.
func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContext(ctx)

	u, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttempts.WithLabelValues(metrics.ResultFailure).Inc()
			log.Info(LogMsgLoginFailed, "reason", "unknown email")
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.ResultFailure).Inc()
		log.Info(LogMsgLoginFailed, "user_id", u.ID, "reason", "wrong password")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, u.ID)
	if err != nil {
		return "", err
	}
	metrics.LoginAttempts.WithLabelValues(metrics.ResultSuccess).Inc()
	return token, nil
}

func (s *service) Logout(ctx context.Context, claims *auth.Claims) {
	s.tokens.Revoke(ctx, claims)
}

// Get returns a profile as seen by viewerID
func (s *service) Get(ctx context.Context, viewerID, userID int64) (*domain.UserProfile, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profiles(ctx, viewerID, []domain.User{*u})
	if err != nil {
		return nil, err
	}
	return &profiles[0], nil
}

func (s *service) List(ctx context.Context, viewerID int64, page domain.Page) (*domain.UserPage, error) {
	if page.Limit <= 0 {
		page = domain.NewPage(page.Limit, 1)
	}
	users, count, err := s.repo.ListUsers(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	profiles, err := s.profiles(ctx, viewerID, users)
	if err != nil {
		return nil, err
	}
	return &domain.UserPage{Count: count, Results: profiles}, nil
}

func (s *service) SetPassword(ctx context.Context, userID int64, current, next string) error {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return passThrough(err, "failed to load user")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)) != nil {
		return domain.ErrWrongPassword
	}
	if err := validatePassword("new_password", next); err != nil {
		return err
	}
	if current == next {
		return domain.NewValidationError("new_password", MsgSamePassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.repo.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return passThrough(err, "failed to update password")
	}
	s.cache.Invalidate(userID)
	logger.FromContext(ctx).Info(LogMsgPasswordChanged, "user_id", userID)
	return nil
}

// SetAvatar stores img as the user's avatar, replacing any previous one
func (s *service) SetAvatar(ctx context.Context, userID int64, img []byte) (*domain.User, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, passThrough(err, "failed to load user")
	}

	stored, err := s.images.Save(ctx, media.DirAvatars, img)
	if err != nil {
		return nil, err
	}
	metrics.ImagesStored.WithLabelValues(media.DirAvatars).Inc()

	if err := s.repo.UpdateAvatar(ctx, userID, &stored); err != nil {
		s.removeImage(ctx, stored)
		return nil, passThrough(err, "failed to update avatar")
	}
	if u.Avatar != nil {
		s.removeImage(ctx, *u.Avatar)
	}
	s.cache.Invalidate(userID)

	u.Avatar = &stored
	return u, nil
}

func (s *service) DeleteAvatar(ctx context.Context, userID int64) error {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return passThrough(err, "failed to load user")
	}
	if u.Avatar == nil {
		return domain.ErrAvatarNotSet
	}
	if err := s.repo.UpdateAvatar(ctx, userID, nil); err != nil {
		return passThrough(err, "failed to clear avatar")
	}
	s.removeImage(ctx, *u.Avatar)
	s.cache.Invalidate(userID)
	return nil
}

// getUser reads through the cache
func (s *service) getUser(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.ErrUserNotFound
	}
	if u, ok := s.cache.Get(id); ok {
		return u, nil
	}
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, passThrough(err, "failed to load user")
	}
	s.cache.Set(u)
	return u, nil
}

// profiles decorates users with is_subscribed for viewerID in one lookup
func (s *service) profiles(ctx context.Context, viewerID int64, users []domain.User) ([]domain.UserProfile, error) {
	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	followed, err := s.subs.SubscribedAuthors(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.UserProfile, len(users))
	for i, u := range users {
		out[i] = domain.UserProfile{User: u, IsSubscribed: followed[u.ID]}
	}
	return out, nil
}

func (s *service) validateNewUser(u *domain.User, password string) error {
	switch {
	case u.Email == "":
		return domain.NewValidationError("email", MsgFieldRequired)
	case s.validate.Var(u.Email, fmt.Sprintf("email,max=%d", validation.MaxEmailLength)) != nil:
		return domain.NewValidationError("email", MsgInvalidEmail)
	case u.Username == "":
		return domain.NewValidationError("username", MsgFieldRequired)
	case !validation.ValidUsername(u.Username):
		return domain.NewValidationError("username", MsgInvalidUsername)
	case ReservedUsernames[strings.ToLower(u.Username)]:
		return domain.NewValidationError("username", MsgReservedUsername)
	case u.FirstName == "" || utf8.RuneCountInString(u.FirstName) > validation.MaxNameLength:
		return domain.NewValidationError("first_name", MsgFieldRequired)
	case u.LastName == "" || utf8.RuneCountInString(u.LastName) > validation.MaxNameLength:
		return domain.NewValidationError("last_name", MsgFieldRequired)
	}
	return validatePassword("password", password)
}

func validatePassword(field, password string) error {
	n := utf8.RuneCountInString(password)
	if n < validation.MinPasswordLength || n > validation.MaxPasswordLength {
		return domain.NewValidationError(field,
			fmt.Sprintf(MsgPasswordLength, validation.MinPasswordLength, validation.MaxPasswordLength))
	}
	return nil
}

func (s *service) removeImage(ctx context.Context, stored string) {
	if err := s.images.Delete(ctx, stored); err != nil {
		logger.FromContext(ctx).Warn(LogMsgAvatarCleanup, "image", stored, "error", err)
	}
}

func passThrough(err error, msg string) error {
	if errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
