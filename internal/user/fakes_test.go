package user

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// fakeUserRepository keeps accounts in memory and counts reads so cache
// behaviour is observable
type fakeUserRepository struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	nextID int64
	reads  int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[int64]*domain.User)}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
		if existing.Username == u.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.nextID++
	u.ID = r.nextID
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepository) ListUsers(_ context.Context, page domain.Page) ([]domain.User, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if page.Offset >= len(all) {
		return []domain.User{}, len(all), nil
	}
	end := min(page.Offset+page.Limit, len(all))
	return all[page.Offset:end], len(all), nil
}

func (r *fakeUserRepository) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *fakeUserRepository) UpdateAvatar(_ context.Context, id int64, avatar *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Avatar = avatar
	return nil
}

// fakeSubscriptions answers from a fixed follower -> authors table
type fakeSubscriptions struct {
	follows map[int64][]int64
}

func (f *fakeSubscriptions) SubscribedAuthors(_ context.Context, userID int64, authorIDs []int64) (map[int64]bool, error) {
	out := make(map[int64]bool)
	for _, followed := range f.follows[userID] {
		for _, id := range authorIDs {
			if id == followed {
				out[id] = true
			}
		}
	}
	return out, nil
}

type fakeImageStore struct {
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeImageStore) Save(_ context.Context, dir string, _ []byte) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	stored := fmt.Sprintf("%s/%d.jpg", dir, len(f.saved)+1)
	f.saved = append(f.saved, stored)
	return stored, nil
}

func (f *fakeImageStore) Delete(_ context.Context, stored string) error {
	f.deleted = append(f.deleted, stored)
	return nil
}

func (f *fakeImageStore) URL(stored string) string {
	return "/media/" + stored
}
