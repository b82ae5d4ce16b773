package domain

import (
	"math"
	"time"
)

// User is a registered account. PasswordHash never leaves the service layer.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Avatar       *string   `json:"avatar"`
	CreatedAt    time.Time `json:"-"`
}

// NewUser holds the fields required to register an account.
type NewUser struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// UserProfile is a user as seen by a particular viewer.
type UserProfile struct {
	User
	IsSubscribed bool `json:"is_subscribed"`
}

// Page is a single page of a paginated listing.
type Page struct {
	Limit  int
	Offset int
}

// DefaultPageLimit is used when the client does not ask for a page size.
const DefaultPageLimit = 6

// MaxPageLimit bounds client supplied page sizes.
const MaxPageLimit = 100

// NewPage converts limit/page query values into an offset page. Non-positive
// values fall back to defaults and page is capped so the offset cannot overflow.
func NewPage(limit, page int) Page {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if page <= 0 {
		page = 1
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return Page{Limit: limit, Offset: (page - 1) * limit}
}

// UserPage is one page of a user listing.
type UserPage struct {
	Count   int           `json:"count"`
	Results []UserProfile `json:"results"`
}
