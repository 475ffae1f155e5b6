package domain

import "time"

const (
	// RoleAdmin can administer the catalog on top of everything staff can do.
	RoleAdmin = "admin"
	// RoleStaff can view the catalog and move stock in and out.
	RoleStaff = "staff"
)

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName is what the stock ledger shows for the acting user.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}

	return u.Email
}
