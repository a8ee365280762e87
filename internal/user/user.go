package user

// User is the single authoritative identity record. Password holds the
// bcrypt hash and is stripped from every API response.
type User struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
	Role      string  `json:"role"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}
