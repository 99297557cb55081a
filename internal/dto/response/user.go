package response

type User struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      UserRole `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
