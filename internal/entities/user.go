package entities

// User is a participant in the game session
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	IsGM bool   `json:"is_gm"`
}

// IsPlayer reports whether the user is a non-GM participant
func (u *User) IsPlayer() bool {
	return u != nil && !u.IsGM
}
