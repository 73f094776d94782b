package model

// TeamMember is one entry in the fixed team roster.
type TeamMember struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	JoinDate   string `json:"joinDate"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// Avatar returns the single-letter avatar shown next to the member.
func (m TeamMember) Avatar() string {
	if m.Name == "" {
		return "?"
	}
	return string([]rune(m.Name)[0])
}
