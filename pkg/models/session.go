package models

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleSystem  Role = "system"
)

// Session identifies who is acting. It is passed explicitly into every
// user-initiated operation instead of living in a process-wide client.
type Session struct {
	UserID string
	Role   Role
}

func SystemSession() Session {
	return Session{UserID: "system", Role: RoleSystem}
}

func (s Session) IsZero() bool {
	return s.UserID == ""
}
