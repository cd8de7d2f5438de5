package domain

// Session is the client-held proof of authentication: the opaque bearer
// token plus the cached user snapshot. Token and user are set and cleared
// together; a session missing either half is not valid for protected flows.
type Session struct {
	Token string
	User  *User
}

// Valid reports whether the session carries both the token and the user
// snapshot.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User != nil
}
