package auth

import "time"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Dashboard string    `json:"dashboard"`
	Actions   string    `json:"actions"`
}

func toSessionResponse(s *Session) SessionResponse {
	title, actions := s.Role.Menu()
	return SessionResponse{
		SessionID: s.ID,
		Username:  s.Username,
		Role:      s.Role,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.CreatedAt.Add(s.TTL),
		Dashboard: title,
		Actions:   actions,
	}
}
