package entity

import "time"

// Company representa el perfil de una empresa que publica avisos.
// Pertenece a exactamente un User (user_id único).
type Company struct {
	ID        string
	UserID    string
	Name      string
	Location  string
	About     string
	Logo      string // URL del logo
	Website   string
	XAccount  string // handle en X/Twitter, opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}
