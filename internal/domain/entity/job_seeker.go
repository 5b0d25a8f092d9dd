package entity

import "time"

// JobSeeker representa el perfil de un candidato. Pertenece a exactamente
// un User (user_id único).
type JobSeeker struct {
	ID        string
	UserID    string
	Name      string
	About     string
	Resume    string // URL de la hoja de vida subida
	CreatedAt time.Time
	UpdatedAt time.Time
}
