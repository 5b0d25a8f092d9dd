package entity

import "time"

// SavedJobPost representa el guardado (bookmark) de un aviso por un usuario.
// Único por par (job_id, user_id).
type SavedJobPost struct {
	ID        string
	JobID     string
	UserID    string
	CreatedAt time.Time
}
