package models

import "time"

type User struct {
	ID           string
	Username     string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
