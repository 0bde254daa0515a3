package model

import (
	"time"
)

type Song struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
