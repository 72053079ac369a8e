package model

import "time"

// Booking reserves a table for a time window.
type Booking struct {
	Owned
	TableNum int       `json:"tableNum" gorm:"not null;index"`
	Start    time.Time `json:"start" gorm:"column:starts_at;not null"`
	End      time.Time `json:"end" gorm:"column:ends_at;not null"`
	UserName string    `json:"userName" gorm:"size:255;not null"`
}
