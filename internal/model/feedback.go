package model

// Feedback is a diner's review of a restaurant.
type Feedback struct {
	Owned
	UserName      string `json:"userName" gorm:"size:255;not null"`
	Text          string `json:"text" gorm:"type:text"`
	FoodRating    int    `json:"foodRating" gorm:"not null"`
	ServiceRating int    `json:"serviceRating" gorm:"not null"`
}

// TableName keeps the singular table name.
func (Feedback) TableName() string {
	return "feedback"
}
