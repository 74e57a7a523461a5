package models

// Comment represents a reader comment; the owning post never changes after creation
type Comment struct {
	ID     int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name   string `json:"name" db:"name" gorm:"type:text;not null"`
	Email  string `json:"email" db:"email" gorm:"type:text;not null"`
	Body   string `json:"body" db:"body" gorm:"type:text;not null"`
	PostID int64  `json:"postId" db:"post_id" gorm:"not null;index"`
}
