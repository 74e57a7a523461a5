package models

// Post represents a blog post with its owned comments
type Post struct {
	ID          int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null;uniqueIndex"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Content     string    `json:"content" db:"content" gorm:"type:text;not null"`
	CategoryID  int64     `json:"categoryId" db:"category_id" gorm:"not null;index"`
	Comments    []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}
