package models

// Category groups posts. Deleting a category does not touch the posts that
// reference it; their categoryId may dangle.
type Category struct {
	ID          int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" db:"name" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text"`
}
