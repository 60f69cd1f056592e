package domain

import "time"

// Service is a catalog entry for an event service offering.
type Service struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title" gorm:"size:255;not null"`
	Slug         string    `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Description  string    `json:"description" gorm:"type:text"`
	Content      string    `json:"content" gorm:"type:text"`
	Image        string    `json:"image" gorm:"size:255"`
	Video        string    `json:"video" gorm:"size:255"`
	PriceRange   string    `json:"price_range" gorm:"size:100"`
	Duration     string    `json:"duration" gorm:"size:100"`
	Featured     bool      `json:"featured" gorm:"default:false"`
	Category     string    `json:"category" gorm:"size:100;index"`
	SousCategory string    `json:"sous_category" gorm:"size:100"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type Portfolio struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Image       string    `json:"image" gorm:"size:255;not null"`
	Category    string    `json:"category" gorm:"size:100;index"`
	Featured    bool      `json:"featured" gorm:"default:false"`
	Date        time.Time `json:"date" gorm:"type:date"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

var PortfolioCategories = []string{"mariage", "corporate", "anniversaire", "evenement_professionnel"}

func ValidPortfolioCategory(c string) bool {
	for _, known := range PortfolioCategories {
		if c == known {
			return true
		}
	}
	return false
}
