package domain

import "time"

type PageView struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	PageName  string    `json:"page_name" gorm:"size:255;not null;index"`
	IPAddress string    `json:"ip_address" gorm:"size:45"`
	UserAgent string    `json:"user_agent" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

// Aggregate rows returned by the statistics queries.

type DailyViews struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

type MonthlyViews struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Views int64 `json:"views"`
}

type YearlyViews struct {
	Year  int   `json:"year"`
	Views int64 `json:"views"`
}

type PageViews struct {
	PageName string `json:"page_name"`
	Views    int64  `json:"views"`
}

type ViewStatistics struct {
	DailyViews   []DailyViews   `json:"daily_views"`
	MonthlyViews []MonthlyViews `json:"monthly_views"`
	YearlyViews  []YearlyViews  `json:"yearly_views"`
	PageViews    []PageViews    `json:"page_views"`
	TotalViews   int64          `json:"total_views"`
	TodayViews   int64          `json:"today_views"`
	MonthViews   int64          `json:"month_views"`
	YearViews    int64          `json:"year_views"`
}

// DashboardStats are the back-office headline counts.
type DashboardStats struct {
	TotalServices    int64  `json:"total_services"`
	TotalProduits    int64  `json:"total_produits"`
	TotalCommandes   int64  `json:"total_commandes"`
	CommandesPending int64  `json:"commandes_en_attente"`
	TotalContacts    int64  `json:"total_contacts"`
	TotalPortfolio   int64  `json:"total_portfolio"`
	RevenueTotal     string `json:"revenue_total"`
}
