package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/smartdash/dashboard-api/internal/database"
	"github.com/smartdash/dashboard-api/internal/models"

	"gorm.io/gorm"
)

// Chart periods accepted by the chart endpoint
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// ChartDataset is one series of the performance overview chart
type ChartDataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
	Color string `json:"color"`
}

// ChartData is the label/series payload consumed by the frontend chart
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// StatsService reads and aggregates daily statistics
type StatsService struct{}

// NewStatsService creates a new statistics service
func NewStatsService() *StatsService {
	return &StatsService{}
}

// LatestOrSeed returns the most recent statistics row. When the table is
// empty it creates one with fixed sample values, so the dashboard always
// has something to show.
func (s *StatsService) LatestOrSeed() (*models.Statistics, error) {
	db := database.GetDB()

	var latest models.Statistics
	err := db.Order("record_date desc").First(&latest).Error
	if err == nil {
		return &latest, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}

	latest = SampleStatistics(time.Now())
	if err := db.Create(&latest).Error; err != nil {
		return nil, fmt.Errorf("failed to create sample statistics: %w", err)
	}
	return &latest, nil
}

// SampleStatistics builds the fixed placeholder row used when no real
// figures have been recorded yet
func SampleStatistics(now time.Time) models.Statistics {
	year, month, day := now.Date()
	return models.Statistics{
		RecordDate:         time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Revenue:            156420,
		ActiveUsers:        12847,
		CompletedProjects:  342,
		ConversionRate:     24.8,
		ProductsSales:      35,
		ServicesSales:      25,
		SubscriptionsSales: 25,
		ConsultingSales:    15,
	}
}

// Chart returns the performance overview series for a period. Week and
// month use fixed figures; year figures are pseudo-random but seeded by
// the calendar year so repeated calls return identical data.
func (s *StatsService) Chart(period string, now time.Time) ChartData {
	var labels []string
	var revenue, expenses []int

	switch period {
	case PeriodMonth:
		labels = []string{"Week 1", "Week 2", "Week 3", "Week 4"}
		revenue = []int{85000, 92000, 78000, 105000}
		expenses = []int{55000, 62000, 48000, 70000}
	case PeriodYear:
		labels = []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		}
		rng := rand.New(rand.NewSource(int64(now.Year())))
		revenue = make([]int, 12)
		expenses = make([]int, 12)
		for i := range revenue {
			revenue[i] = 80000 + rng.Intn(70001)
			expenses[i] = int(float64(revenue[i]) * 0.6)
		}
	default: // week
		labels = []string{"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
		revenue = []int{12000, 19000, 15000, 22000, 18000, 25000, 28000}
		expenses = []int{8000, 11000, 9000, 14000, 12000, 16000, 15000}
	}

	return ChartData{
		Labels: labels,
		Datasets: []ChartDataset{
			{Label: "Revenue", Data: revenue, Color: "#00d9ff"},
			{Label: "Expenses", Data: expenses, Color: "#8b5cf6"},
		},
	}
}
