package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartWeekAndMonthAreFixed(t *testing.T) {
	s := NewStatsService()
	now := time.Now()

	week := s.Chart(PeriodWeek, now)
	require.Len(t, week.Labels, 7)
	assert.Equal(t, []int{12000, 19000, 15000, 22000, 18000, 25000, 28000}, week.Datasets[0].Data)
	assert.Equal(t, []int{8000, 11000, 9000, 14000, 12000, 16000, 15000}, week.Datasets[1].Data)

	month := s.Chart(PeriodMonth, now)
	require.Len(t, month.Labels, 4)
	assert.Equal(t, []int{85000, 92000, 78000, 105000}, month.Datasets[0].Data)

	// Unknown periods fall back to week
	assert.Equal(t, week, s.Chart("quarter", now))
}

func TestChartYearSeededByYear(t *testing.T) {
	s := NewStatsService()
	in2026 := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	in2027 := time.Date(2027, time.June, 1, 0, 0, 0, 0, time.UTC)

	first := s.Chart(PeriodYear, in2026)
	second := s.Chart(PeriodYear, in2026)
	assert.Equal(t, first, second)

	other := s.Chart(PeriodYear, in2027)
	assert.NotEqual(t, first.Datasets[0].Data, other.Datasets[0].Data)

	require.Len(t, first.Datasets, 2)
	for i, revenue := range first.Datasets[0].Data {
		assert.GreaterOrEqual(t, revenue, 80000)
		assert.LessOrEqual(t, revenue, 150000)
		assert.Equal(t, int(float64(revenue)*0.6), first.Datasets[1].Data[i])
	}
}

func TestSampleStatisticsValues(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	stats := SampleStatistics(now)

	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), stats.RecordDate)
	assert.Equal(t, float64(156420), stats.Revenue)
	assert.Equal(t, 12847, stats.ActiveUsers)
	assert.Equal(t, 342, stats.CompletedProjects)
	assert.Equal(t, 24.8, stats.ConversionRate)
	assert.Equal(t, float64(100), stats.TotalSales())
}
