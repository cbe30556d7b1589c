package usecase

import (
	"math"
	"time"

	"portal_posvenda/internal/domain/entities"
)

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// buildMetrics aggregates the dashboard numbers over a snapshot of requests.
func buildMetrics(requests []entities.WarrantyRequestFlow, calc *SLACalculator, now time.Time) entities.WarrantyMetrics {
	today := startOfDay(now)
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, 0, -30)

	m := entities.WarrantyMetrics{
		StageDistribution:  make(map[entities.WarrantyStage]int),
		AverageTimeByStage: make(map[entities.WarrantyStage]int),
		ByType:             make(map[string]entities.CategoryBreakdown),
		ByPriority:         make(map[entities.Priority]int),
	}
	for _, s := range entities.AllStages() {
		m.StageDistribution[s] = 0
	}
	for _, p := range entities.AllPriorities() {
		m.ByPriority[p] = 0
	}

	var resolutionTotal float64
	resolved := 0
	stageTotals := map[entities.WarrantyStage]float64{}
	stageCounts := map[entities.WarrantyStage]int{}
	byCategory := map[string][]entities.WarrantyRequestFlow{}

	for _, r := range requests {
		m.StageDistribution[r.CurrentStage]++
		m.ByPriority[r.Priority]++
		byCategory[r.Category] = append(byCategory[r.Category], r)

		if !r.CreatedAt.Before(today) {
			m.OpenedToday++
		}
		if !r.CreatedAt.Before(weekAgo) {
			m.OpenedThisWeek++
		}
		if !r.CreatedAt.Before(monthAgo) {
			m.OpenedThisMonth++
		}

		if !r.IsFinal() {
			m.TotalOpen++
			switch calc.DeadlineInfo(r, now).Status {
			case entities.SLAStatusOnTrack:
				m.OnTrackCount++
			case entities.SLAStatusWarning:
				m.WarningCount++
			case entities.SLAStatusExpired:
				m.ExpiredCount++
			}
		}

		if r.CurrentStage == entities.WarrantyStageCompleted {
			if done, ok := r.CompletionDate(); ok && !done.Before(monthAgo) {
				m.CompletedThisMonth++
				resolutionTotal += done.Sub(r.CreatedAt).Hours()
				resolved++
			}
		}

		for i := 1; i < len(r.History); i++ {
			prev := r.History[i-1]
			stageTotals[prev.ToStatus] += r.History[i].ChangedAt.Sub(prev.ChangedAt).Hours()
			stageCounts[prev.ToStatus]++
		}
	}

	m.AverageResolutionTime = int(math.Round(resolutionTotal / float64(max(1, resolved))))
	for stage, total := range stageTotals {
		m.AverageTimeByStage[stage] = int(math.Round(total / float64(stageCounts[stage])))
	}

	highest := 0
	for _, s := range entities.AllStages() {
		if entities.IsFinalStage(s) {
			continue
		}
		if n := m.StageDistribution[s]; n > highest {
			highest = n
			m.BottleneckStage = s
		}
	}

	m.SLAComplianceRate = calc.ComplianceRate(requests)
	m.AverageTimeByType = calc.AverageTimeByCategory(requests)
	for category, rs := range byCategory {
		m.ByType[category] = entities.CategoryBreakdown{
			Total:         len(rs),
			AvgTime:       m.AverageTimeByType[category],
			SLACompliance: calc.ComplianceRate(rs),
		}
	}
	return m
}
