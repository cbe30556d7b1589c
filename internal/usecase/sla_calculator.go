package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"portal_posvenda/internal/domain/entities"
)

const (
	BusinessHoursPerDay          = 8
	DefaultWarningThresholdHours = 8
	warningPercentage            = 20.0
)

type slaConfigSource interface {
	Get(category string) entities.SLAConfig
}

// SLACalculator projects stage deadlines over business days.
//
// The projection walks whole days from the stage start and credits 8 hours
// per weekday, so a partial-day budget rounds up to a full business day.
// Weekdays are evaluated in the location of the start time.
type SLACalculator struct {
	configs slaConfigSource
}

func NewSLACalculator(configs slaConfigSource) *SLACalculator {
	return &SLACalculator{configs: configs}
}

// CalculateDeadline returns the instant at which slaHours business hours have elapsed.
func CalculateDeadline(start time.Time, slaHours int) time.Time {
	deadline := start
	added := 0
	for added < slaHours {
		deadline = deadline.AddDate(0, 0, 1)
		if wd := deadline.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added += BusinessHoursPerDay
		}
	}
	return deadline
}

// ClassifySLA derives the remaining percentage and traffic-light status.
func ClassifySLA(hoursRemaining, slaHours int) (float64, entities.SLAStatus) {
	pct := 100.0
	if slaHours > 0 {
		pct = math.Max(0, math.Min(100, 100*float64(hoursRemaining)/float64(slaHours)))
	}

	switch {
	case hoursRemaining <= 0:
		return pct, entities.SLAStatusExpired
	case pct <= warningPercentage:
		return pct, entities.SLAStatusWarning
	default:
		return pct, entities.SLAStatusOnTrack
	}
}

func hoursUntil(deadline, now time.Time) int {
	h := int(math.Floor(deadline.Sub(now).Hours()))
	if h < 0 {
		return 0
	}
	return h
}

// DeadlineInfo computes the SLA state of r's current stage at now.
func (c *SLACalculator) DeadlineInfo(r entities.WarrantyRequestFlow, now time.Time) entities.SLADeadlineInfo {
	slaHours := c.configs.Get(r.Category).HoursForStage(r.CurrentStage)
	deadline := CalculateDeadline(r.StageStartedAt, slaHours)
	remaining := hoursUntil(deadline, now)
	pct, status := ClassifySLA(remaining, slaHours)

	return entities.SLADeadlineInfo{
		Stage:               r.CurrentStage,
		StartedAt:           r.StageStartedAt,
		Deadline:            deadline,
		HoursRemaining:      remaining,
		PercentageRemaining: pct,
		Status:              status,
	}
}

// StageBudget returns the SLA hours that govern r's current stage.
func (c *SLACalculator) StageBudget(r entities.WarrantyRequestFlow) int {
	return c.configs.Get(r.Category).HoursForStage(r.CurrentStage)
}

// CheckSLAWarnings returns requests in warning, or on track with at most thresholdHours left.
func (c *SLACalculator) CheckSLAWarnings(requests []entities.WarrantyRequestFlow, thresholdHours int, now time.Time) []entities.WarrantyRequestFlow {
	var out []entities.WarrantyRequestFlow
	for _, r := range requests {
		info := c.DeadlineInfo(r, now)
		if info.Status == entities.SLAStatusWarning ||
			(info.Status == entities.SLAStatusOnTrack && info.HoursRemaining <= thresholdHours) {
			out = append(out, r)
		}
	}
	return out
}

func (c *SLACalculator) CheckExpiredSLAs(requests []entities.WarrantyRequestFlow, now time.Time) []entities.WarrantyRequestFlow {
	var out []entities.WarrantyRequestFlow
	for _, r := range requests {
		if c.DeadlineInfo(r, now).Status == entities.SLAStatusExpired {
			out = append(out, r)
		}
	}
	return out
}

// SortByUrgency returns a copy ordered by SLA status, then priority, then hours remaining.
// Ties keep their input order.
func (c *SLACalculator) SortByUrgency(requests []entities.WarrantyRequestFlow, now time.Time) []entities.WarrantyRequestFlow {
	type ranked struct {
		r    entities.WarrantyRequestFlow
		info entities.SLADeadlineInfo
	}
	items := make([]ranked, len(requests))
	for i, r := range requests {
		items[i] = ranked{r: r, info: c.DeadlineInfo(r, now)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if ra, rb := a.info.Status.Rank(), b.info.Status.Rank(); ra != rb {
			return ra < rb
		}
		if pa, pb := a.r.Priority.Rank(), b.r.Priority.Rank(); pa != pb {
			return pa < pb
		}
		return a.info.HoursRemaining < b.info.HoursRemaining
	})

	out := make([]entities.WarrantyRequestFlow, len(items))
	for i, it := range items {
		out[i] = it.r
	}
	return out
}

// ComplianceRate is the rounded share of completed requests finished within
// the category's total budget counted from creation. It is 100 when nothing is completed.
func (c *SLACalculator) ComplianceRate(requests []entities.WarrantyRequestFlow) int {
	completed, onTime := 0, 0
	for _, r := range requests {
		if r.CurrentStage != entities.WarrantyStageCompleted {
			continue
		}
		completed++
		done, ok := r.CompletionDate()
		if !ok {
			continue
		}
		deadline := CalculateDeadline(r.CreatedAt, c.configs.Get(r.Category).TotalHours)
		if !done.After(deadline) {
			onTime++
		}
	}
	if completed == 0 {
		return 100
	}
	return int(math.Round(float64(onTime) / float64(completed) * 100))
}

// AverageTimeByCategory averages creation-to-completion hours per category.
func (c *SLACalculator) AverageTimeByCategory(requests []entities.WarrantyRequestFlow) map[string]int {
	type acc struct {
		total float64
		count int
	}
	byCategory := map[string]*acc{}
	for _, r := range requests {
		done, ok := r.CompletionDate()
		if !ok {
			continue
		}
		a := byCategory[r.Category]
		if a == nil {
			a = &acc{}
			byCategory[r.Category] = a
		}
		a.total += done.Sub(r.CreatedAt).Hours()
		a.count++
	}

	out := make(map[string]int, len(byCategory))
	for category, a := range byCategory {
		out[category] = int(math.Round(a.total / float64(a.count)))
	}
	return out
}

// FormatRemainingTime renders hours left for display.
func FormatRemainingTime(hoursRemaining int) string {
	if hoursRemaining <= 0 {
		return "Atrasado"
	}
	if hoursRemaining < 24 {
		return fmt.Sprintf("%dh restantes", hoursRemaining)
	}

	days := hoursRemaining / 24
	hours := hoursRemaining % 24
	if hours == 0 {
		if days > 1 {
			return fmt.Sprintf("%d dias restantes", days)
		}
		return fmt.Sprintf("%d dia restante", days)
	}
	return fmt.Sprintf("%dd %dh restantes", days, hours)
}
