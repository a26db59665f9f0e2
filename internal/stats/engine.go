// Package stats computes dashboard statistics from build records. The
// functions in this file are pure: they never touch the network and
// always return a zero-valued shape for empty input.
package stats

import (
	"math"
	"time"

	"buildboard/internal/models"
)

// Summarize counts build results in a single pass.
func Summarize(builds []models.BuildDetails) models.BuildStatistics {
	s := models.BuildStatistics{TotalBuilds: len(builds)}
	for _, b := range builds {
		switch b.Result {
		case models.ResultSuccess:
			s.SuccessCount++
		case models.ResultFailure:
			s.FailureCount++
		case models.ResultUnstable:
			s.UnstableCount++
		case models.ResultAborted:
			s.AbortedCount++
		}
	}
	s.SuccessRate = percentage(s.SuccessCount, s.TotalBuilds)
	s.AverageDuration = averageDurationSeconds(builds)
	return s
}

// BucketByDay distributes builds into exactly `days` day buckets, oldest
// first, covering the trailing days*24h window ending at now. A build
// belongs to the bucket whose half-open interval [start, start+24h)
// contains its timestamp.
func BucketByDay(builds []models.BuildDetails, days int, now time.Time) []models.TimeSeriesPoint {
	if days <= 0 {
		return []models.TimeSeriesPoint{}
	}
	const dayMs = int64(24 * time.Hour / time.Millisecond)
	nowMs := now.UnixMilli()

	points := make([]models.TimeSeriesPoint, 0, days)
	for i := days; i >= 1; i-- {
		start := nowMs - int64(i)*dayMs
		end := start + dayMs

		var bucket []models.BuildDetails
		for _, b := range builds {
			if b.Timestamp >= start && b.Timestamp < end {
				bucket = append(bucket, b)
			}
		}
		p := models.TimeSeriesPoint{
			Date:            time.UnixMilli(start).UTC().Format("2006-01-02"),
			AverageDuration: averageDurationSeconds(bucket),
		}
		for _, b := range bucket {
			switch b.Result {
			case models.ResultSuccess:
				p.SuccessCount++
			case models.ResultFailure:
				p.FailureCount++
			}
		}
		points = append(points, p)
	}
	return points
}

// StatusHistogram counts builds per distinct result, in first-seen
// order. A missing result is reported as UNKNOWN. Empty input yields an
// empty slice.
func StatusHistogram(builds []models.BuildDetails) []models.StatusDistributionEntry {
	total := len(builds)
	if total == 0 {
		return []models.StatusDistributionEntry{}
	}
	counts := make(map[string]int)
	var order []string
	for _, b := range builds {
		status := b.Result
		if status == "" {
			status = "UNKNOWN"
		}
		if _, seen := counts[status]; !seen {
			order = append(order, status)
		}
		counts[status]++
	}
	entries := make([]models.StatusDistributionEntry, 0, len(order))
	for _, status := range order {
		entries = append(entries, models.StatusDistributionEntry{
			Status:     status,
			Count:      counts[status],
			Percentage: percentage(counts[status], total),
		})
	}
	return entries
}

// DurationTrend returns up to limit points ordered oldest first, with
// durations rounded to whole seconds. Input is most-recent-first, so the
// considered window is reversed.
func DurationTrend(builds []models.BuildDetails, limit int) []models.DurationTrendPoint {
	if limit <= 0 || limit > len(builds) {
		limit = len(builds)
	}
	points := make([]models.DurationTrendPoint, 0, limit)
	for i := limit - 1; i >= 0; i-- {
		b := builds[i]
		points = append(points, models.DurationTrendPoint{
			BuildNumber: b.Number,
			Duration:    int(math.Round(float64(b.Duration) / 1000)),
		})
	}
	return points
}

// DashboardOverview summarizes the fleet from each job's last build
// only. This is a deliberate shallow rollup, not a full-history one.
func DashboardOverview(jobs []models.Job) models.DashboardOverview {
	o := models.DashboardOverview{TotalJobs: len(jobs)}
	successes := 0
	for _, job := range jobs {
		last := job.LastBuild
		if last == nil {
			continue
		}
		o.TotalBuilds++
		if last.Building {
			o.ActiveBuilds++
		}
		switch last.Result {
		case models.ResultSuccess:
			successes++
		case models.ResultFailure:
			o.RecentFailures++
		}
	}
	o.SuccessRate = percentage(successes, o.TotalBuilds)
	return o
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func averageDurationSeconds(builds []models.BuildDetails) int {
	if len(builds) == 0 {
		return 0
	}
	var total int64
	for _, b := range builds {
		total += b.Duration
	}
	return int(math.Round(float64(total) / float64(len(builds)) / 1000))
}
