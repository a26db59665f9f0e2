package stats

import (
	"testing"
	"time"

	"buildboard/internal/models"
)

func build(number int64, result string, timestamp, duration int64) models.BuildDetails {
	return models.BuildDetails{BuildInfo: models.BuildInfo{
		Number:    number,
		Result:    result,
		Timestamp: timestamp,
		Duration:  duration,
	}}
}

func TestSummarize(t *testing.T) {
	builds := []models.BuildDetails{
		build(3, models.ResultSuccess, 0, 10000),
		build(2, models.ResultFailure, 0, 20000),
		build(1, models.ResultSuccess, 0, 30000),
	}
	got := Summarize(builds)
	want := models.BuildStatistics{
		TotalBuilds:     3,
		SuccessCount:    2,
		FailureCount:    1,
		SuccessRate:     67,
		AverageDuration: 20,
	}
	if got != want {
		t.Fatalf("unexpected statistics: %+v", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if got != (models.BuildStatistics{}) {
		t.Fatalf("expected zero shape, got %+v", got)
	}
}

func TestSummarizeCountsBounded(t *testing.T) {
	builds := []models.BuildDetails{
		build(4, models.ResultSuccess, 0, 1000),
		build(3, models.ResultUnstable, 0, 1000),
		build(2, models.ResultAborted, 0, 1000),
		build(1, "", 0, 1000), // still running
	}
	got := Summarize(builds)
	known := got.SuccessCount + got.FailureCount + got.UnstableCount + got.AbortedCount
	if known > got.TotalBuilds {
		t.Fatalf("known results %d exceed total %d", known, got.TotalBuilds)
	}
	if known == got.TotalBuilds {
		t.Fatalf("running build should not count as a known result")
	}
}

func TestBucketByDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	nowMs := now.UnixMilli()
	hour := int64(time.Hour / time.Millisecond)

	builds := []models.BuildDetails{
		build(3, models.ResultSuccess, nowMs-2*hour, 10000),  // last bucket
		build(2, models.ResultFailure, nowMs-30*hour, 20000), // second-to-last bucket
		build(1, models.ResultSuccess, nowMs-200*hour, 5000), // outside 7-day window
	}
	points := BucketByDay(builds, 7, now)
	if len(points) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(points))
	}
	seen := make(map[string]bool)
	for i, p := range points {
		if seen[p.Date] {
			t.Fatalf("duplicate date %s", p.Date)
		}
		seen[p.Date] = true
		if i > 0 && points[i-1].Date >= p.Date {
			t.Fatalf("dates out of order: %s then %s", points[i-1].Date, p.Date)
		}
	}
	last := points[6]
	if last.SuccessCount != 1 || last.FailureCount != 0 || last.AverageDuration != 10 {
		t.Fatalf("unexpected last bucket: %+v", last)
	}
	prev := points[5]
	if prev.FailureCount != 1 || prev.AverageDuration != 20 {
		t.Fatalf("unexpected second-to-last bucket: %+v", prev)
	}
	for _, p := range points[:5] {
		if p.SuccessCount != 0 || p.FailureCount != 0 || p.AverageDuration != 0 {
			t.Fatalf("expected empty bucket, got %+v", p)
		}
	}
}

func TestBucketByDayEmptyInput(t *testing.T) {
	points := BucketByDay(nil, 3, time.Now())
	if len(points) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(points))
	}
	for _, p := range points {
		if p.SuccessCount != 0 || p.FailureCount != 0 || p.AverageDuration != 0 {
			t.Fatalf("expected zero bucket, got %+v", p)
		}
	}
}

func TestStatusHistogram(t *testing.T) {
	builds := []models.BuildDetails{
		build(4, models.ResultSuccess, 0, 0),
		build(3, models.ResultSuccess, 0, 0),
		build(2, models.ResultFailure, 0, 0),
		build(1, "", 0, 0),
	}
	entries := StatusHistogram(builds)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Status != models.ResultSuccess || entries[0].Count != 2 || entries[0].Percentage != 50 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[2].Status != "UNKNOWN" || entries[2].Count != 1 {
		t.Fatalf("unexpected unknown entry: %+v", entries[2])
	}
	sum := 0
	for _, e := range entries {
		sum += e.Percentage
	}
	if sum < 100-len(entries) || sum > 100+len(entries) {
		t.Fatalf("percentages sum %d too far from 100", sum)
	}
}

func TestStatusHistogramEmpty(t *testing.T) {
	entries := StatusHistogram(nil)
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty slice, got %v", entries)
	}
}

func TestDurationTrend(t *testing.T) {
	builds := []models.BuildDetails{
		build(5, models.ResultSuccess, 0, 15000),
		build(4, models.ResultSuccess, 0, 30400),
		build(3, models.ResultFailure, 0, 9800),
	}
	points := DurationTrend(builds, 2)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	// Oldest of the considered window first.
	if points[0].BuildNumber != 4 || points[0].Duration != 30 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].BuildNumber != 5 || points[1].Duration != 15 {
		t.Fatalf("unexpected second point: %+v", points[1])
	}

	all := DurationTrend(builds, 10)
	if len(all) != 3 {
		t.Fatalf("expected min(limit, len) points, got %d", len(all))
	}
	for _, p := range all {
		if p.Duration < 0 {
			t.Fatalf("negative duration: %+v", p)
		}
	}
}

func TestDashboardOverview(t *testing.T) {
	jobs := []models.Job{
		{Name: "stable", LastBuild: &models.BuildInfo{Number: 10, Result: models.ResultSuccess}},
		{Name: "flaky", LastBuild: &models.BuildInfo{Number: 4, Result: models.ResultFailure, Building: true}},
	}
	got := DashboardOverview(jobs)
	want := models.DashboardOverview{
		TotalJobs:      2,
		TotalBuilds:    2,
		SuccessRate:    50,
		ActiveBuilds:   1,
		RecentFailures: 1,
	}
	if got != want {
		t.Fatalf("unexpected overview: %+v", got)
	}
}

func TestDashboardOverviewNeverBuilt(t *testing.T) {
	got := DashboardOverview([]models.Job{{Name: "new"}})
	if got.TotalJobs != 1 || got.TotalBuilds != 0 || got.SuccessRate != 0 {
		t.Fatalf("unexpected overview: %+v", got)
	}
}
