package stats

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"buildboard/internal/models"
)

type fakeSource struct {
	jobs       []models.Job
	histories  map[string][]models.BuildDetails
	lastBuilds map[string]*models.BuildInfo
	failing    map[string]bool

	mu            sync.Mutex
	historyLimits map[string]int
}

func (f *fakeSource) ListJobs(ctx context.Context) ([]models.Job, error) {
	return f.jobs, nil
}

func (f *fakeSource) BuildHistory(ctx context.Context, name string, limit int) ([]models.BuildDetails, error) {
	if f.failing[name] {
		return nil, errors.New("upstream down")
	}
	f.mu.Lock()
	if f.historyLimits == nil {
		f.historyLimits = make(map[string]int)
	}
	f.historyLimits[name] = limit
	f.mu.Unlock()
	builds := f.histories[name]
	if limit < len(builds) {
		builds = builds[:limit]
	}
	return builds, nil
}

func (f *fakeSource) LastBuild(ctx context.Context, name string) (*models.BuildInfo, error) {
	if f.failing[name] {
		return nil, errors.New("upstream down")
	}
	return f.lastBuilds[name], nil
}

func newTestService(src *fakeSource) *Service {
	return NewService(src, zap.NewNop().Sugar())
}

func TestAllJobsStatisticsIsolatesFailures(t *testing.T) {
	src := &fakeSource{
		jobs: []models.Job{{Name: "good"}, {Name: "broken"}},
		histories: map[string][]models.BuildDetails{
			"good": {
				build(7, models.ResultSuccess, 4200, 10000),
				build(6, models.ResultFailure, 4100, 20000),
			},
		},
		failing: map[string]bool{"broken": true},
	}
	entries, err := newTestService(src).AllJobsStatistics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected one entry per job, got %d", len(entries))
	}
	if entries[0].JobName != "good" || entries[0].TotalBuilds != 2 || entries[0].SuccessRate != 50 {
		t.Fatalf("unexpected good entry: %+v", entries[0])
	}
	if entries[0].LastBuildTime != 4200 {
		t.Fatalf("expected last build time from most recent build, got %d", entries[0].LastBuildTime)
	}
	if entries[1] != (models.JobStatistics{JobName: "broken"}) {
		t.Fatalf("expected zero-valued entry for broken job, got %+v", entries[1])
	}
}

func TestJobStatisticsDefaultLimit(t *testing.T) {
	src := &fakeSource{histories: map[string][]models.BuildDetails{}}
	if _, err := newTestService(src).JobStatistics(context.Background(), "app", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.historyLimits["app"] != DefaultJobStatsLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultJobStatsLimit, src.historyLimits["app"])
	}
}

func TestTimeSeriesFetchesDeepHistory(t *testing.T) {
	src := &fakeSource{histories: map[string][]models.BuildDetails{}}
	points, err := newTestService(src).TimeSeries(context.Background(), "app", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != DefaultTimeSeriesDays {
		t.Fatalf("expected %d buckets, got %d", DefaultTimeSeriesDays, len(points))
	}
	if src.historyLimits["app"] != timeSeriesFetchLimit {
		t.Fatalf("expected fetch limit %d, got %d", timeSeriesFetchLimit, src.historyLimits["app"])
	}
}

func TestDashboardEnrichesLastBuilds(t *testing.T) {
	src := &fakeSource{
		jobs: []models.Job{{Name: "a"}, {Name: "b"}, {Name: "c"}},
		lastBuilds: map[string]*models.BuildInfo{
			"a": {Number: 3, Result: models.ResultSuccess},
			"b": {Number: 9, Result: models.ResultFailure, Building: true},
		},
		failing: map[string]bool{"c": true},
	}
	got, err := newTestService(src).Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := models.DashboardOverview{
		TotalJobs:      3,
		TotalBuilds:    2,
		SuccessRate:    50,
		ActiveBuilds:   1,
		RecentFailures: 1,
	}
	if got != want {
		t.Fatalf("unexpected overview: %+v", got)
	}
}
