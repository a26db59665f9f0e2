package models

// BuildStatistics summarizes a window of builds for one job.
// AverageDuration is in whole seconds.
type BuildStatistics struct {
	TotalBuilds     int `json:"totalBuilds"`
	SuccessCount    int `json:"successCount"`
	FailureCount    int `json:"failureCount"`
	UnstableCount   int `json:"unstableCount"`
	AbortedCount    int `json:"abortedCount"`
	SuccessRate     int `json:"successRate"`
	AverageDuration int `json:"averageDuration"`
}

// JobStatistics is the per-job entry of the all-jobs overview.
type JobStatistics struct {
	JobName         string `json:"jobName"`
	TotalBuilds     int    `json:"totalBuilds"`
	SuccessRate     int    `json:"successRate"`
	AverageDuration int    `json:"averageDuration"`
	LastBuildTime   int64  `json:"lastBuildTime"`
}

// TimeSeriesPoint is one day bucket of the build time series.
type TimeSeriesPoint struct {
	Date            string `json:"date"`
	SuccessCount    int    `json:"successCount"`
	FailureCount    int    `json:"failureCount"`
	AverageDuration int    `json:"averageDuration"`
}

// StatusDistributionEntry counts builds that finished with one status.
type StatusDistributionEntry struct {
	Status     string `json:"status"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// DurationTrendPoint pairs a build number with its duration in seconds.
type DurationTrendPoint struct {
	BuildNumber int64 `json:"buildNumber"`
	Duration    int   `json:"duration"`
}

// DashboardOverview is the shallow cross-job summary shown on the
// dashboard landing page. It considers only each job's last build.
type DashboardOverview struct {
	TotalJobs      int `json:"totalJobs"`
	TotalBuilds    int `json:"totalBuilds"`
	SuccessRate    int `json:"successRate"`
	ActiveBuilds   int `json:"activeBuilds"`
	RecentFailures int `json:"recentFailures"`
}
