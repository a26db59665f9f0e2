package jenkins

import (
	"github.com/bndr/gojenkins"

	"buildboard/internal/models"
)

func jobFromAPI(job *gojenkins.Job) models.Job {
	raw := job.Raw
	m := models.Job{
		Name:        raw.Name,
		URL:         raw.URL,
		Color:       raw.Color,
		DisplayName: raw.DisplayName,
		Description: raw.Description,
		Buildable:   raw.Buildable,
	}
	m.LastBuild = buildRef(raw.LastBuild)
	m.LastSuccessfulBuild = buildRef(raw.LastSuccessfulBuild)
	m.LastFailedBuild = buildRef(raw.LastFailedBuild)
	return m
}

// buildRef maps the shallow build pointers in a job response. Jenkins
// only includes number and URL at this depth.
func buildRef(b gojenkins.JobBuild) *models.BuildInfo {
	if b.Number == 0 {
		return nil
	}
	return &models.BuildInfo{Number: b.Number, URL: b.URL}
}

func buildFromAPI(build *gojenkins.Build) models.BuildDetails {
	raw := build.Raw
	desc, _ := raw.Description.(string)
	d := models.BuildDetails{
		BuildInfo: models.BuildInfo{
			Number:    raw.Number,
			URL:       raw.URL,
			Result:    raw.Result,
			Timestamp: raw.Timestamp,
			Duration:  int64(raw.Duration),
			Building:  raw.Building,
		},
		FullDisplayName: raw.FullDisplayName,
		Description:     desc,
	}
	for _, item := range raw.ChangeSet.Items {
		d.ChangeSet = append(d.ChangeSet, models.ChangeItem{
			Author:    item.Author.FullName,
			Msg:       item.Msg,
			Timestamp: item.Timestamp,
			CommitID:  item.CommitID,
		})
	}
	return d
}
