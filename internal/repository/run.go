package repository

import (
	"time"

	"fileset/internal/db"
	"fileset/internal/model"
)

type RunRepository struct{}

func NewRunRepository() *RunRepository {
	return &RunRepository{}
}

func (r *RunRepository) SaveSync(configPath string, full bool, report model.SyncReport, duration time.Duration) error {
	run := model.Run{
		Config:      configPath,
		Command:     model.RunSync,
		Full:        full,
		Found:       report.Found,
		Added:       report.Added,
		Changed:     report.Changed,
		Existed:     report.Existed,
		Deleted:     report.Deleted,
		Interrupted: report.Interrupted,
		Duration:    duration,
		RanAt:       time.Now(),
	}

	return db.DB.Create(&run).Error
}

func (r *RunRepository) SaveCheck(configPath string, report model.CheckReport, duration time.Duration) error {
	run := model.Run{
		Config:   configPath,
		Command:  model.RunCheck,
		Found:    report.Selected,
		Changed:  len(report.Mismatches),
		Deleted:  len(report.Missing),
		Duration: duration,
		RanAt:    time.Now(),
	}

	return db.DB.Create(&run).Error
}

func (r *RunRepository) GetRecent(limit int) ([]model.Run, error) {
	var runs []model.Run
	result := db.DB.
		Order("ran_at desc").
		Limit(limit).
		Find(&runs)

	return runs, result.Error
}

type Stats struct {
	Total       int64
	Interrupted int64
}

func (r *RunRepository) GetStats() (Stats, error) {
	var stats Stats
	if err := db.DB.Model(&model.Run{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}

	if err := db.DB.Model(&model.Run{}).
		Where("interrupted = ?", true).
		Count(&stats.Interrupted).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
