package db

import (
	"bitwise74/chores-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dataMigration struct {
	name string
	up   func(tx *gorm.DB) error
}

var dataMigrations = []dataMigration{
	{name: "0001_default_achievements", up: defaultAchievements},
}

func defaultAchievements(tx *gorm.DB) error {
	achievements := []model.Achievement{
		{
			Name:        "First Chore",
			Description: "Complete your first chore",
			Points:      50,
			Requirement: `{"type":"chore_count","count":1}`,
		},
		{
			Name:        "Weekly Warrior",
			Description: "Complete all weekly chores",
			Points:      100,
			Requirement: `{"type":"weekly_completion","count":1}`,
		},
	}

	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&achievements).Error
}
