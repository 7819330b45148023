package model

import (
	"time"

	"gorm.io/gorm"
)

type Test struct {
	ID                uint               `gorm:"primarykey" json:"id"`
	Title             string             `json:"title" gorm:"not null"`
	Description       string             `json:"description,omitempty" gorm:"type:text"`
	DifficultyLevel   string             `json:"difficulty_level" gorm:"type:varchar(20);not null;default:'intermediate'"` // "beginner", "intermediate", "advanced"
	IsPublished       bool               `json:"is_published" gorm:"not null;default:false;index"`
	CreatedBy         *uint              `json:"created_by,omitempty" gorm:"index"`
	ListeningSections []ListeningSection `json:"listening_sections,omitempty" gorm:"foreignKey:TestID"`
	ReadingPassages   []ReadingPassage   `json:"reading_passages,omitempty" gorm:"foreignKey:TestID"`
	WritingTasks      []WritingTask      `json:"writing_tasks,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `gorm:"index" json:"-"`
}
