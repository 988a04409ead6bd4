package models

import "time"

// Departments a staff member can belong to.
const (
	DeptScience    = "Science"
	DeptArts       = "Arts"
	DeptCommercial = "Commercial"
)

type Staff struct {
	ID        uint      `gorm:"primaryKey" yaml:"-"`
	CreatedAt time.Time `yaml:"-"`
	UpdatedAt time.Time `yaml:"-"`

	Name         string   `yaml:"name"`
	Department   string   `gorm:"index" yaml:"department"` // Science | Arts | Commercial
	Subjects     []string `gorm:"serializer:json" yaml:"subjects"`
	Experience   int      `yaml:"experience"` // years
	WAECPassRate float64  `gorm:"column:waec_pass_rate" yaml:"waecPassRate"`
	Bio          string   `yaml:"bio"`
	CVLink       string   `yaml:"cvLink"`
	Photo        string   `yaml:"photo"`
}

type SubjectScore struct {
	Name  string `json:"name" yaml:"name"`
	Score int    `json:"score" yaml:"score"` // 0..100
	Grade string `json:"grade" yaml:"grade"`
}

// Term: "First Term", "Second Term", "Third Term"
type Result struct {
	ID        uint      `gorm:"primaryKey" yaml:"-"`
	CreatedAt time.Time `yaml:"-"`
	UpdatedAt time.Time `yaml:"-"`

	AdmissionID  string         `gorm:"index" yaml:"id"`
	Pin          string         `yaml:"pin"`
	Name         string         `yaml:"name"`
	Class        string         `yaml:"class"`
	Term         string         `yaml:"term"`
	Session      string         `yaml:"session"`
	Subjects     []SubjectScore `gorm:"serializer:json" yaml:"subjects"`
	OverallScore int            `yaml:"overallScore"`
	OverallGrade string         `yaml:"overallGrade"`
	Position     string         `yaml:"position"`
	Comments     string         `yaml:"comments"`
}
