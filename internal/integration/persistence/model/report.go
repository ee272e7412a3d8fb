// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/lifesync/backend/internal/domain/entity"
)

// ReportModel represents the reports table in the database.
type ReportModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	PeriodStart   time.Time       `gorm:"type:date;not null;index"`
	PeriodEnd     time.Time       `gorm:"type:date;not null"`
	NoteCount     int             `gorm:"not null;default:0"`
	StreakDays    int             `gorm:"not null;default:0"`
	AverageMood   decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0"`
	TopCategories pq.StringArray  `gorm:"type:text[]"`
	Insight       string          `gorm:"type:text"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending'"`
	GeneratedAt   *time.Time
	DeliveredAt   *time.Time
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the ReportModel.
func (ReportModel) TableName() string {
	return "reports"
}

// ToEntity converts a ReportModel to a domain Report entity.
func (m *ReportModel) ToEntity() *entity.Report {
	return &entity.Report{
		ID:            m.ID,
		UserID:        m.UserID,
		PeriodStart:   m.PeriodStart,
		PeriodEnd:     m.PeriodEnd,
		NoteCount:     m.NoteCount,
		StreakDays:    m.StreakDays,
		AverageMood:   m.AverageMood,
		TopCategories: []string(m.TopCategories),
		Insight:       m.Insight,
		Status:        entity.ReportStatus(m.Status),
		GeneratedAt:   m.GeneratedAt,
		DeliveredAt:   m.DeliveredAt,
		CreatedAt:     m.CreatedAt,
	}
}

// ReportFromEntity creates a ReportModel from a domain Report entity.
func ReportFromEntity(report *entity.Report) *ReportModel {
	return &ReportModel{
		ID:            report.ID,
		UserID:        report.UserID,
		PeriodStart:   report.PeriodStart,
		PeriodEnd:     report.PeriodEnd,
		NoteCount:     report.NoteCount,
		StreakDays:    report.StreakDays,
		AverageMood:   report.AverageMood,
		TopCategories: pq.StringArray(report.TopCategories),
		Insight:       report.Insight,
		Status:        string(report.Status),
		GeneratedAt:   report.GeneratedAt,
		DeliveredAt:   report.DeliveredAt,
		CreatedAt:     report.CreatedAt,
	}
}
