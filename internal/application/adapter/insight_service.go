// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// InsightRequest represents a request for a weekly reflection insight.
type InsightRequest struct {
	UserID        uuid.UUID
	UserName      string
	PeriodStart   string
	PeriodEnd     string
	Notes         []*NoteForInsight
	TopCategories []string
	AverageMood   string
}

// NoteForInsight represents note data for insight generation.
type NoteForInsight struct {
	Category   string
	Content    string
	MoodRating int
	NotedOn    string
}

// InsightService defines the interface for AI-generated reflection insights.
type InsightService interface {
	// GenerateInsight produces a short reflective summary of the period's notes.
	GenerateInsight(ctx context.Context, request *InsightRequest) (string, error)

	// IsAvailable checks if the insight service is available and properly configured.
	IsAvailable() bool
}
