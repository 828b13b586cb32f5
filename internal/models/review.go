package models

import "time"

// ReviewAction is a reviewer's decision on a submission.
type ReviewAction string

const (
	// ReviewActionApprove accepts the content.
	ReviewActionApprove ReviewAction = "approve"
	// ReviewActionRequestRevision sends the content back for rework.
	ReviewActionRequestRevision ReviewAction = "request_revision"
	// ReviewActionReject declines the content permanently.
	ReviewActionReject ReviewAction = "reject"
)

// StatusAfter maps a review action onto the submission status it produces.
func (a ReviewAction) StatusAfter() SubmissionStatus {
	switch a {
	case ReviewActionApprove:
		return SubmissionStatusApproved
	case ReviewActionRequestRevision:
		return SubmissionStatusRevisionRequested
	case ReviewActionReject:
		return SubmissionStatusRejected
	}
	return ""
}

// SubmissionReview is one reviewer decision. Rows are append-only: they are
// created exactly once per decision and never updated or deleted. The
// request_revision rows for a submission are what the revision cap counts.
type SubmissionReview struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	SubmissionID uint         `gorm:"not null;index:idx_submission_action" json:"submission_id"`
	ReviewerID   uint         `gorm:"not null" json:"reviewer_id"`
	Reviewer     *User        `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Action       ReviewAction `gorm:"type:varchar(20);not null;index:idx_submission_action" json:"action"`
	FeedbackText string       `gorm:"type:text" json:"feedback_text"`
	CreatedAt    time.Time    `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (SubmissionReview) TableName() string {
	return "submission_reviews"
}
