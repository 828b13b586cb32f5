package models

import "time"

// SubmissionStatus defines post-submission lifecycle states.
type SubmissionStatus string

const (
	// SubmissionStatusSubmitted indicates content is awaiting review.
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	// SubmissionStatusApproved is a terminal state: the content was accepted.
	SubmissionStatusApproved SubmissionStatus = "approved"
	// SubmissionStatusRevisionRequested asks the creator to rework and resubmit.
	SubmissionStatusRevisionRequested SubmissionStatus = "revision_requested"
	// SubmissionStatusRejected is a terminal state: the content was declined.
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// IsTerminal reports whether no further review actions are allowed.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

// PaymentStatus tracks the payout state of an approved submission.
type PaymentStatus string

const (
	// PaymentStatusUnpaid is the initial state.
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	// PaymentStatusPending is set once a proof of posting is submitted.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusPaid is set when an admin settles the payout.
	PaymentStatusPaid PaymentStatus = "paid"
)

// MediaType identifies the kind of a submitted media file.
type MediaType string

const (
	// MediaTypeImage is a still image.
	MediaTypeImage MediaType = "image"
	// MediaTypeVideo is a video file.
	MediaTypeVideo MediaType = "video"
)

// MediaFile describes one uploaded content file inside a submission.
type MediaFile struct {
	URL  string    `json:"url"`
	Type MediaType `json:"type"`
	Name string    `json:"name"`
}

// MaxRevisionRequests caps how many times a reviewer may request a revision
// for a single submission over its whole life.
const MaxRevisionRequests = 2

// Submission is one piece of campaign content submitted by a creator.
// Its review history lives in the append-only SubmissionReview log;
// the revision count is always derived from that log, never stored here.
type Submission struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	CampaignID      uint             `gorm:"not null;index" json:"campaign_id"`
	Campaign        *Campaign        `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	CreatorID       uint             `gorm:"not null;index" json:"creator_id"`
	Creator         *User            `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Caption         string           `gorm:"type:text" json:"caption"`
	MediaFiles      []MediaFile      `gorm:"serializer:json" json:"media_files"`
	Hashtags        []string         `gorm:"serializer:json" json:"hashtags"`
	Platform        Platform         `gorm:"type:varchar(20);not null" json:"platform"`
	SubmissionNotes string           `gorm:"type:text" json:"submission_notes"`
	Status          SubmissionStatus `gorm:"type:varchar(20);not null;default:'submitted';index" json:"status"`
	PaymentStatus   PaymentStatus    `gorm:"type:varchar(20);not null;default:'unpaid'" json:"payment_status"`
	SubmittedAt     time.Time        `json:"submitted_at"`
	ReviewedAt      *time.Time       `json:"reviewed_at"`
	// FeedbackText holds the latest reviewer feedback; set only for
	// revision_requested and rejected, cleared on resubmission.
	FeedbackText string    `gorm:"type:text" json:"feedback_text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// RevisionCount is derived from the review log at query time.
	RevisionCount int `gorm:"-" json:"revision_count"`
}

// TableName specifies the table name for GORM.
func (Submission) TableName() string {
	return "submissions"
}

// RevisionsRemaining returns how many revision requests are still allowed,
// clamped to zero for display as "(n/2)".
func (s *Submission) RevisionsRemaining() int {
	remaining := MaxRevisionRequests - s.RevisionCount
	if remaining < 0 {
		return 0
	}
	return remaining
}
