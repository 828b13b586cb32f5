package models

import "time"

// ProofStatus defines lifecycle states for a proof of posting.
type ProofStatus string

const (
	// ProofStatusSubmitted indicates the proof is awaiting verification.
	ProofStatusSubmitted ProofStatus = "submitted"
	// ProofStatusVerified indicates an admin confirmed the published post.
	ProofStatusVerified ProofStatus = "verified"
)

// EngagementSnapshot is an optional metrics snapshot captured with a proof.
// All counts are non-negative; nil pointers mean "not reported".
type EngagementSnapshot struct {
	Likes    *int64 `json:"likes,omitempty"`
	Comments *int64 `json:"comments,omitempty"`
	Views    *int64 `json:"views,omitempty"`
	Shares   *int64 `json:"shares,omitempty"`
}

// ProofOfPosting is the terminal record of the submission workflow: the
// creator's evidence that approved content went live on the platform.
// The unique index on SubmissionID enforces at most one proof per submission.
type ProofOfPosting struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	SubmissionID uint                `gorm:"not null;uniqueIndex" json:"submission_id"`
	Submission   *Submission         `gorm:"foreignKey:SubmissionID" json:"submission,omitempty"`
	ProofURL     string              `gorm:"not null" json:"proof_url"`
	PostedAt     time.Time           `json:"posted_at"`
	Status       ProofStatus         `gorm:"type:varchar(20);not null;default:'submitted'" json:"status"`
	Metrics      *EngagementSnapshot `gorm:"serializer:json" json:"metrics,omitempty"`
	Notes        string              `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (ProofOfPosting) TableName() string {
	return "proofs"
}
