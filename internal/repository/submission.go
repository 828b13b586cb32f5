// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"creatorhub/internal/cache"
	"creatorhub/internal/models"
	"creatorhub/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Review state errors surfaced to the service layer.
var (
	// ErrNotReviewable means the submission is not in a reviewable state.
	ErrNotReviewable = errors.New("submission is not awaiting review")
	// ErrMaxRevisions means the revision cap has been exhausted.
	ErrMaxRevisions = errors.New("maximum revision requests reached")
	// ErrNotResubmittable means the submission is not awaiting a revision.
	ErrNotResubmittable = errors.New("submission is not awaiting a revision")
)

// ResubmitInput carries the replacement content for a revision round.
type ResubmitInput struct {
	Caption         string
	MediaFiles      []models.MediaFile
	Hashtags        []string
	SubmissionNotes string
}

// SubmissionRepository defines the interface for submission data operations
type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	GetByID(ctx context.Context, id uint) (*models.Submission, error)
	ListByCampaign(ctx context.Context, campaignID uint, statuses []models.SubmissionStatus, limit, offset int) ([]*models.Submission, error)
	ListByCreator(ctx context.Context, creatorID uint, limit, offset int) ([]*models.Submission, error)
	CountByCampaignAndCreator(ctx context.Context, campaignID, creatorID uint, statuses []models.SubmissionStatus) (int64, error)
	Review(ctx context.Context, submissionID, reviewerID uint, action models.ReviewAction, feedback string) (*models.Submission, error)
	Resubmit(ctx context.Context, submissionID, creatorID uint, in ResubmitInput) (*models.Submission, error)
	ListReviews(ctx context.Context, submissionID uint) ([]*models.SubmissionReview, error)
	UpdatePaymentStatus(ctx context.Context, submissionID uint, status models.PaymentStatus) error
}

// submissionRepository implements SubmissionRepository
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	defer observability.ObserveQuery("create", "submissions", time.Now())
	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now().UTC()
	}
	submission.Status = models.SubmissionStatusSubmitted
	submission.PaymentStatus = models.PaymentStatusUnpaid
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepository) GetByID(ctx context.Context, id uint) (*models.Submission, error) {
	defer observability.ObserveQuery("get", "submissions", time.Now())
	var submission models.Submission
	err := r.db.WithContext(ctx).
		Preload("Campaign").
		Preload("Creator").
		First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	if err := r.loadRevisionCounts(ctx, r.db, []*models.Submission{&submission}); err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) ListByCampaign(ctx context.Context, campaignID uint, statuses []models.SubmissionStatus, limit, offset int) ([]*models.Submission, error) {
	defer observability.ObserveQuery("list", "submissions", time.Now())
	var submissions []*models.Submission
	q := r.db.WithContext(ctx).
		Preload("Creator").
		Where("campaign_id = ?", campaignID)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	err := q.Order("submitted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	if err := r.loadRevisionCounts(ctx, r.db, submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) ListByCreator(ctx context.Context, creatorID uint, limit, offset int) ([]*models.Submission, error) {
	defer observability.ObserveQuery("list", "submissions", time.Now())
	var submissions []*models.Submission
	err := r.db.WithContext(ctx).
		Preload("Campaign").
		Where("creator_id = ?", creatorID).
		Order("submitted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	if err := r.loadRevisionCounts(ctx, r.db, submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) CountByCampaignAndCreator(ctx context.Context, campaignID, creatorID uint, statuses []models.SubmissionStatus) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("campaign_id = ? AND creator_id = ?", campaignID, creatorID)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	err := q.Count(&count).Error
	return count, err
}

// Review applies one reviewer decision inside a single transaction. The
// submission row is locked FOR UPDATE so concurrent reviewers serialize:
// the revision count is read under the lock, the cap is enforced, and the
// review row plus the status update commit or roll back together.
func (r *submissionRepository) Review(ctx context.Context, submissionID, reviewerID uint, action models.ReviewAction, feedback string) (*models.Submission, error) {
	defer observability.ObserveQuery("review", "submissions", time.Now())
	var submission models.Submission

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&submission, submissionID).Error; err != nil {
			return err
		}

		if submission.Status != models.SubmissionStatusSubmitted {
			return ErrNotReviewable
		}

		if action == models.ReviewActionRequestRevision {
			var used int64
			if err := tx.Model(&models.SubmissionReview{}).
				Where("submission_id = ? AND action = ?", submissionID, models.ReviewActionRequestRevision).
				Count(&used).Error; err != nil {
				return err
			}
			if used >= models.MaxRevisionRequests {
				observability.RevisionCapRejections.Inc()
				return ErrMaxRevisions
			}
			submission.RevisionCount = int(used) + 1
		}

		review := models.SubmissionReview{
			SubmissionID: submissionID,
			ReviewerID:   reviewerID,
			Action:       action,
			FeedbackText: feedback,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		submission.Status = action.StatusAfter()
		submission.ReviewedAt = &now
		if action == models.ReviewActionApprove {
			submission.FeedbackText = ""
		} else {
			submission.FeedbackText = feedback
		}

		return tx.Model(&models.Submission{}).
			Where("id = ?", submissionID).
			Updates(map[string]any{
				"status":        submission.Status,
				"reviewed_at":   submission.ReviewedAt,
				"feedback_text": submission.FeedbackText,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	observability.ReviewsTotal.WithLabelValues(string(action)).Inc()
	cache.InvalidateSubmission(ctx, submissionID)
	return &submission, nil
}

// Resubmit replaces the content of a revision_requested submission and puts
// it back into the review queue. The same row is reused so the review log,
// and with it the revision count, carries across rounds.
func (r *submissionRepository) Resubmit(ctx context.Context, submissionID, creatorID uint, in ResubmitInput) (*models.Submission, error) {
	defer observability.ObserveQuery("resubmit", "submissions", time.Now())
	var submission models.Submission

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND creator_id = ?", submissionID, creatorID).
			First(&submission).Error; err != nil {
			return err
		}

		if submission.Status != models.SubmissionStatusRevisionRequested {
			return ErrNotResubmittable
		}

		now := time.Now().UTC()
		submission.Caption = in.Caption
		submission.MediaFiles = in.MediaFiles
		submission.Hashtags = in.Hashtags
		submission.SubmissionNotes = in.SubmissionNotes
		submission.Status = models.SubmissionStatusSubmitted
		submission.FeedbackText = ""
		submission.SubmittedAt = now
		submission.ReviewedAt = nil

		return tx.Save(&submission).Error
	})
	if err != nil {
		return nil, err
	}

	if err := r.loadRevisionCounts(ctx, r.db, []*models.Submission{&submission}); err != nil {
		return nil, err
	}
	cache.InvalidateSubmission(ctx, submissionID)
	return &submission, nil
}

func (r *submissionRepository) ListReviews(ctx context.Context, submissionID uint) ([]*models.SubmissionReview, error) {
	var reviews []*models.SubmissionReview
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Where("submission_id = ?", submissionID).
		Order("created_at ASC").
		Find(&reviews).Error
	return reviews, err
}

func (r *submissionRepository) UpdatePaymentStatus(ctx context.Context, submissionID uint, status models.PaymentStatus) error {
	err := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("id = ?", submissionID).
		Update("payment_status", status).Error
	if err == nil {
		cache.InvalidateSubmission(ctx, submissionID)
	}
	return err
}

// loadRevisionCounts derives RevisionCount for each submission from the
// review log in one grouped query.
func (r *submissionRepository) loadRevisionCounts(ctx context.Context, db *gorm.DB, submissions []*models.Submission) error {
	if len(submissions) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(submissions))
	for _, s := range submissions {
		ids = append(ids, s.ID)
	}

	type revisionRow struct {
		SubmissionID uint
		Used         int64
	}
	var rows []revisionRow
	err := db.WithContext(ctx).
		Model(&models.SubmissionReview{}).
		Select("submission_id, COUNT(*) as used").
		Where("submission_id IN ? AND action = ?", ids, models.ReviewActionRequestRevision).
		Group("submission_id").
		Find(&rows).Error
	if err != nil {
		return err
	}

	byID := make(map[uint]int64, len(rows))
	for _, row := range rows {
		byID[row.SubmissionID] = row.Used
	}
	for _, s := range submissions {
		s.RevisionCount = int(byID[s.ID])
	}
	return nil
}
