// Package service implements the business logic layer of the application.
package service

import (
	"context"
	"errors"

	"creatorhub/internal/models"
	"creatorhub/internal/notifications"
	"creatorhub/internal/observability"
	"creatorhub/internal/repository"
	"creatorhub/internal/validation"
)

// SubmissionService coordinates the content submission and review workflow.
type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
	campaignRepo   repository.CampaignRepository
	invitationRepo repository.InvitationRepository
	notifier       *notifications.Notifier
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	submissionRepo repository.SubmissionRepository,
	campaignRepo repository.CampaignRepository,
	invitationRepo repository.InvitationRepository,
	notifier *notifications.Notifier,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		campaignRepo:   campaignRepo,
		invitationRepo: invitationRepo,
		notifier:       notifier,
	}
}

// SubmitContentInput is the payload for a first-time content submission.
type SubmitContentInput struct {
	CreatorID       uint
	CampaignID      uint
	Caption         string
	MediaFiles      []models.MediaFile
	Hashtags        []string
	SubmissionNotes string
}

// ReviewSubmissionInput is one reviewer decision.
type ReviewSubmissionInput struct {
	ReviewerID   uint
	ReviewerRole models.UserRole
	SubmissionID uint
	Action       models.ReviewAction
	FeedbackText string
}

// ResubmitInput carries reworked content for a revision round.
type ResubmitInput struct {
	CreatorID       uint
	SubmissionID    uint
	Caption         string
	MediaFiles      []models.MediaFile
	Hashtags        []string
	SubmissionNotes string
}

// ListSubmissionsInput filters a brand's review queue for one campaign.
type ListSubmissionsInput struct {
	RequesterID   uint
	RequesterRole models.UserRole
	CampaignID    uint
	// Queue selects "pending" (awaiting review), "reviewed" (everything
	// else) or "" for all.
	Queue  string
	Limit  int
	Offset int
}

// SubmitContent creates a submission for a campaign the creator was invited
// to. The campaign must be active and the invitation accepted.
func (s *SubmissionService) SubmitContent(ctx context.Context, in SubmitContentInput) (*models.Submission, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status != models.CampaignStatusActive {
		return nil, models.NewValidationError("Campaign is not accepting submissions")
	}

	if err := validation.ValidateContentPayload(campaign.Platform, in.Caption, in.MediaFiles, in.Hashtags); err != nil {
		return nil, err
	}
	if err := validation.ValidateNotes(in.SubmissionNotes); err != nil {
		return nil, err
	}

	invitation, err := s.invitationRepo.GetByCampaignAndCreator(ctx, in.CampaignID, in.CreatorID)
	if err != nil {
		return nil, err
	}
	if invitation == nil || invitation.Status != models.InvitationStatusAccepted {
		return nil, models.NewForbiddenError("You are not part of this campaign")
	}

	// One live submission per creator per campaign: a new one is allowed
	// only once the previous one reached a terminal state.
	open, err := s.submissionRepo.CountByCampaignAndCreator(ctx, in.CampaignID, in.CreatorID, []models.SubmissionStatus{
		models.SubmissionStatusSubmitted,
		models.SubmissionStatusRevisionRequested,
	})
	if err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, models.NewConflictError("You already have a submission in progress for this campaign")
	}

	submission := &models.Submission{
		CampaignID:      in.CampaignID,
		CreatorID:       in.CreatorID,
		Caption:         in.Caption,
		MediaFiles:      in.MediaFiles,
		Hashtags:        in.Hashtags,
		Platform:        campaign.Platform,
		SubmissionNotes: in.SubmissionNotes,
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}

	observability.SubmissionsTotal.WithLabelValues(string(campaign.Platform)).Inc()
	return submission, nil
}

// ReviewSubmission applies a brand or admin decision to a pending submission.
func (s *SubmissionService) ReviewSubmission(ctx context.Context, in ReviewSubmissionInput) (*models.Submission, error) {
	switch in.Action {
	case models.ReviewActionApprove, models.ReviewActionRequestRevision, models.ReviewActionReject:
	default:
		return nil, models.NewValidationError("Invalid review action")
	}
	if in.Action != models.ReviewActionApprove && in.FeedbackText == "" {
		return nil, models.NewValidationError("Feedback is required when requesting a revision or rejecting")
	}
	if err := validation.ValidateNotes(in.FeedbackText); err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.GetByID(ctx, in.SubmissionID)
	if err != nil {
		return nil, err
	}
	if in.ReviewerRole != models.RoleAdmin {
		if err := s.authorizeReviewer(ctx, in.ReviewerID, submission.CampaignID); err != nil {
			return nil, err
		}
	}

	reviewed, err := s.submissionRepo.Review(ctx, in.SubmissionID, in.ReviewerID, in.Action, in.FeedbackText)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMaxRevisions):
			return nil, models.NewMaxRevisionsError()
		case errors.Is(err, repository.ErrNotReviewable):
			return nil, models.NewConflictError("Submission has already been reviewed")
		}
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.NotifyReviewDecision(ctx, submission.CreatorID, submission.ID,
			string(in.Action), string(reviewed.Status), in.FeedbackText)
	}
	return reviewed, nil
}

// ResubmitContent replaces the content of a revision-requested submission
// and returns it to the review queue. The review log, and so the revision
// count, survives the round trip.
func (s *SubmissionService) ResubmitContent(ctx context.Context, in ResubmitInput) (*models.Submission, error) {
	submission, err := s.submissionRepo.GetByID(ctx, in.SubmissionID)
	if err != nil {
		return nil, err
	}
	if submission.CreatorID != in.CreatorID {
		return nil, models.NewForbiddenError("You can only resubmit your own submissions")
	}

	if err := validation.ValidateContentPayload(submission.Platform, in.Caption, in.MediaFiles, in.Hashtags); err != nil {
		return nil, err
	}
	if err := validation.ValidateNotes(in.SubmissionNotes); err != nil {
		return nil, err
	}

	resubmitted, err := s.submissionRepo.Resubmit(ctx, in.SubmissionID, in.CreatorID, repository.ResubmitInput{
		Caption:         in.Caption,
		MediaFiles:      in.MediaFiles,
		Hashtags:        in.Hashtags,
		SubmissionNotes: in.SubmissionNotes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotResubmittable) {
			return nil, models.NewConflictError("Submission is not awaiting a revision")
		}
		return nil, err
	}
	return resubmitted, nil
}

// ListCampaignSubmissions returns a campaign's submissions for its brand
// (or an admin), split into the pending and reviewed queues.
func (s *SubmissionService) ListCampaignSubmissions(ctx context.Context, in ListSubmissionsInput) ([]*models.Submission, error) {
	if in.RequesterRole != models.RoleAdmin {
		if err := s.authorizeReviewer(ctx, in.RequesterID, in.CampaignID); err != nil {
			return nil, err
		}
	}

	var statuses []models.SubmissionStatus
	switch in.Queue {
	case "pending":
		statuses = []models.SubmissionStatus{models.SubmissionStatusSubmitted}
	case "reviewed":
		statuses = []models.SubmissionStatus{
			models.SubmissionStatusApproved,
			models.SubmissionStatusRevisionRequested,
			models.SubmissionStatusRejected,
		}
	case "":
		// all
	default:
		return nil, models.NewValidationError("Invalid queue filter")
	}

	return s.submissionRepo.ListByCampaign(ctx, in.CampaignID, statuses, normalizeLimit(in.Limit), in.Offset)
}

// ListCreatorSubmissions returns the creator's own submissions across campaigns.
func (s *SubmissionService) ListCreatorSubmissions(ctx context.Context, creatorID uint, limit, offset int) ([]*models.Submission, error) {
	return s.submissionRepo.ListByCreator(ctx, creatorID, normalizeLimit(limit), offset)
}

// GetSubmission returns one submission with its review history, visible to
// the owning creator, the campaign's brand, or an admin.
func (s *SubmissionService) GetSubmission(ctx context.Context, requesterID uint, requesterRole models.UserRole, submissionID uint) (*models.Submission, []*models.SubmissionReview, error) {
	submission, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, nil, err
	}

	if requesterRole != models.RoleAdmin && submission.CreatorID != requesterID {
		if err := s.authorizeReviewer(ctx, requesterID, submission.CampaignID); err != nil {
			return nil, nil, err
		}
	}

	reviews, err := s.submissionRepo.ListReviews(ctx, submissionID)
	if err != nil {
		return nil, nil, err
	}
	return submission, reviews, nil
}

// authorizeReviewer verifies the user owns the campaign.
func (s *SubmissionService) authorizeReviewer(ctx context.Context, userID, campaignID uint) error {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign.BrandID != userID {
		return models.NewForbiddenError("You do not manage this campaign")
	}
	return nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
