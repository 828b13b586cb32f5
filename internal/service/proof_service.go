package service

import (
	"context"
	"errors"
	"time"

	"creatorhub/internal/models"
	"creatorhub/internal/notifications"
	"creatorhub/internal/observability"
	"creatorhub/internal/repository"
	"creatorhub/internal/validation"
)

// ProofService handles proof-of-posting submission and verification.
type ProofService struct {
	proofRepo      repository.ProofRepository
	submissionRepo repository.SubmissionRepository
	campaignRepo   repository.CampaignRepository
	notifier       *notifications.Notifier
}

// NewProofService creates a new ProofService.
func NewProofService(
	proofRepo repository.ProofRepository,
	submissionRepo repository.SubmissionRepository,
	campaignRepo repository.CampaignRepository,
	notifier *notifications.Notifier,
) *ProofService {
	return &ProofService{
		proofRepo:      proofRepo,
		submissionRepo: submissionRepo,
		campaignRepo:   campaignRepo,
		notifier:       notifier,
	}
}

// SubmitProofInput is a creator's evidence that approved content went live.
type SubmitProofInput struct {
	CreatorID    uint
	SubmissionID uint
	ProofURL     string
	PostedAt     time.Time
	Metrics      *models.EngagementSnapshot
	Notes        string
}

// SubmitProof records the live-post URL for an approved submission. The URL
// must parse, sit on the campaign platform's domain, and be the first proof
// for the submission.
func (s *ProofService) SubmitProof(ctx context.Context, in SubmitProofInput) (*models.ProofOfPosting, error) {
	u, err := validation.ParseProofURL(in.ProofURL)
	if err != nil {
		return nil, models.NewValidationError("Proof URL must be a valid absolute http(s) URL")
	}

	submission, err := s.submissionRepo.GetByID(ctx, in.SubmissionID)
	if err != nil {
		return nil, err
	}
	if submission.CreatorID != in.CreatorID {
		return nil, models.NewForbiddenError("You can only submit proof for your own submissions")
	}
	if !validation.HostMatchesPlatform(u.Hostname(), submission.Platform) {
		return nil, models.NewPlatformMismatchError(submission.Platform)
	}
	if submission.Status != models.SubmissionStatusApproved {
		return nil, models.NewConflictError("Proof can only be submitted for approved content")
	}
	if in.Metrics != nil && !validMetrics(in.Metrics) {
		return nil, models.NewValidationError("Engagement metrics cannot be negative")
	}
	if err := validation.ValidateNotes(in.Notes); err != nil {
		return nil, err
	}

	postedAt := in.PostedAt
	if postedAt.IsZero() {
		postedAt = time.Now().UTC()
	}

	proof := &models.ProofOfPosting{
		SubmissionID: in.SubmissionID,
		ProofURL:     in.ProofURL,
		PostedAt:     postedAt,
		Metrics:      in.Metrics,
		Notes:        in.Notes,
	}
	if err := s.proofRepo.Create(ctx, proof); err != nil {
		if errors.Is(err, repository.ErrProofExists) {
			return nil, models.NewConflictError("Proof has already been submitted for this content")
		}
		return nil, err
	}

	observability.ProofsTotal.WithLabelValues(string(submission.Platform)).Inc()

	if s.notifier != nil && submission.Campaign != nil {
		_ = s.notifier.NotifyProofSubmitted(ctx, submission.Campaign.BrandID, submission.ID, in.ProofURL)
	}
	return proof, nil
}

// VerifyProof confirms the published post and settles the payout. Only the
// campaign's brand or an admin may verify.
func (s *ProofService) VerifyProof(ctx context.Context, verifierID uint, verifierRole models.UserRole, proofID uint) (*models.ProofOfPosting, error) {
	proof, err := s.proofRepo.GetByID(ctx, proofID)
	if err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.GetByID(ctx, proof.SubmissionID)
	if err != nil {
		return nil, err
	}
	if verifierRole != models.RoleAdmin {
		campaign, err := s.campaignRepo.GetByID(ctx, submission.CampaignID)
		if err != nil {
			return nil, err
		}
		if campaign.BrandID != verifierID {
			return nil, models.NewForbiddenError("You do not manage this campaign")
		}
	}

	verified, err := s.proofRepo.Verify(ctx, proofID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.NotifyProofVerified(ctx, submission.CreatorID, submission.ID, string(models.PaymentStatusPaid))
	}
	return verified, nil
}

// GetProofForSubmission returns the proof on file, if any, for callers who
// may see the submission.
func (s *ProofService) GetProofForSubmission(ctx context.Context, requesterID uint, requesterRole models.UserRole, submissionID uint) (*models.ProofOfPosting, error) {
	submission, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if requesterRole != models.RoleAdmin && submission.CreatorID != requesterID {
		campaign, err := s.campaignRepo.GetByID(ctx, submission.CampaignID)
		if err != nil {
			return nil, err
		}
		if campaign.BrandID != requesterID {
			return nil, models.NewForbiddenError("You may not view this submission")
		}
	}
	return s.proofRepo.GetBySubmissionID(ctx, submissionID)
}

func validMetrics(m *models.EngagementSnapshot) bool {
	for _, v := range []*int64{m.Likes, m.Comments, m.Views, m.Shares} {
		if v != nil && *v < 0 {
			return false
		}
	}
	return true
}
