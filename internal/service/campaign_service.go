package service

import (
	"context"

	"creatorhub/internal/models"
	"creatorhub/internal/notifications"
	"creatorhub/internal/repository"
	"creatorhub/internal/validation"
)

// CampaignService handles campaign creation, listing, and admin moderation.
type CampaignService struct {
	campaignRepo repository.CampaignRepository
	notifier     *notifications.Notifier
}

// NewCampaignService creates a new CampaignService.
func NewCampaignService(campaignRepo repository.CampaignRepository, notifier *notifications.Notifier) *CampaignService {
	return &CampaignService{campaignRepo: campaignRepo, notifier: notifier}
}

// CreateCampaignInput is a brand's new campaign payload.
type CreateCampaignInput struct {
	BrandID     uint
	Name        string
	Brief       string
	Platform    models.Platform
	BudgetCents int64
}

// ModerateCampaignInput is an admin's decision on a pending campaign.
type ModerateCampaignInput struct {
	AdminID    uint
	CampaignID uint
	Approve    bool
	Notes      string
}

const (
	maxCampaignNameLen  = 160
	maxCampaignBriefLen = 10000
)

// CreateCampaign creates a campaign in the pending state; it starts
// accepting submissions only after admin approval.
func (s *CampaignService) CreateCampaign(ctx context.Context, in CreateCampaignInput) (*models.Campaign, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("Campaign name is required")
	}
	if len(in.Name) > maxCampaignNameLen {
		return nil, models.NewValidationError("Campaign name too long (max 160 characters)")
	}
	if len(in.Brief) > maxCampaignBriefLen {
		return nil, models.NewValidationError("Campaign brief too long (max 10000 characters)")
	}
	if err := validation.ValidatePlatform(in.Platform); err != nil {
		return nil, err
	}
	if in.BudgetCents < 0 {
		return nil, models.NewValidationError("Budget cannot be negative")
	}

	campaign := &models.Campaign{
		BrandID:     in.BrandID,
		Name:        in.Name,
		Brief:       in.Brief,
		Platform:    in.Platform,
		BudgetCents: in.BudgetCents,
	}
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// GetCampaign returns one campaign by ID.
func (s *CampaignService) GetCampaign(ctx context.Context, id uint) (*models.Campaign, error) {
	return s.campaignRepo.GetByID(ctx, id)
}

// ListActiveCampaigns returns approved campaigns, optionally by platform.
func (s *CampaignService) ListActiveCampaigns(ctx context.Context, platform models.Platform, limit, offset int) ([]*models.Campaign, error) {
	if platform != "" {
		if err := validation.ValidatePlatform(platform); err != nil {
			return nil, err
		}
	}
	return s.campaignRepo.ListActive(ctx, platform, normalizeLimit(limit), offset)
}

// ListBrandCampaigns returns every campaign owned by the brand.
func (s *CampaignService) ListBrandCampaigns(ctx context.Context, brandID uint, limit, offset int) ([]*models.Campaign, error) {
	return s.campaignRepo.ListByBrand(ctx, brandID, normalizeLimit(limit), offset)
}

// ListPendingCampaigns returns the admin moderation queue.
func (s *CampaignService) ListPendingCampaigns(ctx context.Context, limit, offset int) ([]*models.Campaign, error) {
	return s.campaignRepo.ListByStatus(ctx, models.CampaignStatusPending, normalizeLimit(limit), offset)
}

// ModerateCampaign records an admin approval or rejection.
func (s *CampaignService) ModerateCampaign(ctx context.Context, in ModerateCampaignInput) (*models.Campaign, error) {
	if !in.Approve && in.Notes == "" {
		return nil, models.NewValidationError("Notes are required when rejecting a campaign")
	}
	if err := validation.ValidateNotes(in.Notes); err != nil {
		return nil, err
	}

	status := models.CampaignStatusActive
	if !in.Approve {
		status = models.CampaignStatusRejected
	}

	campaign, err := s.campaignRepo.Moderate(ctx, in.CampaignID, in.AdminID, status, in.Notes)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.NotifyCampaignModerated(ctx, campaign.BrandID, campaign.ID, string(campaign.Status), in.Notes)
	}
	return campaign, nil
}

// CompleteCampaign lets the owning brand close a running campaign.
func (s *CampaignService) CompleteCampaign(ctx context.Context, brandID, campaignID uint) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.BrandID != brandID {
		return nil, models.NewForbiddenError("You do not manage this campaign")
	}
	if campaign.Status != models.CampaignStatusActive {
		return nil, models.NewConflictError("Only active campaigns can be completed")
	}

	campaign.Status = models.CampaignStatusCompleted
	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}
