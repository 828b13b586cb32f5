package service

import (
	"context"
	"errors"

	"creatorhub/internal/models"
	"creatorhub/internal/notifications"
	"creatorhub/internal/repository"
)

// InvitationService handles inviting creators to campaigns and their responses.
type InvitationService struct {
	invitationRepo repository.InvitationRepository
	campaignRepo   repository.CampaignRepository
	userRepo       repository.UserRepository
	notifier       *notifications.Notifier
}

// NewInvitationService creates a new InvitationService.
func NewInvitationService(
	invitationRepo repository.InvitationRepository,
	campaignRepo repository.CampaignRepository,
	userRepo repository.UserRepository,
	notifier *notifications.Notifier,
) *InvitationService {
	return &InvitationService{
		invitationRepo: invitationRepo,
		campaignRepo:   campaignRepo,
		userRepo:       userRepo,
		notifier:       notifier,
	}
}

// InviteCreatorInput is a brand's invitation for one creator.
type InviteCreatorInput struct {
	BrandID    uint
	CampaignID uint
	CreatorID  uint
	OfferCents int64
}

// InviteCreator invites a creator to an active campaign owned by the brand.
func (s *InvitationService) InviteCreator(ctx context.Context, in InviteCreatorInput) (*models.CampaignInvitation, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.BrandID != in.BrandID {
		return nil, models.NewForbiddenError("You do not manage this campaign")
	}
	if campaign.Status != models.CampaignStatusActive {
		return nil, models.NewValidationError("Only active campaigns can invite creators")
	}
	if in.OfferCents < 0 {
		return nil, models.NewValidationError("Offer cannot be negative")
	}

	creator, err := s.userRepo.GetByID(ctx, in.CreatorID)
	if err != nil {
		return nil, err
	}
	if creator.Role != models.RoleCreator {
		return nil, models.NewValidationError("Only creator accounts can be invited")
	}
	if creator.Status != models.UserStatusActive {
		return nil, models.NewValidationError("Creator account is not active")
	}

	invitation := &models.CampaignInvitation{
		CampaignID: in.CampaignID,
		CreatorID:  in.CreatorID,
		OfferCents: in.OfferCents,
	}
	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		_ = s.notifier.NotifyInvitation(ctx, in.CreatorID, campaign.ID, invitation.ID, campaign.Name)
	}
	return invitation, nil
}

// RespondToInvitation records a creator's accept or decline, once.
func (s *InvitationService) RespondToInvitation(ctx context.Context, creatorID, invitationID uint, accept bool) (*models.CampaignInvitation, error) {
	status := models.InvitationStatusAccepted
	if !accept {
		status = models.InvitationStatusDeclined
	}

	invitation, err := s.invitationRepo.Respond(ctx, invitationID, creatorID, status)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyAnswered) {
			return nil, models.NewConflictError("Invitation has already been answered")
		}
		return nil, err
	}

	if s.notifier != nil && invitation.Campaign != nil {
		_ = s.notifier.NotifyInvitationAnswer(ctx, invitation.Campaign.BrandID,
			invitation.CampaignID, invitation.ID, string(invitation.Status))
	}
	return invitation, nil
}

// ListCreatorInvitations returns a creator's invitations, optionally by status.
func (s *InvitationService) ListCreatorInvitations(ctx context.Context, creatorID uint, status models.InvitationStatus, limit, offset int) ([]*models.CampaignInvitation, error) {
	switch status {
	case "", models.InvitationStatusPending, models.InvitationStatusAccepted, models.InvitationStatusDeclined:
	default:
		return nil, models.NewValidationError("Invalid invitation status filter")
	}
	return s.invitationRepo.ListByCreator(ctx, creatorID, status, normalizeLimit(limit), offset)
}

// ListCampaignInvitations returns a campaign's invitations for its brand.
func (s *InvitationService) ListCampaignInvitations(ctx context.Context, brandID, campaignID uint, limit, offset int) ([]*models.CampaignInvitation, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.BrandID != brandID {
		return nil, models.NewForbiddenError("You do not manage this campaign")
	}
	return s.invitationRepo.ListByCampaign(ctx, campaignID, normalizeLimit(limit), offset)
}
