package repository

import (
	"context"
	"errors"
	"time"

	"creatorhub/internal/cache"
	"creatorhub/internal/models"

	"gorm.io/gorm"
)

// ErrAlreadyAnswered means the invitation already has a response recorded.
var ErrAlreadyAnswered = errors.New("invitation has already been answered")

// InvitationRepository defines persistence operations for campaign invitations.
type InvitationRepository interface {
	Create(ctx context.Context, invitation *models.CampaignInvitation) error
	GetByID(ctx context.Context, id uint) (*models.CampaignInvitation, error)
	GetByCampaignAndCreator(ctx context.Context, campaignID, creatorID uint) (*models.CampaignInvitation, error)
	ListByCreator(ctx context.Context, creatorID uint, status models.InvitationStatus, limit, offset int) ([]*models.CampaignInvitation, error)
	ListByCampaign(ctx context.Context, campaignID uint, limit, offset int) ([]*models.CampaignInvitation, error)
	Respond(ctx context.Context, invitationID, creatorID uint, status models.InvitationStatus) (*models.CampaignInvitation, error)
}

type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository returns a new InvitationRepository implementation.
func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) Create(ctx context.Context, invitation *models.CampaignInvitation) error {
	invitation.Status = models.InvitationStatusPending
	if err := r.db.WithContext(ctx).Create(invitation).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("creator is already invited to this campaign")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateCreatorInvitations(ctx, invitation.CreatorID)
	return nil
}

func (r *invitationRepository) GetByID(ctx context.Context, id uint) (*models.CampaignInvitation, error) {
	var invitation models.CampaignInvitation
	err := r.db.WithContext(ctx).
		Preload("Campaign").
		Preload("Creator").
		First(&invitation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Invitation", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &invitation, nil
}

func (r *invitationRepository) GetByCampaignAndCreator(ctx context.Context, campaignID, creatorID uint) (*models.CampaignInvitation, error) {
	var invitation models.CampaignInvitation
	err := r.db.WithContext(ctx).
		Where("campaign_id = ? AND creator_id = ?", campaignID, creatorID).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &invitation, nil
}

func (r *invitationRepository) ListByCreator(ctx context.Context, creatorID uint, status models.InvitationStatus, limit, offset int) ([]*models.CampaignInvitation, error) {
	var invitations []*models.CampaignInvitation
	q := r.db.WithContext(ctx).
		Preload("Campaign").
		Where("creator_id = ?", creatorID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&invitations).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return invitations, nil
}

func (r *invitationRepository) ListByCampaign(ctx context.Context, campaignID uint, limit, offset int) ([]*models.CampaignInvitation, error) {
	var invitations []*models.CampaignInvitation
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&invitations).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return invitations, nil
}

// Respond records the creator's answer. The conditional UPDATE keeps the
// operation atomic: only a pending invitation owned by the caller flips.
func (r *invitationRepository) Respond(ctx context.Context, invitationID, creatorID uint, status models.InvitationStatus) (*models.CampaignInvitation, error) {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&models.CampaignInvitation{}).
		Where("id = ? AND creator_id = ? AND status = ?", invitationID, creatorID, models.InvitationStatusPending).
		Updates(map[string]any{
			"status":       status,
			"responded_at": now,
		})
	if result.Error != nil {
		return nil, models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		// Distinguish missing from already-answered for the caller.
		existing, err := r.GetByID(ctx, invitationID)
		if err != nil {
			return nil, err
		}
		if existing.CreatorID != creatorID {
			return nil, models.NewNotFoundError("Invitation", invitationID)
		}
		return nil, ErrAlreadyAnswered
	}

	cache.InvalidateCreatorInvitations(ctx, creatorID)
	return r.GetByID(ctx, invitationID)
}
