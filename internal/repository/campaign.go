package repository

import (
	"context"
	"errors"
	"time"

	"creatorhub/internal/cache"
	"creatorhub/internal/models"
	"creatorhub/internal/observability"

	"gorm.io/gorm"
)

// CampaignRepository defines persistence operations for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id uint) (*models.Campaign, error)
	ListActive(ctx context.Context, platform models.Platform, limit, offset int) ([]*models.Campaign, error)
	ListByBrand(ctx context.Context, brandID uint, limit, offset int) ([]*models.Campaign, error)
	ListByStatus(ctx context.Context, status models.CampaignStatus, limit, offset int) ([]*models.Campaign, error)
	Update(ctx context.Context, campaign *models.Campaign) error
	Moderate(ctx context.Context, campaignID, adminID uint, status models.CampaignStatus, notes string) (*models.Campaign, error)
}

type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository returns a new CampaignRepository implementation.
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	defer observability.ObserveQuery("create", "campaigns", time.Now())
	campaign.Status = models.CampaignStatusPending
	if err := r.db.WithContext(ctx).Create(campaign).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateCampaign(ctx, campaign.ID)
	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id uint) (*models.Campaign, error) {
	defer observability.ObserveQuery("get", "campaigns", time.Now())
	var campaign models.Campaign
	err := r.db.WithContext(ctx).
		Preload("Brand").
		First(&campaign, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Campaign", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &campaign, nil
}

func (r *campaignRepository) ListActive(ctx context.Context, platform models.Platform, limit, offset int) ([]*models.Campaign, error) {
	defer observability.ObserveQuery("list", "campaigns", time.Now())
	var campaigns []*models.Campaign
	q := r.db.WithContext(ctx).
		Preload("Brand").
		Where("status = ?", models.CampaignStatusActive)
	if platform != "" {
		q = q.Where("platform = ?", platform)
	}
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&campaigns).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return campaigns, nil
}

func (r *campaignRepository) ListByBrand(ctx context.Context, brandID uint, limit, offset int) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&campaigns).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return campaigns, nil
}

func (r *campaignRepository) ListByStatus(ctx context.Context, status models.CampaignStatus, limit, offset int) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&campaigns).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return campaigns, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	if err := r.db.WithContext(ctx).Save(campaign).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateCampaign(ctx, campaign.ID)
	return nil
}

// Moderate records an admin decision on a pending campaign. The status
// check and the update run in one transaction so two admins cannot both
// decide the same campaign.
func (r *campaignRepository) Moderate(ctx context.Context, campaignID, adminID uint, status models.CampaignStatus, notes string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&campaign, campaignID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Campaign", campaignID)
			}
			return models.NewInternalError(err)
		}
		if campaign.Status != models.CampaignStatusPending {
			return models.NewConflictError("campaign has already been moderated")
		}

		campaign.Status = status
		campaign.ReviewedByUserID = &adminID
		campaign.ReviewNotes = notes
		if err := tx.Save(&campaign).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	cache.InvalidateCampaign(ctx, campaignID)
	return &campaign, nil
}
