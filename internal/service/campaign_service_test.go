package service

import (
	"context"
	"strings"
	"testing"

	"creatorhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignService_CreateCampaign(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates in pending state", func(t *testing.T) {
		campaignRepo := noopCampaignRepo()
		campaignRepo.createFn = func(_ context.Context, c *models.Campaign) error {
			c.ID = 1
			c.Status = models.CampaignStatusPending
			return nil
		}
		svc := NewCampaignService(campaignRepo, nil)

		campaign, err := svc.CreateCampaign(ctx, CreateCampaignInput{
			BrandID:     5,
			Name:        "Spring Launch",
			Platform:    models.PlatformInstagram,
			BudgetCents: 250000,
		})
		require.NoError(t, err)
		assert.Equal(t, models.CampaignStatusPending, campaign.Status)
	})

	t.Run("validates fields", func(t *testing.T) {
		svc := NewCampaignService(noopCampaignRepo(), nil)

		cases := []CreateCampaignInput{
			{BrandID: 5, Platform: models.PlatformInstagram},                                          // missing name
			{BrandID: 5, Name: strings.Repeat("x", 161), Platform: models.PlatformInstagram},          // name too long
			{BrandID: 5, Name: "ok", Platform: "myspace"},                                             // unknown platform
			{BrandID: 5, Name: "ok", Platform: models.PlatformTikTok, BudgetCents: -1},                // negative budget
			{BrandID: 5, Name: "ok", Platform: models.PlatformTikTok, Brief: strings.Repeat("b", 10001)}, // brief too long
		}
		for _, in := range cases {
			_, err := svc.CreateCampaign(ctx, in)
			assertErrorCode(t, err, "VALIDATION_ERROR")
		}
	})
}

func TestCampaignService_ModerateCampaign(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("approval activates the campaign", func(t *testing.T) {
		campaignRepo := noopCampaignRepo()
		campaignRepo.moderateFn = func(_ context.Context, campaignID, adminID uint, status models.CampaignStatus, notes string) (*models.Campaign, error) {
			assert.Equal(t, models.CampaignStatusActive, status)
			return &models.Campaign{ID: campaignID, BrandID: 5, Status: status, ReviewedByUserID: &adminID, ReviewNotes: notes}, nil
		}
		svc := NewCampaignService(campaignRepo, nil)

		campaign, err := svc.ModerateCampaign(ctx, ModerateCampaignInput{AdminID: 9, CampaignID: 1, Approve: true})
		require.NoError(t, err)
		assert.Equal(t, models.CampaignStatusActive, campaign.Status)
	})

	t.Run("rejection requires notes", func(t *testing.T) {
		svc := NewCampaignService(noopCampaignRepo(), nil)
		_, err := svc.ModerateCampaign(ctx, ModerateCampaignInput{AdminID: 9, CampaignID: 1, Approve: false})
		assertErrorCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("rejection sets rejected status", func(t *testing.T) {
		campaignRepo := noopCampaignRepo()
		campaignRepo.moderateFn = func(_ context.Context, campaignID, _ uint, status models.CampaignStatus, _ string) (*models.Campaign, error) {
			assert.Equal(t, models.CampaignStatusRejected, status)
			return &models.Campaign{ID: campaignID, Status: status}, nil
		}
		svc := NewCampaignService(campaignRepo, nil)

		campaign, err := svc.ModerateCampaign(ctx, ModerateCampaignInput{AdminID: 9, CampaignID: 1, Approve: false, Notes: "brief too vague"})
		require.NoError(t, err)
		assert.Equal(t, models.CampaignStatusRejected, campaign.Status)
	})
}

func TestCampaignService_CompleteCampaign(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("only the owner may complete", func(t *testing.T) {
		campaignRepo := noopCampaignRepo()
		campaignRepo.getByIDFn = func(_ context.Context, id uint) (*models.Campaign, error) {
			return activeCampaign(id, 5, models.PlatformInstagram), nil
		}
		svc := NewCampaignService(campaignRepo, nil)

		_, err := svc.CompleteCampaign(ctx, 99, 1)
		assertErrorCode(t, err, "FORBIDDEN")
	})

	t.Run("only active campaigns complete", func(t *testing.T) {
		campaignRepo := noopCampaignRepo()
		campaignRepo.getByIDFn = func(_ context.Context, id uint) (*models.Campaign, error) {
			c := activeCampaign(id, 5, models.PlatformInstagram)
			c.Status = models.CampaignStatusPending
			return c, nil
		}
		svc := NewCampaignService(campaignRepo, nil)

		_, err := svc.CompleteCampaign(ctx, 5, 1)
		assertErrorCode(t, err, "CONFLICT")
	})

	t.Run("owner completes an active campaign", func(t *testing.T) {
		campaignRepo := noopCampaignRepo()
		campaignRepo.getByIDFn = func(_ context.Context, id uint) (*models.Campaign, error) {
			return activeCampaign(id, 5, models.PlatformInstagram), nil
		}
		svc := NewCampaignService(campaignRepo, nil)

		campaign, err := svc.CompleteCampaign(ctx, 5, 1)
		require.NoError(t, err)
		assert.Equal(t, models.CampaignStatusCompleted, campaign.Status)
	})
}
