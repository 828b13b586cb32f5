package server

import (
	"creatorhub/internal/models"
	"creatorhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateCampaign handles POST /api/campaigns
// @Summary Create campaign
// @Description Create a campaign draft; it enters moderation before going live
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string,brief=string,platform=string,budget_cents=integer} true "Campaign"
// @Success 201 {object} models.Campaign
// @Failure 400 {object} models.ErrorResponse
// @Router /campaigns [post]
func (s *Server) CreateCampaign(c *fiber.Ctx) error {
	brandID, _ := currentUser(c)

	var req struct {
		Name        string          `json:"name"`
		Brief       string          `json:"brief"`
		Platform    models.Platform `json:"platform"`
		BudgetCents int64           `json:"budget_cents"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	campaign, err := s.campaignService.CreateCampaign(ctx, service.CreateCampaignInput{
		BrandID:     brandID,
		Name:        req.Name,
		Brief:       req.Brief,
		Platform:    req.Platform,
		BudgetCents: req.BudgetCents,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// GetActiveCampaigns handles GET /api/campaigns
func (s *Server) GetActiveCampaigns(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	platform := models.Platform(c.Query("platform"))

	ctx, cancel := requestContext(c)
	defer cancel()

	campaigns, err := s.campaignService.ListActiveCampaigns(ctx, platform, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(campaigns)
}

// GetCampaign handles GET /api/campaigns/:id
func (s *Server) GetCampaign(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	campaign, err := s.campaignService.GetCampaign(ctx, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(campaign)
}

// GetMyCampaigns handles GET /api/campaigns/mine
func (s *Server) GetMyCampaigns(c *fiber.Ctx) error {
	brandID, _ := currentUser(c)
	page := parsePagination(c, 20)

	ctx, cancel := requestContext(c)
	defer cancel()

	campaigns, err := s.campaignService.ListBrandCampaigns(ctx, brandID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(campaigns)
}

// CompleteCampaign handles POST /api/campaigns/:id/complete
func (s *Server) CompleteCampaign(c *fiber.Ctx) error {
	brandID, _ := currentUser(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	campaign, err := s.campaignService.CompleteCampaign(ctx, brandID, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(campaign)
}
