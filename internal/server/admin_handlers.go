package server

import (
	"creatorhub/internal/models"
	"creatorhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPendingCampaigns handles GET /api/admin/campaigns/pending
func (s *Server) GetPendingCampaigns(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	ctx, cancel := requestContext(c)
	defer cancel()

	campaigns, err := s.campaignService.ListPendingCampaigns(ctx, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(campaigns)
}

// ModerateCampaign handles POST /api/admin/campaigns/:id/moderate
// @Summary Moderate campaign
// @Description Approve or reject a pending campaign
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param request body object{approve=boolean,notes=string} true "Decision"
// @Success 200 {object} models.Campaign
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/campaigns/{id}/moderate [post]
func (s *Server) ModerateCampaign(c *fiber.Ctx) error {
	adminID, _ := currentUser(c)
	campaignID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Approve bool   `json:"approve"`
		Notes   string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	campaign, err := s.campaignService.ModerateCampaign(ctx, service.ModerateCampaignInput{
		AdminID:    adminID,
		CampaignID: campaignID,
		Approve:    req.Approve,
		Notes:      req.Notes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(campaign)
}

// GetProofQueue handles GET /api/admin/proofs
// Lists proofs by status, defaulting to the unverified queue.
func (s *Server) GetProofQueue(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	status := models.ProofStatus(c.Query("status"))
	if status == "" {
		status = models.ProofStatusSubmitted
	}
	if status != models.ProofStatusSubmitted && status != models.ProofStatusVerified {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unknown proof status"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	proofs, err := s.proofRepo.ListByStatus(ctx, status, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(proofs)
}

// GetAllUsers handles GET /api/admin/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	page := parsePagination(c, 50)
	role := models.UserRole(c.Query("role"))

	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := s.userService.ListUsers(ctx, role, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(users)
}

// SetUserRole handles POST /api/admin/users/:id/role
func (s *Server) SetUserRole(c *fiber.Ctx) error {
	adminID, _ := currentUser(c)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Role models.UserRole `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := s.userService.SetUserRole(ctx, adminID, targetID, req.Role)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// SetUserStatus handles POST /api/admin/users/:id/status
func (s *Server) SetUserStatus(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status models.UserStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := s.userService.SetUserStatus(ctx, targetID, req.Status)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}
