package server

import (
	"creatorhub/internal/models"
	"creatorhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// InviteCreator handles POST /api/campaigns/:id/invitations
// @Summary Invite creator
// @Description Invite a creator to an active campaign
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param request body object{creator_id=integer,offer_cents=integer} true "Invitation"
// @Success 201 {object} models.CampaignInvitation
// @Failure 409 {object} models.ErrorResponse
// @Router /campaigns/{id}/invitations [post]
func (s *Server) InviteCreator(c *fiber.Ctx) error {
	brandID, _ := currentUser(c)
	campaignID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		CreatorID  uint  `json:"creator_id"`
		OfferCents int64 `json:"offer_cents"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.CreatorID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("creator_id is required"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	invitation, err := s.invitationService.InviteCreator(ctx, service.InviteCreatorInput{
		BrandID:    brandID,
		CampaignID: campaignID,
		CreatorID:  req.CreatorID,
		OfferCents: req.OfferCents,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(invitation)
}

// GetCampaignInvitations handles GET /api/campaigns/:id/invitations
func (s *Server) GetCampaignInvitations(c *fiber.Ctx) error {
	brandID, _ := currentUser(c)
	campaignID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	ctx, cancel := requestContext(c)
	defer cancel()

	invitations, err := s.invitationService.ListCampaignInvitations(
		ctx, brandID, campaignID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(invitations)
}

// GetMyInvitations handles GET /api/invitations
func (s *Server) GetMyInvitations(c *fiber.Ctx) error {
	creatorID, _ := currentUser(c)
	page := parsePagination(c, 20)
	status := models.InvitationStatus(c.Query("status"))

	ctx, cancel := requestContext(c)
	defer cancel()

	invitations, err := s.invitationService.ListCreatorInvitations(
		ctx, creatorID, status, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(invitations)
}

// AcceptInvitation handles POST /api/invitations/:id/accept
func (s *Server) AcceptInvitation(c *fiber.Ctx) error {
	return s.respondToInvitation(c, true)
}

// DeclineInvitation handles POST /api/invitations/:id/decline
func (s *Server) DeclineInvitation(c *fiber.Ctx) error {
	return s.respondToInvitation(c, false)
}

func (s *Server) respondToInvitation(c *fiber.Ctx, accept bool) error {
	creatorID, _ := currentUser(c)
	invitationID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	invitation, err := s.invitationService.RespondToInvitation(ctx, creatorID, invitationID, accept)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(invitation)
}
