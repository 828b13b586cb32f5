package server

import (
	"time"

	"creatorhub/internal/models"
	"creatorhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SubmitProof handles POST /api/submissions/:id/proof
// @Summary Submit proof of posting
// @Description Record the live-post URL for an approved submission; payment moves to pending
// @Tags proofs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param request body object{proof_url=string,posted_at=string,metrics=models.EngagementSnapshot,notes=string} true "Proof"
// @Success 201 {object} models.ProofOfPosting
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /submissions/{id}/proof [post]
func (s *Server) SubmitProof(c *fiber.Ctx) error {
	creatorID, _ := currentUser(c)
	submissionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		ProofURL string                     `json:"proof_url"`
		PostedAt *time.Time                 `json:"posted_at"`
		Metrics  *models.EngagementSnapshot `json:"metrics"`
		Notes    string                     `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.SubmitProofInput{
		CreatorID:    creatorID,
		SubmissionID: submissionID,
		ProofURL:     req.ProofURL,
		Metrics:      req.Metrics,
		Notes:        req.Notes,
	}
	if req.PostedAt != nil {
		in.PostedAt = *req.PostedAt
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	proof, err := s.proofService.SubmitProof(ctx, in)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(proof)
}

// GetProof handles GET /api/submissions/:id/proof
func (s *Server) GetProof(c *fiber.Ctx) error {
	requesterID, role := currentUser(c)
	submissionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	proof, err := s.proofService.GetProofForSubmission(ctx, requesterID, role, submissionID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(proof)
}

// VerifyProof handles POST /api/proofs/:id/verify
// @Summary Verify proof
// @Description Confirm the published post is live; payment moves to paid
// @Tags proofs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Proof ID"
// @Success 200 {object} models.ProofOfPosting
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /proofs/{id}/verify [post]
func (s *Server) VerifyProof(c *fiber.Ctx) error {
	verifierID, role := currentUser(c)
	proofID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	proof, err := s.proofService.VerifyProof(ctx, verifierID, role, proofID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(proof)
}
