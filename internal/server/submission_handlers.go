package server

import (
	"creatorhub/internal/models"
	"creatorhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SubmitContent handles POST /api/campaigns/:id/submissions
// @Summary Submit content
// @Description Submit draft content for a campaign the creator was invited to
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param request body object{caption=string,media_files=[]models.MediaFile,hashtags=[]string,submission_notes=string} true "Submission"
// @Success 201 {object} models.Submission
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /campaigns/{id}/submissions [post]
func (s *Server) SubmitContent(c *fiber.Ctx) error {
	creatorID, _ := currentUser(c)
	campaignID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Caption         string             `json:"caption"`
		MediaFiles      []models.MediaFile `json:"media_files"`
		Hashtags        []string           `json:"hashtags"`
		SubmissionNotes string             `json:"submission_notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	submission, err := s.submissionService.SubmitContent(ctx, service.SubmitContentInput{
		CreatorID:       creatorID,
		CampaignID:      campaignID,
		Caption:         req.Caption,
		MediaFiles:      req.MediaFiles,
		Hashtags:        req.Hashtags,
		SubmissionNotes: req.SubmissionNotes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(submission)
}

// GetCampaignSubmissions handles GET /api/campaigns/:id/submissions
// The queue query parameter selects "pending", "reviewed" or all.
func (s *Server) GetCampaignSubmissions(c *fiber.Ctx) error {
	requesterID, role := currentUser(c)
	campaignID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	ctx, cancel := requestContext(c)
	defer cancel()

	submissions, err := s.submissionService.ListCampaignSubmissions(ctx, service.ListSubmissionsInput{
		RequesterID:   requesterID,
		RequesterRole: role,
		CampaignID:    campaignID,
		Queue:         c.Query("queue"),
		Limit:         page.Limit,
		Offset:        page.Offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(submissions)
}

// GetMySubmissions handles GET /api/submissions/mine
func (s *Server) GetMySubmissions(c *fiber.Ctx) error {
	creatorID, _ := currentUser(c)
	page := parsePagination(c, 20)

	ctx, cancel := requestContext(c)
	defer cancel()

	submissions, err := s.submissionService.ListCreatorSubmissions(ctx, creatorID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(submissions)
}

// GetSubmission handles GET /api/submissions/:id
// Returns the submission together with its full review history.
func (s *Server) GetSubmission(c *fiber.Ctx) error {
	requesterID, role := currentUser(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	submission, reviews, err := s.submissionService.GetSubmission(ctx, requesterID, role, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"submission": submission,
		"reviews":    reviews,
	})
}

// ReviewSubmission handles POST /api/submissions/:id/review
// @Summary Review submission
// @Description Approve, request revision on, or reject a submitted piece of content
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param request body object{action=string,feedback_text=string} true "Decision"
// @Success 200 {object} models.Submission
// @Failure 409 {object} models.ErrorResponse
// @Router /submissions/{id}/review [post]
func (s *Server) ReviewSubmission(c *fiber.Ctx) error {
	reviewerID, reviewerRole := currentUser(c)
	submissionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Action       models.ReviewAction `json:"action"`
		FeedbackText string              `json:"feedback_text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	submission, err := s.submissionService.ReviewSubmission(ctx, service.ReviewSubmissionInput{
		ReviewerID:   reviewerID,
		ReviewerRole: reviewerRole,
		SubmissionID: submissionID,
		Action:       req.Action,
		FeedbackText: req.FeedbackText,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(submission)
}

// ResubmitContent handles POST /api/submissions/:id/resubmit
func (s *Server) ResubmitContent(c *fiber.Ctx) error {
	creatorID, _ := currentUser(c)
	submissionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Caption         string             `json:"caption"`
		MediaFiles      []models.MediaFile `json:"media_files"`
		Hashtags        []string           `json:"hashtags"`
		SubmissionNotes string             `json:"submission_notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	submission, err := s.submissionService.ResubmitContent(ctx, service.ResubmitInput{
		CreatorID:       creatorID,
		SubmissionID:    submissionID,
		Caption:         req.Caption,
		MediaFiles:      req.MediaFiles,
		Hashtags:        req.Hashtags,
		SubmissionNotes: req.SubmissionNotes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(submission)
}
