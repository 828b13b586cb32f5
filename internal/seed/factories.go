// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"creatorhub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user with the given role.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(role models.UserRole, overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123!"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: string(hashed),
		Role:     role,
		Status:   models.UserStatusActive,
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	if role == models.RoleBrand {
		user.Username = gofakeit.Company() + fmt.Sprintf("%d", gofakeit.Number(10, 99))
		user.Bio = gofakeit.Slogan()
	}

	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCampaign constructs and persists an active campaign for a brand.
func (f *Factory) CreateCampaign(brand *models.User, overrides ...func(*models.Campaign)) (*models.Campaign, error) {
	platform := models.KnownPlatforms[f.r.Intn(len(models.KnownPlatforms))]
	campaign := &models.Campaign{
		BrandID:     brand.ID,
		Name:        fmt.Sprintf("%s %s", gofakeit.ProductName(), gofakeit.Word()),
		Brief:       gofakeit.Paragraph(1, 3, 8, "\n"),
		Platform:    platform,
		BudgetCents: int64(gofakeit.Number(500, 20000)) * 100,
		Status:      models.CampaignStatusActive,
	}
	for _, override := range overrides {
		override(campaign)
	}
	if err := f.db.Create(campaign).Error; err != nil {
		return nil, err
	}
	return campaign, nil
}

// CreateInvitation invites a creator to a campaign with the given status.
func (f *Factory) CreateInvitation(campaign *models.Campaign, creator *models.User, status models.InvitationStatus) (*models.CampaignInvitation, error) {
	invitation := &models.CampaignInvitation{
		CampaignID: campaign.ID,
		CreatorID:  creator.ID,
		OfferCents: int64(gofakeit.Number(100, 5000)) * 100,
		Status:     status,
	}
	if status != models.InvitationStatusPending {
		t := time.Now().Add(-time.Duration(f.r.Intn(72)) * time.Hour)
		invitation.RespondedAt = &t
	}
	if err := f.db.Create(invitation).Error; err != nil {
		return nil, err
	}
	return invitation, nil
}

// CreateSubmission constructs and persists a submission in the given status.
func (f *Factory) CreateSubmission(campaign *models.Campaign, creator *models.User, status models.SubmissionStatus, overrides ...func(*models.Submission)) (*models.Submission, error) {
	mediaType := models.MediaTypeImage
	if campaign.Platform != models.PlatformInstagram || f.r.Intn(2) == 1 {
		mediaType = models.MediaTypeVideo
	}

	submission := &models.Submission{
		CampaignID: campaign.ID,
		CreatorID:  creator.ID,
		Caption:    gofakeit.Sentence(12),
		MediaFiles: []models.MediaFile{{
			URL:  fmt.Sprintf("https://picsum.photos/seed/%s/1080/1080", gofakeit.UUID()),
			Type: mediaType,
			Name: gofakeit.Word() + ".jpg",
		}},
		Hashtags:    []string{"#" + gofakeit.Word(), "#" + gofakeit.Word()},
		Platform:    campaign.Platform,
		Status:      status,
		SubmittedAt: time.Now().Add(-time.Duration(f.r.Intn(240)) * time.Hour),
	}
	if status != models.SubmissionStatusSubmitted {
		t := submission.SubmittedAt.Add(time.Duration(1+f.r.Intn(48)) * time.Hour)
		submission.ReviewedAt = &t
	}
	if status == models.SubmissionStatusRevisionRequested || status == models.SubmissionStatusRejected {
		submission.FeedbackText = gofakeit.Sentence(15)
	}

	for _, override := range overrides {
		override(submission)
	}
	if err := f.db.Create(submission).Error; err != nil {
		return nil, err
	}
	return submission, nil
}

// CreateReview appends a review log entry for a submission.
func (f *Factory) CreateReview(submission *models.Submission, reviewer *models.User, action models.ReviewAction) (*models.SubmissionReview, error) {
	review := &models.SubmissionReview{
		SubmissionID: submission.ID,
		ReviewerID:   reviewer.ID,
		Action:       action,
	}
	if action != models.ReviewActionApprove {
		review.FeedbackText = gofakeit.Sentence(15)
	}
	if err := f.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// CreateProof attaches a proof of posting to an approved submission.
func (f *Factory) CreateProof(submission *models.Submission, status models.ProofStatus) (*models.ProofOfPosting, error) {
	var proofURL string
	switch submission.Platform {
	case models.PlatformTikTok:
		proofURL = fmt.Sprintf("https://www.tiktok.com/@%s/video/%d", gofakeit.Username(), gofakeit.Number(1000000, 9999999))
	case models.PlatformYouTube:
		proofURL = fmt.Sprintf("https://www.youtube.com/watch?v=%s", gofakeit.LetterN(11))
	default:
		proofURL = fmt.Sprintf("https://www.instagram.com/p/%s/", gofakeit.LetterN(11))
	}

	likes := int64(gofakeit.Number(100, 100000))
	comments := int64(gofakeit.Number(5, 5000))
	proof := &models.ProofOfPosting{
		SubmissionID: submission.ID,
		ProofURL:     proofURL,
		PostedAt:     time.Now().Add(-time.Duration(f.r.Intn(48)) * time.Hour),
		Status:       status,
		Metrics: &models.EngagementSnapshot{
			Likes:    &likes,
			Comments: &comments,
		},
	}
	if err := f.db.Create(proof).Error; err != nil {
		return nil, err
	}
	return proof, nil
}
