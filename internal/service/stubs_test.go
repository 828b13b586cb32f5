package service

import (
	"context"
	"errors"
	"testing"

	"creatorhub/internal/models"
	"creatorhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// submissionRepoStub is a stub for repository.SubmissionRepository.
type submissionRepoStub struct {
	createFn              func(context.Context, *models.Submission) error
	getByIDFn             func(context.Context, uint) (*models.Submission, error)
	listByCampaignFn      func(context.Context, uint, []models.SubmissionStatus, int, int) ([]*models.Submission, error)
	listByCreatorFn       func(context.Context, uint, int, int) ([]*models.Submission, error)
	countByCampCreatorFn  func(context.Context, uint, uint, []models.SubmissionStatus) (int64, error)
	reviewFn              func(context.Context, uint, uint, models.ReviewAction, string) (*models.Submission, error)
	resubmitFn            func(context.Context, uint, uint, repository.ResubmitInput) (*models.Submission, error)
	listReviewsFn         func(context.Context, uint) ([]*models.SubmissionReview, error)
	updatePaymentStatusFn func(context.Context, uint, models.PaymentStatus) error
}

func (s *submissionRepoStub) Create(ctx context.Context, submission *models.Submission) error {
	return s.createFn(ctx, submission)
}
func (s *submissionRepoStub) GetByID(ctx context.Context, id uint) (*models.Submission, error) {
	return s.getByIDFn(ctx, id)
}
func (s *submissionRepoStub) ListByCampaign(ctx context.Context, campaignID uint, statuses []models.SubmissionStatus, limit, offset int) ([]*models.Submission, error) {
	return s.listByCampaignFn(ctx, campaignID, statuses, limit, offset)
}
func (s *submissionRepoStub) ListByCreator(ctx context.Context, creatorID uint, limit, offset int) ([]*models.Submission, error) {
	return s.listByCreatorFn(ctx, creatorID, limit, offset)
}
func (s *submissionRepoStub) CountByCampaignAndCreator(ctx context.Context, campaignID, creatorID uint, statuses []models.SubmissionStatus) (int64, error) {
	return s.countByCampCreatorFn(ctx, campaignID, creatorID, statuses)
}
func (s *submissionRepoStub) Review(ctx context.Context, submissionID, reviewerID uint, action models.ReviewAction, feedback string) (*models.Submission, error) {
	return s.reviewFn(ctx, submissionID, reviewerID, action, feedback)
}
func (s *submissionRepoStub) Resubmit(ctx context.Context, submissionID, creatorID uint, in repository.ResubmitInput) (*models.Submission, error) {
	return s.resubmitFn(ctx, submissionID, creatorID, in)
}
func (s *submissionRepoStub) ListReviews(ctx context.Context, submissionID uint) ([]*models.SubmissionReview, error) {
	return s.listReviewsFn(ctx, submissionID)
}
func (s *submissionRepoStub) UpdatePaymentStatus(ctx context.Context, submissionID uint, status models.PaymentStatus) error {
	return s.updatePaymentStatusFn(ctx, submissionID, status)
}

func noopSubmissionRepo() *submissionRepoStub {
	return &submissionRepoStub{
		createFn:  func(_ context.Context, _ *models.Submission) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Submission, error) { return &models.Submission{}, nil },
		listByCampaignFn: func(_ context.Context, _ uint, _ []models.SubmissionStatus, _, _ int) ([]*models.Submission, error) {
			return nil, nil
		},
		listByCreatorFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Submission, error) { return nil, nil },
		countByCampCreatorFn: func(_ context.Context, _, _ uint, _ []models.SubmissionStatus) (int64, error) {
			return 0, nil
		},
		reviewFn: func(_ context.Context, _, _ uint, _ models.ReviewAction, _ string) (*models.Submission, error) {
			return &models.Submission{}, nil
		},
		resubmitFn: func(_ context.Context, _, _ uint, _ repository.ResubmitInput) (*models.Submission, error) {
			return &models.Submission{}, nil
		},
		listReviewsFn:         func(_ context.Context, _ uint) ([]*models.SubmissionReview, error) { return nil, nil },
		updatePaymentStatusFn: func(_ context.Context, _ uint, _ models.PaymentStatus) error { return nil },
	}
}

// campaignRepoStub is a stub for repository.CampaignRepository.
type campaignRepoStub struct {
	createFn       func(context.Context, *models.Campaign) error
	getByIDFn      func(context.Context, uint) (*models.Campaign, error)
	listActiveFn   func(context.Context, models.Platform, int, int) ([]*models.Campaign, error)
	listByBrandFn  func(context.Context, uint, int, int) ([]*models.Campaign, error)
	listByStatusFn func(context.Context, models.CampaignStatus, int, int) ([]*models.Campaign, error)
	updateFn       func(context.Context, *models.Campaign) error
	moderateFn     func(context.Context, uint, uint, models.CampaignStatus, string) (*models.Campaign, error)
}

func (s *campaignRepoStub) Create(ctx context.Context, campaign *models.Campaign) error {
	return s.createFn(ctx, campaign)
}
func (s *campaignRepoStub) GetByID(ctx context.Context, id uint) (*models.Campaign, error) {
	return s.getByIDFn(ctx, id)
}
func (s *campaignRepoStub) ListActive(ctx context.Context, platform models.Platform, limit, offset int) ([]*models.Campaign, error) {
	return s.listActiveFn(ctx, platform, limit, offset)
}
func (s *campaignRepoStub) ListByBrand(ctx context.Context, brandID uint, limit, offset int) ([]*models.Campaign, error) {
	return s.listByBrandFn(ctx, brandID, limit, offset)
}
func (s *campaignRepoStub) ListByStatus(ctx context.Context, status models.CampaignStatus, limit, offset int) ([]*models.Campaign, error) {
	return s.listByStatusFn(ctx, status, limit, offset)
}
func (s *campaignRepoStub) Update(ctx context.Context, campaign *models.Campaign) error {
	return s.updateFn(ctx, campaign)
}
func (s *campaignRepoStub) Moderate(ctx context.Context, campaignID, adminID uint, status models.CampaignStatus, notes string) (*models.Campaign, error) {
	return s.moderateFn(ctx, campaignID, adminID, status, notes)
}

func noopCampaignRepo() *campaignRepoStub {
	return &campaignRepoStub{
		createFn:  func(_ context.Context, _ *models.Campaign) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Campaign, error) { return &models.Campaign{}, nil },
		listActiveFn: func(_ context.Context, _ models.Platform, _, _ int) ([]*models.Campaign, error) {
			return nil, nil
		},
		listByBrandFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Campaign, error) { return nil, nil },
		listByStatusFn: func(_ context.Context, _ models.CampaignStatus, _, _ int) ([]*models.Campaign, error) {
			return nil, nil
		},
		updateFn: func(_ context.Context, _ *models.Campaign) error { return nil },
		moderateFn: func(_ context.Context, _, _ uint, _ models.CampaignStatus, _ string) (*models.Campaign, error) {
			return &models.Campaign{}, nil
		},
	}
}

// invitationRepoStub is a stub for repository.InvitationRepository.
type invitationRepoStub struct {
	createFn                  func(context.Context, *models.CampaignInvitation) error
	getByIDFn                 func(context.Context, uint) (*models.CampaignInvitation, error)
	getByCampaignAndCreatorFn func(context.Context, uint, uint) (*models.CampaignInvitation, error)
	listByCreatorFn           func(context.Context, uint, models.InvitationStatus, int, int) ([]*models.CampaignInvitation, error)
	listByCampaignFn          func(context.Context, uint, int, int) ([]*models.CampaignInvitation, error)
	respondFn                 func(context.Context, uint, uint, models.InvitationStatus) (*models.CampaignInvitation, error)
}

func (s *invitationRepoStub) Create(ctx context.Context, invitation *models.CampaignInvitation) error {
	return s.createFn(ctx, invitation)
}
func (s *invitationRepoStub) GetByID(ctx context.Context, id uint) (*models.CampaignInvitation, error) {
	return s.getByIDFn(ctx, id)
}
func (s *invitationRepoStub) GetByCampaignAndCreator(ctx context.Context, campaignID, creatorID uint) (*models.CampaignInvitation, error) {
	return s.getByCampaignAndCreatorFn(ctx, campaignID, creatorID)
}
func (s *invitationRepoStub) ListByCreator(ctx context.Context, creatorID uint, status models.InvitationStatus, limit, offset int) ([]*models.CampaignInvitation, error) {
	return s.listByCreatorFn(ctx, creatorID, status, limit, offset)
}
func (s *invitationRepoStub) ListByCampaign(ctx context.Context, campaignID uint, limit, offset int) ([]*models.CampaignInvitation, error) {
	return s.listByCampaignFn(ctx, campaignID, limit, offset)
}
func (s *invitationRepoStub) Respond(ctx context.Context, invitationID, creatorID uint, status models.InvitationStatus) (*models.CampaignInvitation, error) {
	return s.respondFn(ctx, invitationID, creatorID, status)
}

func noopInvitationRepo() *invitationRepoStub {
	return &invitationRepoStub{
		createFn: func(_ context.Context, _ *models.CampaignInvitation) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.CampaignInvitation, error) {
			return &models.CampaignInvitation{}, nil
		},
		getByCampaignAndCreatorFn: func(_ context.Context, _, _ uint) (*models.CampaignInvitation, error) {
			return &models.CampaignInvitation{Status: models.InvitationStatusAccepted}, nil
		},
		listByCreatorFn: func(_ context.Context, _ uint, _ models.InvitationStatus, _, _ int) ([]*models.CampaignInvitation, error) {
			return nil, nil
		},
		listByCampaignFn: func(_ context.Context, _ uint, _, _ int) ([]*models.CampaignInvitation, error) {
			return nil, nil
		},
		respondFn: func(_ context.Context, _, _ uint, _ models.InvitationStatus) (*models.CampaignInvitation, error) {
			return &models.CampaignInvitation{}, nil
		},
	}
}

// proofRepoStub is a stub for repository.ProofRepository.
type proofRepoStub struct {
	createFn            func(context.Context, *models.ProofOfPosting) error
	getByIDFn           func(context.Context, uint) (*models.ProofOfPosting, error)
	getBySubmissionIDFn func(context.Context, uint) (*models.ProofOfPosting, error)
	listByStatusFn      func(context.Context, models.ProofStatus, int, int) ([]*models.ProofOfPosting, error)
	verifyFn            func(context.Context, uint) (*models.ProofOfPosting, error)
}

func (s *proofRepoStub) Create(ctx context.Context, proof *models.ProofOfPosting) error {
	return s.createFn(ctx, proof)
}
func (s *proofRepoStub) GetByID(ctx context.Context, id uint) (*models.ProofOfPosting, error) {
	return s.getByIDFn(ctx, id)
}
func (s *proofRepoStub) GetBySubmissionID(ctx context.Context, submissionID uint) (*models.ProofOfPosting, error) {
	return s.getBySubmissionIDFn(ctx, submissionID)
}
func (s *proofRepoStub) ListByStatus(ctx context.Context, status models.ProofStatus, limit, offset int) ([]*models.ProofOfPosting, error) {
	return s.listByStatusFn(ctx, status, limit, offset)
}
func (s *proofRepoStub) Verify(ctx context.Context, proofID uint) (*models.ProofOfPosting, error) {
	return s.verifyFn(ctx, proofID)
}

func noopProofRepo() *proofRepoStub {
	return &proofRepoStub{
		createFn:            func(_ context.Context, _ *models.ProofOfPosting) error { return nil },
		getByIDFn:           func(_ context.Context, _ uint) (*models.ProofOfPosting, error) { return &models.ProofOfPosting{}, nil },
		getBySubmissionIDFn: func(_ context.Context, _ uint) (*models.ProofOfPosting, error) { return nil, nil },
		listByStatusFn: func(_ context.Context, _ models.ProofStatus, _, _ int) ([]*models.ProofOfPosting, error) {
			return nil, nil
		},
		verifyFn: func(_ context.Context, _ uint) (*models.ProofOfPosting, error) { return &models.ProofOfPosting{}, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, models.UserRole, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, role models.UserRole, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, role, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleCreator, Status: models.UserStatusActive}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		listFn:          func(_ context.Context, _ models.UserRole, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

// assertErrorCode asserts that err is an AppError with the given code.
func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
