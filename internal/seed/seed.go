package seed

import (
	"fmt"
	"log"

	"creatorhub/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumBrands    int
	NumCreators  int
	NumCampaigns int
	ShouldClean  bool
}

// Seed populates the database with a demo marketplace: brands with active
// campaigns, invited creators, and submissions spread across the review
// workflow including approved content with proofs.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d brands, %d creators, %d campaigns...", opts.NumBrands, opts.NumCreators, opts.NumCampaigns)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway")
		}
	}

	f := NewFactory(db)

	admin, err := f.CreateUser(models.RoleAdmin, func(u *models.User) {
		u.Username = "admin"
		u.Email = "admin@creatorhub.dev"
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	brands := make([]*models.User, 0, opts.NumBrands)
	for i := 0; i < opts.NumBrands; i++ {
		brand, err := f.CreateUser(models.RoleBrand)
		if err != nil {
			return fmt.Errorf("failed to create brand: %w", err)
		}
		brands = append(brands, brand)
	}

	creators := make([]*models.User, 0, opts.NumCreators)
	for i := 0; i < opts.NumCreators; i++ {
		creator, err := f.CreateUser(models.RoleCreator)
		if err != nil {
			return fmt.Errorf("failed to create creator: %w", err)
		}
		creators = append(creators, creator)
	}
	log.Printf("Created %d brands and %d creators", len(brands), len(creators))

	for i := 0; i < opts.NumCampaigns; i++ {
		brand := brands[i%len(brands)]
		campaign, err := f.CreateCampaign(brand)
		if err != nil {
			return fmt.Errorf("failed to create campaign: %w", err)
		}
		if campaign.Status == models.CampaignStatusActive {
			campaign.ReviewedByUserID = &admin.ID
			if err := db.Save(campaign).Error; err != nil {
				return fmt.Errorf("failed to stamp campaign moderation: %w", err)
			}
		}

		if err := seedCampaignActivity(f, campaign, brand, creators); err != nil {
			return err
		}
	}

	log.Println("Seeding complete")
	return nil
}

// seedCampaignActivity walks a few creators through the workflow so every
// state shows up in a fresh database.
func seedCampaignActivity(f *Factory, campaign *models.Campaign, brand *models.User, creators []*models.User) error {
	if len(creators) == 0 {
		return nil
	}

	limit := 4
	if limit > len(creators) {
		limit = len(creators)
	}
	invited := creators[:limit]

	for i, creator := range invited {
		switch i {
		case 0:
			// Declined: no submissions follow.
			if _, err := f.CreateInvitation(campaign, creator, models.InvitationStatusDeclined); err != nil {
				return err
			}
		case 1:
			// Accepted with a fresh submission awaiting review.
			if _, err := f.CreateInvitation(campaign, creator, models.InvitationStatusAccepted); err != nil {
				return err
			}
			if _, err := f.CreateSubmission(campaign, creator, models.SubmissionStatusSubmitted); err != nil {
				return err
			}
		case 2:
			// One revision round already used.
			if _, err := f.CreateInvitation(campaign, creator, models.InvitationStatusAccepted); err != nil {
				return err
			}
			submission, err := f.CreateSubmission(campaign, creator, models.SubmissionStatusRevisionRequested)
			if err != nil {
				return err
			}
			if _, err := f.CreateReview(submission, brand, models.ReviewActionRequestRevision); err != nil {
				return err
			}
		case 3:
			// Approved, posted, and verified.
			if _, err := f.CreateInvitation(campaign, creator, models.InvitationStatusAccepted); err != nil {
				return err
			}
			submission, err := f.CreateSubmission(campaign, creator, models.SubmissionStatusApproved, func(s *models.Submission) {
				s.PaymentStatus = models.PaymentStatusPaid
			})
			if err != nil {
				return err
			}
			if _, err := f.CreateReview(submission, brand, models.ReviewActionApprove); err != nil {
				return err
			}
			if _, err := f.CreateProof(submission, models.ProofStatusVerified); err != nil {
				return err
			}
		}
	}
	return nil
}

func clearData(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE proofs, submission_reviews, submissions, campaign_invitations, campaigns, users CASCADE").Error
}
