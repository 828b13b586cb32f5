package database

import (
	"fmt"

	"creatorhub/internal/models"

	"gorm.io/gorm"
)

// Migrate runs AutoMigrate for every model in the application schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Campaign{},
		&models.CampaignInvitation{},
		&models.Submission{},
		&models.SubmissionReview{},
		&models.ProofOfPosting{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
