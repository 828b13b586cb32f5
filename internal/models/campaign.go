package models

import "time"

// Platform identifies the social network a campaign targets.
type Platform string

const (
	// PlatformInstagram targets instagram.com.
	PlatformInstagram Platform = "instagram"
	// PlatformTikTok targets tiktok.com.
	PlatformTikTok Platform = "tiktok"
	// PlatformYouTube targets youtube.com / youtu.be.
	PlatformYouTube Platform = "youtube"
)

// KnownPlatforms lists every platform the marketplace supports.
var KnownPlatforms = []Platform{PlatformInstagram, PlatformTikTok, PlatformYouTube}

// CampaignStatus defines the moderation lifecycle of a campaign.
type CampaignStatus string

const (
	// CampaignStatusPending indicates the campaign is awaiting admin review.
	CampaignStatusPending CampaignStatus = "pending"
	// CampaignStatusActive indicates the campaign accepts submissions.
	CampaignStatusActive CampaignStatus = "active"
	// CampaignStatusRejected indicates an admin declined the campaign.
	CampaignStatusRejected CampaignStatus = "rejected"
	// CampaignStatusCompleted indicates the brand closed the campaign.
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Campaign is a brand's influencer-marketing campaign.
type Campaign struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	BrandID          uint           `gorm:"not null;index" json:"brand_id"`
	Brand            *User          `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Name             string         `gorm:"size:160;not null" json:"name"`
	Brief            string         `gorm:"type:text" json:"brief"`
	Platform         Platform       `gorm:"type:varchar(20);not null" json:"platform"`
	BudgetCents      int64          `gorm:"not null;default:0" json:"budget_cents"`
	Status           CampaignStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ReviewedByUserID *uint          `json:"reviewed_by_user_id"`
	ReviewNotes      string         `gorm:"type:text" json:"review_notes"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Campaign) TableName() string {
	return "campaigns"
}
