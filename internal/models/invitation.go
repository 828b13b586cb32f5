package models

import "time"

// InvitationStatus defines lifecycle states for campaign invitations.
type InvitationStatus string

const (
	// InvitationStatusPending indicates the creator has not responded yet.
	InvitationStatusPending InvitationStatus = "pending"
	// InvitationStatusAccepted indicates the creator joined the campaign.
	InvitationStatusAccepted InvitationStatus = "accepted"
	// InvitationStatusDeclined indicates the creator turned the offer down.
	InvitationStatusDeclined InvitationStatus = "declined"
)

// CampaignInvitation links a creator to a campaign with an offer.
// An accepted invitation is what authorizes the creator to submit content.
type CampaignInvitation struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	CampaignID  uint             `gorm:"not null;uniqueIndex:idx_campaign_creator" json:"campaign_id"`
	Campaign    *Campaign        `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	CreatorID   uint             `gorm:"not null;uniqueIndex:idx_campaign_creator" json:"creator_id"`
	Creator     *User            `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	OfferCents  int64            `gorm:"not null;default:0" json:"offer_cents"`
	Status      InvitationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	RespondedAt *time.Time       `json:"responded_at"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (CampaignInvitation) TableName() string {
	return "campaign_invitations"
}
