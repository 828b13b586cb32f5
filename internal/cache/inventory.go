package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix            = "user:%d"
	CampaignKeyPrefix        = "campaign:%d"
	SubmissionKeyPrefix      = "submission:%d"
	CampaignListKey          = "campaigns:active"
	CreatorInvitationsPrefix = "invitations:creator:%d"
)

const (
	UserTTL         = 5 * time.Minute
	CampaignTTL     = 10 * time.Minute
	CampaignListTTL = 2 * time.Minute
	SubmissionTTL   = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func CampaignKey(campaignID uint) string {
	return fmt.Sprintf(CampaignKeyPrefix, campaignID)
}

func SubmissionKey(submissionID uint) string {
	return fmt.Sprintf(SubmissionKeyPrefix, submissionID)
}

func CreatorInvitationsKey(creatorID uint) string {
	return fmt.Sprintf(CreatorInvitationsPrefix, creatorID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateCampaign(ctx context.Context, campaignID uint) {
	Invalidate(ctx, CampaignKey(campaignID))
	Invalidate(ctx, CampaignListKey)
}

func InvalidateSubmission(ctx context.Context, submissionID uint) {
	Invalidate(ctx, SubmissionKey(submissionID))
}

func InvalidateCreatorInvitations(ctx context.Context, creatorID uint) {
	Invalidate(ctx, CreatorInvitationsKey(creatorID))
}
