// Package notifications provides real-time notification delivery over Redis pub/sub.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"runtime/debug"
	"strconv"
	"time"

	"creatorhub/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Event kinds delivered to connected clients.
const (
	KindSubmissionReviewed = "submission_reviewed"
	KindProofSubmitted     = "proof_submitted"
	KindProofVerified      = "proof_verified"
	KindInvitationCreated  = "invitation_created"
	KindInvitationAnswered = "invitation_answered"
	KindCampaignModerated  = "campaign_moderated"
)

// Event is the JSON envelope published to user channels.
type Event struct {
	Kind      string         `json:"kind"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

// Notifier provides helpers to publish notifications into Redis channels
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishUser sends a notification payload to a user's channel.
func (n *Notifier) PublishUser(ctx context.Context, userID uint, payload string) error {
	if n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, UserChannel(userID), payload).Err()
}

// PublishBroadcast sends a notification payload to all connected users.
func (n *Notifier) PublishBroadcast(ctx context.Context, payload string) error {
	if n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, "notifications:broadcast", payload).Err()
}

// PublishEvent marshals an Event envelope and sends it to a user's channel.
func (n *Notifier) PublishEvent(ctx context.Context, userID uint, kind string, payload map[string]any) error {
	if n.rdb == nil {
		return nil
	}
	ev := Event{Kind: kind, Payload: payload, CreatedAt: time.Now().UTC()}
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	observability.NotificationsPublished.WithLabelValues(kind).Inc()
	return n.PublishUser(ctx, userID, string(b))
}

// NotifyReviewDecision tells a creator the outcome of a review pass.
func (n *Notifier) NotifyReviewDecision(ctx context.Context, creatorID, submissionID uint, action, status, feedback string) error {
	return n.PublishEvent(ctx, creatorID, KindSubmissionReviewed, map[string]any{
		"submission_id": submissionID,
		"action":        action,
		"status":        status,
		"feedback":      feedback,
	})
}

// NotifyProofSubmitted tells a brand that a creator posted proof for an
// approved submission.
func (n *Notifier) NotifyProofSubmitted(ctx context.Context, brandID, submissionID uint, proofURL string) error {
	return n.PublishEvent(ctx, brandID, KindProofSubmitted, map[string]any{
		"submission_id": submissionID,
		"proof_url":     proofURL,
	})
}

// NotifyProofVerified tells a creator their proof was verified and the
// payment state moved forward.
func (n *Notifier) NotifyProofVerified(ctx context.Context, creatorID, submissionID uint, paymentStatus string) error {
	return n.PublishEvent(ctx, creatorID, KindProofVerified, map[string]any{
		"submission_id":  submissionID,
		"payment_status": paymentStatus,
	})
}

// NotifyInvitation tells a creator they were invited to a campaign.
func (n *Notifier) NotifyInvitation(ctx context.Context, creatorID, campaignID, invitationID uint, campaignTitle string) error {
	return n.PublishEvent(ctx, creatorID, KindInvitationCreated, map[string]any{
		"campaign_id":    campaignID,
		"invitation_id":  invitationID,
		"campaign_title": campaignTitle,
	})
}

// NotifyInvitationAnswer tells a brand that a creator accepted or declined.
func (n *Notifier) NotifyInvitationAnswer(ctx context.Context, brandID, campaignID, invitationID uint, status string) error {
	return n.PublishEvent(ctx, brandID, KindInvitationAnswered, map[string]any{
		"campaign_id":   campaignID,
		"invitation_id": invitationID,
		"status":        status,
	})
}

// NotifyCampaignModerated tells a brand the moderation outcome for a campaign.
func (n *Notifier) NotifyCampaignModerated(ctx context.Context, brandID, campaignID uint, status, notes string) error {
	return n.PublishEvent(ctx, brandID, KindCampaignModerated, map[string]any{
		"campaign_id": campaignID,
		"status":      status,
		"notes":       notes,
	})
}

// StartPatternSubscriber subscribes to pattern `notifications:user:*` and calls onMessage
// for each incoming message. onMessage receives channel and payload.
func (n *Notifier) StartPatternSubscriber(
	ctx context.Context, onMessage func(channel string, payload string),
) error {
	if n.rdb == nil {
		return nil
	}
	sub := n.rdb.PSubscribe(ctx, "notifications:user:*", "notifications:broadcast")
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("PANIC in PatternSubscriber: %v\n%s", r, debug.Stack())
						}
					}()
					onMessage(msg.Channel, msg.Payload)
				}()
			}
		}
	}()

	return nil
}

// UserChannel derives the Redis channel name for a user.
func UserChannel(userID uint) string {
	return "notifications:user:" + strconv.FormatUint(uint64(userID), 10)
}
