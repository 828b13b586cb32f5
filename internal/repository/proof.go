package repository

import (
	"context"
	"errors"
	"time"

	"creatorhub/internal/models"
	"creatorhub/internal/observability"

	"gorm.io/gorm"
)

// ErrProofExists means a proof is already on file for the submission.
var ErrProofExists = errors.New("proof already exists for submission")

// ProofRepository defines persistence operations for proofs of posting.
type ProofRepository interface {
	Create(ctx context.Context, proof *models.ProofOfPosting) error
	GetByID(ctx context.Context, id uint) (*models.ProofOfPosting, error)
	GetBySubmissionID(ctx context.Context, submissionID uint) (*models.ProofOfPosting, error)
	ListByStatus(ctx context.Context, status models.ProofStatus, limit, offset int) ([]*models.ProofOfPosting, error)
	Verify(ctx context.Context, proofID uint) (*models.ProofOfPosting, error)
}

type proofRepository struct {
	db *gorm.DB
}

// NewProofRepository returns a new ProofRepository implementation.
func NewProofRepository(db *gorm.DB) ProofRepository {
	return &proofRepository{db: db}
}

// Create inserts the proof and flips the submission's payment state to
// pending in the same transaction. The unique index on submission_id is
// the backstop against double submission.
func (r *proofRepository) Create(ctx context.Context, proof *models.ProofOfPosting) error {
	defer observability.ObserveQuery("create", "proofs", time.Now())
	proof.Status = models.ProofStatusSubmitted

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(proof).Error; err != nil {
			if isUniqueConstraintError(err) {
				return ErrProofExists
			}
			return models.NewInternalError(err)
		}
		if err := tx.Model(&models.Submission{}).
			Where("id = ?", proof.SubmissionID).
			Update("payment_status", models.PaymentStatusPending).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
}

func (r *proofRepository) GetByID(ctx context.Context, id uint) (*models.ProofOfPosting, error) {
	var proof models.ProofOfPosting
	err := r.db.WithContext(ctx).
		Preload("Submission").
		First(&proof, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Proof", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &proof, nil
}

func (r *proofRepository) GetBySubmissionID(ctx context.Context, submissionID uint) (*models.ProofOfPosting, error) {
	var proof models.ProofOfPosting
	err := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		First(&proof).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &proof, nil
}

func (r *proofRepository) ListByStatus(ctx context.Context, status models.ProofStatus, limit, offset int) ([]*models.ProofOfPosting, error) {
	var proofs []*models.ProofOfPosting
	q := r.db.WithContext(ctx).Preload("Submission")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&proofs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return proofs, nil
}

// Verify marks the proof verified and settles the submission payment in
// one transaction.
func (r *proofRepository) Verify(ctx context.Context, proofID uint) (*models.ProofOfPosting, error) {
	var proof models.ProofOfPosting
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&proof, proofID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Proof", proofID)
			}
			return models.NewInternalError(err)
		}
		if proof.Status == models.ProofStatusVerified {
			return models.NewConflictError("proof has already been verified")
		}

		proof.Status = models.ProofStatusVerified
		if err := tx.Save(&proof).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Model(&models.Submission{}).
			Where("id = ?", proof.SubmissionID).
			Update("payment_status", models.PaymentStatusPaid).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &proof, nil
}
