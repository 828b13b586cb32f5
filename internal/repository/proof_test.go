package repository

import (
	"context"
	"testing"

	"creatorhub/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProofRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProofRepository(db)
	ctx := context.Background()

	proof := &models.ProofOfPosting{
		SubmissionID: 1,
		ProofURL:     "https://www.instagram.com/p/abc123/",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "proofs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "submissions" SET "payment_status"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(ctx, proof)
	require.NoError(t, err)
	assert.Equal(t, models.ProofStatusSubmitted, proof.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProofRepository_Create_Duplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProofRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "proofs"`).
		WillReturnError(&mockPgError{msg: `duplicate key value violates unique constraint "idx_proofs_submission_id"`})
	mock.ExpectRollback()

	err := repo.Create(ctx, &models.ProofOfPosting{SubmissionID: 1, ProofURL: "https://www.instagram.com/p/abc123/"})
	assert.ErrorIs(t, err, ErrProofExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProofRepository_Verify(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProofRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "proofs" WHERE "proofs"\."id" =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "submission_id", "status", "proof_url"}).
			AddRow(1, 4, "submitted", "https://www.tiktok.com/@u/video/1"))
	mock.ExpectExec(`UPDATE "proofs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "submissions" SET "payment_status"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	proof, err := repo.Verify(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ProofStatusVerified, proof.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProofRepository_Verify_AlreadyVerified(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProofRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "proofs" WHERE "proofs"\."id" =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "submission_id", "status"}).
			AddRow(1, 4, "verified"))
	mock.ExpectRollback()

	_, err := repo.Verify(ctx, 1)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProofRepository_GetBySubmissionID_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProofRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT \* FROM "proofs" WHERE submission_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	proof, err := repo.GetBySubmissionID(ctx, 404)
	assert.NoError(t, err)
	assert.Nil(t, proof)
	assert.NoError(t, mock.ExpectationsWereMet())
}
