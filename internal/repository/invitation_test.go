package repository

import (
	"context"
	"testing"

	"creatorhub/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitationRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()

	invitation := &models.CampaignInvitation{
		CampaignID: 1,
		CreatorID:  2,
		OfferCents: 50000,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "campaign_invitations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, invitation)
	assert.NoError(t, err)
	assert.Equal(t, models.InvitationStatusPending, invitation.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_Create_Duplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "campaign_invitations"`).
		WillReturnError(&mockPgError{msg: `duplicate key value violates unique constraint "idx_campaign_creator"`})
	mock.ExpectRollback()

	err := repo.Create(ctx, &models.CampaignInvitation{CampaignID: 1, CreatorID: 2})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type mockPgError struct{ msg string }

func (e *mockPgError) Error() string { return e.msg }

func TestInvitationRepository_Respond(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "campaign_invitations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Reload after the update, with Campaign and Creator preloads.
	mock.ExpectQuery(`SELECT \* FROM "campaign_invitations" WHERE "campaign_invitations"\."id" =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "campaign_id", "creator_id", "status"}).
			AddRow(1, 1, 2, "accepted"))
	mock.ExpectQuery(`SELECT \* FROM "campaigns"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Spring Launch"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(2, "creator2"))

	invitation, err := repo.Respond(ctx, 1, 2, models.InvitationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusAccepted, invitation.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvitationRepository_Respond_AlreadyAnswered(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "campaign_invitations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "campaign_invitations" WHERE "campaign_invitations"\."id" =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "campaign_id", "creator_id", "status"}).
			AddRow(1, 1, 2, "declined"))
	mock.ExpectQuery(`SELECT \* FROM "campaigns"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Spring Launch"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(2, "creator2"))

	_, err := repo.Respond(ctx, 1, 2, models.InvitationStatusAccepted)
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
	assert.NoError(t, mock.ExpectationsWereMet())
}
