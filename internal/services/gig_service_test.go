package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gigmarket_backend/internal/repositories"
	"gigmarket_backend/internal/services"
	"gigmarket_backend/internal/services/dto"
	"gigmarket_backend/pkg/apperrors"
)

func newGigService(db *gorm.DB) *services.GigService {
	return services.NewGigService(repositories.NewGigRepository(db), repositories.NewBidRepository(db))
}

func TestCreateGig(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newGigService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "gigs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(gigID, time.Now()))
	mock.ExpectCommit()

	gig, err := svc.Create(context.Background(), ownerID, dto.CreateGigRequest{
		Title:       "Build landing page",
		Description: "Static landing page for product launch",
		Budget:      1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "open", string(gig.Status))
	assert.Equal(t, ownerID, gig.OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGig_ValidationFails(t *testing.T) {
	db, _ := newMockDB(t)
	svc := newGigService(db)

	_, err := svc.Create(context.Background(), ownerID, dto.CreateGigRequest{
		Title:       "x",
		Description: "short",
		Budget:      -5,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestListGigs_UnknownStatusFilter(t *testing.T) {
	db, _ := newMockDB(t)
	svc := newGigService(db)

	_, err := svc.List(context.Background(), dto.GigListQuery{Status: "archived"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

// Публичная лента без фильтра показывает только открытые гиги
func TestListGigs_DefaultsToOpen(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newGigService(db)

	mock.ExpectQuery(`SELECT \* FROM "gigs" WHERE status = \$1`).
		WithArgs("open").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.List(context.Background(), dto.GigListQuery{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGig_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newGigService(db)

	mock.ExpectQuery(`SELECT \* FROM "gigs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.GetByID(context.Background(), gigID)
	assert.ErrorIs(t, err, apperrors.ErrGigNotFound)
}

// Отклики гига видит только владелец
func TestListBids_OnlyOwner(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newGigService(db)

	mock.ExpectQuery(`SELECT \* FROM "gigs"`).WillReturnRows(gigRows("open", ownerID))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(ownerID))

	_, err := svc.ListBids(context.Background(), gigID, strangerID)
	assert.ErrorIs(t, err, apperrors.ErrNotGigOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}
