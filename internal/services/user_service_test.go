package services_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gigmarket_backend/internal/repositories"
	"gigmarket_backend/internal/services"
	"gigmarket_backend/pkg/apperrors"
)

func newUserService(db *gorm.DB) *services.UserService {
	return services.NewUserService(
		repositories.NewUserRepository(db),
		repositories.NewGigRepository(db),
		repositories.NewBidRepository(db),
	)
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

// Фрилансера наняли 5 раз за всю историю (3 активных + 2 завершенных).
// GigsHired считает историю, CurrentlyAssigned - только активные.
func TestDashboardStats_HiredVsCurrentlyAssigned(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newUserService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "gigs"`).WillReturnRows(countRows(4))  // posted
	mock.ExpectQuery(`SELECT count\(\*\) FROM "gigs"`).WillReturnRows(countRows(1))  // completed as owner
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bids"`).WillReturnRows(countRows(10)) // submitted
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bids"`).WillReturnRows(countRows(5))  // hired + completed
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bids"`).WillReturnRows(countRows(3))  // hired only
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bids"`).WillReturnRows(countRows(2))  // completed only

	stats, err := svc.DashboardStats(context.Background(), freelancerID)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.GigsPosted)
	assert.Equal(t, int64(1), stats.GigsCompleted)
	assert.Equal(t, int64(10), stats.BidsSubmitted)
	assert.Equal(t, int64(5), stats.GigsHired)
	assert.Equal(t, int64(3), stats.CurrentlyAssigned)
	assert.Equal(t, int64(2), stats.JobsCompleted)
	assert.Greater(t, stats.GigsHired, stats.CurrentlyAssigned)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardBids_UnknownFilter(t *testing.T) {
	db, _ := newMockDB(t)
	svc := newUserService(db)

	_, err := svc.DashboardBids(context.Background(), freelancerID, "archived")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

// Фильтры hired и active различаются так же, как счетчики:
// hired захватывает завершенные отклики, active - нет
func TestDashboardBids_FilterStatuses(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newUserService(db)

	mock.ExpectQuery(`SELECT \* FROM "bids" WHERE freelancer_id = \$1 AND status IN \(\$2,\$3\)`).
		WithArgs(freelancerID, "hired", "completed").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.DashboardBids(context.Background(), freelancerID, "hired")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "bids" WHERE freelancer_id = \$1 AND status IN \(\$2\)`).
		WithArgs(freelancerID, "hired").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = svc.DashboardBids(context.Background(), freelancerID, "active")
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardStats_EmptyAccount(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newUserService(db)

	for i := 0; i < 6; i++ {
		mock.ExpectQuery(`SELECT count\(\*\) FROM`).WillReturnRows(countRows(0))
	}

	stats, err := svc.DashboardStats(context.Background(), strangerID)
	require.NoError(t, err)
	assert.Zero(t, stats.GigsPosted)
	assert.Zero(t, stats.GigsHired)
	assert.Zero(t, stats.CurrentlyAssigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}
