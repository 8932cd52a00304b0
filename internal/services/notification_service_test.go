package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigmarket_backend/internal/repositories"
	"gigmarket_backend/internal/services"
	"gigmarket_backend/pkg/apperrors"
)

const notificationID = "eeeeeeee-eeee-eeee-eeee-eeeeeeeeeeee"

func notificationRows(userID string, isRead bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "user_id", "type", "message", "is_read"}).
		AddRow(notificationID, time.Now(), userID, "HIRED", "🎉 You have been hired!", isRead)
}

func TestMarkRead_Success(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewNotificationService(repositories.NewNotificationRepository(db))

	mock.ExpectQuery(`SELECT \* FROM "notifications"`).
		WillReturnRows(notificationRows(freelancerID, false))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.MarkRead(context.Background(), notificationID, freelancerID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Чужое уведомление нельзя ни прочитать, ни пометить
func TestMarkRead_ForeignNotification(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewNotificationService(repositories.NewNotificationRepository(db))

	mock.ExpectQuery(`SELECT \* FROM "notifications"`).
		WillReturnRows(notificationRows(freelancerID, false))

	err := svc.MarkRead(context.Background(), notificationID, strangerID)
	assert.ErrorIs(t, err, apperrors.ErrNotificationAccessDenied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Повторная пометка - no-op без апдейта
func TestMarkRead_AlreadyRead(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewNotificationService(repositories.NewNotificationRepository(db))

	mock.ExpectQuery(`SELECT \* FROM "notifications"`).
		WillReturnRows(notificationRows(freelancerID, true))

	err := svc.MarkRead(context.Background(), notificationID, freelancerID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewNotificationService(repositories.NewNotificationRepository(db))

	mock.ExpectQuery(`SELECT \* FROM "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.MarkRead(context.Background(), notificationID, freelancerID)
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnreadCount(t *testing.T) {
	db, mock := newMockDB(t)
	svc := services.NewNotificationService(repositories.NewNotificationRepository(db))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications"`).
		WillReturnRows(countRows(7))

	count, err := svc.UnreadCount(context.Background(), freelancerID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
