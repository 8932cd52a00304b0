package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для ошибок бизнес-логики маркетплейса (gigs, bids, notifications).
*/

// =========================================================================
// Фабричные функции
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrInvalidStatus - операция невозможна в текущем статусе сущности (409)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// =========================================================================
// Предопределенные переменные
// =========================================================================

// --- Gigs ---

// ErrGigNotFound - гиг не найден
var ErrGigNotFound = New(
	CodeNotFound,
	"gig",
	"Gig not found",
	http.StatusNotFound,
)

// ErrGigNotOpen - гиг уже не принимает изменений (нанят исполнитель
// или работа завершена). Покрывает гонку двух конкурентных наймов:
// второй коммит видит status != open.
var ErrGigNotOpen = New(
	CodeInvalidStatus,
	"gig",
	"Gig is no longer open",
	http.StatusConflict,
)

// ErrNotGigOwner - действие доступно только владельцу гига
var ErrNotGigOwner = New(
	CodeUnauthorized,
	"gig",
	"Not authorized to manage this gig",
	http.StatusUnauthorized,
)

// --- Bids ---

// ErrBidNotFound - отклик не найден
var ErrBidNotFound = New(
	CodeNotFound,
	"bid",
	"Bid not found",
	http.StatusNotFound,
)

// ErrBidGigMismatch - отклик не принадлежит указанному гигу
var ErrBidGigMismatch = New(
	CodeNotFound,
	"bid",
	"Bid does not belong to this gig",
	http.StatusNotFound,
)

// ErrDuplicateBid - у фрилансера уже есть отклик на этот гиг
var ErrDuplicateBid = New(
	CodeAlreadyExists,
	"bid",
	"You have already placed a bid on this gig",
	http.StatusConflict,
)

// ErrBidNotPending - нанять можно только отклик в статусе pending
var ErrBidNotPending = New(
	CodeInvalidStatus,
	"bid",
	"Bid is no longer pending",
	http.StatusConflict,
)

// ErrBidNotHired - завершить можно только нанятый отклик
var ErrBidNotHired = New(
	CodeInvalidStatus,
	"bid",
	"Only hired jobs can be completed",
	http.StatusConflict,
)

// ErrNotBidOwner - действие доступно только автору отклика
var ErrNotBidOwner = New(
	CodeUnauthorized,
	"bid",
	"Not authorized to complete this job",
	http.StatusUnauthorized,
)

// ErrOwnGigBid - владелец не может откликаться на собственный гиг
var ErrOwnGigBid = New(
	CodeForbidden,
	"bid",
	"Owner cannot bid on their own gig",
	http.StatusForbidden,
)

// --- Notifications ---

// ErrNotificationNotFound - уведомление не найдено
var ErrNotificationNotFound = New(
	CodeNotFound,
	"notification",
	"Notification not found",
	http.StatusNotFound,
)

// ErrNotificationAccessDenied - читать и помечать можно только свои уведомления
var ErrNotificationAccessDenied = New(
	CodeForbidden,
	"notification",
	"Access to notification denied",
	http.StatusForbidden,
)

// --- Auth ---

// ErrInvalidToken - неверный или просроченный токен
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
