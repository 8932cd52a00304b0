package dto

// NotificationPayload - то, что уходит в websocket при пуше.
// Дублирует долговечную запись, но без флагов прочтения.
type NotificationPayload struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Message string      `json:"message"`
	GigID   *string     `json:"gig_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
