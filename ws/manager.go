package ws

import (
	"encoding/json"
	"fmt"

	"gigmarket_backend/internal/logger"
	"gigmarket_backend/internal/services/dto"
)

type pushMessage struct {
	userID  string
	payload []byte
}

// WebSocketManager - хаб websocket-соединений, ключ - ID пользователя.
// Один пользователь может держать несколько соединений (вкладки),
// пуш уходит во все. Вся работа с картой clients - только в Run.
type WebSocketManager struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	push       chan pushMessage
	done       chan struct{}
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		push:       make(chan pushMessage, 64),
		done:       make(chan struct{}),
	}
}

// Run крутит цикл хаба. Запускать в отдельной горутине.
func (m *WebSocketManager) Run() {
	for {
		select {
		case client := <-m.register:
			if m.clients[client.userID] == nil {
				m.clients[client.userID] = make(map[*Client]bool)
			}
			m.clients[client.userID][client] = true
			logger.Info("ws client connected", "user_id", client.userID)

		case client := <-m.unregister:
			if conns, ok := m.clients[client.userID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(m.clients, client.userID)
					}
					logger.Info("ws client disconnected", "user_id", client.userID)
				}
			}

		case msg := <-m.push:
			for client := range m.clients[msg.userID] {
				select {
				case client.send <- msg.payload:
				default:
					// Медленный клиент не должен тормозить хаб
					delete(m.clients[msg.userID], client)
					close(client.send)
				}
			}

		case <-m.done:
			for _, conns := range m.clients {
				for client := range conns {
					close(client.send)
				}
			}
			m.clients = make(map[string]map[*Client]bool)
			return
		}
	}
}

// Stop останавливает цикл хаба и закрывает все каналы отправки
func (m *WebSocketManager) Stop() {
	close(m.done)
}

// PushToUser доставляет уведомление всем соединениям пользователя.
// Отсутствие соединений не ошибка: запись уже сохранена, клиент
// заберет ее по REST.
func (m *WebSocketManager) PushToUser(userID string, payload dto.NotificationPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}

	select {
	case <-m.done:
		return fmt.Errorf("websocket manager stopped")
	default:
	}

	select {
	case m.push <- pushMessage{userID: userID, payload: raw}:
		return nil
	case <-m.done:
		return fmt.Errorf("websocket manager stopped")
	}
}
