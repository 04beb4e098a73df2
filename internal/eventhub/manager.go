package eventhub

import (
	"log"

	"tenanta/backend/internal/models"
)

// Manager is the event hub: it owns the set of connected clients and fans
// every registry mutation out to all of them, so UI collaborators can
// re-read the affected collection. It satisfies registry.EventPublisher.
type Manager struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	EventsCh     chan models.Event
}

func NewManager() *Manager {
	return &Manager{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		EventsCh:     make(chan models.Event, 256),
	}
}

// Publish hands a mutation event to the hub without blocking the registry
// write path. Events are dropped if the hub's buffer is full.
func (m *Manager) Publish(event models.Event) {
	select {
	case m.EventsCh <- event:
	default:
		log.Printf("WARNING: event buffer full, dropping %s %s %s", event.Entity, event.Action, event.EntityID)
	}
}

// Run is the hub dispatcher goroutine. All access to the client map happens
// here.
func (m *Manager) Run() {
	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetClientID()] = client
			log.Printf("INFO: event client %s connected (%d total)", client.GetClientID(), len(m.Clients))

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client.GetClientID()]; ok {
				delete(m.Clients, client.GetClientID())
				client.Close()
				log.Printf("INFO: event client %s disconnected (%d total)", client.GetClientID(), len(m.Clients))
			}

		case event := <-m.EventsCh:
			m.broadcast(event)
		}
	}
}

func (m *Manager) broadcast(event models.Event) {
	for id, client := range m.Clients {
		select {
		case client.GetSendChannel() <- event:
		default:
			// Slow consumer; drop it rather than stall the hub.
			delete(m.Clients, id)
			client.Close()
			log.Printf("WARNING: event client %s too slow, dropped", id)
		}
	}
}
