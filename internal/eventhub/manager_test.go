package eventhub_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tenanta/backend/internal/eventhub"
	"tenanta/backend/internal/models"
)

func TestManager_Run(t *testing.T) {
	hub := eventhub.NewManager()

	clientA := newMockClient("client_A")

	go hub.Run()

	hub.RegisterCh <- clientA
	time.Sleep(100 * time.Millisecond)
	assert.Contains(t, hub.Clients, "client_A")

	hub.UnregisterCh <- clientA
	time.Sleep(100 * time.Millisecond)
	assert.NotContains(t, hub.Clients, "client_A")
}

func TestManager_Broadcast(t *testing.T) {
	hub := eventhub.NewManager()

	clientA := newMockClient("client_A")
	clientB := newMockClient("client_B")
	hub.Clients["client_A"] = clientA
	hub.Clients["client_B"] = clientB

	go hub.Run()

	hub.Publish(models.Event{Entity: "property", Action: models.ActionCreated, EntityID: "prop_1"})
	time.Sleep(100 * time.Millisecond)

	for _, client := range []*MockClient{clientA, clientB} {
		select {
		case event := <-client.RecvChannel:
			assert.Equal(t, "property", event.Entity)
			assert.Equal(t, models.ActionCreated, event.Action)
			assert.Equal(t, "prop_1", event.EntityID)
		default:
			t.Errorf("client %s did not receive event", client.GetClientID())
		}
	}
}

func TestManager_DropsSlowClient(t *testing.T) {
	hub := eventhub.NewManager()

	slow := newMockClient("client_slow")
	slow.RecvChannel = make(chan models.Event) // unbuffered, nobody reading
	hub.Clients["client_slow"] = slow

	go hub.Run()

	hub.Publish(models.Event{Entity: "tenant", Action: models.ActionUpdated, EntityID: "tenant_1"})
	time.Sleep(100 * time.Millisecond)

	assert.NotContains(t, hub.Clients, "client_slow")
}
