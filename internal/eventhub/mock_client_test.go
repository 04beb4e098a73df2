package eventhub_test

import (
	"tenanta/backend/internal/models"
)

type MockClient struct {
	clientID    string
	RecvChannel chan models.Event
}

func newMockClient(clientID string) *MockClient {
	return &MockClient{
		clientID:    clientID,
		RecvChannel: make(chan models.Event, 10),
	}
}

func (c *MockClient) GetClientID() string {
	return c.clientID
}

func (c *MockClient) GetSendChannel() chan<- models.Event {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	// Not needed for testing
}
