package eventhub

import "tenanta/backend/internal/models"

// Client is the interface for one connected event consumer. It abstracts
// the underlying transport so the hub can manage connection types uniformly
// (websocket in production, mocks in tests).
type Client interface {
	// GetClientID returns the unique identifier of this connection.
	GetClientID() string

	// GetSendChannel returns the channel through which the hub delivers
	// mutation events to this client. It is a send-only channel.
	GetSendChannel() chan<- models.Event

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's connection and channels.
	Close()
}
