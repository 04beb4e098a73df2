package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tenanta/backend/internal/models"
	"tenanta/backend/internal/registry"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(event models.Event) {
	m.Called(event)
}

func TestRegistryMutations_PublishEvents(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.AnythingOfType("models.Event")).Return()
	s := registry.New(publisher)

	property, err := s.Properties.AddProperty(validProperty("Broadcasting", 5))
	assert.NoError(t, err)

	publisher.AssertCalled(t, "Publish", mock.MatchedBy(func(e models.Event) bool {
		return e.Entity == "property" && e.Action == models.ActionCreated && e.EntityID == property.PropertyID
	}))

	s.Properties.DeleteProperty(property.PropertyID)
	publisher.AssertCalled(t, "Publish", mock.MatchedBy(func(e models.Event) bool {
		return e.Entity == "property" && e.Action == models.ActionDeleted && e.EntityID == property.PropertyID
	}))
}

func TestFailedMutations_PublishNothing(t *testing.T) {
	publisher := new(MockPublisher)
	s := registry.New(publisher)

	bad := validProperty("Silent", 5)
	bad.Type = "Castle"
	_, err := s.Properties.AddProperty(bad)
	assert.Error(t, err)

	s.Properties.DeleteProperty("prop_missing")
	s.Tenants.DeleteTenant("tenant_missing")
	s.Complaints.DeleteComplaint("comp_missing")

	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}
