package registry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tenanta/backend/internal/models"
	"tenanta/backend/internal/registry"
)

func TestAddComplaint_DefaultsAndStamps(t *testing.T) {
	s := newSet()

	c, err := s.Complaints.AddComplaint(models.Complaint{
		Title:       "Leaking tap",
		Description: "Kitchen tap drips all night",
		Category:    models.CategoryMaintenance,
		Priority:    models.PriorityMedium,
		SubmittedBy: "tenant_1",
		PropertyID:  "prop_1",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, c.ComplaintID)
	assert.Equal(t, models.ComplaintOpen, c.Status)
	assert.False(t, c.CreatedAt.IsZero())
	assert.False(t, c.UpdatedAt.IsZero())
	assert.Nil(t, c.ResolvedAt)

	_, err = s.Complaints.AddComplaint(models.Complaint{Title: "Bad", Status: "SHOUTING"})
	assert.ErrorIs(t, err, registry.ErrInvalidStatus)
}

func TestUpdateComplaint_ResolvedStampsOnce(t *testing.T) {
	s := newSet()
	c, _ := s.Complaints.AddComplaint(models.Complaint{Title: "Broken lock", PropertyID: "prop_1"})

	c.Status = models.ComplaintResolved
	resolved, err := s.Complaints.UpdateComplaint(c.ComplaintID, c)
	assert.NoError(t, err)
	assert.NotNil(t, resolved.ResolvedAt)

	firstStamp := *resolved.ResolvedAt
	time.Sleep(5 * time.Millisecond)

	// A second update while already resolved keeps the original stamp.
	resolved.Description = "Fixed by caretaker"
	again, err := s.Complaints.UpdateComplaint(c.ComplaintID, resolved)
	assert.NoError(t, err)
	assert.Equal(t, firstStamp, *again.ResolvedAt)

	// CreatedAt survives updates.
	assert.Equal(t, c.CreatedAt, again.CreatedAt)

	_, err = s.Complaints.UpdateComplaint("comp_missing", c)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestAddComment_Scenario(t *testing.T) {
	s := newSet()
	c, _ := s.Complaints.AddComplaint(models.Complaint{Title: "Noisy neighbours", PropertyID: "prop_1"})

	time.Sleep(5 * time.Millisecond)

	got, err := s.Complaints.AddComment(c.ComplaintID, models.ComplaintComment{
		UserID:  "user_3",
		Message: "We have spoken to unit B2.",
	})
	assert.NoError(t, err)
	assert.Len(t, got.Comments, 1)
	assert.NotEmpty(t, got.Comments[0].CommentID)
	assert.Equal(t, c.ComplaintID, got.Comments[0].ComplaintID)
	assert.False(t, got.Comments[0].Timestamp.IsZero())
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	_, err = s.Complaints.AddComment("comp_missing", models.ComplaintComment{Message: "lost"})
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestDeleteComplaint_Idempotent(t *testing.T) {
	s := newSet()
	c, _ := s.Complaints.AddComplaint(models.Complaint{Title: "Flickering light"})

	s.Complaints.DeleteComplaint(c.ComplaintID)
	_, ok := s.Complaints.Complaint(c.ComplaintID)
	assert.False(t, ok)
	s.Complaints.DeleteComplaint(c.ComplaintID) // no-op
}

func TestComplaintsForProperty(t *testing.T) {
	s := newSet()
	first, _ := s.Complaints.AddComplaint(models.Complaint{Title: "First", PropertyID: "prop_1"})
	time.Sleep(2 * time.Millisecond)
	second, _ := s.Complaints.AddComplaint(models.Complaint{Title: "Second", PropertyID: "prop_1"})
	_, _ = s.Complaints.AddComplaint(models.Complaint{Title: "Elsewhere", PropertyID: "prop_2"})

	got := s.Complaints.ComplaintsForProperty("prop_1")
	assert.Len(t, got, 2)
	// Oldest first.
	assert.Equal(t, first.ComplaintID, got[0].ComplaintID)
	assert.Equal(t, second.ComplaintID, got[1].ComplaintID)

	assert.Len(t, s.Complaints.Complaints(), 3)
	assert.Empty(t, s.Complaints.ComplaintsForProperty("prop_missing"))
}
