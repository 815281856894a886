package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func TestNotificationState_Expire(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)}
	s := NewNotificationState(clock.Now)

	first := s.Add(LevelSuccess, "Task completed!")
	clock.t = clock.t.Add(2 * time.Second)
	s.Add(LevelInfo, "Task updated successfully")

	assert.Equal(t, clock.t.Add(-2*time.Second).Add(DefaultToastDuration), first.ExpiresAt)

	clock.t = clock.t.Add(1500 * time.Millisecond)
	s.Expire()

	require.Len(t, s.All(), 1)
	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, "Task updated successfully", latest.Message)

	clock.t = clock.t.Add(2 * time.Second)
	s.Expire()
	assert.False(t, s.HasAny())
}

func TestNotificationState_DismissOnlyOwnToast(t *testing.T) {
	s := NewNotificationState(nil)

	a := s.Add(LevelInfo, "a")
	b := s.Add(LevelError, "b")
	assert.NotEqual(t, a.ID, b.ID)

	s.Dismiss(a.ID)
	s.Dismiss(a.ID)

	require.Len(t, s.All(), 1)
	assert.Equal(t, b.ID, s.All()[0].ID)
}

func TestNotificationState_Empty(t *testing.T) {
	s := NewNotificationState(nil)

	_, ok := s.Latest()
	assert.False(t, ok)

	s.Add(LevelWarning, "x")
	s.Clear()
	assert.Empty(t, s.All())
}
