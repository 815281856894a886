package huhforms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskflow/internal/models"
)

func TestParseDue(t *testing.T) {
	loc := time.FixedZone("TEST", 3*60*60)

	tests := []struct {
		name    string
		input   string
		want    *time.Time
		wantErr bool
	}{
		{"empty", "   ", nil, false},
		{"date and time", "2024-06-13 08:30", ptr(time.Date(2024, 6, 13, 8, 30, 0, 0, loc)), false},
		{"date only", "2024-06-13", ptr(time.Date(2024, 6, 13, 23, 59, 0, 0, loc)), false},
		{"garbage", "next tuesday", nil, true},
		{"bad time", "2024-06-13 25:00", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDue(tt.input, loc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestFormatDueRoundTrip(t *testing.T) {
	due := time.Date(2024, 6, 13, 8, 30, 0, 0, time.Local)

	assert.Equal(t, "", FormatDue(nil))

	parsed, err := ParseDue(FormatDue(&due), time.Local)
	require.NoError(t, err)
	assert.True(t, due.Equal(*parsed))
}

func TestTaskFormValuesFrom(t *testing.T) {
	due := time.Date(2024, 6, 13, 8, 30, 0, 0, time.Local)
	v := TaskFormValuesFrom(&models.Task{
		Title:      "Write report",
		CategoryID: 2,
		Priority:   models.PriorityHigh,
		DueDate:    &due,
	})

	assert.Equal(t, "Write report", v.Title)
	assert.Equal(t, 2, v.CategoryID)
	assert.Equal(t, models.PriorityHigh, v.Priority)
	assert.Equal(t, "2024-06-13 08:30", v.Due)
}

func TestValidateTitle(t *testing.T) {
	assert.Error(t, validateTitle("  "))
	assert.NoError(t, validateTitle("x"))
}

func TestCategoryOptions(t *testing.T) {
	opts := CategoryOptions([]*models.Category{{ID: 1, Name: "Personal"}, {ID: 4, Name: "Health"}})
	require.Len(t, opts, 2)
	assert.Equal(t, "Health", opts[1].Key)
	assert.Equal(t, 4, opts[1].Value)
}

func ptr(t time.Time) *time.Time { return &t }
