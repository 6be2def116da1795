package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContactMessage(t *testing.T) {
	msg := NewContactMessage("Bolat", "bolat@example.com", nil, "Вопрос по квартире", "Актуально ли объявление?")

	assert.Equal(t, ContactStatusNew, msg.Status)
	assert.Nil(t, msg.Reply)
	assert.Nil(t, msg.RepliedAt)
	assert.NotEqual(t, msg.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestContactMessage_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"new to read", ContactStatusNew, ContactStatusRead, true},
		{"new to responded", ContactStatusNew, ContactStatusResponded, true},
		{"read to responded", ContactStatusRead, ContactStatusResponded, true},
		{"read back to new", ContactStatusRead, ContactStatusNew, false},
		{"responded back to read", ContactStatusResponded, ContactStatusRead, false},
		{"same status is idempotent", ContactStatusRead, ContactStatusRead, true},
		{"responded stays responded", ContactStatusResponded, ContactStatusResponded, true},
		{"unknown target status", ContactStatusNew, "archived", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewContactMessage("Bolat", "bolat@example.com", nil, "Тема", "Текст")
			msg.Status = tt.from
			assert.Equal(t, tt.allowed, msg.CanTransitionTo(tt.to))
		})
	}
}

func TestIsValidContactStatus(t *testing.T) {
	assert.True(t, IsValidContactStatus(ContactStatusNew))
	assert.True(t, IsValidContactStatus(ContactStatusRead))
	assert.True(t, IsValidContactStatus(ContactStatusResponded))
	assert.False(t, IsValidContactStatus("archived"))
	assert.False(t, IsValidContactStatus(""))
}
