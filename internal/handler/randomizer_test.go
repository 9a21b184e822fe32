package handler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
)

func recipients(n int) []domain.Recipient {
	list := make([]domain.Recipient, n)
	for i := range list {
		list[i] = domain.Recipient{
			Email: fmt.Sprintf("employee%d@example.com", i),
			Name:  fmt.Sprintf("employee %d", i),
		}
	}
	return list
}

func TestChunkRecipients(t *testing.T) {
	cases := []struct {
		name     string
		total    int
		size     int
		batches  int
		lastSize int
	}{
		{"exact multiple", 100, 50, 2, 50},
		{"remainder batch", 120, 50, 3, 20},
		{"under one batch", 7, 50, 1, 7},
		{"single recipient", 1, 50, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			batches := chunkRecipients(recipients(tc.total), tc.size)

			assert.Len(t, batches, tc.batches)
			assert.Len(t, batches[len(batches)-1], tc.lastSize)

			total := 0
			for _, batch := range batches {
				assert.LessOrEqual(t, len(batch), tc.size)
				total += len(batch)
			}
			assert.Equal(t, tc.total, total)
		})
	}
}

func TestChunkRecipientsEmpty(t *testing.T) {
	assert.Empty(t, chunkRecipients(nil, 50))
}

func TestChunkRecipientsNonPositiveSize(t *testing.T) {
	assert.NotPanics(t, func() {
		batches := chunkRecipients(recipients(3), 0)
		assert.Len(t, batches, 1)
		assert.Len(t, batches[0], 3)
	})

	assert.Empty(t, chunkRecipients(nil, 0))
	assert.Len(t, chunkRecipients(recipients(2), -1), 1)
}

func TestChunkRecipientsKeepsOrder(t *testing.T) {
	batches := chunkRecipients(recipients(75), 50)

	assert.Equal(t, "employee0@example.com", batches[0][0].Email)
	assert.Equal(t, "employee49@example.com", batches[0][49].Email)
	assert.Equal(t, "employee50@example.com", batches[1][0].Email)
	assert.Equal(t, "employee74@example.com", batches[1][24].Email)
}
