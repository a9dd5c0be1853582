package queue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageEvent_Marshal(t *testing.T) {
	event := NewPageEvent(PageSaved, "page-1", "fares", 3)
	assert.False(t, event.At.IsZero())

	data, err := event.MarshalBinary()
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "page.saved", fields["kind"])
	assert.Equal(t, "page-1", fields["pageId"])
	assert.Equal(t, "fares", fields["slug"])
	assert.Equal(t, float64(3), fields["version"])
}

func TestNopPublisher(t *testing.T) {
	var p PagePublisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.TODO(), NewPageEvent(PageDeleted, "page-1", "fares", 4)))
	p.Close()
}
