package pubsub

import (
	"testing"

	"vradmin/internal/domain/constants"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKafkaEvent(t *testing.T) {
	t.Parallel()

	msg := &sarama.ConsumerMessage{
		Value: []byte(`{"id": "e-1", "type": "newAdminNotification", "request_id": "from-payload"}`),
		Headers: []*sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(constants.EventNewAdminNotification)},
			{Key: []byte("request_id"), Value: []byte("from-header")},
		},
	}

	event, err := DecodeKafkaEvent(msg)
	require.NoError(t, err)
	assert.Equal(t, "e-1", event.ID)
	assert.Equal(t, constants.EventNewAdminNotification, event.Type)
	assert.Equal(t, "from-header", event.RequestID)
}

func TestDecodeKafkaEvent_TypeFromHeader(t *testing.T) {
	t.Parallel()

	event, err := DecodeKafkaEvent(&sarama.ConsumerMessage{
		Value:   []byte(`{"id": "e-2"}`),
		Headers: []*sarama.RecordHeader{{Key: []byte("type"), Value: []byte(constants.EventNotificationUpdated)}},
	})
	require.NoError(t, err)
	assert.Equal(t, constants.EventNotificationUpdated, event.Type)
}

func TestDecodeKafkaEvent_Errors(t *testing.T) {
	t.Parallel()

	_, err := DecodeKafkaEvent(&sarama.ConsumerMessage{Value: []byte(`not json`)})
	require.Error(t, err)

	_, err = DecodeKafkaEvent(&sarama.ConsumerMessage{Value: []byte(`{"id": "e-3"}`)})
	require.Error(t, err)
}

func TestNewSaramaConfig(t *testing.T) {
	t.Parallel()

	cfg, err := NewSaramaConfig("3.6.0")
	require.NoError(t, err)
	assert.Equal(t, sarama.V3_6_0_0, cfg.Version)

	_, err = NewSaramaConfig("not-a-version")
	require.Error(t, err)
}
