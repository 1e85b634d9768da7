package kafka_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel/mocks"
)

type payload struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

func TestMessage_RoundTrip(t *testing.T) {
	message := kafka.Message{Key: "booking-1", Value: payload{BookingID: "booking-1", Status: "checked_in"}}

	msg, err := message.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("booking-1"), msg.Key)

	var decoded payload
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, payload{BookingID: "booking-1", Status: "checked_in"}, decoded)
}

func TestMessage_ToKafkaMessageRejectsUnencodable(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage()

	assert.Error(t, err)
}

func TestNew_DisabledPublisherIsNoop(t *testing.T) {
	cfg := &config.Config{}

	publisher := kafka.New(cfg, mocks.NewOtel())

	assert.NoError(t, publisher.Publish(context.Background(), "topic", kafka.Message{Key: "k", Value: 1}))
}
