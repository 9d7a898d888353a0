package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"pos-service/internal/config"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		KafkaTopicItems: "pos.items",
		KafkaTopicSales: "pos.sales",
	}
}

func TestKafkaEventPublisher_Publish_ItemCreatedEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var decoded ItemCreatedEvent
		if err := json.Unmarshal(val, &decoded); err != nil {
			return err
		}
		if decoded.Code != "9780131103627" {
			return fmt.Errorf("unexpected barcode %q", decoded.Code)
		}
		return nil
	})

	publisher := NewKafkaEventPublisherWithProducer(producer, testConfig(), zap.NewNop())
	err := publisher.Publish(context.Background(), ItemCreatedEvent{
		Code:       "9780131103627",
		Name:       "K&R C",
		Price:      "45.00",
		Quantity:   2,
		OccurredAt: time.Now(),
	})

	assert.NoError(t, err)
	require.NoError(t, publisher.Close())
}

func TestKafkaEventPublisher_Publish_RetriesThenFails(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	for i := 0; i < publishAttempts; i++ {
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	}

	publisher := NewKafkaEventPublisherWithProducer(producer, testConfig(), zap.NewNop())
	err := publisher.Publish(context.Background(), ItemDeletedEvent{Code: "123"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, sarama.ErrOutOfBrokers))
	require.NoError(t, publisher.Close())
}

func TestKafkaEventPublisher_Publish_RecoversOnRetry(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	producer.ExpectSendMessageAndSucceed()

	publisher := NewKafkaEventPublisherWithProducer(producer, testConfig(), zap.NewNop())
	err := publisher.Publish(context.Background(), SaleCompletedEvent{TransactionID: "tx-1"})

	assert.NoError(t, err)
	require.NoError(t, publisher.Close())
}

func TestKafkaEventPublisher_Publish_UnknownEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	publisher := NewKafkaEventPublisherWithProducer(producer, testConfig(), zap.NewNop())

	err := publisher.Publish(context.Background(), "unknown")

	assert.Error(t, err)
	require.NoError(t, publisher.Close())
}

func TestKafkaEventPublisher_TopicForEvent_AllTypes(t *testing.T) {
	publisher := &KafkaEventPublisher{logger: zap.NewNop(), config: testConfig()}

	testCases := []struct {
		name     string
		event    interface{}
		expected string
	}{
		{"ItemCreated", ItemCreatedEvent{}, "pos.items"},
		{"ItemRestocked", ItemRestockedEvent{}, "pos.items"},
		{"ItemQuantitySet", ItemQuantitySetEvent{}, "pos.items"},
		{"ItemDeleted", ItemDeletedEvent{}, "pos.items"},
		{"SaleCompleted", SaleCompletedEvent{}, "pos.sales"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			topic, err := publisher.topicForEvent(tc.event)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, topic)
			assert.Equal(t, tc.name, eventType(tc.event))
		})
	}
}

func TestPartitionKey(t *testing.T) {
	assert.Equal(t, "123", partitionKey(ItemRestockedEvent{Code: "123"}))
	assert.Equal(t, "tx-9", partitionKey(SaleCompletedEvent{TransactionID: "tx-9"}))
	assert.Equal(t, "", partitionKey(struct{}{}))
}

func TestInMemoryEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(zap.NewNop())

	require.NoError(t, publisher.Publish(context.Background(), ItemDeletedEvent{Code: "1"}))
	require.NoError(t, publisher.Publish(context.Background(), ItemDeletedEvent{Code: "2"}))

	published := publisher.Events()
	require.Len(t, published, 2)
	assert.Equal(t, ItemDeletedEvent{Code: "2"}, published[1])
}

func TestNew_KafkaDisabled(t *testing.T) {
	publisher := New(&config.Config{UseKafka: false}, zap.NewNop())
	assert.IsType(t, &InMemoryEventPublisher{}, publisher)
}
