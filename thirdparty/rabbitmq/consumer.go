package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/rental-shop/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	if err := declarePickupExpiration(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{
		conn:       conn,
		channel:    channel,
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		pickupExpirationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var expiration PickupExpirationMessage
	if err := json.Unmarshal(msg.Body, &expiration); err != nil {
		logger.Error("[Consumer] unmarshal pickup expiration", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.callExpireOrderAPI(ctx, expiration.OrderID); err != nil {
		logger.Error("[Consumer] expire order", zap.Uint64("order_id", expiration.OrderID), zap.String("error", err.Error()))
		// requeue, the API call is idempotent
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] reservation expiry processed", zap.Uint64("order_id", expiration.OrderID))
}

// callExpireOrderAPI treats 4xx as final: the order is gone or no longer reserved.
func (c *Consumer) callExpireOrderAPI(ctx context.Context, orderID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/orders/%d/expire", c.apiURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	// Add authorization header using the API key (internal service key)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "rental-pickup-expiration-consumer")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
