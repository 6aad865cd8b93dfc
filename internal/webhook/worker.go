package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/stpaul_crime_api/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	signatureHeader = "X-Webhook-Signature"
	popTimeout      = 5 * time.Second
)

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину, которая разбирает очередь событий до отмены ctx
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.WithField("queue", webhookQueueKey).Info("Starting webhook worker")
	go func() {
		for ctx.Err() == nil {
			event, payload, ok := w.next(ctx)
			if !ok {
				continue
			}
			w.processEvent(ctx, event, payload)
		}
		w.logger.Info("Webhook worker stopped")
	}()
}

// next забирает одно событие из очереди. Ожидание ограничено popTimeout,
// чтобы воркер замечал отмену контекста.
func (w *WebhookWorker) next(ctx context.Context) (IncidentEvent, string, bool) {
	result, err := w.redisClient.BRPop(ctx, popTimeout, webhookQueueKey).Result()
	switch {
	case errors.Is(err, redis.Nil), errors.Is(err, context.Canceled):
		return IncidentEvent{}, "", false
	case err != nil:
		w.logger.WithError(err).Error("Failed to pop incident event from Redis")
		select {
		case <-ctx.Done():
		case <-time.After(w.cfg.WebhookBaseDelay):
		}
		return IncidentEvent{}, "", false
	}

	// result[0] - ключ, result[1] - значение
	event, err := decodeEvent(result[1])
	if err != nil {
		w.logger.WithError(err).Error("Dropping malformed incident event")
		return IncidentEvent{}, "", false
	}
	return event, result[1], true
}

func decodeEvent(payload string) (IncidentEvent, error) {
	var event IncidentEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return IncidentEvent{}, fmt.Errorf("failed to unmarshal incident event: %w", err)
	}
	if event.Type != EventIncidentCreated && event.Type != EventIncidentRemoved {
		return IncidentEvent{}, fmt.Errorf("unknown incident event type %q", event.Type)
	}
	return event, nil
}

// processEvent доставляет событие на WEBHOOK_URL с экспоненциальной задержкой между попытками
func (w *WebhookWorker) processEvent(ctx context.Context, event IncidentEvent, rawPayload string) bool {
	log := w.logger.WithField("event_type", event.Type).WithField("case_number", event.CaseNumber)
	log.Debug("Processing incident event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return false
	}

	delay := w.cfg.WebhookBaseDelay
	for i := 0; i < w.cfg.WebhookMaxRetries; i++ {
		retriesLeft := w.cfg.WebhookMaxRetries - 1 - i

		status, err := w.send(ctx, rawPayload)
		switch {
		case err != nil:
			log.WithError(err).Warnf("Failed to send webhook. Retrying in %v. Retries left: %d", delay, retriesLeft)
		case status >= 200 && status < 300:
			log.Info("Webhook delivered successfully.")
			return true
		default:
			log.Warnf("Webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", status, delay, retriesLeft)
		}

		if retriesLeft == 0 {
			break
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}
		delay *= 2
	}

	log.Errorf("Failed to deliver webhook after %d retries.", w.cfg.WebhookMaxRetries)
	return false
}

func (w *WebhookWorker) send(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
