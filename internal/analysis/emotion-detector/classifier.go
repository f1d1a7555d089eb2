package emotiondetector

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "emotion-detector/internal/common/errors"
	commonhttp "emotion-detector/internal/common/http"
	"emotion-detector/internal/common/metrics"
	"emotion-detector/internal/models"
)

const rawPreviewLimit = 200

// Logger is the subset of the service logger the classifier writes to.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Classifier sends text to the remote emotion classification service. It holds
// no per-request state and is safe for concurrent use.
type Classifier struct {
	config *Config
	client *commonhttp.Client
	logger Logger
	tracer trace.Tracer
}

// NewClassifier builds a Classifier whose HTTP client uses config.Timeout.
func NewClassifier(config *Config, log Logger) *Classifier {
	return &Classifier{
		config: config,
		client: commonhttp.NewClient(config.Timeout),
		logger: log,
		tracer: otel.Tracer("emotion-detector/classifier"),
	}
}

// Analyze classifies text with exactly one call to the service.
//
// A 400 from the service yields OutcomeInvalidInput with all scores missing.
// A response without emotionPredictions[0].emotion yields a *errors.DataFormatError
// carrying the raw body. Transport failures yield a *errors.StandardError.
func (c *Classifier) Analyze(ctx context.Context, text string) (Result, error) {
	ctx, span := c.tracer.Start(ctx, "emotiondetector.Analyze",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.Int("text.length", len(text)),
			attribute.String("model.id", c.config.ModelID),
		),
	)
	defer span.End()

	start := time.Now()
	result, err := c.analyze(ctx, text)
	outcome := outcomeLabel(result, err)

	metrics.EmotionAnalyses.WithLabelValues(outcome).Inc()
	metrics.EmotionAnalysisDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.String("outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		return Result{}, err
	}

	if result.Outcome == OutcomeScored {
		metrics.DominantEmotions.WithLabelValues(string(result.Scores.DominantEmotion)).Inc()
	}

	c.logger.Info("emotion analysis completed", map[string]interface{}{
		"outcome":         string(result.Outcome),
		"dominantEmotion": string(result.Scores.DominantEmotion),
		"elapsed":         time.Since(start).String(),
	})

	return result, nil
}

func (c *Classifier) analyze(ctx context.Context, text string) (Result, error) {
	payload := predictRequest{RawDocument: rawDocument{Text: text}}
	headers := map[string]string{ModelIDHeader: c.config.ModelID}

	c.logger.Debug("sending classification request", map[string]interface{}{
		"endpoint":   c.config.Endpoint,
		"modelId":    c.config.ModelID,
		"textLength": len(text),
	})

	resp, err := c.client.PostJSON(ctx, c.config.Endpoint, headers, payload)
	if err != nil {
		return Result{}, c.transportError(err)
	}

	if resp.StatusCode == http.StatusBadRequest {
		c.logger.Warn("classification service rejected input", map[string]interface{}{
			"statusCode": resp.StatusCode,
			"response":   preview(resp.Body),
		})
		return Result{
			Outcome: OutcomeInvalidInput,
			Scores:  models.MissingEmotionScores(),
		}, nil
	}

	scores, err := c.parse(resp)
	if err != nil {
		return Result{}, err
	}

	return Result{Outcome: OutcomeScored, Scores: scores}, nil
}

// parse validates the response shape before decoding it.
func (c *Classifier) parse(resp *commonhttp.Response) (models.EmotionScores, error) {
	validation, err := predictionSchema.ValidateJSON(resp.Body)
	if err != nil {
		return models.EmotionScores{}, c.dataFormatError(resp, fmt.Sprintf("invalid JSON: %v", err))
	}
	if !validation.Valid {
		return models.EmotionScores{}, c.dataFormatError(resp, validation.Summary())
	}

	var decoded predictResponse
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return models.EmotionScores{}, c.dataFormatError(resp, fmt.Sprintf("decode: %v", err))
	}

	var first emotionPrediction
	if err := json.Unmarshal(decoded.EmotionPredictions[0], &first); err != nil {
		return models.EmotionScores{}, c.dataFormatError(resp, fmt.Sprintf("decode: %v", err))
	}

	scores, err := first.Emotion.toScores()
	if err != nil {
		return models.EmotionScores{}, c.dataFormatError(resp, fmt.Sprintf("score: %v", err))
	}
	return scores, nil
}

func (c *Classifier) dataFormatError(resp *commonhttp.Response, reason string) error {
	c.logger.Error("unexpected classification response", map[string]interface{}{
		"statusCode":  resp.StatusCode,
		"reason":      reason,
		"response":    preview(resp.Body),
		"responseLen": len(resp.Body),
	})
	return apperrors.NewDataFormatError(resp.StatusCode, resp.Body, reason)
}

func (c *Classifier) transportError(err error) error {
	var reqErr *commonhttp.RequestError
	switch {
	case stderrors.As(err, &reqErr):
		return apperrors.NewRequestBuildFailedError(err)
	case stderrors.Is(err, context.DeadlineExceeded):
		return apperrors.NewClassifierTimeoutError(c.config.Endpoint, err)
	default:
		return apperrors.NewClassifierUnavailableError(c.config.Endpoint, err)
	}
}

func outcomeLabel(result Result, err error) string {
	if err == nil {
		if result.Outcome == OutcomeInvalidInput {
			return metrics.OutcomeInvalidInput
		}
		return metrics.OutcomeScored
	}
	var dfErr *apperrors.DataFormatError
	if stderrors.As(err, &dfErr) {
		return metrics.OutcomeDataFormat
	}
	return metrics.OutcomeUnavailable
}

func preview(body []byte) string {
	if len(body) > rawPreviewLimit {
		return string(body[:rawPreviewLimit])
	}
	return string(body)
}
