// Package handler provides the Lambda function implementation.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	log "github.com/sirupsen/logrus"

	"github.com/AnkitPaunikar/Subscriber-Serverless/internal/subscriber"
)

// SubscriberStore is the registry the entry points delegate to.
type SubscriberStore interface {
	Create(email string)
	All() []subscriber.Subscriber
}

// Handler hosts both registry entry points behind a single Lambda
// function. The function must be one process so the entry points share
// the in-memory store; the hosting platform may front it with an HTTP
// route, an SNS topic or an SQS queue.
type Handler struct {
	store SubscriberStore
}

// New creates a Handler backed by store.
func New(store SubscriberStore) *Handler {
	return &Handler{store: store}
}

// ErrUnknownEvent is returned when the payload matches none of the
// supported trigger shapes.
var ErrUnknownEvent = errors.New("unrecognized event payload")

// HandleEvent is the Lambda entry point. It inspects the raw payload
// to determine which trigger produced it: HTTP requests route by
// method (POST creates, GET lists), while SNS and SQS records are
// create triggers carrying the email in the message body.
func (h *Handler) HandleEvent(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	switch detectEvent(raw) {
	case eventHTTP:
		var req events.APIGatewayV2HTTPRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, fmt.Errorf("could not unmarshal HTTP event: %w", err)
		}
		return h.serveHTTP(req)
	case eventSNS:
		var event events.SNSEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return nil, fmt.Errorf("could not unmarshal SNS event: %w", err)
		}
		return nil, h.createFromSNS(event)
	case eventSQS:
		var event events.SQSEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return nil, fmt.Errorf("could not unmarshal SQS event: %w", err)
		}
		return h.createFromSQS(event)
	default:
		return nil, ErrUnknownEvent
	}
}

func (h *Handler) serveHTTP(req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	switch req.RequestContext.HTTP.Method {
	case http.MethodPost:
		email, err := requestBody(req)
		if err != nil {
			log.Errorf("bad create request: %v", err)
			return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusBadRequest}, nil
		}
		h.store.Create(email)
		log.Infof("created subscriber for %q", email)
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusAccepted}, nil
	case http.MethodGet:
		body, err := json.Marshal(h.store.All())
		if err != nil {
			return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusInternalServerError},
				fmt.Errorf("could not marshal subscribers: %w", err)
		}
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusOK,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       string(body),
		}, nil
	default:
		return events.APIGatewayV2HTTPResponse{StatusCode: http.StatusMethodNotAllowed}, nil
	}
}

func (h *Handler) createFromSNS(event events.SNSEvent) error {
	for _, r := range event.Records {
		h.store.Create(r.SNS.Message)
		log.Infof("created subscriber for %q from SNS message %s", r.SNS.Message, r.SNS.MessageID)
	}
	return nil
}

// createFromSQS never reports batch item failures: create has no
// failure modes, so every record is consumed.
func (h *Handler) createFromSQS(event events.SQSEvent) (events.SQSEventResponse, error) {
	for _, msg := range event.Records {
		h.store.Create(msg.Body)
		log.Infof("created subscriber for %q from SQS message %s", msg.Body, msg.MessageId)
	}
	return events.SQSEventResponse{}, nil
}

// requestBody returns the email carried in the request, decoding it
// first when the platform delivered it base64-encoded. The string is
// not validated: an empty body creates a subscriber with an empty
// email.
func requestBody(req events.APIGatewayV2HTTPRequest) (string, error) {
	if req.IsBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return "", fmt.Errorf("could not decode request body: %w", err)
		}
		return string(b), nil
	}
	return req.Body, nil
}
