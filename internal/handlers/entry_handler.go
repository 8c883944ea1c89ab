package handlers

import (
	"context"
	"net/http"

	"entries-api/internal/adapters/storage"
	"entries-api/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// Response bodies returned by the entry handlers
const (
	BodyBadRequest = "Bad request"
	BodySaved      = "All good!"
	BodyNotFound   = "Not found"
)

// Handler serves one normalized request
type Handler interface {
	Handle(ctx context.Context, req *lambda.Request) *lambda.Response
}

// SaveHandler stores the entry named by the request path
type SaveHandler struct {
	saver  storage.Saver
	logger logrus.FieldLogger
}

// NewSaveHandler creates a new save handler
func NewSaveHandler(saver storage.Saver, logger logrus.FieldLogger) *SaveHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &SaveHandler{
		saver:  saver,
		logger: logger,
	}
}

// Handle validates the identifier, saves the entry and reports the outcome.
// Save failures answer 500 with the error text as body
func (h *SaveHandler) Handle(ctx context.Context, req *lambda.Request) *lambda.Response {
	id, ok := lambda.ExtractIdentifier(req)
	if !ok {
		return lambda.Respond(http.StatusBadRequest, BodyBadRequest)
	}

	logger := requestLogger(h.logger, req, "save").WithField("entry_id", id)
	logger.Info("Putting entry into store")

	if err := h.saver.Save(ctx, id); err != nil {
		logger.WithError(err).Error("Failed to save entry")
		return lambda.Respond(http.StatusInternalServerError, err.Error())
	}

	return lambda.Respond(http.StatusOK, BodySaved)
}

// GetHandler reads the entry named by the request path
type GetHandler struct {
	getter storage.Getter
	logger logrus.FieldLogger
}

// NewGetHandler creates a new get handler
func NewGetHandler(getter storage.Getter, logger logrus.FieldLogger) *GetHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &GetHandler{
		getter: getter,
		logger: logger,
	}
}

// Handle validates the identifier and returns the stored entry as JSON.
// Every failure, missing entry or not, answers 404
func (h *GetHandler) Handle(ctx context.Context, req *lambda.Request) *lambda.Response {
	id, ok := lambda.ExtractIdentifier(req)
	if !ok {
		return lambda.Respond(http.StatusBadRequest, BodyBadRequest)
	}

	logger := requestLogger(h.logger, req, "get").WithField("entry_id", id)
	logger.Debug("Fetching entry from store")

	entry, err := h.getter.Get(ctx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			logger.Info("Entry not found")
		} else {
			logger.WithError(err).Error("Failed to get entry")
		}
		return lambda.Respond(http.StatusNotFound, BodyNotFound)
	}

	body, err := entry.JSON()
	if err != nil {
		logger.WithError(err).Error("Failed to serialize entry")
		return lambda.Respond(http.StatusNotFound, BodyNotFound)
	}

	return lambda.Respond(http.StatusOK, body)
}

func requestLogger(logger logrus.FieldLogger, req *lambda.Request, operation string) logrus.FieldLogger {
	fields := logrus.Fields{"operation": operation}
	if req.RequestID != "" {
		fields["request_id"] = req.RequestID
	}
	return logger.WithFields(fields)
}
