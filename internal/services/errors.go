package services

import (
	"context"

	"github.com/dpup/prefab/errors"
	"github.com/dpup/prefab/logging"
	"google.golang.org/grpc/codes"

	"github.com/dpup/wildwatch/server/internal/lib/alerts"
	"github.com/dpup/wildwatch/server/internal/lib/cameras"
	"github.com/dpup/wildwatch/server/internal/lib/contacts"
	"github.com/dpup/wildwatch/server/internal/lib/notify"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
)

// errBadRequest marks request fields the services reject before any domain
// call
var errBadRequest = errors.New("bad request")

// ErrorCode maps domain errors to gRPC status codes
func ErrorCode(err error) codes.Code {
	switch {
	case errors.Is(err, alerts.ErrAlertNotFound),
		errors.Is(err, notify.ErrNotificationNotFound),
		errors.Is(err, cameras.ErrCameraNotFound),
		errors.Is(err, contacts.ErrContactNotFound):
		return codes.NotFound
	case errors.Is(err, alerts.ErrInvalidTransition):
		return codes.FailedPrecondition
	case errors.Is(err, alerts.ErrDuplicateAlert), errors.Is(err, contacts.ErrDuplicateContact):
		return codes.AlreadyExists
	case errors.Is(err, alerts.ErrInvalidDetection),
		errors.Is(err, alerts.ErrInvalidReport),
		errors.Is(err, notify.ErrUnknownGroup),
		errors.Is(err, notify.ErrEmptyMessage),
		errors.Is(err, cameras.ErrInvalidStatus),
		errors.Is(err, contacts.ErrInvalidContact),
		errors.Is(err, errBadRequest):
		return codes.InvalidArgument
	case errors.Is(err, routing.ErrNoStationsAvailable):
		return codes.Unavailable
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}

// statusError attaches the mapped code to err and logs it. Internal errors
// are logged at error level, rejected requests at info.
func statusError(ctx context.Context, method string, err error) error {
	ctx = logging.EnsureLogger(ctx)
	code := ErrorCode(err)
	if code == codes.Internal {
		logging.Errorw(ctx, "Request failed", "method", method, "error", err)
	} else {
		logging.Infow(ctx, "Request rejected", "method", method, "code", code.String(), "error", err)
	}
	return errors.WithCode(err, code)
}
