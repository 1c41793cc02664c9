package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dpup/wildwatch/server/internal/lib/alerts"
	"github.com/dpup/wildwatch/server/internal/lib/cameras"
	"github.com/dpup/wildwatch/server/internal/lib/contacts"
	"github.com/dpup/wildwatch/server/internal/lib/notify"
	"github.com/dpup/wildwatch/server/internal/lib/routing"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("lookup: %w", alerts.ErrAlertNotFound), codes.NotFound},
		{notify.ErrNotificationNotFound, codes.NotFound},
		{cameras.ErrCameraNotFound, codes.NotFound},
		{contacts.ErrContactNotFound, codes.NotFound},
		{&alerts.TransitionError{AlertID: "a", From: alerts.Resolved, To: alerts.Dispatched}, codes.FailedPrecondition},
		{alerts.ErrDuplicateAlert, codes.AlreadyExists},
		{contacts.ErrDuplicateContact, codes.AlreadyExists},
		{alerts.ErrInvalidDetection, codes.InvalidArgument},
		{alerts.ErrInvalidReport, codes.InvalidArgument},
		{notify.ErrUnknownGroup, codes.InvalidArgument},
		{cameras.ErrInvalidStatus, codes.InvalidArgument},
		{fmt.Errorf("%w: bad phone", contacts.ErrInvalidContact), codes.InvalidArgument},
		{fmt.Errorf("%w: since", errBadRequest), codes.InvalidArgument},
		{routing.ErrNoStationsAvailable, codes.Unavailable},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{context.Canceled, codes.Canceled},
		{errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, ErrorCode(tt.err), tt.err.Error())
	}
}

func TestStatusError_WithoutLogger(t *testing.T) {
	var err error
	assert.NotPanics(t, func() {
		err = statusError(context.Background(), "GetAlert", fmt.Errorf("%w: det-9", alerts.ErrAlertNotFound))
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.ErrorIs(t, err, alerts.ErrAlertNotFound)
	assert.Contains(t, err.Error(), "det-9")
}
