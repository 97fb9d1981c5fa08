package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"skillmatch/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrUnreadableDocument,
		serrors.ErrMissingJobDescription,
		serrors.ErrBadRequest,
		serrors.ErrTooLarge,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("eof")

	e1 := serrors.With(serrors.ErrBadRequest, "field %q is required", "resume")
	require.Equal(t, `field "resume" is required`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrBadRequest, base, "parsing form")
	require.Equal(t, "parsing form: eof", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrUnreadableDocument)
	require.Equal(t, "UNREADABLE_DOCUMENT", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrBadRequest, base, "reading")

	require.ErrorIs(t, e, serrors.ErrBadRequest)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrInternal)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUnreadableDocument, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrUnreadableDocument, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrTooLarge, base, "upload")
	require.Equal(t, serrors.ErrTooLarge, e.Kind())
	require.Equal(t, "upload", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unreadable", serrors.KindOnly(serrors.ErrUnreadableDocument), http.StatusUnprocessableEntity},
		{"missing job", serrors.KindOnly(serrors.ErrMissingJobDescription), http.StatusBadRequest},
		{"bad request", serrors.With(serrors.ErrBadRequest, "x"), http.StatusBadRequest},
		{"too large", serrors.KindOnly(serrors.ErrTooLarge), http.StatusRequestEntityTooLarge},
		{"wrapped by fmt", fmt.Errorf("handler: %w", serrors.KindOnly(serrors.ErrUnreadableDocument)), http.StatusUnprocessableEntity},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.HTTPStatus(tt.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	require.Equal(t, "Please paste a job description.",
		serrors.UserMessage(serrors.KindOnly(serrors.ErrMissingJobDescription)))
	require.Equal(t, "missing résumé file",
		serrors.UserMessage(serrors.With(serrors.ErrBadRequest, "missing résumé file")))
	require.NotContains(t, serrors.UserMessage(errors.New("secret db password")), "secret")
}
