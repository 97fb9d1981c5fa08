// Package v1handler implements the handlers of the generated v1 API server.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"skillmatch/internal/analyzer"
	"skillmatch/internal/api/specs/v1specs"
	"skillmatch/pkg/catalog"
	"skillmatch/pkg/controller"
	"skillmatch/pkg/logger"
	"skillmatch/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

// Deps are the services the v1 handlers call into.
type Deps struct {
	Analyzer analyzer.Analyzer
	Catalog  *catalog.Catalog
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// NewError maps err to the error body and status its kind stands for.
// Internal failures are logged and reported without detail.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	status := serrors.HTTPStatus(err)
	kind := serrors.KindOf(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err), zap.String("kind", kind.Error()))
	}

	detail := v1specs.ErrorDetail{
		Kind:    kind.Error(),
		Message: serrors.UserMessage(err),
	}
	if id := controller.RequestID(ctx); id != "" {
		detail.RequestId = v1specs.NewOptString(id)
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response:   v1specs.ErrorResponse{Error: detail},
	}
}

// HandleError answers requests the generated server rejects before a handler
// runs, such as undecodable or oversized bodies, with the same error body
// NewError produces.
func (h Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	res := h.NewError(ctx, requestError(err))

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	res.Response.Encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Debug(ctx, "could not write error response", zap.Error(err))
	}
}

func requestError(err error) error {
	var (
		mbe       *http.MaxBytesError
		reqErr    *ogenerrors.DecodeRequestError
		paramsErr *ogenerrors.DecodeParamsError
	)
	switch {
	case errors.As(err, &mbe):
		return serrors.Wrap(serrors.ErrTooLarge, err, "request body exceeds %d bytes", mbe.Limit)
	case errors.As(err, &reqErr), errors.As(err, &paramsErr):
		return serrors.Wrap(serrors.ErrBadRequest, err, "The request could not be decoded. Send a résumé file and a job description.")
	default:
		return err
	}
}
