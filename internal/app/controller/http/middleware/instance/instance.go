package instance

import (
	"context"
	"errors"
	"net/http"

	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/token"
	"go.uber.org/zap"
)

const instanceHeader = "X-Instance-Token"

// TokenParserMiddleware verifies the signed app instance token the embedded
// dashboard sends with every request and stores the result in the context.
func TokenParserMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			instanceCtx := processInstanceHeader(r.Header.Get(instanceHeader), secret)

			ctx := context.WithValue(r.Context(), entity.InstanceCtxKey{}, instanceCtx)
			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)
		})
	}
}

func processInstanceHeader(header, secret string) entity.InstanceCtx {
	if len(header) == 0 {
		zap.L().Info("instance token header is empty")

		return entity.CreateInstanceCtx("", http.StatusUnauthorized)
	}

	instanceID, err := token.GetInstanceID(header, secret)
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			zap.L().Info("instance token has expired")
		} else {
			zap.L().Error("error while parsing instance token", zap.Error(err))
		}

		return entity.CreateInstanceCtx("", http.StatusUnauthorized)
	}

	if !instanceID.Valid() {
		zap.L().Error("empty instance id in instance token")

		return entity.CreateInstanceCtx("", http.StatusBadRequest)
	}

	return entity.CreateInstanceCtx(instanceID, http.StatusOK)
}
