package httputils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
	"go.uber.org/zap"
)

const (
	RequestTimeout = 3 * time.Second
)

func GetInstanceFromContext(r *http.Request) (entity.InstanceID, error) {
	instanceCtx, ok := r.Context().Value(entity.InstanceCtxKey{}).(entity.InstanceCtx)
	if !ok {
		return entity.InstanceID(""), fmt.Errorf("instance id couldn't obtain from context")
	}

	if instanceCtx.StatusCode != http.StatusOK {
		return entity.InstanceID(""), fmt.Errorf("failed instance credentials")
	}

	if !instanceCtx.InstanceID.Valid() {
		return entity.InstanceID(""), fmt.Errorf("invalid instance id with status ok")
	}

	return instanceCtx.InstanceID, nil
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	out, err := json.Marshal(body)
	if err != nil {
		zap.L().Error("error while marshalling response body", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(out)
}
