package instance

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/token"
)

const testSecret = "test-secret"

func TestTokenParserMiddleware(t *testing.T) {
	validToken, err := token.BuildInstanceToken("instance-1", testSecret)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string

		want entity.InstanceCtx
	}{
		{
			name:   "empty header",
			header: "",

			want: entity.InstanceCtx{
				InstanceID: "",
				StatusCode: http.StatusUnauthorized,
			},
		},
		{
			name:   "garbage token",
			header: "not-a-token",

			want: entity.InstanceCtx{
				InstanceID: "",
				StatusCode: http.StatusUnauthorized,
			},
		},
		{
			name:   "valid token",
			header: validToken,

			want: entity.InstanceCtx{
				InstanceID: "instance-1",
				StatusCode: http.StatusOK,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var captured entity.InstanceCtx
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				instanceCtx, ok := r.Context().Value(entity.InstanceCtxKey{}).(entity.InstanceCtx)
				require.True(t, ok)
				captured = instanceCtx
			})

			request := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if len(test.header) != 0 {
				request.Header.Set("X-Instance-Token", test.header)
			}

			writer := httptest.NewRecorder()
			TokenParserMiddleware(testSecret)(next).ServeHTTP(writer, request)

			assert.Equal(t, test.want, captured)
		})
	}
}
