package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliveryerrors "go-repartos/internal/delivery/errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	createFn   func(ctx context.Context, req CreateDeliveryRequest) (DeliveryResponse, error)
	finalizeFn func(ctx context.Context, id string) (DeliveryResponse, error)
	getAllFn   func(ctx context.Context) ([]DeliveryListItem, error)
}

func (f *fakeService) Create(ctx context.Context, req CreateDeliveryRequest) (DeliveryResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) Finalize(ctx context.Context, id string) (DeliveryResponse, error) {
	return f.finalizeFn(ctx, id)
}
func (f *fakeService) GetAll(ctx context.Context) ([]DeliveryListItem, error) {
	return f.getAllFn(ctx)
}

// redisRecorder captures commands without touching the network: the process
// hook swallows every command instead of forwarding it.
type redisRecorder struct {
	cmds []redis.Cmder
}

func (r *redisRecorder) DialHook(next redis.DialHook) redis.DialHook { return next }

func (r *redisRecorder) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		r.cmds = append(r.cmds, cmd)
		return nil
	}
}

func (r *redisRecorder) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (r *redisRecorder) keysFor(name string) []string {
	var keys []string
	for _, cmd := range r.cmds {
		if cmd.Name() != name {
			continue
		}
		if key, ok := cmd.Args()[1].(string); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func newIdempotentCreateRouter(svc Service, rec *redisRecorder, cacheKey, lockKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	rdb.AddHook(rec)

	h := NewHandlerWithRedis(svc, rdb)
	r := gin.New()
	r.POST("/deliveries", func(c *gin.Context) {
		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)
	}, h.Create)
	return r
}

func postCreate(t *testing.T, r *gin.Engine, req CreateDeliveryRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/deliveries", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, httpReq)
	return w
}

func TestHandler_Create_ReleasesLockAndCachesResponse(t *testing.T) {
	cacheKey := "idemp:/api/v1/deliveries:u1:k1"
	lockKey := cacheKey + ":lock"

	svc := &fakeService{
		createFn: func(ctx context.Context, req CreateDeliveryRequest) (DeliveryResponse, error) {
			return DeliveryResponse{ID: "d-1", Ticket: req.Ticket, Status: StatusInProgress}, nil
		},
	}
	rec := &redisRecorder{}
	r := newIdempotentCreateRouter(svc, rec, cacheKey, lockKey)

	w := postCreate(t, r, validCreateRequest())
	assert.Equal(t, http.StatusCreated, w.Code)

	assert.Contains(t, rec.keysFor("set"), cacheKey)
	assert.Contains(t, rec.keysFor("del"), lockKey)
}

func TestHandler_Create_FailureReleasesLockWithoutCaching(t *testing.T) {
	cacheKey := "idemp:/api/v1/deliveries:u1:k2"
	lockKey := cacheKey + ":lock"

	svc := &fakeService{
		createFn: func(ctx context.Context, req CreateDeliveryRequest) (DeliveryResponse, error) {
			return DeliveryResponse{}, deliveryerrors.ErrTicketExists
		},
	}
	rec := &redisRecorder{}
	r := newIdempotentCreateRouter(svc, rec, cacheKey, lockKey)

	w := postCreate(t, r, validCreateRequest())
	assert.Equal(t, http.StatusConflict, w.Code)

	// a retry must re-execute, not replay the failure
	assert.Empty(t, rec.keysFor("set"))
	assert.Contains(t, rec.keysFor("del"), lockKey)
}

func TestHandler_Create_NoIdempotencyKeyStillWorks(t *testing.T) {
	svc := &fakeService{
		createFn: func(ctx context.Context, req CreateDeliveryRequest) (DeliveryResponse, error) {
			return DeliveryResponse{ID: "d-2", Ticket: req.Ticket, Status: StatusInProgress}, nil
		},
	}
	rec := &redisRecorder{}
	r := newIdempotentCreateRouter(svc, rec, "", "")

	w := postCreate(t, r, validCreateRequest())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, rec.cmds)
}
