package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cueline/backend/internal/config"
	"github.com/gin-gonic/gin"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Environment:       "test",
		BallRadius:        8,
		Friction:          0.985,
		MinVelocity:       0.5,
		TimeStep:          1.0,
		MaxPoints:         1000,
		VelocityScale:     0.5,
		Restitution:       0.92,
		DefaultMaxBounces: 10,
	}

	// nil DB and Redis: predictions fall back to the env-derived physics
	// constants, which is exactly the degraded mode worth covering here.
	router := gin.New()
	router.POST("/predict", Predict(nil, nil, cfg))
	router.GET("/health", HealthCheck)
	return router
}

func postPredict(t *testing.T, router *gin.Engine, body map[string]interface{}) (*httptest.ResponseRecorder, PredictResponse) {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp PredictResponse
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
	}
	return w, resp
}

func TestPredictEndpointReturnsPath(t *testing.T) {
	router := testRouter()

	w, resp := postPredict(t, router, map[string]interface{}{
		"origin":        map[string]float64{"x": 75, "y": 75},
		"angle_degrees": 0,
		"force":         50,
		"table_width":   300,
		"table_height":  150,
		"max_bounces":   8,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(resp.Points) == 0 {
		t.Fatal("Expected a non-empty path")
	}
	if resp.Points[0].X != 75 || resp.Points[0].Y != 75 {
		t.Errorf("Path should start at the origin, got %v", resp.Points[0])
	}
	if len(resp.Guide) == 0 || len(resp.Guide) > len(resp.Points) {
		t.Errorf("Guide line should be a non-empty downsample, got %d of %d", len(resp.Guide), len(resp.Points))
	}
	if resp.Reason != "velocity_decay" {
		t.Errorf("Expected velocity_decay, got %q", resp.Reason)
	}
}

func TestPredictEndpointZeroForce(t *testing.T) {
	router := testRouter()

	w, resp := postPredict(t, router, map[string]interface{}{
		"origin":        map[string]float64{"x": 75, "y": 75},
		"angle_degrees": 0,
		"force":         0,
		"table_width":   300,
		"table_height":  150,
	})

	// Zero force is not an error: it is an empty guide line.
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if len(resp.Points) != 0 {
		t.Errorf("Zero force should yield an empty path, got %d points", len(resp.Points))
	}
	if resp.Reason != "invalid_request" {
		t.Errorf("Expected invalid_request reason, got %q", resp.Reason)
	}
}

func TestPredictEndpointRejectsBadBody(t *testing.T) {
	router := testRouter()

	w, _ := postPredict(t, router, map[string]interface{}{
		"origin": map[string]float64{"x": 75, "y": 75},
		"force":  50,
		// table dimensions missing
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Missing table extents should 400, got %d", w.Code)
	}

	w, _ = postPredict(t, router, map[string]interface{}{
		"origin":       map[string]float64{"x": 75, "y": 75},
		"force":        50,
		"table_width":  300,
		"table_height": 150,
		"max_bounces":  -3,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Negative max_bounces should 400, got %d", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode health response: %v", err)
	}
	if body["status"] != "ok" || body["service"] != "cueline-api" {
		t.Errorf("Unexpected health payload: %v", body)
	}
}
