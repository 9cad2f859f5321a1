package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anythingai/SF-Garbage-Reporter/internal/config"
	"github.com/anythingai/SF-Garbage-Reporter/internal/models"
	"github.com/anythingai/SF-Garbage-Reporter/internal/service"
	"github.com/anythingai/SF-Garbage-Reporter/internal/service/mocks"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockReportService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockReportService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DedupBackend: "memory",
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validSubmitBody() map[string]any {
	return map[string]any{
		"lat":          37.7749,
		"lon":          -122.4194,
		"accuracy":     10,
		"client_nonce": "a0d4b216-f4cf-4219-822b-f83e49a6cccb",
		"message":      "Boxes behind bus stop",
	}
}

func TestSubmitReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.SubmitResult{Reference: "email_123"}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(validSubmitBody())
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SubmitSuccessResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "email_123", resp.Reference)
}

func TestSubmitReport_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(`{"lat": 37.77`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"bad_request"`)
}

func TestSubmitReport_LatOutOfRange(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	body := validSubmitBody()
	body["lat"] = 200
	bodyBytes, _ := json.Marshal(body)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"bad_request"`)
	// Наружу не уходит, какое именно поле не прошло
	assert.Contains(t, w.Body.String(), "Invalid request data")
	assert.NotContains(t, w.Body.String(), "Lat")
}

func TestSubmitReport_LonOutOfRange(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := validSubmitBody()
	body["lon"] = -181
	bodyBytes, _ := json.Marshal(body)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"bad_request"`)
}

func TestSubmitReport_MalformedNonce(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := validSubmitBody()
	body["client_nonce"] = "not-a-uuid"
	bodyBytes, _ := json.Marshal(body)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"bad_request"`)
}

func TestSubmitReport_NegativeAccuracy(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := validSubmitBody()
	body["accuracy"] = -1
	bodyBytes, _ := json.Marshal(body)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitReport_MalformedPhoto(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body := validSubmitBody()
	body["photo"] = "not-a-data-url"
	bodyBytes, _ := json.Marshal(body)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitReport_ZeroCoordinatesAreValid(t *testing.T) {
	// Экватор и нулевой меридиан - валидные координаты
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.SubmitResult{Reference: "email_456"}, nil).
		Times(1)

	body := validSubmitBody()
	body["lat"] = 0.0
	body["lon"] = 0.0
	bodyBytes, _ := json.Marshal(body)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitReport_EpochTimestampIsValid(t *testing.T) {
	// timestamp: 0 - легитимное значение (epoch), а не отсутствие поля
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.SubmitResult{Reference: "email_789"}, nil).
		Times(1)

	body := validSubmitBody()
	body["timestamp"] = 0
	bodyBytes, _ := json.Marshal(body)
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitReport_OutOfBounds(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, service.ErrOutOfBounds).
		Times(1)

	bodyBytes, _ := json.Marshal(validSubmitBody())
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"out_of_bounds"`)
}

func TestSubmitReport_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	serviceError := errors.New("service: could not dispatch report")

	mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(validSubmitBody())
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"server_error"`)
	// Внутренности транспорта наружу не уходят
	assert.NotContains(t, w.Body.String(), "dispatch")
}

func TestSubmitReport_DuplicateReplayIdenticalBody(t *testing.T) {
	// Повтор в окне возвращает байт-в-байт тот же ответ
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.SubmitResult{Reference: "email_123"}, nil).
		Times(1)
	mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.SubmitResult{Reference: "email_123", Duplicate: true}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(validSubmitBody())
	w1 := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))
	w2 := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, w1.Body.Bytes(), w2.Body.Bytes())
}

func TestSubmitReport_RequestIDEchoed(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), "client-supplied-id").
		Return(&models.SubmitResult{Reference: "email_123"}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(validSubmitBody())
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes),
		map[string]string{"X-Request-ID": "client-supplied-id"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "client-supplied-id", w.Header().Get("X-Request-ID"))
}

func TestSubmitReport_RequestIDGenerated(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.SubmitResult{Reference: "email_123"}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(validSubmitBody())
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSubmitReport_LogsCarryRequestID(t *testing.T) {
	// Перехватываем JSON-логи обработчика в буфер
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockReportService(ctrl)

	var logBuf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&logBuf)

	cfg := &config.Config{DedupBackend: "memory"}
	handler := NewHandler(mockService, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any(), "client-supplied-id").
		Return(&models.SubmitResult{Reference: "email_123"}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(validSubmitBody())
	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBuffer(bodyBytes),
		map[string]string{"X-Request-ID": "client-supplied-id"})

	assert.Equal(t, http.StatusOK, w.Code)

	// Каждая строка лога несет корреляционный идентификатор
	require.NotEmpty(t, logBuf.Bytes())
	for _, line := range bytes.Split(bytes.TrimSpace(logBuf.Bytes()), []byte("\n")) {
		assert.Contains(t, string(line), `"request_id":"client-supplied-id"`)
	}
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "sf-garbage-reporter", resp.Service)
	assert.Equal(t, "memory", resp.DedupBackend)
	assert.False(t, resp.GeoFence)
}
