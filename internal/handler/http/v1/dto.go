package v1

// Коды ошибок API
const (
	statusSuccess = "success"
	statusError   = "error"

	CodeBadRequest  = "bad_request"
	CodeOutOfBounds = "out_of_bounds"
	CodeServerError = "server_error"
)

// Наружу уходят только общие сообщения, детали валидации остаются в логах
const (
	msgInvalidRequest = "Invalid request data"
	msgOutOfBounds    = "Location is outside the service area"
	msgServerError    = "Failed to process report"
)

// SubmitReportRequest DTO для приёма отчёта о мусоре.
// Координаты - указатели, чтобы нулевые значения (экватор, нулевой
// меридиан) проходили проверку required.
// @Description DTO для приёма отчёта о мусоре
type SubmitReportRequest struct {
	Lat         *float64 `json:"lat" validate:"required,latitude"`
	Lon         *float64 `json:"lon" validate:"required,longitude"`
	Accuracy    *float64 `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	Timestamp   *int64   `json:"timestamp,omitempty"`
	ClientNonce string   `json:"client_nonce" validate:"required,uuid"`
	Message     string   `json:"message,omitempty"`
	Photo       string   `json:"photo,omitempty" validate:"omitempty,datauri"`
}

// SubmitSuccessResponse DTO успешного ответа
// @Description DTO успешного ответа
type SubmitSuccessResponse struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

// ErrorResponse DTO ответа с ошибкой
// @Description DTO ответа с ошибкой
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse DTO ответа health-check со сводкой флагов
// @Description DTO ответа health-check
type HealthResponse struct {
	Status       string `json:"status"`
	Service      string `json:"service"`
	GeoFence     bool   `json:"geo_fence"`
	DedupBackend string `json:"dedup_backend"`
}
