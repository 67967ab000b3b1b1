package dto

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Version   string `json:"version"`
}

type ReadyResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type MetricsResponse struct {
	RequestsTotal     int64 `json:"requests_total"`
	RequestsSuccess   int64 `json:"requests_success"`
	RequestsFailed    int64 `json:"requests_failed"`
	AvgResponseTimeMs int64 `json:"avg_response_time_ms"`
	ActiveConnections int32 `json:"active_connections"`
}
