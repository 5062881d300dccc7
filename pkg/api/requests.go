package api

import "encoding/json"

// CreateTaskRequest is the body of POST /api/v1/tasks. JSON-object fields
// are stored as text in the task record.
type CreateTaskRequest struct {
	Name            string          `json:"name" binding:"required"`
	TargetHost      string          `json:"target_host" binding:"required"`
	APIPath         string          `json:"api_path"`
	Model           string          `json:"model"`
	StreamMode      *bool           `json:"stream_mode"`
	ConcurrentUsers int             `json:"concurrent_users" binding:"required,min=1,max=5000"`
	SpawnRate       int             `json:"spawn_rate" binding:"required,min=1,max=100"`
	Duration        int             `json:"duration" binding:"required,min=1,max=172800"`
	ChatType        int             `json:"chat_type" binding:"min=0,max=1"`
	Headers         json.RawMessage `json:"headers"`
	Cookies         json.RawMessage `json:"cookies"`
	CertFile        string          `json:"cert_file"`
	KeyFile         string          `json:"key_file"`
	RequestPayload  string          `json:"request_payload"`
	FieldMapping    json.RawMessage `json:"field_mapping"`
	TestData        string          `json:"test_data"`
}
