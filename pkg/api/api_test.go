package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfflow/perfflow/ent/task"
	"github.com/perfflow/perfflow/pkg/database"
	testdb "github.com/perfflow/perfflow/test/database"
)

func setupRouter(t *testing.T) (*gin.Engine, *database.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	router := gin.New()
	NewServer(client).RegisterRoutes(router)
	return router, client
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validCreateBody() map[string]any {
	return map[string]any{
		"name":             "smoke run",
		"target_host":      "http://localhost:8000",
		"model":            "llama-3.1-8b",
		"concurrent_users": 50,
		"spawn_rate":       5,
		"duration":         120,
	}
}

func TestCreateTask(t *testing.T) {
	router, client := setupRouter(t)

	t.Run("creates task with defaults", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/tasks", validCreateBody())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, string(task.StatusCreated), resp.Status)
		assert.Equal(t, "/chat/completions", resp.APIPath)
		assert.Equal(t, "true", resp.StreamMode)

		stored, err := client.Task.Get(context.Background(), resp.ID)
		require.NoError(t, err)
		assert.Equal(t, "smoke run", stored.Name)
		assert.Equal(t, 50, stored.ConcurrentUsers)
	})

	t.Run("stream_mode false is stored as text", func(t *testing.T) {
		body := validCreateBody()
		body["stream_mode"] = false
		w := postJSON(t, router, "/api/v1/tasks", body)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "false", resp.StreamMode)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/tasks", map[string]any{"name": "no host"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects users above limit", func(t *testing.T) {
		body := validCreateBody()
		body["concurrent_users"] = 5001
		w := postJSON(t, router, "/api/v1/tasks", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetTask(t *testing.T) {
	router, _ := setupRouter(t)

	w := postJSON(t, router, "/api/v1/tasks", validCreateBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	t.Run("returns the task", func(t *testing.T) {
		w := getJSON(t, router, "/api/v1/tasks/"+created.ID)
		require.Equal(t, http.StatusOK, w.Code)
		var resp TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := getJSON(t, router, "/api/v1/tasks/"+uuid.New().String())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListTasks(t *testing.T) {
	router, client := setupRouter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		body := validCreateBody()
		body["name"] = fmt.Sprintf("run %d", i)
		w := postJSON(t, router, "/api/v1/tasks", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	// Move one task out of created so the status filter has something to split on.
	first, err := client.Task.Query().First(ctx)
	require.NoError(t, err)
	require.NoError(t, client.Task.UpdateOne(first).SetStatus(task.StatusCompleted).Exec(ctx))

	t.Run("lists all", func(t *testing.T) {
		w := getJSON(t, router, "/api/v1/tasks")
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Items []TaskResponse `json:"items"`
			Total int            `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Total)
		assert.Len(t, resp.Items, 3)
	})

	t.Run("filters by status", func(t *testing.T) {
		w := getJSON(t, router, "/api/v1/tasks?status=completed")
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Items []TaskResponse `json:"items"`
			Total int            `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("rejects bad status", func(t *testing.T) {
		w := getJSON(t, router, "/api/v1/tasks?status=exploded")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("paginates", func(t *testing.T) {
		w := getJSON(t, router, "/api/v1/tasks?page=1&page_size=2")
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Items []TaskResponse `json:"items"`
			Total int            `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Total)
		assert.Len(t, resp.Items, 2)
	})
}

func TestStopTask(t *testing.T) {
	router, client := setupRouter(t)
	ctx := context.Background()

	newTask := func(status task.Status) string {
		id := uuid.New().String()
		_, err := client.Task.Create().
			SetID(id).
			SetName("stop target").
			SetTargetHost("http://localhost:8000").
			SetConcurrentUsers(10).
			SetSpawnRate(1).
			SetDuration(60).
			SetStatus(status).
			Save(ctx)
		require.NoError(t, err)
		return id
	}

	t.Run("running task moves to stopping", func(t *testing.T) {
		id := newTask(task.StatusRunning)
		w := postJSON(t, router, "/api/v1/tasks/"+id+"/stop", nil)
		require.Equal(t, http.StatusAccepted, w.Code)

		stored, err := client.Task.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, task.StatusStopping, stored.Status)
	})

	t.Run("terminal task is a conflict", func(t *testing.T) {
		id := newTask(task.StatusCompleted)
		w := postJSON(t, router, "/api/v1/tasks/"+id+"/stop", nil)
		assert.Equal(t, http.StatusConflict, w.Code)

		stored, err := client.Task.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, stored.Status)
	})

	t.Run("unknown task is 404", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/tasks/"+uuid.New().String()+"/stop", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetTaskResults(t *testing.T) {
	router, client := setupRouter(t)
	ctx := context.Background()

	id := uuid.New().String()
	_, err := client.Task.Create().
		SetID(id).
		SetName("finished run").
		SetTargetHost("http://localhost:8000").
		SetConcurrentUsers(10).
		SetSpawnRate(1).
		SetDuration(60).
		SetStatus(task.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, client.TaskResult.Create().
		SetTaskID(id).
		SetMetricType("chat_completions").
		SetNumRequests(100).
		SetMedianLatency(250).
		Exec(ctx))
	require.NoError(t, client.TaskResult.Create().
		SetTaskID(id).
		SetMetricType("token_metrics").
		SetNumRequests(100).
		SetCompletionTps(80.5).
		Exec(ctx))

	t.Run("returns all rows", func(t *testing.T) {
		w := getJSON(t, router, "/api/v1/tasks/"+id+"/results")
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			TaskID  string               `json:"task_id"`
			Results []TaskResultResponse `json:"results"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, id, resp.TaskID)
		require.Len(t, resp.Results, 2)
	})

	t.Run("unknown task is 404", func(t *testing.T) {
		w := getJSON(t, router, "/api/v1/tasks/"+uuid.New().String()+"/results")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("task without rows returns empty list", func(t *testing.T) {
		bare := uuid.New().String()
		_, err := client.Task.Create().
			SetID(bare).
			SetName("bare").
			SetTargetHost("http://localhost:8000").
			SetConcurrentUsers(1).
			SetSpawnRate(1).
			SetDuration(30).
			Save(ctx)
		require.NoError(t, err)

		w := getJSON(t, router, "/api/v1/tasks/"+bare+"/results")
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Results []TaskResultResponse `json:"results"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Results)
	})
}
