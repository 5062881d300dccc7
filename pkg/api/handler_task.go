package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/perfflow/perfflow/ent"
	"github.com/perfflow/perfflow/ent/task"
	"github.com/perfflow/perfflow/ent/taskresult"
)

// CreateTask handles POST /api/v1/tasks.
func (s *Server) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	streamMode := "true"
	if req.StreamMode != nil && !*req.StreamMode {
		streamMode = "false"
	}

	create := s.db.Task.Create().
		SetID(uuid.NewString()).
		SetName(req.Name).
		SetTargetHost(req.TargetHost).
		SetModel(req.Model).
		SetStreamMode(streamMode).
		SetConcurrentUsers(req.ConcurrentUsers).
		SetSpawnRate(req.SpawnRate).
		SetDuration(req.Duration).
		SetChatType(req.ChatType).
		SetCertFile(req.CertFile).
		SetKeyFile(req.KeyFile).
		SetRequestPayload(req.RequestPayload).
		SetTestData(req.TestData).
		SetHeaders(string(req.Headers)).
		SetCookies(string(req.Cookies)).
		SetFieldMapping(string(req.FieldMapping))
	if req.APIPath != "" {
		create = create.SetAPIPath(req.APIPath)
	}

	created, err := create.Save(c.Request.Context())
	if err != nil {
		if ent.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create task"})
		return
	}
	c.JSON(http.StatusCreated, toTaskResponse(created))
}

// ListTasks handles GET /api/v1/tasks with optional status filter and
// pagination.
func (s *Server) ListTasks(c *gin.Context) {
	query := s.db.Task.Query()

	if v := c.Query("status"); v != "" {
		st := task.Status(v)
		if err := task.StatusValidator(st); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		query = query.Where(task.StatusEQ(st))
	}

	page, pageSize := 1, 25
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}
	if v := c.Query("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			pageSize = ps
		}
	}

	total, err := query.Clone().Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list tasks"})
		return
	}

	tasks, err := query.
		Order(ent.Desc(task.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list tasks"})
		return
	}

	items := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, toTaskResponse(t))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetTask handles GET /api/v1/tasks/:id.
func (s *Server) GetTask(c *gin.Context) {
	t, err := s.db.Task.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load task"})
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(t))
}

// StopTask handles POST /api/v1/tasks/:id/stop. The transition to stopping
// is conditional, so a finished task is never reopened.
func (s *Server) StopTask(c *gin.Context) {
	taskID := c.Param("id")

	n, err := s.db.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusIn(task.StatusCreated, task.StatusLocked, task.StatusRunning),
		).
		SetStatus(task.StatusStopping).
		Save(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not stop task"})
		return
	}
	if n == 0 {
		exists, err := s.db.Task.Query().Where(task.IDEQ(taskID)).Exist(c.Request.Context())
		if err == nil && !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": "task is not in a stoppable state"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"task_id": taskID, "status": string(task.StatusStopping)})
}

// GetTaskResults handles GET /api/v1/tasks/:id/results.
func (s *Server) GetTaskResults(c *gin.Context) {
	taskID := c.Param("id")

	exists, err := s.db.Task.Query().Where(task.IDEQ(taskID)).Exist(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load task"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	rows, err := s.db.TaskResult.Query().
		Where(taskresult.TaskIDEQ(taskID)).
		Order(ent.Asc(taskresult.FieldMetricType)).
		All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load results"})
		return
	}

	items := make([]TaskResultResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toTaskResultResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "results": items})
}
