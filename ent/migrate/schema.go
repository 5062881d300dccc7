// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "locked", "running", "stopping", "completed", "failed", "failed_requests", "stopped"}, Default: "created"},
		{Name: "target_host", Type: field.TypeString},
		{Name: "api_path", Type: field.TypeString, Default: "/chat/completions"},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "stream_mode", Type: field.TypeString, Default: "true"},
		{Name: "concurrent_users", Type: field.TypeInt},
		{Name: "spawn_rate", Type: field.TypeInt},
		{Name: "duration", Type: field.TypeInt},
		{Name: "chat_type", Type: field.TypeInt, Default: 0},
		{Name: "headers", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cookies", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cert_file", Type: field.TypeString, Nullable: true},
		{Name: "key_file", Type: field.TypeString, Nullable: true},
		{Name: "request_payload", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "field_mapping", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "test_data", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2], TasksColumns[19]},
			},
		},
	}
	// TaskResultsColumns holds the columns for the "task_results" table.
	TaskResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "metric_type", Type: field.TypeString},
		{Name: "num_requests", Type: field.TypeInt64, Default: 0},
		{Name: "num_failures", Type: field.TypeInt64, Default: 0},
		{Name: "avg_latency", Type: field.TypeFloat64, Default: 0},
		{Name: "min_latency", Type: field.TypeFloat64, Default: 0},
		{Name: "max_latency", Type: field.TypeFloat64, Default: 0},
		{Name: "median_latency", Type: field.TypeFloat64, Default: 0},
		{Name: "p90_latency", Type: field.TypeFloat64, Default: 0},
		{Name: "rps", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_content_length", Type: field.TypeFloat64, Default: 0},
		{Name: "completion_tps", Type: field.TypeFloat64, Default: 0},
		{Name: "total_tps", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_total_tokens_per_req", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_completion_tokens_per_req", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskResultsTable holds the schema information for the "task_results" table.
	TaskResultsTable = &schema.Table{
		Name:       "task_results",
		Columns:    TaskResultsColumns,
		PrimaryKey: []*schema.Column{TaskResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_results_tasks_results",
				Columns:    []*schema.Column{TaskResultsColumns[17]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskresult_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskResultsColumns[17]},
			},
			{
				Name:    "taskresult_task_id_metric_type",
				Unique:  false,
				Columns: []*schema.Column{TaskResultsColumns[17], TaskResultsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		TasksTable,
		TaskResultsTable,
	}
)

func init() {
	TaskResultsTable.ForeignKeys[0].RefTable = TasksTable
}
