// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/perfflow/perfflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldName, v))
}

// TargetHost applies equality check predicate on the "target_host" field. It's identical to TargetHostEQ.
func TargetHost(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTargetHost, v))
}

// APIPath applies equality check predicate on the "api_path" field. It's identical to APIPathEQ.
func APIPath(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAPIPath, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldModel, v))
}

// StreamMode applies equality check predicate on the "stream_mode" field. It's identical to StreamModeEQ.
func StreamMode(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStreamMode, v))
}

// ConcurrentUsers applies equality check predicate on the "concurrent_users" field. It's identical to ConcurrentUsersEQ.
func ConcurrentUsers(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldConcurrentUsers, v))
}

// SpawnRate applies equality check predicate on the "spawn_rate" field. It's identical to SpawnRateEQ.
func SpawnRate(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSpawnRate, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDuration, v))
}

// ChatType applies equality check predicate on the "chat_type" field. It's identical to ChatTypeEQ.
func ChatType(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldChatType, v))
}

// Headers applies equality check predicate on the "headers" field. It's identical to HeadersEQ.
func Headers(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldHeaders, v))
}

// Cookies applies equality check predicate on the "cookies" field. It's identical to CookiesEQ.
func Cookies(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCookies, v))
}

// CertFile applies equality check predicate on the "cert_file" field. It's identical to CertFileEQ.
func CertFile(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCertFile, v))
}

// KeyFile applies equality check predicate on the "key_file" field. It's identical to KeyFileEQ.
func KeyFile(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldKeyFile, v))
}

// RequestPayload applies equality check predicate on the "request_payload" field. It's identical to RequestPayloadEQ.
func RequestPayload(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRequestPayload, v))
}

// FieldMapping applies equality check predicate on the "field_mapping" field. It's identical to FieldMappingEQ.
func FieldMapping(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFieldMapping, v))
}

// TestData applies equality check predicate on the "test_data" field. It's identical to TestDataEQ.
func TestData(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTestData, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// TargetHostEQ applies the EQ predicate on the "target_host" field.
func TargetHostEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTargetHost, v))
}

// TargetHostNEQ applies the NEQ predicate on the "target_host" field.
func TargetHostNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTargetHost, v))
}

// TargetHostIn applies the In predicate on the "target_host" field.
func TargetHostIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTargetHost, vs...))
}

// TargetHostNotIn applies the NotIn predicate on the "target_host" field.
func TargetHostNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTargetHost, vs...))
}

// TargetHostGT applies the GT predicate on the "target_host" field.
func TargetHostGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTargetHost, v))
}

// TargetHostGTE applies the GTE predicate on the "target_host" field.
func TargetHostGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTargetHost, v))
}

// TargetHostLT applies the LT predicate on the "target_host" field.
func TargetHostLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTargetHost, v))
}

// TargetHostLTE applies the LTE predicate on the "target_host" field.
func TargetHostLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTargetHost, v))
}

// TargetHostContains applies the Contains predicate on the "target_host" field.
func TargetHostContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTargetHost, v))
}

// TargetHostHasPrefix applies the HasPrefix predicate on the "target_host" field.
func TargetHostHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTargetHost, v))
}

// TargetHostHasSuffix applies the HasSuffix predicate on the "target_host" field.
func TargetHostHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTargetHost, v))
}

// TargetHostEqualFold applies the EqualFold predicate on the "target_host" field.
func TargetHostEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTargetHost, v))
}

// TargetHostContainsFold applies the ContainsFold predicate on the "target_host" field.
func TargetHostContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTargetHost, v))
}

// APIPathEQ applies the EQ predicate on the "api_path" field.
func APIPathEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAPIPath, v))
}

// APIPathNEQ applies the NEQ predicate on the "api_path" field.
func APIPathNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAPIPath, v))
}

// APIPathIn applies the In predicate on the "api_path" field.
func APIPathIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAPIPath, vs...))
}

// APIPathNotIn applies the NotIn predicate on the "api_path" field.
func APIPathNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAPIPath, vs...))
}

// APIPathGT applies the GT predicate on the "api_path" field.
func APIPathGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAPIPath, v))
}

// APIPathGTE applies the GTE predicate on the "api_path" field.
func APIPathGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAPIPath, v))
}

// APIPathLT applies the LT predicate on the "api_path" field.
func APIPathLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAPIPath, v))
}

// APIPathLTE applies the LTE predicate on the "api_path" field.
func APIPathLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAPIPath, v))
}

// APIPathContains applies the Contains predicate on the "api_path" field.
func APIPathContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldAPIPath, v))
}

// APIPathHasPrefix applies the HasPrefix predicate on the "api_path" field.
func APIPathHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldAPIPath, v))
}

// APIPathHasSuffix applies the HasSuffix predicate on the "api_path" field.
func APIPathHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldAPIPath, v))
}

// APIPathEqualFold applies the EqualFold predicate on the "api_path" field.
func APIPathEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldAPIPath, v))
}

// APIPathContainsFold applies the ContainsFold predicate on the "api_path" field.
func APIPathContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldAPIPath, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldModel, v))
}

// StreamModeEQ applies the EQ predicate on the "stream_mode" field.
func StreamModeEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStreamMode, v))
}

// StreamModeNEQ applies the NEQ predicate on the "stream_mode" field.
func StreamModeNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStreamMode, v))
}

// StreamModeIn applies the In predicate on the "stream_mode" field.
func StreamModeIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStreamMode, vs...))
}

// StreamModeNotIn applies the NotIn predicate on the "stream_mode" field.
func StreamModeNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStreamMode, vs...))
}

// StreamModeGT applies the GT predicate on the "stream_mode" field.
func StreamModeGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStreamMode, v))
}

// StreamModeGTE applies the GTE predicate on the "stream_mode" field.
func StreamModeGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStreamMode, v))
}

// StreamModeLT applies the LT predicate on the "stream_mode" field.
func StreamModeLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStreamMode, v))
}

// StreamModeLTE applies the LTE predicate on the "stream_mode" field.
func StreamModeLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStreamMode, v))
}

// StreamModeContains applies the Contains predicate on the "stream_mode" field.
func StreamModeContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldStreamMode, v))
}

// StreamModeHasPrefix applies the HasPrefix predicate on the "stream_mode" field.
func StreamModeHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldStreamMode, v))
}

// StreamModeHasSuffix applies the HasSuffix predicate on the "stream_mode" field.
func StreamModeHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldStreamMode, v))
}

// StreamModeEqualFold applies the EqualFold predicate on the "stream_mode" field.
func StreamModeEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldStreamMode, v))
}

// StreamModeContainsFold applies the ContainsFold predicate on the "stream_mode" field.
func StreamModeContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldStreamMode, v))
}

// ConcurrentUsersEQ applies the EQ predicate on the "concurrent_users" field.
func ConcurrentUsersEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldConcurrentUsers, v))
}

// ConcurrentUsersNEQ applies the NEQ predicate on the "concurrent_users" field.
func ConcurrentUsersNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldConcurrentUsers, v))
}

// ConcurrentUsersIn applies the In predicate on the "concurrent_users" field.
func ConcurrentUsersIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldConcurrentUsers, vs...))
}

// ConcurrentUsersNotIn applies the NotIn predicate on the "concurrent_users" field.
func ConcurrentUsersNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldConcurrentUsers, vs...))
}

// ConcurrentUsersGT applies the GT predicate on the "concurrent_users" field.
func ConcurrentUsersGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldConcurrentUsers, v))
}

// ConcurrentUsersGTE applies the GTE predicate on the "concurrent_users" field.
func ConcurrentUsersGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldConcurrentUsers, v))
}

// ConcurrentUsersLT applies the LT predicate on the "concurrent_users" field.
func ConcurrentUsersLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldConcurrentUsers, v))
}

// ConcurrentUsersLTE applies the LTE predicate on the "concurrent_users" field.
func ConcurrentUsersLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldConcurrentUsers, v))
}

// SpawnRateEQ applies the EQ predicate on the "spawn_rate" field.
func SpawnRateEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSpawnRate, v))
}

// SpawnRateNEQ applies the NEQ predicate on the "spawn_rate" field.
func SpawnRateNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldSpawnRate, v))
}

// SpawnRateIn applies the In predicate on the "spawn_rate" field.
func SpawnRateIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldSpawnRate, vs...))
}

// SpawnRateNotIn applies the NotIn predicate on the "spawn_rate" field.
func SpawnRateNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldSpawnRate, vs...))
}

// SpawnRateGT applies the GT predicate on the "spawn_rate" field.
func SpawnRateGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldSpawnRate, v))
}

// SpawnRateGTE applies the GTE predicate on the "spawn_rate" field.
func SpawnRateGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldSpawnRate, v))
}

// SpawnRateLT applies the LT predicate on the "spawn_rate" field.
func SpawnRateLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldSpawnRate, v))
}

// SpawnRateLTE applies the LTE predicate on the "spawn_rate" field.
func SpawnRateLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldSpawnRate, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDuration, v))
}

// ChatTypeEQ applies the EQ predicate on the "chat_type" field.
func ChatTypeEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldChatType, v))
}

// ChatTypeNEQ applies the NEQ predicate on the "chat_type" field.
func ChatTypeNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldChatType, v))
}

// ChatTypeIn applies the In predicate on the "chat_type" field.
func ChatTypeIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldChatType, vs...))
}

// ChatTypeNotIn applies the NotIn predicate on the "chat_type" field.
func ChatTypeNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldChatType, vs...))
}

// ChatTypeGT applies the GT predicate on the "chat_type" field.
func ChatTypeGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldChatType, v))
}

// ChatTypeGTE applies the GTE predicate on the "chat_type" field.
func ChatTypeGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldChatType, v))
}

// ChatTypeLT applies the LT predicate on the "chat_type" field.
func ChatTypeLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldChatType, v))
}

// ChatTypeLTE applies the LTE predicate on the "chat_type" field.
func ChatTypeLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldChatType, v))
}

// HeadersEQ applies the EQ predicate on the "headers" field.
func HeadersEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldHeaders, v))
}

// HeadersNEQ applies the NEQ predicate on the "headers" field.
func HeadersNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldHeaders, v))
}

// HeadersIn applies the In predicate on the "headers" field.
func HeadersIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldHeaders, vs...))
}

// HeadersNotIn applies the NotIn predicate on the "headers" field.
func HeadersNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldHeaders, vs...))
}

// HeadersGT applies the GT predicate on the "headers" field.
func HeadersGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldHeaders, v))
}

// HeadersGTE applies the GTE predicate on the "headers" field.
func HeadersGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldHeaders, v))
}

// HeadersLT applies the LT predicate on the "headers" field.
func HeadersLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldHeaders, v))
}

// HeadersLTE applies the LTE predicate on the "headers" field.
func HeadersLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldHeaders, v))
}

// HeadersContains applies the Contains predicate on the "headers" field.
func HeadersContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldHeaders, v))
}

// HeadersHasPrefix applies the HasPrefix predicate on the "headers" field.
func HeadersHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldHeaders, v))
}

// HeadersHasSuffix applies the HasSuffix predicate on the "headers" field.
func HeadersHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldHeaders, v))
}

// HeadersIsNil applies the IsNil predicate on the "headers" field.
func HeadersIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldHeaders))
}

// HeadersNotNil applies the NotNil predicate on the "headers" field.
func HeadersNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldHeaders))
}

// HeadersEqualFold applies the EqualFold predicate on the "headers" field.
func HeadersEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldHeaders, v))
}

// HeadersContainsFold applies the ContainsFold predicate on the "headers" field.
func HeadersContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldHeaders, v))
}

// CookiesEQ applies the EQ predicate on the "cookies" field.
func CookiesEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCookies, v))
}

// CookiesNEQ applies the NEQ predicate on the "cookies" field.
func CookiesNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCookies, v))
}

// CookiesIn applies the In predicate on the "cookies" field.
func CookiesIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCookies, vs...))
}

// CookiesNotIn applies the NotIn predicate on the "cookies" field.
func CookiesNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCookies, vs...))
}

// CookiesGT applies the GT predicate on the "cookies" field.
func CookiesGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCookies, v))
}

// CookiesGTE applies the GTE predicate on the "cookies" field.
func CookiesGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCookies, v))
}

// CookiesLT applies the LT predicate on the "cookies" field.
func CookiesLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCookies, v))
}

// CookiesLTE applies the LTE predicate on the "cookies" field.
func CookiesLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCookies, v))
}

// CookiesContains applies the Contains predicate on the "cookies" field.
func CookiesContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCookies, v))
}

// CookiesHasPrefix applies the HasPrefix predicate on the "cookies" field.
func CookiesHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCookies, v))
}

// CookiesHasSuffix applies the HasSuffix predicate on the "cookies" field.
func CookiesHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCookies, v))
}

// CookiesIsNil applies the IsNil predicate on the "cookies" field.
func CookiesIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCookies))
}

// CookiesNotNil applies the NotNil predicate on the "cookies" field.
func CookiesNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCookies))
}

// CookiesEqualFold applies the EqualFold predicate on the "cookies" field.
func CookiesEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCookies, v))
}

// CookiesContainsFold applies the ContainsFold predicate on the "cookies" field.
func CookiesContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCookies, v))
}

// CertFileEQ applies the EQ predicate on the "cert_file" field.
func CertFileEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCertFile, v))
}

// CertFileNEQ applies the NEQ predicate on the "cert_file" field.
func CertFileNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCertFile, v))
}

// CertFileIn applies the In predicate on the "cert_file" field.
func CertFileIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCertFile, vs...))
}

// CertFileNotIn applies the NotIn predicate on the "cert_file" field.
func CertFileNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCertFile, vs...))
}

// CertFileGT applies the GT predicate on the "cert_file" field.
func CertFileGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCertFile, v))
}

// CertFileGTE applies the GTE predicate on the "cert_file" field.
func CertFileGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCertFile, v))
}

// CertFileLT applies the LT predicate on the "cert_file" field.
func CertFileLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCertFile, v))
}

// CertFileLTE applies the LTE predicate on the "cert_file" field.
func CertFileLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCertFile, v))
}

// CertFileContains applies the Contains predicate on the "cert_file" field.
func CertFileContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCertFile, v))
}

// CertFileHasPrefix applies the HasPrefix predicate on the "cert_file" field.
func CertFileHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCertFile, v))
}

// CertFileHasSuffix applies the HasSuffix predicate on the "cert_file" field.
func CertFileHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCertFile, v))
}

// CertFileIsNil applies the IsNil predicate on the "cert_file" field.
func CertFileIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCertFile))
}

// CertFileNotNil applies the NotNil predicate on the "cert_file" field.
func CertFileNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCertFile))
}

// CertFileEqualFold applies the EqualFold predicate on the "cert_file" field.
func CertFileEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCertFile, v))
}

// CertFileContainsFold applies the ContainsFold predicate on the "cert_file" field.
func CertFileContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCertFile, v))
}

// KeyFileEQ applies the EQ predicate on the "key_file" field.
func KeyFileEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldKeyFile, v))
}

// KeyFileNEQ applies the NEQ predicate on the "key_file" field.
func KeyFileNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldKeyFile, v))
}

// KeyFileIn applies the In predicate on the "key_file" field.
func KeyFileIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldKeyFile, vs...))
}

// KeyFileNotIn applies the NotIn predicate on the "key_file" field.
func KeyFileNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldKeyFile, vs...))
}

// KeyFileGT applies the GT predicate on the "key_file" field.
func KeyFileGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldKeyFile, v))
}

// KeyFileGTE applies the GTE predicate on the "key_file" field.
func KeyFileGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldKeyFile, v))
}

// KeyFileLT applies the LT predicate on the "key_file" field.
func KeyFileLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldKeyFile, v))
}

// KeyFileLTE applies the LTE predicate on the "key_file" field.
func KeyFileLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldKeyFile, v))
}

// KeyFileContains applies the Contains predicate on the "key_file" field.
func KeyFileContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldKeyFile, v))
}

// KeyFileHasPrefix applies the HasPrefix predicate on the "key_file" field.
func KeyFileHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldKeyFile, v))
}

// KeyFileHasSuffix applies the HasSuffix predicate on the "key_file" field.
func KeyFileHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldKeyFile, v))
}

// KeyFileIsNil applies the IsNil predicate on the "key_file" field.
func KeyFileIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldKeyFile))
}

// KeyFileNotNil applies the NotNil predicate on the "key_file" field.
func KeyFileNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldKeyFile))
}

// KeyFileEqualFold applies the EqualFold predicate on the "key_file" field.
func KeyFileEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldKeyFile, v))
}

// KeyFileContainsFold applies the ContainsFold predicate on the "key_file" field.
func KeyFileContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldKeyFile, v))
}

// RequestPayloadEQ applies the EQ predicate on the "request_payload" field.
func RequestPayloadEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRequestPayload, v))
}

// RequestPayloadNEQ applies the NEQ predicate on the "request_payload" field.
func RequestPayloadNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRequestPayload, v))
}

// RequestPayloadIn applies the In predicate on the "request_payload" field.
func RequestPayloadIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRequestPayload, vs...))
}

// RequestPayloadNotIn applies the NotIn predicate on the "request_payload" field.
func RequestPayloadNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRequestPayload, vs...))
}

// RequestPayloadGT applies the GT predicate on the "request_payload" field.
func RequestPayloadGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRequestPayload, v))
}

// RequestPayloadGTE applies the GTE predicate on the "request_payload" field.
func RequestPayloadGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRequestPayload, v))
}

// RequestPayloadLT applies the LT predicate on the "request_payload" field.
func RequestPayloadLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRequestPayload, v))
}

// RequestPayloadLTE applies the LTE predicate on the "request_payload" field.
func RequestPayloadLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRequestPayload, v))
}

// RequestPayloadContains applies the Contains predicate on the "request_payload" field.
func RequestPayloadContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldRequestPayload, v))
}

// RequestPayloadHasPrefix applies the HasPrefix predicate on the "request_payload" field.
func RequestPayloadHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldRequestPayload, v))
}

// RequestPayloadHasSuffix applies the HasSuffix predicate on the "request_payload" field.
func RequestPayloadHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldRequestPayload, v))
}

// RequestPayloadIsNil applies the IsNil predicate on the "request_payload" field.
func RequestPayloadIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldRequestPayload))
}

// RequestPayloadNotNil applies the NotNil predicate on the "request_payload" field.
func RequestPayloadNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldRequestPayload))
}

// RequestPayloadEqualFold applies the EqualFold predicate on the "request_payload" field.
func RequestPayloadEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldRequestPayload, v))
}

// RequestPayloadContainsFold applies the ContainsFold predicate on the "request_payload" field.
func RequestPayloadContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldRequestPayload, v))
}

// FieldMappingEQ applies the EQ predicate on the "field_mapping" field.
func FieldMappingEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFieldMapping, v))
}

// FieldMappingNEQ applies the NEQ predicate on the "field_mapping" field.
func FieldMappingNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldFieldMapping, v))
}

// FieldMappingIn applies the In predicate on the "field_mapping" field.
func FieldMappingIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldFieldMapping, vs...))
}

// FieldMappingNotIn applies the NotIn predicate on the "field_mapping" field.
func FieldMappingNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldFieldMapping, vs...))
}

// FieldMappingGT applies the GT predicate on the "field_mapping" field.
func FieldMappingGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldFieldMapping, v))
}

// FieldMappingGTE applies the GTE predicate on the "field_mapping" field.
func FieldMappingGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldFieldMapping, v))
}

// FieldMappingLT applies the LT predicate on the "field_mapping" field.
func FieldMappingLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldFieldMapping, v))
}

// FieldMappingLTE applies the LTE predicate on the "field_mapping" field.
func FieldMappingLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldFieldMapping, v))
}

// FieldMappingContains applies the Contains predicate on the "field_mapping" field.
func FieldMappingContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldFieldMapping, v))
}

// FieldMappingHasPrefix applies the HasPrefix predicate on the "field_mapping" field.
func FieldMappingHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldFieldMapping, v))
}

// FieldMappingHasSuffix applies the HasSuffix predicate on the "field_mapping" field.
func FieldMappingHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldFieldMapping, v))
}

// FieldMappingIsNil applies the IsNil predicate on the "field_mapping" field.
func FieldMappingIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldFieldMapping))
}

// FieldMappingNotNil applies the NotNil predicate on the "field_mapping" field.
func FieldMappingNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldFieldMapping))
}

// FieldMappingEqualFold applies the EqualFold predicate on the "field_mapping" field.
func FieldMappingEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldFieldMapping, v))
}

// FieldMappingContainsFold applies the ContainsFold predicate on the "field_mapping" field.
func FieldMappingContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldFieldMapping, v))
}

// TestDataEQ applies the EQ predicate on the "test_data" field.
func TestDataEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTestData, v))
}

// TestDataNEQ applies the NEQ predicate on the "test_data" field.
func TestDataNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTestData, v))
}

// TestDataIn applies the In predicate on the "test_data" field.
func TestDataIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTestData, vs...))
}

// TestDataNotIn applies the NotIn predicate on the "test_data" field.
func TestDataNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTestData, vs...))
}

// TestDataGT applies the GT predicate on the "test_data" field.
func TestDataGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTestData, v))
}

// TestDataGTE applies the GTE predicate on the "test_data" field.
func TestDataGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTestData, v))
}

// TestDataLT applies the LT predicate on the "test_data" field.
func TestDataLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTestData, v))
}

// TestDataLTE applies the LTE predicate on the "test_data" field.
func TestDataLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTestData, v))
}

// TestDataContains applies the Contains predicate on the "test_data" field.
func TestDataContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTestData, v))
}

// TestDataHasPrefix applies the HasPrefix predicate on the "test_data" field.
func TestDataHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTestData, v))
}

// TestDataHasSuffix applies the HasSuffix predicate on the "test_data" field.
func TestDataHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTestData, v))
}

// TestDataIsNil applies the IsNil predicate on the "test_data" field.
func TestDataIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldTestData))
}

// TestDataNotNil applies the NotNil predicate on the "test_data" field.
func TestDataNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldTestData))
}

// TestDataEqualFold applies the EqualFold predicate on the "test_data" field.
func TestDataEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTestData, v))
}

// TestDataContainsFold applies the ContainsFold predicate on the "test_data" field.
func TestDataContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTestData, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.TaskResult) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
