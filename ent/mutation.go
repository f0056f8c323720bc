// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ScientiaCapital/sales-agent/ent/agentexecution"
	"github.com/ScientiaCapital/sales-agent/ent/apicalllog"
	"github.com/ScientiaCapital/sales-agent/ent/checkpoint"
	"github.com/ScientiaCapital/sales-agent/ent/crmcontact"
	"github.com/ScientiaCapital/sales-agent/ent/crmcredential"
	"github.com/ScientiaCapital/sales-agent/ent/crmsynclog"
	"github.com/ScientiaCapital/sales-agent/ent/lead"
	"github.com/ScientiaCapital/sales-agent/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentExecution = "AgentExecution"
	TypeApiCallLog     = "ApiCallLog"
	TypeCRMContact     = "CRMContact"
	TypeCRMCredential  = "CRMCredential"
	TypeCRMSyncLog     = "CRMSyncLog"
	TypeCheckpoint     = "Checkpoint"
	TypeLead           = "Lead"
)

// AgentExecutionMutation represents an operation that mutates the AgentExecution nodes in the graph.
type AgentExecutionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	agent_name         *string
	lead_id            *string
	status             *agentexecution.Status
	started_at         *time.Time
	completed_at       *time.Time
	latency_ms         *int
	addlatency_ms      *int
	cost_usd           *float64
	addcost_usd        *float64
	error_message      *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	checkpoints        map[string]struct{}
	removedcheckpoints map[string]struct{}
	clearedcheckpoints bool
	done               bool
	oldValue           func(context.Context) (*AgentExecution, error)
	predicates         []predicate.AgentExecution
}

var _ ent.Mutation = (*AgentExecutionMutation)(nil)

// agentexecutionOption allows management of the mutation configuration using functional options.
type agentexecutionOption func(*AgentExecutionMutation)

// newAgentExecutionMutation creates new mutation for the AgentExecution entity.
func newAgentExecutionMutation(c config, op Op, opts ...agentexecutionOption) *AgentExecutionMutation {
	m := &AgentExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentExecutionID sets the ID field of the mutation.
func withAgentExecutionID(id string) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentExecution
		)
		m.oldValue = func(ctx context.Context) (*AgentExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentExecution sets the old AgentExecution of the mutation.
func withAgentExecution(node *AgentExecution) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		m.oldValue = func(context.Context) (*AgentExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentExecution entities.
func (m *AgentExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentName sets the "agent_name" field.
func (m *AgentExecutionMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentExecutionMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentExecutionMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetLeadID sets the "lead_id" field.
func (m *AgentExecutionMutation) SetLeadID(s string) {
	m.lead_id = &s
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *AgentExecutionMutation) LeadID() (r string, exists bool) {
	v := m.lead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldLeadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ClearLeadID clears the value of the "lead_id" field.
func (m *AgentExecutionMutation) ClearLeadID() {
	m.lead_id = nil
	m.clearedFields[agentexecution.FieldLeadID] = struct{}{}
}

// LeadIDCleared returns if the "lead_id" field was cleared in this mutation.
func (m *AgentExecutionMutation) LeadIDCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldLeadID]
	return ok
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *AgentExecutionMutation) ResetLeadID() {
	m.lead_id = nil
	delete(m.clearedFields, agentexecution.FieldLeadID)
}

// SetStatus sets the "status" field.
func (m *AgentExecutionMutation) SetStatus(a agentexecution.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentExecutionMutation) Status() (r agentexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStatus(ctx context.Context) (v agentexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AgentExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[agentexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AgentExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, agentexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentexecution.FieldCompletedAt)
}

// SetLatencyMs sets the "latency_ms" field.
func (m *AgentExecutionMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *AgentExecutionMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldLatencyMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *AgentExecutionMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *AgentExecutionMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (m *AgentExecutionMutation) ClearLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	m.clearedFields[agentexecution.FieldLatencyMs] = struct{}{}
}

// LatencyMsCleared returns if the "latency_ms" field was cleared in this mutation.
func (m *AgentExecutionMutation) LatencyMsCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldLatencyMs]
	return ok
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *AgentExecutionMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	delete(m.clearedFields, agentexecution.FieldLatencyMs)
}

// SetCostUsd sets the "cost_usd" field.
func (m *AgentExecutionMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *AgentExecutionMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *AgentExecutionMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *AgentExecutionMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *AgentExecutionMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentexecution.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *AgentExecutionMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *AgentExecutionMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *AgentExecutionMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *AgentExecutionMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *AgentExecutionMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *AgentExecutionMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *AgentExecutionMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// Where appends a list predicates to the AgentExecutionMutation builder.
func (m *AgentExecutionMutation) Where(ps ...predicate.AgentExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentExecution).
func (m *AgentExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentExecutionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.agent_name != nil {
		fields = append(fields, agentexecution.FieldAgentName)
	}
	if m.lead_id != nil {
		fields = append(fields, agentexecution.FieldLeadID)
	}
	if m.status != nil {
		fields = append(fields, agentexecution.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, agentexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	if m.latency_ms != nil {
		fields = append(fields, agentexecution.FieldLatencyMs)
	}
	if m.cost_usd != nil {
		fields = append(fields, agentexecution.FieldCostUsd)
	}
	if m.error_message != nil {
		fields = append(fields, agentexecution.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, agentexecution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldAgentName:
		return m.AgentName()
	case agentexecution.FieldLeadID:
		return m.LeadID()
	case agentexecution.FieldStatus:
		return m.Status()
	case agentexecution.FieldStartedAt:
		return m.StartedAt()
	case agentexecution.FieldCompletedAt:
		return m.CompletedAt()
	case agentexecution.FieldLatencyMs:
		return m.LatencyMs()
	case agentexecution.FieldCostUsd:
		return m.CostUsd()
	case agentexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case agentexecution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentexecution.FieldAgentName:
		return m.OldAgentName(ctx)
	case agentexecution.FieldLeadID:
		return m.OldLeadID(ctx)
	case agentexecution.FieldStatus:
		return m.OldStatus(ctx)
	case agentexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case agentexecution.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case agentexecution.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case agentexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agentexecution.FieldLeadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case agentexecution.FieldStatus:
		v, ok := value.(agentexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case agentexecution.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case agentexecution.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case agentexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addlatency_ms != nil {
		fields = append(fields, agentexecution.FieldLatencyMs)
	}
	if m.addcost_usd != nil {
		fields = append(fields, agentexecution.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldLatencyMs:
		return m.AddedLatencyMs()
	case agentexecution.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case agentexecution.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentexecution.FieldLeadID) {
		fields = append(fields, agentexecution.FieldLeadID)
	}
	if m.FieldCleared(agentexecution.FieldStartedAt) {
		fields = append(fields, agentexecution.FieldStartedAt)
	}
	if m.FieldCleared(agentexecution.FieldCompletedAt) {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	if m.FieldCleared(agentexecution.FieldLatencyMs) {
		fields = append(fields, agentexecution.FieldLatencyMs)
	}
	if m.FieldCleared(agentexecution.FieldErrorMessage) {
		fields = append(fields, agentexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ClearField(name string) error {
	switch name {
	case agentexecution.FieldLeadID:
		m.ClearLeadID()
		return nil
	case agentexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case agentexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case agentexecution.FieldLatencyMs:
		m.ClearLatencyMs()
		return nil
	case agentexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ResetField(name string) error {
	switch name {
	case agentexecution.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agentexecution.FieldLeadID:
		m.ResetLeadID()
		return nil
	case agentexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case agentexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case agentexecution.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case agentexecution.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case agentexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.checkpoints != nil {
		edges = append(edges, agentexecution.EdgeCheckpoints)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentexecution.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcheckpoints != nil {
		edges = append(edges, agentexecution.EdgeCheckpoints)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentexecution.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcheckpoints {
		edges = append(edges, agentexecution.EdgeCheckpoints)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentexecution.EdgeCheckpoints:
		return m.clearedcheckpoints
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentExecutionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentExecutionMutation) ResetEdge(name string) error {
	switch name {
	case agentexecution.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution edge %s", name)
}

// ApiCallLogMutation represents an operation that mutates the ApiCallLog nodes in the graph.
type ApiCallLogMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	provider             *string
	model                *string
	endpoint             *string
	operation            *apicalllog.Operation
	prompt_tokens        *int
	addprompt_tokens     *int
	completion_tokens    *int
	addcompletion_tokens *int
	total_tokens         *int
	addtotal_tokens      *int
	latency_ms           *int
	addlatency_ms        *int
	cost_usd             *float64
	addcost_usd          *float64
	user_id              *string
	success              *bool
	error_message        *string
	cache_hit            *bool
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*ApiCallLog, error)
	predicates           []predicate.ApiCallLog
}

var _ ent.Mutation = (*ApiCallLogMutation)(nil)

// apicalllogOption allows management of the mutation configuration using functional options.
type apicalllogOption func(*ApiCallLogMutation)

// newApiCallLogMutation creates new mutation for the ApiCallLog entity.
func newApiCallLogMutation(c config, op Op, opts ...apicalllogOption) *ApiCallLogMutation {
	m := &ApiCallLogMutation{
		config:        c,
		op:            op,
		typ:           TypeApiCallLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApiCallLogID sets the ID field of the mutation.
func withApiCallLogID(id string) apicalllogOption {
	return func(m *ApiCallLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ApiCallLog
		)
		m.oldValue = func(ctx context.Context) (*ApiCallLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApiCallLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApiCallLog sets the old ApiCallLog of the mutation.
func withApiCallLog(node *ApiCallLog) apicalllogOption {
	return func(m *ApiCallLogMutation) {
		m.oldValue = func(context.Context) (*ApiCallLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApiCallLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApiCallLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApiCallLog entities.
func (m *ApiCallLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApiCallLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApiCallLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApiCallLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *ApiCallLogMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ApiCallLogMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ApiCallLogMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *ApiCallLogMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ApiCallLogMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ApiCallLogMutation) ResetModel() {
	m.model = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *ApiCallLogMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *ApiCallLogMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *ApiCallLogMutation) ResetEndpoint() {
	m.endpoint = nil
}

// SetOperation sets the "operation" field.
func (m *ApiCallLogMutation) SetOperation(a apicalllog.Operation) {
	m.operation = &a
}

// Operation returns the value of the "operation" field in the mutation.
func (m *ApiCallLogMutation) Operation() (r apicalllog.Operation, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldOperation(ctx context.Context) (v apicalllog.Operation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *ApiCallLogMutation) ResetOperation() {
	m.operation = nil
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *ApiCallLogMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *ApiCallLogMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *ApiCallLogMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *ApiCallLogMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *ApiCallLogMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *ApiCallLogMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *ApiCallLogMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *ApiCallLogMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *ApiCallLogMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *ApiCallLogMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *ApiCallLogMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *ApiCallLogMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *ApiCallLogMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *ApiCallLogMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *ApiCallLogMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ApiCallLogMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ApiCallLogMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ApiCallLogMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ApiCallLogMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ApiCallLogMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *ApiCallLogMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *ApiCallLogMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *ApiCallLogMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *ApiCallLogMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *ApiCallLogMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetUserID sets the "user_id" field.
func (m *ApiCallLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ApiCallLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ApiCallLogMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[apicalllog.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ApiCallLogMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[apicalllog.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ApiCallLogMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, apicalllog.FieldUserID)
}

// SetSuccess sets the "success" field.
func (m *ApiCallLogMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *ApiCallLogMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *ApiCallLogMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ApiCallLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ApiCallLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ApiCallLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[apicalllog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ApiCallLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[apicalllog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ApiCallLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, apicalllog.FieldErrorMessage)
}

// SetCacheHit sets the "cache_hit" field.
func (m *ApiCallLogMutation) SetCacheHit(b bool) {
	m.cache_hit = &b
}

// CacheHit returns the value of the "cache_hit" field in the mutation.
func (m *ApiCallLogMutation) CacheHit() (r bool, exists bool) {
	v := m.cache_hit
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheHit returns the old "cache_hit" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldCacheHit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheHit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheHit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheHit: %w", err)
	}
	return oldValue.CacheHit, nil
}

// ResetCacheHit resets all changes to the "cache_hit" field.
func (m *ApiCallLogMutation) ResetCacheHit() {
	m.cache_hit = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ApiCallLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApiCallLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApiCallLog entity.
// If the ApiCallLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApiCallLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApiCallLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ApiCallLogMutation builder.
func (m *ApiCallLogMutation) Where(ps ...predicate.ApiCallLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApiCallLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApiCallLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApiCallLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApiCallLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApiCallLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApiCallLog).
func (m *ApiCallLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApiCallLogMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.provider != nil {
		fields = append(fields, apicalllog.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, apicalllog.FieldModel)
	}
	if m.endpoint != nil {
		fields = append(fields, apicalllog.FieldEndpoint)
	}
	if m.operation != nil {
		fields = append(fields, apicalllog.FieldOperation)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, apicalllog.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, apicalllog.FieldCompletionTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, apicalllog.FieldTotalTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, apicalllog.FieldLatencyMs)
	}
	if m.cost_usd != nil {
		fields = append(fields, apicalllog.FieldCostUsd)
	}
	if m.user_id != nil {
		fields = append(fields, apicalllog.FieldUserID)
	}
	if m.success != nil {
		fields = append(fields, apicalllog.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, apicalllog.FieldErrorMessage)
	}
	if m.cache_hit != nil {
		fields = append(fields, apicalllog.FieldCacheHit)
	}
	if m.created_at != nil {
		fields = append(fields, apicalllog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApiCallLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apicalllog.FieldProvider:
		return m.Provider()
	case apicalllog.FieldModel:
		return m.Model()
	case apicalllog.FieldEndpoint:
		return m.Endpoint()
	case apicalllog.FieldOperation:
		return m.Operation()
	case apicalllog.FieldPromptTokens:
		return m.PromptTokens()
	case apicalllog.FieldCompletionTokens:
		return m.CompletionTokens()
	case apicalllog.FieldTotalTokens:
		return m.TotalTokens()
	case apicalllog.FieldLatencyMs:
		return m.LatencyMs()
	case apicalllog.FieldCostUsd:
		return m.CostUsd()
	case apicalllog.FieldUserID:
		return m.UserID()
	case apicalllog.FieldSuccess:
		return m.Success()
	case apicalllog.FieldErrorMessage:
		return m.ErrorMessage()
	case apicalllog.FieldCacheHit:
		return m.CacheHit()
	case apicalllog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApiCallLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apicalllog.FieldProvider:
		return m.OldProvider(ctx)
	case apicalllog.FieldModel:
		return m.OldModel(ctx)
	case apicalllog.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case apicalllog.FieldOperation:
		return m.OldOperation(ctx)
	case apicalllog.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case apicalllog.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case apicalllog.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case apicalllog.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case apicalllog.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case apicalllog.FieldUserID:
		return m.OldUserID(ctx)
	case apicalllog.FieldSuccess:
		return m.OldSuccess(ctx)
	case apicalllog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case apicalllog.FieldCacheHit:
		return m.OldCacheHit(ctx)
	case apicalllog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApiCallLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApiCallLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apicalllog.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case apicalllog.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case apicalllog.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case apicalllog.FieldOperation:
		v, ok := value.(apicalllog.Operation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case apicalllog.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case apicalllog.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case apicalllog.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case apicalllog.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case apicalllog.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case apicalllog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case apicalllog.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case apicalllog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case apicalllog.FieldCacheHit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheHit(v)
		return nil
	case apicalllog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApiCallLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApiCallLogMutation) AddedFields() []string {
	var fields []string
	if m.addprompt_tokens != nil {
		fields = append(fields, apicalllog.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, apicalllog.FieldCompletionTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, apicalllog.FieldTotalTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, apicalllog.FieldLatencyMs)
	}
	if m.addcost_usd != nil {
		fields = append(fields, apicalllog.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApiCallLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case apicalllog.FieldPromptTokens:
		return m.AddedPromptTokens()
	case apicalllog.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case apicalllog.FieldTotalTokens:
		return m.AddedTotalTokens()
	case apicalllog.FieldLatencyMs:
		return m.AddedLatencyMs()
	case apicalllog.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApiCallLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case apicalllog.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case apicalllog.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case apicalllog.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case apicalllog.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case apicalllog.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown ApiCallLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApiCallLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apicalllog.FieldUserID) {
		fields = append(fields, apicalllog.FieldUserID)
	}
	if m.FieldCleared(apicalllog.FieldErrorMessage) {
		fields = append(fields, apicalllog.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApiCallLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApiCallLogMutation) ClearField(name string) error {
	switch name {
	case apicalllog.FieldUserID:
		m.ClearUserID()
		return nil
	case apicalllog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ApiCallLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApiCallLogMutation) ResetField(name string) error {
	switch name {
	case apicalllog.FieldProvider:
		m.ResetProvider()
		return nil
	case apicalllog.FieldModel:
		m.ResetModel()
		return nil
	case apicalllog.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case apicalllog.FieldOperation:
		m.ResetOperation()
		return nil
	case apicalllog.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case apicalllog.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case apicalllog.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case apicalllog.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case apicalllog.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case apicalllog.FieldUserID:
		m.ResetUserID()
		return nil
	case apicalllog.FieldSuccess:
		m.ResetSuccess()
		return nil
	case apicalllog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case apicalllog.FieldCacheHit:
		m.ResetCacheHit()
		return nil
	case apicalllog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApiCallLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApiCallLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApiCallLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApiCallLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApiCallLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApiCallLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApiCallLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApiCallLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApiCallLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApiCallLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApiCallLog edge %s", name)
}

// CRMContactMutation represents an operation that mutates the CRMContact nodes in the graph.
type CRMContactMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	platform             *string
	external_id          *string
	email                *string
	first_name           *string
	last_name            *string
	company              *string
	title                *string
	phone                *string
	properties           *map[string]interface{}
	enrichment_encrypted *[]byte
	needs_review         *bool
	last_synced_at       *time.Time
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*CRMContact, error)
	predicates           []predicate.CRMContact
}

var _ ent.Mutation = (*CRMContactMutation)(nil)

// crmcontactOption allows management of the mutation configuration using functional options.
type crmcontactOption func(*CRMContactMutation)

// newCRMContactMutation creates new mutation for the CRMContact entity.
func newCRMContactMutation(c config, op Op, opts ...crmcontactOption) *CRMContactMutation {
	m := &CRMContactMutation{
		config:        c,
		op:            op,
		typ:           TypeCRMContact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCRMContactID sets the ID field of the mutation.
func withCRMContactID(id string) crmcontactOption {
	return func(m *CRMContactMutation) {
		var (
			err   error
			once  sync.Once
			value *CRMContact
		)
		m.oldValue = func(ctx context.Context) (*CRMContact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CRMContact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCRMContact sets the old CRMContact of the mutation.
func withCRMContact(node *CRMContact) crmcontactOption {
	return func(m *CRMContactMutation) {
		m.oldValue = func(context.Context) (*CRMContact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CRMContactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CRMContactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CRMContact entities.
func (m *CRMContactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CRMContactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CRMContactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CRMContact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlatform sets the "platform" field.
func (m *CRMContactMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *CRMContactMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *CRMContactMutation) ResetPlatform() {
	m.platform = nil
}

// SetExternalID sets the "external_id" field.
func (m *CRMContactMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *CRMContactMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *CRMContactMutation) ResetExternalID() {
	m.external_id = nil
}

// SetEmail sets the "email" field.
func (m *CRMContactMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *CRMContactMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *CRMContactMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[crmcontact.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *CRMContactMutation) EmailCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *CRMContactMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, crmcontact.FieldEmail)
}

// SetFirstName sets the "first_name" field.
func (m *CRMContactMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *CRMContactMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *CRMContactMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[crmcontact.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *CRMContactMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *CRMContactMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, crmcontact.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *CRMContactMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *CRMContactMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *CRMContactMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[crmcontact.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *CRMContactMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *CRMContactMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, crmcontact.FieldLastName)
}

// SetCompany sets the "company" field.
func (m *CRMContactMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *CRMContactMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *CRMContactMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[crmcontact.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *CRMContactMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *CRMContactMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, crmcontact.FieldCompany)
}

// SetTitle sets the "title" field.
func (m *CRMContactMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CRMContactMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *CRMContactMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[crmcontact.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *CRMContactMutation) TitleCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *CRMContactMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, crmcontact.FieldTitle)
}

// SetPhone sets the "phone" field.
func (m *CRMContactMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *CRMContactMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *CRMContactMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[crmcontact.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *CRMContactMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *CRMContactMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, crmcontact.FieldPhone)
}

// SetProperties sets the "properties" field.
func (m *CRMContactMutation) SetProperties(value map[string]interface{}) {
	m.properties = &value
}

// Properties returns the value of the "properties" field in the mutation.
func (m *CRMContactMutation) Properties() (r map[string]interface{}, exists bool) {
	v := m.properties
	if v == nil {
		return
	}
	return *v, true
}

// OldProperties returns the old "properties" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldProperties(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperties: %w", err)
	}
	return oldValue.Properties, nil
}

// ClearProperties clears the value of the "properties" field.
func (m *CRMContactMutation) ClearProperties() {
	m.properties = nil
	m.clearedFields[crmcontact.FieldProperties] = struct{}{}
}

// PropertiesCleared returns if the "properties" field was cleared in this mutation.
func (m *CRMContactMutation) PropertiesCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldProperties]
	return ok
}

// ResetProperties resets all changes to the "properties" field.
func (m *CRMContactMutation) ResetProperties() {
	m.properties = nil
	delete(m.clearedFields, crmcontact.FieldProperties)
}

// SetEnrichmentEncrypted sets the "enrichment_encrypted" field.
func (m *CRMContactMutation) SetEnrichmentEncrypted(b []byte) {
	m.enrichment_encrypted = &b
}

// EnrichmentEncrypted returns the value of the "enrichment_encrypted" field in the mutation.
func (m *CRMContactMutation) EnrichmentEncrypted() (r []byte, exists bool) {
	v := m.enrichment_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichmentEncrypted returns the old "enrichment_encrypted" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldEnrichmentEncrypted(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichmentEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichmentEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichmentEncrypted: %w", err)
	}
	return oldValue.EnrichmentEncrypted, nil
}

// ClearEnrichmentEncrypted clears the value of the "enrichment_encrypted" field.
func (m *CRMContactMutation) ClearEnrichmentEncrypted() {
	m.enrichment_encrypted = nil
	m.clearedFields[crmcontact.FieldEnrichmentEncrypted] = struct{}{}
}

// EnrichmentEncryptedCleared returns if the "enrichment_encrypted" field was cleared in this mutation.
func (m *CRMContactMutation) EnrichmentEncryptedCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldEnrichmentEncrypted]
	return ok
}

// ResetEnrichmentEncrypted resets all changes to the "enrichment_encrypted" field.
func (m *CRMContactMutation) ResetEnrichmentEncrypted() {
	m.enrichment_encrypted = nil
	delete(m.clearedFields, crmcontact.FieldEnrichmentEncrypted)
}

// SetNeedsReview sets the "needs_review" field.
func (m *CRMContactMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *CRMContactMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *CRMContactMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (m *CRMContactMutation) SetLastSyncedAt(t time.Time) {
	m.last_synced_at = &t
}

// LastSyncedAt returns the value of the "last_synced_at" field in the mutation.
func (m *CRMContactMutation) LastSyncedAt() (r time.Time, exists bool) {
	v := m.last_synced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSyncedAt returns the old "last_synced_at" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldLastSyncedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSyncedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSyncedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSyncedAt: %w", err)
	}
	return oldValue.LastSyncedAt, nil
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (m *CRMContactMutation) ClearLastSyncedAt() {
	m.last_synced_at = nil
	m.clearedFields[crmcontact.FieldLastSyncedAt] = struct{}{}
}

// LastSyncedAtCleared returns if the "last_synced_at" field was cleared in this mutation.
func (m *CRMContactMutation) LastSyncedAtCleared() bool {
	_, ok := m.clearedFields[crmcontact.FieldLastSyncedAt]
	return ok
}

// ResetLastSyncedAt resets all changes to the "last_synced_at" field.
func (m *CRMContactMutation) ResetLastSyncedAt() {
	m.last_synced_at = nil
	delete(m.clearedFields, crmcontact.FieldLastSyncedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CRMContactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CRMContactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CRMContactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CRMContactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CRMContactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CRMContact entity.
// If the CRMContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMContactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CRMContactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CRMContactMutation builder.
func (m *CRMContactMutation) Where(ps ...predicate.CRMContact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CRMContactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CRMContactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CRMContact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CRMContactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CRMContactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CRMContact).
func (m *CRMContactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CRMContactMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.platform != nil {
		fields = append(fields, crmcontact.FieldPlatform)
	}
	if m.external_id != nil {
		fields = append(fields, crmcontact.FieldExternalID)
	}
	if m.email != nil {
		fields = append(fields, crmcontact.FieldEmail)
	}
	if m.first_name != nil {
		fields = append(fields, crmcontact.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, crmcontact.FieldLastName)
	}
	if m.company != nil {
		fields = append(fields, crmcontact.FieldCompany)
	}
	if m.title != nil {
		fields = append(fields, crmcontact.FieldTitle)
	}
	if m.phone != nil {
		fields = append(fields, crmcontact.FieldPhone)
	}
	if m.properties != nil {
		fields = append(fields, crmcontact.FieldProperties)
	}
	if m.enrichment_encrypted != nil {
		fields = append(fields, crmcontact.FieldEnrichmentEncrypted)
	}
	if m.needs_review != nil {
		fields = append(fields, crmcontact.FieldNeedsReview)
	}
	if m.last_synced_at != nil {
		fields = append(fields, crmcontact.FieldLastSyncedAt)
	}
	if m.created_at != nil {
		fields = append(fields, crmcontact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, crmcontact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CRMContactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case crmcontact.FieldPlatform:
		return m.Platform()
	case crmcontact.FieldExternalID:
		return m.ExternalID()
	case crmcontact.FieldEmail:
		return m.Email()
	case crmcontact.FieldFirstName:
		return m.FirstName()
	case crmcontact.FieldLastName:
		return m.LastName()
	case crmcontact.FieldCompany:
		return m.Company()
	case crmcontact.FieldTitle:
		return m.Title()
	case crmcontact.FieldPhone:
		return m.Phone()
	case crmcontact.FieldProperties:
		return m.Properties()
	case crmcontact.FieldEnrichmentEncrypted:
		return m.EnrichmentEncrypted()
	case crmcontact.FieldNeedsReview:
		return m.NeedsReview()
	case crmcontact.FieldLastSyncedAt:
		return m.LastSyncedAt()
	case crmcontact.FieldCreatedAt:
		return m.CreatedAt()
	case crmcontact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CRMContactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case crmcontact.FieldPlatform:
		return m.OldPlatform(ctx)
	case crmcontact.FieldExternalID:
		return m.OldExternalID(ctx)
	case crmcontact.FieldEmail:
		return m.OldEmail(ctx)
	case crmcontact.FieldFirstName:
		return m.OldFirstName(ctx)
	case crmcontact.FieldLastName:
		return m.OldLastName(ctx)
	case crmcontact.FieldCompany:
		return m.OldCompany(ctx)
	case crmcontact.FieldTitle:
		return m.OldTitle(ctx)
	case crmcontact.FieldPhone:
		return m.OldPhone(ctx)
	case crmcontact.FieldProperties:
		return m.OldProperties(ctx)
	case crmcontact.FieldEnrichmentEncrypted:
		return m.OldEnrichmentEncrypted(ctx)
	case crmcontact.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case crmcontact.FieldLastSyncedAt:
		return m.OldLastSyncedAt(ctx)
	case crmcontact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case crmcontact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CRMContact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CRMContactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case crmcontact.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case crmcontact.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case crmcontact.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case crmcontact.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case crmcontact.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case crmcontact.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case crmcontact.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case crmcontact.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case crmcontact.FieldProperties:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperties(v)
		return nil
	case crmcontact.FieldEnrichmentEncrypted:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichmentEncrypted(v)
		return nil
	case crmcontact.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case crmcontact.FieldLastSyncedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSyncedAt(v)
		return nil
	case crmcontact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case crmcontact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CRMContact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CRMContactMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CRMContactMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CRMContactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CRMContact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CRMContactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(crmcontact.FieldEmail) {
		fields = append(fields, crmcontact.FieldEmail)
	}
	if m.FieldCleared(crmcontact.FieldFirstName) {
		fields = append(fields, crmcontact.FieldFirstName)
	}
	if m.FieldCleared(crmcontact.FieldLastName) {
		fields = append(fields, crmcontact.FieldLastName)
	}
	if m.FieldCleared(crmcontact.FieldCompany) {
		fields = append(fields, crmcontact.FieldCompany)
	}
	if m.FieldCleared(crmcontact.FieldTitle) {
		fields = append(fields, crmcontact.FieldTitle)
	}
	if m.FieldCleared(crmcontact.FieldPhone) {
		fields = append(fields, crmcontact.FieldPhone)
	}
	if m.FieldCleared(crmcontact.FieldProperties) {
		fields = append(fields, crmcontact.FieldProperties)
	}
	if m.FieldCleared(crmcontact.FieldEnrichmentEncrypted) {
		fields = append(fields, crmcontact.FieldEnrichmentEncrypted)
	}
	if m.FieldCleared(crmcontact.FieldLastSyncedAt) {
		fields = append(fields, crmcontact.FieldLastSyncedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CRMContactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CRMContactMutation) ClearField(name string) error {
	switch name {
	case crmcontact.FieldEmail:
		m.ClearEmail()
		return nil
	case crmcontact.FieldFirstName:
		m.ClearFirstName()
		return nil
	case crmcontact.FieldLastName:
		m.ClearLastName()
		return nil
	case crmcontact.FieldCompany:
		m.ClearCompany()
		return nil
	case crmcontact.FieldTitle:
		m.ClearTitle()
		return nil
	case crmcontact.FieldPhone:
		m.ClearPhone()
		return nil
	case crmcontact.FieldProperties:
		m.ClearProperties()
		return nil
	case crmcontact.FieldEnrichmentEncrypted:
		m.ClearEnrichmentEncrypted()
		return nil
	case crmcontact.FieldLastSyncedAt:
		m.ClearLastSyncedAt()
		return nil
	}
	return fmt.Errorf("unknown CRMContact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CRMContactMutation) ResetField(name string) error {
	switch name {
	case crmcontact.FieldPlatform:
		m.ResetPlatform()
		return nil
	case crmcontact.FieldExternalID:
		m.ResetExternalID()
		return nil
	case crmcontact.FieldEmail:
		m.ResetEmail()
		return nil
	case crmcontact.FieldFirstName:
		m.ResetFirstName()
		return nil
	case crmcontact.FieldLastName:
		m.ResetLastName()
		return nil
	case crmcontact.FieldCompany:
		m.ResetCompany()
		return nil
	case crmcontact.FieldTitle:
		m.ResetTitle()
		return nil
	case crmcontact.FieldPhone:
		m.ResetPhone()
		return nil
	case crmcontact.FieldProperties:
		m.ResetProperties()
		return nil
	case crmcontact.FieldEnrichmentEncrypted:
		m.ResetEnrichmentEncrypted()
		return nil
	case crmcontact.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case crmcontact.FieldLastSyncedAt:
		m.ResetLastSyncedAt()
		return nil
	case crmcontact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case crmcontact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CRMContact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CRMContactMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CRMContactMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CRMContactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CRMContactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CRMContactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CRMContactMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CRMContactMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CRMContact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CRMContactMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CRMContact edge %s", name)
}

// CRMCredentialMutation represents an operation that mutates the CRMCredential nodes in the graph.
type CRMCredentialMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	tenant_id               *string
	platform                *string
	access_token_encrypted  *[]byte
	refresh_token_encrypted *[]byte
	expires_at              *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*CRMCredential, error)
	predicates              []predicate.CRMCredential
}

var _ ent.Mutation = (*CRMCredentialMutation)(nil)

// crmcredentialOption allows management of the mutation configuration using functional options.
type crmcredentialOption func(*CRMCredentialMutation)

// newCRMCredentialMutation creates new mutation for the CRMCredential entity.
func newCRMCredentialMutation(c config, op Op, opts ...crmcredentialOption) *CRMCredentialMutation {
	m := &CRMCredentialMutation{
		config:        c,
		op:            op,
		typ:           TypeCRMCredential,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCRMCredentialID sets the ID field of the mutation.
func withCRMCredentialID(id string) crmcredentialOption {
	return func(m *CRMCredentialMutation) {
		var (
			err   error
			once  sync.Once
			value *CRMCredential
		)
		m.oldValue = func(ctx context.Context) (*CRMCredential, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CRMCredential.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCRMCredential sets the old CRMCredential of the mutation.
func withCRMCredential(node *CRMCredential) crmcredentialOption {
	return func(m *CRMCredentialMutation) {
		m.oldValue = func(context.Context) (*CRMCredential, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CRMCredentialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CRMCredentialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CRMCredential entities.
func (m *CRMCredentialMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CRMCredentialMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CRMCredentialMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CRMCredential.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CRMCredentialMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CRMCredentialMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the CRMCredential entity.
// If the CRMCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMCredentialMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CRMCredentialMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetPlatform sets the "platform" field.
func (m *CRMCredentialMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *CRMCredentialMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the CRMCredential entity.
// If the CRMCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMCredentialMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *CRMCredentialMutation) ResetPlatform() {
	m.platform = nil
}

// SetAccessTokenEncrypted sets the "access_token_encrypted" field.
func (m *CRMCredentialMutation) SetAccessTokenEncrypted(b []byte) {
	m.access_token_encrypted = &b
}

// AccessTokenEncrypted returns the value of the "access_token_encrypted" field in the mutation.
func (m *CRMCredentialMutation) AccessTokenEncrypted() (r []byte, exists bool) {
	v := m.access_token_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessTokenEncrypted returns the old "access_token_encrypted" field's value of the CRMCredential entity.
// If the CRMCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMCredentialMutation) OldAccessTokenEncrypted(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessTokenEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessTokenEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessTokenEncrypted: %w", err)
	}
	return oldValue.AccessTokenEncrypted, nil
}

// ResetAccessTokenEncrypted resets all changes to the "access_token_encrypted" field.
func (m *CRMCredentialMutation) ResetAccessTokenEncrypted() {
	m.access_token_encrypted = nil
}

// SetRefreshTokenEncrypted sets the "refresh_token_encrypted" field.
func (m *CRMCredentialMutation) SetRefreshTokenEncrypted(b []byte) {
	m.refresh_token_encrypted = &b
}

// RefreshTokenEncrypted returns the value of the "refresh_token_encrypted" field in the mutation.
func (m *CRMCredentialMutation) RefreshTokenEncrypted() (r []byte, exists bool) {
	v := m.refresh_token_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenEncrypted returns the old "refresh_token_encrypted" field's value of the CRMCredential entity.
// If the CRMCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMCredentialMutation) OldRefreshTokenEncrypted(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenEncrypted: %w", err)
	}
	return oldValue.RefreshTokenEncrypted, nil
}

// ClearRefreshTokenEncrypted clears the value of the "refresh_token_encrypted" field.
func (m *CRMCredentialMutation) ClearRefreshTokenEncrypted() {
	m.refresh_token_encrypted = nil
	m.clearedFields[crmcredential.FieldRefreshTokenEncrypted] = struct{}{}
}

// RefreshTokenEncryptedCleared returns if the "refresh_token_encrypted" field was cleared in this mutation.
func (m *CRMCredentialMutation) RefreshTokenEncryptedCleared() bool {
	_, ok := m.clearedFields[crmcredential.FieldRefreshTokenEncrypted]
	return ok
}

// ResetRefreshTokenEncrypted resets all changes to the "refresh_token_encrypted" field.
func (m *CRMCredentialMutation) ResetRefreshTokenEncrypted() {
	m.refresh_token_encrypted = nil
	delete(m.clearedFields, crmcredential.FieldRefreshTokenEncrypted)
}

// SetExpiresAt sets the "expires_at" field.
func (m *CRMCredentialMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *CRMCredentialMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the CRMCredential entity.
// If the CRMCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMCredentialMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *CRMCredentialMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[crmcredential.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *CRMCredentialMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[crmcredential.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *CRMCredentialMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, crmcredential.FieldExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CRMCredentialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CRMCredentialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CRMCredential entity.
// If the CRMCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMCredentialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CRMCredentialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CRMCredentialMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CRMCredentialMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CRMCredential entity.
// If the CRMCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMCredentialMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CRMCredentialMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CRMCredentialMutation builder.
func (m *CRMCredentialMutation) Where(ps ...predicate.CRMCredential) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CRMCredentialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CRMCredentialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CRMCredential, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CRMCredentialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CRMCredentialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CRMCredential).
func (m *CRMCredentialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CRMCredentialMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, crmcredential.FieldTenantID)
	}
	if m.platform != nil {
		fields = append(fields, crmcredential.FieldPlatform)
	}
	if m.access_token_encrypted != nil {
		fields = append(fields, crmcredential.FieldAccessTokenEncrypted)
	}
	if m.refresh_token_encrypted != nil {
		fields = append(fields, crmcredential.FieldRefreshTokenEncrypted)
	}
	if m.expires_at != nil {
		fields = append(fields, crmcredential.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, crmcredential.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, crmcredential.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CRMCredentialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case crmcredential.FieldTenantID:
		return m.TenantID()
	case crmcredential.FieldPlatform:
		return m.Platform()
	case crmcredential.FieldAccessTokenEncrypted:
		return m.AccessTokenEncrypted()
	case crmcredential.FieldRefreshTokenEncrypted:
		return m.RefreshTokenEncrypted()
	case crmcredential.FieldExpiresAt:
		return m.ExpiresAt()
	case crmcredential.FieldCreatedAt:
		return m.CreatedAt()
	case crmcredential.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CRMCredentialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case crmcredential.FieldTenantID:
		return m.OldTenantID(ctx)
	case crmcredential.FieldPlatform:
		return m.OldPlatform(ctx)
	case crmcredential.FieldAccessTokenEncrypted:
		return m.OldAccessTokenEncrypted(ctx)
	case crmcredential.FieldRefreshTokenEncrypted:
		return m.OldRefreshTokenEncrypted(ctx)
	case crmcredential.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case crmcredential.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case crmcredential.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CRMCredential field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CRMCredentialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case crmcredential.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case crmcredential.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case crmcredential.FieldAccessTokenEncrypted:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessTokenEncrypted(v)
		return nil
	case crmcredential.FieldRefreshTokenEncrypted:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenEncrypted(v)
		return nil
	case crmcredential.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case crmcredential.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case crmcredential.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CRMCredential field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CRMCredentialMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CRMCredentialMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CRMCredentialMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CRMCredential numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CRMCredentialMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(crmcredential.FieldRefreshTokenEncrypted) {
		fields = append(fields, crmcredential.FieldRefreshTokenEncrypted)
	}
	if m.FieldCleared(crmcredential.FieldExpiresAt) {
		fields = append(fields, crmcredential.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CRMCredentialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CRMCredentialMutation) ClearField(name string) error {
	switch name {
	case crmcredential.FieldRefreshTokenEncrypted:
		m.ClearRefreshTokenEncrypted()
		return nil
	case crmcredential.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown CRMCredential nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CRMCredentialMutation) ResetField(name string) error {
	switch name {
	case crmcredential.FieldTenantID:
		m.ResetTenantID()
		return nil
	case crmcredential.FieldPlatform:
		m.ResetPlatform()
		return nil
	case crmcredential.FieldAccessTokenEncrypted:
		m.ResetAccessTokenEncrypted()
		return nil
	case crmcredential.FieldRefreshTokenEncrypted:
		m.ResetRefreshTokenEncrypted()
		return nil
	case crmcredential.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case crmcredential.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case crmcredential.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CRMCredential field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CRMCredentialMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CRMCredentialMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CRMCredentialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CRMCredentialMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CRMCredentialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CRMCredentialMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CRMCredentialMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CRMCredential unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CRMCredentialMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CRMCredential edge %s", name)
}

// CRMSyncLogMutation represents an operation that mutates the CRMSyncLog nodes in the graph.
type CRMSyncLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	platform      *string
	direction     *crmsynclog.Direction
	status        *crmsynclog.Status
	processed     *int
	addprocessed  *int
	created       *int
	addcreated    *int
	updated       *int
	addupdated    *int
	failed        *int
	addfailed     *int
	errors        *[]string
	appenderrors  []string
	started_at    *time.Time
	completed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CRMSyncLog, error)
	predicates    []predicate.CRMSyncLog
}

var _ ent.Mutation = (*CRMSyncLogMutation)(nil)

// crmsynclogOption allows management of the mutation configuration using functional options.
type crmsynclogOption func(*CRMSyncLogMutation)

// newCRMSyncLogMutation creates new mutation for the CRMSyncLog entity.
func newCRMSyncLogMutation(c config, op Op, opts ...crmsynclogOption) *CRMSyncLogMutation {
	m := &CRMSyncLogMutation{
		config:        c,
		op:            op,
		typ:           TypeCRMSyncLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCRMSyncLogID sets the ID field of the mutation.
func withCRMSyncLogID(id string) crmsynclogOption {
	return func(m *CRMSyncLogMutation) {
		var (
			err   error
			once  sync.Once
			value *CRMSyncLog
		)
		m.oldValue = func(ctx context.Context) (*CRMSyncLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CRMSyncLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCRMSyncLog sets the old CRMSyncLog of the mutation.
func withCRMSyncLog(node *CRMSyncLog) crmsynclogOption {
	return func(m *CRMSyncLogMutation) {
		m.oldValue = func(context.Context) (*CRMSyncLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CRMSyncLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CRMSyncLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CRMSyncLog entities.
func (m *CRMSyncLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CRMSyncLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CRMSyncLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CRMSyncLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlatform sets the "platform" field.
func (m *CRMSyncLogMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *CRMSyncLogMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the CRMSyncLog entity.
// If the CRMSyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMSyncLogMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *CRMSyncLogMutation) ResetPlatform() {
	m.platform = nil
}

// SetDirection sets the "direction" field.
func (m *CRMSyncLogMutation) SetDirection(c crmsynclog.Direction) {
	m.direction = &c
}

// Direction returns the value of the "direction" field in the mutation.
func (m *CRMSyncLogMutation) Direction() (r crmsynclog.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the CRMSyncLog entity.
// If the CRMSyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMSyncLogMutation) OldDirection(ctx context.Context) (v crmsynclog.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *CRMSyncLogMutation) ResetDirection() {
	m.direction = nil
}

// SetStatus sets the "status" field.
func (m *CRMSyncLogMutation) SetStatus(c crmsynclog.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CRMSyncLogMutation) Status() (r crmsynclog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CRMSyncLog entity.
// If the CRMSyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMSyncLogMutation) OldStatus(ctx context.Context) (v crmsynclog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CRMSyncLogMutation) ResetStatus() {
	m.status = nil
}

// SetProcessed sets the "processed" field.
func (m *CRMSyncLogMutation) SetProcessed(i int) {
	m.processed = &i
	m.addprocessed = nil
}

// Processed returns the value of the "processed" field in the mutation.
func (m *CRMSyncLogMutation) Processed() (r int, exists bool) {
	v := m.processed
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessed returns the old "processed" field's value of the CRMSyncLog entity.
// If the CRMSyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMSyncLogMutation) OldProcessed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessed: %w", err)
	}
	return oldValue.Processed, nil
}

// AddProcessed adds i to the "processed" field.
func (m *CRMSyncLogMutation) AddProcessed(i int) {
	if m.addprocessed != nil {
		*m.addprocessed += i
	} else {
		m.addprocessed = &i
	}
}

// AddedProcessed returns the value that was added to the "processed" field in this mutation.
func (m *CRMSyncLogMutation) AddedProcessed() (r int, exists bool) {
	v := m.addprocessed
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessed resets all changes to the "processed" field.
func (m *CRMSyncLogMutation) ResetProcessed() {
	m.processed = nil
	m.addprocessed = nil
}

// SetCreated sets the "created" field.
func (m *CRMSyncLogMutation) SetCreated(i int) {
	m.created = &i
	m.addcreated = nil
}

// Created returns the value of the "created" field in the mutation.
func (m *CRMSyncLogMutation) Created() (r int, exists bool) {
	v := m.created
	if v == nil {
		return
	}
	return *v, true
}

// OldCreated returns the old "created" field's value of the CRMSyncLog entity.
// If the CRMSyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMSyncLogMutation) OldCreated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreated: %w", err)
	}
	return oldValue.Created, nil
}

// AddCreated adds i to the "created" field.
func (m *CRMSyncLogMutation) AddCreated(i int) {
	if m.addcreated != nil {
		*m.addcreated += i
	} else {
		m.addcreated = &i
	}
}

// AddedCreated returns the value that was added to the "created" field in this mutation.
func (m *CRMSyncLogMutation) AddedCreated() (r int, exists bool) {
	v := m.addcreated
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreated resets all changes to the "created" field.
func (m *CRMSyncLogMutation) ResetCreated() {
	m.created = nil
	m.addcreated = nil
}

// SetUpdated sets the "updated" field.
func (m *CRMSyncLogMutation) SetUpdated(i int) {
	m.updated = &i
	m.addupdated = nil
}

// Updated returns the value of the "updated" field in the mutation.
func (m *CRMSyncLogMutation) Updated() (r int, exists bool) {
	v := m.updated
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdated returns the old "updated" field's value of the CRMSyncLog entity.
// If the CRMSyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMSyncLogMutation) OldUpdated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdated: %w", err)
	}
	return oldValue.Updated, nil
}

// AddUpdated adds i to the "updated" field.
func (m *CRMSyncLogMutation) AddUpdated(i int) {
	if m.addupdated != nil {
		*m.addupdated += i
	} else {
		m.addupdated = &i
	}
}

// AddedUpdated returns the value that was added to the "updated" field in this mutation.
func (m *CRMSyncLogMutation) AddedUpdated() (r int, exists bool) {
	v := m.addupdated
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdated resets all changes to the "updated" field.
func (m *CRMSyncLogMutation) ResetUpdated() {
	m.updated = nil
	m.addupdated = nil
}

// SetFailed sets the "failed" field.
func (m *CRMSyncLogMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *CRMSyncLogMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the CRMSyncLog entity.
// If the CRMSyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMSyncLogMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *CRMSyncLogMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *CRMSyncLogMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *CRMSyncLogMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetErrors sets the "errors" field.
func (m *CRMSyncLogMutation) SetErrors(s []string) {
	m.errors = &s
	m.appenderrors = nil
}

// Errors returns the value of the "errors" field in the mutation.
func (m *CRMSyncLogMutation) Errors() (r []string, exists bool) {
	v := m.errors
	if v == nil {
		return
	}
	return *v, true
}

// OldErrors returns the old "errors" field's value of the CRMSyncLog entity.
// If the CRMSyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMSyncLogMutation) OldErrors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrors: %w", err)
	}
	return oldValue.Errors, nil
}

// AppendErrors adds s to the "errors" field.
func (m *CRMSyncLogMutation) AppendErrors(s []string) {
	m.appenderrors = append(m.appenderrors, s...)
}

// AppendedErrors returns the list of values that were appended to the "errors" field in this mutation.
func (m *CRMSyncLogMutation) AppendedErrors() ([]string, bool) {
	if len(m.appenderrors) == 0 {
		return nil, false
	}
	return m.appenderrors, true
}

// ClearErrors clears the value of the "errors" field.
func (m *CRMSyncLogMutation) ClearErrors() {
	m.errors = nil
	m.appenderrors = nil
	m.clearedFields[crmsynclog.FieldErrors] = struct{}{}
}

// ErrorsCleared returns if the "errors" field was cleared in this mutation.
func (m *CRMSyncLogMutation) ErrorsCleared() bool {
	_, ok := m.clearedFields[crmsynclog.FieldErrors]
	return ok
}

// ResetErrors resets all changes to the "errors" field.
func (m *CRMSyncLogMutation) ResetErrors() {
	m.errors = nil
	m.appenderrors = nil
	delete(m.clearedFields, crmsynclog.FieldErrors)
}

// SetStartedAt sets the "started_at" field.
func (m *CRMSyncLogMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CRMSyncLogMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the CRMSyncLog entity.
// If the CRMSyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMSyncLogMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CRMSyncLogMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *CRMSyncLogMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CRMSyncLogMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the CRMSyncLog entity.
// If the CRMSyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CRMSyncLogMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CRMSyncLogMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[crmsynclog.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CRMSyncLogMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[crmsynclog.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CRMSyncLogMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, crmsynclog.FieldCompletedAt)
}

// Where appends a list predicates to the CRMSyncLogMutation builder.
func (m *CRMSyncLogMutation) Where(ps ...predicate.CRMSyncLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CRMSyncLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CRMSyncLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CRMSyncLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CRMSyncLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CRMSyncLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CRMSyncLog).
func (m *CRMSyncLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CRMSyncLogMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.platform != nil {
		fields = append(fields, crmsynclog.FieldPlatform)
	}
	if m.direction != nil {
		fields = append(fields, crmsynclog.FieldDirection)
	}
	if m.status != nil {
		fields = append(fields, crmsynclog.FieldStatus)
	}
	if m.processed != nil {
		fields = append(fields, crmsynclog.FieldProcessed)
	}
	if m.created != nil {
		fields = append(fields, crmsynclog.FieldCreated)
	}
	if m.updated != nil {
		fields = append(fields, crmsynclog.FieldUpdated)
	}
	if m.failed != nil {
		fields = append(fields, crmsynclog.FieldFailed)
	}
	if m.errors != nil {
		fields = append(fields, crmsynclog.FieldErrors)
	}
	if m.started_at != nil {
		fields = append(fields, crmsynclog.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, crmsynclog.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CRMSyncLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case crmsynclog.FieldPlatform:
		return m.Platform()
	case crmsynclog.FieldDirection:
		return m.Direction()
	case crmsynclog.FieldStatus:
		return m.Status()
	case crmsynclog.FieldProcessed:
		return m.Processed()
	case crmsynclog.FieldCreated:
		return m.Created()
	case crmsynclog.FieldUpdated:
		return m.Updated()
	case crmsynclog.FieldFailed:
		return m.Failed()
	case crmsynclog.FieldErrors:
		return m.Errors()
	case crmsynclog.FieldStartedAt:
		return m.StartedAt()
	case crmsynclog.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CRMSyncLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case crmsynclog.FieldPlatform:
		return m.OldPlatform(ctx)
	case crmsynclog.FieldDirection:
		return m.OldDirection(ctx)
	case crmsynclog.FieldStatus:
		return m.OldStatus(ctx)
	case crmsynclog.FieldProcessed:
		return m.OldProcessed(ctx)
	case crmsynclog.FieldCreated:
		return m.OldCreated(ctx)
	case crmsynclog.FieldUpdated:
		return m.OldUpdated(ctx)
	case crmsynclog.FieldFailed:
		return m.OldFailed(ctx)
	case crmsynclog.FieldErrors:
		return m.OldErrors(ctx)
	case crmsynclog.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case crmsynclog.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CRMSyncLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CRMSyncLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case crmsynclog.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case crmsynclog.FieldDirection:
		v, ok := value.(crmsynclog.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case crmsynclog.FieldStatus:
		v, ok := value.(crmsynclog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case crmsynclog.FieldProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessed(v)
		return nil
	case crmsynclog.FieldCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreated(v)
		return nil
	case crmsynclog.FieldUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdated(v)
		return nil
	case crmsynclog.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case crmsynclog.FieldErrors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrors(v)
		return nil
	case crmsynclog.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case crmsynclog.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CRMSyncLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CRMSyncLogMutation) AddedFields() []string {
	var fields []string
	if m.addprocessed != nil {
		fields = append(fields, crmsynclog.FieldProcessed)
	}
	if m.addcreated != nil {
		fields = append(fields, crmsynclog.FieldCreated)
	}
	if m.addupdated != nil {
		fields = append(fields, crmsynclog.FieldUpdated)
	}
	if m.addfailed != nil {
		fields = append(fields, crmsynclog.FieldFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CRMSyncLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case crmsynclog.FieldProcessed:
		return m.AddedProcessed()
	case crmsynclog.FieldCreated:
		return m.AddedCreated()
	case crmsynclog.FieldUpdated:
		return m.AddedUpdated()
	case crmsynclog.FieldFailed:
		return m.AddedFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CRMSyncLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case crmsynclog.FieldProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessed(v)
		return nil
	case crmsynclog.FieldCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreated(v)
		return nil
	case crmsynclog.FieldUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdated(v)
		return nil
	case crmsynclog.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	}
	return fmt.Errorf("unknown CRMSyncLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CRMSyncLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(crmsynclog.FieldErrors) {
		fields = append(fields, crmsynclog.FieldErrors)
	}
	if m.FieldCleared(crmsynclog.FieldCompletedAt) {
		fields = append(fields, crmsynclog.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CRMSyncLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CRMSyncLogMutation) ClearField(name string) error {
	switch name {
	case crmsynclog.FieldErrors:
		m.ClearErrors()
		return nil
	case crmsynclog.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CRMSyncLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CRMSyncLogMutation) ResetField(name string) error {
	switch name {
	case crmsynclog.FieldPlatform:
		m.ResetPlatform()
		return nil
	case crmsynclog.FieldDirection:
		m.ResetDirection()
		return nil
	case crmsynclog.FieldStatus:
		m.ResetStatus()
		return nil
	case crmsynclog.FieldProcessed:
		m.ResetProcessed()
		return nil
	case crmsynclog.FieldCreated:
		m.ResetCreated()
		return nil
	case crmsynclog.FieldUpdated:
		m.ResetUpdated()
		return nil
	case crmsynclog.FieldFailed:
		m.ResetFailed()
		return nil
	case crmsynclog.FieldErrors:
		m.ResetErrors()
		return nil
	case crmsynclog.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case crmsynclog.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CRMSyncLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CRMSyncLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CRMSyncLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CRMSyncLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CRMSyncLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CRMSyncLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CRMSyncLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CRMSyncLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CRMSyncLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CRMSyncLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CRMSyncLog edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op               Op
	typ              string
	id               *string
	step             *int
	addstep          *int
	node             *string
	state            *[]byte
	suspended        *bool
	suspend_reason   *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	execution        *string
	clearedexecution bool
	done             bool
	oldValue         func(context.Context) (*Checkpoint, error)
	predicates       []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *CheckpointMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *CheckpointMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *CheckpointMutation) ResetExecutionID() {
	m.execution = nil
}

// SetStep sets the "step" field.
func (m *CheckpointMutation) SetStep(i int) {
	m.step = &i
	m.addstep = nil
}

// Step returns the value of the "step" field in the mutation.
func (m *CheckpointMutation) Step() (r int, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// AddStep adds i to the "step" field.
func (m *CheckpointMutation) AddStep(i int) {
	if m.addstep != nil {
		*m.addstep += i
	} else {
		m.addstep = &i
	}
}

// AddedStep returns the value that was added to the "step" field in this mutation.
func (m *CheckpointMutation) AddedStep() (r int, exists bool) {
	v := m.addstep
	if v == nil {
		return
	}
	return *v, true
}

// ResetStep resets all changes to the "step" field.
func (m *CheckpointMutation) ResetStep() {
	m.step = nil
	m.addstep = nil
}

// SetNode sets the "node" field.
func (m *CheckpointMutation) SetNode(s string) {
	m.node = &s
}

// Node returns the value of the "node" field in the mutation.
func (m *CheckpointMutation) Node() (r string, exists bool) {
	v := m.node
	if v == nil {
		return
	}
	return *v, true
}

// OldNode returns the old "node" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldNode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNode: %w", err)
	}
	return oldValue.Node, nil
}

// ResetNode resets all changes to the "node" field.
func (m *CheckpointMutation) ResetNode() {
	m.node = nil
}

// SetState sets the "state" field.
func (m *CheckpointMutation) SetState(b []byte) {
	m.state = &b
}

// State returns the value of the "state" field in the mutation.
func (m *CheckpointMutation) State() (r []byte, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldState(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CheckpointMutation) ResetState() {
	m.state = nil
}

// SetSuspended sets the "suspended" field.
func (m *CheckpointMutation) SetSuspended(b bool) {
	m.suspended = &b
}

// Suspended returns the value of the "suspended" field in the mutation.
func (m *CheckpointMutation) Suspended() (r bool, exists bool) {
	v := m.suspended
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspended returns the old "suspended" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSuspended(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspended is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspended requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspended: %w", err)
	}
	return oldValue.Suspended, nil
}

// ResetSuspended resets all changes to the "suspended" field.
func (m *CheckpointMutation) ResetSuspended() {
	m.suspended = nil
}

// SetSuspendReason sets the "suspend_reason" field.
func (m *CheckpointMutation) SetSuspendReason(s string) {
	m.suspend_reason = &s
}

// SuspendReason returns the value of the "suspend_reason" field in the mutation.
func (m *CheckpointMutation) SuspendReason() (r string, exists bool) {
	v := m.suspend_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspendReason returns the old "suspend_reason" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSuspendReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspendReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspendReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspendReason: %w", err)
	}
	return oldValue.SuspendReason, nil
}

// ClearSuspendReason clears the value of the "suspend_reason" field.
func (m *CheckpointMutation) ClearSuspendReason() {
	m.suspend_reason = nil
	m.clearedFields[checkpoint.FieldSuspendReason] = struct{}{}
}

// SuspendReasonCleared returns if the "suspend_reason" field was cleared in this mutation.
func (m *CheckpointMutation) SuspendReasonCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldSuspendReason]
	return ok
}

// ResetSuspendReason resets all changes to the "suspend_reason" field.
func (m *CheckpointMutation) ResetSuspendReason() {
	m.suspend_reason = nil
	delete(m.clearedFields, checkpoint.FieldSuspendReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearExecution clears the "execution" edge to the AgentExecution entity.
func (m *CheckpointMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[checkpoint.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the AgentExecution entity was cleared.
func (m *CheckpointMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *CheckpointMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.execution != nil {
		fields = append(fields, checkpoint.FieldExecutionID)
	}
	if m.step != nil {
		fields = append(fields, checkpoint.FieldStep)
	}
	if m.node != nil {
		fields = append(fields, checkpoint.FieldNode)
	}
	if m.state != nil {
		fields = append(fields, checkpoint.FieldState)
	}
	if m.suspended != nil {
		fields = append(fields, checkpoint.FieldSuspended)
	}
	if m.suspend_reason != nil {
		fields = append(fields, checkpoint.FieldSuspendReason)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldExecutionID:
		return m.ExecutionID()
	case checkpoint.FieldStep:
		return m.Step()
	case checkpoint.FieldNode:
		return m.Node()
	case checkpoint.FieldState:
		return m.State()
	case checkpoint.FieldSuspended:
		return m.Suspended()
	case checkpoint.FieldSuspendReason:
		return m.SuspendReason()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case checkpoint.FieldStep:
		return m.OldStep(ctx)
	case checkpoint.FieldNode:
		return m.OldNode(ctx)
	case checkpoint.FieldState:
		return m.OldState(ctx)
	case checkpoint.FieldSuspended:
		return m.OldSuspended(ctx)
	case checkpoint.FieldSuspendReason:
		return m.OldSuspendReason(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case checkpoint.FieldStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case checkpoint.FieldNode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNode(v)
		return nil
	case checkpoint.FieldState:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case checkpoint.FieldSuspended:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspended(v)
		return nil
	case checkpoint.FieldSuspendReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspendReason(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addstep != nil {
		fields = append(fields, checkpoint.FieldStep)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldStep:
		return m.AddedStep()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStep(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldSuspendReason) {
		fields = append(fields, checkpoint.FieldSuspendReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldSuspendReason:
		m.ClearSuspendReason()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case checkpoint.FieldStep:
		m.ResetStep()
		return nil
	case checkpoint.FieldNode:
		m.ResetNode()
		return nil
	case checkpoint.FieldState:
		m.ResetState()
		return nil
	case checkpoint.FieldSuspended:
		m.ResetSuspended()
		return nil
	case checkpoint.FieldSuspendReason:
		m.ResetSuspendReason()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, checkpoint.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, checkpoint.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	company_name                *string
	website                     *string
	company_size                *string
	industry                    *string
	contact_name                *string
	email                       *string
	title                       *string
	phone                       *string
	profile_url                 *string
	qualification_score         *int
	addqualification_score      *int
	tier                        *lead.Tier
	qualification_rationale     *string
	qualification_latency_ms    *int
	addqualification_latency_ms *int
	qualified_at                *time.Time
	additional_data             *map[string]interface{}
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*Lead, error)
	predicates                  []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id string) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lead entities.
func (m *LeadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyName sets the "company_name" field.
func (m *LeadMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *LeadMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *LeadMutation) ResetCompanyName() {
	m.company_name = nil
}

// SetWebsite sets the "website" field.
func (m *LeadMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *LeadMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *LeadMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[lead.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *LeadMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[lead.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *LeadMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, lead.FieldWebsite)
}

// SetCompanySize sets the "company_size" field.
func (m *LeadMutation) SetCompanySize(s string) {
	m.company_size = &s
}

// CompanySize returns the value of the "company_size" field in the mutation.
func (m *LeadMutation) CompanySize() (r string, exists bool) {
	v := m.company_size
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanySize returns the old "company_size" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCompanySize(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanySize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanySize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanySize: %w", err)
	}
	return oldValue.CompanySize, nil
}

// ClearCompanySize clears the value of the "company_size" field.
func (m *LeadMutation) ClearCompanySize() {
	m.company_size = nil
	m.clearedFields[lead.FieldCompanySize] = struct{}{}
}

// CompanySizeCleared returns if the "company_size" field was cleared in this mutation.
func (m *LeadMutation) CompanySizeCleared() bool {
	_, ok := m.clearedFields[lead.FieldCompanySize]
	return ok
}

// ResetCompanySize resets all changes to the "company_size" field.
func (m *LeadMutation) ResetCompanySize() {
	m.company_size = nil
	delete(m.clearedFields, lead.FieldCompanySize)
}

// SetIndustry sets the "industry" field.
func (m *LeadMutation) SetIndustry(s string) {
	m.industry = &s
}

// Industry returns the value of the "industry" field in the mutation.
func (m *LeadMutation) Industry() (r string, exists bool) {
	v := m.industry
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustry returns the old "industry" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldIndustry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustry: %w", err)
	}
	return oldValue.Industry, nil
}

// ClearIndustry clears the value of the "industry" field.
func (m *LeadMutation) ClearIndustry() {
	m.industry = nil
	m.clearedFields[lead.FieldIndustry] = struct{}{}
}

// IndustryCleared returns if the "industry" field was cleared in this mutation.
func (m *LeadMutation) IndustryCleared() bool {
	_, ok := m.clearedFields[lead.FieldIndustry]
	return ok
}

// ResetIndustry resets all changes to the "industry" field.
func (m *LeadMutation) ResetIndustry() {
	m.industry = nil
	delete(m.clearedFields, lead.FieldIndustry)
}

// SetContactName sets the "contact_name" field.
func (m *LeadMutation) SetContactName(s string) {
	m.contact_name = &s
}

// ContactName returns the value of the "contact_name" field in the mutation.
func (m *LeadMutation) ContactName() (r string, exists bool) {
	v := m.contact_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContactName returns the old "contact_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldContactName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactName: %w", err)
	}
	return oldValue.ContactName, nil
}

// ClearContactName clears the value of the "contact_name" field.
func (m *LeadMutation) ClearContactName() {
	m.contact_name = nil
	m.clearedFields[lead.FieldContactName] = struct{}{}
}

// ContactNameCleared returns if the "contact_name" field was cleared in this mutation.
func (m *LeadMutation) ContactNameCleared() bool {
	_, ok := m.clearedFields[lead.FieldContactName]
	return ok
}

// ResetContactName resets all changes to the "contact_name" field.
func (m *LeadMutation) ResetContactName() {
	m.contact_name = nil
	delete(m.clearedFields, lead.FieldContactName)
}

// SetEmail sets the "email" field.
func (m *LeadMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *LeadMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *LeadMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[lead.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *LeadMutation) EmailCleared() bool {
	_, ok := m.clearedFields[lead.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *LeadMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, lead.FieldEmail)
}

// SetTitle sets the "title" field.
func (m *LeadMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *LeadMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *LeadMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[lead.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *LeadMutation) TitleCleared() bool {
	_, ok := m.clearedFields[lead.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *LeadMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, lead.FieldTitle)
}

// SetPhone sets the "phone" field.
func (m *LeadMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LeadMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *LeadMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[lead.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *LeadMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[lead.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *LeadMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, lead.FieldPhone)
}

// SetProfileURL sets the "profile_url" field.
func (m *LeadMutation) SetProfileURL(s string) {
	m.profile_url = &s
}

// ProfileURL returns the value of the "profile_url" field in the mutation.
func (m *LeadMutation) ProfileURL() (r string, exists bool) {
	v := m.profile_url
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileURL returns the old "profile_url" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldProfileURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileURL: %w", err)
	}
	return oldValue.ProfileURL, nil
}

// ClearProfileURL clears the value of the "profile_url" field.
func (m *LeadMutation) ClearProfileURL() {
	m.profile_url = nil
	m.clearedFields[lead.FieldProfileURL] = struct{}{}
}

// ProfileURLCleared returns if the "profile_url" field was cleared in this mutation.
func (m *LeadMutation) ProfileURLCleared() bool {
	_, ok := m.clearedFields[lead.FieldProfileURL]
	return ok
}

// ResetProfileURL resets all changes to the "profile_url" field.
func (m *LeadMutation) ResetProfileURL() {
	m.profile_url = nil
	delete(m.clearedFields, lead.FieldProfileURL)
}

// SetQualificationScore sets the "qualification_score" field.
func (m *LeadMutation) SetQualificationScore(i int) {
	m.qualification_score = &i
	m.addqualification_score = nil
}

// QualificationScore returns the value of the "qualification_score" field in the mutation.
func (m *LeadMutation) QualificationScore() (r int, exists bool) {
	v := m.qualification_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualificationScore returns the old "qualification_score" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldQualificationScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualificationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualificationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualificationScore: %w", err)
	}
	return oldValue.QualificationScore, nil
}

// AddQualificationScore adds i to the "qualification_score" field.
func (m *LeadMutation) AddQualificationScore(i int) {
	if m.addqualification_score != nil {
		*m.addqualification_score += i
	} else {
		m.addqualification_score = &i
	}
}

// AddedQualificationScore returns the value that was added to the "qualification_score" field in this mutation.
func (m *LeadMutation) AddedQualificationScore() (r int, exists bool) {
	v := m.addqualification_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQualificationScore clears the value of the "qualification_score" field.
func (m *LeadMutation) ClearQualificationScore() {
	m.qualification_score = nil
	m.addqualification_score = nil
	m.clearedFields[lead.FieldQualificationScore] = struct{}{}
}

// QualificationScoreCleared returns if the "qualification_score" field was cleared in this mutation.
func (m *LeadMutation) QualificationScoreCleared() bool {
	_, ok := m.clearedFields[lead.FieldQualificationScore]
	return ok
}

// ResetQualificationScore resets all changes to the "qualification_score" field.
func (m *LeadMutation) ResetQualificationScore() {
	m.qualification_score = nil
	m.addqualification_score = nil
	delete(m.clearedFields, lead.FieldQualificationScore)
}

// SetTier sets the "tier" field.
func (m *LeadMutation) SetTier(l lead.Tier) {
	m.tier = &l
}

// Tier returns the value of the "tier" field in the mutation.
func (m *LeadMutation) Tier() (r lead.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldTier(ctx context.Context) (v lead.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ClearTier clears the value of the "tier" field.
func (m *LeadMutation) ClearTier() {
	m.tier = nil
	m.clearedFields[lead.FieldTier] = struct{}{}
}

// TierCleared returns if the "tier" field was cleared in this mutation.
func (m *LeadMutation) TierCleared() bool {
	_, ok := m.clearedFields[lead.FieldTier]
	return ok
}

// ResetTier resets all changes to the "tier" field.
func (m *LeadMutation) ResetTier() {
	m.tier = nil
	delete(m.clearedFields, lead.FieldTier)
}

// SetQualificationRationale sets the "qualification_rationale" field.
func (m *LeadMutation) SetQualificationRationale(s string) {
	m.qualification_rationale = &s
}

// QualificationRationale returns the value of the "qualification_rationale" field in the mutation.
func (m *LeadMutation) QualificationRationale() (r string, exists bool) {
	v := m.qualification_rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldQualificationRationale returns the old "qualification_rationale" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldQualificationRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualificationRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualificationRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualificationRationale: %w", err)
	}
	return oldValue.QualificationRationale, nil
}

// ClearQualificationRationale clears the value of the "qualification_rationale" field.
func (m *LeadMutation) ClearQualificationRationale() {
	m.qualification_rationale = nil
	m.clearedFields[lead.FieldQualificationRationale] = struct{}{}
}

// QualificationRationaleCleared returns if the "qualification_rationale" field was cleared in this mutation.
func (m *LeadMutation) QualificationRationaleCleared() bool {
	_, ok := m.clearedFields[lead.FieldQualificationRationale]
	return ok
}

// ResetQualificationRationale resets all changes to the "qualification_rationale" field.
func (m *LeadMutation) ResetQualificationRationale() {
	m.qualification_rationale = nil
	delete(m.clearedFields, lead.FieldQualificationRationale)
}

// SetQualificationLatencyMs sets the "qualification_latency_ms" field.
func (m *LeadMutation) SetQualificationLatencyMs(i int) {
	m.qualification_latency_ms = &i
	m.addqualification_latency_ms = nil
}

// QualificationLatencyMs returns the value of the "qualification_latency_ms" field in the mutation.
func (m *LeadMutation) QualificationLatencyMs() (r int, exists bool) {
	v := m.qualification_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldQualificationLatencyMs returns the old "qualification_latency_ms" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldQualificationLatencyMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualificationLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualificationLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualificationLatencyMs: %w", err)
	}
	return oldValue.QualificationLatencyMs, nil
}

// AddQualificationLatencyMs adds i to the "qualification_latency_ms" field.
func (m *LeadMutation) AddQualificationLatencyMs(i int) {
	if m.addqualification_latency_ms != nil {
		*m.addqualification_latency_ms += i
	} else {
		m.addqualification_latency_ms = &i
	}
}

// AddedQualificationLatencyMs returns the value that was added to the "qualification_latency_ms" field in this mutation.
func (m *LeadMutation) AddedQualificationLatencyMs() (r int, exists bool) {
	v := m.addqualification_latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearQualificationLatencyMs clears the value of the "qualification_latency_ms" field.
func (m *LeadMutation) ClearQualificationLatencyMs() {
	m.qualification_latency_ms = nil
	m.addqualification_latency_ms = nil
	m.clearedFields[lead.FieldQualificationLatencyMs] = struct{}{}
}

// QualificationLatencyMsCleared returns if the "qualification_latency_ms" field was cleared in this mutation.
func (m *LeadMutation) QualificationLatencyMsCleared() bool {
	_, ok := m.clearedFields[lead.FieldQualificationLatencyMs]
	return ok
}

// ResetQualificationLatencyMs resets all changes to the "qualification_latency_ms" field.
func (m *LeadMutation) ResetQualificationLatencyMs() {
	m.qualification_latency_ms = nil
	m.addqualification_latency_ms = nil
	delete(m.clearedFields, lead.FieldQualificationLatencyMs)
}

// SetQualifiedAt sets the "qualified_at" field.
func (m *LeadMutation) SetQualifiedAt(t time.Time) {
	m.qualified_at = &t
}

// QualifiedAt returns the value of the "qualified_at" field in the mutation.
func (m *LeadMutation) QualifiedAt() (r time.Time, exists bool) {
	v := m.qualified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldQualifiedAt returns the old "qualified_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldQualifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualifiedAt: %w", err)
	}
	return oldValue.QualifiedAt, nil
}

// ClearQualifiedAt clears the value of the "qualified_at" field.
func (m *LeadMutation) ClearQualifiedAt() {
	m.qualified_at = nil
	m.clearedFields[lead.FieldQualifiedAt] = struct{}{}
}

// QualifiedAtCleared returns if the "qualified_at" field was cleared in this mutation.
func (m *LeadMutation) QualifiedAtCleared() bool {
	_, ok := m.clearedFields[lead.FieldQualifiedAt]
	return ok
}

// ResetQualifiedAt resets all changes to the "qualified_at" field.
func (m *LeadMutation) ResetQualifiedAt() {
	m.qualified_at = nil
	delete(m.clearedFields, lead.FieldQualifiedAt)
}

// SetAdditionalData sets the "additional_data" field.
func (m *LeadMutation) SetAdditionalData(value map[string]interface{}) {
	m.additional_data = &value
}

// AdditionalData returns the value of the "additional_data" field in the mutation.
func (m *LeadMutation) AdditionalData() (r map[string]interface{}, exists bool) {
	v := m.additional_data
	if v == nil {
		return
	}
	return *v, true
}

// OldAdditionalData returns the old "additional_data" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAdditionalData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdditionalData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdditionalData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdditionalData: %w", err)
	}
	return oldValue.AdditionalData, nil
}

// ClearAdditionalData clears the value of the "additional_data" field.
func (m *LeadMutation) ClearAdditionalData() {
	m.additional_data = nil
	m.clearedFields[lead.FieldAdditionalData] = struct{}{}
}

// AdditionalDataCleared returns if the "additional_data" field was cleared in this mutation.
func (m *LeadMutation) AdditionalDataCleared() bool {
	_, ok := m.clearedFields[lead.FieldAdditionalData]
	return ok
}

// ResetAdditionalData resets all changes to the "additional_data" field.
func (m *LeadMutation) ResetAdditionalData() {
	m.additional_data = nil
	delete(m.clearedFields, lead.FieldAdditionalData)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.company_name != nil {
		fields = append(fields, lead.FieldCompanyName)
	}
	if m.website != nil {
		fields = append(fields, lead.FieldWebsite)
	}
	if m.company_size != nil {
		fields = append(fields, lead.FieldCompanySize)
	}
	if m.industry != nil {
		fields = append(fields, lead.FieldIndustry)
	}
	if m.contact_name != nil {
		fields = append(fields, lead.FieldContactName)
	}
	if m.email != nil {
		fields = append(fields, lead.FieldEmail)
	}
	if m.title != nil {
		fields = append(fields, lead.FieldTitle)
	}
	if m.phone != nil {
		fields = append(fields, lead.FieldPhone)
	}
	if m.profile_url != nil {
		fields = append(fields, lead.FieldProfileURL)
	}
	if m.qualification_score != nil {
		fields = append(fields, lead.FieldQualificationScore)
	}
	if m.tier != nil {
		fields = append(fields, lead.FieldTier)
	}
	if m.qualification_rationale != nil {
		fields = append(fields, lead.FieldQualificationRationale)
	}
	if m.qualification_latency_ms != nil {
		fields = append(fields, lead.FieldQualificationLatencyMs)
	}
	if m.qualified_at != nil {
		fields = append(fields, lead.FieldQualifiedAt)
	}
	if m.additional_data != nil {
		fields = append(fields, lead.FieldAdditionalData)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lead.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldCompanyName:
		return m.CompanyName()
	case lead.FieldWebsite:
		return m.Website()
	case lead.FieldCompanySize:
		return m.CompanySize()
	case lead.FieldIndustry:
		return m.Industry()
	case lead.FieldContactName:
		return m.ContactName()
	case lead.FieldEmail:
		return m.Email()
	case lead.FieldTitle:
		return m.Title()
	case lead.FieldPhone:
		return m.Phone()
	case lead.FieldProfileURL:
		return m.ProfileURL()
	case lead.FieldQualificationScore:
		return m.QualificationScore()
	case lead.FieldTier:
		return m.Tier()
	case lead.FieldQualificationRationale:
		return m.QualificationRationale()
	case lead.FieldQualificationLatencyMs:
		return m.QualificationLatencyMs()
	case lead.FieldQualifiedAt:
		return m.QualifiedAt()
	case lead.FieldAdditionalData:
		return m.AdditionalData()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case lead.FieldWebsite:
		return m.OldWebsite(ctx)
	case lead.FieldCompanySize:
		return m.OldCompanySize(ctx)
	case lead.FieldIndustry:
		return m.OldIndustry(ctx)
	case lead.FieldContactName:
		return m.OldContactName(ctx)
	case lead.FieldEmail:
		return m.OldEmail(ctx)
	case lead.FieldTitle:
		return m.OldTitle(ctx)
	case lead.FieldPhone:
		return m.OldPhone(ctx)
	case lead.FieldProfileURL:
		return m.OldProfileURL(ctx)
	case lead.FieldQualificationScore:
		return m.OldQualificationScore(ctx)
	case lead.FieldTier:
		return m.OldTier(ctx)
	case lead.FieldQualificationRationale:
		return m.OldQualificationRationale(ctx)
	case lead.FieldQualificationLatencyMs:
		return m.OldQualificationLatencyMs(ctx)
	case lead.FieldQualifiedAt:
		return m.OldQualifiedAt(ctx)
	case lead.FieldAdditionalData:
		return m.OldAdditionalData(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case lead.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case lead.FieldCompanySize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanySize(v)
		return nil
	case lead.FieldIndustry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustry(v)
		return nil
	case lead.FieldContactName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactName(v)
		return nil
	case lead.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case lead.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case lead.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case lead.FieldProfileURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileURL(v)
		return nil
	case lead.FieldQualificationScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualificationScore(v)
		return nil
	case lead.FieldTier:
		v, ok := value.(lead.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case lead.FieldQualificationRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualificationRationale(v)
		return nil
	case lead.FieldQualificationLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualificationLatencyMs(v)
		return nil
	case lead.FieldQualifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualifiedAt(v)
		return nil
	case lead.FieldAdditionalData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdditionalData(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	var fields []string
	if m.addqualification_score != nil {
		fields = append(fields, lead.FieldQualificationScore)
	}
	if m.addqualification_latency_ms != nil {
		fields = append(fields, lead.FieldQualificationLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldQualificationScore:
		return m.AddedQualificationScore()
	case lead.FieldQualificationLatencyMs:
		return m.AddedQualificationLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lead.FieldQualificationScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualificationScore(v)
		return nil
	case lead.FieldQualificationLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualificationLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldWebsite) {
		fields = append(fields, lead.FieldWebsite)
	}
	if m.FieldCleared(lead.FieldCompanySize) {
		fields = append(fields, lead.FieldCompanySize)
	}
	if m.FieldCleared(lead.FieldIndustry) {
		fields = append(fields, lead.FieldIndustry)
	}
	if m.FieldCleared(lead.FieldContactName) {
		fields = append(fields, lead.FieldContactName)
	}
	if m.FieldCleared(lead.FieldEmail) {
		fields = append(fields, lead.FieldEmail)
	}
	if m.FieldCleared(lead.FieldTitle) {
		fields = append(fields, lead.FieldTitle)
	}
	if m.FieldCleared(lead.FieldPhone) {
		fields = append(fields, lead.FieldPhone)
	}
	if m.FieldCleared(lead.FieldProfileURL) {
		fields = append(fields, lead.FieldProfileURL)
	}
	if m.FieldCleared(lead.FieldQualificationScore) {
		fields = append(fields, lead.FieldQualificationScore)
	}
	if m.FieldCleared(lead.FieldTier) {
		fields = append(fields, lead.FieldTier)
	}
	if m.FieldCleared(lead.FieldQualificationRationale) {
		fields = append(fields, lead.FieldQualificationRationale)
	}
	if m.FieldCleared(lead.FieldQualificationLatencyMs) {
		fields = append(fields, lead.FieldQualificationLatencyMs)
	}
	if m.FieldCleared(lead.FieldQualifiedAt) {
		fields = append(fields, lead.FieldQualifiedAt)
	}
	if m.FieldCleared(lead.FieldAdditionalData) {
		fields = append(fields, lead.FieldAdditionalData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldWebsite:
		m.ClearWebsite()
		return nil
	case lead.FieldCompanySize:
		m.ClearCompanySize()
		return nil
	case lead.FieldIndustry:
		m.ClearIndustry()
		return nil
	case lead.FieldContactName:
		m.ClearContactName()
		return nil
	case lead.FieldEmail:
		m.ClearEmail()
		return nil
	case lead.FieldTitle:
		m.ClearTitle()
		return nil
	case lead.FieldPhone:
		m.ClearPhone()
		return nil
	case lead.FieldProfileURL:
		m.ClearProfileURL()
		return nil
	case lead.FieldQualificationScore:
		m.ClearQualificationScore()
		return nil
	case lead.FieldTier:
		m.ClearTier()
		return nil
	case lead.FieldQualificationRationale:
		m.ClearQualificationRationale()
		return nil
	case lead.FieldQualificationLatencyMs:
		m.ClearQualificationLatencyMs()
		return nil
	case lead.FieldQualifiedAt:
		m.ClearQualifiedAt()
		return nil
	case lead.FieldAdditionalData:
		m.ClearAdditionalData()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case lead.FieldWebsite:
		m.ResetWebsite()
		return nil
	case lead.FieldCompanySize:
		m.ResetCompanySize()
		return nil
	case lead.FieldIndustry:
		m.ResetIndustry()
		return nil
	case lead.FieldContactName:
		m.ResetContactName()
		return nil
	case lead.FieldEmail:
		m.ResetEmail()
		return nil
	case lead.FieldTitle:
		m.ResetTitle()
		return nil
	case lead.FieldPhone:
		m.ResetPhone()
		return nil
	case lead.FieldProfileURL:
		m.ResetProfileURL()
		return nil
	case lead.FieldQualificationScore:
		m.ResetQualificationScore()
		return nil
	case lead.FieldTier:
		m.ResetTier()
		return nil
	case lead.FieldQualificationRationale:
		m.ResetQualificationRationale()
		return nil
	case lead.FieldQualificationLatencyMs:
		m.ResetQualificationLatencyMs()
		return nil
	case lead.FieldQualifiedAt:
		m.ResetQualifiedAt()
		return nil
	case lead.FieldAdditionalData:
		m.ResetAdditionalData()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Lead edge %s", name)
}
