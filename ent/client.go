// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ScientiaCapital/sales-agent/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ScientiaCapital/sales-agent/ent/agentexecution"
	"github.com/ScientiaCapital/sales-agent/ent/apicalllog"
	"github.com/ScientiaCapital/sales-agent/ent/checkpoint"
	"github.com/ScientiaCapital/sales-agent/ent/crmcontact"
	"github.com/ScientiaCapital/sales-agent/ent/crmcredential"
	"github.com/ScientiaCapital/sales-agent/ent/crmsynclog"
	"github.com/ScientiaCapital/sales-agent/ent/lead"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentExecution is the client for interacting with the AgentExecution builders.
	AgentExecution *AgentExecutionClient
	// ApiCallLog is the client for interacting with the ApiCallLog builders.
	ApiCallLog *ApiCallLogClient
	// CRMContact is the client for interacting with the CRMContact builders.
	CRMContact *CRMContactClient
	// CRMCredential is the client for interacting with the CRMCredential builders.
	CRMCredential *CRMCredentialClient
	// CRMSyncLog is the client for interacting with the CRMSyncLog builders.
	CRMSyncLog *CRMSyncLogClient
	// Checkpoint is the client for interacting with the Checkpoint builders.
	Checkpoint *CheckpointClient
	// Lead is the client for interacting with the Lead builders.
	Lead *LeadClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentExecution = NewAgentExecutionClient(c.config)
	c.ApiCallLog = NewApiCallLogClient(c.config)
	c.CRMContact = NewCRMContactClient(c.config)
	c.CRMCredential = NewCRMCredentialClient(c.config)
	c.CRMSyncLog = NewCRMSyncLogClient(c.config)
	c.Checkpoint = NewCheckpointClient(c.config)
	c.Lead = NewLeadClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AgentExecution: NewAgentExecutionClient(cfg),
		ApiCallLog:     NewApiCallLogClient(cfg),
		CRMContact:     NewCRMContactClient(cfg),
		CRMCredential:  NewCRMCredentialClient(cfg),
		CRMSyncLog:     NewCRMSyncLogClient(cfg),
		Checkpoint:     NewCheckpointClient(cfg),
		Lead:           NewLeadClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AgentExecution: NewAgentExecutionClient(cfg),
		ApiCallLog:     NewApiCallLogClient(cfg),
		CRMContact:     NewCRMContactClient(cfg),
		CRMCredential:  NewCRMCredentialClient(cfg),
		CRMSyncLog:     NewCRMSyncLogClient(cfg),
		Checkpoint:     NewCheckpointClient(cfg),
		Lead:           NewLeadClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentExecution.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentExecution, c.ApiCallLog, c.CRMContact, c.CRMCredential, c.CRMSyncLog,
		c.Checkpoint, c.Lead,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentExecution, c.ApiCallLog, c.CRMContact, c.CRMCredential, c.CRMSyncLog,
		c.Checkpoint, c.Lead,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentExecutionMutation:
		return c.AgentExecution.mutate(ctx, m)
	case *ApiCallLogMutation:
		return c.ApiCallLog.mutate(ctx, m)
	case *CRMContactMutation:
		return c.CRMContact.mutate(ctx, m)
	case *CRMCredentialMutation:
		return c.CRMCredential.mutate(ctx, m)
	case *CRMSyncLogMutation:
		return c.CRMSyncLog.mutate(ctx, m)
	case *CheckpointMutation:
		return c.Checkpoint.mutate(ctx, m)
	case *LeadMutation:
		return c.Lead.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentExecutionClient is a client for the AgentExecution schema.
type AgentExecutionClient struct {
	config
}

// NewAgentExecutionClient returns a client for the AgentExecution from the given config.
func NewAgentExecutionClient(c config) *AgentExecutionClient {
	return &AgentExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentexecution.Hooks(f(g(h())))`.
func (c *AgentExecutionClient) Use(hooks ...Hook) {
	c.hooks.AgentExecution = append(c.hooks.AgentExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentexecution.Intercept(f(g(h())))`.
func (c *AgentExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentExecution = append(c.inters.AgentExecution, interceptors...)
}

// Create returns a builder for creating a AgentExecution entity.
func (c *AgentExecutionClient) Create() *AgentExecutionCreate {
	mutation := newAgentExecutionMutation(c.config, OpCreate)
	return &AgentExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentExecution entities.
func (c *AgentExecutionClient) CreateBulk(builders ...*AgentExecutionCreate) *AgentExecutionCreateBulk {
	return &AgentExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentExecutionClient) MapCreateBulk(slice any, setFunc func(*AgentExecutionCreate, int)) *AgentExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentExecutionCreateBulk{err: fmt.Errorf("calling to AgentExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentExecution.
func (c *AgentExecutionClient) Update() *AgentExecutionUpdate {
	mutation := newAgentExecutionMutation(c.config, OpUpdate)
	return &AgentExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentExecutionClient) UpdateOne(_m *AgentExecution) *AgentExecutionUpdateOne {
	mutation := newAgentExecutionMutation(c.config, OpUpdateOne, withAgentExecution(_m))
	return &AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentExecutionClient) UpdateOneID(id string) *AgentExecutionUpdateOne {
	mutation := newAgentExecutionMutation(c.config, OpUpdateOne, withAgentExecutionID(id))
	return &AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentExecution.
func (c *AgentExecutionClient) Delete() *AgentExecutionDelete {
	mutation := newAgentExecutionMutation(c.config, OpDelete)
	return &AgentExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentExecutionClient) DeleteOne(_m *AgentExecution) *AgentExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentExecutionClient) DeleteOneID(id string) *AgentExecutionDeleteOne {
	builder := c.Delete().Where(agentexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentExecutionDeleteOne{builder}
}

// Query returns a query builder for AgentExecution.
func (c *AgentExecutionClient) Query() *AgentExecutionQuery {
	return &AgentExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentExecution entity by its id.
func (c *AgentExecutionClient) Get(ctx context.Context, id string) (*AgentExecution, error) {
	return c.Query().Where(agentexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentExecutionClient) GetX(ctx context.Context, id string) *AgentExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCheckpoints queries the checkpoints edge of a AgentExecution.
func (c *AgentExecutionClient) QueryCheckpoints(_m *AgentExecution) *CheckpointQuery {
	query := (&CheckpointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentexecution.Table, agentexecution.FieldID, id),
			sqlgraph.To(checkpoint.Table, checkpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentexecution.CheckpointsTable, agentexecution.CheckpointsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentExecutionClient) Hooks() []Hook {
	return c.hooks.AgentExecution
}

// Interceptors returns the client interceptors.
func (c *AgentExecutionClient) Interceptors() []Interceptor {
	return c.inters.AgentExecution
}

func (c *AgentExecutionClient) mutate(ctx context.Context, m *AgentExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentExecution mutation op: %q", m.Op())
	}
}

// ApiCallLogClient is a client for the ApiCallLog schema.
type ApiCallLogClient struct {
	config
}

// NewApiCallLogClient returns a client for the ApiCallLog from the given config.
func NewApiCallLogClient(c config) *ApiCallLogClient {
	return &ApiCallLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apicalllog.Hooks(f(g(h())))`.
func (c *ApiCallLogClient) Use(hooks ...Hook) {
	c.hooks.ApiCallLog = append(c.hooks.ApiCallLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apicalllog.Intercept(f(g(h())))`.
func (c *ApiCallLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApiCallLog = append(c.inters.ApiCallLog, interceptors...)
}

// Create returns a builder for creating a ApiCallLog entity.
func (c *ApiCallLogClient) Create() *ApiCallLogCreate {
	mutation := newApiCallLogMutation(c.config, OpCreate)
	return &ApiCallLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApiCallLog entities.
func (c *ApiCallLogClient) CreateBulk(builders ...*ApiCallLogCreate) *ApiCallLogCreateBulk {
	return &ApiCallLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApiCallLogClient) MapCreateBulk(slice any, setFunc func(*ApiCallLogCreate, int)) *ApiCallLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApiCallLogCreateBulk{err: fmt.Errorf("calling to ApiCallLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApiCallLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApiCallLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApiCallLog.
func (c *ApiCallLogClient) Update() *ApiCallLogUpdate {
	mutation := newApiCallLogMutation(c.config, OpUpdate)
	return &ApiCallLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApiCallLogClient) UpdateOne(_m *ApiCallLog) *ApiCallLogUpdateOne {
	mutation := newApiCallLogMutation(c.config, OpUpdateOne, withApiCallLog(_m))
	return &ApiCallLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApiCallLogClient) UpdateOneID(id string) *ApiCallLogUpdateOne {
	mutation := newApiCallLogMutation(c.config, OpUpdateOne, withApiCallLogID(id))
	return &ApiCallLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApiCallLog.
func (c *ApiCallLogClient) Delete() *ApiCallLogDelete {
	mutation := newApiCallLogMutation(c.config, OpDelete)
	return &ApiCallLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApiCallLogClient) DeleteOne(_m *ApiCallLog) *ApiCallLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApiCallLogClient) DeleteOneID(id string) *ApiCallLogDeleteOne {
	builder := c.Delete().Where(apicalllog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApiCallLogDeleteOne{builder}
}

// Query returns a query builder for ApiCallLog.
func (c *ApiCallLogClient) Query() *ApiCallLogQuery {
	return &ApiCallLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApiCallLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ApiCallLog entity by its id.
func (c *ApiCallLogClient) Get(ctx context.Context, id string) (*ApiCallLog, error) {
	return c.Query().Where(apicalllog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApiCallLogClient) GetX(ctx context.Context, id string) *ApiCallLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApiCallLogClient) Hooks() []Hook {
	return c.hooks.ApiCallLog
}

// Interceptors returns the client interceptors.
func (c *ApiCallLogClient) Interceptors() []Interceptor {
	return c.inters.ApiCallLog
}

func (c *ApiCallLogClient) mutate(ctx context.Context, m *ApiCallLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApiCallLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApiCallLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApiCallLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApiCallLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApiCallLog mutation op: %q", m.Op())
	}
}

// CRMContactClient is a client for the CRMContact schema.
type CRMContactClient struct {
	config
}

// NewCRMContactClient returns a client for the CRMContact from the given config.
func NewCRMContactClient(c config) *CRMContactClient {
	return &CRMContactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `crmcontact.Hooks(f(g(h())))`.
func (c *CRMContactClient) Use(hooks ...Hook) {
	c.hooks.CRMContact = append(c.hooks.CRMContact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `crmcontact.Intercept(f(g(h())))`.
func (c *CRMContactClient) Intercept(interceptors ...Interceptor) {
	c.inters.CRMContact = append(c.inters.CRMContact, interceptors...)
}

// Create returns a builder for creating a CRMContact entity.
func (c *CRMContactClient) Create() *CRMContactCreate {
	mutation := newCRMContactMutation(c.config, OpCreate)
	return &CRMContactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CRMContact entities.
func (c *CRMContactClient) CreateBulk(builders ...*CRMContactCreate) *CRMContactCreateBulk {
	return &CRMContactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CRMContactClient) MapCreateBulk(slice any, setFunc func(*CRMContactCreate, int)) *CRMContactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CRMContactCreateBulk{err: fmt.Errorf("calling to CRMContactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CRMContactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CRMContactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CRMContact.
func (c *CRMContactClient) Update() *CRMContactUpdate {
	mutation := newCRMContactMutation(c.config, OpUpdate)
	return &CRMContactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CRMContactClient) UpdateOne(_m *CRMContact) *CRMContactUpdateOne {
	mutation := newCRMContactMutation(c.config, OpUpdateOne, withCRMContact(_m))
	return &CRMContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CRMContactClient) UpdateOneID(id string) *CRMContactUpdateOne {
	mutation := newCRMContactMutation(c.config, OpUpdateOne, withCRMContactID(id))
	return &CRMContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CRMContact.
func (c *CRMContactClient) Delete() *CRMContactDelete {
	mutation := newCRMContactMutation(c.config, OpDelete)
	return &CRMContactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CRMContactClient) DeleteOne(_m *CRMContact) *CRMContactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CRMContactClient) DeleteOneID(id string) *CRMContactDeleteOne {
	builder := c.Delete().Where(crmcontact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CRMContactDeleteOne{builder}
}

// Query returns a query builder for CRMContact.
func (c *CRMContactClient) Query() *CRMContactQuery {
	return &CRMContactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCRMContact},
		inters: c.Interceptors(),
	}
}

// Get returns a CRMContact entity by its id.
func (c *CRMContactClient) Get(ctx context.Context, id string) (*CRMContact, error) {
	return c.Query().Where(crmcontact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CRMContactClient) GetX(ctx context.Context, id string) *CRMContact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CRMContactClient) Hooks() []Hook {
	return c.hooks.CRMContact
}

// Interceptors returns the client interceptors.
func (c *CRMContactClient) Interceptors() []Interceptor {
	return c.inters.CRMContact
}

func (c *CRMContactClient) mutate(ctx context.Context, m *CRMContactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CRMContactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CRMContactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CRMContactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CRMContactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CRMContact mutation op: %q", m.Op())
	}
}

// CRMCredentialClient is a client for the CRMCredential schema.
type CRMCredentialClient struct {
	config
}

// NewCRMCredentialClient returns a client for the CRMCredential from the given config.
func NewCRMCredentialClient(c config) *CRMCredentialClient {
	return &CRMCredentialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `crmcredential.Hooks(f(g(h())))`.
func (c *CRMCredentialClient) Use(hooks ...Hook) {
	c.hooks.CRMCredential = append(c.hooks.CRMCredential, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `crmcredential.Intercept(f(g(h())))`.
func (c *CRMCredentialClient) Intercept(interceptors ...Interceptor) {
	c.inters.CRMCredential = append(c.inters.CRMCredential, interceptors...)
}

// Create returns a builder for creating a CRMCredential entity.
func (c *CRMCredentialClient) Create() *CRMCredentialCreate {
	mutation := newCRMCredentialMutation(c.config, OpCreate)
	return &CRMCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CRMCredential entities.
func (c *CRMCredentialClient) CreateBulk(builders ...*CRMCredentialCreate) *CRMCredentialCreateBulk {
	return &CRMCredentialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CRMCredentialClient) MapCreateBulk(slice any, setFunc func(*CRMCredentialCreate, int)) *CRMCredentialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CRMCredentialCreateBulk{err: fmt.Errorf("calling to CRMCredentialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CRMCredentialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CRMCredentialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CRMCredential.
func (c *CRMCredentialClient) Update() *CRMCredentialUpdate {
	mutation := newCRMCredentialMutation(c.config, OpUpdate)
	return &CRMCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CRMCredentialClient) UpdateOne(_m *CRMCredential) *CRMCredentialUpdateOne {
	mutation := newCRMCredentialMutation(c.config, OpUpdateOne, withCRMCredential(_m))
	return &CRMCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CRMCredentialClient) UpdateOneID(id string) *CRMCredentialUpdateOne {
	mutation := newCRMCredentialMutation(c.config, OpUpdateOne, withCRMCredentialID(id))
	return &CRMCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CRMCredential.
func (c *CRMCredentialClient) Delete() *CRMCredentialDelete {
	mutation := newCRMCredentialMutation(c.config, OpDelete)
	return &CRMCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CRMCredentialClient) DeleteOne(_m *CRMCredential) *CRMCredentialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CRMCredentialClient) DeleteOneID(id string) *CRMCredentialDeleteOne {
	builder := c.Delete().Where(crmcredential.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CRMCredentialDeleteOne{builder}
}

// Query returns a query builder for CRMCredential.
func (c *CRMCredentialClient) Query() *CRMCredentialQuery {
	return &CRMCredentialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCRMCredential},
		inters: c.Interceptors(),
	}
}

// Get returns a CRMCredential entity by its id.
func (c *CRMCredentialClient) Get(ctx context.Context, id string) (*CRMCredential, error) {
	return c.Query().Where(crmcredential.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CRMCredentialClient) GetX(ctx context.Context, id string) *CRMCredential {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CRMCredentialClient) Hooks() []Hook {
	return c.hooks.CRMCredential
}

// Interceptors returns the client interceptors.
func (c *CRMCredentialClient) Interceptors() []Interceptor {
	return c.inters.CRMCredential
}

func (c *CRMCredentialClient) mutate(ctx context.Context, m *CRMCredentialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CRMCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CRMCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CRMCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CRMCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CRMCredential mutation op: %q", m.Op())
	}
}

// CRMSyncLogClient is a client for the CRMSyncLog schema.
type CRMSyncLogClient struct {
	config
}

// NewCRMSyncLogClient returns a client for the CRMSyncLog from the given config.
func NewCRMSyncLogClient(c config) *CRMSyncLogClient {
	return &CRMSyncLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `crmsynclog.Hooks(f(g(h())))`.
func (c *CRMSyncLogClient) Use(hooks ...Hook) {
	c.hooks.CRMSyncLog = append(c.hooks.CRMSyncLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `crmsynclog.Intercept(f(g(h())))`.
func (c *CRMSyncLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.CRMSyncLog = append(c.inters.CRMSyncLog, interceptors...)
}

// Create returns a builder for creating a CRMSyncLog entity.
func (c *CRMSyncLogClient) Create() *CRMSyncLogCreate {
	mutation := newCRMSyncLogMutation(c.config, OpCreate)
	return &CRMSyncLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CRMSyncLog entities.
func (c *CRMSyncLogClient) CreateBulk(builders ...*CRMSyncLogCreate) *CRMSyncLogCreateBulk {
	return &CRMSyncLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CRMSyncLogClient) MapCreateBulk(slice any, setFunc func(*CRMSyncLogCreate, int)) *CRMSyncLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CRMSyncLogCreateBulk{err: fmt.Errorf("calling to CRMSyncLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CRMSyncLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CRMSyncLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CRMSyncLog.
func (c *CRMSyncLogClient) Update() *CRMSyncLogUpdate {
	mutation := newCRMSyncLogMutation(c.config, OpUpdate)
	return &CRMSyncLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CRMSyncLogClient) UpdateOne(_m *CRMSyncLog) *CRMSyncLogUpdateOne {
	mutation := newCRMSyncLogMutation(c.config, OpUpdateOne, withCRMSyncLog(_m))
	return &CRMSyncLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CRMSyncLogClient) UpdateOneID(id string) *CRMSyncLogUpdateOne {
	mutation := newCRMSyncLogMutation(c.config, OpUpdateOne, withCRMSyncLogID(id))
	return &CRMSyncLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CRMSyncLog.
func (c *CRMSyncLogClient) Delete() *CRMSyncLogDelete {
	mutation := newCRMSyncLogMutation(c.config, OpDelete)
	return &CRMSyncLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CRMSyncLogClient) DeleteOne(_m *CRMSyncLog) *CRMSyncLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CRMSyncLogClient) DeleteOneID(id string) *CRMSyncLogDeleteOne {
	builder := c.Delete().Where(crmsynclog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CRMSyncLogDeleteOne{builder}
}

// Query returns a query builder for CRMSyncLog.
func (c *CRMSyncLogClient) Query() *CRMSyncLogQuery {
	return &CRMSyncLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCRMSyncLog},
		inters: c.Interceptors(),
	}
}

// Get returns a CRMSyncLog entity by its id.
func (c *CRMSyncLogClient) Get(ctx context.Context, id string) (*CRMSyncLog, error) {
	return c.Query().Where(crmsynclog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CRMSyncLogClient) GetX(ctx context.Context, id string) *CRMSyncLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CRMSyncLogClient) Hooks() []Hook {
	return c.hooks.CRMSyncLog
}

// Interceptors returns the client interceptors.
func (c *CRMSyncLogClient) Interceptors() []Interceptor {
	return c.inters.CRMSyncLog
}

func (c *CRMSyncLogClient) mutate(ctx context.Context, m *CRMSyncLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CRMSyncLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CRMSyncLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CRMSyncLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CRMSyncLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CRMSyncLog mutation op: %q", m.Op())
	}
}

// CheckpointClient is a client for the Checkpoint schema.
type CheckpointClient struct {
	config
}

// NewCheckpointClient returns a client for the Checkpoint from the given config.
func NewCheckpointClient(c config) *CheckpointClient {
	return &CheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpoint.Hooks(f(g(h())))`.
func (c *CheckpointClient) Use(hooks ...Hook) {
	c.hooks.Checkpoint = append(c.hooks.Checkpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpoint.Intercept(f(g(h())))`.
func (c *CheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.Checkpoint = append(c.inters.Checkpoint, interceptors...)
}

// Create returns a builder for creating a Checkpoint entity.
func (c *CheckpointClient) Create() *CheckpointCreate {
	mutation := newCheckpointMutation(c.config, OpCreate)
	return &CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Checkpoint entities.
func (c *CheckpointClient) CreateBulk(builders ...*CheckpointCreate) *CheckpointCreateBulk {
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointClient) MapCreateBulk(slice any, setFunc func(*CheckpointCreate, int)) *CheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointCreateBulk{err: fmt.Errorf("calling to CheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Checkpoint.
func (c *CheckpointClient) Update() *CheckpointUpdate {
	mutation := newCheckpointMutation(c.config, OpUpdate)
	return &CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointClient) UpdateOne(_m *Checkpoint) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpoint(_m))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointClient) UpdateOneID(id string) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpointID(id))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Checkpoint.
func (c *CheckpointClient) Delete() *CheckpointDelete {
	mutation := newCheckpointMutation(c.config, OpDelete)
	return &CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointClient) DeleteOne(_m *Checkpoint) *CheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointClient) DeleteOneID(id string) *CheckpointDeleteOne {
	builder := c.Delete().Where(checkpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointDeleteOne{builder}
}

// Query returns a query builder for Checkpoint.
func (c *CheckpointClient) Query() *CheckpointQuery {
	return &CheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a Checkpoint entity by its id.
func (c *CheckpointClient) Get(ctx context.Context, id string) (*Checkpoint, error) {
	return c.Query().Where(checkpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointClient) GetX(ctx context.Context, id string) *Checkpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a Checkpoint.
func (c *CheckpointClient) QueryExecution(_m *Checkpoint) *AgentExecutionQuery {
	query := (&AgentExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checkpoint.Table, checkpoint.FieldID, id),
			sqlgraph.To(agentexecution.Table, agentexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, checkpoint.ExecutionTable, checkpoint.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CheckpointClient) Hooks() []Hook {
	return c.hooks.Checkpoint
}

// Interceptors returns the client interceptors.
func (c *CheckpointClient) Interceptors() []Interceptor {
	return c.inters.Checkpoint
}

func (c *CheckpointClient) mutate(ctx context.Context, m *CheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Checkpoint mutation op: %q", m.Op())
	}
}

// LeadClient is a client for the Lead schema.
type LeadClient struct {
	config
}

// NewLeadClient returns a client for the Lead from the given config.
func NewLeadClient(c config) *LeadClient {
	return &LeadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lead.Hooks(f(g(h())))`.
func (c *LeadClient) Use(hooks ...Hook) {
	c.hooks.Lead = append(c.hooks.Lead, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lead.Intercept(f(g(h())))`.
func (c *LeadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lead = append(c.inters.Lead, interceptors...)
}

// Create returns a builder for creating a Lead entity.
func (c *LeadClient) Create() *LeadCreate {
	mutation := newLeadMutation(c.config, OpCreate)
	return &LeadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lead entities.
func (c *LeadClient) CreateBulk(builders ...*LeadCreate) *LeadCreateBulk {
	return &LeadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeadClient) MapCreateBulk(slice any, setFunc func(*LeadCreate, int)) *LeadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeadCreateBulk{err: fmt.Errorf("calling to LeadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lead.
func (c *LeadClient) Update() *LeadUpdate {
	mutation := newLeadMutation(c.config, OpUpdate)
	return &LeadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeadClient) UpdateOne(_m *Lead) *LeadUpdateOne {
	mutation := newLeadMutation(c.config, OpUpdateOne, withLead(_m))
	return &LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeadClient) UpdateOneID(id string) *LeadUpdateOne {
	mutation := newLeadMutation(c.config, OpUpdateOne, withLeadID(id))
	return &LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lead.
func (c *LeadClient) Delete() *LeadDelete {
	mutation := newLeadMutation(c.config, OpDelete)
	return &LeadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeadClient) DeleteOne(_m *Lead) *LeadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeadClient) DeleteOneID(id string) *LeadDeleteOne {
	builder := c.Delete().Where(lead.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeadDeleteOne{builder}
}

// Query returns a query builder for Lead.
func (c *LeadClient) Query() *LeadQuery {
	return &LeadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLead},
		inters: c.Interceptors(),
	}
}

// Get returns a Lead entity by its id.
func (c *LeadClient) Get(ctx context.Context, id string) (*Lead, error) {
	return c.Query().Where(lead.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeadClient) GetX(ctx context.Context, id string) *Lead {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LeadClient) Hooks() []Hook {
	return c.hooks.Lead
}

// Interceptors returns the client interceptors.
func (c *LeadClient) Interceptors() []Interceptor {
	return c.inters.Lead
}

func (c *LeadClient) mutate(ctx context.Context, m *LeadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lead mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentExecution, ApiCallLog, CRMContact, CRMCredential, CRMSyncLog, Checkpoint,
		Lead []ent.Hook
	}
	inters struct {
		AgentExecution, ApiCallLog, CRMContact, CRMCredential, CRMSyncLog, Checkpoint,
		Lead []ent.Interceptor
	}
)
