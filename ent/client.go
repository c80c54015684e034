// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/tmaru/lexiquest/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/tmaru/lexiquest/ent/history"
	"github.com/tmaru/lexiquest/ent/learningevent"
	"github.com/tmaru/lexiquest/ent/learningtask"
	"github.com/tmaru/lexiquest/ent/llmrequestevent"
	"github.com/tmaru/lexiquest/ent/masteryevent"
	"github.com/tmaru/lexiquest/ent/mistake"
	"github.com/tmaru/lexiquest/ent/profile"
	"github.com/tmaru/lexiquest/ent/recoveryevent"
	"github.com/tmaru/lexiquest/ent/reviewcard"
	"github.com/tmaru/lexiquest/ent/skillmastery"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// History is the client for interacting with the History builders.
	History *HistoryClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LearningEvent is the client for interacting with the LearningEvent builders.
	LearningEvent *LearningEventClient
	// LearningTask is the client for interacting with the LearningTask builders.
	LearningTask *LearningTaskClient
	// MasteryEvent is the client for interacting with the MasteryEvent builders.
	MasteryEvent *MasteryEventClient
	// Mistake is the client for interacting with the Mistake builders.
	Mistake *MistakeClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// RecoveryEvent is the client for interacting with the RecoveryEvent builders.
	RecoveryEvent *RecoveryEventClient
	// ReviewCard is the client for interacting with the ReviewCard builders.
	ReviewCard *ReviewCardClient
	// SkillMastery is the client for interacting with the SkillMastery builders.
	SkillMastery *SkillMasteryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.History = NewHistoryClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LearningEvent = NewLearningEventClient(c.config)
	c.LearningTask = NewLearningTaskClient(c.config)
	c.MasteryEvent = NewMasteryEventClient(c.config)
	c.Mistake = NewMistakeClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.RecoveryEvent = NewRecoveryEventClient(c.config)
	c.ReviewCard = NewReviewCardClient(c.config)
	c.SkillMastery = NewSkillMasteryClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		History:         NewHistoryClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LearningEvent:   NewLearningEventClient(cfg),
		LearningTask:    NewLearningTaskClient(cfg),
		MasteryEvent:    NewMasteryEventClient(cfg),
		Mistake:         NewMistakeClient(cfg),
		Profile:         NewProfileClient(cfg),
		RecoveryEvent:   NewRecoveryEventClient(cfg),
		ReviewCard:      NewReviewCardClient(cfg),
		SkillMastery:    NewSkillMasteryClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		History:         NewHistoryClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LearningEvent:   NewLearningEventClient(cfg),
		LearningTask:    NewLearningTaskClient(cfg),
		MasteryEvent:    NewMasteryEventClient(cfg),
		Mistake:         NewMistakeClient(cfg),
		Profile:         NewProfileClient(cfg),
		RecoveryEvent:   NewRecoveryEventClient(cfg),
		ReviewCard:      NewReviewCardClient(cfg),
		SkillMastery:    NewSkillMasteryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		History.
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
		c.History, c.LLMRequestEvent, c.LearningEvent, c.LearningTask, c.MasteryEvent,
		c.Mistake, c.Profile, c.RecoveryEvent, c.ReviewCard, c.SkillMastery,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.History, c.LLMRequestEvent, c.LearningEvent, c.LearningTask, c.MasteryEvent,
		c.Mistake, c.Profile, c.RecoveryEvent, c.ReviewCard, c.SkillMastery,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *HistoryMutation:
		return c.History.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LearningEventMutation:
		return c.LearningEvent.mutate(ctx, m)
	case *LearningTaskMutation:
		return c.LearningTask.mutate(ctx, m)
	case *MasteryEventMutation:
		return c.MasteryEvent.mutate(ctx, m)
	case *MistakeMutation:
		return c.Mistake.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *RecoveryEventMutation:
		return c.RecoveryEvent.mutate(ctx, m)
	case *ReviewCardMutation:
		return c.ReviewCard.mutate(ctx, m)
	case *SkillMasteryMutation:
		return c.SkillMastery.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// HistoryClient is a client for the History schema.
type HistoryClient struct {
	config
}

// NewHistoryClient returns a client for the History from the given config.
func NewHistoryClient(c config) *HistoryClient {
	return &HistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `history.Hooks(f(g(h())))`.
func (c *HistoryClient) Use(hooks ...Hook) {
	c.hooks.History = append(c.hooks.History, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `history.Intercept(f(g(h())))`.
func (c *HistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.History = append(c.inters.History, interceptors...)
}

// Create returns a builder for creating a History entity.
func (c *HistoryClient) Create() *HistoryCreate {
	mutation := newHistoryMutation(c.config, OpCreate)
	return &HistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of History entities.
func (c *HistoryClient) CreateBulk(builders ...*HistoryCreate) *HistoryCreateBulk {
	return &HistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HistoryClient) MapCreateBulk(slice any, setFunc func(*HistoryCreate, int)) *HistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HistoryCreateBulk{err: fmt.Errorf("calling to HistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for History.
func (c *HistoryClient) Update() *HistoryUpdate {
	mutation := newHistoryMutation(c.config, OpUpdate)
	return &HistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HistoryClient) UpdateOne(_m *History) *HistoryUpdateOne {
	mutation := newHistoryMutation(c.config, OpUpdateOne, withHistory(_m))
	return &HistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HistoryClient) UpdateOneID(id int) *HistoryUpdateOne {
	mutation := newHistoryMutation(c.config, OpUpdateOne, withHistoryID(id))
	return &HistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for History.
func (c *HistoryClient) Delete() *HistoryDelete {
	mutation := newHistoryMutation(c.config, OpDelete)
	return &HistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HistoryClient) DeleteOne(_m *History) *HistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HistoryClient) DeleteOneID(id int) *HistoryDeleteOne {
	builder := c.Delete().Where(history.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HistoryDeleteOne{builder}
}

// Query returns a query builder for History.
func (c *HistoryClient) Query() *HistoryQuery {
	return &HistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a History entity by its id.
func (c *HistoryClient) Get(ctx context.Context, id int) (*History, error) {
	return c.Query().Where(history.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HistoryClient) GetX(ctx context.Context, id int) *History {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HistoryClient) Hooks() []Hook {
	return c.hooks.History
}

// Interceptors returns the client interceptors.
func (c *HistoryClient) Interceptors() []Interceptor {
	return c.inters.History
}

func (c *HistoryClient) mutate(ctx context.Context, m *HistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown History mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LearningEventClient is a client for the LearningEvent schema.
type LearningEventClient struct {
	config
}

// NewLearningEventClient returns a client for the LearningEvent from the given config.
func NewLearningEventClient(c config) *LearningEventClient {
	return &LearningEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningevent.Hooks(f(g(h())))`.
func (c *LearningEventClient) Use(hooks ...Hook) {
	c.hooks.LearningEvent = append(c.hooks.LearningEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningevent.Intercept(f(g(h())))`.
func (c *LearningEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningEvent = append(c.inters.LearningEvent, interceptors...)
}

// Create returns a builder for creating a LearningEvent entity.
func (c *LearningEventClient) Create() *LearningEventCreate {
	mutation := newLearningEventMutation(c.config, OpCreate)
	return &LearningEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningEvent entities.
func (c *LearningEventClient) CreateBulk(builders ...*LearningEventCreate) *LearningEventCreateBulk {
	return &LearningEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningEventClient) MapCreateBulk(slice any, setFunc func(*LearningEventCreate, int)) *LearningEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningEventCreateBulk{err: fmt.Errorf("calling to LearningEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningEvent.
func (c *LearningEventClient) Update() *LearningEventUpdate {
	mutation := newLearningEventMutation(c.config, OpUpdate)
	return &LearningEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningEventClient) UpdateOne(_m *LearningEvent) *LearningEventUpdateOne {
	mutation := newLearningEventMutation(c.config, OpUpdateOne, withLearningEvent(_m))
	return &LearningEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningEventClient) UpdateOneID(id int) *LearningEventUpdateOne {
	mutation := newLearningEventMutation(c.config, OpUpdateOne, withLearningEventID(id))
	return &LearningEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningEvent.
func (c *LearningEventClient) Delete() *LearningEventDelete {
	mutation := newLearningEventMutation(c.config, OpDelete)
	return &LearningEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningEventClient) DeleteOne(_m *LearningEvent) *LearningEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningEventClient) DeleteOneID(id int) *LearningEventDeleteOne {
	builder := c.Delete().Where(learningevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningEventDeleteOne{builder}
}

// Query returns a query builder for LearningEvent.
func (c *LearningEventClient) Query() *LearningEventQuery {
	return &LearningEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningEvent entity by its id.
func (c *LearningEventClient) Get(ctx context.Context, id int) (*LearningEvent, error) {
	return c.Query().Where(learningevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningEventClient) GetX(ctx context.Context, id int) *LearningEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningEventClient) Hooks() []Hook {
	return c.hooks.LearningEvent
}

// Interceptors returns the client interceptors.
func (c *LearningEventClient) Interceptors() []Interceptor {
	return c.inters.LearningEvent
}

func (c *LearningEventClient) mutate(ctx context.Context, m *LearningEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningEvent mutation op: %q", m.Op())
	}
}

// LearningTaskClient is a client for the LearningTask schema.
type LearningTaskClient struct {
	config
}

// NewLearningTaskClient returns a client for the LearningTask from the given config.
func NewLearningTaskClient(c config) *LearningTaskClient {
	return &LearningTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningtask.Hooks(f(g(h())))`.
func (c *LearningTaskClient) Use(hooks ...Hook) {
	c.hooks.LearningTask = append(c.hooks.LearningTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningtask.Intercept(f(g(h())))`.
func (c *LearningTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningTask = append(c.inters.LearningTask, interceptors...)
}

// Create returns a builder for creating a LearningTask entity.
func (c *LearningTaskClient) Create() *LearningTaskCreate {
	mutation := newLearningTaskMutation(c.config, OpCreate)
	return &LearningTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningTask entities.
func (c *LearningTaskClient) CreateBulk(builders ...*LearningTaskCreate) *LearningTaskCreateBulk {
	return &LearningTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningTaskClient) MapCreateBulk(slice any, setFunc func(*LearningTaskCreate, int)) *LearningTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningTaskCreateBulk{err: fmt.Errorf("calling to LearningTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningTask.
func (c *LearningTaskClient) Update() *LearningTaskUpdate {
	mutation := newLearningTaskMutation(c.config, OpUpdate)
	return &LearningTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningTaskClient) UpdateOne(_m *LearningTask) *LearningTaskUpdateOne {
	mutation := newLearningTaskMutation(c.config, OpUpdateOne, withLearningTask(_m))
	return &LearningTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningTaskClient) UpdateOneID(id int) *LearningTaskUpdateOne {
	mutation := newLearningTaskMutation(c.config, OpUpdateOne, withLearningTaskID(id))
	return &LearningTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningTask.
func (c *LearningTaskClient) Delete() *LearningTaskDelete {
	mutation := newLearningTaskMutation(c.config, OpDelete)
	return &LearningTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningTaskClient) DeleteOne(_m *LearningTask) *LearningTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningTaskClient) DeleteOneID(id int) *LearningTaskDeleteOne {
	builder := c.Delete().Where(learningtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningTaskDeleteOne{builder}
}

// Query returns a query builder for LearningTask.
func (c *LearningTaskClient) Query() *LearningTaskQuery {
	return &LearningTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningTask},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningTask entity by its id.
func (c *LearningTaskClient) Get(ctx context.Context, id int) (*LearningTask, error) {
	return c.Query().Where(learningtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningTaskClient) GetX(ctx context.Context, id int) *LearningTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningTaskClient) Hooks() []Hook {
	return c.hooks.LearningTask
}

// Interceptors returns the client interceptors.
func (c *LearningTaskClient) Interceptors() []Interceptor {
	return c.inters.LearningTask
}

func (c *LearningTaskClient) mutate(ctx context.Context, m *LearningTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningTask mutation op: %q", m.Op())
	}
}

// MasteryEventClient is a client for the MasteryEvent schema.
type MasteryEventClient struct {
	config
}

// NewMasteryEventClient returns a client for the MasteryEvent from the given config.
func NewMasteryEventClient(c config) *MasteryEventClient {
	return &MasteryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryevent.Hooks(f(g(h())))`.
func (c *MasteryEventClient) Use(hooks ...Hook) {
	c.hooks.MasteryEvent = append(c.hooks.MasteryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryevent.Intercept(f(g(h())))`.
func (c *MasteryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryEvent = append(c.inters.MasteryEvent, interceptors...)
}

// Create returns a builder for creating a MasteryEvent entity.
func (c *MasteryEventClient) Create() *MasteryEventCreate {
	mutation := newMasteryEventMutation(c.config, OpCreate)
	return &MasteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryEvent entities.
func (c *MasteryEventClient) CreateBulk(builders ...*MasteryEventCreate) *MasteryEventCreateBulk {
	return &MasteryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryEventClient) MapCreateBulk(slice any, setFunc func(*MasteryEventCreate, int)) *MasteryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryEventCreateBulk{err: fmt.Errorf("calling to MasteryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryEvent.
func (c *MasteryEventClient) Update() *MasteryEventUpdate {
	mutation := newMasteryEventMutation(c.config, OpUpdate)
	return &MasteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryEventClient) UpdateOne(_m *MasteryEvent) *MasteryEventUpdateOne {
	mutation := newMasteryEventMutation(c.config, OpUpdateOne, withMasteryEvent(_m))
	return &MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryEventClient) UpdateOneID(id int) *MasteryEventUpdateOne {
	mutation := newMasteryEventMutation(c.config, OpUpdateOne, withMasteryEventID(id))
	return &MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryEvent.
func (c *MasteryEventClient) Delete() *MasteryEventDelete {
	mutation := newMasteryEventMutation(c.config, OpDelete)
	return &MasteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryEventClient) DeleteOne(_m *MasteryEvent) *MasteryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryEventClient) DeleteOneID(id int) *MasteryEventDeleteOne {
	builder := c.Delete().Where(masteryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryEventDeleteOne{builder}
}

// Query returns a query builder for MasteryEvent.
func (c *MasteryEventClient) Query() *MasteryEventQuery {
	return &MasteryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryEvent entity by its id.
func (c *MasteryEventClient) Get(ctx context.Context, id int) (*MasteryEvent, error) {
	return c.Query().Where(masteryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryEventClient) GetX(ctx context.Context, id int) *MasteryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryEventClient) Hooks() []Hook {
	return c.hooks.MasteryEvent
}

// Interceptors returns the client interceptors.
func (c *MasteryEventClient) Interceptors() []Interceptor {
	return c.inters.MasteryEvent
}

func (c *MasteryEventClient) mutate(ctx context.Context, m *MasteryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryEvent mutation op: %q", m.Op())
	}
}

// MistakeClient is a client for the Mistake schema.
type MistakeClient struct {
	config
}

// NewMistakeClient returns a client for the Mistake from the given config.
func NewMistakeClient(c config) *MistakeClient {
	return &MistakeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mistake.Hooks(f(g(h())))`.
func (c *MistakeClient) Use(hooks ...Hook) {
	c.hooks.Mistake = append(c.hooks.Mistake, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mistake.Intercept(f(g(h())))`.
func (c *MistakeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Mistake = append(c.inters.Mistake, interceptors...)
}

// Create returns a builder for creating a Mistake entity.
func (c *MistakeClient) Create() *MistakeCreate {
	mutation := newMistakeMutation(c.config, OpCreate)
	return &MistakeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Mistake entities.
func (c *MistakeClient) CreateBulk(builders ...*MistakeCreate) *MistakeCreateBulk {
	return &MistakeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MistakeClient) MapCreateBulk(slice any, setFunc func(*MistakeCreate, int)) *MistakeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MistakeCreateBulk{err: fmt.Errorf("calling to MistakeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MistakeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MistakeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Mistake.
func (c *MistakeClient) Update() *MistakeUpdate {
	mutation := newMistakeMutation(c.config, OpUpdate)
	return &MistakeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MistakeClient) UpdateOne(_m *Mistake) *MistakeUpdateOne {
	mutation := newMistakeMutation(c.config, OpUpdateOne, withMistake(_m))
	return &MistakeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MistakeClient) UpdateOneID(id int) *MistakeUpdateOne {
	mutation := newMistakeMutation(c.config, OpUpdateOne, withMistakeID(id))
	return &MistakeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Mistake.
func (c *MistakeClient) Delete() *MistakeDelete {
	mutation := newMistakeMutation(c.config, OpDelete)
	return &MistakeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MistakeClient) DeleteOne(_m *Mistake) *MistakeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MistakeClient) DeleteOneID(id int) *MistakeDeleteOne {
	builder := c.Delete().Where(mistake.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MistakeDeleteOne{builder}
}

// Query returns a query builder for Mistake.
func (c *MistakeClient) Query() *MistakeQuery {
	return &MistakeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMistake},
		inters: c.Interceptors(),
	}
}

// Get returns a Mistake entity by its id.
func (c *MistakeClient) Get(ctx context.Context, id int) (*Mistake, error) {
	return c.Query().Where(mistake.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MistakeClient) GetX(ctx context.Context, id int) *Mistake {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MistakeClient) Hooks() []Hook {
	return c.hooks.Mistake
}

// Interceptors returns the client interceptors.
func (c *MistakeClient) Interceptors() []Interceptor {
	return c.inters.Mistake
}

func (c *MistakeClient) mutate(ctx context.Context, m *MistakeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MistakeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MistakeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MistakeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MistakeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Mistake mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id int) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id int) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id int) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id int) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// RecoveryEventClient is a client for the RecoveryEvent schema.
type RecoveryEventClient struct {
	config
}

// NewRecoveryEventClient returns a client for the RecoveryEvent from the given config.
func NewRecoveryEventClient(c config) *RecoveryEventClient {
	return &RecoveryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recoveryevent.Hooks(f(g(h())))`.
func (c *RecoveryEventClient) Use(hooks ...Hook) {
	c.hooks.RecoveryEvent = append(c.hooks.RecoveryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recoveryevent.Intercept(f(g(h())))`.
func (c *RecoveryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RecoveryEvent = append(c.inters.RecoveryEvent, interceptors...)
}

// Create returns a builder for creating a RecoveryEvent entity.
func (c *RecoveryEventClient) Create() *RecoveryEventCreate {
	mutation := newRecoveryEventMutation(c.config, OpCreate)
	return &RecoveryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RecoveryEvent entities.
func (c *RecoveryEventClient) CreateBulk(builders ...*RecoveryEventCreate) *RecoveryEventCreateBulk {
	return &RecoveryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecoveryEventClient) MapCreateBulk(slice any, setFunc func(*RecoveryEventCreate, int)) *RecoveryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecoveryEventCreateBulk{err: fmt.Errorf("calling to RecoveryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecoveryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecoveryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RecoveryEvent.
func (c *RecoveryEventClient) Update() *RecoveryEventUpdate {
	mutation := newRecoveryEventMutation(c.config, OpUpdate)
	return &RecoveryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecoveryEventClient) UpdateOne(_m *RecoveryEvent) *RecoveryEventUpdateOne {
	mutation := newRecoveryEventMutation(c.config, OpUpdateOne, withRecoveryEvent(_m))
	return &RecoveryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecoveryEventClient) UpdateOneID(id int) *RecoveryEventUpdateOne {
	mutation := newRecoveryEventMutation(c.config, OpUpdateOne, withRecoveryEventID(id))
	return &RecoveryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RecoveryEvent.
func (c *RecoveryEventClient) Delete() *RecoveryEventDelete {
	mutation := newRecoveryEventMutation(c.config, OpDelete)
	return &RecoveryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecoveryEventClient) DeleteOne(_m *RecoveryEvent) *RecoveryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecoveryEventClient) DeleteOneID(id int) *RecoveryEventDeleteOne {
	builder := c.Delete().Where(recoveryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecoveryEventDeleteOne{builder}
}

// Query returns a query builder for RecoveryEvent.
func (c *RecoveryEventClient) Query() *RecoveryEventQuery {
	return &RecoveryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecoveryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RecoveryEvent entity by its id.
func (c *RecoveryEventClient) Get(ctx context.Context, id int) (*RecoveryEvent, error) {
	return c.Query().Where(recoveryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecoveryEventClient) GetX(ctx context.Context, id int) *RecoveryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RecoveryEventClient) Hooks() []Hook {
	return c.hooks.RecoveryEvent
}

// Interceptors returns the client interceptors.
func (c *RecoveryEventClient) Interceptors() []Interceptor {
	return c.inters.RecoveryEvent
}

func (c *RecoveryEventClient) mutate(ctx context.Context, m *RecoveryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecoveryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecoveryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecoveryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecoveryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RecoveryEvent mutation op: %q", m.Op())
	}
}

// ReviewCardClient is a client for the ReviewCard schema.
type ReviewCardClient struct {
	config
}

// NewReviewCardClient returns a client for the ReviewCard from the given config.
func NewReviewCardClient(c config) *ReviewCardClient {
	return &ReviewCardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewcard.Hooks(f(g(h())))`.
func (c *ReviewCardClient) Use(hooks ...Hook) {
	c.hooks.ReviewCard = append(c.hooks.ReviewCard, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewcard.Intercept(f(g(h())))`.
func (c *ReviewCardClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewCard = append(c.inters.ReviewCard, interceptors...)
}

// Create returns a builder for creating a ReviewCard entity.
func (c *ReviewCardClient) Create() *ReviewCardCreate {
	mutation := newReviewCardMutation(c.config, OpCreate)
	return &ReviewCardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewCard entities.
func (c *ReviewCardClient) CreateBulk(builders ...*ReviewCardCreate) *ReviewCardCreateBulk {
	return &ReviewCardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewCardClient) MapCreateBulk(slice any, setFunc func(*ReviewCardCreate, int)) *ReviewCardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewCardCreateBulk{err: fmt.Errorf("calling to ReviewCardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewCardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewCardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewCard.
func (c *ReviewCardClient) Update() *ReviewCardUpdate {
	mutation := newReviewCardMutation(c.config, OpUpdate)
	return &ReviewCardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewCardClient) UpdateOne(_m *ReviewCard) *ReviewCardUpdateOne {
	mutation := newReviewCardMutation(c.config, OpUpdateOne, withReviewCard(_m))
	return &ReviewCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewCardClient) UpdateOneID(id int) *ReviewCardUpdateOne {
	mutation := newReviewCardMutation(c.config, OpUpdateOne, withReviewCardID(id))
	return &ReviewCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewCard.
func (c *ReviewCardClient) Delete() *ReviewCardDelete {
	mutation := newReviewCardMutation(c.config, OpDelete)
	return &ReviewCardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewCardClient) DeleteOne(_m *ReviewCard) *ReviewCardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewCardClient) DeleteOneID(id int) *ReviewCardDeleteOne {
	builder := c.Delete().Where(reviewcard.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewCardDeleteOne{builder}
}

// Query returns a query builder for ReviewCard.
func (c *ReviewCardClient) Query() *ReviewCardQuery {
	return &ReviewCardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewCard},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewCard entity by its id.
func (c *ReviewCardClient) Get(ctx context.Context, id int) (*ReviewCard, error) {
	return c.Query().Where(reviewcard.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewCardClient) GetX(ctx context.Context, id int) *ReviewCard {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewCardClient) Hooks() []Hook {
	return c.hooks.ReviewCard
}

// Interceptors returns the client interceptors.
func (c *ReviewCardClient) Interceptors() []Interceptor {
	return c.inters.ReviewCard
}

func (c *ReviewCardClient) mutate(ctx context.Context, m *ReviewCardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewCardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewCardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewCardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewCard mutation op: %q", m.Op())
	}
}

// SkillMasteryClient is a client for the SkillMastery schema.
type SkillMasteryClient struct {
	config
}

// NewSkillMasteryClient returns a client for the SkillMastery from the given config.
func NewSkillMasteryClient(c config) *SkillMasteryClient {
	return &SkillMasteryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillmastery.Hooks(f(g(h())))`.
func (c *SkillMasteryClient) Use(hooks ...Hook) {
	c.hooks.SkillMastery = append(c.hooks.SkillMastery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillmastery.Intercept(f(g(h())))`.
func (c *SkillMasteryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillMastery = append(c.inters.SkillMastery, interceptors...)
}

// Create returns a builder for creating a SkillMastery entity.
func (c *SkillMasteryClient) Create() *SkillMasteryCreate {
	mutation := newSkillMasteryMutation(c.config, OpCreate)
	return &SkillMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillMastery entities.
func (c *SkillMasteryClient) CreateBulk(builders ...*SkillMasteryCreate) *SkillMasteryCreateBulk {
	return &SkillMasteryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillMasteryClient) MapCreateBulk(slice any, setFunc func(*SkillMasteryCreate, int)) *SkillMasteryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillMasteryCreateBulk{err: fmt.Errorf("calling to SkillMasteryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillMasteryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillMasteryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillMastery.
func (c *SkillMasteryClient) Update() *SkillMasteryUpdate {
	mutation := newSkillMasteryMutation(c.config, OpUpdate)
	return &SkillMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillMasteryClient) UpdateOne(_m *SkillMastery) *SkillMasteryUpdateOne {
	mutation := newSkillMasteryMutation(c.config, OpUpdateOne, withSkillMastery(_m))
	return &SkillMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillMasteryClient) UpdateOneID(id int) *SkillMasteryUpdateOne {
	mutation := newSkillMasteryMutation(c.config, OpUpdateOne, withSkillMasteryID(id))
	return &SkillMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillMastery.
func (c *SkillMasteryClient) Delete() *SkillMasteryDelete {
	mutation := newSkillMasteryMutation(c.config, OpDelete)
	return &SkillMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillMasteryClient) DeleteOne(_m *SkillMastery) *SkillMasteryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillMasteryClient) DeleteOneID(id int) *SkillMasteryDeleteOne {
	builder := c.Delete().Where(skillmastery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillMasteryDeleteOne{builder}
}

// Query returns a query builder for SkillMastery.
func (c *SkillMasteryClient) Query() *SkillMasteryQuery {
	return &SkillMasteryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillMastery},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillMastery entity by its id.
func (c *SkillMasteryClient) Get(ctx context.Context, id int) (*SkillMastery, error) {
	return c.Query().Where(skillmastery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillMasteryClient) GetX(ctx context.Context, id int) *SkillMastery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillMasteryClient) Hooks() []Hook {
	return c.hooks.SkillMastery
}

// Interceptors returns the client interceptors.
func (c *SkillMasteryClient) Interceptors() []Interceptor {
	return c.inters.SkillMastery
}

func (c *SkillMasteryClient) mutate(ctx context.Context, m *SkillMasteryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillMastery mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		History, LLMRequestEvent, LearningEvent, LearningTask, MasteryEvent, Mistake,
		Profile, RecoveryEvent, ReviewCard, SkillMastery []ent.Hook
	}
	inters struct {
		History, LLMRequestEvent, LearningEvent, LearningTask, MasteryEvent, Mistake,
		Profile, RecoveryEvent, ReviewCard, SkillMastery []ent.Interceptor
	}
)
