// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentExecution is the predicate function for agentexecution builders.
type AgentExecution func(*sql.Selector)

// ApiCallLog is the predicate function for apicalllog builders.
type ApiCallLog func(*sql.Selector)

// CRMContact is the predicate function for crmcontact builders.
type CRMContact func(*sql.Selector)

// CRMCredential is the predicate function for crmcredential builders.
type CRMCredential func(*sql.Selector)

// CRMSyncLog is the predicate function for crmsynclog builders.
type CRMSyncLog func(*sql.Selector)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)
