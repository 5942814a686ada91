// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// NotificationKind identifies a state-change notification.
type NotificationKind string

const (
	KindVoterRegistered      NotificationKind = "VoterRegistered"
	KindProposalRegistered   NotificationKind = "ProposalRegistered"
	KindVoted                NotificationKind = "Voted"
	KindWorkflowStatusChange NotificationKind = "WorkflowStatusChange"
)

// NotificationKinds lists every kind a session can emit.
var NotificationKinds = []NotificationKind{
	KindVoterRegistered,
	KindProposalRegistered,
	KindVoted,
	KindWorkflowStatusChange,
}

// Notification is emitted after a mutation has been applied.
type Notification interface {
	Kind() NotificationKind
}

type VoterRegistered struct {
	Voter Identity `json:"voter"`
}

type ProposalRegistered struct {
	ProposalID int `json:"proposal_id"`
}

type Voted struct {
	Voter      Identity `json:"voter"`
	ProposalID int      `json:"proposal_id"`
}

type WorkflowStatusChange struct {
	PreviousStatus Status `json:"previous_status"`
	NewStatus      Status `json:"new_status"`
}

func (VoterRegistered) Kind() NotificationKind      { return KindVoterRegistered }
func (ProposalRegistered) Kind() NotificationKind   { return KindProposalRegistered }
func (Voted) Kind() NotificationKind                { return KindVoted }
func (WorkflowStatusChange) Kind() NotificationKind { return KindWorkflowStatusChange }

// Notifier receives notifications from a session. Notify is called while the
// session lock is held, in emission order.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }
