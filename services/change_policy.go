package services

import (
	"github.com/blogem/adminaudit/models"
)

// PolicyFunc decides per event whether a change is logged
type PolicyFunc func(entity models.Entity, action models.Action, actor *models.Admin) bool

// SkipReason explains why a change was not logged
type SkipReason string

const (
	SkipExcludedType      SkipReason = "excluded_type"
	SkipUnsupportedAction SkipReason = "unsupported_action"
	SkipNoActor           SkipReason = "no_actor"
	SkipDisabled          SkipReason = "disabled"
	SkipPredicate         SkipReason = "predicate"
)

// Decision is the outcome of evaluating the audit policy for one event
type Decision struct {
	Log    bool
	Reason SkipReason
}

// AuditPolicy decides which mutation events become change records
type AuditPolicy struct {
	setting      any
	neverAudited map[string]bool
}

// NewAuditPolicy validates the log_changes setting and builds a policy.
// setting may be nil (disabled), a bool, a PolicyFunc or an equivalent func literal.
func NewAuditPolicy(setting any, neverAudited ...string) (*AuditPolicy, error) {
	if _, _, err := resolveSetting(setting); err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(neverAudited))
	for _, t := range neverAudited {
		excluded[t] = true
	}

	return &AuditPolicy{setting: setting, neverAudited: excluded}, nil
}

// Excludes reports whether the entity is never audited regardless of the setting
func (p *AuditPolicy) Excludes(entity models.Entity) bool {
	switch {
	case entity.Type == models.ChangeEntityType:
		return true
	case entity.Type == models.SessionEntityType:
		return true
	case entity.Association:
		return true
	}
	return p.neverAudited[entity.Type]
}

// Evaluate applies the policy rules in order: excluded types, supported
// actions, actor attribution, then the configured setting.
func (p *AuditPolicy) Evaluate(entity models.Entity, action models.Action, actor *models.Admin) (Decision, error) {
	if p.Excludes(entity) {
		return Decision{Reason: SkipExcludedType}, nil
	}

	if !action.Valid() {
		return Decision{Reason: SkipUnsupportedAction}, nil
	}

	if actor == nil || actor.ID == 0 {
		return Decision{Reason: SkipNoActor}, nil
	}

	enabled, predicate, err := resolveSetting(p.setting)
	if err != nil {
		return Decision{}, err
	}

	if predicate != nil {
		if predicate(entity, action, actor) {
			return Decision{Log: true}, nil
		}
		return Decision{Reason: SkipPredicate}, nil
	}

	if !enabled {
		return Decision{Reason: SkipDisabled}, nil
	}

	return Decision{Log: true}, nil
}

// ShouldLog is the boolean form of Evaluate
func (p *AuditPolicy) ShouldLog(entity models.Entity, action models.Action, actor *models.Admin) (bool, error) {
	decision, err := p.Evaluate(entity, action, actor)
	return decision.Log, err
}

// resolveSetting maps a log_changes value onto either a fixed answer or a predicate
func resolveSetting(setting any) (bool, PolicyFunc, error) {
	switch v := setting.(type) {
	case nil:
		return false, nil, nil
	case bool:
		return v, nil, nil
	case PolicyFunc:
		if v == nil {
			return false, nil, &ConfigurationError{Setting: setting}
		}
		return true, v, nil
	case func(models.Entity, models.Action, *models.Admin) bool:
		if v == nil {
			return false, nil, &ConfigurationError{Setting: setting}
		}
		return true, PolicyFunc(v), nil
	}
	return false, nil, &ConfigurationError{Setting: setting}
}
