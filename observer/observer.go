// Package observer feeds committed entity mutations into the change log.
//
// The host application calls Created, Updated or Deleted once its own write
// has succeeded. Audit logging is best-effort: failures are logged and counted
// but never returned, so they cannot fail or roll back the mutation.
package observer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/blogem/adminaudit/models"
	"github.com/blogem/adminaudit/services"
	"github.com/blogem/adminaudit/userctx"
)

// supported lists the event kinds forwarded to the change log
var supported = map[string]models.Action{
	"created": models.ActionCreated,
	"updated": models.ActionUpdated,
	"deleted": models.ActionDeleted,
}

// Observer adapts mutation events to ChangeService.Log
type Observer struct {
	changes services.ChangeService
	logger  logrus.FieldLogger
}

// New creates an observer that logs through changes
func New(changes services.ChangeService, logger logrus.FieldLogger) *Observer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Observer{changes: changes, logger: logger}
}

// Handle forwards one event. kind is the event name, e.g. "updated";
// anything other than created, updated or deleted is ignored.
func (o *Observer) Handle(ctx context.Context, kind string, entity models.Entity) {
	action, ok := supported[kind]
	if !ok {
		return
	}

	// Internal types never reach the change log
	if policy := o.changes.Policy(); policy != nil && policy.Excludes(entity) {
		return
	}

	fields := logrus.Fields{
		"model":  entity.Type,
		"key":    entity.Key,
		"action": action,
		"admin":  userctx.GetUserEmail(ctx),
	}

	change, err := o.changes.Log(ctx, entity, action, userctx.GetAdmin(ctx))
	if err != nil {
		o.logger.WithFields(fields).WithError(err).Error("Failed to log change")
		return
	}

	if change != nil {
		o.logger.WithFields(fields).WithField("change_id", change.ID).Debug("Change logged")
	}
}

// Created implements services.MutationObserver
func (o *Observer) Created(ctx context.Context, entity models.Auditable) {
	o.Handle(ctx, string(models.ActionCreated), models.SnapshotOf(nil, entity))
}

// Updated implements services.MutationObserver
func (o *Observer) Updated(ctx context.Context, before, after models.Auditable) {
	o.Handle(ctx, string(models.ActionUpdated), models.SnapshotOf(before, after))
}

// Deleted implements services.MutationObserver
func (o *Observer) Deleted(ctx context.Context, entity models.Auditable) {
	o.Handle(ctx, string(models.ActionDeleted), models.SnapshotOf(entity, nil))
}
