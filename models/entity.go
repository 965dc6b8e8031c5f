package models

// Entity types the audit log never records
const (
	ChangeEntityType  = "Change"
	SessionEntityType = "Session"
)

// Entity describes one mutated domain object as seen by the audit log
type Entity struct {
	Type  string
	Key   string
	Title *string

	// Before and After hold the trackable attributes around the mutation.
	// Before is ignored for created events.
	Before map[string]any
	After  map[string]any

	// Association marks join-table rows (ordering, tagging) that an admin
	// didn't edit directly
	Association bool
}

// Auditable is implemented by domain types whose mutations are recorded
type Auditable interface {
	AuditType() string
	AuditKey() string
	AuditAttributes() map[string]any
}

// Titled is implemented by auditable types that have a display label
type Titled interface {
	AuditTitle() string
}

// SnapshotOf builds an Entity for a mutation of v. before may be nil.
func SnapshotOf(before, after Auditable) Entity {
	current := after
	if current == nil {
		current = before
	}

	entity := Entity{
		Type: current.AuditType(),
		Key:  current.AuditKey(),
	}

	if titled, ok := current.(Titled); ok {
		title := titled.AuditTitle()
		entity.Title = &title
	}

	if before != nil {
		entity.Before = before.AuditAttributes()
	}
	if after != nil {
		entity.After = after.AuditAttributes()
	}

	return entity
}
