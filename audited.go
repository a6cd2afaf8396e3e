package secretval

import (
	"errors"

	"github.com/loambank/secretval/audit"
)

// AuditedBackend wraps a Backend and records every store access to an
// audit log. Audit writes are best-effort: a failure to log never blocks
// the operation.
type AuditedBackend struct {
	inner Backend
	audit *audit.Logger
	actor string
}

// NewAuditedBackend wraps an existing backend with audit logging.
func NewAuditedBackend(inner Backend, auditLog *audit.Logger, actor string) *AuditedBackend {
	return &AuditedBackend{
		inner: inner,
		audit: auditLog,
		actor: actor,
	}
}

func (b *AuditedBackend) Search(service string) ([]byte, error) {
	data, err := b.inner.Search(service)
	// A missing item is the normal empty state, not worth an audit line.
	if err == nil {
		b.audit.Log(audit.Entry{
			Action:  audit.ActionRead,
			Service: service,
			Actor:   b.actor,
		})
	} else if !errors.Is(err, ErrNotFound) {
		b.audit.Log(audit.Entry{
			Action:  audit.ActionRead,
			Service: service,
			Actor:   b.actor,
			Error:   err.Error(),
		})
	}
	return data, err
}

func (b *AuditedBackend) Add(service string, data []byte) error {
	err := b.inner.Add(service, data)
	b.logMutation(audit.ActionWrite, service, err)
	return err
}

func (b *AuditedBackend) Update(service string, data []byte) error {
	err := b.inner.Update(service, data)
	// The not-found probe before an add fallback is not a write.
	if err == nil || !errors.Is(err, ErrNotFound) {
		b.logMutation(audit.ActionWrite, service, err)
	}
	return err
}

func (b *AuditedBackend) Delete(service string) error {
	err := b.inner.Delete(service)
	if err == nil || !errors.Is(err, ErrNotFound) {
		b.logMutation(audit.ActionDelete, service, err)
	}
	return err
}

func (b *AuditedBackend) logMutation(action audit.Action, service string, err error) {
	entry := audit.Entry{
		Action:  action,
		Service: service,
		Actor:   b.actor,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	b.audit.Log(entry)
}
