package service

import (
	"context"
	"time"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

const auditTimeout = 5 * time.Second

// AuditWriter appends audit entries after the primary write has committed.
// Failures are logged and never reach the caller.
type AuditWriter struct {
	Repo      AuditRepository
	Publisher AuditPublisher
	Log       *logrus.Entry
}

func NewAuditWriter(repo AuditRepository, publisher AuditPublisher, log *logrus.Entry) *AuditWriter {
	return &AuditWriter{Repo: repo, Publisher: publisher, Log: log}
}

func (w *AuditWriter) Record(ctx context.Context, entry domain.LogEntry) {
	if w == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()

	fields := logrus.Fields{
		"restaurant_id":   entry.RestaurantID,
		"member_id":       entry.MemberID,
		"log_type":        entry.LogType,
		"affected_entity": entry.AffectedEntity,
		"affected_id":     entry.AffectedID,
	}

	if err := w.Repo.InsertLog(ctx, &entry); err != nil {
		w.Log.WithFields(fields).WithError(err).Warn("audit log write failed")
		return
	}
	if w.Publisher == nil {
		return
	}
	if err := w.Publisher.PublishAudit(ctx, entry); err != nil {
		w.Log.WithFields(fields).WithError(err).Warn("audit event publish failed")
	}
}

// entryFor builds an audit entry attributed to the calling member.
func entryFor(p *domain.Principal, logType domain.LogType, entity domain.AffectedEntity, affectedID, event, description string) domain.LogEntry {
	return domain.LogEntry{
		RestaurantID:   p.RestaurantID,
		MemberID:       p.Subject,
		Event:          event,
		Description:    description,
		LogType:        logType,
		AffectedEntity: entity,
		AffectedID:     affectedID,
	}
}
