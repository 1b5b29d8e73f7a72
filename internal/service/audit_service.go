package service

import (
	"context"
	"time"

	"clinic-registry/internal/delivery/http/middleware"
	"clinic-registry/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

type AuditService interface {
	LogCreate(ctx context.Context, entityName string, entityID int64, newValue interface{})
	LogUpdate(ctx context.Context, entityName string, entityID int64, newValue interface{})
	LogDelete(ctx context.Context, entityName string, entityID int64, removed int64)
}

type auditService struct {
	log       *logrus.Logger
	publisher ChangePublisher
	now       func() time.Time
}

func NewAuditService(log *logrus.Logger, publisher ChangePublisher) AuditService {
	return &auditService{
		log:       log,
		publisher: publisher,
		now:       time.Now,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, entityName string, entityID int64, newValue interface{}) {
	s.record(ctx, entity.ChangeEvent{
		Entity:   entityName,
		Action:   entity.ChangeActionCreate,
		EntityID: entityID,
		Payload:  newValue,
	})
}

// LogUpdate logs an update action with the values written
func (s *auditService) LogUpdate(ctx context.Context, entityName string, entityID int64, newValue interface{}) {
	s.record(ctx, entity.ChangeEvent{
		Entity:   entityName,
		Action:   entity.ChangeActionUpdate,
		EntityID: entityID,
		Payload:  newValue,
	})
}

// LogDelete logs a delete action with the number of root rows removed
func (s *auditService) LogDelete(ctx context.Context, entityName string, entityID int64, removed int64) {
	s.record(ctx, entity.ChangeEvent{
		Entity:   entityName,
		Action:   entity.ChangeActionDelete,
		EntityID: entityID,
		Removed:  removed,
	})
}

// record runs after the write has committed, so a failed publish is logged
// and never turns a successful write into an error.
func (s *auditService) record(ctx context.Context, event entity.ChangeEvent) {
	event.CallerID, _ = middleware.GetCallerIDFromContext(ctx)
	event.RequestID, _ = middleware.GetRequestIDFromContext(ctx)
	event.OccurredAt = s.now().UTC()

	s.log.WithFields(logrus.Fields{
		"audit":      true,
		"entity":     event.Entity,
		"action":     event.Action,
		"entity_id":  event.EntityID,
		"caller_id":  event.CallerID,
		"request_id": event.RequestID,
	}).Info("entity changed")

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warnf("Failed to publish change event: %+v", err)
	}
}
