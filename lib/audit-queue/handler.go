package queuehandler

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-admin-backend/db"
	activityhandler "hr-admin-backend/lib/activity"
	queuestore "hr-admin-backend/lib/audit-queue/store"
	editstore "hr-admin-backend/lib/employee-edit/store"
	employeestore "hr-admin-backend/lib/employee/store"
	newsstore "hr-admin-backend/lib/news/store"
	smtphandler "hr-admin-backend/lib/smtp"
	usersstore "hr-admin-backend/lib/users/store"
	"hr-admin-backend/lib/utils/apperrors"
	connectionhub "hr-admin-backend/lib/ws/hub/connection-hub"
	"hr-admin-backend/models"
	auditapimodels "hr-admin-backend/models/api/audit"
	dbmodels "hr-admin-backend/models/db"
	wsmodels "hr-admin-backend/models/ws"
)

type Provider interface {
	List(filter auditapimodels.QueueFilter) (list []auditapimodels.QueueItemView, err error)
	PendingCount() (count int64, err error)
	Approve(id string, actor models.Actor, data auditapimodels.ResolveData) (result auditapimodels.ResolveResult, err error)
	Reject(id string, actor models.Actor, data auditapimodels.ResolveData) (result auditapimodels.ResolveResult, err error)
}

var Instance Provider

type txStores struct {
	edits     editstore.Provider
	employees employeestore.Provider
	news      newsstore.Provider
	queue     queuestore.Provider
}

func NewHandler() {
	Instance = impl{
		queueStore: queuestore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
		activity:   activityhandler.Instance,
		inTx: func(fn func(s txStores) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(txStores{
					edits:     editstore.NewInstance(tx),
					employees: employeestore.NewInstance(tx),
					news:      newsstore.NewInstance(tx),
					queue:     queuestore.NewInstance(tx),
				})
			})
		},
		notify: func(ev wsmodels.QueueEvent) {
			if connectionhub.Instance != nil {
				connectionhub.Instance.Broadcast(ev)
			}
		},
		sendEmail: func(to, subject, message string) error {
			return smtphandler.Instance.SendEMail(to, subject, message)
		},
		now: time.Now,
	}
}

type impl struct {
	queueStore queuestore.Provider
	usersStore usersstore.Provider
	activity   activityhandler.Provider
	inTx       func(fn func(s txStores) error) error
	notify     func(ev wsmodels.QueueEvent)
	sendEmail  func(to, subject, message string) error
	now        func() time.Time
}

func (i impl) getLogger(id string) *log.Entry {
	return log.WithField("queue_entry_id", id)
}

func (i impl) List(filter auditapimodels.QueueFilter) (list []auditapimodels.QueueItemView, err error) {
	status := models.QueueStatus(filter.Status)
	if status == "" {
		status = models.QueueStatusPending
	}
	recs, err := i.queueStore.List(status)
	if err != nil {
		return nil, err
	}
	list = make([]auditapimodels.QueueItemView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, auditapimodels.QueueItemConvert(rec))
	}
	return list, nil
}

func (i impl) PendingCount() (count int64, err error) {
	return i.queueStore.PendingCount()
}

// Approve applies the queued change and removes the entry. The entity update
// and the queue delete commit together, so a crash mid-resolution leaves the
// entry pending rather than half-applied.
func (i impl) Approve(id string, actor models.Actor, data auditapimodels.ResolveData) (result auditapimodels.ResolveResult, err error) {
	if err = data.Validate(); err != nil {
		return result, apperrors.NewValidation(err.Error())
	}
	entry, err := i.queueStore.GetByID(id)
	if err != nil {
		return result, err
	}
	if entry == nil {
		return result, apperrors.NewNotFound("queue entry not found")
	}
	switch entry.EntityType {
	case models.EntityTypeEmployeeEdit:
		err = i.approveEdit(*entry, actor, data.Notes)
	case models.EntityTypeNews:
		err = i.approveNews(*entry, actor)
	default:
		return result, apperrors.NewInconsistent(fmt.Sprintf("unknown entity type %q", entry.EntityType))
	}
	if err != nil {
		return result, err
	}
	i.afterResolution(*entry, actor, models.ActionApprove, data.Notes)
	return auditapimodels.ResolveResult{Message: "approved"}, nil
}

// Reject closes the proposal without touching the target record and removes
// the entry. A rejected news post drops back to draft with the reviewer's
// notes attached.
func (i impl) Reject(id string, actor models.Actor, data auditapimodels.ResolveData) (result auditapimodels.ResolveResult, err error) {
	if err = data.Validate(); err != nil {
		return result, apperrors.NewValidation(err.Error())
	}
	entry, err := i.queueStore.GetByID(id)
	if err != nil {
		return result, err
	}
	if entry == nil {
		return result, apperrors.NewNotFound("queue entry not found")
	}
	switch entry.EntityType {
	case models.EntityTypeEmployeeEdit:
		err = i.rejectEdit(*entry, actor, data.Notes)
	case models.EntityTypeNews:
		err = i.rejectNews(*entry, data.Notes)
	default:
		return result, apperrors.NewInconsistent(fmt.Sprintf("unknown entity type %q", entry.EntityType))
	}
	if err != nil {
		return result, err
	}
	i.afterResolution(*entry, actor, models.ActionReject, data.Notes)
	return auditapimodels.ResolveResult{Message: "rejected"}, nil
}

func (i impl) approveEdit(entry dbmodels.AuditQueueEntry, actor models.Actor, notes string) error {
	return i.inTx(func(s txStores) error {
		edit, err := s.edits.GetByID(entry.EntityID)
		if err != nil {
			return err
		}
		if edit == nil {
			return apperrors.NewInconsistent("edit proposal is missing")
		}
		if edit.Status.IsTerminal() {
			return apperrors.NewInconsistent("edit proposal is already resolved")
		}
		updMap, err := edit.Changes.ToUpdateMap()
		if err != nil {
			return apperrors.NewInconsistent(err.Error())
		}
		err = s.edits.Update(edit.ID, map[string]interface{}{
			"status":      models.EditStatusApproved,
			"reviewer_id": actor.ID,
			"notes":       notes,
			"resolved_at": i.now(),
		})
		if err != nil {
			return err
		}
		employee, err := s.employees.GetByID(edit.EmployeeID)
		if err != nil {
			return err
		}
		if employee == nil {
			return apperrors.NewInconsistent("employee record is missing")
		}
		err = s.employees.ApplyChanges(edit.EmployeeID, updMap)
		if err != nil {
			return err
		}
		return s.queue.Delete(entry.ID)
	})
}

func (i impl) rejectEdit(entry dbmodels.AuditQueueEntry, actor models.Actor, notes string) error {
	return i.inTx(func(s txStores) error {
		edit, err := s.edits.GetByID(entry.EntityID)
		if err != nil {
			return err
		}
		if edit == nil {
			return apperrors.NewInconsistent("edit proposal is missing")
		}
		if edit.Status.IsTerminal() {
			return apperrors.NewInconsistent("edit proposal is already resolved")
		}
		err = s.edits.Update(edit.ID, map[string]interface{}{
			"status":      models.EditStatusRejected,
			"reviewer_id": actor.ID,
			"notes":       notes,
			"resolved_at": i.now(),
		})
		if err != nil {
			return err
		}
		return s.queue.Delete(entry.ID)
	})
}

func (i impl) approveNews(entry dbmodels.AuditQueueEntry, actor models.Actor) error {
	return i.inTx(func(s txStores) error {
		post, err := s.news.GetByID(entry.EntityID)
		if err != nil {
			return err
		}
		if post == nil {
			return apperrors.NewInconsistent("news post is missing")
		}
		if post.Status != models.NewsStatusPending {
			return apperrors.NewInconsistent("news post is not pending review")
		}
		err = s.news.Update(post.ID, map[string]interface{}{
			"status":          models.NewsStatusPublished,
			"published_at":    i.now(),
			"rejection_notes": nil,
		})
		if err != nil {
			return err
		}
		return s.queue.Delete(entry.ID)
	})
}

func (i impl) rejectNews(entry dbmodels.AuditQueueEntry, notes string) error {
	return i.inTx(func(s txStores) error {
		post, err := s.news.GetByID(entry.EntityID)
		if err != nil {
			return err
		}
		if post == nil {
			return apperrors.NewInconsistent("news post is missing")
		}
		if post.Status != models.NewsStatusPending {
			return apperrors.NewInconsistent("news post is not pending review")
		}
		err = s.news.Update(post.ID, map[string]interface{}{
			"status":          models.NewsStatusDraft,
			"rejection_notes": notes,
		})
		if err != nil {
			return err
		}
		return s.queue.Delete(entry.ID)
	})
}

// afterResolution does the bookkeeping that must not fail the resolution:
// activity trail, queue event push, submitter email.
func (i impl) afterResolution(entry dbmodels.AuditQueueEntry, actor models.Actor, action models.ActionType, notes string) {
	details := dbmodels.JSONMap{}
	if notes != "" {
		details["notes"] = notes
	}
	i.activity.Save(actor, action, string(entry.EntityType), entry.EntityID, entry.EntityName, details)

	pending, err := i.queueStore.PendingCount()
	if err != nil {
		i.getLogger(entry.ID).WithError(err).Error("failed to count pending queue entries")
	} else {
		i.notify(wsmodels.QueueEvent{
			Time:         i.now().Format("02.01.2006 15:04:05"),
			Code:         wsmodels.EventQueueResolved,
			PendingCount: pending,
			EntityType:   string(entry.EntityType),
			EntityID:     entry.EntityID,
		})
	}

	i.notifySubmitter(entry, action, notes)
}

func (i impl) notifySubmitter(entry dbmodels.AuditQueueEntry, action models.ActionType, notes string) {
	logger := i.getLogger(entry.ID)
	if entry.SubmittedByID == "" || entry.SubmittedByID == models.SystemUser {
		return
	}
	submitter, err := i.usersStore.GetByID(entry.SubmittedByID)
	if err != nil {
		logger.WithError(err).Error("failed to load submitter for notification")
		return
	}
	if submitter == nil || submitter.Email == "" {
		return
	}
	verdict := "approved"
	if action == models.ActionReject {
		verdict = "rejected"
	}
	subject := fmt.Sprintf("Your submission was %s", verdict)
	message := fmt.Sprintf("Your submission %q was %s.", entry.EntityName, verdict)
	if notes != "" {
		message = fmt.Sprintf("%s\n\nReviewer notes: %s", message, notes)
	}
	if err = i.sendEmail(submitter.Email, subject, message); err != nil {
		logger.WithError(err).Error("failed to send resolution email")
	}
}
