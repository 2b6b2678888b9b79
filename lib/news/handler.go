package newshandler

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-admin-backend/db"
	activityhandler "hr-admin-backend/lib/activity"
	queuestore "hr-admin-backend/lib/audit-queue/store"
	newsstore "hr-admin-backend/lib/news/store"
	"hr-admin-backend/lib/utils/apperrors"
	"hr-admin-backend/lib/utils/helpers"
	connectionhub "hr-admin-backend/lib/ws/hub/connection-hub"
	"hr-admin-backend/models"
	newsapimodels "hr-admin-backend/models/api/news"
	dbmodels "hr-admin-backend/models/db"
	wsmodels "hr-admin-backend/models/ws"
)

type Provider interface {
	Create(data newsapimodels.NewsData, actor models.Actor) (id string, err error)
	Update(id string, data newsapimodels.NewsData, actor models.Actor) error
	GetByID(id string) (view *newsapimodels.NewsView, err error)
	GetBySlug(slug string) (view *newsapimodels.NewsView, err error)
	Delete(id string, actor models.Actor) error
	List(filter newsapimodels.NewsFilter) (list []newsapimodels.NewsView, count int64, err error)
	Submit(id string, actor models.Actor) (result newsapimodels.SubmitResult, err error)
}

var Instance Provider

type txStores struct {
	news  newsstore.Provider
	queue queuestore.Provider
}

func NewHandler() {
	Instance = impl{
		store:      newsstore.NewInstance(db.DB),
		queueStore: queuestore.NewInstance(db.DB),
		activity:   activityhandler.Instance,
		inTx: func(fn func(s txStores) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(txStores{
					news:  newsstore.NewInstance(tx),
					queue: queuestore.NewInstance(tx),
				})
			})
		},
		notify: func(ev wsmodels.QueueEvent) {
			if connectionhub.Instance != nil {
				connectionhub.Instance.Broadcast(ev)
			}
		},
		now: time.Now,
	}
}

type impl struct {
	store      newsstore.Provider
	queueStore queuestore.Provider
	activity   activityhandler.Provider
	inTx       func(fn func(s txStores) error) error
	notify     func(ev wsmodels.QueueEvent)
	now        func() time.Time
}

func (i impl) Create(data newsapimodels.NewsData, actor models.Actor) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	slug, err := i.uniqueSlug(data.Title)
	if err != nil {
		return "", err
	}
	rec := dbmodels.News{
		Title:    data.Title,
		Slug:     slug,
		Summary:  data.Summary,
		Content:  data.Content,
		Category: data.Category,
		ImageURL: data.ImageURL,
		Tags:     pq.StringArray(data.Tags),
		Status:   models.NewsStatusDraft,
		AuthorID: actor.ID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.activity.Save(actor, models.ActionCreate, "news", id, data.Title, nil)
	return id, nil
}

// Update rewrites the post body. A published post is read-only, it has to go
// back through the queue as a fresh draft to change.
func (i impl) Update(id string, data newsapimodels.NewsData, actor models.Actor) error {
	if err := data.Validate(); err != nil {
		return apperrors.NewValidation(err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("news post not found")
	}
	if rec.Status == models.NewsStatusPublished {
		return apperrors.NewInconsistent("published post can not be edited")
	}
	updMap := map[string]interface{}{
		"title":     data.Title,
		"summary":   data.Summary,
		"content":   data.Content,
		"category":  data.Category,
		"image_url": data.ImageURL,
		"tags":      pq.StringArray(data.Tags),
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	i.activity.Save(actor, models.ActionUpdate, "news", id, data.Title, nil)
	return nil
}

func (i impl) GetByID(id string) (*newsapimodels.NewsView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("news post not found")
	}
	view := newsapimodels.NewsConvert(*rec)
	return &view, nil
}

// GetBySlug serves the public site, only published posts are visible there.
func (i impl) GetBySlug(slug string) (*newsapimodels.NewsView, error) {
	rec, err := i.store.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Status != models.NewsStatusPublished {
		return nil, apperrors.NewNotFound("news post not found")
	}
	view := newsapimodels.NewsConvert(*rec)
	return &view, nil
}

func (i impl) Delete(id string, actor models.Actor) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("news post not found")
	}
	err = i.inTx(func(s txStores) error {
		if txErr := s.news.Delete(id); txErr != nil {
			return txErr
		}
		return s.queue.Delete(id)
	})
	if err != nil {
		return err
	}
	i.activity.Save(actor, models.ActionDelete, "news", id, rec.Title, nil)
	return nil
}

func (i impl) List(filter newsapimodels.NewsFilter) (list []newsapimodels.NewsView, count int64, err error) {
	count, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]newsapimodels.NewsView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, newsapimodels.NewsConvert(rec))
	}
	return list, count, nil
}

// Submit moves a draft toward the public site. Privileged roles skip the
// queue and publish on the spot; everyone else lands on the approval queue
// as pending.
func (i impl) Submit(id string, actor models.Actor) (result newsapimodels.SubmitResult, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return result, err
	}
	if rec == nil {
		return result, apperrors.NewNotFound("news post not found")
	}
	if rec.Status == models.NewsStatusPublished {
		return result, apperrors.NewInconsistent("post is already published")
	}

	if actor.Role.CanPublishDirect() {
		publishedAt := i.now()
		err = i.inTx(func(s txStores) error {
			txErr := s.news.Update(id, map[string]interface{}{
				"status":          models.NewsStatusPublished,
				"published_at":    publishedAt,
				"rejection_notes": nil,
			})
			if txErr != nil {
				return txErr
			}
			return s.queue.Delete(id)
		})
		if err != nil {
			return result, err
		}
		i.activity.Save(actor, models.ActionPublish, "news", id, rec.Title, nil)
		i.broadcast(wsmodels.EventQueueResolved, id)
		return newsapimodels.SubmitResult{Status: string(models.NewsStatusPublished)}, nil
	}

	queueRec := dbmodels.AuditQueueEntry{
		ID:              id,
		EntityType:      models.EntityTypeNews,
		EntityID:        id,
		EntityName:      rec.Title,
		Status:          models.QueueStatusPending,
		SubmittedByID:   actor.ID,
		SubmittedByName: actor.Name,
		SubmittedAt:     i.now(),
		Payload: dbmodels.JSONMap{
			"title":    rec.Title,
			"category": rec.Category,
		},
	}
	err = i.inTx(func(s txStores) error {
		txErr := s.news.Update(id, map[string]interface{}{
			"status":          models.NewsStatusPending,
			"rejection_notes": nil,
		})
		if txErr != nil {
			return txErr
		}
		return s.queue.Upsert(queueRec)
	})
	if err != nil {
		return result, err
	}
	i.activity.Save(actor, models.ActionSubmit, "news", id, rec.Title, nil)
	i.broadcast(wsmodels.EventQueueSubmitted, id)
	return newsapimodels.SubmitResult{Status: string(models.NewsStatusPending)}, nil
}

// uniqueSlug derives a URL slug from the title, suffixing a counter when the
// plain form is already taken.
func (i impl) uniqueSlug(title string) (string, error) {
	base := helpers.Slugify(title)
	if base == "" {
		base = "post"
	}
	slug := base
	for n := 2; ; n++ {
		existing, err := i.store.GetBySlug(slug)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}

func (i impl) broadcast(code string, entityID string) {
	pending, err := i.queueStore.PendingCount()
	if err != nil {
		log.WithError(err).Error("failed to count pending queue entries")
		return
	}
	i.notify(wsmodels.QueueEvent{
		Time:         i.now().Format("02.01.2006 15:04:05"),
		Code:         code,
		PendingCount: pending,
		EntityType:   string(models.EntityTypeNews),
		EntityID:     entityID,
	})
}
