package inmemdb

import (
	"time"

	"github.com/trezcool/hostela/core/notification"
)

type notificationRepository struct {
	db       *table[notification.Notification]
	template *table[notification.Template]
}

func NewNotificationRepository(db *DB) notification.Repository {
	return &notificationRepository{db: db.notification, template: db.template}
}

func (repo *notificationRepository) CreateNotification(n notification.Notification) (notification.Notification, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	n.ID = repo.db.nextID()
	now := time.Now().UTC()
	n.CreatedAt, n.UpdatedAt = now, now
	repo.db.insert(n.ID, &n)
	return n, nil
}

func (repo *notificationRepository) QueryAllNotifications() ([]notification.Notification, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.all(), nil
}

func (repo *notificationRepository) GetNotificationByID(id string) (notification.Notification, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if n, ok := repo.db.get(id); ok {
		return *n, nil
	}
	return notification.Notification{}, notification.ErrNotFound
}

func (repo *notificationRepository) UpdateNotification(n notification.Notification, status string) (notification.Notification, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.get(n.ID)
	if !ok {
		return notification.Notification{}, notification.ErrNotFound
	}
	if n.SentAt.Valid {
		orig.SentAt = n.SentAt
	}
	if n.ScheduledAt.Valid {
		orig.ScheduledAt = n.ScheduledAt
	}
	if status != "" {
		orig.Status = status
	}
	orig.UpdatedAt = time.Now().UTC()
	return *orig, nil
}

func (repo *notificationRepository) DeleteNotification(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if !repo.db.remove(id) {
		return notification.ErrNotFound
	}
	return nil
}

func (repo *notificationRepository) CreateTemplate(tpl notification.Template) (notification.Template, error) {
	repo.template.Lock()
	defer repo.template.Unlock()

	tpl.ID = repo.template.nextID()
	now := time.Now().UTC()
	tpl.CreatedAt, tpl.UpdatedAt = now, now
	repo.template.insert(tpl.ID, &tpl)
	return tpl, nil
}

func (repo *notificationRepository) QueryAllTemplates() ([]notification.Template, error) {
	repo.template.RLock()
	defer repo.template.RUnlock()
	return repo.template.all(), nil
}

func (repo *notificationRepository) GetTemplateByID(id string) (notification.Template, error) {
	repo.template.RLock()
	defer repo.template.RUnlock()

	if tpl, ok := repo.template.get(id); ok {
		return *tpl, nil
	}
	return notification.Template{}, notification.ErrTemplateNotFound
}

func (repo *notificationRepository) UpdateTemplate(tpl notification.Template, typ, channel string, isActive *bool) (notification.Template, error) {
	repo.template.Lock()
	defer repo.template.Unlock()

	// only save set fields
	orig, ok := repo.template.get(tpl.ID)
	if !ok {
		return notification.Template{}, notification.ErrTemplateNotFound
	}
	if tpl.Name != "" {
		orig.Name = tpl.Name
	}
	if tpl.MessageTemplate != "" {
		orig.MessageTemplate = tpl.MessageTemplate
	}
	if typ != "" {
		orig.Type = typ
	}
	if channel != "" {
		orig.Channel = channel
	}
	if isActive != nil {
		orig.IsActive = *isActive
	}
	orig.UpdatedAt = time.Now().UTC()
	return *orig, nil
}

func (repo *notificationRepository) DeleteTemplate(id string) error {
	repo.template.Lock()
	defer repo.template.Unlock()

	if !repo.template.remove(id) {
		return notification.ErrTemplateNotFound
	}
	return nil
}
