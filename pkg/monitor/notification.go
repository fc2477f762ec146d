package monitor

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
	"github.com/Sinon1310/CareSync-sub000/pkg/realtime"
)

func (m *Monitor) publishChange(op realtime.ChangeOp, n models.Notification) {
	if m.Hub != nil {
		m.Hub.PublishNotificationChange(op, n)
	}
}

// visible restricts a query to a recipient's notifications that have not expired.
func (m *Monitor) visible(ctx context.Context, recipientID string) *gorm.DB {
	return m.Db.Conn.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ?", recipientID).
		Where("(expires_at IS NULL OR expires_at > ?)", m.now())
}

func (m *Monitor) persistNotification(ctx context.Context, n *models.Notification) error {
	logger := common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryNotification)

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = m.now()
	}
	n.Read = false

	if err := m.Db.Conn.WithContext(ctx).Create(n).Error; err != nil {
		return err
	}

	notificationsPersisted.WithLabelValues(string(n.Kind)).Inc()
	logger.Info("Notification saved", zap.Reflect("notification", n))

	m.publishChange(realtime.ChangeInsert, *n)
	return nil
}

func (m *Monitor) listNotifications(ctx context.Context, recipientID string, unreadOnly bool) ([]models.Notification, error) {
	query := m.visible(ctx, recipientID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	err := query.Order("created_at desc").Find(&notifications).Error
	return notifications, err
}

func (m *Monitor) unreadCount(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	err := m.visible(ctx, recipientID).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

func (m *Monitor) findNotification(ctx context.Context, recipientID string, notificationID string) (*models.Notification, error) {
	var n models.Notification
	err := m.Db.Conn.WithContext(ctx).First(&n, "id = ? AND recipient_id = ?", notificationID, recipientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// markRead moves a notification from unread to read. Marking a read
// notification again is a no-op.
func (m *Monitor) markRead(ctx context.Context, recipientID string, notificationID string) error {
	n, err := m.findNotification(ctx, recipientID, notificationID)
	if err != nil {
		return err
	}
	if n.Read {
		return nil
	}

	if err := m.Db.Conn.WithContext(ctx).Model(n).Update("is_read", true).Error; err != nil {
		return err
	}
	n.Read = true

	common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryNotification).
		Info("Notification read", zap.String("notification_id", n.ID), zap.String("recipient_id", recipientID))

	m.publishChange(realtime.ChangeUpdate, *n)
	return nil
}

func (m *Monitor) markAllRead(ctx context.Context, recipientID string) (int64, error) {
	var unread []models.Notification
	if err := m.Db.Conn.WithContext(ctx).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Find(&unread).Error; err != nil {
		return 0, err
	}
	if len(unread) == 0 {
		return 0, nil
	}

	ids := common.Mapper(unread, func(n models.Notification) string { return n.ID })
	result := m.Db.Conn.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id IN ?", ids).
		Update("is_read", true)
	if result.Error != nil {
		return 0, result.Error
	}

	common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryNotification).
		Info("Notifications read", zap.String("recipient_id", recipientID), zap.Int64("count", result.RowsAffected))

	for _, n := range unread {
		n.Read = true
		m.publishChange(realtime.ChangeUpdate, n)
	}
	return result.RowsAffected, nil
}

func (m *Monitor) clearNotification(ctx context.Context, recipientID string, notificationID string) error {
	n, err := m.findNotification(ctx, recipientID, notificationID)
	if err != nil {
		return err
	}

	if err := m.Db.Conn.WithContext(ctx).Delete(n).Error; err != nil {
		return err
	}

	common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryNotification).
		Info("Notification cleared", zap.String("notification_id", n.ID), zap.String("recipient_id", recipientID))

	m.publishChange(realtime.ChangeDelete, *n)
	return nil
}

func (m *Monitor) clearAll(ctx context.Context, recipientID string) (int64, error) {
	var all []models.Notification
	if err := m.Db.Conn.WithContext(ctx).Where("recipient_id = ?", recipientID).Find(&all).Error; err != nil {
		return 0, err
	}
	if len(all) == 0 {
		return 0, nil
	}

	result := m.Db.Conn.WithContext(ctx).Where("recipient_id = ?", recipientID).Delete(&models.Notification{})
	if result.Error != nil {
		return 0, result.Error
	}

	common.GetCategoryLogger(common.LoggerNameMonitorCore, common.LoggerCategoryNotification).
		Info("Notifications cleared", zap.String("recipient_id", recipientID), zap.Int64("count", result.RowsAffected))

	for _, n := range all {
		m.publishChange(realtime.ChangeDelete, n)
	}
	return result.RowsAffected, nil
}

type INotificationImpl struct {
	monitor *Monitor
}

func (in *INotificationImpl) PersistNotification(ctx context.Context, n *models.Notification) error {
	return in.monitor.persistNotification(ctx, n)
}

func (in *INotificationImpl) ListNotifications(ctx context.Context, recipientID string, unreadOnly bool) ([]models.Notification, error) {
	return in.monitor.listNotifications(ctx, recipientID, unreadOnly)
}

func (in *INotificationImpl) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	return in.monitor.unreadCount(ctx, recipientID)
}

func (in *INotificationImpl) MarkRead(ctx context.Context, recipientID string, notificationID string) error {
	return in.monitor.markRead(ctx, recipientID, notificationID)
}

func (in *INotificationImpl) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	return in.monitor.markAllRead(ctx, recipientID)
}

func (in *INotificationImpl) ClearNotification(ctx context.Context, recipientID string, notificationID string) error {
	return in.monitor.clearNotification(ctx, recipientID, notificationID)
}

func (in *INotificationImpl) ClearAll(ctx context.Context, recipientID string) (int64, error) {
	return in.monitor.clearAll(ctx, recipientID)
}

func (m *Monitor) GetINotification() INotification {
	return &INotificationImpl{monitor: m}
}
