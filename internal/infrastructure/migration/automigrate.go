package migration

import (
	"github.com/techile/fieldportal/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ClientModel{},
		&models.TicketModel{},
		&models.InvoiceModel{},
		&models.SubscriptionModel{},
		&models.WebsiteModel{},
		&models.NotificationModel{},
		&models.SettingModel{},
	}
}
