// Command gen generates typed gorm query helpers for the dashboard tables.
// Run it from the repository root after changing a model.
package main

import (
	"vradmin/internal/infra/persistence/model"

	"gorm.io/gen"
)

// DeviceQuerier holds the hand-written device queries generated as methods.
type DeviceQuerier interface {
	// SELECT * FROM @@table WHERE is_active AND fcm_token IN @tokens
	FindActiveByTokens(tokens []string) ([]gen.T, error)

	// SELECT * FROM @@table WHERE admin_id = @adminID ORDER BY last_seen_at DESC
	FindByAdmin(adminID string) ([]gen.T, error)
}

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.AdminNotificationModel{}, model.TodoModel{})
	g.ApplyInterface(func(DeviceQuerier) {}, model.AdminDeviceModel{})

	g.Execute()
}
