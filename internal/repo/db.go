package repo

import (
	"fmt"
	"strings"

	"ItemKeeper/internal/model"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение с БД и прогоняет автомиграции моделей.
// DSN вида postgres://... открывает Postgres, всё остальное трактуется
// как путь к файлу SQLite (pure-Go драйвер modernc).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		dial = gormpostgres.Open(dsn)
	case dsn == "":
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "itemkeeper.db"}
	default:
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Item{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
