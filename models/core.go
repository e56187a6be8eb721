package models

import (
	"log"
	"os"
	"path/filepath"

	"github.com/GrainArc/ScenePath/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

// InitDB 初始化数据库，配置了host走postgres，否则本地sqlite
func InitDB() {
	var err error
	if config.Host != "" {
		DB, err = gorm.Open(postgres.Open(config.DSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
	} else {
		StoragePath := config.Download
		if err := os.MkdirAll(StoragePath, os.ModePerm); err != nil {
			log.Fatalf("创建存储目录失败: %v", err)
		}
		dbPath := filepath.Join(StoragePath, "scenepath.db")
		DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			log.Fatalf("连接数据库失败: %v", err)
		}
	}

	// 设置命名策略
	DB.NamingStrategy = schema.NamingStrategy{
		SingularTable: true,
	}

	// 批量迁移所有表
	if err := migrateAllTables(DB); err != nil {
		log.Printf("Failed to migrate tables: %v", err)
	}
}

// migrateAllTables 批量迁移所有表
func migrateAllTables(db *gorm.DB) error {
	models := []interface{}{
		&SceneAsset{},
		&UploadRecord{},
	}

	return db.AutoMigrate(models...)
}
