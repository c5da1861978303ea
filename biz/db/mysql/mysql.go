package mysql

import (
	"fmt"

	"stock_tracker/be/biz/config"
	"stock_tracker/be/biz/model/storage"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init opens the connection and migrates the schema. The handle is returned
// to the caller and passed down explicitly; there is no package-level state.
func Init() *gorm.DB {
	conf := config.GetMySQLConf()
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.Username, conf.Password, conf.IP, conf.Port, conf.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(&storage.AccountRecord{}, &storage.HoldingRecord{}); err != nil {
		panic(err)
	}

	return db
}
