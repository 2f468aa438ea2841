package main

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lnwallet/walletcore/internal/api"
)

func migration() *gorm.DB {
	if err := os.MkdirAll(chainDir(), 0700); err != nil {
		panic(err)
	}
	orm, err := gorm.Open(sqlite.Open(historyDbPath()), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true, FullSaveAssociations: true})
	if err != nil {
		panic("initialize orm failed")
	}
	err = orm.AutoMigrate(&api.Resolution{})
	if err != nil {
		panic(err)
	}
	return orm
}
