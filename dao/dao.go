package dao

import (
	"context"

	"gorm.io/gorm"

	"github.com/locey/BurnWin/base/stores/gdb/ledger"
)

type Dao struct {
	ctx context.Context
	DB  *gorm.DB
}

func New(ctx context.Context, db *gorm.DB) *Dao {
	return &Dao{ctx: ctx, DB: db}
}

// AutoMigrate 建表
func (d *Dao) AutoMigrate() error {
	return d.DB.WithContext(d.ctx).AutoMigrate(&ledger.TaskCompletion{})
}
