package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/josys/shop/pkg/metrics"
)

const startedAtKey = "shop:started_at"

// registerMetrics times every gorm operation into metrics.DBQueryDuration.
func registerMetrics(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		op     string
		before func(string) error
		after  func(string) error
	}{
		{"create", func(n string) error { return cb.Create().Before("gorm:create").Register(n, startTimer) },
			func(n string) error { return cb.Create().After("gorm:create").Register(n, observe("insert")) }},
		{"query", func(n string) error { return cb.Query().Before("gorm:query").Register(n, startTimer) },
			func(n string) error { return cb.Query().After("gorm:query").Register(n, observe("select")) }},
		{"update", func(n string) error { return cb.Update().Before("gorm:update").Register(n, startTimer) },
			func(n string) error { return cb.Update().After("gorm:update").Register(n, observe("update")) }},
		{"delete", func(n string) error { return cb.Delete().Before("gorm:delete").Register(n, startTimer) },
			func(n string) error { return cb.Delete().After("gorm:delete").Register(n, observe("delete")) }},
		{"raw", func(n string) error { return cb.Raw().Before("gorm:raw").Register(n, startTimer) },
			func(n string) error { return cb.Raw().After("gorm:raw").Register(n, observe("raw")) }},
	}

	for _, h := range hooks {
		if err := h.before("metrics:before_" + h.op); err != nil {
			return err
		}
		if err := h.after("metrics:after_" + h.op); err != nil {
			return err
		}
	}
	return nil
}

func startTimer(db *gorm.DB) {
	db.InstanceSet(startedAtKey, time.Now())
}

func observe(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		v, ok := db.InstanceGet(startedAtKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		metrics.ObserveDBQuery(operation, table, start)
	}
}
