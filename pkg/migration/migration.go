// Package migration runs and tracks schema migrations.
//
// Migrations register themselves from an init() in database/migrations:
//
//	func init() {
//	    migration.Register("20240801000000_create_shop_tables", &CreateShopTables{})
//	}
//
// and are applied from the CLI with `shop migrate` / `shop migrate:rollback`.
package migration

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/josys/shop/pkg/logger"
)

type Migration interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

// record is a row of the tracking table.
type record struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (record) TableName() string { return "schema_migrations" }

// Named pairs a migration with its timestamp-prefixed name.
type Named struct {
	Name      string
	Migration Migration
}

var registry []Named

// Register adds a migration to the global registry. Names sort
// lexicographically into execution order.
func Register(name string, m Migration) {
	registry = append(registry, Named{Name: name, Migration: m})
}

// Registered returns the global registry sorted by name.
func Registered() []Named {
	out := append([]Named(nil), registry...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ErrNotRegistered is returned when rolling back a migration this binary does not know.
var ErrNotRegistered = errors.New("migration not registered")

// Status is one line of `shop migrate:status`.
type Status struct {
	Name  string
	Ran   bool
	Batch int
}

type Runner struct {
	db         *gorm.DB
	out        io.Writer
	migrations []Named
}

// New creates a Runner over the global registry, reporting progress to out.
func New(db *gorm.DB, out io.Writer) *Runner {
	return NewWith(db, out, Registered())
}

// NewWith creates a Runner over an explicit migration list.
func NewWith(db *gorm.DB, out io.Writer, migrations []Named) *Runner {
	if out == nil {
		out = io.Discard
	}
	return &Runner{db: db, out: out, migrations: migrations}
}

func (r *Runner) ensureTable() error {
	if err := r.db.AutoMigrate(&record{}); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}
	return nil
}

// Pending returns the migrations that have not run yet, in order.
func (r *Runner) Pending() ([]Named, error) {
	if err := r.ensureTable(); err != nil {
		return nil, err
	}

	ran, err := r.ranSet()
	if err != nil {
		return nil, err
	}

	var pending []Named
	for _, m := range r.migrations {
		if _, ok := ran[m.Name]; !ok {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

// Run applies every pending migration as one batch.
func (r *Runner) Run() error {
	pending, err := r.Pending()
	if err != nil {
		return err
	}

	if len(pending) == 0 {
		fmt.Fprintln(r.out, "Nothing to migrate.")
		return nil
	}

	batch, err := r.lastBatch()
	if err != nil {
		return err
	}
	batch++

	for _, m := range pending {
		logger.Info("migration: running", "name", m.Name)
		fmt.Fprintf(r.out, "  Migrating: %s\n", m.Name)

		if err := m.Migration.Up(r.db); err != nil {
			return fmt.Errorf("migration: %s up: %w", m.Name, err)
		}
		if err := r.db.Create(&record{Name: m.Name, Batch: batch}).Error; err != nil {
			return fmt.Errorf("migration: record %s: %w", m.Name, err)
		}

		fmt.Fprintf(r.out, "  Migrated:  %s\n", m.Name)
	}

	logger.Info("migration: done", "ran", len(pending), "batch", batch)
	return nil
}

// Rollback reverses the most recent batch, newest first.
func (r *Runner) Rollback() error {
	if err := r.ensureTable(); err != nil {
		return err
	}

	batch, err := r.lastBatch()
	if err != nil {
		return err
	}
	if batch == 0 {
		fmt.Fprintln(r.out, "Nothing to roll back.")
		return nil
	}

	var records []record
	if err := r.db.Where("batch = ?", batch).Order("id desc").Find(&records).Error; err != nil {
		return fmt.Errorf("migration: load batch %d: %w", batch, err)
	}

	known := make(map[string]Migration, len(r.migrations))
	for _, m := range r.migrations {
		known[m.Name] = m.Migration
	}

	for _, rec := range records {
		m, ok := known[rec.Name]
		if !ok {
			return fmt.Errorf("migration: %s: %w", rec.Name, ErrNotRegistered)
		}

		logger.Info("migration: rolling back", "name", rec.Name)
		fmt.Fprintf(r.out, "  Rolling back: %s\n", rec.Name)

		if err := m.Down(r.db); err != nil {
			return fmt.Errorf("migration: %s down: %w", rec.Name, err)
		}
		if err := r.db.Delete(&rec).Error; err != nil {
			return fmt.Errorf("migration: forget %s: %w", rec.Name, err)
		}

		fmt.Fprintf(r.out, "  Rolled back:  %s\n", rec.Name)
	}
	return nil
}

// Status reports every known migration and the batch it ran in.
func (r *Runner) Status() ([]Status, error) {
	if err := r.ensureTable(); err != nil {
		return nil, err
	}

	ran, err := r.ranSet()
	if err != nil {
		return nil, err
	}

	out := make([]Status, 0, len(r.migrations))
	for _, m := range r.migrations {
		rec, ok := ran[m.Name]
		out = append(out, Status{Name: m.Name, Ran: ok, Batch: rec.Batch})
	}
	return out, nil
}

// PrintStatus writes Status as a table.
func (r *Runner) PrintStatus() error {
	rows, err := r.Status()
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "%-50s  %-8s  %s\n", "Migration", "Status", "Batch")
	for _, s := range rows {
		if s.Ran {
			fmt.Fprintf(r.out, "%-50s  %-8s  %d\n", s.Name, "Ran", s.Batch)
		} else {
			fmt.Fprintf(r.out, "%-50s  %-8s  -\n", s.Name, "Pending")
		}
	}
	return nil
}

func (r *Runner) ranSet() (map[string]record, error) {
	var ran []record
	if err := r.db.Find(&ran).Error; err != nil {
		return nil, fmt.Errorf("migration: load history: %w", err)
	}
	set := make(map[string]record, len(ran))
	for _, rec := range ran {
		set[rec.Name] = rec
	}
	return set, nil
}

func (r *Runner) lastBatch() (int, error) {
	var maxBatch struct{ Max int }
	if err := r.db.Model(&record{}).Select("COALESCE(MAX(batch), 0) AS max").Scan(&maxBatch).Error; err != nil {
		return 0, fmt.Errorf("migration: last batch: %w", err)
	}
	return maxBatch.Max, nil
}
