package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createDeveloperTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE developers (
		id TEXT PRIMARY KEY,
		name TEXT,
		role TEXT,
		api_key_hash TEXT UNIQUE,
		is_active BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProjectTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE projects (
		id TEXT PRIMARY KEY,
		owner_dev_id TEXT,
		name TEXT,
		public_slug TEXT UNIQUE,
		domain TEXT,
		ios_bundle_id TEXT,
		ios_scheme TEXT,
		android_package TEXT,
		github_owner TEXT,
		github_repo TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSecretTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE secrets (
		id TEXT PRIMARY KEY,
		project_id TEXT,
		type TEXT,
		enc TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(project_id, type)
	);`)
}

func createAccessLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE access_logs (
		id TEXT PRIMARY KEY,
		dev_id TEXT,
		ip TEXT,
		action TEXT,
		meta TEXT,
		created_at DATETIME
	);`)
}

func createBuildTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE builds (
		id TEXT PRIMARY KEY,
		project_id TEXT,
		platform TEXT,
		workflow TEXT,
		ref TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
