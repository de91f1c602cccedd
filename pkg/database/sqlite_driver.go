package database

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// sqliteDriverName 带 Unicode lower() 的 SQLite 驱动
const sqliteDriverName = "sqlite3_unicode"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			// 内置 lower() 只处理 ASCII，覆盖后 LOWER(name) 与 PostgreSQL 行为一致
			return conn.RegisterFunc("lower", unicodeLower, true)
		},
	})
}

func unicodeLower(s string) string {
	return strings.ToLower(s)
}
