package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pgUniqueViolation = "23505"

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// supportsRowLock 判断方言是否支持 SELECT ... FOR UPDATE。
// sqlite 的写事务本身是串行的，不需要行锁。
func supportsRowLock(dialect string) bool {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql", "mysql":
		return true
	default:
		return false
	}
}

// lockForUpdate 在支持的方言上追加行锁。
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if !supportsRowLock(dbDialectName(db)) {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// IsUniqueViolation 判断错误是否为唯一约束冲突，兼容 sqlite 与 postgres。
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
