package store

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrConstraint matches every *ConstraintViolation via errors.Is
var ErrConstraint = errors.New("constraint violation")

// ConstraintKind names the storage rule that rejected a write
type ConstraintKind string

const (
	NotNull    ConstraintKind = "NOT NULL"
	ForeignKey ConstraintKind = "FOREIGN KEY"
	Unique     ConstraintKind = "UNIQUE"
)

// ConstraintViolation is a storage-layer rejection of a write
type ConstraintViolation struct {
	Kind   ConstraintKind
	Table  string
	Column string
	Err    error
}

func (e *ConstraintViolation) Error() string {
	msg := string(e.Kind) + " constraint failed"
	switch {
	case e.Table != "" && e.Column != "":
		return msg + ": " + e.Table + "." + e.Column
	case e.Column != "":
		return msg + ": " + e.Column
	}
	return msg
}

func (e *ConstraintViolation) Unwrap() error { return e.Err }

func (e *ConstraintViolation) Is(target error) bool { return target == ErrConstraint }

var (
	sqliteColumn   = regexp.MustCompile(`constraint failed: (\w+)\.(\w+)`)
	pgKeyColumn    = regexp.MustCompile(`Key \((\w+)\)`)
	mysqlNullCol   = regexp.MustCompile("(?:Column|Field) '(\\w+)'")
	mysqlFKColumn  = regexp.MustCompile("`(\\w+)`, CONSTRAINT .*FOREIGN KEY \\(`(\\w+)`\\)")
	mysqlDupColumn = regexp.MustCompile(`for key '(?:\w+\.)?(\w+)'`)
)

// Translate maps driver level constraint errors onto *ConstraintViolation.
// Anything else is wrapped and returned as is.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if cv := asViolation(err); cv != nil {
		return cv
	}
	return fmt.Errorf("failed to write record: %w", err)
}

func asViolation(err error) *ConstraintViolation {
	var cv *ConstraintViolation
	if errors.As(err, &cv) {
		return cv
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return fromSQLite(sqliteErr)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromPostgres(pgErr)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return fromMySQL(myErr)
	}

	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ConstraintViolation{Kind: ForeignKey, Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConstraintViolation{Kind: Unique, Err: err}
	}
	return nil
}

func fromSQLite(e sqlite3.Error) *ConstraintViolation {
	var kind ConstraintKind
	switch e.ExtendedCode {
	case sqlite3.ErrConstraintNotNull:
		kind = NotNull
	case sqlite3.ErrConstraintForeignKey:
		kind = ForeignKey
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		kind = Unique
	default:
		return nil
	}
	cv := &ConstraintViolation{Kind: kind, Err: e}
	if m := sqliteColumn.FindStringSubmatch(e.Error()); m != nil {
		cv.Table, cv.Column = m[1], m[2]
	}
	return cv
}

func fromPostgres(e *pgconn.PgError) *ConstraintViolation {
	cv := &ConstraintViolation{Table: e.TableName, Column: e.ColumnName, Err: e}
	switch e.Code {
	case "23502":
		cv.Kind = NotNull
	case "23503":
		cv.Kind = ForeignKey
	case "23505":
		cv.Kind = Unique
	default:
		return nil
	}
	if cv.Column == "" {
		if m := pgKeyColumn.FindStringSubmatch(e.Detail); m != nil {
			cv.Column = m[1]
		}
	}
	return cv
}

func fromMySQL(e *mysql.MySQLError) *ConstraintViolation {
	cv := &ConstraintViolation{Err: e}
	switch e.Number {
	case 1048, 1364:
		cv.Kind = NotNull
		if m := mysqlNullCol.FindStringSubmatch(e.Message); m != nil {
			cv.Column = m[1]
		}
	case 1216, 1451, 1452:
		cv.Kind = ForeignKey
		if m := mysqlFKColumn.FindStringSubmatch(e.Message); m != nil {
			cv.Table, cv.Column = m[1], m[2]
		}
	case 1062:
		cv.Kind = Unique
		if m := mysqlDupColumn.FindStringSubmatch(e.Message); m != nil {
			cv.Column = strings.TrimPrefix(m[1], "idx_")
		}
	default:
		return nil
	}
	return cv
}
