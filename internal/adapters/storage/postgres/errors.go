package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"student-pet-records/internal/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SQLSTATE que nos interesan.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
	codeStringTooLong       = "22001"
	codeInvalidText         = "22P02"
	codeTooManyConnections  = "53300"
	codeAdminShutdown       = "57P01"
	codeCannotConnectNow    = "57P03"
)

// classify envuelve err con op y lo asocia al sentinel de errs que corresponda.
// El mensaje público nunca incluye el texto del motor.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	wrapped := fmt.Errorf("%s: %w", op, err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return errs.New(errs.ErrConflict, uniqueMessage(pgErr), wrapped)
		case codeForeignKeyViolation:
			return errs.New(errs.ErrInvalidInput, fmt.Sprintf("The referenced %s does not exist", entityName(pgErr.TableName, pgErr.ColumnName)), wrapped)
		case codeNotNullViolation:
			return errs.New(errs.ErrInvalidInput, fmt.Sprintf("The %s is required", fieldName(pgErr.ColumnName)), wrapped)
		case codeCheckViolation, codeStringTooLong, codeInvalidText:
			return errs.New(errs.ErrInvalidInput, "One or more values do not meet required conditions", wrapped)
		case codeTooManyConnections, codeAdminShutdown, codeCannotConnectNow:
			return errs.Unavailable(wrapped)
		}
		if strings.HasPrefix(pgErr.Code, "08") {
			return errs.Unavailable(wrapped)
		}
		return wrapped
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.As(err, &connErr),
		errors.As(err, &netErr),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		pgconn.Timeout(err):
		return errs.Unavailable(wrapped)
	}
	return wrapped
}

// students_pkey -> "identifier", students_email_key -> "email".
func uniqueMessage(e *pgconn.PgError) string {
	entity := entityName(e.TableName, "")
	column := "identifier"

	name := strings.TrimPrefix(e.ConstraintName, e.TableName+"_")
	if strings.HasSuffix(name, "_key") {
		column = strings.ReplaceAll(strings.TrimSuffix(name, "_key"), "_", " ")
	}
	return fmt.Sprintf("A %s with this %s already exists", entity, column)
}

func entityName(table, column string) string {
	if c := strings.ToLower(column); strings.HasSuffix(c, "_id") {
		return humanize(strings.TrimSuffix(c, "_id"))
	}
	if table != "" {
		return humanize(strings.TrimSuffix(table, "s"))
	}
	return "record"
}

func fieldName(column string) string {
	if column == "" {
		return "field"
	}
	return humanize(column)
}

// "birth_date" -> "Birth Date"
func humanize(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}
