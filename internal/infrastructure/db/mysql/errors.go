package mysql

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/demobank/banking-api/internal/core/domain"
)

// MySQL error numbers this layer cares about.
const (
	erSignalException = 1644 // SIGNAL SQLSTATE '45000' raised by a procedure
	erDupEntry        = 1062 // unique index violation
)

// Unique index on customers.email, declared in schema/0001_customers.sql.
// The 1062 message names the violated index, so this is how an email
// collision is told apart from any other duplicate key.
const emailUniqueIndex = "uq_customers_email"

// translateError converts driver errors into domain errors. Procedure
// SIGNALs become OperationError so their message (a business rule, not
// driver internals) can reach the client; everything else passes through
// unchanged and is treated as internal.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case erSignalException:
			return domain.NewOperationError(me.Message)
		case erDupEntry:
			if strings.Contains(me.Message, emailUniqueIndex) {
				return domain.ErrUserExists
			}
		}
	}
	return err
}
