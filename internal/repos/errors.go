package repos

import (
  "errors"
  "fmt"
  "github.com/jackc/pgx/v5/pgconn"
)

// storeErr normalizes driver-level failures into a readable message. Postgres
// errors keep their SQLSTATE code and server message; anything else is
// wrapped as-is.
func storeErr(op string, err error) error {
  var pgErr *pgconn.PgError
  if errors.As(err, &pgErr) {
    return fmt.Errorf("%s: store error %s: %s", op, pgErr.Code, pgErr.Message)
  }
  return fmt.Errorf("%s: %w", op, err)
}
