package postgis

import (
	"strings"

	pq "github.com/lib/pq"
	"github.com/pkg/errors"
)

// connectionParams converts connection URLs into key=value parameters and
// disables SSL unless sslmode is set.
func connectionParams(connection string) (string, error) {
	if strings.HasPrefix(connection, "postgis://") {
		connection = strings.Replace(connection, "postgis", "postgres", 1)
	}
	params := connection
	if strings.HasPrefix(connection, "postgres://") || strings.HasPrefix(connection, "postgresql://") {
		var err error
		params, err = pq.ParseURL(connection)
		if err != nil {
			return "", errors.Wrap(err, "parsing connection URL")
		}
	}
	if !strings.Contains(params, "sslmode=") {
		params += " sslmode=disable"
	}
	return strings.TrimSpace(params), nil
}
