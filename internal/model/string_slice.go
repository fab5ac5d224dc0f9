package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// StringSlice stores a list of OAuth scopes as a single space separated
// column, the same format providers use on the wire.
type StringSlice []string

// Value implements the driver.Valuer interface. Elements may not contain
// whitespace since it's used as the separator.
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "", nil
	}

	for _, v := range s {
		if strings.ContainsAny(v, " \t\n") {
			return "", fmt.Errorf("scope %q contains whitespace", v)
		}
	}

	return strings.Join(s, " "), nil
}

// Scan implements the sql.Scanner interface.
func (s *StringSlice) Scan(value any) error {
	var str string

	switch v := value.(type) {
	case nil:
		*s = StringSlice{}
		return nil
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("failed to scan StringSlice, %v", value)
	}

	*s = strings.Fields(str)
	return nil
}
