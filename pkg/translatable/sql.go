// Copyright (c) 2026 Polyglot. All rights reserved.
// Author: thuan.dang.dev@gmail.com

package translatable

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements [database/sql.Scanner] so a Field can be read straight out
// of a JSONB column. SQL NULL scans to an empty Field, matching [Parse].
func (f *Field) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*f = Field{}
		return nil
	case []byte:
		parsed, err := Parse(value)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	case string:
		parsed, err := Parse([]byte(value))
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported column type %T", ErrMalformed, src)
	}
}

// Value implements [database/sql/driver.Valuer]. The column's on-disk
// representation is exactly the canonical serialized object; an empty field
// is stored as {} rather than NULL so JSON-path queries stay total.
func (f Field) Value() (driver.Value, error) {
	encoded, err := f.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return encoded, nil
}
