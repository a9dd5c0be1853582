package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/emrgen/pagebuilder/internal/page"
)

// ComponentList stores the ordered components of a page as one JSON column.
type ComponentList []page.ComponentInstance

func (c ComponentList) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (c *ComponentList) Scan(value any) error {
	data, err := columnBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*c = make(ComponentList, 0)
		return nil
	}
	return json.Unmarshal(data, c)
}

// SeoColumn stores the SEO data of a page as one JSON column.
type SeoColumn page.SeoData

func (s SeoColumn) Value() (driver.Value, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (s *SeoColumn) Scan(value any) error {
	data, err := columnBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*s = SeoColumn{}
		return nil
	}
	return json.Unmarshal(data, s)
}

func columnBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column value %T", value)
	}
}
