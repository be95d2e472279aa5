package httputil

import (
	"net/url"
	"reflect"
)

// QueryFields returns the names of the filter fields whose form
// parameter is set in the query string.
//
// The names are returned as []any so they can be passed to a gorm
// Where call to restrict the query to exactly these fields, zero values
// included.
func QueryFields(u *url.URL, filter any) []any {
	query := u.Query()
	t := reflect.Indirect(reflect.ValueOf(filter)).Type()

	var fields []any
	for i := 0; i < t.NumField(); i++ {
		param := t.Field(i).Tag.Get("form")
		if param != "" && query.Has(param) {
			fields = append(fields, t.Field(i).Name)
		}
	}

	return fields
}
