/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package parser

import (
	"reflect"
	"strconv"
	"strings"
)

// extractStatement returns the single alternative matched by a grammar choice
func extractStatement(s any) (any, bool) {
	v := reflect.ValueOf(s)
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() == reflect.Ptr && !field.IsNil() {
			return field.Interface(), true
		}
	}
	return nil, false
}

// splitIntLiteral returns the sign, digits and base of a decimal or 0x-prefixed literal
func splitIntLiteral(lit string) (sign, digits string, base int) {
	digits, base = lit, 10
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		digits, base = digits[2:], 16
	}
	return sign, digits, base
}

func parseInt32(lit string) (int32, error) {
	sign, digits, base := splitIntLiteral(lit)
	n, err := strconv.ParseInt(sign+digits, base, 32)
	return int32(n), err
}

func parseUint32(lit string) (uint32, error) {
	sign, digits, base := splitIntLiteral(lit)
	n, err := strconv.ParseUint(sign+digits, base, 32)
	return uint32(n), err
}
