// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses multi-valued URL query parameters.
package query

import (
	"net/url"
	"strings"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Values collects a parameter given either repeated (?tags=a&tags=b) or
// comma-separated (?tags=a,b), preserving order.
func Values(values url.Values, key string) []string {
	var res []string
	for _, raw := range values[key] {
		res = append(res, StringSlice(raw)...)
	}
	return res
}
