// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/shelfmark/internal/platform/migration"
)

func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"postgres://u:p@db:5432/shelf", "pgx5://u:p@db:5432/shelf"},
		{"postgresql://db/shelf?sslmode=disable", "pgx5://db/shelf?sslmode=disable"},
		{"pgx5://db/shelf", "pgx5://db/shelf"},
		{"host=db dbname=shelf", "host=db dbname=shelf"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.ToPgx5DSN(tt.in))
		})
	}
}
