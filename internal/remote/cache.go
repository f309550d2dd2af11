// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package remote

import (
	"context"

	"github.com/taibuivan/shelfmark/internal/media"
)

// DetailCache stores detail responses keyed by media type and remote id.
//
// A miss is reported as found == false with a nil error; errors are reserved
// for backend failures, which the client logs and then bypasses.
type DetailCache interface {
	Get(ctx context.Context, t media.Type, id string) (item media.MediaItem, found bool, err error)
	Set(ctx context.Context, t media.Type, id string, item media.MediaItem) error
}
