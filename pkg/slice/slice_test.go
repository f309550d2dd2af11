// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/shelfmark/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Nil(t, slice.Map[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, slice.Map([]int{1, 2}, strconv.Itoa))
}

func TestFilter_NeverNil(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.Equal(t, []int{2, 4}, slice.Filter([]int{1, 2, 3, 4}, even))

	got := slice.Filter([]int{1, 3}, even)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUnique_KeepsFirst(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, slice.Unique([]string{"b", "a", "b", "c", "a"}))
}
