package model

import (
	"slices"
	"strings"
)

// SortByNameは名前の昇順に安定ソートします。同名の場合は元の並び順を保ちます。
func SortByName(workers []Worker) {
	slices.SortStableFunc(workers, func(a, b Worker) int {
		return strings.Compare(a.Name(), b.Name())
	})
}
