package models

import (
	"github.com/jirajara/invoices_backend/utils"
	"gorm.io/gorm"
)

type Edge[N Node] struct {
	Node   *N
	Cursor string
}

// FetchPage runs a forward keyset pagination query over (created_at, id).
// It fetches limit+1 rows to detect whether a next page exists.
func FetchPage[T Node](dbCtx *gorm.DB, limit int, after *string) ([]Edge[T], *PageInfo, error) {

	nodes := make([]*T, 0)

	dbCtx = dbCtx.Order("created_at, id")

	cursorTime, cursorId := DecodeCursor(after)
	if cursorId != "" {
		dbCtx = dbCtx.Where(
			"created_at > ? OR (created_at = ? AND id > ?)",
			cursorTime, cursorTime, cursorId)
	}

	// db query
	dbCtx = dbCtx.Limit(limit + 1)
	if err := dbCtx.Find(&nodes).Error; err != nil {
		return nil, nil, err
	}

	count := 0
	hasNextPage := false
	edges := make([]Edge[T], 0, len(nodes))
	for _, node := range nodes {
		if count == limit {
			hasNextPage = true
		}
		if count < limit {
			var edge Edge[T]
			edge.Node = node
			edge.Cursor = EncodeCursor((*node).GetCreatedAt(), (*node).GetId())
			edges = append(edges, edge)
			count++
		}
	}

	pageInfo := PageInfo{
		StartCursor: "",
		EndCursor:   "",
		HasNextPage: utils.NewFalse(),
	}
	if count > 0 {
		pageInfo = PageInfo{
			StartCursor: edges[0].Cursor,
			EndCursor:   edges[count-1].Cursor,
			HasNextPage: &hasNextPage,
		}
	}

	return edges, &pageInfo, nil
}
