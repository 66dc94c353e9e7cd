package sheet

import "context"

// RowSource reads raw rows from a spreadsheet tab. Implementations return
// either the complete tab contents or an error, never a partial result.
// An empty tab yields an empty slice, not an error.
type RowSource interface {
	FetchTab(ctx context.Context, tab string) ([][]string, error)
}

// RowSink appends a single row at the bottom of a tab.
type RowSink interface {
	AppendRow(ctx context.Context, tab string, row []string) error
}
