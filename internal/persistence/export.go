package persistence

import (
	"fmt"
	"io"
	"time"

	"github.com/thenoetrevino/lanes/internal/models"
)

// ExportFileName returns the suggested file name for an export made at now
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("kanban-board-%s.json", now.Format(time.DateOnly))
}

// Export writes the board to w as indented JSON
func Export(w io.Writer, board *models.Board) error {
	data, err := EncodeIndent(board)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// Import reads a previously exported board. The document must carry both
// "tasks" and "columns" and satisfy every board invariant; otherwise a
// *ParseError is returned and nothing is replaced.
func Import(r io.Reader) (*models.Board, error) {
	return decodeFrom(r)
}
