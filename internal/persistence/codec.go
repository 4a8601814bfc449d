// Package persistence serializes boards to and from the JSON document kept in
// a key-value store and used for export/import files.
package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/thenoetrevino/lanes/internal/converters"
	"github.com/thenoetrevino/lanes/internal/models"
)

// Encode serializes a board to compact JSON
func Encode(board *models.Board) ([]byte, error) {
	data, err := json.Marshal(converters.BoardToDocument(board))
	if err != nil {
		return nil, fmt.Errorf("failed to encode board: %w", err)
	}
	return data, nil
}

// EncodeIndent serializes a board to indented JSON, as written by Export
func EncodeIndent(board *models.Board) ([]byte, error) {
	data, err := json.MarshalIndent(converters.BoardToDocument(board), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode board: %w", err)
	}
	return data, nil
}

// Decode parses a board document. Timestamp strings are revived, the document
// is mapped field by field onto the board and the result must satisfy every
// board invariant. All failures are *ParseError.
func Decode(data []byte) (*models.Board, error) {
	return decodeFrom(bytes.NewReader(data))
}

func decodeFrom(r io.Reader) (*models.Board, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, parseError("invalid JSON", err)
	}
	if dec.More() {
		return nil, parseError("unexpected data after the document", nil)
	}

	board, err := converters.BoardFromValue(converters.Revive(raw))
	if err != nil {
		var fe *converters.FieldError
		if errors.As(err, &fe) {
			return nil, parseError(fe.Error(), nil)
		}
		return nil, parseError("invalid document", err)
	}

	if err := board.Validate(); err != nil {
		return nil, parseError("board is inconsistent", err)
	}
	return board, nil
}
