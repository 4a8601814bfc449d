package types

// ID types give semantic meaning to the string identifiers stored in the
// board document. They marshal as plain JSON strings.

// TaskID identifies a unique task on the board
type TaskID string

// ColumnID identifies a unique column on the board
type ColumnID string

func (id TaskID) String() string {
	return string(id)
}

func (id ColumnID) String() string {
	return string(id)
}

// Priority is the optional urgency tag of a task
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities (or unset)
func (p Priority) Valid() bool {
	switch p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ColumnColor is the symbolic presentation tag of a column
type ColumnColor string

const (
	ColorGray   ColumnColor = "gray"
	ColorBlue   ColumnColor = "blue"
	ColorPurple ColumnColor = "purple"
	ColorGreen  ColumnColor = "green"
	ColorYellow ColumnColor = "yellow"
	ColorRed    ColumnColor = "red"
	ColorPink   ColumnColor = "pink"
	ColorOrange ColumnColor = "orange"
)

// ColumnColors lists every valid column color in display order
var ColumnColors = []ColumnColor{
	ColorGray,
	ColorBlue,
	ColorPurple,
	ColorGreen,
	ColorYellow,
	ColorRed,
	ColorPink,
	ColorOrange,
}

// Valid reports whether c is one of the known column colors
func (c ColumnColor) Valid() bool {
	for _, known := range ColumnColors {
		if c == known {
			return true
		}
	}
	return false
}
