package protocol

// SheetField is one labelled declaration of a round, e.g. Chief: Anna.
type SheetField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SheetRowView struct {
	Number   int          `json:"number"`
	Title    string       `json:"title"`
	Kind     string       `json:"kind"`
	Valid    bool         `json:"valid"`
	Fields   []SheetField `json:"fields"`
	Points   []int        `json:"points"`
	Bonus    []int        `json:"bonus"`
	Sum      []int        `json:"sum"`
	Subtotal []int        `json:"subtotal"`
	Problems []string     `json:"problems,omitempty"`
}

type SheetView struct {
	Title       string         `json:"title"`
	Language    string         `json:"language"`
	Players     []string       `json:"players"`
	Rows        []SheetRowView `json:"rows"`
	PointsLabel string         `json:"pointsLabel"`
	BonusLabel  string         `json:"bonusLabel"`
	SumLabel    string         `json:"sumLabel"`
	TotalLabel  string         `json:"totalLabel"`
	Total       []int          `json:"total"`
}
