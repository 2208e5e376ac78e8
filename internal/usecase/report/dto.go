package report

import "fuel-dispatch-monitor/internal/domain/dispatch"

// Mode selects which identifier the free-text query matches against.
type Mode string

const (
	ModeDispatch Mode = "dispatch"
	ModeVehicle  Mode = "vehicle"
	ModeDepot    Mode = "depot"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeDispatch, ModeVehicle, ModeDepot:
		return true
	}
	return false
}

// Request is one report run. Query is a case-insensitive substring match
// against the mode's identifier; From/To are YYYY-MM-DD bounds on the
// dispatch timestamp, malformed or empty strings meaning unbounded.
type Request struct {
	Mode  Mode   `form:"mode"`
	Query string `form:"q"`
	From  string `form:"from"`
	To    string `form:"to"`
}

// Row is one result line: the rendered cells in column order plus the
// task's status, which the UI renders as a pill after the cells.
type Row struct {
	Cells  []string        `json:"cells"`
	Status dispatch.Status `json:"status"`
}

// Result is the tabular projection for the requested mode. Column order
// is part of the visible contract.
type Result struct {
	Mode    Mode     `json:"mode"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}
