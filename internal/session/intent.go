package session

// IntentKind identifies a user intent.
type IntentKind int

const (
	// IntentStart begins a new session, discarding any previous state.
	IntentStart IntentKind = iota
	// IntentSubmitChoice answers a multiple-choice question.
	IntentSubmitChoice
	// IntentReorder replaces the working line order.
	IntentReorder
	// IntentMoveLine moves one working line to another index.
	IntentMoveLine
	// IntentSubmitReorder answers a reorder question with the working order.
	IntentSubmitReorder
	// IntentAdvance moves past an answered question.
	IntentAdvance
)

// String returns a readable intent label.
func (k IntentKind) String() string {
	switch k {
	case IntentStart:
		return "start"
	case IntentSubmitChoice:
		return "submit_choice"
	case IntentReorder:
		return "reorder"
	case IntentMoveLine:
		return "move_line"
	case IntentSubmitReorder:
		return "submit_reorder"
	case IntentAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// Intent carries a user intent and its payload.
type Intent struct {
	Kind  IntentKind
	Index int
	Order []string
	From  int
	To    int
}

// Start returns a start intent.
func Start() Intent { return Intent{Kind: IntentStart} }

// SubmitChoice returns a multiple-choice answer intent.
func SubmitChoice(index int) Intent { return Intent{Kind: IntentSubmitChoice, Index: index} }

// Reorder returns a working-order replacement intent.
func Reorder(order []string) Intent { return Intent{Kind: IntentReorder, Order: order} }

// MoveLine returns a single line move intent.
func MoveLine(from, to int) Intent { return Intent{Kind: IntentMoveLine, From: from, To: to} }

// SubmitReorder returns a reorder answer intent.
func SubmitReorder() Intent { return Intent{Kind: IntentSubmitReorder} }

// Advance returns an advance intent.
func Advance() Intent { return Intent{Kind: IntentAdvance} }
