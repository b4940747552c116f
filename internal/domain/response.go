package domain

// Button is one selectable option in an outbound menu
type Button struct {
	Label string
	Token string
}

// Response is structured outbound content. Presentation (markup, keyboard
// rendering) belongs to the transport adapter, not the dialog core.
type Response struct {
	Title    string
	Body     []string
	Keyboard [][]Button // rows of buttons; nil means no menu
}
