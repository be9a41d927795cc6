package provider

import "github.com/waflow/waflow/pkg/models"

// Outbound message payloads in provider-native shape. Builders keep the
// field plumbing out of the engine and dispatcher.

// Message is the envelope for POST /{phone_number_id}/messages.
type Message struct {
	MessagingProduct string       `json:"messaging_product"`
	RecipientType    string       `json:"recipient_type,omitempty"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             *TextBody    `json:"text,omitempty"`
	Template         *Template    `json:"template,omitempty"`
	Interactive      *Interactive `json:"interactive,omitempty"`
}

// TextBody is a plain text message body.
type TextBody struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url,omitempty"`
}

// Template references a registered template plus its component parameters.
type Template struct {
	Name       string              `json:"name"`
	Language   TemplateLanguage    `json:"language"`
	Components []TemplateComponent `json:"components,omitempty"`
}

// TemplateLanguage selects the registered template translation.
type TemplateLanguage struct {
	Code string `json:"code"`
}

// TemplateComponent carries parameters for one template section.
type TemplateComponent struct {
	Type       string              `json:"type"` // header, body, button
	SubType    string              `json:"sub_type,omitempty"`
	Index      string              `json:"index,omitempty"`
	Parameters []TemplateParameter `json:"parameters,omitempty"`
}

// TemplateParameter is a single substituted value.
type TemplateParameter struct {
	Type          string      `json:"type"` // text, image, video, document
	ParameterName string      `json:"parameter_name,omitempty"`
	Text          string      `json:"text,omitempty"`
	Image         *MediaLink  `json:"image,omitempty"`
	Video         *MediaLink  `json:"video,omitempty"`
	Document      *MediaLink  `json:"document,omitempty"`
}

// MediaLink points a media parameter at a hosted URL.
type MediaLink struct {
	Link string `json:"link"`
}

// Interactive is the envelope for list and button messages.
type Interactive struct {
	Type   string             `json:"type"` // list
	Header *InteractiveHeader `json:"header,omitempty"`
	Body   TextBody           `json:"body"`
	Footer *TextBody          `json:"footer,omitempty"`
	Action InteractiveAction  `json:"action"`
}

// InteractiveHeader is the optional text header of an interactive message.
type InteractiveHeader struct {
	Type string `json:"type"` // text
	Text string `json:"text"`
}

// InteractiveAction holds the list button and sections.
type InteractiveAction struct {
	Button   string        `json:"button,omitempty"`
	Sections []ListSection `json:"sections,omitempty"`
}

// ListSection groups rows of an interactive list.
type ListSection struct {
	Title string    `json:"title,omitempty"`
	Rows  []ListRow `json:"rows"`
}

// ListRow is one selectable row.
type ListRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// NewTextMessage builds a plain text message.
func NewTextMessage(to, body string) *Message {
	return &Message{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             &TextBody{Body: body},
	}
}

// NewListMessage builds an interactive list message from the engine's
// list model. Rows land in a single section, matching the authoring UI.
func NewListMessage(to string, list models.ListMessage) *Message {
	rows := make([]ListRow, 0, len(list.Rows))
	for _, r := range list.Rows {
		rows = append(rows, ListRow{ID: r.ID, Title: r.Title, Description: r.Description})
	}
	msg := &Message{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "interactive",
		Interactive: &Interactive{
			Type: "list",
			Body: TextBody{Body: list.Body},
			Action: InteractiveAction{
				Button:   list.ButtonText,
				Sections: []ListSection{{Rows: rows}},
			},
		},
	}
	if list.Header != "" {
		msg.Interactive.Header = &InteractiveHeader{Type: "text", Text: list.Header}
	}
	if list.Footer != "" {
		msg.Interactive.Footer = &TextBody{Body: list.Footer}
	}
	return msg
}

// NewTemplateMessage builds a template send with pre-resolved components.
func NewTemplateMessage(to, name, language string, components []TemplateComponent) *Message {
	return &Message{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template: &Template{
			Name:       name,
			Language:   TemplateLanguage{Code: language},
			Components: components,
		},
	}
}
