package template

import (
	"strconv"

	"github.com/waflow/waflow/pkg/models"
	"github.com/waflow/waflow/pkg/provider"
)

// BuildComponents assembles the provider template components for one send:
// body parameters in the template's declared format, plus the header media
// parameter when the template carries a media header. mediaURL overrides
// the component's stored URL (the rehost path passes a fresh one).
func BuildComponents(spec Spec, values map[string]string, mediaURL string) []provider.TemplateComponent {
	var out []provider.TemplateComponent

	if header := headerComponent(spec); header != nil && header.Format != "" && header.Format != "TEXT" {
		url := mediaURL
		if url == "" {
			url = header.MediaURL
		}
		if url != "" {
			out = append(out, provider.TemplateComponent{
				Type:       "header",
				Parameters: []provider.TemplateParameter{mediaParameter(header.Format, url)},
			})
		}
	}

	if params := bodyParameters(spec, values); len(params) > 0 {
		out = append(out, provider.TemplateComponent{
			Type:       "body",
			Parameters: params,
		})
	}

	return out
}

// headerComponent returns the template's HEADER component, or nil.
func headerComponent(spec Spec) *models.TemplateComponent {
	for i := range spec.Components {
		if spec.Components[i].Type == "HEADER" {
			return &spec.Components[i]
		}
	}
	return nil
}

// HeaderMediaID returns the media handle of a media header, or "".
func HeaderMediaID(spec Spec) string {
	if h := headerComponent(spec); h != nil {
		return h.MediaID
	}
	return ""
}

// HasMediaHeader reports whether the template's header carries media.
func HasMediaHeader(spec Spec) bool {
	h := headerComponent(spec)
	return h != nil && h.Format != "" && h.Format != "TEXT"
}

func mediaParameter(format, url string) provider.TemplateParameter {
	link := &provider.MediaLink{Link: url}
	switch format {
	case "VIDEO":
		return provider.TemplateParameter{Type: "video", Video: link}
	case "DOCUMENT":
		return provider.TemplateParameter{Type: "document", Document: link}
	default:
		return provider.TemplateParameter{Type: "image", Image: link}
	}
}

// bodyParameters orders resolved values into provider parameters.
// Positional templates emit values for {{1}}..{{n}} in order; named
// templates tag each parameter with its name.
func bodyParameters(spec Spec, values map[string]string) []provider.TemplateParameter {
	required := RequiredVariables(spec)
	var params []provider.TemplateParameter
	for _, key := range required {
		p := provider.TemplateParameter{Type: "text", Text: values[key]}
		if spec.ParameterFormat == models.ParameterNamed {
			if _, err := strconv.Atoi(key); err == nil {
				// numeric placeholder inside a named template; precheck
				// already flagged the authoring error
				continue
			}
			p.ParameterName = key
		}
		params = append(params, p)
	}
	return params
}
