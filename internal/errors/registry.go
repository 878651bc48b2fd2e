package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Runtime errors (E001-E099)

	"E001": {
		Category: CategoryRuntime,
		Message:  "Listener is not callable",
		Detail:   "EffectRegistry.Add and AddGlobal require a non-nil function.",
		DocURL:   "https://github.com/angeljsb/reactive/blob/main/docs/errors.md#e001",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Component template is nil",
		Detail:   "A component cannot render without a template function.",
		DocURL:   "https://github.com/angeljsb/reactive/blob/main/docs/errors.md#e002",
	},

	// Parse errors (E040-E059)

	"E040": {
		Category: CategoryParse,
		Message:  "Markup has no root node",
		Detail:   "rdom.Parse requires markup with exactly one top-level node.",
		DocURL:   "https://github.com/angeljsb/reactive/blob/main/docs/errors.md#e040",
	},
	"E041": {
		Category: CategoryParse,
		Message:  "Markup has multiple root nodes",
		Detail:   "Wrap sibling top-level nodes in a single container element.",
		DocURL:   "https://github.com/angeljsb/reactive/blob/main/docs/errors.md#e041",
	},

	// Config errors (E060-E079)

	"E060": {
		Category: CategoryConfig,
		Message:  "Configuration file is invalid",
		Detail:   "The reactive.json/reactive.yaml file could not be parsed.",
		DocURL:   "https://github.com/angeljsb/reactive/blob/main/docs/errors.md#e060",
	},
	"E061": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The preview server port must be between 1 and 65535.",
		DocURL:   "https://github.com/angeljsb/reactive/blob/main/docs/errors.md#e061",
	},

	// Serve errors (E080-E099)

	"E080": {
		Category: CategoryServe,
		Message:  "Unknown page",
		Detail:   "No component kind is mounted at the requested path.",
		DocURL:   "https://github.com/angeljsb/reactive/blob/main/docs/errors.md#e080",
	},
	"E081": {
		Category: CategoryServe,
		Message:  "Event target not found",
		Detail:   "The event's node path no longer resolves in the live tree. The component may have re-rendered into a different shape.",
		DocURL:   "https://github.com/angeljsb/reactive/blob/main/docs/errors.md#e081",
	},

	// CLI errors (E100-E119)

	"E100": {
		Category: CategoryCLI,
		Message:  "Unknown demo",
		Detail:   "The requested demo is not part of the preview gallery.",
		DocURL:   "https://github.com/angeljsb/reactive/blob/main/docs/errors.md#e100",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	tmpl, ok := registry[code]
	return tmpl, ok
}
