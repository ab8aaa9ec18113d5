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
	// ============================================
	// Navigation Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryNavigation,
		Message:  "Route not found",
		Detail:   "The path did not match any registered route. The not-found fallback is rendered instead.",
		DocURL:   "https://lazynav.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryNavigation,
		Message:  "Invalid navigation path",
		Detail:   "The path could not be canonicalized. Paths must not contain backslashes or null bytes.",
		DocURL:   "https://lazynav.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryNavigation,
		Message:  "Route registration invalid",
		Detail:   "Registered routes must implement either EagerRoute or LazyRoute.",
		DocURL:   "https://lazynav.dev/docs/errors/E003",
	},

	// ============================================
	// Module Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryModule,
		Message:  "Module not registered",
		Detail:   "A lazy route referenced a module ID with no registered source. The load settles Failed and the route's region renders its error view.",
		DocURL:   "https://lazynav.dev/docs/errors/E020",
	},
	"E021": {
		Category: CategoryModule,
		Message:  "Module load failed",
		Detail:   "The module source returned an error. The outcome is cached; re-navigation renders the cached failure without retrying.",
		DocURL:   "https://lazynav.dev/docs/errors/E021",
	},
	"E022": {
		Category: CategoryModule,
		Message:  "Module code is not a render function",
		Detail:   "A view module's code must be a module.RenderFunc. Other payloads are only valid for non-view modules asserted by their consumers.",
		DocURL:   "https://lazynav.dev/docs/errors/E022",
	},

	// ============================================
	// Data Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryData,
		Message:  "Data fetch failed",
		Detail:   "A route's data fetcher returned an error. The failure is confined to the suspense region that awaits it.",
		DocURL:   "https://lazynav.dev/docs/errors/E040",
	},
	"E041": {
		Category: CategoryData,
		Message:  "Response deserialization failed",
		Detail:   "The fetched payload could not be decoded into the expected shape.",
		DocURL:   "https://lazynav.dev/docs/errors/E041",
	},

	// ============================================
	// Config Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be parsed as JSON.",
		DocURL:   "https://lazynav.dev/docs/errors/E060",
	},
	"E061": {
		Category: CategoryConfig,
		Message:  "Invalid listen address",
		Detail:   "The server address must be of the form host:port.",
		DocURL:   "https://lazynav.dev/docs/errors/E061",
	},
	"E062": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "The log level must be one of: debug, info, warn, error.",
		DocURL:   "https://lazynav.dev/docs/errors/E062",
	},
}

// Register adds a custom error template to the registry.
// Used by applications to define their own error codes.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

// Lookup returns the template for a code, if registered.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
