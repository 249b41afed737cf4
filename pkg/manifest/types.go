package manifest

// HandlerType enumerates the supported handler kinds.
type HandlerType string

const (
	HandlerText   HandlerType = "text"
	HandlerJSON   HandlerType = "json"
	HandlerInproc HandlerType = "inproc"
)

const (
	DefaultBasePath      = "/"
	DefaultTextType      = "text/plain; charset=utf-8"
	DefaultJSONType      = "application/json"
	DefaultHandlerMethod = "GET"
)
