package manifest

import (
	"testing"

	"github.com/joeydtaylor/steeze-routes/pkg/routes"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, doc string) Config {
	t.Helper()
	var cfg Config
	require.NoError(t, toml.Unmarshal([]byte(doc), &cfg))
	return cfg
}

func TestValidate_Normalizes(t *testing.T) {
	cfg := decode(t, `
base_path = "api/"

[[route]]
name = "/hello"
handler = { type = "TEXT", body = "hello world" }

[[route]]
name = "status"
method = "get"
handler = { type = "json", body = '{ "ok" : true }', status = 201 }

[[route]]
name = "greet"
policy = { timeout_ms = 250 }
handler = { type = "inproc", name = "greeter" }
`)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/api", cfg.BasePath)
	require.Len(t, cfg.Routes, 3)

	hello := cfg.Routes[0]
	assert.Equal(t, "hello", hello.Name)
	assert.Equal(t, "GET", hello.Method)
	assert.Equal(t, HandlerText, hello.Handler.Type)
	assert.Equal(t, DefaultTextType, hello.Handler.ContentType)

	status := cfg.Routes[1]
	assert.Equal(t, "GET", status.Method)
	assert.Equal(t, `{"ok":true}`, status.Handler.Body)
	assert.Equal(t, DefaultJSONType, status.Handler.ContentType)
	assert.Equal(t, 201, status.Handler.Status)

	greet := cfg.Routes[2]
	assert.Equal(t, HandlerInproc, greet.Handler.Type)
	assert.Equal(t, 250, greet.Policy.TimeoutMS)
}

func TestValidate_EmptyManifest(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultBasePath, cfg.BasePath)
	assert.Empty(t, cfg.Routes)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		is   error
		msg  string
	}{
		{
			name: "post route",
			doc:  "[[route]]\nname = \"hello\"\nmethod = \"POST\"\nhandler = { type = \"text\", body = \"x\" }",
			is:   ErrUnsupportedMethod,
		},
		{
			name: "duplicate name",
			doc:  "[[route]]\nname = \"hello\"\nhandler = { type = \"text\" }\n[[route]]\nname = \"hello/\"\nhandler = { type = \"text\" }",
			is:   ErrDuplicateName,
		},
		{
			name: "malformed name",
			doc:  "[[route]]\nname = \"{id}\"\nhandler = { type = \"text\" }",
			is:   routes.ErrInvalidName,
		},
		{
			name: "unknown handler",
			doc:  "[[route]]\nname = \"x\"\nhandler = { type = \"proxy\" }",
			msg:  `unknown handler type "proxy"`,
		},
		{
			name: "inproc without name",
			doc:  "[[route]]\nname = \"x\"\nhandler = { type = \"inproc\" }",
			msg:  "handler.name required for inproc",
		},
		{
			name: "bad json",
			doc:  "[[route]]\nname = \"x\"\nhandler = { type = \"json\", body = \"{\" }",
			msg:  "handler.body",
		},
		{
			name: "bad status",
			doc:  "[[route]]\nname = \"x\"\nhandler = { type = \"text\", status = 700 }",
			msg:  "handler.status 700 out of range",
		},
		{
			name: "negative timeout",
			doc:  "[[route]]\nname = \"x\"\npolicy = { timeout_ms = -1 }\nhandler = { type = \"text\" }",
			msg:  "policy.timeout_ms must be >= 0",
		},
		{
			name: "bad base path",
			doc:  "base_path = \"/{v}\"",
			msg:  "base_path",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := decode(t, tt.doc)
			err := cfg.Validate()
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}
