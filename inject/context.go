package inject

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"bannerfetch/logging"
)

// Context receives published facts and replicates each one into three
// independent surfaces:
//
//   - template variables, keyed by the dotted name ("info.width"),
//   - environment variables, keyed by the underscored name ("info_width"),
//     mirrored into a shell-safe map used when templates run commands,
//   - Lua globals, keyed by the camelCase name ("infoWidth").
//
// Writes are last-write-wins. A Context is owned by one goroutine.
type Context struct {
	vars     map[string]string
	env      map[string]string
	shellEnv map[string]string
	state    *lua.LState
	log      *slog.Logger
	closed   bool
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger used for debug tracing of writes.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.log = l }
}

// NewContext creates an empty Context with a fresh Lua state. Call Close to
// release the Lua state.
func NewContext(opts ...Option) *Context {
	c := &Context{
		vars:     make(map[string]string),
		env:      make(map[string]string),
		shellEnv: make(map[string]string),
		state:    lua.NewState(),
		log:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set publishes value under key on every surface. The template and
// environment surfaces accept any value; the Lua surface may reject the
// value or the derived name, in which case a *SurfaceError is returned and
// the other surfaces keep the value.
func (c *Context) Set(key string, value any) error {
	if c.closed {
		return ErrClosed
	}
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidName)
	}

	s := formatValue(value)
	c.vars[key] = s

	envKey := EnvName(key)
	c.env[envKey] = s
	c.shellEnv[envKey] = strings.ReplaceAll(s, "\x00", "")

	if err := c.setLua(key, value); err != nil {
		return &SurfaceError{Surface: "lua", Key: key, Err: err}
	}

	c.log.Debug("Published fact", "key", key)
	return nil
}

func (c *Context) setLua(key string, value any) error {
	name := LuaName(key)
	if err := validLuaName(name); err != nil {
		return err
	}
	lv, err := toLua(c.state, value)
	if err != nil {
		return err
	}
	c.state.SetGlobal(name, lv)
	return nil
}

// Lookup returns a template variable.
func (c *Context) Lookup(key string) (string, bool) {
	v, ok := c.vars[key]
	return v, ok
}

// Vars returns a copy of the template variables.
func (c *Context) Vars() map[string]string {
	return copyMap(c.vars)
}

// Env returns a copy of the environment surface.
func (c *Context) Env() map[string]string {
	return copyMap(c.env)
}

// ShellEnv returns the shell mirror as sorted KEY=value entries, ready to be
// appended to exec.Cmd.Env.
func (c *Context) ShellEnv() []string {
	out := make([]string, 0, len(c.shellEnv))
	for k, v := range c.shellEnv {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// Lua returns the scripting runtime holding the Lua surface.
func (c *Context) Lua() *lua.LState {
	return c.state
}

// Close releases the Lua state. Further writes fail with ErrClosed.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.state.Close()
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []string:
		return strings.Join(t, ", ")
	default:
		return fmt.Sprint(t)
	}
}

func toLua(L *lua.LState, v any) (lua.LValue, error) {
	switch t := v.(type) {
	case nil:
		return lua.LNil, nil
	case string:
		return lua.LString(t), nil
	case int:
		return lua.LNumber(t), nil
	case int64:
		return lua.LNumber(t), nil
	case uint64:
		return lua.LNumber(t), nil
	case float64:
		return lua.LNumber(t), nil
	case bool:
		return lua.LBool(t), nil
	case []string:
		tbl := L.NewTable()
		for _, s := range t {
			tbl.Append(lua.LString(s))
		}
		return tbl, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
