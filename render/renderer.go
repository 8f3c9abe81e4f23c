package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"bannerfetch/inject"
)

// DefaultShell runs $(...) substitutions.
const DefaultShell = "sh"

var (
	errUnterminated = errors.New("unterminated expression")
	errEmptyName    = errors.New("empty variable name")
)

// Renderer expands templates against an inject.Context.
//
// Template syntax:
//
//	${name}    template variable, "" when unset
//	$(command) stdout of command run by the shell with the context's shell environment
//	%{lua}     value of a Lua expression, or print output of a Lua chunk
//	\x         the literal character x
type Renderer struct {
	ctx   *inject.Context
	shell string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithShell sets the shell used for $(...) substitutions.
func WithShell(shell string) Option {
	return func(r *Renderer) {
		if shell != "" {
			r.shell = shell
		}
	}
}

// NewRenderer returns a Renderer reading from c.
func NewRenderer(c *inject.Context, opts ...Option) *Renderer {
	r := &Renderer{ctx: c, shell: DefaultShell}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render expands src. Nothing is returned on failure; callers never see a
// partially rendered template.
func (r *Renderer) Render(src Source) (string, error) {
	text := src.Text
	var out strings.Builder

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '\\' && i+1 < len(text):
			i++
			out.WriteByte(text[i])

		case ch == '$' && i+1 < len(text) && text[i+1] == '{':
			end := strings.IndexByte(text[i+2:], '}')
			if end < 0 {
				return "", &ExpandError{Source: src.Name, Offset: i, Err: errUnterminated}
			}
			name := strings.TrimSpace(text[i+2 : i+2+end])
			if name == "" {
				return "", &ExpandError{Source: src.Name, Offset: i, Err: errEmptyName}
			}
			v, _ := r.ctx.Lookup(name)
			out.WriteString(v)
			i += 2 + end

		case ch == '$' && i+1 < len(text) && text[i+1] == '(':
			end, ok := matching(text, i+1, '(', ')')
			if !ok {
				return "", &ExpandError{Source: src.Name, Offset: i, Err: errUnterminated}
			}
			v, err := r.runCommand(text[i+2 : end])
			if err != nil {
				return "", &ExpandError{Source: src.Name, Offset: i, Err: err}
			}
			out.WriteString(v)
			i = end

		case ch == '%' && i+1 < len(text) && text[i+1] == '{':
			end, ok := matching(text, i+1, '{', '}')
			if !ok {
				return "", &ExpandError{Source: src.Name, Offset: i, Err: errUnterminated}
			}
			v, err := r.evalLua(text[i+2 : end])
			if err != nil {
				return "", &ExpandError{Source: src.Name, Offset: i, Err: err}
			}
			out.WriteString(v)
			i = end

		default:
			out.WriteByte(ch)
		}
	}
	return out.String(), nil
}

// matching returns the index of the delimiter closing the one at open.
func matching(text string, open int, left, right byte) (int, bool) {
	depth := 0
	for j := open; j < len(text); j++ {
		switch text[j] {
		case left:
			depth++
		case right:
			depth--
			if depth == 0 {
				return j, true
			}
		}
	}
	return 0, false
}

func (r *Renderer) runCommand(command string) (string, error) {
	cmd := exec.Command(r.shell, "-c", command)
	cmd.Env = append(os.Environ(), r.ctx.ShellEnv()...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("command %q: %w: %s", command, err, msg)
		}
		return "", fmt.Errorf("command %q: %w", command, err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

func (r *Renderer) evalLua(code string) (string, error) {
	L := r.ctx.Lua()
	var out strings.Builder

	prevPrint := L.GetGlobal("print")
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		for i := 1; i <= L.GetTop(); i++ {
			if i > 1 {
				out.WriteByte('\t')
			}
			out.WriteString(L.ToStringMeta(L.Get(i)).String())
		}
		out.WriteByte('\n')
		return 0
	}))
	defer L.SetGlobal("print", prevPrint)

	fn, err := L.LoadString("return " + code)
	if err != nil {
		if fn, err = L.LoadString(code); err != nil {
			return "", fmt.Errorf("lua: %w", err)
		}
	}

	top := L.GetTop()
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		L.SetTop(top)
		return "", fmt.Errorf("lua: %w", err)
	}
	for i := top + 1; i <= L.GetTop(); i++ {
		if v := L.Get(i); v != lua.LNil {
			out.WriteString(L.ToStringMeta(v).String())
		}
	}
	L.SetTop(top)

	return strings.TrimRight(out.String(), "\n"), nil
}
