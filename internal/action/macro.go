package action

import (
	"strings"
	"time"

	"github.com/galago-remap/scte/internal/param"
	"github.com/galago-remap/scte/internal/paramcheck"
)

// macroTick is the pacing unit a macro's steps and embedded sleep() delays
// are quantified in.
const macroTick = 12500 * time.Microsecond

// macroPause is how long an ordinary step stays held before it releases,
// and the gap before the next step's press, when no explicit sleep() step
// says otherwise.
const macroPause = 2 * macroTick

// macroPhase tracks which half of the current step macroAction is in: it
// has pressed the active child and is waiting out the hold before
// releasing it, or it has released the active child and is about to move
// on (possibly through one or more sleep() entries) to the next press.
type macroPhase int

const (
	macroPhasePress macroPhase = iota
	macroPhaseRelease
)

var macroChecker = paramcheck.New("a*")

func init() { Register("macro", macroConstructor) }

// macroAction fires its children one at a time in sequence instead of all
// at once like multiAction: each non-sleep child is pressed, held for
// macroPause, then released before the sequence advances — an embedded
// sleep() step contributes its own duration as the gap to the next press
// instead of macroPause. Held down past the end of the sequence, it either
// stops (the default) or loops back to the first step, depending on
// whether repeat() wraps it.
type macroAction struct {
	children []Action
	repeat   bool
	index    int
	phase    macroPhase
	running  bool
	task     ScheduledTask
}

func macroConstructor(keyword string, params []param.Parameter) (Action, error) {
	if err := macroChecker.Check(keyword, params); err != nil {
		return nil, err
	}
	children := make([]Action, len(params))
	for i, p := range params {
		children[i] = actionFromParam(p)
	}
	return newMacro(children), nil
}

// newMacro is also used when repeat() is compressed, to wrap a single
// non-macro child in a one-step macro.
func newMacro(children []Action) *macroAction {
	return &macroAction{children: children}
}

func (ma *macroAction) Keyword() string { return "macro" }
func (ma *macroAction) Flags() Flags    { return AFAction }

func (ma *macroAction) ToString() string {
	parts := make([]string, len(ma.children))
	for i, c := range ma.children {
		parts[i] = c.ToString()
	}
	return "macro(" + strings.Join(parts, ", ") + ")"
}

func (ma *macroAction) Describe(ctx DescContext) string {
	parts := make([]string, 0, len(ma.children))
	for _, c := range ma.children {
		parts = append(parts, c.Describe(ctx))
	}
	return strings.Join(parts, ", ")
}

func (ma *macroAction) Compress() Action {
	for i := range ma.children {
		ma.children[i] = ma.children[i].Compress()
	}
	return ma
}

func (ma *macroAction) GetChildren() []Action { return ma.children }

func (ma *macroAction) setRepeat(repeat bool) { ma.repeat = repeat }

// step advances the sequence by exactly one press or one release, then
// schedules the next call: pressing a child schedules its release after
// macroPause; releasing a child re-enters step immediately so a run of
// sleep() entries (or the end of the sequence) is handled without an extra
// delay tacked on.
func (ma *macroAction) step(m Mapper) {
	if ma.phase == macroPhaseRelease {
		DispatchButtonRelease(ma.children[ma.index], m)
		ma.index++
		ma.phase = macroPhasePress
		ma.step(m)
		return
	}

	for ma.index < len(ma.children) {
		sleep, ok := ma.children[ma.index].(*sleepRepeatAction)
		if !ok || sleep.keyword != "sleep" {
			break
		}
		ma.index++
		ma.task = m.Schedule(sleep.duration(), func() { ma.step(m) })
		return
	}

	if ma.index >= len(ma.children) {
		if !ma.repeat {
			ma.running = false
			return
		}
		ma.index = 0
		ma.step(m)
		return
	}

	DispatchButtonPress(ma.children[ma.index], m)
	ma.phase = macroPhaseRelease
	ma.task = m.Schedule(macroPause, func() { ma.step(m) })
}

func (ma *macroAction) ButtonPress(m Mapper) {
	if ma.running {
		return
	}
	ma.running = true
	ma.index = 0
	ma.phase = macroPhasePress
	ma.step(m)
}

func (ma *macroAction) ButtonRelease(m Mapper) {
	ma.repeat = false
}

// CombineMacro builds a two-step macro out of a1 and a2, flattening either
// side that is already a macro instead of nesting — the combinator behind
// the parser's ';' sequencing operator (button(1); button(2)).
func CombineMacro(a1, a2 Action) Action {
	children := flattenMacro(a1)
	children = append(children, flattenMacro(a2)...)
	return newMacro(children)
}

func flattenMacro(a Action) []Action {
	if m, ok := a.(*macroAction); ok {
		return m.children
	}
	return []Action{a}
}
