// Package script runs a sequence of list operations written as short tokens,
// such as "push-back:3" or "pop-at:1", against a list of int64.
package script

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"ordered_list/list"

	"github.com/pkg/errors"
)

// arity is the number of integer arguments each operation takes.
var arity = map[string]int{
	"push-front": 1,
	"push-back":  1,
	"push-at":    2,
	"pop-front":  0,
	"pop-back":   0,
	"pop-at":     1,
	"replace":    2,
	"clear":      0,
	"count":      0,
	"get":        1,
	"index":      1,
	"destroy":    0,
}

// indexed lists the operations whose first argument is a list index, which
// must fit in an int.
var indexed = map[string]bool{
	"push-at": true,
	"pop-at":  true,
	"replace": true,
	"get":     true,
}

type Step struct {
	Op   string
	Args []int64
}

func (s Step) String() string {
	parts := []string{s.Op}
	for _, a := range s.Args {
		parts = append(parts, strconv.FormatInt(a, 10))
	}
	return strings.Join(parts, ":")
}

// Parse turns tokens of the form op[:arg[:arg]] into steps.
func Parse(tokens []string) ([]Step, error) {
	steps := make([]Step, 0, len(tokens))
	for _, tok := range tokens {
		parts := strings.Split(strings.TrimSpace(tok), ":")
		op := strings.ToLower(parts[0])
		n, ok := arity[op]
		if !ok {
			return nil, errors.Errorf("unknown operation %q", tok)
		}
		if len(parts)-1 != n {
			return nil, errors.Errorf("%s takes %d argument(s), got %d", op, n, len(parts)-1)
		}
		step := Step{Op: op}
		for i, p := range parts[1:] {
			bits := 64
			if i == 0 && indexed[op] {
				bits = strconv.IntSize
			}
			v, err := strconv.ParseInt(p, 10, bits)
			if err != nil {
				return nil, errors.Wrapf(err, "argument of %q", tok)
			}
			step.Args = append(step.Args, v)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Result is the outcome of one step. Value is empty for operations that only
// mutate.
type Result struct {
	Step  Step
	Value string
	Err   error
}

func (r Result) String() string {
	switch {
	case r.Err != nil:
		code, _ := list.Code(r.Err)
		return fmt.Sprintf("%-14s error %d: %v", r.Step, code, r.Err)
	case r.Value != "":
		return fmt.Sprintf("%-14s %s", r.Step, r.Value)
	default:
		return fmt.Sprintf("%-14s ok", r.Step)
	}
}

// Runner owns one list and applies steps to it in order.
type Runner struct {
	l      *list.List[int64]
	logger *log.Logger
}

// NewRunner creates a runner over an empty list. A nil logger disables
// per-step logging.
func NewRunner(logger *log.Logger, opts ...list.Option) (*Runner, error) {
	l, err := list.New[int64](opts...)
	if err != nil {
		return nil, err
	}
	return &Runner{l: l, logger: logger}, nil
}

// Run applies every step. A failing step is recorded and the run continues.
func (r *Runner) Run(steps []Step) []Result {
	results := make([]Result, 0, len(steps))
	for _, s := range steps {
		res := r.apply(s)
		if r.logger != nil {
			r.logger.Printf("%v", res)
		}
		results = append(results, res)
	}
	return results
}

func (r *Runner) apply(s Step) Result {
	res := Result{Step: s}
	arg := func(i int) int64 { return s.Args[i] }
	idx := func(i int) int { return int(s.Args[i]) }

	switch s.Op {
	case "push-front":
		v := arg(0)
		res.Err = r.l.PushFront(&v)
	case "push-back":
		v := arg(0)
		res.Err = r.l.PushBack(&v)
	case "push-at":
		v := arg(1)
		res.Err = r.l.PushAt(idx(0), &v)
	case "pop-front":
		res.Err = r.l.PopFront()
	case "pop-back":
		res.Err = r.l.PopBack()
	case "pop-at":
		res.Err = r.l.PopAt(idx(0))
	case "replace":
		v := arg(1)
		res.Err = r.l.Replace(idx(0), &v)
	case "clear":
		res.Err = r.l.Clear()
	case "count":
		var n int
		n, res.Err = r.l.Count()
		if res.Err == nil {
			res.Value = strconv.Itoa(n)
		}
	case "get":
		var p *int64
		res.Err = r.l.GetItem(idx(0), &p)
		if res.Err == nil {
			res.Value = strconv.FormatInt(*p, 10)
		}
	case "index":
		var i int
		v := arg(0)
		res.Err = r.l.GetIndex(&i, &v, list.Ordered[int64])
		if res.Err == nil {
			res.Value = strconv.Itoa(i)
		}
	case "destroy":
		res.Err = r.l.Destroy()
	default:
		res.Err = errors.Errorf("unknown operation %q", s.Op)
	}
	return res
}

// Contents returns the current elements, head first. It is empty once the
// list has been destroyed.
func (r *Runner) Contents() []int64 {
	out := []int64{}
	for _, v := range r.l.All() {
		out = append(out, v)
	}
	return out
}
