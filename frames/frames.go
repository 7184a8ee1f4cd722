// Package frames drives a single carousel without a terminal: it mounts the
// carousel on a page, applies a scripted list of operations and writes the
// resulting frame after each one.
package frames

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"orthoslide/carousel"
	"orthoslide/config"
	"orthoslide/page"
)

// OpKind is a scripted carousel operation.
type OpKind int

const (
	OpNext OpKind = iota
	OpPrev
	OpGoTo
	OpResize
)

// Op is one step of a script.
type Op struct {
	Kind OpKind
	// Arg is the target index for OpGoTo and the viewport width for OpResize.
	Arg int
}

func (o Op) String() string {
	switch o.Kind {
	case OpNext:
		return "next"
	case OpPrev:
		return "prev"
	case OpGoTo:
		return fmt.Sprintf("goto:%d", o.Arg)
	case OpResize:
		return fmt.Sprintf("resize:%d", o.Arg)
	default:
		return "unknown"
	}
}

// ParseOp parses next, prev, goto:N or resize:W.
func ParseOp(s string) (Op, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	switch strings.ToLower(name) {
	case "next":
		if hasArg {
			return Op{}, fmt.Errorf("op %q takes no argument", s)
		}
		return Op{Kind: OpNext}, nil
	case "prev", "previous":
		if hasArg {
			return Op{}, fmt.Errorf("op %q takes no argument", s)
		}
		return Op{Kind: OpPrev}, nil
	case "goto":
		n, err := parseArg(s, arg, hasArg)
		if err != nil {
			return Op{}, err
		}
		return Op{Kind: OpGoTo, Arg: n}, nil
	case "resize":
		n, err := parseArg(s, arg, hasArg)
		if err != nil {
			return Op{}, err
		}
		if n < 0 {
			return Op{}, fmt.Errorf("op %q: width must not be negative", s)
		}
		return Op{Kind: OpResize, Arg: n}, nil
	default:
		return Op{}, fmt.Errorf("unknown op %q (want next, prev, goto:N or resize:W)", s)
	}
}

func parseArg(op, arg string, hasArg bool) (int, error) {
	if !hasArg || arg == "" {
		return 0, fmt.Errorf("op %q needs an argument", op)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("op %q: %w", op, err)
	}
	return n, nil
}

// ParseOps parses every argument, stopping at the first bad one.
func ParseOps(args []string) ([]Op, error) {
	ops := make([]Op, 0, len(args))
	for _, a := range args {
		op, err := ParseOp(a)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Apply runs the op against c, resizing pg's viewport for OpResize.
func (o Op) Apply(c *carousel.Carousel, pg *page.Page) {
	switch o.Kind {
	case OpNext:
		c.Next()
	case OpPrev:
		c.Previous()
	case OpGoTo:
		c.GoTo(o.Arg)
	case OpResize:
		pg.SetViewportWidth(o.Arg)
		c.RecomputeVisibleCount(o.Arg)
	}
}

// Format renders a frame as a single line.
func Format(step string, f carousel.Frame) string {
	return fmt.Sprintf("%-12s index=%d visible=%d window=[%d,%d) offset=%d prev=%s next=%s",
		step, f.Index, f.VisibleCount, f.WindowStart, f.WindowEnd, f.Offset,
		enabled(!f.PrevDisabled), enabled(!f.NextDisabled))
}

func enabled(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Run mounts the carousel configured by cc on pg at widthPx, then writes
// the mount frame and one frame per op to w. Auto-advance is never started.
func Run(w io.Writer, pg *page.Page, cc config.CarouselConfig, widthPx int, ops []Op) error {
	cc.AutoAdvanceMs = 0
	pg.SetViewportWidth(widthPx)

	c, ok := carousel.Mount(pg, cc.Selector, cc.Options(nil, nil))
	if !ok {
		return fmt.Errorf("page %q has no section %s", pg.Title, cc.Selector)
	}

	if _, err := fmt.Fprintln(w, Format("mount:"+strconv.Itoa(widthPx), c.Frame())); err != nil {
		return err
	}
	for _, op := range ops {
		op.Apply(c, pg)
		if _, err := fmt.Fprintln(w, Format(op.String(), c.Frame())); err != nil {
			return err
		}
	}
	return nil
}
