package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lintang-b-s/roadnet/pkg/roadmap"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrFieldCount     = errors.New("wrong number of fields")
	ErrInvalidNumber  = errors.New("invalid number")
)

const maxLineSize = 1 << 20

/*
Interpreter. executes one command per line against a roadmap.Map.

	addRoad;Alpha;Beta;10;2000
	newRoute;5;Alpha;Beta
	getRouteDescription;5        -> stdout: 5;Alpha;10;2000;Beta
	repairRoad;Alpha;Beta;1990   -> stderr: ERROR 4

a failed line prints "ERROR <line number>" to stderr and the next line is processed.
*/
type Interpreter struct {
	m       *roadmap.Map
	stdout  io.Writer
	stderr  io.Writer
	onError func(lineNumber int, line string, err error)
}

type Option func(*Interpreter)

// WithErrorHook. called with the cause of every failed line.
func WithErrorHook(hook func(lineNumber int, line string, err error)) Option {
	return func(in *Interpreter) {
		in.onError = hook
	}
}

func NewInterpreter(m *roadmap.Map, stdout, stderr io.Writer, opts ...Option) *Interpreter {
	in := &Interpreter{
		m:      m,
		stdout: stdout,
		stderr: stderr,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Run. execute every line of r. the returned error is a read error, failed lines never stop Run.
func (in *Interpreter) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNumber := 0
	for sc.Scan() {
		lineNumber++
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		out, err := in.Execute(line)
		if err != nil {
			if ferr := in.flushStdout(); ferr != nil {
				return ferr
			}
			if in.onError != nil {
				in.onError(lineNumber, line, err)
			}
			if _, werr := fmt.Fprintf(in.stderr, "ERROR %d\n", lineNumber); werr != nil {
				return werr
			}
			continue
		}
		if out != nil {
			if _, werr := fmt.Fprintln(in.stdout, *out); werr != nil {
				return werr
			}
		}
	}
	return sc.Err()
}

type flusher interface {
	Flush() error
}

// flushStdout. a buffered stdout is flushed before anything goes to stderr, so both streams keep the line order
// when they end up in the same terminal or pipe.
func (in *Interpreter) flushStdout() error {
	if f, ok := in.stdout.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Execute. run a single command line. out is non nil for commands that print something.
func (in *Interpreter) Execute(line string) (*string, error) {
	fields := strings.Split(line, ";")
	switch fields[0] {
	case "addRoad":
		if len(fields) != 5 {
			return nil, ErrFieldCount
		}
		length, err := parseUint32(fields[3])
		if err != nil {
			return nil, err
		}
		year, err := parseInt32(fields[4])
		if err != nil {
			return nil, err
		}
		return nil, in.m.AddRoad(fields[1], fields[2], length, year)

	case "repairRoad":
		if len(fields) != 4 {
			return nil, ErrFieldCount
		}
		year, err := parseInt32(fields[3])
		if err != nil {
			return nil, err
		}
		return nil, in.m.RepairRoad(fields[1], fields[2], year)

	case "getRouteDescription":
		if len(fields) != 2 {
			return nil, ErrFieldCount
		}
		routeID, err := parseUint32(fields[1])
		if err != nil {
			return nil, err
		}
		desc := in.m.GetRouteDescription(routeID)
		return &desc, nil

	case "newRoute":
		if len(fields) != 4 {
			return nil, ErrFieldCount
		}
		routeID, err := parseUint32(fields[1])
		if err != nil {
			return nil, err
		}
		return nil, in.m.NewRoute(routeID, fields[2], fields[3])

	case "extendRoute":
		if len(fields) != 3 {
			return nil, ErrFieldCount
		}
		routeID, err := parseUint32(fields[1])
		if err != nil {
			return nil, err
		}
		return nil, in.m.ExtendRoute(routeID, fields[2])

	case "removeRoad":
		if len(fields) != 3 {
			return nil, ErrFieldCount
		}
		return nil, in.m.RemoveRoad(fields[1], fields[2])

	case "removeRoute":
		if len(fields) != 2 {
			return nil, ErrFieldCount
		}
		routeID, err := parseUint32(fields[1])
		if err != nil {
			return nil, err
		}
		return nil, in.m.RemoveRoute(routeID)
	}

	if !startsWithDigit(fields[0]) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	return nil, in.defineRoute(fields)
}

/*
defineRoute. "<id>;<city1>;<len12>;<year12>;<city2>;...;<cityN>"

	fields: id c1 l y c2 l y c3  -> 2 + 3*(N-1) fields
*/
func (in *Interpreter) defineRoute(fields []string) error {
	if len(fields) < 5 || (len(fields)-2)%3 != 0 {
		return ErrFieldCount
	}
	routeID, err := parseUint32(fields[0])
	if err != nil {
		return err
	}

	n := (len(fields)-2)/3 + 1
	cities := make([]string, 0, n)
	lengths := make([]uint32, 0, n-1)
	years := make([]int32, 0, n-1)
	cities = append(cities, fields[1])
	for i := 2; i < len(fields); i += 3 {
		length, err := parseUint32(fields[i])
		if err != nil {
			return err
		}
		year, err := parseInt32(fields[i+1])
		if err != nil {
			return err
		}
		lengths = append(lengths, length)
		years = append(years, year)
		cities = append(cities, fields[i+2])
	}
	return in.m.DefineRoute(routeID, cities, lengths, years)
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// parseUint32. plain decimal digits only.
func parseUint32(s string) (uint32, error) {
	if !startsWithDigit(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}
	return uint32(v), nil
}

// parseInt32. decimal digits with an optional leading '-'.
func parseInt32(s string) (int32, error) {
	if !startsWithDigit(strings.TrimPrefix(s, "-")) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}
	return int32(v), nil
}
