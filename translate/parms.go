package translate

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parms holds the key/value pairs of an instrument sidecar file. Keys keep
// their original spelling; lookups tolerate unit suffixes, so "IO_rate"
// finds "IO_rate_[Hz]".
type Parms map[string]string

// ParseParms reads a sidecar: one "key : value" or "key = value" pair per
// line, blank lines and #-comments ignored.
func ParseParms(r io.Reader) (Parms, error) {
	p := make(Parms)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		sep := strings.IndexAny(line, ":=")
		if sep < 0 {
			return nil, fmt.Errorf("translate: parms line %d has no separator: %q", lineNo, line)
		}

		key := strings.TrimSpace(line[:sep])
		val := strings.TrimSpace(line[sep+1:])
		if key == "" {
			return nil, fmt.Errorf("translate: parms line %d has empty key", lineNo)
		}
		p[key] = val
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("translate: reading parms: %w", err)
	}

	return p, nil
}

// lookup finds a key with unit-suffix tolerance.
func (p Parms) lookup(name string) (string, bool) {
	if v, ok := p[name]; ok {
		return v, true
	}
	base := trimUnitSuffix(name)
	for k, v := range p {
		if trimUnitSuffix(k) == base {
			return v, true
		}
	}
	return "", false
}

// Float returns a numeric parameter.
func (p Parms) Float(name string) (float64, error) {
	v, ok := p.lookup(name)
	if !ok {
		return 0, fmt.Errorf("translate: parms key %q not found", name)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("translate: parms key %q is not numeric: %q", name, v)
	}
	return f, nil
}

// Int returns an integer parameter.
func (p Parms) Int(name string) (int, error) {
	f, err := p.Float(name)
	if err != nil {
		return 0, err
	}
	n := int(f)
	if float64(n) != f {
		return 0, fmt.Errorf("translate: parms key %q is not an integer: %v", name, f)
	}
	return n, nil
}

// String returns a textual parameter.
func (p Parms) String(name string) (string, error) {
	v, ok := p.lookup(name)
	if !ok {
		return "", fmt.Errorf("translate: parms key %q not found", name)
	}
	return v, nil
}

func trimUnitSuffix(name string) string {
	if i := strings.Index(name, "_["); i > 0 && strings.HasSuffix(name, "]") {
		return name[:i]
	}
	return name
}
