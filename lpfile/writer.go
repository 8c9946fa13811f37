package lpfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/qualclust/qualclust/model"
)

// objTermsPerLine and binNamesPerLine bound line width the way LP readers
// conventionally expect: short lines, sections intact.
const (
	objTermsPerLine = 5
	binNamesPerLine = 4
)

// Save writes m to a fresh file at path. Existing files are truncated.
func Save(path string, m *model.Model) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lpfile: create %s: %w", path, err)
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return fmt.Errorf("lpfile: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("lpfile: close %s: %w", path, err)
	}

	return nil
}

// Write serializes m to w in LP format. Output is deterministic: variables
// and constraints are emitted in model order.
// Complexity: O(|Vars| + Σ|Terms|).
func Write(w io.Writer, m *model.Model) error {
	bw := bufio.NewWriter(w)

	writeHeader(bw, m)
	writeObjective(bw, m)
	writeConstraints(bw, m)
	writeBounds(bw, m)
	writeBinaries(bw, m)
	fmt.Fprintln(bw, "End")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("lpfile: write: %w", err)
	}

	return nil
}

func writeHeader(w *bufio.Writer, m *model.Model) {
	fmt.Fprintln(w, `\ENCODING=ISO-8859-1`)
	fmt.Fprintf(w, "\\Problem name: %s\n\n", m.Name)
	if m.Maximize {
		fmt.Fprintln(w, "Maximize")
	} else {
		fmt.Fprintln(w, "Minimize")
	}
}

func writeObjective(w *bufio.Writer, m *model.Model) {
	fmt.Fprintln(w, " obj:")
	onLine := 0
	for _, v := range m.Vars {
		fmt.Fprintf(w, " %s %s %s", sign(v.Obj), coef(math.Abs(v.Obj)), v.Name)
		onLine++
		if onLine == objTermsPerLine {
			fmt.Fprintln(w)
			onLine = 0
		}
	}
	if onLine != 0 {
		fmt.Fprintln(w)
	}
}

func writeConstraints(w *bufio.Writer, m *model.Model) {
	fmt.Fprintln(w, "Subject To")
	for _, c := range m.Cons {
		fmt.Fprintf(w, " %s:", c.Name)
		for idx, term := range c.Terms {
			name := m.Vars[term.Var].Name
			switch {
			case idx == 0 && term.Coef >= 0:
				fmt.Fprintf(w, " %s%s", unitPrefix(term.Coef), name)
			default:
				fmt.Fprintf(w, " %s %s%s", sign(term.Coef), unitPrefix(math.Abs(term.Coef)), name)
			}
		}
		fmt.Fprintf(w, " <= %s\n", coef(c.RHS))
	}
}

func writeBounds(w *bufio.Writer, m *model.Model) {
	fmt.Fprintln(w, "Bounds")
	for _, v := range m.Vars {
		if v.Lower == v.Upper {
			fmt.Fprintf(w, " %s = %s\n", v.Name, coef(v.Lower))
			continue
		}
		fmt.Fprintf(w, " %s <= %s <= %s\n", coef(v.Lower), v.Name, coef(v.Upper))
	}
}

func writeBinaries(w *bufio.Writer, m *model.Model) {
	any := false
	for _, v := range m.Vars {
		if v.Integer {
			any = true
			break
		}
	}
	if !any {
		return
	}

	fmt.Fprintln(w, "Binaries")
	onLine := 0
	for _, v := range m.Vars {
		if !v.Integer {
			continue
		}
		fmt.Fprintf(w, " %s", v.Name)
		onLine++
		if onLine == binNamesPerLine {
			fmt.Fprintln(w)
			onLine = 0
		}
	}
	if onLine != 0 {
		fmt.Fprintln(w)
	}
}

// sign renders the leading operator of a term.
func sign(v float64) string {
	if v < 0 {
		return "-"
	}
	return "+"
}

// coef renders a coefficient without trailing zeros ("2", not "2.000000").
func coef(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// unitPrefix renders a magnitude, eliding the conventional bare 1.
func unitPrefix(v float64) string {
	if v == 1 {
		return ""
	}
	return coef(v) + " "
}
