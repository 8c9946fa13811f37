// Package lpfile serializes an assembled model to the plain-text LP file
// format, so the program can be solved by any LP-format-compliant solver
// without this process linking one.
//
// 🚀 Layout
//
//	\ENCODING=ISO-8859-1          comment header
//	\Problem name: <name>
//
//	Maximize                      (or Minimize)
//	 obj:
//	 + 2 v.0.1 - 1 v.0.2 ...      five terms per line
//	Subject To
//	 c1: v.0.1 + v.1.2 - v.0.2 <= 1
//	Bounds
//	 0 <= v.0.1 <= 1              fixed variables render as  v.i.j = 1
//	Binaries
//	 v.0.1 v.0.2 ...              four names per line, omitted when relaxed
//	End
//
// ✨ Guarantees
//
//   - Deterministic: the same model produces the same bytes, so exports are
//     diffable across runs.
//   - No solver required; write failures surface wrapped, never swallowed.
//
// ⚙️ Usage:
//
//	err := lpfile.Save("lenses.lp", m)
package lpfile
